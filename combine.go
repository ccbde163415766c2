// Licensed to the Apache Software Foundation (ASF) under one or more
// contributor license agreements.  See the NOTICE file distributed with
// this work for additional information regarding copyright ownership.
// The ASF licenses this file to You under the Apache License, Version 2.0
// (the "License"); you may not use this file except in compliance with
// the License.  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package seqs

import "iter"

// Combiner describes a three phase accumulation: inputs of type I are added
// into accumulators of type A, accumulators merge pairwise, and a final
// accumulator extracts an output of type O.
//
// The zero value of A must act as the identity accumulator:
// MergeAccumulators(zero, a) == a, and AddInput(zero, in) begins a fresh
// accumulation.
type Combiner[A, I, O any] interface {
	// AddInput folds one input into the accumulator.
	AddInput(accum A, input I) A
	// MergeAccumulators combines two partial accumulations.
	MergeAccumulators(a, b A) A
	// ExtractOutput converts the final accumulator to the output type.
	ExtractOutput(accum A) O
}

// Combine accumulates a finite sequence through the combiner's phases:
// every element is added into a single accumulator with AddInput, in
// production order, starting from the zero accumulator, and the result is
// converted with ExtractOutput.
func Combine[A, I, O any](src iter.Seq[I], fn Combiner[A, I, O]) O {
	var accum A
	for in := range src {
		accum = fn.AddInput(accum, in)
	}
	return fn.ExtractOutput(accum)
}

// MergeFn is the merge-only subset of [Combiner], for accumulations whose
// input, accumulator, and output types coincide.
type MergeFn[A any] interface {
	MergeAccumulators(a, b A) A
}

// SimpleMerge lifts a merge-only combiner into a full [Combiner] by using
// the merge operation for every phase.
func SimpleMerge[A any, M MergeFn[A]](m M) Combiner[A, A, A] {
	return simpleMerge[A, M]{m: m}
}

type simpleMerge[A any, M MergeFn[A]] struct {
	m M
}

func (s simpleMerge[A, M]) AddInput(accum, input A) A {
	return s.m.MergeAccumulators(accum, input)
}

func (s simpleMerge[A, M]) MergeAccumulators(a, b A) A {
	return s.m.MergeAccumulators(a, b)
}

func (s simpleMerge[A, M]) ExtractOutput(accum A) A {
	return accum
}

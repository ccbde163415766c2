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

package seqs_test

import (
	"testing"

	"golang.org/x/exp/constraints"

	"lostluck.dev/seqs-go"
)

type SumFn[E constraints.Integer | constraints.Float] struct{}

func (SumFn[E]) MergeAccumulators(a E, b E) E {
	return a + b
}

func TestCombineSimpleMergeSum(t *testing.T) {
	got := seqs.Combine(seqs.Take(seqs.Naturals(1), 10), seqs.SimpleMerge[int](SumFn[int]{}))
	if want := 55; got != want {
		t.Errorf("Combine(SimpleMerge(SumFn)) got %v, want %v", got, want)
	}
}

type MeanFn[E constraints.Integer | constraints.Float] struct{}

type meanAccum[E constraints.Integer | constraints.Float] struct {
	Count int32
	Sum   E
}

func (MeanFn[E]) AddInput(a meanAccum[E], i E) meanAccum[E] {
	a.Count += 1
	a.Sum += i
	return a
}

func (MeanFn[E]) MergeAccumulators(a meanAccum[E], b meanAccum[E]) meanAccum[E] {
	return meanAccum[E]{Count: a.Count + b.Count, Sum: a.Sum + b.Sum}
}

func (MeanFn[E]) ExtractOutput(a meanAccum[E]) float64 {
	return float64(a.Sum) / float64(a.Count)
}

func TestCombineMean(t *testing.T) {
	got := seqs.Combine[meanAccum[int], int, float64](seqs.Of(1, 2, 3, 4), MeanFn[int]{})
	if want := 2.5; got != want {
		t.Errorf("Combine(MeanFn) got %v, want %v", got, want)
	}
}

func TestCombine_Empty(t *testing.T) {
	got := seqs.Combine(seqs.Of[int](), seqs.SimpleMerge[int](SumFn[int]{}))
	if want := 0; got != want {
		t.Errorf("Combine over empty sequence got %v, want zero accumulator %v", got, want)
	}
}

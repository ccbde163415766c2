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

import (
	"iter"

	"golang.org/x/exp/constraints"

	"lostluck.dev/seqs-go/optional"
)

// Fold accumulates a finite sequence into a single value, strictly in
// production order. At each step the accumulator is replaced by
// combine(accumulator, element); after the last element the final
// accumulator is returned.
//
// The accumulator argument comes first, matching [Combiner.AddInput].
// An empty sequence returns initial unchanged. The result depends only on
// the sequence contents, their order, and combine itself.
func Fold[A, E any](src iter.Seq[E], combine func(A, E) A, initial A) A {
	acc := initial
	for e := range src {
		acc = combine(acc, e)
	}
	return acc
}

// FoldRight accumulates a finite sequence from the last element backward.
// It is equivalent to folding the reversed sequence, and produces different
// results from [Fold] when combine is not associative and commutative.
//
// FoldRight materializes src before accumulating.
func FoldRight[A, E any](src iter.Seq[E], combine func(A, E) A, initial A) A {
	elms := Collect(src)
	acc := initial
	for i := len(elms) - 1; i >= 0; i-- {
		acc = combine(acc, elms[i])
	}
	return acc
}

// TryFold is [Fold] with a combine function that can fail. Consumption
// stops at the first non-nil error, which is returned unchanged along with
// the accumulator as of the failing step.
func TryFold[A, E any](src iter.Seq[E], combine func(A, E) (A, error), initial A) (A, error) {
	acc := initial
	var err error
	for e := range src {
		if acc, err = combine(acc, e); err != nil {
			break
		}
	}
	return acc, err
}

// Sum folds a finite numeric sequence with addition from zero.
func Sum[E constraints.Integer | constraints.Float](src iter.Seq[E]) E {
	return Fold(src, func(a, e E) E { return a + e }, 0)
}

// Product folds a finite numeric sequence with multiplication from one.
func Product[E constraints.Integer | constraints.Float](src iter.Seq[E]) E {
	return Fold(src, func(a, e E) E { return a * e }, 1)
}

// Count consumes a finite sequence and reports how many elements it
// produced.
func Count[E any](src iter.Seq[E]) int {
	n := 0
	for range src {
		n++
	}
	return n
}

// First returns the first element of src, or an absent optional for an
// empty sequence. Consumption stops after one element, so src may be
// infinite.
func First[E any](src iter.Seq[E]) optional.Optional[E] {
	for e := range src {
		return optional.Some(e)
	}
	return optional.None[E]()
}

// Last consumes a finite sequence and returns its final element, or an
// absent optional for an empty sequence.
func Last[E any](src iter.Seq[E]) optional.Optional[E] {
	out := optional.None[E]()
	for e := range src {
		out = optional.Some(e)
	}
	return out
}

// MinOf consumes a finite sequence and returns its smallest element, or an
// absent optional for an empty sequence.
func MinOf[E constraints.Ordered](src iter.Seq[E]) optional.Optional[E] {
	var best E
	found := false
	for e := range src {
		if !found || e < best {
			best, found = e, true
		}
	}
	if !found {
		return optional.None[E]()
	}
	return optional.Some(best)
}

// MaxOf consumes a finite sequence and returns its largest element, or an
// absent optional for an empty sequence.
func MaxOf[E constraints.Ordered](src iter.Seq[E]) optional.Optional[E] {
	var best E
	found := false
	for e := range src {
		if !found || e > best {
			best, found = e, true
		}
	}
	if !found {
		return optional.None[E]()
	}
	return optional.Some(best)
}

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

	"lostluck.dev/seqs-go/internal/seqopts"
)

// KV is a pair of values produced by positional pairing operations.
type KV[A, B any] struct {
	Key   A
	Value B
}

// Pair is a convenience constructor for [KV] pairs, to avoid the need to
// provide the type parameters explicitly.
func Pair[A, B any](a A, b B) KV[A, B] {
	return KV[A, B]{Key: a, Value: b}
}

// Zip pairs the elements of two sequences positionally, producing the pair
// sequence (a0,b0), (a1,b1), ... lazily. Production stops silently the
// moment either source is exhausted; reaching the end of an input is the
// defined termination condition, not an error, and no padding occurs.
//
// The result is finite if either input is finite, and restartable only if
// both inputs are restartable.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()
		for {
			av, ok := nextA()
			if !ok {
				return
			}
			bv, ok := nextB()
			if !ok {
				return
			}
			if !yield(av, bv) {
				return
			}
		}
	}
}

// ZipWith applies fn to each positional pair of the two sequences instead
// of producing the raw pairs. It is equivalent to mapping fn over [Zip],
// with the same termination behavior.
func ZipWith[A, B, C any](fn func(A, B) C, a iter.Seq[A], b iter.Seq[B]) iter.Seq[C] {
	return func(yield func(C) bool) {
		for av, bv := range Zip(a, b) {
			if !yield(fn(av, bv)) {
				return
			}
		}
	}
}

// Enumerate pairs each element of src with its position, counting up from
// the configured origin. The default origin is 0; pass [Origin] to start
// at 1 instead.
//
// Enumerate is zip against the infinite ascending integers, so it never
// changes the length of src.
func Enumerate[E any](src iter.Seq[E], opts ...Options) iter.Seq2[int, E] {
	var opt seqopts.Struct
	opt.Join(opts...)
	return func(yield func(int, E) bool) {
		i := opt.Origin
		for e := range src {
			if !yield(i, e) {
				return
			}
			i++
		}
	}
}

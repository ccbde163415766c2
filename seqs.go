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

// seqs.go holds sequence constructors and the element-wise combinators.
// Everything here produces its elements on demand; nothing materializes
// an input unless its documentation says so.

// Of returns a restartable sequence over the given elements.
func Of[E any](elms ...E) iter.Seq[E] {
	return FromSlice(elms)
}

// FromSlice returns a restartable sequence over the elements of s, in order.
//
// The slice is not copied. Mutating it between traversals changes what
// later traversals produce.
func FromSlice[E any](s []E) iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s {
			if !yield(e) {
				return
			}
		}
	}
}

// Generate returns an infinite sequence whose elements are produced on
// demand by next. No element is produced until the sequence is consumed.
//
// If next closes over mutable state the sequence is single-pass; a second
// traversal continues from wherever the first one stopped.
func Generate[E any](next func() E) iter.Seq[E] {
	return func(yield func(E) bool) {
		for yield(next()) {
		}
	}
}

// Naturals returns the infinite ascending integer sequence
// origin, origin+1, origin+2, ... produced on demand.
func Naturals(origin int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := origin; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Map returns a sequence that applies fn to each element of src as it is
// consumed. fn is invoked only for elements the consumer actually reaches.
func Map[I, O any](src iter.Seq[I], fn func(I) O) iter.Seq[O] {
	return func(yield func(O) bool) {
		for e := range src {
			if !yield(fn(e)) {
				return
			}
		}
	}
}

// Filter returns a sequence of the elements of src for which keep returns
// true, preserving order.
func Filter[E any](src iter.Seq[E], keep func(E) bool) iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range src {
			if !keep(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Take returns a sequence of at most n leading elements of src. It is the
// standard way to bound an infinite sequence before a terminal operation
// like [Fold] or [Collect].
func Take[E any](src iter.Seq[E], n int) iter.Seq[E] {
	return func(yield func(E) bool) {
		if n <= 0 {
			return
		}
		left := n
		for e := range src {
			if !yield(e) {
				return
			}
			left--
			if left == 0 {
				return
			}
		}
	}
}

// Tee returns a passthrough sequence that hands each element of src to
// every sink in order, before yielding it downstream.
func Tee[E any](src iter.Seq[E], sinks ...func(E)) iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range src {
			for _, sink := range sinks {
				sink(e)
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Collect materializes a finite sequence into a slice, in production order.
// An empty sequence collects to nil.
func Collect[E any](src iter.Seq[E]) []E {
	var out []E
	for e := range src {
		out = append(out, e)
	}
	return out
}

// Collect2 materializes a finite pair sequence into a slice of [KV].
func Collect2[A, B any](src iter.Seq2[A, B]) []KV[A, B] {
	var out []KV[A, B]
	for a, b := range src {
		out = append(out, Pair(a, b))
	}
	return out
}

// ForEach consumes src, invoking fn on each element in order. Consumption
// stops at the first non-nil error, which is returned unchanged.
func ForEach[E any](src iter.Seq[E], fn func(E) error) error {
	var err error
	for e := range src {
		if err = fn(e); err != nil {
			break
		}
	}
	return err
}

// Drain consumes a finite sequence, discarding every element.
func Drain[E any](src iter.Seq[E]) {
	for range src {
	}
}

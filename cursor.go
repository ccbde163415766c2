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

// Cursor walks a sequence one element at a time. Next returns the next
// element and true, or the zero value and false once the sequence is
// exhausted. After reporting exhaustion, Next must keep returning false.
//
// A Cursor has exactly those two outcomes. It carries no error; a source
// that can fail should surface its failure through its element type or
// through the code driving the cursor.
type Cursor[E any] interface {
	Next() (E, bool)
}

// Source hands out fresh cursors over the same underlying sequence.
// Each call to Cursor begins a new traversal from the first element,
// making sequences built on a Source restartable.
type Source[E any] interface {
	Cursor() Cursor[E]
}

// CursorFunc adapts a plain function to the [Cursor] interface.
type CursorFunc[E any] func() (E, bool)

// Next implements [Cursor].
func (f CursorFunc[E]) Next() (E, bool) {
	return f()
}

// SliceSource is a [Source] over a slice. Every cursor starts at index 0.
type SliceSource[E any] []E

// Cursor implements [Source].
func (s SliceSource[E]) Cursor() Cursor[E] {
	i := 0
	return CursorFunc[E](func() (E, bool) {
		if i >= len(s) {
			var zero E
			return zero, false
		}
		e := s[i]
		i++
		return e, true
	})
}

// FromCursor adapts a cursor into a single-pass sequence. The sequence
// ends when the cursor reports exhaustion; stopping the traversal early
// leaves the cursor positioned at the next unconsumed element.
func FromCursor[E any](cur Cursor[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			e, ok := cur.Next()
			if !ok {
				return
			}
			if !yield(e) {
				return
			}
		}
	}
}

// FromSource adapts a source into a restartable sequence. Each traversal
// obtains a fresh cursor.
func FromSource[E any](src Source[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		cur := src.Cursor()
		for {
			e, ok := cur.Next()
			if !ok {
				return
			}
			if !yield(e) {
				return
			}
		}
	}
}

// ToCursor adapts a sequence into a cursor, along with a stop function.
// The stop function must be called once the caller is done with the
// cursor, unless the cursor has already reported exhaustion.
func ToCursor[E any](src iter.Seq[E]) (Cursor[E], func()) {
	next, stop := iter.Pull(src)
	return CursorFunc[E](next), stop
}

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
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lostluck.dev/seqs-go"
)

func TestMapFilter(t *testing.T) {
	src := seqs.Of(1, 2, 3, 4, 5)
	got := seqs.Collect(seqs.Map(seqs.Filter(src, func(e int) bool { return e%2 == 1 }), strconv.Itoa))
	want := []string{"1", "3", "5"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Map/Filter diff (-want, +got):\n%v", d)
	}
}

func TestMap_Lazy(t *testing.T) {
	calls := 0
	mapped := seqs.Map(seqs.Of(1, 2, 3, 4), func(e int) int {
		calls++
		return e * 2
	})
	got := seqs.Collect(seqs.Take(mapped, 2))
	want := []int{2, 4}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Take(Map) diff (-want, +got):\n%v", d)
	}
	if want := 2; calls != want {
		t.Errorf("map function invoked %v times, want %v", calls, want)
	}
}

func TestTake(t *testing.T) {
	got := seqs.Collect(seqs.Take(seqs.Naturals(0), 5))
	want := []int{0, 1, 2, 3, 4}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Take diff (-want, +got):\n%v", d)
	}
	if got := seqs.Collect(seqs.Take(seqs.Naturals(0), 0)); len(got) != 0 {
		t.Errorf("Take(0) produced %v, want empty", got)
	}
	if got := seqs.Collect(seqs.Take(seqs.Of(1, 2), 5)); len(got) != 2 {
		t.Errorf("Take beyond source length produced %v elements, want 2", len(got))
	}
}

func TestGenerate(t *testing.T) {
	n := 0
	fib := func() func() int {
		a, b := 0, 1
		return func() int {
			a, b = b, a+b
			n++
			return a
		}
	}()
	got := seqs.Collect(seqs.Take(seqs.Generate(fib), 6))
	want := []int{1, 1, 2, 3, 5, 8}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Generate diff (-want, +got):\n%v", d)
	}
	if want := 6; n != want {
		t.Errorf("generator invoked %v times, want %v", n, want)
	}
}

func TestTee(t *testing.T) {
	var first, second []int
	src := seqs.Tee(seqs.Of(1, 2, 3),
		func(e int) { first = append(first, e) },
		func(e int) { second = append(second, e) })

	got := seqs.Collect(src)
	want := []int{1, 2, 3}
	for name, sunk := range map[string][]int{"downstream": got, "first": first, "second": second} {
		if d := cmp.Diff(want, sunk); d != "" {
			t.Errorf("Tee %v diff (-want, +got):\n%v", name, d)
		}
	}
}

func TestForEach(t *testing.T) {
	var seen []int
	if err := seqs.ForEach(seqs.Of(1, 2, 3), func(e int) error {
		seen = append(seen, e)
		return nil
	}); err != nil {
		t.Fatalf("ForEach returned unexpected error: %v", err)
	}
	if d := cmp.Diff([]int{1, 2, 3}, seen); d != "" {
		t.Errorf("ForEach consumption diff (-want, +got):\n%v", d)
	}
}

func TestForEach_StopsOnError(t *testing.T) {
	errBad := errors.New("bad element")
	calls := 0
	err := seqs.ForEach(seqs.Naturals(0), func(e int) error {
		calls++
		if e == 2 {
			return errBad
		}
		return nil
	})
	if !errors.Is(err, errBad) {
		t.Fatalf("ForEach error got %v, want %v", err, errBad)
	}
	if want := 3; calls != want {
		t.Errorf("ForEach invoked fn %v times, want %v", calls, want)
	}
}

func TestCursor_Restartable(t *testing.T) {
	src := seqs.FromSource(seqs.SliceSource[int]{1, 2, 3})

	// Each traversal obtains a fresh cursor, so the sequence restarts.
	if got, want := seqs.Sum(src), 6; got != want {
		t.Errorf("first traversal Sum got %v, want %v", got, want)
	}
	if got, want := seqs.Sum(src), 6; got != want {
		t.Errorf("second traversal Sum got %v, want %v", got, want)
	}
}

func TestCursor_SinglePass(t *testing.T) {
	cur := seqs.SliceSource[int]{1, 2, 3}.Cursor()
	src := seqs.FromCursor[int](cur)

	if got, want := seqs.Collect(seqs.Take(src, 2)), []int{1, 2}; !cmp.Equal(want, got) {
		t.Errorf("first pass got %v, want %v", got, want)
	}
	// The cursor holds its position; a second pass resumes, not restarts.
	if got, want := seqs.Collect(src), []int{3}; !cmp.Equal(want, got) {
		t.Errorf("second pass got %v, want %v", got, want)
	}

	if e, ok := cur.Next(); ok {
		t.Errorf("exhausted cursor produced (%v, true), want exhaustion", e)
	}
	if e, ok := cur.Next(); ok {
		t.Errorf("exhausted cursor produced (%v, true) on repeat Next, want exhaustion", e)
	}
}

func TestToCursor(t *testing.T) {
	cur, stop := seqs.ToCursor(seqs.Of("a", "b"))
	defer stop()

	for _, want := range []string{"a", "b"} {
		got, ok := cur.Next()
		if !ok || got != want {
			t.Errorf("Next got (%q, %v), want (%q, true)", got, ok, want)
		}
	}
	if got, ok := cur.Next(); ok {
		t.Errorf("Next after exhaustion got (%q, true), want exhaustion", got)
	}
}

func TestCollect_Empty(t *testing.T) {
	if got := seqs.Collect(seqs.Of[int]()); got != nil {
		t.Errorf("Collect of empty sequence got %v, want nil", got)
	}
}

func TestDrain(t *testing.T) {
	n := 0
	seqs.Drain(seqs.Tee(seqs.Of(1, 2, 3), func(int) { n++ }))
	if want := 3; n != want {
		t.Errorf("Drain consumed %v elements, want %v", n, want)
	}
}

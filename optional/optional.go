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

// Package optional provides an immutable optional value type with
// composition operations that short-circuit on absence.
//
// An [Optional] is a tagged variant with exactly two states: present,
// holding one value, or absent, holding nothing. Values are never mutated
// after construction; [Map], [Bind] and [Chain] build new Optionals.
//
// Composition never fails on an absent value. Only the explicit unwrap,
// [Optional.Get], reports absence as an error, so composed pipelines
// never incur it implicitly.
package optional

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/pkg/errors"
)

// ErrAbsent is reported when a value is unwrapped from an absent Optional.
// Errors returned by [Optional.Get] satisfy errors.Is(err, ErrAbsent).
var ErrAbsent = errors.New("unwrap of absent value")

// Optional holds either a single value of type T, or nothing.
// The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Present reports whether a value is held.
func (o Optional[T]) Present() bool {
	return o.present
}

// Get returns the held value. When absent, it returns the zero value of T
// and an error satisfying errors.Is(err, ErrAbsent), carrying the stack of
// the failed unwrap.
func (o Optional[T]) Get() (T, error) {
	if !o.present {
		return o.value, errors.WithStack(ErrAbsent)
	}
	return o.value, nil
}

// MustGet returns the held value, panicking when absent.
func (o Optional[T]) MustGet() T {
	v, err := o.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// OrElse returns the held value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// OrZero returns the held value, or the zero value of T when absent.
func (o Optional[T]) OrZero() T {
	return o.value
}

// String implements fmt.Stringer for debugging output.
func (o Optional[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// MarshalJSON encodes a present Optional as its held value, and an absent
// one as JSON null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value, json.DefaultOptionsV2())
}

// UnmarshalJSON decodes JSON null as absent, and any other value as a
// present value of T.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v, json.DefaultOptionsV2()); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// Map applies f to the held value, producing a present Optional of its
// result. When o is absent, Map returns an absent Optional and f is never
// invoked.
func Map[T, U any](o Optional[T], f func(T) U) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return Some(f(o.value))
}

// Bind applies f to the held value and returns its result directly, which
// may itself be absent. When o is absent, Bind returns an absent Optional
// and f is never invoked.
//
// Bind satisfies the usual laws with [Some] as the unit:
// Bind(Some(x), f) == f(x), Bind(o, Some) == o, and
// Bind(Bind(o, f), g) == Bind(o, func(x) { return Bind(f(x), g) }).
func Bind[T, U any](o Optional[T], f func(T) Optional[U]) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return f(o.value)
}

// Chain applies each function in turn with [Bind], short-circuiting at the
// first step that produces an absent result. Functions after the short
// circuit are never invoked.
func Chain[T any](o Optional[T], fs ...func(T) Optional[T]) Optional[T] {
	out := o
	for _, f := range fs {
		if !out.present {
			return out
		}
		out = f(out.value)
	}
	return out
}

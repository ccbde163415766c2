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

// Package seqs is an experimental set of lazy sequence utilities that
// leverages generics and the standard [iter] types. It exists to explore
// the ergonomics of accumulation and pairing combinators when Go can
// typecheck the whole pipeline, instead of reflection heavy library code.
//
// The core operations are:
//   - [Fold], [FoldRight] and [TryFold] for accumulating a sequence into a
//     single value.
//   - [Zip], [ZipWith] and [Enumerate] for positional pairing of two
//     sequences, truncated to the shorter.
//   - [Combine] for three phase accumulation via a [Combiner].
//
// Sequences are consumed strictly in production order, one element at a
// time, and each call owns its accumulator exclusively. Nothing in this
// package performs I/O or requires synchronization.
//
// Sequences may be infinite. Operations that must terminate document the
// requirement that their input is finite; bounding an infinite sequence
// is the caller's job, typically with [Take].
//
// The sibling package [lostluck.dev/seqs-go/optional] provides the
// optional value type produced by sequence queries like [First] and
// [MinOf].
package seqs

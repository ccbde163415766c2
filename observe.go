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
	"log/slog"

	"lostluck.dev/seqs-go/internal/seqopts"
)

// Logged returns a passthrough sequence that logs each element of src at
// Debug level as it is consumed, along with the sequence name and the
// element's position. Exhaustion and early stops are logged as well.
//
// A nil logger uses [slog.Default]. Pass [Name] to identify the sequence
// in the output; unnamed sequences log as "seq".
func Logged[E any](src iter.Seq[E], logger *slog.Logger, opts ...Options) iter.Seq[E] {
	var opt seqopts.Struct
	opt.Join(opts...)
	if logger == nil {
		logger = slog.Default()
	}
	name := opt.Name
	if name == "" {
		name = "seq"
	}
	return func(yield func(E) bool) {
		i := 0
		for e := range src {
			logger.Debug("element consumed",
				slog.String("seq", name),
				slog.Int("index", i),
				slog.Any("value", e))
			if !yield(e) {
				logger.Debug("consumer stopped early",
					slog.String("seq", name),
					slog.Int("index", i))
				return
			}
			i++
		}
		logger.Debug("sequence exhausted",
			slog.String("seq", name),
			slog.Int("count", i))
	}
}

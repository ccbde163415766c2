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

package logging

import (
	"log/slog"
	"testing"
	"testing/slogtest"
)

func TestSlogtest(t *testing.T) {
	var h *Handler
	slogtest.Run(t,
		func(_ *testing.T) slog.Handler {
			h = NewHandler()
			return h
		},
		func(st *testing.T) map[string]any {
			recs := h.Records()
			if len(recs) == 0 {
				st.Fatal("handler captured no records")
			}
			return recs[len(recs)-1]
		})
}

func TestSharedSink(t *testing.T) {
	h := NewHandler()
	l := slog.New(h)

	l.Info("plain")
	l.With(slog.String("from", "derived")).Info("derived")
	l.WithGroup("g").Info("grouped", slog.Int("n", 1))

	recs := h.Records()
	if got, want := len(recs), 3; got != want {
		t.Fatalf("captured %v records, want %v", got, want)
	}
	if got, want := recs[1]["from"], "derived"; got != want {
		t.Errorf("derived record attr: got %q want %q", got, want)
	}
	g, ok := recs[2]["g"].(map[string]any)
	if !ok {
		t.Fatalf("grouped record missing group map: %v", recs[2])
	}
	if got, want := g["n"], int64(1); got != want {
		t.Errorf("grouped record attr: got %v want %v", got, want)
	}
}

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

// Package logging provides an in-memory slog handler used to verify what
// the seqs combinators log.
package logging

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jba/slog/withsupport"
)

// Handler is a slog.Handler that captures each record as a map of
// flattened keys, with groups becoming nested maps. Handlers derived
// with WithAttrs or WithGroup share the same record sink.
type Handler struct {
	mu   *sync.Mutex
	recs *[]map[string]any
	goa  *withsupport.GroupOrAttrs
}

// NewHandler returns a Handler with an empty record sink.
func NewHandler() *Handler {
	return &Handler{mu: &sync.Mutex{}, recs: &[]map[string]any{}}
}

// Records returns a snapshot of all captured records, oldest first.
func (h *Handler) Records() []map[string]any {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]map[string]any, len(*h.recs))
	copy(out, *h.recs)
	return out
}

// Enabled implements slog.Handler. The capture handler records all levels.
func (h *Handler) Enabled(context.Context, slog.Level) bool {
	return true
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.goa = h.goa.WithGroup(name)
	return &h2
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.goa = h.goa.WithAttrs(attrs)
	return &h2
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	m := map[string]any{}
	if !r.Time.IsZero() {
		m[slog.TimeKey] = r.Time
	}
	m[slog.LevelKey] = r.Level
	m[slog.MessageKey] = r.Message
	groups := h.goa.Apply(func(gs []string, a slog.Attr) {
		putAttr(m, gs, a)
	})
	r.Attrs(func(a slog.Attr) bool {
		putAttr(m, groups, a)
		return true
	})
	h.mu.Lock()
	defer h.mu.Unlock()
	*h.recs = append(*h.recs, m)
	return nil
}

// putAttr records a resolved attr under the given group path, creating
// nested maps as needed. Empty attrs and empty groups are elided, and
// groups with an empty key are inlined.
func putAttr(m map[string]any, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	for _, g := range groups {
		m = subMap(m, g)
	}
	if a.Value.Kind() == slog.KindGroup {
		gattrs := a.Value.Group()
		if len(gattrs) == 0 {
			return
		}
		if a.Key != "" {
			m = subMap(m, a.Key)
		}
		for _, ga := range gattrs {
			putAttr(m, nil, ga)
		}
		return
	}
	m[a.Key] = a.Value.Any()
}

func subMap(m map[string]any, key string) map[string]any {
	if sub, ok := m[key].(map[string]any); ok {
		return sub
	}
	sub := map[string]any{}
	m[key] = sub
	return sub
}

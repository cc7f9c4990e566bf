// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gate

import (
	"log/slog"
	"time"

	"github.com/blinklabs-io/gopoh/store"
	"github.com/prometheus/client_golang/prometheus"
)

// OptionFunc modifies a HumanOnly gate on construction
type OptionFunc func(*HumanOnly)

// WithLogger specifies the logger. The default is slog.Default()
func WithLogger(logger *slog.Logger) OptionFunc {
	return func(h *HumanOnly) {
		h.logger = logger
	}
}

// WithStore specifies where consumed proofs are recorded. The default is an
// in-memory store, which forgets everything when the process exits.
func WithStore(s store.Store) OptionFunc {
	return func(h *HumanOnly) {
		h.store = s
	}
}

// WithSuccessFunc specifies a callback invoked once for every accepted proof
func WithSuccessFunc(fn func(SuccessEvent)) OptionFunc {
	return func(h *HumanOnly) {
		h.successFunc = fn
	}
}

// WithMetrics registers the gate's collectors on reg
func WithMetrics(reg prometheus.Registerer) OptionFunc {
	return func(h *HumanOnly) {
		h.registerer = reg
	}
}

// WithClock overrides the time source used for consumption records
func WithClock(now func() time.Time) OptionFunc {
	return func(h *HumanOnly) {
		h.now = now
	}
}

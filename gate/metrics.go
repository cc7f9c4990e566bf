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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Values of the result label on poh_gate_proofs_total
const (
	ResultAccepted  = "accepted"
	ResultInvalid   = "invalid"
	ResultDiscarded = "discarded"
	ResultMalformed = "malformed"
	ResultPaused    = "paused"
	ResultError     = "error"
)

type gateMetrics struct {
	proofsTotal   *prometheus.CounterVec
	checkDuration *prometheus.HistogramVec
}

// newGateMetrics builds the gate's collectors on reg. A nil reg leaves them
// unregistered.
func newGateMetrics(reg prometheus.Registerer) *gateMetrics {
	factory := promauto.With(reg)
	return &gateMetrics{
		proofsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "poh",
				Subsystem: "gate",
				Name:      "proofs_total",
				Help:      "Total number of proofs submitted to the gate",
			},
			// variant: basic/sovereign, result: accepted/invalid/discarded/...
			[]string{"variant", "result"},
		),
		checkDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "poh",
				Subsystem: "gate",
				Name:      "check_duration_seconds",
				Help:      "Time spent checking a proof, including the consumed lookup",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"variant"},
		),
	}
}

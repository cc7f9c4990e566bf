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

// Package gate guards an action behind a single-use proof of humanity.
//
// A HumanOnly gate accepts a proof once: the first successful submission
// records the proof as consumed and every later submission of the same bytes
// is rejected with ErrDiscardedProofOfHumanity.
package gate

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/blinklabs-io/gopoh/address"
	"github.com/blinklabs-io/gopoh/proof"
	"github.com/blinklabs-io/gopoh/signature"
	"github.com/blinklabs-io/gopoh/store"
	"github.com/blinklabs-io/gopoh/validator"
	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ErrInvalidProofOfHumanity   = errors.New("PoH: Invalid proof-of-humanity")
	ErrDiscardedProofOfHumanity = errors.New("PoH: Discarded proof-of-humanity")
)

// SuccessEvent describes an accepted proof
type SuccessEvent struct {
	Variant   proof.Variant
	Challenge proof.Challenge
	Timestamp proof.Timestamp
	Key       store.Key
}

// HumanOnly admits callers holding a valid, unused proof signed by the
// configured humanity validator
type HumanOnly struct {
	logger      *slog.Logger
	store       store.Store
	successFunc func(SuccessEvent)
	registerer  prometheus.Registerer
	now         func() time.Time
	metrics     *gateMetrics

	// mu covers the validator and the whole check-then-consume sequence
	mu        sync.Mutex
	validator common.Address
}

// New returns a gate trusting validatorAddr. A zero address leaves the gate
// paused until SetHumanityValidator is called.
func New(validatorAddr common.Address, opts ...OptionFunc) *HumanOnly {
	h := &HumanOnly{
		validator: validatorAddr,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	if h.store == nil {
		h.store = store.NewMemoryStore()
	}
	if h.now == nil {
		h.now = time.Now
	}
	h.metrics = newGateMetrics(h.registerer)
	return h
}

// HumanityValidator returns the address whose signatures are currently trusted
func (h *HumanOnly) HumanityValidator() common.Address {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.validator
}

// SetHumanityValidator replaces the trusted validator. Setting the zero
// address pauses the gate. Consumed proofs stay consumed either way.
func (h *HumanOnly) SetHumanityValidator(validatorAddr common.Address) {
	h.mu.Lock()
	previous := h.validator
	h.validator = validatorAddr
	h.mu.Unlock()
	h.logger.Info(
		"humanity validator changed",
		"component", "gate",
		"previous", previous.Hex(),
		"validator", validatorAddr.Hex(),
		"tron", address.Tron(validatorAddr),
	)
}

// RequireBasicPoH consumes a 101-byte basic proof
func (h *HumanOnly) RequireBasicPoH(data []byte) error {
	return h.Require(proof.VariantBasic, data)
}

// RequireSovereignPoH consumes a 166-byte sovereign proof
func (h *HumanOnly) RequireSovereignPoH(data []byte) error {
	return h.Require(proof.VariantSovereign, data)
}

// Require validates the proof and, if it has not been seen before, records it
// as consumed. It returns nil exactly once per distinct valid proof.
func (h *HumanOnly) Require(variant proof.Variant, data []byte) error {
	start := h.now()
	event, err := h.consume(variant, data)
	h.metrics.checkDuration.WithLabelValues(variant.String()).
		Observe(h.now().Sub(start).Seconds())
	h.metrics.proofsTotal.WithLabelValues(variant.String(), resultLabel(err)).
		Inc()
	if err != nil {
		h.logger.Debug(
			"proof rejected",
			"component", "gate",
			"variant", variant.String(),
			"error", err,
		)
		return err
	}
	h.logger.Debug(
		"proof accepted",
		"component", "gate",
		"variant", variant.String(),
		"challenge", event.Challenge.String(),
		"timestamp", event.Timestamp.Uint32(),
		"key", event.Key.String(),
	)
	if h.successFunc != nil {
		h.successFunc(event)
	}
	return nil
}

func (h *HumanOnly) consume(
	variant proof.Variant,
	data []byte,
) (SuccessEvent, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	ok, err := validator.Validate(variant, data, h.validator)
	if err != nil {
		return SuccessEvent{}, err
	}
	if !ok {
		return SuccessEvent{}, ErrInvalidProofOfHumanity
	}
	key := store.KeyFor(data)
	consumed, err := h.store.Has(key)
	if err != nil {
		return SuccessEvent{}, fmt.Errorf("check consumed proof: %w", err)
	}
	if consumed {
		return SuccessEvent{}, ErrDiscardedProofOfHumanity
	}
	challenge, timestamp, err := proof.ChallengeAndTimestamp(variant, data)
	if err != nil {
		return SuccessEvent{}, err
	}
	rec := store.NewRecord(variant, challenge, timestamp, h.now())
	if err := h.store.Put(key, rec); err != nil {
		return SuccessEvent{}, fmt.Errorf("record consumed proof: %w", err)
	}
	return SuccessEvent{
		Variant:   variant,
		Challenge: challenge,
		Timestamp: timestamp,
		Key:       key,
	}, nil
}

// IsConsumed reports whether these exact proof bytes were already accepted.
// It does not validate the proof.
func (h *HumanOnly) IsConsumed(data []byte) (bool, error) {
	return h.store.Has(store.KeyFor(data))
}

// ConsumedCount returns the number of proofs accepted so far
func (h *HumanOnly) ConsumedCount() (uint64, error) {
	return h.store.Count()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return ResultAccepted
	case errors.Is(err, ErrInvalidProofOfHumanity):
		return ResultInvalid
	case errors.Is(err, ErrDiscardedProofOfHumanity):
		return ResultDiscarded
	case errors.Is(err, validator.ErrValidatorNotSet):
		return ResultPaused
	case errors.Is(err, proof.ErrInvalidProofLength),
		errors.Is(err, proof.ErrUnknownVariant),
		errors.Is(err, signature.ErrInvalidSignature):
		return ResultMalformed
	default:
		return ResultError
	}
}

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

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/gopoh/address"
	"github.com/blinklabs-io/gopoh/config"
	"github.com/blinklabs-io/gopoh/gate"
	"github.com/blinklabs-io/gopoh/proof"
	"github.com/blinklabs-io/gopoh/validator"
	"github.com/ethereum/go-ethereum/common"
)

type proofFlags struct {
	flagset   *flag.FlagSet
	variant   string
	validator string
}

func newProofFlags(name string, withValidator bool) *proofFlags {
	f := &proofFlags{
		flagset: flag.NewFlagSet(name, flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.variant,
		"variant",
		"basic",
		"proof variant (basic or sovereign)",
	)
	if withValidator {
		f.flagset.StringVar(
			&f.validator,
			"validator",
			"",
			"validator address in hex or TRON form. this overrides the config file",
		)
	}
	return f
}

func cmdSplit(f *globalFlags) {
	proofFlags := newProofFlags("split", false)
	parseSubcommand(f, proofFlags.flagset)
	variant := requireVariant(proofFlags.variant)
	data := requireProofArg(proofFlags.flagset)
	switch variant {
	case proof.VariantBasic:
		p, err := proof.ParseBasic(data)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("challenge:           %s\n", p.Challenge)
		fmt.Printf("timestamp:           %s (%s)\n", p.Timestamp, p.Timestamp.Time())
		fmt.Printf("validator-signature: %s\n", p.ValidatorSignature)
	case proof.VariantSovereign:
		p, err := proof.ParseSovereign(data)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("challenge:           %s\n", p.Challenge)
		fmt.Printf("sender-signature:    %s\n", p.SenderSignature)
		fmt.Printf("timestamp:           %s (%s)\n", p.Timestamp, p.Timestamp.Time())
		fmt.Printf("validator-signature: %s\n", p.ValidatorSignature)
		if sender, err := validator.SovereignSender(data); err == nil {
			fmt.Printf("sender:              %s (%s)\n", sender.Hex(), address.Tron(sender))
		}
	}
}

// resolveValidator prefers -validator over the config file. cfg is only
// loaded when the flag is empty.
func resolveValidator(
	flagValue string,
	cfg func() *config.Config,
) common.Address {
	if flagValue != "" {
		addr, err := address.Parse(flagValue)
		if err != nil {
			fmt.Printf("ERROR: -validator: %s\n", err)
			os.Exit(1)
		}
		return addr
	}
	addr, err := cfg().ValidatorAddress()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	return addr
}

func cmdValidate(f *globalFlags) {
	proofFlags := newProofFlags("validate", true)
	parseSubcommand(f, proofFlags.flagset)
	variant := requireVariant(proofFlags.variant)
	data := requireProofArg(proofFlags.flagset)
	expected := resolveValidator(
		proofFlags.validator,
		func() *config.Config {
			cfg, _ := loadConfig(f)
			return cfg
		},
	)
	ok, err := validator.Validate(variant, data, expected)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Printf("invalid: not signed by %s\n", expected.Hex())
		os.Exit(2)
	}
	fmt.Printf("valid: signed by %s (%s)\n", expected.Hex(), address.Tron(expected))
}

func cmdConsume(f *globalFlags) {
	proofFlags := newProofFlags("consume", true)
	parseSubcommand(f, proofFlags.flagset)
	variant := requireVariant(proofFlags.variant)
	data := requireProofArg(proofFlags.flagset)
	cfg, logger := loadConfig(f)
	validatorAddr := resolveValidator(
		proofFlags.validator,
		func() *config.Config { return cfg },
	)
	s, err := cfg.OpenStore(logger)
	if err != nil {
		fmt.Printf("ERROR: failed to open store: %s\n", err)
		os.Exit(1)
	}
	h := gate.New(
		validatorAddr,
		gate.WithLogger(logger),
		gate.WithStore(s),
		gate.WithSuccessFunc(func(evt gate.SuccessEvent) {
			fmt.Printf(
				"consumed: variant = %s, challenge = %s, timestamp = %s, key = %s\n",
				evt.Variant,
				evt.Challenge,
				evt.Timestamp,
				evt.Key,
			)
		}),
	)
	err = h.Require(variant, data)
	if closeErr := s.Close(); closeErr != nil {
		logger.Error("failed to close store", "error", closeErr)
	}
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		if errors.Is(err, gate.ErrDiscardedProofOfHumanity) ||
			errors.Is(err, gate.ErrInvalidProofOfHumanity) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

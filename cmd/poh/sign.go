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
	"crypto/ecdsa"
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/gopoh/issuer"
	"github.com/blinklabs-io/gopoh/proof"
	"github.com/blinklabs-io/gopoh/signature"
)

type signFlags struct {
	flagset         *flag.FlagSet
	validatorKey    string
	senderKey       string
	senderSignature string
	challenge       string
	timestamp       string
}

func newSignFlags(name string, sovereign bool) *signFlags {
	f := &signFlags{
		flagset: flag.NewFlagSet(name, flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.validatorKey,
		"validator-key",
		"",
		"hex-encoded private key of the humanity validator",
	)
	f.flagset.StringVar(
		&f.challenge,
		"challenge",
		"",
		"hex-encoded 32-byte challenge (random if omitted)",
	)
	f.flagset.StringVar(
		&f.timestamp,
		"timestamp",
		"",
		"hex-encoded 4-byte timestamp (current time if omitted)",
	)
	if sovereign {
		f.flagset.StringVar(
			&f.senderKey,
			"sender-key",
			"",
			"hex-encoded private key of the sender",
		)
		f.flagset.StringVar(
			&f.senderSignature,
			"sender-signature",
			"",
			"hex-encoded sender signature over the challenge. this overrides -sender-key",
		)
	}
	return f
}

func (f *signFlags) challengeAndTimestamp() (proof.Challenge, proof.Timestamp) {
	var challenge proof.Challenge
	var err error
	if f.challenge == "" {
		challenge, err = issuer.NewChallenge()
	} else {
		challenge, err = proof.ParseChallenge(f.challenge)
	}
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	timestamp := issuer.Now()
	if f.timestamp != "" {
		timestamp, err = proof.ParseTimestamp(f.timestamp)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	}
	return challenge, timestamp
}

func requireKey(name string, hexKey string) *ecdsa.PrivateKey {
	if hexKey == "" {
		fmt.Printf("ERROR: you must specify -%s\n", name)
		os.Exit(1)
	}
	key, err := signature.ParsePrivateKey(hexKey)
	if err != nil {
		fmt.Printf("ERROR: -%s: %s\n", name, err)
		os.Exit(1)
	}
	return key
}

func cmdSignBasic(f *globalFlags) {
	signFlags := newSignFlags("sign-basic", false)
	parseSubcommand(f, signFlags.flagset)
	validatorKey := requireKey("validator-key", signFlags.validatorKey)
	challenge, timestamp := signFlags.challengeAndTimestamp()
	p, err := issuer.NewBasicProof(challenge, timestamp, validatorKey)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(proof.EncodeHex(p.Bytes()))
}

func cmdSignSovereign(f *globalFlags) {
	signFlags := newSignFlags("sign-sovereign", true)
	parseSubcommand(f, signFlags.flagset)
	validatorKey := requireKey("validator-key", signFlags.validatorKey)
	challenge, timestamp := signFlags.challengeAndTimestamp()
	var senderSig proof.Signature
	if signFlags.senderSignature != "" {
		data, err := proof.DecodeHex(signFlags.senderSignature)
		if err != nil {
			fmt.Printf("ERROR: -sender-signature: %s\n", err)
			os.Exit(1)
		}
		if len(data) != proof.SignatureSize {
			fmt.Printf(
				"ERROR: -sender-signature must be %d bytes, got %d\n",
				proof.SignatureSize,
				len(data),
			)
			os.Exit(1)
		}
		copy(senderSig[:], data)
	} else {
		senderKey := requireKey("sender-key", signFlags.senderKey)
		var err error
		senderSig, err = issuer.SignChallenge(challenge, senderKey)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	}
	p, err := issuer.AttestSovereign(challenge, senderSig, timestamp, validatorKey)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(proof.EncodeHex(p.Bytes()))
}

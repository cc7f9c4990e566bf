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
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/gopoh/cbor"
	"github.com/blinklabs-io/gopoh/store"
)

func cmdStatus(f *globalFlags) {
	flagset := flag.NewFlagSet("status", flag.ExitOnError)
	parseSubcommand(f, flagset)
	cfg, logger := loadConfig(f)
	s, err := cfg.OpenStore(logger)
	if err != nil {
		fmt.Printf("ERROR: failed to open store: %s\n", err)
		os.Exit(1)
	}
	defer s.Close()
	count, err := s.Count()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("consumed-proofs: %d\n", count)
	if len(flagset.Args()) < 1 {
		return
	}
	key := store.KeyFor(requireProofArg(flagset))
	rec, ok, err := s.Get(key)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Printf("proof %s: unseen\n", key)
		return
	}
	fmt.Printf(
		"proof %s: consumed at %s, variant = %s, challenge = 0x%x, timestamp = %d\n",
		key,
		rec.ConsumedTime(),
		rec.ProofVariant(),
		rec.Challenge,
		rec.Timestamp,
	)
	raw := rec.Cbor()
	if len(raw) == 0 {
		raw, err = cbor.Encode(&rec)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	}
	dump, err := cbor.Dump(raw)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Print(dump)
}

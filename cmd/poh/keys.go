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

	"github.com/blinklabs-io/gopoh/address"
	"github.com/blinklabs-io/gopoh/issuer"
	"github.com/blinklabs-io/gopoh/signature"
	"github.com/ethereum/go-ethereum/common"
)

func cmdAddress(f *globalFlags) {
	flagset := flag.NewFlagSet("address", flag.ExitOnError)
	parseSubcommand(f, flagset)
	if len(flagset.Args()) < 1 {
		fmt.Printf("ERROR: you must specify a private key or address\n")
		os.Exit(1)
	}
	arg := flagset.Arg(0)
	var addr common.Address
	if parsed, err := address.Parse(arg); err == nil {
		addr = parsed
	} else {
		key, keyErr := signature.ParsePrivateKey(arg)
		if keyErr != nil {
			fmt.Printf("ERROR: %s is neither an address nor a private key\n", arg)
			os.Exit(1)
		}
		addr = signature.AddressOf(key)
	}
	fmt.Printf("hex:  %s\n", addr.Hex())
	fmt.Printf("tron: %s\n", address.Tron(addr))
}

func cmdChallenge(f *globalFlags) {
	flagset := flag.NewFlagSet("challenge", flag.ExitOnError)
	parseSubcommand(f, flagset)
	challenge, err := issuer.NewChallenge()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(challenge.String())
}

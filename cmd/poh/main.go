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
	"log/slog"
	"os"

	"github.com/blinklabs-io/gopoh/config"
	"github.com/blinklabs-io/gopoh/proof"
)

type globalFlags struct {
	flagset    *flag.FlagSet
	configFile string
	logLevel   string
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.configFile,
		"config",
		"",
		"path to YAML config file",
	)
	f.flagset.StringVar(
		&f.logLevel,
		"log-level",
		"",
		"log level (debug, info, warn, error). this overrides the config file",
	)
	return f
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	if len(f.flagset.Args()) > 0 {
		switch f.flagset.Arg(0) {
		case "address":
			cmdAddress(f)
		case "challenge":
			cmdChallenge(f)
		case "sign-basic":
			cmdSignBasic(f)
		case "sign-sovereign":
			cmdSignSovereign(f)
		case "split":
			cmdSplit(f)
		case "validate":
			cmdValidate(f)
		case "consume":
			cmdConsume(f)
		case "status":
			cmdStatus(f)
		default:
			fmt.Printf("Unknown subcommand: %s\n", f.flagset.Arg(0))
			os.Exit(1)
		}
	} else {
		fmt.Printf(
			"You must specify a subcommand (address, challenge, sign-basic, sign-sovereign, split, validate, consume or status)\n",
		)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the global overrides
func loadConfig(f *globalFlags) (*config.Config, *slog.Logger) {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	level, err := cfg.LogLevel()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	logger := slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)
	return cfg, logger
}

func parseSubcommand(f *globalFlags, flagset *flag.FlagSet) {
	if err := flagset.Parse(f.flagset.Args()[1:]); err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
}

func requireProofArg(flagset *flag.FlagSet) []byte {
	if len(flagset.Args()) < 1 {
		fmt.Printf("ERROR: you must specify a hex-encoded proof\n")
		os.Exit(1)
	}
	data, err := proof.DecodeHex(flagset.Arg(0))
	if err != nil {
		fmt.Printf("ERROR: failed to decode proof: %s\n", err)
		os.Exit(1)
	}
	return data
}

func requireVariant(name string) proof.Variant {
	variant, err := proof.ParseVariant(name)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	return variant
}

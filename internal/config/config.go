// Copyright (c) 2025 The ledgerforge developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package config loads the engine's tunable parameters from an INI file.
// It is a library config loader, not a CLI: nothing here touches os.Args.
package config

import (
	"fmt"
	"math/big"

	flags "github.com/jessevdk/go-flags"
)

// Config holds the parameters NewBlockchain needs to stand up an engine
// instance.
type Config struct {
	GenesisTargetHex string `long:"genesis_target" description:"proof-of-work target for the genesis block, as hex" required:"true"`
	MaxMintPerTx     int64  `long:"max_mint_per_tx" description:"maximum total coinbase output per transaction" required:"true"`
}

// GenesisTarget parses GenesisTargetHex as a base-16 integer.
func (c *Config) GenesisTarget() (*big.Int, error) {
	target, ok := new(big.Int).SetString(c.GenesisTargetHex, 16)
	if !ok {
		return nil, fmt.Errorf("genesis_target %q is not valid hex", c.GenesisTargetHex)
	}
	return target, nil
}

// Load reads and parses the INI file at path.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	parser := flags.NewParser(cfg, flags.Default)
	iniParser := flags.NewIniParser(parser)
	if err := iniParser.ParseFile(path); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

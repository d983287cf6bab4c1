// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the c2gcli commands to instantiate
// the other adapter components (the API client and the local vault)
// using those loaded configuration settings.
// The parsed and validated configuration is handed to its ultimate
// components as a series of individual parameters instead of the
// Config struct itself, so each component keeps validating its own
// inputs; this causes a bit of redundancy in favor of a defensive
// solution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/momeni/car2go-client/pkg/adapter/api"
	"github.com/momeni/car2go-client/pkg/adapter/config/settings"
	"github.com/momeni/car2go-client/pkg/adapter/vault"
	"gopkg.in/yaml.v3"
)

// Defaults which apply when the configuration file or one of its
// settings is absent. The default base URL matches the development
// server address of the original web client.
const (
	DefaultBaseURL   = "http://127.0.0.1:8000"
	DefaultVaultPath = "c2g-vault.db"
)

// Config contains all car2go client configuration settings.
type Config struct {
	Server  Server  `yaml:"server"`
	Vault   Vault   `yaml:"vault"`
	Logging Logging `yaml:"logging"`
}

// Server contains the server collaborator related settings.
type Server struct {
	// BaseURL locates the car2go REST APIs, e.g.,
	// http://127.0.0.1:8000 without a trailing slash.
	BaseURL string `yaml:"base-url" validate:"required,url"`
	// Timeout bounds each HTTP request. A missing value selects the
	// api.DefaultTimeout default.
	Timeout *settings.Duration `yaml:"timeout"`
}

// Vault contains the local session persistence settings.
type Vault struct {
	// Path of the SQLite database file holding the persisted session.
	Path string `yaml:"path" validate:"required"`
}

// Logging contains the logging settings.
type Logging struct {
	// Level is the minimum level of emitted log records, one of the
	// debug, info, warn, or error names. A missing value selects info.
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
}

// Default returns the configuration which applies in absence of a
// configuration file.
func Default() *Config {
	return &Config{
		Server: Server{BaseURL: DefaultBaseURL},
		Vault:  Vault{Path: DefaultVaultPath},
	}
}

// Load function loads, validates, and normalizes the configuration
// file and returns its settings as an instance of the Config struct.
// A missing file is not an error: this client should be usable with
// zero configuration, hence, defaults are returned for it. Unknown
// yaml fields are rejected so misspelled settings cannot be ignored
// silently.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Default(), nil
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c := Default()
	d := yaml.NewDecoder(strings.NewReader(string(data)))
	d.KnownFields(true)
	if err := d.Decode(c); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := validator.New().Struct(c); err != nil {
		return nil, fmt.Errorf("validating config file: %w", err)
	}
	return c, nil
}

// NewAPIClient instantiates the HTTP client adapter of the server
// collaborator based on the `c` settings.
func (c *Config) NewAPIClient() (*api.Client, error) {
	var timeout time.Duration
	if c.Server.Timeout != nil {
		timeout = time.Duration(*c.Server.Timeout)
	}
	return api.New(c.Server.BaseURL, timeout)
}

// OpenVault opens the local session vault based on the `c` settings.
func (c *Config) OpenVault() (*vault.Vault, error) {
	return vault.Open(c.Vault.Path)
}

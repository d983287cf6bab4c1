// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/momeni/car2go-client/pkg/adapter/api"
	"github.com/momeni/car2go-client/pkg/adapter/config"
	"github.com/momeni/car2go-client/pkg/adapter/vault"
	"github.com/momeni/car2go-client/pkg/core/log"
	"github.com/momeni/car2go-client/pkg/core/usecase/linkuc"
	"github.com/momeni/car2go-client/pkg/core/usecase/sessuc"
)

// app bundles the adapter instances and the session store which every
// command needs. The writable session store stays in this package;
// use cases only ever receive its narrower views.
type app struct {
	cfg   *config.Config
	vault *vault.Vault
	api   *api.Client
	store *sessuc.Store
}

// newApp loads the configuration, installs the logger, opens the local
// vault, instantiates the API client, and restores any persisted
// session. A failing session restoration is advisory and only logged;
// the commands behave as if no user was logged in.
func newApp(ctx context.Context) (*app, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	if err := log.Setup(c.Logging.Level); err != nil {
		return nil, fmt.Errorf("setting up logging: %w", err)
	}
	client, err := c.NewAPIClient()
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}
	v, err := c.OpenVault()
	if err != nil {
		return nil, fmt.Errorf("opening vault: %w", err)
	}
	store := sessuc.New(client, v)
	if err := store.Restore(ctx); err != nil {
		log.Warn(
			ctx, "session restoration failed",
			log.Err("error", err),
		)
	}
	return &app{cfg: c, vault: v, api: client, store: store}, nil
}

// Close releases the vault handle, logging instead of failing as the
// commands have already produced their outcome at this point.
func (a *app) Close(ctx context.Context) {
	if err := a.vault.Close(); err != nil {
		log.Warn(ctx, "closing vault failed", log.Err("error", err))
	}
}

// stdinConfirmer creates a linkuc.Confirmer which prints the prompt to
// out and reads one line from in, accepting the o/oui (and y/yes)
// answers. Every other answer, as well as a read failure, declines.
func stdinConfirmer(in io.Reader, out io.Writer) linkuc.Confirmer {
	r := bufio.NewReader(in)
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [o/N] ", prompt)
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "o", "oui", "y", "yes":
			return true
		}
		return false
	}
}

// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sessuc contains the session use case which is the single
// source of truth for "who is logged in". It owns the Identity and the
// bearer Credential, persists them in the local vault, and restores
// them on process start. All other use cases hold the read-only
// Session view of this store; only the command-level entry points hold
// the writable Store itself (plus the Invalidator capability which the
// dashboard use case receives explicitly for its fail-closed policy).
package sessuc

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/momeni/car2go-client/pkg/core/gateway"
	"github.com/momeni/car2go-client/pkg/core/log"
	"github.com/momeni/car2go-client/pkg/core/model"
)

// Vault keys of the two independently persisted session items.
// They mirror the two browser localStorage keys of the original
// web client and are only cleared together, at logout time.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// ErrNotLoggedIn indicates that an operation requiring a session was
// attempted while the store holds no credential.
var ErrNotLoggedIn = errors.New("not logged in")

// Session is the read-only view of the session store. Consumers which
// only need to know the current identity or attach the credential to
// requests should depend on this interface, not on *Store.
type Session interface {
	// Token returns the current bearer credential, if any.
	Token() (gateway.Credential, bool)
	// User returns the session user, if any. The session user shape
	// is derived from the submitted login email and is looser than
	// the dashboard Identity; see model.SessionUser.
	User() (model.SessionUser, bool)
}

// Invalidator is the narrow write capability which the dashboard use
// case needs in order to escalate a load failure to a full session
// invalidation. It is separated from *Store so views can be granted
// exactly this much and nothing more.
type Invalidator interface {
	// Invalidate drops the in-memory and persisted session state.
	Invalidate() error
}

// Store is the session store use case. It is safe for concurrent
// reads; writes only happen on the user-gesture driven login and
// logout paths.
type Store struct {
	auth  gateway.Auth
	vault gateway.Vault

	mu   sync.RWMutex
	cred gateway.Credential
	user *model.SessionUser
}

// New instantiates a session store over the a authentication gateway
// and the v local vault.
func New(a gateway.Auth, v gateway.Vault) *Store {
	return &Store{auth: a, vault: v}
}

// Restore loads any previously persisted credential and session user
// and installs them as the current session. The restoration is
// advisory and best-effort: nothing is verified locally because the
// real write-barrier is the 401 response of the next authorized
// request, not a local expiry check. An absent credential simply
// leaves the store logged-out. A present credential with a corrupt
// session user record restores the credential alone.
// Only vault I/O failures are reported as errors.
func (s *Store) Restore(ctx context.Context) error {
	tok, ok, err := s.vault.Get(KeyToken)
	if err != nil {
		return fmt.Errorf("reading %q from vault: %w", KeyToken, err)
	}
	if !ok {
		return nil
	}
	var user *model.SessionUser
	raw, ok, err := s.vault.Get(KeyUser)
	if err != nil {
		return fmt.Errorf("reading %q from vault: %w", KeyUser, err)
	}
	if ok {
		u := &model.SessionUser{}
		if err := json.Unmarshal([]byte(raw), u); err != nil {
			log.Warn(
				ctx, "ignoring corrupt persisted session user",
				log.Err("error", err),
			)
		} else {
			user = u
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = gateway.Credential(tok)
	s.user = user
	return nil
}

// Login exchanges the form-encoded email and password for a bearer
// token using the authentication gateway. On success, the session
// user is derived from the submitted email (not from a server response
// body), both items are persisted, and the store signals success by
// returning nil. On failure, the store (including any previously
// established session) is left completely untouched and the gateway
// error is returned as is: a 401 maps to cerr.KindAuthRejected, a 5xx
// or transport failure to cerr.KindServiceUnavailable, and anything
// else to a generic login failure.
// Persistence failures do not fail an otherwise successful login; the
// vault is advisory exactly like the restore path, so such failures
// are only logged.
func (s *Store) Login(ctx context.Context, email, password string) error {
	cred, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	user := &model.SessionUser{Email: email}
	s.mu.Lock()
	s.cred = cred
	s.user = user
	s.mu.Unlock()
	if err := s.persist(cred, user); err != nil {
		log.Warn(
			ctx, "session established but not persisted",
			log.Err("error", err),
		)
	}
	return nil
}

func (s *Store) persist(
	cred gateway.Credential, user *model.SessionUser,
) error {
	if err := s.vault.Put(KeyToken, string(cred)); err != nil {
		return fmt.Errorf("persisting %q: %w", KeyToken, err)
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serializing session user: %w", err)
	}
	if err := s.vault.Put(KeyUser, string(raw)); err != nil {
		return fmt.Errorf("persisting %q: %w", KeyUser, err)
	}
	return nil
}

// Logout clears the in-memory session and deletes both persisted
// items. No server-side call is performed; invalidation is client-only.
func (s *Store) Logout() error {
	return s.Invalidate()
}

// Invalidate reifies the Invalidator interface by clearing the
// in-memory state first and then the persisted state, so a failing
// vault cannot keep an already rejected session alive in memory.
func (s *Store) Invalidate() error {
	s.mu.Lock()
	s.cred = ""
	s.user = nil
	s.mu.Unlock()
	if err := s.vault.Delete(KeyToken, KeyUser); err != nil {
		return fmt.Errorf("clearing persisted session: %w", err)
	}
	return nil
}

// Token returns the current bearer credential, if any.
func (s *Store) Token() (gateway.Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred, s.cred != ""
}

// User returns the current session user, if any.
func (s *Store) User() (model.SessionUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.SessionUser{}, false
	}
	return *s.user, true
}

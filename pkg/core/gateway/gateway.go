// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gateway declares the outbound ports of the core layer.
// The car2go server is an external collaborator; the core only talks
// to it through these interfaces, so the adapters layer can realize
// them with an HTTP client while tests substitute fakes. The local
// vault which persists the session between process runs is declared
// here as well for the same reason.
package gateway

import (
	"context"

	"github.com/momeni/car2go-client/pkg/core/model"
)

// Credential is the opaque bearer token proving an authenticated
// session. The client never inspects it; it is attached verbatim to
// every authorized request.
type Credential string

// Auth is the authentication surface of the server collaborator.
type Auth interface {
	// Login exchanges form-encoded credentials for a bearer token.
	// Expected failures are reported as cerr errors: a 401 response
	// maps to KindAuthRejected, a 5xx response or a transport failure
	// maps to KindServiceUnavailable, and any other non-2xx response
	// is reported as a plain error.
	Login(ctx context.Context, email, password string) (Credential, error)

	// Register submits the registration form. A non-2xx response is
	// reported as a KindValidationRejected error carrying the server
	// detail message verbatim.
	Register(ctx context.Context, form model.Registration) error

	// CurrentUser resolves the identity owning the cred token.
	CurrentUser(ctx context.Context, cred Credential) (model.Identity, error)
}

// Bookings is the booking collection surface of the server
// collaborator. The returned scope (whose bookings) is decided
// server-side from the role bound to the credential.
type Bookings interface {
	ListForUser(ctx context.Context, cred Credential) ([]model.Booking, error)
}

// Links is the apprenti/accompagnateur relation surface of the server
// collaborator.
type Links interface {
	ListForApprenti(ctx context.Context, cred Credential, apprentiID int) ([]model.Link, error)
	Delete(ctx context.Context, cred Credential, linkID int) error
}

// Vault persists small named client-state items between process runs.
// The credential and the serialized session user are stored under two
// independent keys and are only guaranteed to be consistent with each
// other when written and deleted together.
type Vault interface {
	// Get loads the value of key. The second result reports whether
	// the key was present at all, distinguishing an absent key from
	// an empty stored value.
	Get(key string) (string, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(key, value string) error

	// Delete removes all given keys; absent keys are not an error.
	Delete(keys ...string) error
}

// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// Models in this package mirror the JSON documents which the car2go
// server exchanges with its clients, hence, structs are annotated with
// json tags matching the server-side (French) snake_case field names.
package model

// Role determines which dashboard variant an authenticated user sees.
// It is an open string union as the server may introduce further role
// values; unrecognized values map to no dashboard variant at all.
type Role string

// Known dashboard roles. The server stores them as plain strings.
const (
	RoleApprenti       Role = "apprenti"       // learner
	RoleAccompagnateur Role = "accompagnateur" // accompanying driver
	RoleAdmin          Role = "admin"          // administrator
)

// Identity models the authenticated user profile as reported by the
// GET /auth/me API. It is the identity which the dashboard trusts for
// selecting a view variant.
type Identity struct {
	ID     int    `json:"id"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// SessionUser is the looser identity shape which the session layer
// persists locally alongside the bearer token. It is derived from the
// submitted login email, not from a server response, and carries a
// generic role vocabulary (admin/user) which does not match the
// three-way dashboard Role set. The two shapes are deliberately kept
// apart instead of being unified, so a stale persisted record can
// never stand in for the server-reported identity.
type SessionUser struct {
	ID    int    `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Registration carries the profile fields of the POST /auth/register
// API. Fields are role-conditional: an accompagnateur must provide a
// license number and its obtention date, while an apprenti must
// provide a logbook number. The validate tags encode that branching,
// so the form can be rejected client-side before any request is
// dispatched; the server revalidates anyways and its verbatim detail
// message wins on a non-2xx response.
type Registration struct {
	Nom           string `json:"nom" validate:"required"`
	Prenom        string `json:"prenom" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	Telephone     string `json:"telephone" validate:"required"`
	Adresse       string `json:"adresse" validate:"required"`
	DateNaissance string `json:"date_naissance" validate:"required"`
	Role          Role   `json:"role" validate:"required,oneof=apprenti accompagnateur"`

	// accompagnateur-only fields
	LicenseDate  string `json:"license_date,omitempty" validate:"required_if=Role accompagnateur,excluded_unless=Role accompagnateur"`
	NumeroPermis string `json:"numero_permis,omitempty" validate:"required_if=Role accompagnateur,excluded_unless=Role accompagnateur"`

	// apprenti-only field
	NumeroLivret string `json:"numero_livret,omitempty" validate:"required_if=Role apprenti,excluded_unless=Role apprenti"`
}

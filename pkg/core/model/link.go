// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Accompagnateur is the profile excerpt of one accompanying driver as
// embedded in a Link record.
type Accompagnateur struct {
	ID     int    `json:"id"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Email  string `json:"email"`
}

// Link models one apprenti/accompagnateur relation record. Links are
// created by the registration flow (out of the client scope) and may
// be deleted one at a time by their own ID.
type Link struct {
	ID               int            `json:"id"`
	AccompagnateurID int            `json:"accompagnateur_id"`
	Lien             string         `json:"lien"`
	Accompagnateur   Accompagnateur `json:"accompagnateur"`
}

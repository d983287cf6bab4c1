// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// BookingPurposeSelf is the purpose tag of a solo practice session.
// Any other purpose value denotes an accompanied session.
const BookingPurposeSelf = "self"

// Human-readable motif labels, as displayed by all dashboard variants
// and by the booking details overlay.
const (
	MotifSelf        = "Perfectionnement"
	MotifAccompanied = "Accompagnement de l'apprenti XX"
)

// Car models a vehicle record as embedded read-only inside a Booking.
// The core never fetches cars independently.
type Car struct {
	ID                int     `json:"id"`
	Nom               string  `json:"nom"`
	Modele            string  `json:"modele"`
	AnneeFab          int     `json:"annee_fab"`
	Type              string  `json:"type"`
	Plaque            string  `json:"plaque"`
	ControleTechnique string  `json:"controle_technique"`
	PrixParHeure      float64 `json:"prix_par_heure"`
	Disponible        bool    `json:"disponible"`
	ImageURL          string  `json:"image_url"`
}

// Booking models one vehicle reservation of the current user, with its
// car embedded. Bookings are fetched as an immutable snapshot per
// dashboard load and are never mutated by the client.
type Booking struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	CarID     int       `json:"car_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Purpose   string    `json:"purpose"`
	Status    string    `json:"status"`
	Car       Car       `json:"car"`
}

// Motif derives the human-readable purpose label of this booking.
// The purpose tag is two-valued: the "self" tag means a solo practice
// session while every other value (including the empty string) is
// interpreted as an accompanied session.
func (b Booking) Motif() string {
	if b.Purpose == BookingPurposeSelf {
		return MotifSelf
	}
	return MotifAccompanied
}

// Duration computes the booked time span. The server does not
// guarantee that EndTime follows StartTime, hence, inverted ranges
// are tolerated by taking the absolute difference.
func (b Booking) Duration() time.Duration {
	d := b.EndTime.Sub(b.StartTime)
	if d < 0 {
		d = -d
	}
	return d
}

// PlaceholderBooking returns the single illustrative entry which the
// administrator dashboard exposes. The admin variant receives no real
// booking collection from the server; this placeholder keeps the
// selection and overlay flow demonstrable until the admin scope is
// actually implemented.
func PlaceholderBooking() Booking {
	return Booking{
		ID:        1,
		UserID:    1,
		CarID:     1,
		StartTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC),
		Purpose:   "Test",
		Status:    "En attente",
		Car: Car{
			ID:                1,
			Nom:               "Test",
			Modele:            "Test",
			AnneeFab:          2025,
			Type:              "Test",
			Plaque:            "Test",
			ControleTechnique: "2025-01-01",
			PrixParHeure:      0,
			Disponible:        true,
			ImageURL:          "https://via.placeholder.com/150",
		},
	}
}

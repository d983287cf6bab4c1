// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"
	"time"

	"github.com/momeni/car2go-client/pkg/core/model"
	"github.com/stretchr/testify/assert"
)

func TestMotifDerivation(t *testing.T) {
	for _, tc := range []struct {
		name    string
		purpose string
		motif   string
	}{
		{"self", "self", model.MotifSelf},
		{"tandem", "tandem", model.MotifAccompanied},
		{"empty", "", model.MotifAccompanied},
		{"uppercase-self", "Self", model.MotifAccompanied},
		{"arbitrary", "whatever", model.MotifAccompanied},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := model.Booking{Purpose: tc.purpose}
			assert.Equal(t, tc.motif, b.Motif(), "wrong motif label")
		})
	}
}

func TestDurationToleratesInvertedRanges(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	b := model.Booking{StartTime: start, EndTime: end}
	assert.Equal(t, 90*time.Minute, b.Duration())

	inverted := model.Booking{StartTime: end, EndTime: start}
	assert.Equal(
		t, 90*time.Minute, inverted.Duration(),
		"inverted range must yield the absolute duration",
	)

	zero := model.Booking{StartTime: start, EndTime: start}
	assert.Equal(t, time.Duration(0), zero.Duration())
}

func TestPlaceholderBooking(t *testing.T) {
	p := model.PlaceholderBooking()
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "Test", p.Car.Nom)
	assert.Equal(t, "En attente", p.Status)
	assert.Equal(
		t, model.MotifAccompanied, p.Motif(),
		"the placeholder purpose is not the self tag",
	)
	assert.True(t, p.Car.Disponible)
	assert.Equal(t, time.Hour, p.Duration())
}

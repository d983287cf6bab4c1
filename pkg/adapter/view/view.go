// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package view renders the dashboard variants, the booking details
// overlay, and the accompanying drivers panel as plain text. Renderers
// are pure projections: they only format the models they are handed
// and never fetch or mutate any state. User-facing strings keep the
// French wording of the original web client.
package view

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/momeni/car2go-client/pkg/core/model"
	"github.com/momeni/car2go-client/pkg/core/usecase/dashuc"
)

// timeLayout is the locale-style timestamp format of the dashboards
// and the overlay; raw ISO timestamps are never shown to the user.
const timeLayout = "02/01/2006 15:04"

// Render writes the welcome line and the role-specific dashboard
// variant of the d snapshot to w. An unrecognized role renders the
// welcome line alone, with no panel at all.
func Render(w io.Writer, d *dashuc.Dashboard) {
	fmt.Fprintf(w, "Bienvenue, %s !\n\n", d.Identity.Prenom)
	switch d.Variant {
	case dashuc.VariantApprenti:
		renderApprenti(w, d.Bookings)
	case dashuc.VariantAccompagnateur:
		renderAccompagnateur(w, d.Bookings)
	case dashuc.VariantAdmin:
		renderAdmin(w)
	}
}

// renderApprenti writes the learner's tabular bookings view: one row
// per booking with the car name, the locale-formatted start and end
// timestamps, the duration in hours, and the derived motif label.
func renderApprenti(w io.Writer, bookings []model.Booking) {
	fmt.Fprintln(w, "📅 Mes Réservations")
	if len(bookings) == 0 {
		fmt.Fprintln(w, "Aucune réservation pour le moment.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Nom Voiture\tDébut\tFin\tDurée (h)\tMotif")
	for _, b := range bookings {
		name := b.Car.Nom
		if name == "" {
			name = "Non disponible"
		}
		fmt.Fprintf(
			tw, "%s\t%s\t%s\t%s\t%s\n",
			name,
			b.StartTime.Format(timeLayout),
			b.EndTime.Format(timeLayout),
			hours(b),
			b.Motif(),
		)
	}
	tw.Flush()
}

// renderAccompagnateur writes the accompanying driver's compact view:
// one status line per accompanied session.
func renderAccompagnateur(w io.Writer, bookings []model.Booking) {
	fmt.Fprintln(w, "🚗 Sessions Accompagnées")
	if len(bookings) == 0 {
		fmt.Fprintln(w, "Aucune session prévue.")
		return
	}
	for _, b := range bookings {
		fmt.Fprintf(
			w, "🚗 %s - %s → %s (%s)\n",
			b.Car.Nom,
			b.StartTime.Format(timeLayout),
			b.EndTime.Format(timeLayout),
			b.Status,
		)
	}
}

// renderAdmin writes the administrator view. It renders no shared
// booking data; only the single illustrative placeholder entry is
// offered for selection (see model.PlaceholderBooking).
func renderAdmin(w io.Writer) {
	p := model.PlaceholderBooking()
	fmt.Fprintln(w, "⚙️ Gestion des Réservations")
	fmt.Fprintln(
		w, "Sélectionnez une réservation pour afficher ses détails.",
	)
	fmt.Fprintf(
		w, "🚗 %s - %s → %s (%s)\n",
		p.Car.Nom,
		p.StartTime.Format(timeLayout),
		p.EndTime.Format("15:04"),
		p.Status,
	)
}

// hours formats a booking duration as a plain decimal hours count,
// without a trailing unit.
func hours(b model.Booking) string {
	return strconv.FormatFloat(b.Duration().Hours(), 'g', -1, 64)
}

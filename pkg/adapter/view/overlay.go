// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package view

import (
	"fmt"
	"io"

	"github.com/momeni/car2go-client/pkg/core/model"
)

// RenderOverlay writes the booking details panel of b to w. It shows
// the car identity, plate, manufacture year, type, technical
// inspection date, locale-formatted start and end timestamps, the
// derived motif, the status, the hourly price, and the availability
// flag as a localized yes/no.
func RenderOverlay(w io.Writer, b model.Booking) {
	disponible := "Non"
	if b.Car.Disponible {
		disponible = "Oui"
	}
	fmt.Fprintln(w, "Détails de la Réservation")
	fmt.Fprintf(w, "Voiture : %s - %s\n", b.Car.Nom, b.Car.Modele)
	fmt.Fprintf(w, "Plaque : %s\n", b.Car.Plaque)
	fmt.Fprintf(w, "Année : %d\n", b.Car.AnneeFab)
	fmt.Fprintf(w, "Type : %s\n", b.Car.Type)
	fmt.Fprintf(w, "Contrôle Technique : %s\n", b.Car.ControleTechnique)
	fmt.Fprintf(w, "Début : %s\n", b.StartTime.Format(timeLayout))
	fmt.Fprintf(w, "Fin : %s\n", b.EndTime.Format(timeLayout))
	fmt.Fprintf(w, "Motif : %s\n", b.Motif())
	fmt.Fprintf(w, "Statut : %s\n", b.Status)
	fmt.Fprintf(w, "Prix : %g €/h\n", b.Car.PrixParHeure)
	fmt.Fprintf(w, "Disponible : %s\n", disponible)
}

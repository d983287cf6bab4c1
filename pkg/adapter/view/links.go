// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/momeni/car2go-client/pkg/core/model"
)

// RenderLinks writes the accompanying drivers panel to w: a table of
// the links, preceded by the errMsg panel error line if one is set.
// An error does not suppress the table: the previously loaded list
// stays visible next to the message, matching the panel's localized
// failure policy.
func RenderLinks(w io.Writer, links []model.Link, errMsg string) {
	fmt.Fprintln(w, "Mes Accompagnateurs")
	if errMsg != "" {
		fmt.Fprintln(w, errMsg)
	}
	if len(links) == 0 {
		fmt.Fprintln(w, "Aucun accompagnateur trouvé.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNom\tPrénom\tEmail\tLien")
	for _, l := range links {
		fmt.Fprintf(
			tw, "%d\t%s\t%s\t%s\t%s\n",
			l.ID,
			l.Accompagnateur.Nom,
			l.Accompagnateur.Prenom,
			l.Accompagnateur.Email,
			l.Lien,
		)
	}
	tw.Flush()
}

// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the car2go
// client. Commands are organized using the cobra library.
// The root command renders the role-specific dashboard of the current
// session while sub-commands cover the session lifecycle (login,
// logout, register) and the accompanying drivers management panel.
//
//	./c2gcli [-c /path/of/config.yaml] [--select <booking-id>]
//	./c2gcli login <email> [--password <password>]
//	./c2gcli logout
//	./c2gcli register --nom ... --role apprenti|accompagnateur ...
//	./c2gcli accompagnateurs
//	./c2gcli accompagnateurs remove <link-id> [--yes]
//	./c2gcli accompagnateurs add
package command

import (
	"context"
	"fmt"
	"os"

	"github.com/momeni/car2go-client/pkg/adapter/view"
	"github.com/momeni/car2go-client/pkg/core/cerr"
	"github.com/momeni/car2go-client/pkg/core/model"
	"github.com/momeni/car2go-client/pkg/core/usecase/dashuc"
	"github.com/spf13/cobra"
)

var cfgPath string

var selectBookingID int

var rootCmd = &cobra.Command{
	Use:   "c2gcli",
	Short: "Command-line client of the car2go vehicle-booking service",
	Long: `Command-line client of the car2go vehicle-booking service.
Running it without a sub-command renders the dashboard of the current
session: the session is restored from the local vault, the current
identity and its role-scoped bookings are fetched from the server, and
the view variant matching the identity role (apprenti, accompagnateur,
or admin) is printed. The --select flag additionally opens the details
overlay of one booking of the rendered list.
Any failure while loading the dashboard invalidates the session and
asks for a fresh login.`,
	Args: cobra.NoArgs,
	RunE: showDashboard,
}

func showDashboard(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(ctx)
	uc := dashuc.New(a.store, a.store, a.api, a.api)
	d, err := uc.Load(ctx)
	if err != nil {
		if cerr.Is(err, cerr.KindUnauthorizedSession) {
			return loginRequiredErr(err)
		}
		return err
	}
	out := cmd.OutOrStdout()
	view.Render(out, d)
	if selectBookingID == 0 {
		return nil
	}
	candidates := d.Bookings
	if d.Variant == dashuc.VariantAdmin {
		candidates = []model.Booking{model.PlaceholderBooking()}
	}
	ov := &dashuc.Overlay{}
	for _, b := range candidates {
		if b.ID == selectBookingID {
			ov.Select(b)
			break
		}
	}
	b, ok := ov.Current()
	if !ok {
		return fmt.Errorf(
			"réservation introuvable : %d", selectBookingID,
		)
	}
	fmt.Fprintln(out)
	view.RenderOverlay(out, b)
	return nil
}

// loginRequiredErr converts a session failure into the CLI equivalent
// of the web client's redirect to the login view.
func loginRequiredErr(err error) error {
	return fmt.Errorf(
		"session absente ou expirée, reconnectez-vous"+
			" avec « c2gcli login » : %w", err,
	)
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
	rootCmd.Flags().IntVar(
		&selectBookingID, "select", 0,
		"open the details overlay of this booking id",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
// The default path is resolved in the user configuration directory, so
// each user keeps an own session vault and server selection; a missing
// file at that path simply selects the default settings.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		d, err := os.UserConfigDir()
		if err != nil {
			cfgPath = "c2gcli.yaml"
			return
		}
		cfgPath = d + "/c2gcli/config.yaml"
	}
}

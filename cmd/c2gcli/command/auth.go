// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/momeni/car2go-client/pkg/core/model"
	"github.com/spf13/cobra"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Authenticate and persist the session locally",
	Long: `Authenticate against the car2go server with an email and a
password, then persist the bearer token and the derived session user
in the local vault so subsequent commands reuse the session. The
password is taken from the --password flag or prompted on stdin.
A rejected login leaves any previously established session untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	email := args[0]
	if err := validator.New().Var(email, "required,email"); err != nil {
		return fmt.Errorf("adresse email invalide : %q", email)
	}
	password := loginPassword
	if password == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Mot de passe : ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("reading password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(ctx)
	if err := a.store.Login(ctx, email, password); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Connexion réussie !")
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the locally persisted session",
	Long: `Clear the bearer token and the session user from the local
vault. No server-side call is performed; the invalidation is purely
client-side.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := context.Background()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close(ctx)
		if err := a.store.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Déconnexion réussie.")
		return nil
	},
}

var regForm model.Registration

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new apprenti or accompagnateur profile",
	Long: `Register a new user profile. The required fields depend on
the chosen role: an accompagnateur must provide a license number and
its obtention date while an apprenti must provide a logbook number.
The form is validated locally before any request and the server detail
message is surfaced verbatim when the server rejects it anyways.
Registering does not log the new user in.`,
	Args: cobra.NoArgs,
	RunE: runRegister,
}

func runRegister(cmd *cobra.Command, _ []string) error {
	if err := validator.New().Struct(&regForm); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			out := cmd.OutOrStdout()
			for _, ferr := range verrs {
				fmt.Fprintf(
					out, "champ invalide : %s (%s)\n",
					ferr.Field(), ferr.Tag(),
				)
			}
		}
		return fmt.Errorf("formulaire d'inscription invalide")
	}
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(ctx)
	if err := a.api.Register(ctx, regForm); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Inscription réussie !")
	return nil
}

func init() {
	loginCmd.Flags().StringVar(
		&loginPassword, "password", "",
		"password (prompted on stdin when omitted)",
	)
	f := registerCmd.Flags()
	f.StringVar(&regForm.Nom, "nom", "", "last name")
	f.StringVar(&regForm.Prenom, "prenom", "", "first name")
	f.StringVar(&regForm.Email, "email", "", "email address")
	f.StringVar(&regForm.Password, "password", "", "password")
	f.StringVar(&regForm.Telephone, "telephone", "", "phone number")
	f.StringVar(&regForm.Adresse, "adresse", "", "postal address")
	f.StringVar(
		&regForm.DateNaissance, "date-naissance", "",
		"birth date (YYYY-MM-DD)",
	)
	f.StringVar(
		(*string)(&regForm.Role), "role", "",
		"role: apprenti or accompagnateur",
	)
	f.StringVar(
		&regForm.LicenseDate, "license-date", "",
		"license obtention date (accompagnateur only)",
	)
	f.StringVar(
		&regForm.NumeroPermis, "numero-permis", "",
		"license number (accompagnateur only)",
	)
	f.StringVar(
		&regForm.NumeroLivret, "numero-livret", "",
		"logbook number (apprenti only)",
	)
	rootCmd.AddCommand(loginCmd, logoutCmd, registerCmd)
}

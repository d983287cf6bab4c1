// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/momeni/car2go-client/pkg/adapter/view"
	"github.com/momeni/car2go-client/pkg/core/cerr"
	"github.com/momeni/car2go-client/pkg/core/usecase/linkuc"
	"github.com/momeni/car2go-client/pkg/core/usecase/sessuc"
	"github.com/spf13/cobra"
)

var removeAssumeYes bool

var accompCmd = &cobra.Command{
	Use:     "accompagnateurs",
	Aliases: []string{"acc"},
	Short:   "Manage the accompanying drivers of the current learner",
	Long: `Manage the accompanying drivers of the currently logged-in
learner. Without a sub-command, the list of the learner's links is
fetched and rendered. A failing fetch only reports an error inside
this panel; in contrast to the dashboard, it does not invalidate the
session.`,
	Args: cobra.NoArgs,
	RunE: runAccompList,
}

// newLinkUseCase wires the accompanying drivers use case for the
// current session and resolves the learner identity which scopes it.
// A missing or stale session is reported as the same unauthorized
// error in both cases, so callers redirect to the login flow.
func newLinkUseCase(
	ctx context.Context, a *app, confirm linkuc.Confirmer,
) (*linkuc.UseCase, int, error) {
	cred, ok := a.store.Token()
	if !ok {
		return nil, 0, cerr.UnauthorizedSession(
			0, sessuc.ErrNotLoggedIn,
		)
	}
	id, err := a.api.CurrentUser(ctx, cred)
	if err != nil {
		return nil, 0, cerr.UnauthorizedSession(
			0, fmt.Errorf("resolving current user: %w", err),
		)
	}
	return linkuc.New(a.store, a.api, confirm), id.ID, nil
}

func runAccompList(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(ctx)
	confirm := stdinConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
	uc, apprentiID, err := newLinkUseCase(ctx, a, confirm)
	if err != nil {
		return loginRequiredErr(err)
	}
	// The panel renders its own error message; only a missing session
	// escalates out of it.
	if err := uc.Load(ctx, apprentiID); err != nil &&
		cerr.Is(err, cerr.KindUnauthorizedSession) {
		return loginRequiredErr(err)
	}
	view.RenderLinks(cmd.OutOrStdout(), uc.Links(), uc.ErrMsg())
	return nil
}

var accompRemoveCmd = &cobra.Command{
	Use:   "remove <link-id>",
	Short: "Delete one accompanying driver link",
	Long: `Delete exactly one accompanying driver link by its own id,
after an interactive confirmation (or directly with --yes). A failed
delete leaves the link list unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runAccompRemove,
}

func runAccompRemove(cmd *cobra.Command, args []string) error {
	linkID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("identifiant de lien invalide : %q", args[0])
	}
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(ctx)
	confirm := stdinConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
	if removeAssumeYes {
		confirm = func(string) bool { return true }
	}
	uc, _, err := newLinkUseCase(ctx, a, confirm)
	if err != nil {
		return loginRequiredErr(err)
	}
	if err := uc.Remove(ctx, linkID); err != nil {
		if msg := uc.ErrMsg(); msg != "" {
			fmt.Fprintln(cmd.OutOrStdout(), msg)
		}
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Accompagnateur supprimé.")
	return nil
}

var accompAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an accompanying driver (not implemented yet)",
	Long: `Placeholder of the link creation flow. The capability is
exposed explicitly, but no creation request is implemented yet; the
command only acknowledges the action.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := context.Background()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close(ctx)
		confirm := stdinConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
		uc, _, err := newLinkUseCase(ctx, a, confirm)
		if err != nil {
			return loginRequiredErr(err)
		}
		err = uc.Add()
		if errors.Is(err, linkuc.ErrAddNotImplemented) {
			fmt.Fprintln(
				cmd.OutOrStdout(),
				"Ajout d'un accompagnateur (fonctionnalité à venir)",
			)
			return nil
		}
		return err
	},
}

func init() {
	accompRemoveCmd.Flags().BoolVarP(
		&removeAssumeYes, "yes", "y", false,
		"skip the interactive confirmation",
	)
	accompCmd.AddCommand(accompRemoveCmd, accompAddCmd)
	rootCmd.AddCommand(accompCmd)
}

// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package linkuc contains the accompanying drivers use case: a
// fetch/render/delete list of the apprenti/accompagnateur links of the
// current learner. Its failure policy is deliberately softer than the
// dashboard's fail-closed one: a failed incidental list shows an error
// message inside its own panel and leaves both the session and the
// previously rendered list untouched.
package linkuc

import (
	"context"
	"errors"
	"fmt"

	"github.com/momeni/car2go-client/pkg/core/cerr"
	"github.com/momeni/car2go-client/pkg/core/gateway"
	"github.com/momeni/car2go-client/pkg/core/log"
	"github.com/momeni/car2go-client/pkg/core/model"
	"github.com/momeni/car2go-client/pkg/core/usecase/sessuc"
)

// User-visible panel messages, matching the original client wording.
const (
	MsgLoadFailed   = "Impossible de charger les accompagnateurs."
	MsgDeleteFailed = "Impossible de supprimer cet accompagnateur."
	PromptDelete    = "Voulez-vous vraiment supprimer cet accompagnateur ?"
)

// ErrAddNotImplemented is returned by Add. Creating a link requires a
// registration-side flow which this client does not implement yet; the
// capability is exposed explicitly instead of being hidden behind a
// silent no-op so callers can surface the situation to the user.
var ErrAddNotImplemented = errors.New(
	"adding an accompanying driver is not implemented yet",
)

// Confirmer asks the user to confirm a destructive action and reports
// the decision. The command layer wires an interactive stdin prompt;
// tests substitute canned answers.
type Confirmer func(prompt string) bool

// UseCase is the accompanying drivers list controller. It is driven by
// UI events only and is not safe for concurrent use.
type UseCase struct {
	sess    sessuc.Session
	links   gateway.Links
	confirm Confirmer

	items  []model.Link
	errMsg string
	loaded bool
}

// New instantiates the accompanying drivers use case. All parameters
// are mandatory; the confirm callback decides whether a Remove call
// may proceed.
func New(
	sess sessuc.Session, l gateway.Links, confirm Confirmer,
) *UseCase {
	return &UseCase{sess: sess, links: l, confirm: confirm}
}

// Load fetches all links of the apprentiID learner. On success the
// in-memory set is replaced and the panel error message is cleared.
// On failure a user-visible error message is set and any previously
// loaded list is kept as is; the error is also returned for logging
// purposes. A missing session reports an unauthorized-session error,
// so the caller can redirect to the login flow without touching the
// panel state either.
func (uc *UseCase) Load(ctx context.Context, apprentiID int) error {
	cred, ok := uc.sess.Token()
	if !ok {
		return cerr.UnauthorizedSession(0, sessuc.ErrNotLoggedIn)
	}
	ls, err := uc.links.ListForApprenti(ctx, cred, apprentiID)
	if err != nil {
		uc.errMsg = MsgLoadFailed
		log.Warn(
			ctx, "loading accompanying drivers failed",
			log.Err("error", err),
		)
		return err
	}
	uc.items = ls
	uc.errMsg = ""
	uc.loaded = true
	return nil
}

// Remove deletes the linkID link after an interactive confirmation.
// A declined confirmation aborts silently. The server-side delete is
// performed first and only a confirmed success removes exactly that
// link from the in-memory set; on failure the set stays unchanged (no
// rollback is ever needed because nothing was optimistically removed)
// and a user-visible error message is set.
func (uc *UseCase) Remove(ctx context.Context, linkID int) error {
	if !uc.confirm(PromptDelete) {
		return nil
	}
	cred, ok := uc.sess.Token()
	if !ok {
		return cerr.UnauthorizedSession(0, sessuc.ErrNotLoggedIn)
	}
	if err := uc.links.Delete(ctx, cred, linkID); err != nil {
		uc.errMsg = MsgDeleteFailed
		log.Warn(
			ctx, "deleting accompanying driver link failed",
			log.Err("error", fmt.Errorf("link %d: %w", linkID, err)),
		)
		return err
	}
	kept := uc.items[:0:0]
	for _, l := range uc.items {
		if l.ID != linkID {
			kept = append(kept, l)
		}
	}
	uc.items = kept
	return nil
}

// Add is the explicit stub of the link creation capability.
// It performs no network operation and no state change.
func (uc *UseCase) Add() error {
	return ErrAddNotImplemented
}

// Links returns a copy of the currently loaded link set.
func (uc *UseCase) Links() []model.Link {
	out := make([]model.Link, len(uc.items))
	copy(out, uc.items)
	return out
}

// ErrMsg returns the current user-visible panel error message, or an
// empty string.
func (uc *UseCase) ErrMsg() string {
	return uc.errMsg
}

// Loaded reports whether at least one Load completed successfully.
func (uc *UseCase) Loaded() bool {
	return uc.loaded
}

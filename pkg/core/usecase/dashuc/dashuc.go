// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dashuc contains the dashboard use case: it guards the
// dashboard behind an authenticated session, hydrates it with the
// current identity and the role-scoped booking collection, dispatches
// the identity role to exactly one view variant, and tracks the
// booking selection which drives the details overlay.
package dashuc

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

// Variant enumerates the dashboard view variants. Exactly one variant
// corresponds to each known role; an unrecognized role maps to
// VariantNone which renders no panel at all instead of inventing a
// fallback view.
type Variant int

const (
	// VariantNone renders no dashboard panel.
	VariantNone Variant = iota
	// VariantApprenti is the learner's tabular bookings view.
	VariantApprenti
	// VariantAccompagnateur is the accompanying driver's compact
	// sessions list view.
	VariantAccompagnateur
	// VariantAdmin is the administrator view. It receives no shared
	// booking collection at all and only exposes one illustrative
	// selectable placeholder; this asymmetry comes from the admin
	// scope being unimplemented server-side and is preserved on
	// purpose instead of being papered over with invented data.
	VariantAdmin
)

// Dispatch deterministically maps one role to one view variant.
// It is a pure function with no fallback: every unknown role yields
// VariantNone.
func Dispatch(r model.Role) Variant {
	switch r {
	case model.RoleApprenti:
		return VariantApprenti
	case model.RoleAccompagnateur:
		return VariantAccompagnateur
	case model.RoleAdmin:
		return VariantAdmin
	default:
		return VariantNone
	}
}

// Dashboard is the immutable snapshot which one Load call produces.
// There is no incremental or paginated loading; a stale snapshot is
// replaced wholesale by the next Load.
type Dashboard struct {
	Identity model.Identity
	Bookings []model.Booking
	Variant  Variant
}

// UseCase hydrates the dashboard for the current session.
type UseCase struct {
	sess     sessuc.Session
	inval    sessuc.Invalidator
	auth     gateway.Auth
	bookings gateway.Bookings
}

// New instantiates a dashboard use case. The session read view and the
// invalidation capability are passed separately on purpose: the use
// case may read the session freely, but the only write it is allowed
// to perform is the fail-closed invalidation.
func New(
	sess sessuc.Session,
	inval sessuc.Invalidator,
	a gateway.Auth,
	b gateway.Bookings,
) *UseCase {
	return &UseCase{sess: sess, inval: inval, auth: a, bookings: b}
}

// Load guards and hydrates the dashboard in one decision.
//
// If the session holds no credential, Load returns a
// cerr.KindUnauthorizedSession error wrapping sessuc.ErrNotLoggedIn
// without dispatching any request, so an unauthorized fetch with an
// empty bearer header can never be raced out before the guard check.
//
// Otherwise, two requests are issued sequentially: the current
// identity is resolved first and only then the role-scoped booking
// collection is requested. If either request fails for any reason,
// the failure is logged, the whole session is invalidated (in memory
// and in the vault), and a cerr.KindUnauthorizedSession error is
// returned; the caller is expected to turn it into a redirect to the
// login flow. This is deliberately broader than the triggering fault.
//
// Load terminates in all cases; there is no state in which a caller
// could be left waiting on a partially hydrated dashboard.
func (uc *UseCase) Load(ctx context.Context) (*Dashboard, error) {
	cred, ok := uc.sess.Token()
	if !ok {
		return nil, cerr.UnauthorizedSession(0, sessuc.ErrNotLoggedIn)
	}
	id, err := uc.auth.CurrentUser(ctx, cred)
	if err != nil {
		return nil, uc.failClosed(
			ctx, fmt.Errorf("resolving current user: %w", err),
		)
	}
	bs, err := uc.bookings.ListForUser(ctx, cred)
	if err != nil {
		return nil, uc.failClosed(
			ctx, fmt.Errorf("fetching bookings: %w", err),
		)
	}
	return &Dashboard{
		Identity: id,
		Bookings: bs,
		Variant:  Dispatch(id.Role),
	}, nil
}

// failClosed logs the load failure, invalidates the session, and wraps
// err as an unauthorized-session error preserving the HTTP status of
// the underlying failure, if any.
func (uc *UseCase) failClosed(ctx context.Context, err error) error {
	log.Error(ctx, "dashboard load failed", log.Err("error", err))
	if ierr := uc.inval.Invalidate(); ierr != nil {
		log.Warn(
			ctx, "session invalidation failed",
			log.Err("error", ierr),
		)
	}
	status := 0
	var ce *cerr.Error
	if errors.As(err, &ce) {
		status = ce.HTTPStatusCode
	}
	return cerr.UnauthorizedSession(status, err)
}

// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package dashuc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/momeni/car2go-client/pkg/core/cerr"
	"github.com/momeni/car2go-client/pkg/core/gateway"
	"github.com/momeni/car2go-client/pkg/core/model"
	"github.com/momeni/car2go-client/pkg/core/usecase/dashuc"
	"github.com/momeni/car2go-client/pkg/core/usecase/sessuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	cred gateway.Credential
}

func (f *fakeSession) Token() (gateway.Credential, bool) {
	return f.cred, f.cred != ""
}

func (f *fakeSession) User() (model.SessionUser, bool) {
	return model.SessionUser{}, false
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) Invalidate() error {
	f.calls++
	return nil
}

// fakeGateway reifies the auth and bookings ports with canned results
// and records the order of the received calls.
type fakeGateway struct {
	identity    model.Identity
	meErr       error
	bookings    []model.Booking
	bookingsErr error

	order []string
}

func (f *fakeGateway) Login(
	_ context.Context, _, _ string,
) (gateway.Credential, error) {
	f.order = append(f.order, "login")
	return "", errors.New("unexpected login call")
}

func (f *fakeGateway) Register(
	_ context.Context, _ model.Registration,
) error {
	f.order = append(f.order, "register")
	return errors.New("unexpected register call")
}

func (f *fakeGateway) CurrentUser(
	_ context.Context, _ gateway.Credential,
) (model.Identity, error) {
	f.order = append(f.order, "me")
	return f.identity, f.meErr
}

func (f *fakeGateway) ListForUser(
	_ context.Context, _ gateway.Credential,
) ([]model.Booking, error) {
	f.order = append(f.order, "bookings")
	return f.bookings, f.bookingsErr
}

func TestDispatchRendersExactlyOneVariantPerRole(t *testing.T) {
	seen := map[dashuc.Variant]model.Role{}
	for _, r := range []model.Role{
		model.RoleApprenti,
		model.RoleAccompagnateur,
		model.RoleAdmin,
	} {
		v := dashuc.Dispatch(r)
		assert.NotEqual(
			t, dashuc.VariantNone, v,
			"known role %q must map to a variant", r,
		)
		prev, dup := seen[v]
		assert.False(
			t, dup,
			"roles %q and %q may not share variant %v", prev, r, v,
		)
		seen[v] = r
	}
	for _, r := range []model.Role{"", "user", "superadmin"} {
		assert.Equal(
			t, dashuc.VariantNone, dashuc.Dispatch(r),
			"unknown role %q must render no panel", r,
		)
	}
}

func TestLoadGuardsBeforeAnyFetch(t *testing.T) {
	gw := &fakeGateway{}
	inval := &fakeInvalidator{}
	uc := dashuc.New(&fakeSession{}, inval, gw, gw)

	d, err := uc.Load(context.Background())
	assert.Nil(t, d)
	assert.True(
		t, cerr.Is(err, cerr.KindUnauthorizedSession),
		"missing session must be reported as unauthorized",
	)
	assert.ErrorIs(t, err, sessuc.ErrNotLoggedIn)
	assert.Empty(
		t, gw.order,
		"no request may be dispatched without a credential",
	)
	assert.Zero(
		t, inval.calls,
		"there is no session to invalidate on a guard redirect",
	)
}

func TestLoadFailsClosedOnIdentityFailure(t *testing.T) {
	gw := &fakeGateway{meErr: errors.New("stale token")}
	inval := &fakeInvalidator{}
	uc := dashuc.New(&fakeSession{cred: "tok"}, inval, gw, gw)

	d, err := uc.Load(context.Background())
	assert.Nil(t, d)
	assert.True(t, cerr.Is(err, cerr.KindUnauthorizedSession))
	assert.Equal(t, 1, inval.calls, "session must be invalidated")
	assert.Equal(
		t, []string{"me"}, gw.order,
		"bookings may not be requested after a failed identity",
	)
}

func TestLoadFailsClosedOnBookingsFailure(t *testing.T) {
	gw := &fakeGateway{
		identity:    model.Identity{ID: 4, Role: model.RoleApprenti},
		bookingsErr: cerr.ServiceUnavailable(503, errors.New("down")),
	}
	inval := &fakeInvalidator{}
	uc := dashuc.New(&fakeSession{cred: "tok"}, inval, gw, gw)

	d, err := uc.Load(context.Background())
	assert.Nil(t, d, "no partial dashboard may be produced")
	require.True(t, cerr.Is(err, cerr.KindUnauthorizedSession))
	var ce *cerr.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(
		t, 503, ce.HTTPStatusCode,
		"the triggering status must be preserved",
	)
	assert.Equal(t, 1, inval.calls)
}

func TestLoadProducesSnapshotSequentially(t *testing.T) {
	bookings := []model.Booking{
		{ID: 1, Purpose: "self"},
		{ID: 2, Purpose: "tandem"},
	}
	gw := &fakeGateway{
		identity: model.Identity{
			ID: 9, Prenom: "Ada", Role: model.RoleApprenti,
		},
		bookings: bookings,
	}
	inval := &fakeInvalidator{}
	uc := dashuc.New(&fakeSession{cred: "tok"}, inval, gw, gw)

	d, err := uc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(
		t, []string{"me", "bookings"}, gw.order,
		"identity must be resolved before the bookings request",
	)
	assert.Equal(t, gw.identity, d.Identity)
	assert.Equal(t, bookings, d.Bookings)
	assert.Equal(t, dashuc.VariantApprenti, d.Variant)
	assert.Zero(t, inval.calls)
}

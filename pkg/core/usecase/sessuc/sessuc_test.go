// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sessuc_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/momeni/car2go-client/internal/test/apiserver"
	"github.com/momeni/car2go-client/pkg/adapter/api"
	"github.com/momeni/car2go-client/pkg/adapter/vault"
	"github.com/momeni/car2go-client/pkg/core/cerr"
	"github.com/momeni/car2go-client/pkg/core/gateway"
	"github.com/momeni/car2go-client/pkg/core/model"
	"github.com/momeni/car2go-client/pkg/core/usecase/sessuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeAuth struct {
	cred gateway.Credential
	err  error
}

func (f *fakeAuth) Login(
	_ context.Context, _, _ string,
) (gateway.Credential, error) {
	return f.cred, f.err
}

func (f *fakeAuth) Register(_ context.Context, _ model.Registration) error {
	return errors.New("unexpected register call")
}

func (f *fakeAuth) CurrentUser(
	_ context.Context, _ gateway.Credential,
) (model.Identity, error) {
	return model.Identity{}, errors.New("unexpected me call")
}

type fakeVault struct {
	items   map[string]string
	getErr  error
	putErr  error
	deleted [][]string
}

func newFakeVault() *fakeVault {
	return &fakeVault{items: map[string]string{}}
}

func (f *fakeVault) Get(key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.items[key]
	return v, ok, nil
}

func (f *fakeVault) Put(key, value string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.items[key] = value
	return nil
}

func (f *fakeVault) Delete(keys ...string) error {
	f.deleted = append(f.deleted, keys)
	for _, k := range keys {
		delete(f.items, k)
	}
	return nil
}

func TestLoginPersistsBothItems(t *testing.T) {
	v := newFakeVault()
	s := sessuc.New(&fakeAuth{cred: "tok-1"}, v)

	err := s.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)

	cred, ok := s.Token()
	assert.True(t, ok)
	assert.Equal(t, gateway.Credential("tok-1"), cred)
	u, ok := s.User()
	assert.True(t, ok)
	assert.Equal(t, "ada@example.com", u.Email)

	assert.Equal(t, "tok-1", v.items[sessuc.KeyToken])
	assert.Contains(
		t, v.items[sessuc.KeyUser], "ada@example.com",
		"the persisted user record must carry the submitted email",
	)
}

func TestFailedLoginLeavesPriorSessionUntouched(t *testing.T) {
	v := newFakeVault()
	auth := &fakeAuth{cred: "tok-old"}
	s := sessuc.New(auth, v)
	require.NoError(t, s.Login(context.Background(), "a@b.fr", "pw"))

	auth.cred = ""
	auth.err = cerr.AuthRejected(401, errors.New("bad password"))
	err := s.Login(context.Background(), "a@b.fr", "wrong")
	assert.True(t, cerr.Is(err, cerr.KindAuthRejected))

	cred, ok := s.Token()
	assert.True(t, ok, "the established session must survive")
	assert.Equal(t, gateway.Credential("tok-old"), cred)
	assert.Equal(t, "tok-old", v.items[sessuc.KeyToken])
	assert.Empty(t, v.deleted)
}

func TestLoginSurvivesPersistenceFailure(t *testing.T) {
	v := newFakeVault()
	v.putErr = errors.New("disk full")
	s := sessuc.New(&fakeAuth{cred: "tok-1"}, v)

	err := s.Login(context.Background(), "a@b.fr", "pw")
	require.NoError(t, err, "the vault is advisory")
	_, ok := s.Token()
	assert.True(t, ok)
}

func TestLogoutClearsBothItems(t *testing.T) {
	v := newFakeVault()
	s := sessuc.New(&fakeAuth{cred: "tok-1"}, v)
	require.NoError(t, s.Login(context.Background(), "a@b.fr", "pw"))

	require.NoError(t, s.Logout())
	_, ok := s.Token()
	assert.False(t, ok)
	_, ok = s.User()
	assert.False(t, ok)
	require.Len(t, v.deleted, 1)
	assert.ElementsMatch(
		t, []string{sessuc.KeyToken, sessuc.KeyUser}, v.deleted[0],
	)
}

func TestRestoreWithoutTokenStaysLoggedOut(t *testing.T) {
	s := sessuc.New(&fakeAuth{}, newFakeVault())
	require.NoError(t, s.Restore(context.Background()))
	_, ok := s.Token()
	assert.False(t, ok)
}

func TestRestoreToleratesCorruptUserRecord(t *testing.T) {
	v := newFakeVault()
	v.items[sessuc.KeyToken] = "tok-1"
	v.items[sessuc.KeyUser] = "{not json"
	s := sessuc.New(&fakeAuth{}, v)

	require.NoError(t, s.Restore(context.Background()))
	cred, ok := s.Token()
	assert.True(t, ok, "the credential alone must be restored")
	assert.Equal(t, gateway.Credential("tok-1"), cred)
	_, ok = s.User()
	assert.False(t, ok)
}

func TestRestoreReportsVaultFailures(t *testing.T) {
	v := newFakeVault()
	v.getErr = errors.New("io error")
	s := sessuc.New(&fakeAuth{}, v)
	assert.Error(t, s.Restore(context.Background()))
}

// SessionLifecycleTestSuite exercises the store against the fake server
// and the real SQLite vault, covering the login/restart/restore cycle
// end to end.
type SessionLifecycleTestSuite struct {
	suite.Suite

	srv  *apiserver.Server
	ts   *httptest.Server
	path string
}

func TestSessionLifecycleTestSuite(t *testing.T) {
	suite.Run(t, &SessionLifecycleTestSuite{})
}

func (s *SessionLifecycleTestSuite) SetupTest() {
	s.srv = apiserver.New()
	s.srv.Users["ada@example.com"] = "s3cret"
	s.ts = httptest.NewServer(s.srv.Engine)
	s.path = filepath.Join(s.T().TempDir(), "vault.db")
}

func (s *SessionLifecycleTestSuite) TearDownTest() {
	s.ts.Close()
}

func (s *SessionLifecycleTestSuite) openStore() (
	*sessuc.Store, *vault.Vault,
) {
	c, err := api.New(s.ts.URL, 0)
	s.Require().NoError(err)
	v, err := vault.Open(s.path)
	s.Require().NoError(err)
	return sessuc.New(c, v), v
}

func (s *SessionLifecycleTestSuite) TestSessionSurvivesRestart() {
	ctx := context.Background()
	store, v := s.openStore()
	s.Require().NoError(store.Login(ctx, "ada@example.com", "s3cret"))
	cred, ok := store.Token()
	s.True(ok)
	s.Require().NoError(v.Close())

	// A new process: fresh store over the same vault file.
	store2, v2 := s.openStore()
	defer v2.Close()
	s.Require().NoError(store2.Restore(ctx))
	cred2, ok := store2.Token()
	s.True(ok, "the persisted session must be restored")
	s.Equal(cred, cred2)
	u, ok := store2.User()
	s.True(ok)
	s.Equal("ada@example.com", u.Email)
}

func (s *SessionLifecycleTestSuite) TestWrongPasswordIsRejected() {
	ctx := context.Background()
	store, v := s.openStore()
	defer v.Close()

	err := store.Login(ctx, "ada@example.com", "wrong")
	s.True(cerr.Is(err, cerr.KindAuthRejected))
	_, ok := store.Token()
	s.False(ok)

	// Nothing was persisted either.
	_, found, err := v.Get(sessuc.KeyToken)
	s.Require().NoError(err)
	s.False(found)
}

func (s *SessionLifecycleTestSuite) TestLogoutClearsPersistedState() {
	ctx := context.Background()
	store, v := s.openStore()
	defer v.Close()
	s.Require().NoError(store.Login(ctx, "ada@example.com", "s3cret"))
	s.Require().NoError(store.Logout())

	for _, key := range []string{sessuc.KeyToken, sessuc.KeyUser} {
		_, found, err := v.Get(key)
		s.Require().NoError(err)
		s.False(found, "key %q must be deleted", key)
	}
}

// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package api_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/momeni/car2go-client/internal/test/apiserver"
	"github.com/momeni/car2go-client/pkg/adapter/api"
	"github.com/momeni/car2go-client/pkg/core/cerr"
	"github.com/momeni/car2go-client/pkg/core/gateway"
	"github.com/momeni/car2go-client/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestNewRejectsMalformedBaseURLs(t *testing.T) {
	for _, base := range []string{
		"", "ftp://example.com", "http://", ":bad:",
	} {
		_, err := api.New(base, 0)
		assert.Error(t, err, "base URL %q must be rejected", base)
	}
	c, err := api.New("http://127.0.0.1:8000/", time.Second)
	assert.NoError(t, err)
	assert.NotNil(t, c)
}

type ClientTestSuite struct {
	suite.Suite

	srv *apiserver.Server
	ts  *httptest.Server
	c   *api.Client
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, &ClientTestSuite{})
}

func (s *ClientTestSuite) SetupTest() {
	s.srv = apiserver.New()
	s.srv.Users["ada@example.com"] = "s3cret"
	s.ts = httptest.NewServer(s.srv.Engine)
	c, err := api.New(s.ts.URL, 0)
	s.Require().NoError(err)
	s.c = c
}

func (s *ClientTestSuite) TearDownTest() {
	s.ts.Close()
}

func (s *ClientTestSuite) TestLoginReturnsBearerToken() {
	cred, err := s.c.Login(
		context.Background(), "ada@example.com", "s3cret",
	)
	s.Require().NoError(err)
	s.NotEmpty(cred)
	s.Equal(1, s.srv.LoginCalls)
}

func (s *ClientTestSuite) TestLoginFailureClasses() {
	ctx := context.Background()

	_, err := s.c.Login(ctx, "ada@example.com", "wrong")
	s.True(cerr.Is(err, cerr.KindAuthRejected))
	s.ErrorContains(err, api.MsgBadCredentials)

	s.srv.ForceLoginStatus = 502
	_, err = s.c.Login(ctx, "ada@example.com", "s3cret")
	s.True(cerr.Is(err, cerr.KindServiceUnavailable))
	s.ErrorContains(err, api.MsgServerError)

	s.srv.ForceLoginStatus = 422
	_, err = s.c.Login(ctx, "ada@example.com", "s3cret")
	s.False(cerr.Is(err, cerr.KindAuthRejected))
	s.False(cerr.Is(err, cerr.KindServiceUnavailable))
	s.ErrorContains(err, api.MsgLoginFailed)
}

func (s *ClientTestSuite) TestTransportFailureIsServiceUnavailable() {
	s.ts.Close()
	_, err := s.c.Login(
		context.Background(), "ada@example.com", "s3cret",
	)
	s.True(cerr.Is(err, cerr.KindServiceUnavailable))
}

func (s *ClientTestSuite) TestCurrentUser() {
	s.srv.Identity = model.Identity{
		ID:     7,
		Nom:    "Lovelace",
		Prenom: "Ada",
		Email:  "ada@example.com",
		Role:   model.RoleApprenti,
	}
	cred := gateway.Credential(s.srv.TokenFor("ada@example.com"))
	id, err := s.c.CurrentUser(context.Background(), cred)
	s.Require().NoError(err)
	s.Equal(s.srv.Identity, id)

	_, err = s.c.CurrentUser(context.Background(), "forged")
	s.Error(err, "an unknown token must not resolve an identity")
}

func (s *ClientTestSuite) TestListForUser() {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	s.srv.Bookings = []model.Booking{
		{
			ID:        3,
			Purpose:   "self",
			Status:    "En attente",
			StartTime: start,
			EndTime:   start.Add(2 * time.Hour),
			Car:       model.Car{Nom: "Clio", Disponible: true},
		},
	}
	cred := gateway.Credential(s.srv.TokenFor("ada@example.com"))
	bs, err := s.c.ListForUser(context.Background(), cred)
	s.Require().NoError(err)
	s.Require().Len(bs, 1)
	s.Equal(3, bs[0].ID)
	s.Equal("Clio", bs[0].Car.Nom)
	s.True(start.Equal(bs[0].StartTime))
}

func (s *ClientTestSuite) TestRegister() {
	err := s.c.Register(context.Background(), model.Registration{
		Nom:          "Curie",
		Prenom:       "Marie",
		Email:        "marie@example.com",
		Password:     "pw",
		Role:         model.RoleApprenti,
		NumeroLivret: "L-123",
	})
	s.Require().NoError(err)
	s.Contains(s.srv.Users, "marie@example.com")
}

func (s *ClientTestSuite) TestRegisterReportsDetailVerbatim() {
	err := s.c.Register(context.Background(), model.Registration{
		Nom:      "Curie",
		Prenom:   "Marie",
		Email:    "marie@example.com",
		Password: "pw",
		Role:     model.RoleApprenti,
	})
	s.Require().Error(err)
	s.True(cerr.Is(err, cerr.KindValidationRejected))
	s.ErrorContains(
		err, "Un apprenti doit avoir un numéro de livret.",
		"the server message must reach the user unaltered",
	)
}

func (s *ClientTestSuite) TestListForApprenti() {
	s.srv.Links[42] = []model.Link{
		{
			ID:               5,
			AccompagnateurID: 9,
			Accompagnateur: model.Accompagnateur{
				ID: 9, Nom: "Dupont", Prenom: "Jean",
			},
		},
	}
	cred := gateway.Credential(s.srv.TokenFor("ada@example.com"))
	ls, err := s.c.ListForApprenti(context.Background(), cred, 42)
	s.Require().NoError(err)
	s.Equal(s.srv.Links[42], ls)

	ls, err = s.c.ListForApprenti(context.Background(), cred, 77)
	s.Require().NoError(err)
	s.Empty(ls, "an unknown learner yields an empty list, not an error")
}

func (s *ClientTestSuite) TestDeleteFailureKind() {
	s.srv.Links[42] = []model.Link{{ID: 5, AccompagnateurID: 9}}
	cred := gateway.Credential(s.srv.TokenFor("ada@example.com"))
	ctx := context.Background()

	s.Require().NoError(s.c.Delete(ctx, cred, 5))
	s.Empty(s.srv.Links[42])

	err := s.c.Delete(ctx, cred, 5)
	s.True(cerr.Is(err, cerr.KindResourceOperationFailed))
	s.ErrorContains(err, "Association non trouvée.")

	s.srv.ForceDeleteStatus = 500
	err = s.c.Delete(ctx, cred, 5)
	s.True(cerr.Is(err, cerr.KindResourceOperationFailed))
}

// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/momeni/car2go-client/pkg/core/cerr"
	"github.com/momeni/car2go-client/pkg/core/gateway"
	"github.com/momeni/car2go-client/pkg/core/model"
)

// User-facing login failure messages, matching the original client
// wording for its three response classes.
const (
	MsgBadCredentials = "Email ou mot de passe incorrect."
	MsgServerError    = "Erreur serveur, veuillez réessayer plus tard."
	MsgLoginFailed    = "Connexion échouée. Vérifiez vos identifiants."
)

// tokenResponse is the POST /auth/login success document.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges form-encoded credentials for a bearer token through
// the POST /auth/login API. The email is submitted under the username
// form field, as the server implements the OAuth2 password form. The
// three failure classes are distinguished: a 401 response maps to
// cerr.KindAuthRejected, a 5xx response maps to
// cerr.KindServiceUnavailable, and any other non-2xx response is
// reported as a generic plain login failure.
func (c *Client) Login(
	ctx context.Context, email, password string,
) (gateway.Credential, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)
	resp, err := c.do(
		ctx, http.MethodPost, "/auth/login", "",
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	switch {
	case is2xx(resp.StatusCode):
		// handled below
	case resp.StatusCode == http.StatusUnauthorized:
		return "", cerr.AuthRejected(
			resp.StatusCode, errors.New(MsgBadCredentials),
		)
	case resp.StatusCode >= 500:
		return "", cerr.ServiceUnavailable(
			resp.StatusCode, errors.New(MsgServerError),
		)
	default:
		return "", fmt.Errorf(
			"%s [%d]", MsgLoginFailed, resp.StatusCode,
		)
	}
	tr := &tokenResponse{}
	if err := decode(resp, tr); err != nil {
		return "", err
	}
	if tr.AccessToken == "" {
		return "", errors.New("login response carries no access token")
	}
	return gateway.Credential(tr.AccessToken), nil
}

// Register submits the registration form as a JSON document through
// the POST /auth/register API. Any non-2xx response is reported as a
// cerr.KindValidationRejected error carrying the server-provided
// detail message verbatim. The returned access token of a successful
// registration is discarded; registering does not log the user in.
func (c *Client) Register(
	ctx context.Context, form model.Registration,
) error {
	body, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("serializing registration form: %w", err)
	}
	resp, err := c.do(
		ctx, http.MethodPost, "/auth/register", "",
		"application/json", strings.NewReader(string(body)),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if !is2xx(resp.StatusCode) {
		return cerr.ValidationRejected(resp.StatusCode, detail(resp))
	}
	return nil
}

// CurrentUser resolves the identity owning the cred token through the
// bearer-authorized GET /auth/me API.
func (c *Client) CurrentUser(
	ctx context.Context, cred gateway.Credential,
) (model.Identity, error) {
	var id model.Identity
	if err := c.getJSON(ctx, "/auth/me", cred, &id); err != nil {
		return model.Identity{}, err
	}
	return id, nil
}

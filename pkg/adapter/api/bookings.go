// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package api

import (
	"context"

	"github.com/momeni/car2go-client/pkg/core/gateway"
	"github.com/momeni/car2go-client/pkg/core/model"
)

// ListForUser fetches the role-scoped booking collection of the user
// owning the cred token through the bearer-authorized
// GET /bookings/user API. Which bookings are included is decided
// entirely server-side based on the role bound to the credential.
func (c *Client) ListForUser(
	ctx context.Context, cred gateway.Credential,
) ([]model.Booking, error) {
	var bs []model.Booking
	if err := c.getJSON(ctx, "/bookings/user", cred, &bs); err != nil {
		return nil, err
	}
	return bs, nil
}

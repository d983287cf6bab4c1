// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/momeni/car2go-client/pkg/core/cerr"
	"github.com/momeni/car2go-client/pkg/core/gateway"
	"github.com/momeni/car2go-client/pkg/core/model"
)

// ListForApprenti fetches all accompanying driver links of the
// apprentiID learner through the bearer-authorized
// GET /apprenti_accompagnateur/{userId} API.
func (c *Client) ListForApprenti(
	ctx context.Context, cred gateway.Credential, apprentiID int,
) ([]model.Link, error) {
	var ls []model.Link
	path := fmt.Sprintf("/apprenti_accompagnateur/%d", apprentiID)
	if err := c.getJSON(ctx, path, cred, &ls); err != nil {
		return nil, err
	}
	return ls, nil
}

// Delete removes exactly the linkID link through the bearer-authorized
// DELETE /apprenti_accompagnateur/{id} API. Any failure is reported as
// a cerr.KindResourceOperationFailed error.
func (c *Client) Delete(
	ctx context.Context, cred gateway.Credential, linkID int,
) error {
	path := fmt.Sprintf("/apprenti_accompagnateur/%d", linkID)
	resp, err := c.do(ctx, http.MethodDelete, path, cred, "", nil)
	if err != nil {
		return cerr.ResourceOperationFailed(0, err)
	}
	defer resp.Body.Close()
	if !is2xx(resp.StatusCode) {
		return cerr.ResourceOperationFailed(
			resp.StatusCode, detail(resp),
		)
	}
	return nil
}

// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log

import (
	"log/slog"

	"github.com/momeni/car2go-client/pkg/core/model"
)

// Valuer returns an Attr for the given slog.LogValuer value.
func Valuer(key string, value slog.LogValuer) slog.Attr {
	return slog.Any(key, value)
}

// Err returns an Attr for the given error value.
// The error value is resolved as a string by its Error() method.
// If error value is nil, the constant "no-error" value will be used.
func Err(key string, value error) slog.Attr {
	if value == nil {
		return slog.String(key, "no-error")
	}
	return slog.String(key, value.Error())
}

// Role returns an Attr for the given dashboard role value.
func Role(key string, value model.Role) slog.Attr {
	return slog.String(key, string(value))
}

// Status returns an Attr for an HTTP response status code.
// A zero status code indicates that no response was received and is
// logged with the constant "no-response" value.
func Status(key string, value int) slog.Attr {
	if value == 0 {
		return slog.String(key, "no-response")
	}
	return slog.Int(key, value)
}

// URL returns an Attr for a request URL string.
func URL(key, value string) slog.Attr {
	return slog.String(key, value)
}

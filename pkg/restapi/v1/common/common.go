/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/internal/logfields"
	oidc4vcierr "github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr/oidc4vci"
)

var logger = log.New("restapi-common")

// WriteError renders a protocol error as its JSON body and mapped HTTP status.
// Errors without a protocol classification become credential_request_denied,
// so internals never leak to the wallet.
func WriteError(c echo.Context, err error) error {
	ctx := c.Request().Context()

	var pendingErr *oidc4vcierr.IssuancePendingError
	if errors.As(err, &pendingErr) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":             pendingErr.Inner.Code(),
			"error_description": pendingErr.Inner.Err.Error(),
			"interval":          pendingErr.Interval,
		})
	}

	var rfcErr *oidc4vcierr.Error
	if errors.As(err, &rfcErr) {
		status := rfcErr.HTTPStatus
		if status == 0 {
			status = http.StatusBadRequest
		}

		logger.Warnc(ctx, "request rejected", logfields.WithHTTPStatus(status), log.WithError(err))

		return c.JSON(status, rfcErr.UsePublicAPIResponse())
	}

	logger.Errorc(ctx, "request failed", log.WithError(err))

	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error": "credential_request_denied",
	})
}

// WriteManagementError is WriteError for the management API, where an
// unclassified failure is reported as internal_error instead of a wallet
// protocol code.
func WriteManagementError(c echo.Context, err error) error {
	var rfcErr *oidc4vcierr.Error
	if errors.As(err, &rfcErr) {
		return WriteError(c, err)
	}

	logger.Errorc(c.Request().Context(), "management request failed", log.WithError(err))

	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error": "internal_error",
	})
}

// BearerToken extracts the bearer access token from the Authorization header.
func BearerToken(c echo.Context) (string, bool) {
	const prefix = "Bearer "

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return "", false
	}

	return header[len(prefix):], true
}

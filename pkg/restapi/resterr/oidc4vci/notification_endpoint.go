/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"net/http"
)

func NewInvalidNotificationIDError(err error) *Error {
	return &Error{
		ErrorCode:  invalidNotificationID,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewInvalidNotificationRequestError(err error) *Error {
	return &Error{
		ErrorCode:  invalidNotificationRequest,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

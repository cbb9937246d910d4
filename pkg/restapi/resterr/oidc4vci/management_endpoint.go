/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"net/http"
)

func NewUnauthorizedError(err error) *Error {
	return &Error{
		ErrorCode:  unauthorized,
		Err:        err,
		HTTPStatus: http.StatusUnauthorized,
	}
}

func NewNotFoundError(err error) *Error {
	return &Error{
		ErrorCode:  notFound,
		Err:        err,
		HTTPStatus: http.StatusNotFound,
	}
}

func NewBadRequestError(err error) *Error {
	return &Error{
		ErrorCode:  badRequest,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"net/http"
)

func NewInvalidCredentialRequestError(err error) *Error {
	return &Error{
		ErrorCode:  invalidCredentialRequest,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewInvalidProofError(err error) *Error {
	return &Error{
		ErrorCode:  invalidProof,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewInvalidNonceError(err error) *Error {
	return &Error{
		ErrorCode:  invalidNonce,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewCredentialRequestDeniedError(err error) *Error {
	return &Error{
		ErrorCode:  credentialRequestDenied,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewUnknownCredentialConfigurationError(err error) *Error {
	return &Error{
		ErrorCode:  unknownCredentialConfiguration,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

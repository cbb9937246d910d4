/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"net/http"
)

// IssuancePendingError is returned by the deferred credential endpoint while the
// transaction is still pending. Interval is the wallet poll hint in seconds and
// is rendered alongside the error code in the response body.
type IssuancePendingError struct {
	Inner    *Error
	Interval int
}

func (e *IssuancePendingError) Error() string {
	return e.Inner.Error()
}

func (e *IssuancePendingError) Unwrap() error {
	return e.Inner
}

func NewIssuancePendingError(err error, interval int) *IssuancePendingError {
	return &IssuancePendingError{
		Inner: &Error{
			ErrorCode:  issuancePending,
			Err:        err,
			HTTPStatus: http.StatusBadRequest,
		},
		Interval: interval,
	}
}

func NewInvalidTransactionIDError(err error) *Error {
	return &Error{
		ErrorCode:  invalidTransactionID,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

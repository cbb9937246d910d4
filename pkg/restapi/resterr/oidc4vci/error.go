/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr"
)

// oidc4vciErrorCode is the set of OIDC4VCI protocol error codes surfaced to wallets.
type oidc4vciErrorCode string

const (
	// invalidCredentialRequest - the Credential Request is missing a required parameter,
	// includes an unsupported parameter or parameter value, repeats the same parameter,
	// or is otherwise malformed.
	//
	// Spec: https://openid.net/specs/openid-4-verifiable-credential-issuance-1_0-ID1.html#section-7.3.1.2-3.1.2.1
	invalidCredentialRequest oidc4vciErrorCode = "invalid_credential_request" //nolint:gosec

	// invalidProof - the proof in the Credential Request is invalid. The proof field
	// is not present, carries no nonce, or the provided key proof fails verification.
	//
	// Spec: https://openid.net/specs/openid-4-verifiable-credential-issuance-1_0-ID1.html#section-7.3.1.2-3.1.2.4
	invalidProof oidc4vciErrorCode = "invalid_proof"

	// invalidNonce - the nonce bound into the proof is unknown to the issuer,
	// was already consumed, or has expired.
	invalidNonce oidc4vciErrorCode = "invalid_nonce"

	// credentialRequestDenied - authorization was resolved but the request is rejected:
	// token subject does not match the session, or the token issuer is not configured
	// for the tenant.
	credentialRequestDenied oidc4vciErrorCode = "credential_request_denied"

	// unknownCredentialConfiguration - the requested credential configuration id is not
	// present in the tenant's issuer metadata.
	unknownCredentialConfiguration oidc4vciErrorCode = "unknown_credential_configuration"

	// issuancePending - the deferred transaction is not complete yet. The wallet should
	// retry after the interval supplied with the response.
	//
	// Spec: https://openid.net/specs/openid-4-verifiable-credential-issuance-1_0-ID1.html#section-9.3
	issuancePending oidc4vciErrorCode = "issuance_pending"

	// invalidTransactionID - the deferred transaction id is unknown, expired, failed,
	// or its credential was already retrieved.
	invalidTransactionID oidc4vciErrorCode = "invalid_transaction_id"

	// invalidNotificationID - the notification_id in the Notification Request was invalid.
	//
	// Spec: https://openid.net/specs/openid-4-verifiable-credential-issuance-1_0-ID1.html#section-10.3-3.1.2.1
	invalidNotificationID oidc4vciErrorCode = "invalid_notification_id"

	// invalidNotificationRequest - the Notification Request is missing a required parameter,
	// includes an unsupported parameter or parameter value, or is otherwise malformed.
	//
	// Spec: https://openid.net/specs/openid-4-verifiable-credential-issuance-1_0-ID1.html#section-10.3-3.1.2.2
	invalidNotificationRequest oidc4vciErrorCode = "invalid_notification_request"

	// unauthorized proprietary error code for the management API.
	unauthorized oidc4vciErrorCode = "unauthorized"

	// notFound proprietary error code for the management API.
	notFound oidc4vciErrorCode = "not_found"

	// badRequest proprietary error code for the management API.
	badRequest oidc4vciErrorCode = "bad_request"
)

// Error represents an OIDC4VCI protocol error.
type Error = resterr.RFCError[oidc4vciErrorCode]

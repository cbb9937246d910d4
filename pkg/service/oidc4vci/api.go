/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"time"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/profile"
)

// SessionID defines type for session ID. The value doubles as issuer_state for
// authorization-code grants and as the access-token subject for tokens minted
// by the tenant's local authorization server.
type SessionID string

// Session is one credential issuance attempt. The Offer Issuer creates it, the
// Credential Request Processor advances its state and appends notification
// placeholders, and the Notification Tracker records wallet events against it.
type Session struct {
	ID SessionID
	SessionData
}

type SessionState int16

const (
	SessionStateUnknown   = SessionState(0)
	SessionStateActive    = SessionState(1)
	SessionStateFetched   = SessionState(2)
	SessionStateCompleted = SessionState(3)
	SessionStateFailed    = SessionState(4)
)

// SessionType identifies how the session came into being.
type SessionType string

const (
	SessionTypePreAuthorized     SessionType = "pre_authorized_code"
	SessionTypeAuthorizationCode SessionType = "authorization_code"
	SessionTypeExternal          SessionType = "external"
)

// SessionData is the session payload stored in the underlying storage.
type SessionData struct {
	TenantID                   string
	Type                       SessionType
	State                      SessionState
	PreAuthorizedCode          string
	TxCode                     string
	AuthorizationServer        string
	CredentialConfigurationIDs []string
	CredentialOffer            map[string]interface{}
	CredentialPayload          map[string]interface{}
	ClaimData                  map[string]map[string]interface{}
	Notifications              []Notification
	NotifyWebhook              *profile.Webhook
	ExternalIssuer             string
	ExternalSubject            string
	CreatedAt                  time.Time
	ExpiresAt                  time.Time
}

// Notification is a placeholder appended to the session when credentials are
// handed to the wallet. Event stays empty until the wallet reports back.
type Notification struct {
	ID                        string
	CredentialConfigurationID string
	Event                     string
	EventDescription          string
	ReceivedAt                *time.Time
}

// Notification events defined by the protocol.
const (
	NotificationEventAccepted = "credential_accepted"
	NotificationEventFailure  = "credential_failure"
	NotificationEventDeleted  = "credential_deleted"
)

// AuthorizationKind is a closed tagged variant describing the provenance of an
// access token. It is produced once by the Authorization Resolver and never
// re-derived downstream.
type AuthorizationKind int16

const (
	// AuthorizationKindLocal token was minted by the tenant's own authorization server.
	AuthorizationKindLocal = AuthorizationKind(1)
	// AuthorizationKindChained token was minted by the tenant's chained authorization server.
	AuthorizationKindChained = AuthorizationKind(2)
	// AuthorizationKindExternal token was minted by a configured trusted external issuer.
	AuthorizationKindExternal = AuthorizationKind(3)
)

// AuthorizationIdentity is the identity context derived from a classified token.
type AuthorizationIdentity struct {
	Issuer      string                 `json:"iss"`
	Subject     string                 `json:"sub"`
	TokenClaims map[string]interface{} `json:"token_claims,omitempty"`
}

// TokenPayload is a verified access-token payload, as returned by the
// resource-request token verifier collaborator.
type TokenPayload struct {
	Issuer  string
	Subject string
	Claims  map[string]interface{}
}

// ResolvedAuthorization binds a classified token to its issuance session.
type ResolvedAuthorization struct {
	Kind     AuthorizationKind
	Identity *AuthorizationIdentity
	Session  *Session
}

/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/profile"
)

// Grant types supported by credential offers.
const (
	GrantTypePreAuthorizedCode = "urn:ietf:params:oauth:grant-type:pre-authorized_code"
	GrantTypeAuthorizationCode = "authorization_code"
)

// CreateOfferRequest is the management-API request to create a credential offer.
type CreateOfferRequest struct {
	CredentialConfigurationIDs []string
	GrantType                  string
	TxCode                     *TxCodeSpec
	ClaimData                  map[string]map[string]interface{}
	CredentialPayload          map[string]interface{}
	AuthorizationServer        string
}

// TxCodeSpec describes the transaction code attached to a pre-authorized offer.
type TxCodeSpec struct {
	InputMode   string `json:"input_mode,omitempty"`
	Length      int    `json:"length,omitempty"`
	Description string `json:"description,omitempty"`
}

// CreateOfferResponse is returned to the tenant with the offer URI for the wallet.
type CreateOfferResponse struct {
	SessionID SessionID
	OfferURI  string
	TxCode    string
}

// AuthorizationCodeGrant is the authorization_code grant inside a credential offer.
type AuthorizationCodeGrant struct {
	IssuerState         string `json:"issuer_state"`
	AuthorizationServer string `json:"authorization_server,omitempty"`
}

// PreAuthorizedCodeGrant is the pre-authorized_code grant inside a credential offer.
type PreAuthorizedCodeGrant struct {
	PreAuthorizedCode string      `json:"pre-authorized_code"`
	TxCode            *TxCodeSpec `json:"tx_code,omitempty"`
}

// CredentialOfferGrants holds the grants section of a credential offer.
type CredentialOfferGrants struct {
	AuthorizationCode *AuthorizationCodeGrant `json:"authorization_code,omitempty"`
	PreAuthorizedCode *PreAuthorizedCodeGrant `json:"urn:ietf:params:oauth:grant-type:pre-authorized_code,omitempty"` //nolint:lll
}

// CredentialOfferResponse is the offer payload dereferenced by the wallet.
type CredentialOfferResponse struct {
	CredentialIssuer           string                `json:"credential_issuer"`
	CredentialConfigurationIDs []string              `json:"credential_configuration_ids"`
	Grants                     CredentialOfferGrants `json:"grants"`
}

// CredentialRequest is the wallet's parsed credential request.
type CredentialRequest struct {
	CredentialConfigurationID string
	Proofs                    []string
	PresentedCredentials      []string
}

// IssuedCredential is a single encoded credential in the response batch.
type IssuedCredential struct {
	Credential string `json:"credential"`
}

// DeferredIssuance is returned instead of credentials when issuance is deferred.
type DeferredIssuance struct {
	TransactionID string
	Interval      int32
}

// IssueCredentialResponse is the engine's response to a credential request:
// either issued credentials plus a notification id, or a deferral.
type IssueCredentialResponse struct {
	Credentials    []IssuedCredential
	NotificationID string
	Deferred       *DeferredIssuance
}

// DeferredTransactionRequest asks the deferred manager to open a transaction
// for an issuance whose claims are not yet available.
type DeferredTransactionRequest struct {
	SessionID                 SessionID
	CredentialConfigurationID string
	HolderCnf                 []byte
	Interval                  int32
}

// NotificationRequest is the wallet's acceptance/rejection report.
type NotificationRequest struct {
	NotificationID   string
	Event            string
	EventDescription string
}

// IssuerMetadata is the credential-issuer metadata view exposed to wallets.
type IssuerMetadata struct {
	CredentialIssuer                  string                          `json:"credential_issuer"`
	AuthorizationServers              []string                        `json:"authorization_servers,omitempty"`
	CredentialEndpoint                string                          `json:"credential_endpoint"`
	DeferredCredentialEndpoint        string                          `json:"deferred_credential_endpoint,omitempty"`
	NonceEndpoint                     string                          `json:"nonce_endpoint,omitempty"`
	NotificationEndpoint              string                          `json:"notification_endpoint,omitempty"`
	CredentialConfigurationsSupported map[string]CredentialConfigMeta `json:"credential_configurations_supported"`
}

// CredentialConfigMeta is the metadata entry for one credential configuration.
type CredentialConfigMeta struct {
	Format                      string            `json:"format,omitempty"`
	Scope                       string            `json:"scope,omitempty"`
	CryptographicBindingMethods []string          `json:"cryptographic_binding_methods_supported,omitempty"`
	Display                     []profile.Display `json:"display,omitempty"`
}

// EventPayload is the JSON payload attached to published issuance events.
type EventPayload struct {
	TenantID                  string `json:"tenantID,omitempty"`
	SessionID                 string `json:"sessionID,omitempty"`
	TransactionID             string `json:"transactionID,omitempty"`
	NotificationID            string `json:"notificationID,omitempty"`
	NotificationEvent         string `json:"notificationEvent,omitempty"`
	CredentialConfigurationID string `json:"credentialConfigurationID,omitempty"`
	Error                     string `json:"error,omitempty"`
	ErrorCode                 string `json:"errorCode,omitempty"`
}

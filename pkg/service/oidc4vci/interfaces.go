/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"context"
	"time"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/profile"
)

type sessionStore interface {
	Create(ctx context.Context, ttl time.Duration, session *Session) error

	Get(ctx context.Context, tenantID string, id SessionID) (*Session, error)

	FindByIssuerAndSubject(ctx context.Context, tenantID, issuer, subject string) (*Session, error)

	FindByNotificationID(ctx context.Context, tenantID, notificationID string) (*Session, error)

	Update(ctx context.Context, session *Session) error
}

type nonceLedger interface {
	Issue(ctx context.Context, tenant *profile.Issuer) (string, time.Duration, error)
	Consume(ctx context.Context, tenantID, value string) error
}

type deferredTransactionCreator interface {
	CreateTransaction(
		ctx context.Context,
		tenant *profile.Issuer,
		req *DeferredTransactionRequest,
	) (string, error)
}

// ResolveClaimsRequest is passed to the external claims resolver.
type ResolveClaimsRequest struct {
	Tenant                    *profile.Issuer
	CredentialConfigurationID string
	Session                   *Session
	Identity                  *AuthorizationIdentity
	PresentedCredentials      []string
}

// ResolveClaimsResult signals either inline claims or a deferral instruction.
type ResolveClaimsResult struct {
	Claims   map[string]interface{} `json:"claims,omitempty"`
	Deferred bool                   `json:"deferred,omitempty"`
	Interval int32                  `json:"interval,omitempty"`
}

type claimsResolver interface {
	Resolve(ctx context.Context, req *ResolveClaimsRequest) (*ResolveClaimsResult, error)
}

// EncodeCredentialRequest is passed to the external credential encoder.
type EncodeCredentialRequest struct {
	Tenant                    *profile.Issuer
	CredentialConfigurationID string
	HolderCnf                 []byte
	Session                   *Session
	Claims                    map[string]interface{}
}

type credentialEncoder interface {
	Encode(ctx context.Context, req *EncodeCredentialRequest) (string, error)
}

// ProofResult carries the holder key material captured from a verified proof.
type ProofResult struct {
	HolderCnf []byte
	KeyID     string
}

type proofChecker interface {
	CheckJWTProof(
		ctx context.Context,
		rawProofJWT string,
		tenant *profile.Issuer,
		expectedNonce string,
	) (*ProofResult, error)
}

type identityProvider interface {
	UpstreamIdentity(ctx context.Context, tenantID, issuerState string) (*AuthorizationIdentity, error)
}

// OpenIDConfiguration represents an authorization server configuration from its
// well-known endpoint (/.well-known/openid-configuration).
type OpenIDConfiguration struct {
	Issuer                 string   `json:"issuer"`
	AuthorizationEndpoint  string   `json:"authorization_endpoint"`
	TokenEndpoint          string   `json:"token_endpoint"`
	JWKSURI                string   `json:"jwks_uri"`
	ResponseTypesSupported []string `json:"response_types_supported"`
	ScopesSupported        []string `json:"scopes_supported"`
	GrantTypesSupported    []string `json:"grant_types_supported"`
}

type wellKnownService interface {
	GetOpenIDConfiguration(ctx context.Context, issuerURL string) (*OpenIDConfiguration, error)
}

type schemaValidator interface {
	Validate(data interface{}, cacheKey string, schema []byte) error
}

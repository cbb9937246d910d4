/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package profile

import (
	"encoding/json"
	"time"
)

type ID = string

const (
	defaultNonceTTL    = 10 * time.Minute
	defaultDeferredTTL = 24 * time.Hour
	defaultSessionTTL  = 7 * 24 * time.Hour
)

// Issuer profile describes a single tenant of the issuance service.
type Issuer struct {
	ID                       ID                                  `json:"id"`
	Name                     string                              `json:"name,omitempty"`
	URL                      string                              `json:"url,omitempty"`
	Active                   bool                                `json:"active"`
	OrganizationID           string                              `json:"organizationID,omitempty"`
	AuthorizationConfig      *AuthorizationConfig                `json:"authorizationConfig"`
	NotifyWebhook            *Webhook                            `json:"notifyWebhook,omitempty"`
	ClaimsWebhook            *Webhook                            `json:"claimsWebhook,omitempty"`
	NonceTTLSeconds          int32                               `json:"nonceTTLSeconds,omitempty"`
	DeferredTTLSeconds       int32                               `json:"deferredTTLSeconds,omitempty"`
	SessionTTLSeconds        int32                               `json:"sessionTTLSeconds,omitempty"`
	CredentialConfigurations map[string]*CredentialConfiguration `json:"credentialConfigurations"`
}

// AuthorizationConfig declares the token provenances a tenant accepts.
type AuthorizationConfig struct {
	// LocalAuthorizationServer is the tenant's own authorization source. Tokens it
	// mints carry the target session id as "sub".
	LocalAuthorizationServer string `json:"localAuthorizationServer"`

	// ChainedAuthorizationServer is the authorization source operated on behalf of
	// an upstream identity provider. Tokens it mints carry an "issuer_state" claim.
	ChainedAuthorizationServer string `json:"chainedAuthorizationServer,omitempty"`

	// TrustedAuthorizationServers are external issuers whose tokens are accepted
	// without a pre-existing session.
	TrustedAuthorizationServers []string `json:"trustedAuthorizationServers,omitempty"`

	// AllowBearerTokens relaxes the mandatory proof-of-possession binding.
	AllowBearerTokens bool `json:"allowBearerTokens,omitempty"`
}

// Webhook is an outbound HTTP endpoint configured by the tenant.
type Webhook struct {
	URL       string `json:"url"`
	AuthToken string `json:"authToken,omitempty"`
}

// CredentialConfiguration describes one issuable credential type.
type CredentialConfiguration struct {
	Format                      string          `json:"format,omitempty"`
	Scope                       string          `json:"scope,omitempty"`
	ClaimsSchema                json.RawMessage `json:"claimsSchema,omitempty"`
	ClaimsSchemaID              string          `json:"claimsSchemaID,omitempty"`
	CryptographicBindingMethods []string        `json:"cryptographicBindingMethods,omitempty"`
	Display                     []Display       `json:"display,omitempty"`
}

// Display holds wallet-facing display properties of a credential configuration.
type Display struct {
	Name            string `json:"name,omitempty"`
	Locale          string `json:"locale,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	LogoURI         string `json:"logoURI,omitempty"`
}

// NonceTTL returns the tenant nonce lifetime, defaulting to 10 minutes.
func (p *Issuer) NonceTTL() time.Duration {
	if p.NonceTTLSeconds > 0 {
		return time.Duration(p.NonceTTLSeconds) * time.Second
	}

	return defaultNonceTTL
}

// DeferredTTL returns the deferred transaction horizon, defaulting to 24 hours.
func (p *Issuer) DeferredTTL() time.Duration {
	if p.DeferredTTLSeconds > 0 {
		return time.Duration(p.DeferredTTLSeconds) * time.Second
	}

	return defaultDeferredTTL
}

// SessionTTL returns the session retention period, defaulting to 7 days.
func (p *Issuer) SessionTTL() time.Duration {
	if p.SessionTTLSeconds > 0 {
		return time.Duration(p.SessionTTLSeconds) * time.Second
	}

	return defaultSessionTTL
}

/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/internal/logfields"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/profile"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr"
	oidc4vcierr "github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr/oidc4vci"
)

const issuerStateClaim = "issuer_state"

// ResolveAuthorization classifies a verified access token by its issuing
// authority and binds it to the issuance session it was minted for. The
// classification happens before any proof or nonce validation, since it
// determines which session and claims-resolution path apply.
func (s *Service) ResolveAuthorization(
	ctx context.Context,
	tenant *profile.Issuer,
	token *TokenPayload,
) (*ResolvedAuthorization, error) {
	cfg := tenant.AuthorizationConfig

	switch {
	case token.Issuer == cfg.LocalAuthorizationServer:
		return s.resolveLocal(ctx, tenant, token)
	case cfg.ChainedAuthorizationServer != "" && token.Issuer == cfg.ChainedAuthorizationServer:
		return s.resolveChained(ctx, tenant, token)
	default:
		for _, trusted := range cfg.TrustedAuthorizationServers {
			if token.Issuer == trusted {
				return s.resolveExternal(ctx, tenant, token)
			}
		}

		return nil, oidc4vcierr.NewCredentialRequestDeniedError(
			fmt.Errorf("token issuer %s is not configured for tenant", token.Issuer)).
			WithIncorrectValue(token.Issuer).
			WithComponent(resterr.IssuanceSvcComponent).
			WithOperation("ResolveAuthorization")
	}
}

// resolveLocal handles tokens minted by the tenant's own authorization server.
// Such tokens carry the target session id as their subject; a mismatch means
// the token was not minted for this session and is a hard rejection.
func (s *Service) resolveLocal(
	ctx context.Context,
	tenant *profile.Issuer,
	token *TokenPayload,
) (*ResolvedAuthorization, error) {
	session, err := s.store.Get(ctx, tenant.ID, SessionID(token.Subject))
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			return nil, oidc4vcierr.NewCredentialRequestDeniedError(
				errors.New("token subject does not reference an issuance session")).
				WithComponent(resterr.IssuanceSvcComponent).
				WithOperation("ResolveAuthorization")
		}

		return nil, fmt.Errorf("get session: %w", err)
	}

	return &ResolvedAuthorization{
		Kind: AuthorizationKindLocal,
		Identity: &AuthorizationIdentity{
			Issuer:      token.Issuer,
			Subject:     token.Subject,
			TokenClaims: token.Claims,
		},
		Session: session,
	}, nil
}

// resolveChained handles tokens minted by the chained authorization server. The
// issuer_state claim locates the session; identity is enriched from the
// recorded upstream identity, falling back to the token's own claims.
func (s *Service) resolveChained(
	ctx context.Context,
	tenant *profile.Issuer,
	token *TokenPayload,
) (*ResolvedAuthorization, error) {
	issuerState, ok := token.Claims[issuerStateClaim].(string)
	if !ok || issuerState == "" {
		return nil, oidc4vcierr.NewCredentialRequestDeniedError(
			errors.New("chained token is missing issuer_state claim")).
			WithComponent(resterr.IssuanceSvcComponent).
			WithOperation("ResolveAuthorization")
	}

	session, err := s.store.Get(ctx, tenant.ID, SessionID(issuerState))
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			return nil, oidc4vcierr.NewCredentialRequestDeniedError(
				errors.New("issuer_state does not reference an issuance session")).
				WithIncorrectValue(issuerState).
				WithComponent(resterr.IssuanceSvcComponent).
				WithOperation("ResolveAuthorization")
		}

		return nil, fmt.Errorf("get session: %w", err)
	}

	identity, err := s.identityProvider.UpstreamIdentity(ctx, tenant.ID, issuerState)
	if err != nil {
		if !errors.Is(err, resterr.ErrDataNotFound) {
			return nil, fmt.Errorf("lookup upstream identity: %w", err)
		}

		identity = &AuthorizationIdentity{
			Issuer:      token.Issuer,
			Subject:     token.Subject,
			TokenClaims: token.Claims,
		}
	}

	return &ResolvedAuthorization{
		Kind:     AuthorizationKindChained,
		Identity: identity,
		Session:  session,
	}, nil
}

// resolveExternal handles tokens from a trusted external authorization server.
// On first encounter a session is created keyed by (issuer, subject), since no
// offer preceded the wallet's request.
func (s *Service) resolveExternal(
	ctx context.Context,
	tenant *profile.Issuer,
	token *TokenPayload,
) (*ResolvedAuthorization, error) {
	session, err := s.store.FindByIssuerAndSubject(ctx, tenant.ID, token.Issuer, token.Subject)
	if err != nil {
		if !errors.Is(err, resterr.ErrDataNotFound) {
			return nil, fmt.Errorf("find session by issuer and subject: %w", err)
		}

		session = &Session{
			ID: SessionID(uuid.NewString()),
			SessionData: SessionData{
				TenantID:        tenant.ID,
				Type:            SessionTypeExternal,
				State:           SessionStateActive,
				ExternalIssuer:  token.Issuer,
				ExternalSubject: token.Subject,
				NotifyWebhook:   tenant.NotifyWebhook,
				CreatedAt:       time.Now().UTC(),
				ExpiresAt:       time.Now().UTC().Add(tenant.SessionTTL()),
			},
		}

		if err = s.store.Create(ctx, tenant.SessionTTL(), session); err != nil {
			return nil, fmt.Errorf("create session for external token: %w", err)
		}

		logger.Debugc(ctx, "created session for external authorization",
			logfields.WithTenantID(tenant.ID), logfields.WithSessionID(string(session.ID)),
			logfields.WithTokenIssuer(token.Issuer))
	}

	return &ResolvedAuthorization{
		Kind: AuthorizationKindExternal,
		Identity: &AuthorizationIdentity{
			Issuer:      token.Issuer,
			Subject:     token.Subject,
			TokenClaims: token.Claims,
		},
		Session: session,
	}, nil
}

/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/internal/logfields"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/event/spi"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/profile"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr"
	oidc4vcierr "github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr/oidc4vci"
)

const (
	credentialOfferScheme = "openid-credential-offer://"

	defaultTxCodeLength = 6
	minTxCodeLength     = 4
	maxTxCodeLength     = 8

	txCodeInputModeNumeric = "numeric"
	txCodeInputModeText    = "text"
)

// CreateOffer creates a credential offer for the given tenant and opens the
// session that tracks the issuance attempt. Exactly one session is created; a
// validation failure prevents session creation entirely.
func (s *Service) CreateOffer(
	ctx context.Context,
	tenant *profile.Issuer,
	req *CreateOfferRequest,
) (*CreateOfferResponse, error) {
	if len(req.CredentialConfigurationIDs) == 0 {
		return nil, oidc4vcierr.NewBadRequestError(
			fmt.Errorf("at least one credential configuration id is required"))
	}

	for _, configID := range req.CredentialConfigurationIDs {
		if _, ok := tenant.CredentialConfigurations[configID]; !ok {
			return nil, oidc4vcierr.NewUnknownCredentialConfigurationError(
				fmt.Errorf("credential configuration %s is not supported", configID)).
				WithIncorrectValue(configID).
				WithHTTPStatusField(409).
				WithComponent(resterr.OfferSvcComponent)
		}
	}

	if err := s.validateOfferClaims(tenant, req); err != nil {
		return nil, err
	}

	sessionID := SessionID(uuid.NewString())

	session := &Session{
		ID: sessionID,
		SessionData: SessionData{
			TenantID:                   tenant.ID,
			State:                      SessionStateActive,
			CredentialConfigurationIDs: req.CredentialConfigurationIDs,
			CredentialPayload:          req.CredentialPayload,
			ClaimData:                  req.ClaimData,
			NotifyWebhook:              tenant.NotifyWebhook,
			CreatedAt:                  time.Now().UTC(),
			ExpiresAt:                  time.Now().UTC().Add(tenant.SessionTTL()),
		},
	}

	var txCode string

	switch req.GrantType {
	case GrantTypePreAuthorizedCode, "":
		session.Type = SessionTypePreAuthorized
		session.PreAuthorizedCode = mustGenerateSecret()

		if req.TxCode != nil {
			code, err := generateTxCode(req.TxCode)
			if err != nil {
				return nil, oidc4vcierr.NewBadRequestError(err)
			}

			txCode = code
			session.TxCode = txCode
		}
	case GrantTypeAuthorizationCode:
		session.Type = SessionTypeAuthorizationCode

		authServer, err := s.selectAuthorizationServer(ctx, tenant, req.AuthorizationServer)
		if err != nil {
			return nil, err
		}

		session.AuthorizationServer = authServer
	default:
		return nil, oidc4vcierr.NewBadRequestError(
			fmt.Errorf("unsupported grant type %s", req.GrantType))
	}

	session.CredentialOffer = s.buildOfferPayload(tenant, session, req.TxCode)

	if err := s.store.Create(ctx, tenant.SessionTTL(), session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if err := s.sendEvent(ctx, session, spi.IssuanceInitiated, nil); err != nil {
		logger.Warnc(ctx, "send issuance initiated event",
			logfields.WithSessionID(string(session.ID)), log.WithError(err))
	}

	s.metrics.OfferCreated(tenant.ID)

	return &CreateOfferResponse{
		SessionID: sessionID,
		OfferURI:  s.buildOfferURI(tenant, sessionID),
		TxCode:    txCode,
	}, nil
}

// GetOffer returns the offer payload for dereferencing a credential_offer_uri.
func (s *Service) GetOffer(
	ctx context.Context,
	tenant *profile.Issuer,
	sessionID SessionID,
) (map[string]interface{}, error) {
	session, err := s.store.Get(ctx, tenant.ID, sessionID)
	if err != nil {
		if err == resterr.ErrDataNotFound {
			return nil, oidc4vcierr.NewNotFoundError(fmt.Errorf("offer %s not found", sessionID))
		}

		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.CredentialOffer == nil {
		return nil, oidc4vcierr.NewNotFoundError(fmt.Errorf("session %s carries no offer", sessionID))
	}

	return session.CredentialOffer, nil
}

// GetSession returns the issuance session for management-side status checks.
func (s *Service) GetSession(
	ctx context.Context,
	tenant *profile.Issuer,
	sessionID SessionID,
) (*Session, error) {
	session, err := s.store.Get(ctx, tenant.ID, sessionID)
	if err != nil {
		if err == resterr.ErrDataNotFound {
			return nil, oidc4vcierr.NewNotFoundError(fmt.Errorf("session %s not found", sessionID))
		}

		return nil, fmt.Errorf("get session: %w", err)
	}

	return session, nil
}

// validateOfferClaims checks inline claims against the target configuration's
// schema before any session is persisted.
func (s *Service) validateOfferClaims(tenant *profile.Issuer, req *CreateOfferRequest) error {
	for configID, claims := range req.ClaimData {
		config, ok := tenant.CredentialConfigurations[configID]
		if !ok {
			return oidc4vcierr.NewUnknownCredentialConfigurationError(
				fmt.Errorf("claim data references unknown configuration %s", configID)).
				WithIncorrectValue(configID).
				WithHTTPStatusField(409).
				WithComponent(resterr.OfferSvcComponent)
		}

		if len(config.ClaimsSchema) == 0 {
			continue
		}

		cacheKey := tenant.ID + "/" + configID

		if err := s.schemaValidator.Validate(claims, cacheKey, config.ClaimsSchema); err != nil {
			return oidc4vcierr.NewBadRequestError(
				fmt.Errorf("claim data for %s does not match schema: %w", configID, err)).
				WithComponent(resterr.OfferSvcComponent)
		}
	}

	return nil
}

// selectAuthorizationServer picks the server referenced by an
// authorization-code offer: the tenant's chained authorization source if
// configured, otherwise the externally supplied server, otherwise the tenant's
// local authorization source.
func (s *Service) selectAuthorizationServer(
	ctx context.Context,
	tenant *profile.Issuer,
	override string,
) (string, error) {
	cfg := tenant.AuthorizationConfig

	if cfg.ChainedAuthorizationServer != "" {
		return cfg.ChainedAuthorizationServer, nil
	}

	if override != "" {
		if _, err := s.wellKnownService.GetOpenIDConfiguration(ctx, override); err != nil {
			return "", oidc4vcierr.NewBadRequestError(
				fmt.Errorf("authorization server %s is unreachable: %w", override, err)).
				WithIncorrectValue(override).
				WithComponent(resterr.WellKnownSvcComponent)
		}

		return override, nil
	}

	return cfg.LocalAuthorizationServer, nil
}

func (s *Service) buildOfferPayload(
	tenant *profile.Issuer,
	session *Session,
	txCodeSpec *TxCodeSpec,
) map[string]interface{} {
	offer := CredentialOfferResponse{
		CredentialIssuer:           s.tenantIssuerURL(tenant),
		CredentialConfigurationIDs: session.CredentialConfigurationIDs,
	}

	switch session.Type {
	case SessionTypePreAuthorized:
		grant := &PreAuthorizedCodeGrant{
			PreAuthorizedCode: session.PreAuthorizedCode,
		}

		if session.TxCode != "" {
			spec := &TxCodeSpec{
				InputMode: txCodeInputModeNumeric,
				Length:    len(session.TxCode),
			}

			if txCodeSpec != nil {
				if txCodeSpec.InputMode != "" {
					spec.InputMode = txCodeSpec.InputMode
				}

				spec.Description = txCodeSpec.Description
			}

			grant.TxCode = spec
		}

		offer.Grants.PreAuthorizedCode = grant
	case SessionTypeAuthorizationCode:
		offer.Grants.AuthorizationCode = &AuthorizationCodeGrant{
			IssuerState:         string(session.ID),
			AuthorizationServer: session.AuthorizationServer,
		}
	case SessionTypeExternal:
	}

	return offerToMap(offer)
}

func (s *Service) buildOfferURI(tenant *profile.Issuer, sessionID SessionID) string {
	offerURL := fmt.Sprintf("%s/issuer/profiles/%s/offers/%s",
		s.issuerPublicHost, tenant.ID, sessionID)

	return credentialOfferScheme + "?credential_offer_uri=" + url.QueryEscape(offerURL)
}

func (s *Service) tenantIssuerURL(tenant *profile.Issuer) string {
	if tenant.URL != "" {
		return tenant.URL
	}

	return fmt.Sprintf("%s/oidc/%s", s.issuerPublicHost, tenant.ID)
}

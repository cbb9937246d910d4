/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination verifier_mocks_test.go -package accesstoken_test -source=verifier.go -mock_names wellKnownService=MockWellKnownService

package accesstoken

import (
	"context"
	"errors"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/profile"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/oidc4vci"
)

type wellKnownService interface {
	GetOpenIDConfiguration(ctx context.Context, issuerURL string) (*oidc4vci.OpenIDConfiguration, error)
}

// Verifier validates wallet access tokens against the JWK set of the
// authorization server that minted them. Key sets are cached and refreshed by
// the jwk auto-refresh cache.
type Verifier struct {
	wellKnown wellKnownService
	jwkCache  *jwk.Cache
}

// NewVerifier returns a new Verifier instance.
func NewVerifier(ctx context.Context, wellKnown wellKnownService) *Verifier {
	return &Verifier{
		wellKnown: wellKnown,
		jwkCache:  jwk.NewCache(ctx),
	}
}

// VerifyAccessToken checks the token signature against its issuer's published
// keys and returns the verified payload. The issuer must be one of the
// authorization servers the tenant is configured to accept; anything else is
// rejected before any network fetch happens.
func (v *Verifier) VerifyAccessToken(
	ctx context.Context,
	rawToken string,
	tenant *profile.Issuer,
) (*oidc4vci.TokenPayload, error) {
	unverified, err := jwt.ParseInsecure([]byte(rawToken))
	if err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}

	issuer := unverified.Issuer()
	if issuer == "" {
		return nil, errors.New("access token has no issuer claim")
	}

	if !tenantAcceptsIssuer(tenant, issuer) {
		return nil, fmt.Errorf("token issuer %s is not accepted by tenant %s", issuer, tenant.ID)
	}

	config, err := v.wellKnown.GetOpenIDConfiguration(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("resolve authorization server configuration: %w", err)
	}

	if config.JWKSURI == "" {
		return nil, fmt.Errorf("authorization server %s publishes no jwks_uri", issuer)
	}

	if err = v.jwkCache.Register(config.JWKSURI); err != nil {
		return nil, fmt.Errorf("register jwks endpoint: %w", err)
	}

	keySet, err := v.jwkCache.Get(ctx, config.JWKSURI)
	if err != nil {
		return nil, fmt.Errorf("fetch jwks: %w", err)
	}

	token, err := jwt.Parse([]byte(rawToken), jwt.WithKeySet(keySet), jwt.WithValidate(true))
	if err != nil {
		return nil, fmt.Errorf("verify access token: %w", err)
	}

	return &oidc4vci.TokenPayload{
		Issuer:  token.Issuer(),
		Subject: token.Subject(),
		Claims:  token.PrivateClaims(),
	}, nil
}

func tenantAcceptsIssuer(tenant *profile.Issuer, issuer string) bool {
	cfg := tenant.AuthorizationConfig
	if cfg == nil {
		return false
	}

	if issuer == cfg.LocalAuthorizationServer || issuer == cfg.ChainedAuthorizationServer {
		return true
	}

	for _, trusted := range cfg.TrustedAuthorizationServers {
		if issuer == trusted {
			return true
		}
	}

	return false
}

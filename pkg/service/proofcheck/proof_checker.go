/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package proofcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jws"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/samber/lo"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/profile"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/oidc4vci"
)

const (
	proofTypeJWT    = "openid4vci-proof+jwt"
	proofNonceClaim = "nonce"
)

// Checker verifies proof-of-possession JWTs. The holder key travels in the
// protected header, either as an embedded jwk or a kid reference; only the
// embedded form is supported.
type Checker struct {
	issuerPublicHost string
}

// NewChecker returns a new Checker instance.
func NewChecker(issuerPublicHost string) *Checker {
	return &Checker{
		issuerPublicHost: issuerPublicHost,
	}
}

// CheckJWTProof verifies the proof signature with the embedded holder key and
// checks the nonce and audience claims. It returns the holder key material for
// credential binding.
func (c *Checker) CheckJWTProof(
	_ context.Context,
	rawProofJWT string,
	tenant *profile.Issuer,
	expectedNonce string,
) (*oidc4vci.ProofResult, error) {
	msg, err := jws.Parse([]byte(rawProofJWT))
	if err != nil {
		return nil, fmt.Errorf("parse proof: %w", err)
	}

	if len(msg.Signatures()) == 0 {
		return nil, errors.New("proof has no signature")
	}

	headers := msg.Signatures()[0].ProtectedHeaders()

	if headers.Type() != proofTypeJWT {
		return nil, fmt.Errorf("unexpected proof typ %s", headers.Type())
	}

	holderKey := headers.JWK()
	if holderKey == nil {
		return nil, errors.New("proof header carries no holder key")
	}

	token, err := jwt.Parse([]byte(rawProofJWT),
		jwt.WithKey(headers.Algorithm(), holderKey),
		jwt.WithValidate(true))
	if err != nil {
		return nil, fmt.Errorf("verify proof signature: %w", err)
	}

	nonce, ok := token.Get(proofNonceClaim)
	if !ok || nonce != expectedNonce {
		return nil, errors.New("proof nonce does not match the expected challenge")
	}

	expectedAudience := fmt.Sprintf("%s/oidc/%s", c.issuerPublicHost, tenant.ID)
	if tenant.URL != "" {
		expectedAudience = tenant.URL
	}

	if len(token.Audience()) > 0 && !lo.Contains(token.Audience(), expectedAudience) {
		return nil, fmt.Errorf("proof audience does not include %s", expectedAudience)
	}

	cnf, err := json.Marshal(holderKey)
	if err != nil {
		return nil, fmt.Errorf("marshal holder key: %w", err)
	}

	return &oidc4vci.ProofResult{
		HolderCnf: cnf,
		KeyID:     holderKey.KeyID(),
	}, nil
}

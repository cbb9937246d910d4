/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/oidc4vci"
)

// Encoder renders issued credentials as unsecured JWTs. Production deployments
// replace it with a signing encoder backed by the tenant's key management;
// this default keeps the issuance pipeline complete without key material.
type Encoder struct {
	issuerPublicHost string
}

// NewEncoder returns a new Encoder instance.
func NewEncoder(issuerPublicHost string) *Encoder {
	return &Encoder{
		issuerPublicHost: issuerPublicHost,
	}
}

type vcClaims struct {
	ID                string                 `json:"id"`
	Type              []string               `json:"type"`
	Issuer            string                 `json:"issuer"`
	CredentialSubject map[string]interface{} `json:"credentialSubject,omitempty"`
}

type jwtClaims struct {
	Issuer   string                 `json:"iss"`
	JWTID    string                 `json:"jti"`
	IssuedAt int64                  `json:"iat"`
	Cnf      map[string]interface{} `json:"cnf,omitempty"`
	VC       vcClaims               `json:"vc"`
}

// Encode builds the credential for one issuance.
func (e *Encoder) Encode(_ context.Context, req *oidc4vci.EncodeCredentialRequest) (string, error) {
	issuerURL := req.Tenant.URL
	if issuerURL == "" {
		issuerURL = fmt.Sprintf("%s/oidc/%s", e.issuerPublicHost, req.Tenant.ID)
	}

	id := uuid.New().URN()

	claims := jwtClaims{
		Issuer:   issuerURL,
		JWTID:    id,
		IssuedAt: time.Now().Unix(),
		VC: vcClaims{
			ID:                id,
			Type:              []string{"VerifiableCredential", req.CredentialConfigurationID},
			Issuer:            issuerURL,
			CredentialSubject: req.Claims,
		},
	}

	if len(req.HolderCnf) > 0 {
		claims.Cnf = map[string]interface{}{
			"jwk": json.RawMessage(req.HolderCnf),
		}
	}

	header, err := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	if err != nil {
		return "", fmt.Errorf("marshal header: %w", err)
	}

	payload, err := json.Marshal(&claims)
	if err != nil {
		return "", fmt.Errorf("marshal claims: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(header) + "." +
		base64.RawURLEncoding.EncodeToString(payload) + ".", nil
}

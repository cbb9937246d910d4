/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

const proofNonceClaim = "nonce"

// extractProofNonce reads the nonce claim from a proof JWT without verifying
// its signature. The nonce must be consumed from the ledger before signature
// verification runs, so the claim has to be readable up front.
func extractProofNonce(rawProofJWT string) (string, error) {
	token, err := jwt.ParseInsecure([]byte(rawProofJWT))
	if err != nil {
		return "", fmt.Errorf("parse proof jwt: %w", err)
	}

	v, ok := token.Get(proofNonceClaim)
	if !ok {
		return "", fmt.Errorf("proof jwt has no nonce claim")
	}

	nonce, ok := v.(string)
	if !ok || nonce == "" {
		return "", fmt.Errorf("proof jwt nonce claim is not a non-empty string")
	}

	return nonce, nil
}

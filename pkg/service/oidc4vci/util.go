/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
)

const secretSize = 32

func mustGenerateSecret() string {
	b := make([]byte, secretSize)

	if _, err := rand.Read(b); err != nil {
		panic(err)
	}

	return base64.RawURLEncoding.EncodeToString(b)
}

const txCodeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func generateTxCode(spec *TxCodeSpec) (string, error) {
	length := spec.Length
	if length == 0 {
		length = defaultTxCodeLength
	}

	if length < minTxCodeLength || length > maxTxCodeLength {
		return "", fmt.Errorf("tx_code length %d is out of range [%d, %d]",
			length, minTxCodeLength, maxTxCodeLength)
	}

	alphabet := "0123456789"

	switch spec.InputMode {
	case "", txCodeInputModeNumeric:
	case txCodeInputModeText:
		alphabet = txCodeAlphabet
	default:
		return "", fmt.Errorf("unsupported tx_code input mode %s", spec.InputMode)
	}

	code := make([]byte, length)

	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", fmt.Errorf("generate tx_code: %w", err)
		}

		code[i] = alphabet[n.Int64()]
	}

	return string(code), nil
}

// offerToMap round-trips the offer through JSON so the session stores a plain
// map and survives BSON serialization without custom codecs.
func offerToMap(offer CredentialOfferResponse) map[string]interface{} {
	b, err := json.Marshal(offer)
	if err != nil {
		panic(err)
	}

	var m map[string]interface{}

	if err = json.Unmarshal(b, &m); err != nil {
		panic(err)
	}

	return m
}

/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination claims_client_mocks_test.go -package claims_test -source=claims_client.go -mock_names httpClient=MockHTTPClient

package claims

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/internal/logfields"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/oidc4vci"
)

var logger = log.New("claims-client")

const maxRequestRetries = 2

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Resolver resolves credential claims at issuance time. Claims supplied inline
// when the offer was created win; otherwise the tenant's claims webhook is
// asked, which may also defer the issuance.
type Resolver struct {
	client httpClient
}

// NewResolver returns a new Resolver instance.
func NewResolver(client httpClient) *Resolver {
	return &Resolver{
		client: client,
	}
}

type webhookRequest struct {
	SessionID                 string                          `json:"session_id"`
	CredentialConfigurationID string                          `json:"credential_configuration_id"`
	CredentialPayload         map[string]interface{}          `json:"credential_payload,omitempty"`
	Identity                  *oidc4vci.AuthorizationIdentity `json:"identity,omitempty"`
	PresentedCredentials      []string                        `json:"presented_credentials,omitempty"`
}

// Resolve implements the claims resolution contract of the issuance engine.
func (r *Resolver) Resolve(
	ctx context.Context,
	req *oidc4vci.ResolveClaimsRequest,
) (*oidc4vci.ResolveClaimsResult, error) {
	if claims, ok := req.Session.ClaimData[req.CredentialConfigurationID]; ok {
		return &oidc4vci.ResolveClaimsResult{Claims: claims}, nil
	}

	webhook := req.Tenant.ClaimsWebhook
	if webhook == nil || webhook.URL == "" {
		return nil, fmt.Errorf("tenant %s has no claims source for configuration %s",
			req.Tenant.ID, req.CredentialConfigurationID)
	}

	payload, err := json.Marshal(&webhookRequest{
		SessionID:                 string(req.Session.ID),
		CredentialConfigurationID: req.CredentialConfigurationID,
		CredentialPayload:         req.Session.CredentialPayload,
		Identity:                  req.Identity,
		PresentedCredentials:      req.PresentedCredentials,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal claims request: %w", err)
	}

	var result *oidc4vci.ResolveClaimsResult

	op := func() error {
		result, err = r.request(ctx, webhook.URL, webhook.AuthToken, payload)

		return err
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRequestRetries), ctx)

	notify := func(retryErr error, _ time.Duration) {
		logger.Warnc(ctx, "claims webhook request failed, retrying",
			logfields.WithWebhookURL(webhook.URL), log.WithError(retryErr))
	}

	if err = backoff.RetryNotify(op, b, notify); err != nil {
		return nil, fmt.Errorf("request claims: %w", err)
	}

	return result, nil
}

func (r *Resolver) request(
	ctx context.Context,
	url, authToken string,
	payload []byte,
) (*oidc4vci.ResolveClaimsResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")

	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("claims webhook returned status code %d", resp.StatusCode)

		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, err
		}

		return nil, backoff.Permanent(err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var result oidc4vci.ResolveClaimsResult

	if err = json.Unmarshal(body, &result); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("decode claims response: %w", err))
	}

	if !result.Deferred && result.Claims == nil {
		return nil, backoff.Permanent(errors.New("claims webhook returned neither claims nor deferral"))
	}

	return &result, nil
}

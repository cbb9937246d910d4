/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/internal/logfields"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/event/spi"
)

var logger = log.New("event-webhook")

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type webhookResolver interface {
	NotifyWebhook(tenantID string) (url, authToken string, ok bool)
}

// Subscriber forwards issuance events to the owning tenant's notify webhook.
// Delivery is best-effort: a failed POST is logged and dropped.
type Subscriber struct {
	httpClient httpClient
	resolver   webhookResolver
}

// NewSubscriber creates a webhook Subscriber.
func NewSubscriber(client httpClient, resolver webhookResolver) *Subscriber {
	return &Subscriber{
		httpClient: client,
		resolver:   resolver,
	}
}

// Handle posts the event to the tenant webhook, if one is configured.
func (s *Subscriber) Handle(ctx context.Context, event *spi.Event) error {
	url, authToken, ok := s.resolver.NotifyWebhook(event.TenantID)
	if !ok {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post event to webhook: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= http.StatusMultipleChoices {
		logger.Warnc(ctx, "webhook returned non-success status",
			logfields.WithWebhookURL(url), logfields.WithHTTPStatus(resp.StatusCode))
	}

	return nil
}

/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination wellknown_service_mocks_test.go -package wellknown_test -source=wellknown_service.go -mock_names httpClient=MockHTTPClient

package wellknown

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/oidc4vci"
)

const (
	wellKnownPath   = "/.well-known/openid-configuration"
	defaultCacheTTL = 5 * time.Minute
	maxFetchRetries = 3
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type cacheEntry struct {
	config    *oidc4vci.OpenIDConfiguration
	expiresAt time.Time
}

// Service fetches authorization-server configurations from their well-known
// endpoints. Responses are cached briefly since issuer metadata requests hit
// the same handful of servers repeatedly.
type Service struct {
	client   httpClient
	cacheTTL time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// NewService returns a new Service instance.
func NewService(client httpClient) *Service {
	return &Service{
		client:   client,
		cacheTTL: defaultCacheTTL,
		cache:    map[string]cacheEntry{},
	}
}

// GetOpenIDConfiguration returns the OpenID configuration of the authorization
// server at issuerURL. Transient fetch failures are retried with exponential
// backoff.
func (s *Service) GetOpenIDConfiguration(
	ctx context.Context,
	issuerURL string,
) (*oidc4vci.OpenIDConfiguration, error) {
	configURL := strings.TrimSuffix(issuerURL, "/") + wellKnownPath

	s.mu.Lock()
	if entry, ok := s.cache[configURL]; ok && entry.expiresAt.After(time.Now()) {
		s.mu.Unlock()

		return entry.config, nil
	}
	s.mu.Unlock()

	var config *oidc4vci.OpenIDConfiguration

	op := func() error {
		var err error

		config, err = s.fetch(ctx, configURL)

		return err
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxFetchRetries), ctx)

	if err := backoff.Retry(op, b); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[configURL] = cacheEntry{config: config, expiresAt: time.Now().Add(s.cacheTTL)}
	s.mu.Unlock()

	return config, nil
}

func (s *Service) fetch(ctx context.Context, configURL string) (*oidc4vci.OpenIDConfiguration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, configURL, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer func() {
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("got unexpected status code: %v", resp.StatusCode)

		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, err
		}

		return nil, backoff.Permanent(err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var config oidc4vci.OpenIDConfiguration

	if err = json.Unmarshal(body, &config); err != nil {
		return nil, backoff.Permanent(err)
	}

	return &config, nil
}

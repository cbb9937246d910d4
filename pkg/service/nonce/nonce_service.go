/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination nonce_service_mocks_test.go -self_package mocks -package nonce_test -source=nonce_service.go -mock_names ledgerStore=MockLedgerStore,metricsProvider=MockMetricsProvider

package nonce

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/internal/logfields"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/profile"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr"
	oidc4vcierr "github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr/oidc4vci"
)

var logger = log.New("nonce-ledger")

const nonceSize = 32

// Record is a single-use challenge held by the ledger until it is consumed or
// expires.
type Record struct {
	TenantID  string
	Value     string
	ExpiresAt time.Time
}

type ledgerStore interface {
	Create(ctx context.Context, record *Record, ttl time.Duration) error

	// GetAndDelete atomically removes the record and returns it, or
	// resterr.ErrDataNotFound when no such record exists.
	GetAndDelete(ctx context.Context, tenantID, value string) (*Record, error)

	DeleteExpired(ctx context.Context) (int64, error)
}

type metricsProvider interface {
	NonceIssued(tenantID string)
	NonceConsumed(tenantID string, valid bool)
}

// Config holds configuration options and dependencies for Ledger.
type Config struct {
	Store   ledgerStore
	Metrics metricsProvider
}

// Ledger issues single-use proof challenges and atomically consumes them. A
// value can be consumed at most once regardless of concurrent attempts; the
// store's delete-and-return primitive provides that guarantee.
type Ledger struct {
	store   ledgerStore
	metrics metricsProvider
}

// NewLedger returns a new Ledger instance.
func NewLedger(config *Config) *Ledger {
	return &Ledger{
		store:   config.Store,
		metrics: config.Metrics,
	}
}

// Issue mints a fresh nonce for the tenant and returns it along with its
// lifetime, so callers can surface c_nonce_expires_in to the wallet.
func (l *Ledger) Issue(ctx context.Context, tenant *profile.Issuer) (string, time.Duration, error) {
	b := make([]byte, nonceSize)

	if _, err := rand.Read(b); err != nil {
		return "", 0, fmt.Errorf("generate nonce: %w", err)
	}

	value := base64.RawURLEncoding.EncodeToString(b)
	ttl := tenant.NonceTTL()

	record := &Record{
		TenantID:  tenant.ID,
		Value:     value,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}

	if err := l.store.Create(ctx, record, ttl); err != nil {
		return "", 0, fmt.Errorf("store nonce: %w", err)
	}

	l.metrics.NonceIssued(tenant.ID)

	return value, ttl, nil
}

// Consume removes the nonce from the ledger. Unknown, already consumed and
// expired values are indistinguishable to the caller. An expired record that
// outlived the store's background expiry is removed here and still rejected.
func (l *Ledger) Consume(ctx context.Context, tenantID, value string) error {
	record, err := l.store.GetAndDelete(ctx, tenantID, value)
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			l.metrics.NonceConsumed(tenantID, false)

			return oidc4vcierr.NewInvalidNonceError(
				errors.New("nonce is unknown or already used")).
				WithComponent(resterr.NonceLedgerComponent)
		}

		return fmt.Errorf("consume nonce: %w", err)
	}

	if record.ExpiresAt.Before(time.Now().UTC()) {
		l.metrics.NonceConsumed(tenantID, false)

		return oidc4vcierr.NewInvalidNonceError(
			errors.New("nonce has expired")).
			WithComponent(resterr.NonceLedgerComponent)
	}

	l.metrics.NonceConsumed(tenantID, true)

	return nil
}

// SweepExpired removes expired records that were never consumed.
func (l *Ledger) SweepExpired(ctx context.Context) error {
	deleted, err := l.store.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("delete expired nonces: %w", err)
	}

	if deleted > 0 {
		logger.Debugc(ctx, "expired nonces removed", logfields.WithDeletedCount(deleted))
	}

	return nil
}

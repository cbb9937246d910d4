/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination deferred_service_mocks_test.go -self_package mocks -package deferred_test -source=deferred_service.go -mock_names transactionStore=MockTransactionStore,sessionStore=MockSessionStore,credentialEncoder=MockCredentialEncoder,eventService=MockEventService,metricsProvider=MockMetricsProvider

package deferred

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/internal/logfields"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/event/spi"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/profile"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr"
	oidc4vcierr "github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr/oidc4vci"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/oidc4vci"
)

var logger = log.New("deferred-manager")

const defaultRetryInterval = int32(5)

type transactionStore interface {
	Create(ctx context.Context, ttl time.Duration, data *TransactionData) (*Transaction, error)

	Get(ctx context.Context, tenantID string, id TxID) (*Transaction, error)

	// UpdateIfStatus persists the transaction only while its stored status
	// still matches one of the expected values. Returns false when the gate
	// was lost to a concurrent update.
	UpdateIfStatus(ctx context.Context, tx *Transaction, expected ...Status) (bool, error)

	ExpirePast(ctx context.Context, now time.Time) (int64, error)
}

type sessionStore interface {
	Get(ctx context.Context, tenantID string, id oidc4vci.SessionID) (*oidc4vci.Session, error)
}

type credentialEncoder interface {
	Encode(ctx context.Context, req *oidc4vci.EncodeCredentialRequest) (string, error)
}

type eventService interface {
	Publish(ctx context.Context, topic string, events ...*spi.Event) error
}

type metricsProvider interface {
	DeferredCompleted(tenantID string)
	DeferredFailed(tenantID string)
	DeferredRetrieved(tenantID string)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	Store      transactionStore
	Sessions   sessionStore
	Encoder    credentialEncoder
	EventSvc   eventService
	EventTopic string
	Metrics    metricsProvider
}

// Service manages deferred issuance transactions. Status moves
// pending -> ready|failed|expired and ready -> retrieved|failed|expired;
// retrieval is single-use and status never moves backwards.
type Service struct {
	store      transactionStore
	sessions   sessionStore
	encoder    credentialEncoder
	eventSvc   eventService
	eventTopic string
	metrics    metricsProvider
}

// NewService returns a new Service instance.
func NewService(config *Config) *Service {
	return &Service{
		store:      config.Store,
		sessions:   config.Sessions,
		encoder:    config.Encoder,
		eventSvc:   config.EventSvc,
		eventTopic: config.EventTopic,
		metrics:    config.Metrics,
	}
}

// CreateTransaction opens a pending transaction for an issuance whose claims
// are not yet available.
func (s *Service) CreateTransaction(
	ctx context.Context,
	tenant *profile.Issuer,
	req *oidc4vci.DeferredTransactionRequest,
) (string, error) {
	interval := req.Interval
	if interval <= 0 {
		interval = defaultRetryInterval
	}

	tx, err := s.store.Create(ctx, tenant.DeferredTTL(), &TransactionData{
		TenantID:                  tenant.ID,
		SessionID:                 req.SessionID,
		CredentialConfigurationID: req.CredentialConfigurationID,
		HolderCnf:                 req.HolderCnf,
		Status:                    StatusPending,
		Interval:                  interval,
		CreatedAt:                 time.Now().UTC(),
		ExpiresAt:                 time.Now().UTC().Add(tenant.DeferredTTL()),
	})
	if err != nil {
		return "", fmt.Errorf("create deferred transaction: %w", err)
	}

	logger.Infoc(ctx, "deferred transaction created",
		logfields.WithTenantID(tenant.ID),
		logfields.WithTransactionID(string(tx.ID)),
		logfields.WithSessionID(string(req.SessionID)))

	return string(tx.ID), nil
}

// Complete encodes the credential from the supplied claims and marks the
// transaction ready for retrieval. Only pending transactions can complete; a
// nil transaction with a nil error means no pending transaction matched.
func (s *Service) Complete(
	ctx context.Context,
	tenant *profile.Issuer,
	id TxID,
	claims map[string]interface{},
) (*Transaction, error) {
	tx, err := s.store.Get(ctx, tenant.ID, id)
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("get deferred transaction: %w", err)
	}

	if tx.Status != StatusPending {
		return nil, nil
	}

	session, err := s.sessions.Get(ctx, tenant.ID, tx.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", tx.SessionID, err)
	}

	credential, err := s.encoder.Encode(ctx, &oidc4vci.EncodeCredentialRequest{
		Tenant:                    tenant,
		CredentialConfigurationID: tx.CredentialConfigurationID,
		HolderCnf:                 tx.HolderCnf,
		Session:                   session,
		Claims:                    claims,
	})
	if err != nil {
		return nil, fmt.Errorf("encode credential: %w", err)
	}

	tx.Status = StatusReady
	tx.Credential = credential

	ok, err := s.store.UpdateIfStatus(ctx, tx, StatusPending)
	if err != nil {
		return nil, fmt.Errorf("update deferred transaction: %w", err)
	}

	if !ok {
		return nil, nil
	}

	s.publishEvent(ctx, tx, spi.DeferredCompleted, "")
	s.metrics.DeferredCompleted(tenant.ID)

	return tx, nil
}

// Fail marks the transaction failed with the given message. Failure is allowed
// from any prior status so a tenant can retract a ready credential that was
// never retrieved. A nil transaction with a nil error means the id is unknown.
func (s *Service) Fail(
	ctx context.Context,
	tenant *profile.Issuer,
	id TxID,
	errorMessage string,
) (*Transaction, error) {
	tx, err := s.store.Get(ctx, tenant.ID, id)
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("get deferred transaction: %w", err)
	}

	if tx.Status == StatusRetrieved {
		return nil, nil
	}

	prior := tx.Status

	tx.Status = StatusFailed
	tx.Credential = ""
	tx.ErrorMessage = errorMessage

	ok, err := s.store.UpdateIfStatus(ctx, tx, prior)
	if err != nil {
		return nil, fmt.Errorf("update deferred transaction: %w", err)
	}

	if !ok {
		return nil, nil
	}

	s.publishEvent(ctx, tx, spi.DeferredFailed, errorMessage)
	s.metrics.DeferredFailed(tenant.ID)

	return tx, nil
}

// Retrieve hands the credential to the wallet. A pending transaction reports
// issuance_pending with the retry interval; a ready one returns the credential
// exactly once and moves to retrieved; every other status is rejected with
// invalid_transaction_id. A pending or ready transaction past its deadline is
// expired in place before being rejected.
func (s *Service) Retrieve(ctx context.Context, tenant *profile.Issuer, id TxID) (string, error) {
	tx, err := s.store.Get(ctx, tenant.ID, id)
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			return "", invalidTransactionError(id)
		}

		return "", fmt.Errorf("get deferred transaction: %w", err)
	}

	if (tx.Status == StatusPending || tx.Status == StatusReady) && tx.ExpiresAt.Before(time.Now().UTC()) {
		prior := tx.Status

		tx.Status = StatusExpired
		tx.Credential = ""

		if _, err = s.store.UpdateIfStatus(ctx, tx, prior); err != nil {
			logger.Warnc(ctx, "mark deferred transaction expired",
				logfields.WithTransactionID(string(id)), log.WithError(err))
		}

		return "", invalidTransactionError(id)
	}

	switch tx.Status {
	case StatusPending:
		return "", oidc4vcierr.NewIssuancePendingError(
			errors.New("credential is not ready yet"), int(tx.Interval))
	case StatusReady:
		credential := tx.Credential

		tx.Status = StatusRetrieved
		tx.Credential = ""

		ok, updateErr := s.store.UpdateIfStatus(ctx, tx, StatusReady)
		if updateErr != nil {
			return "", fmt.Errorf("update deferred transaction: %w", updateErr)
		}

		if !ok {
			return "", invalidTransactionError(id)
		}

		s.metrics.DeferredRetrieved(tenant.ID)

		return credential, nil
	default:
		return "", invalidTransactionError(id)
	}
}

// SweepExpired marks pending and ready transactions past their deadline as
// expired.
func (s *Service) SweepExpired(ctx context.Context) error {
	expired, err := s.store.ExpirePast(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("expire deferred transactions: %w", err)
	}

	if expired > 0 {
		logger.Debugc(ctx, "deferred transactions expired", logfields.WithDeletedCount(expired))
	}

	return nil
}

func invalidTransactionError(id TxID) error {
	return oidc4vcierr.NewInvalidTransactionIDError(
		fmt.Errorf("transaction %s cannot be retrieved", id)).
		WithComponent(resterr.DeferredManagerComponent)
}

func (s *Service) publishEvent(ctx context.Context, tx *Transaction, eventType spi.EventType, errMsg string) {
	payload, err := json.Marshal(&oidc4vci.EventPayload{
		TenantID:                  tx.TenantID,
		SessionID:                 string(tx.SessionID),
		TransactionID:             string(tx.ID),
		CredentialConfigurationID: tx.CredentialConfigurationID,
		Error:                     errMsg,
	})
	if err != nil {
		logger.Warnc(ctx, "marshal deferred event payload", log.WithError(err))

		return
	}

	event := spi.NewEventWithPayload(uuid.NewString(), "deferred-manager", eventType, payload)
	event.TenantID = tx.TenantID
	event.TransactionID = string(tx.ID)

	if err = s.eventSvc.Publish(ctx, s.eventTopic, event); err != nil {
		logger.Warnc(ctx, "publish deferred event",
			logfields.WithTransactionID(string(tx.ID)), log.WithError(err))
	}
}

/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination oidc4vci_service_mocks_test.go -self_package mocks -package oidc4vci_test -source=interfaces.go -mock_names sessionStore=MockSessionStore,nonceLedger=MockNonceLedger,deferredTransactionCreator=MockDeferredTransactionCreator,claimsResolver=MockClaimsResolver,credentialEncoder=MockCredentialEncoder,proofChecker=MockProofChecker,identityProvider=MockIdentityProvider,wellKnownService=MockWellKnownService,schemaValidator=MockSchemaValidator
//go:generate mockgen -destination oidc4vci_service_extra_mocks_test.go -self_package mocks -package oidc4vci_test -source=oidc4vci_service.go -mock_names eventService=MockEventService,metricsProvider=MockMetricsProvider

package oidc4vci

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/event/spi"
)

var logger = log.New("oidc4vci")

type eventService interface {
	Publish(ctx context.Context, topic string, events ...*spi.Event) error
}

type metricsProvider interface {
	OfferCreated(tenantID string)
	CredentialsIssued(tenantID string, count int)
	IssuanceDeferred(tenantID string)
	IssuanceFailed(tenantID, errorCode string)
	NotificationRecorded(tenantID, event string)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	SessionStore     sessionStore
	NonceLedger      nonceLedger
	DeferredCreator  deferredTransactionCreator
	ClaimsResolver   claimsResolver
	Encoder          credentialEncoder
	ProofChecker     proofChecker
	IdentityProvider identityProvider
	WellKnownService wellKnownService
	SchemaValidator  schemaValidator
	EventService     eventService
	EventTopic       string
	Metrics          metricsProvider
	IssuerPublicHost string
}

// Service implements the credential issuance protocol engine: offer creation,
// authorization classification, proof validation against the nonce ledger, and
// synchronous or deferred credential issuance.
type Service struct {
	store            sessionStore
	nonces           nonceLedger
	deferredCreator  deferredTransactionCreator
	claimsResolver   claimsResolver
	encoder          credentialEncoder
	proofChecker     proofChecker
	identityProvider identityProvider
	wellKnownService wellKnownService
	schemaValidator  schemaValidator
	eventSvc         eventService
	eventTopic       string
	metrics          metricsProvider
	issuerPublicHost string
}

// NewService returns a new Service instance.
func NewService(config *Config) (*Service, error) {
	return &Service{
		store:            config.SessionStore,
		nonces:           config.NonceLedger,
		deferredCreator:  config.DeferredCreator,
		claimsResolver:   config.ClaimsResolver,
		encoder:          config.Encoder,
		proofChecker:     config.ProofChecker,
		identityProvider: config.IdentityProvider,
		wellKnownService: config.WellKnownService,
		schemaValidator:  config.SchemaValidator,
		eventSvc:         config.EventService,
		eventTopic:       config.EventTopic,
		metrics:          config.Metrics,
		issuerPublicHost: config.IssuerPublicHost,
	}, nil
}

func (s *Service) createEvent(
	session *Session,
	eventType spi.EventType,
	ep *EventPayload,
) (*spi.Event, error) {
	if ep == nil {
		ep = &EventPayload{}
	}

	ep.TenantID = session.TenantID
	ep.SessionID = string(session.ID)

	payload, err := json.Marshal(ep)
	if err != nil {
		return nil, err
	}

	event := spi.NewEventWithPayload(uuid.NewString(), "oidc4vci", eventType, payload)
	event.TenantID = session.TenantID
	event.TransactionID = string(session.ID)

	return event, nil
}

func (s *Service) sendEvent(ctx context.Context, session *Session, eventType spi.EventType, ep *EventPayload) error {
	event, err := s.createEvent(session, eventType, ep)
	if err != nil {
		return err
	}

	return s.eventSvc.Publish(ctx, s.eventTopic, event)
}

func (s *Service) sendFailedEvent(ctx context.Context, session *Session, errorCode string, cause error) {
	ep := &EventPayload{ErrorCode: errorCode}
	if cause != nil {
		ep.Error = cause.Error()
	}

	if err := s.sendEvent(ctx, session, spi.IssuanceFailed, ep); err != nil {
		logger.Debugc(ctx, "sending failed issuance event error, ignoring..", log.WithError(err))
	}
}

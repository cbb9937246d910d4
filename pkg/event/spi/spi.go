/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package spi

import (
	"time"
)

const (
	// IssuerEventTopic issuer topic name.
	IssuerEventTopic = "issuer-interaction"
)

// EventType event type.
type EventType string

const (
	// IssuanceInitiated a credential offer was created and a session opened.
	IssuanceInitiated = EventType("issuance_initiated")
	// CredentialIssued one or more credentials were issued synchronously.
	CredentialIssued = EventType("credential_issued")
	// IssuanceDeferred a deferred transaction was opened instead of issuing.
	IssuanceDeferred = EventType("issuance_deferred")
	// DeferredCompleted a deferred transaction transitioned to ready.
	DeferredCompleted = EventType("deferred_completed")
	// DeferredFailed a deferred transaction was failed by an operator.
	DeferredFailed = EventType("deferred_failed")
	// NotificationReceived the wallet reported acceptance or rejection.
	NotificationReceived = EventType("notification_received")
	// IssuanceFailed a credential request was rejected.
	IssuanceFailed = EventType("issuance_failed")
)

type Payload []byte

type Event struct {
	// SpecVersion is spec version(required).
	SpecVersion string `json:"specVersion"`

	// ID identifies the event(required).
	ID string `json:"id"`

	// Source is URI for producer(required).
	Source string `json:"source"`

	// Type defines event type(required).
	Type EventType `json:"type"`

	// Time defines time of occurrence(required).
	Time time.Time `json:"time"`

	// DataContentType is data content type(optional).
	DataContentType string `json:"dataContentType,omitempty"`

	// Data defines message(optional).
	Data []byte `json:"data,omitempty"`

	// TenantID defines the tenant the event belongs to(optional).
	TenantID string `json:"tenantId,omitempty"`

	// TransactionID defines transaction ID(optional).
	TransactionID string `json:"txnId,omitempty"`
}

// Copy an event.
func (m *Event) Copy() *Event {
	return &Event{
		SpecVersion:     m.SpecVersion,
		ID:              m.ID,
		Source:          m.Source,
		Type:            m.Type,
		Time:            m.Time,
		DataContentType: m.DataContentType,
		Data:            m.Data,
		TenantID:        m.TenantID,
		TransactionID:   m.TransactionID,
	}
}

// NewEventWithPayload creates a new Event with payload.
func NewEventWithPayload(uuid string, source string, eventType EventType, payload Payload) *Event {
	event := NewEvent(uuid, source, eventType)

	event.Data = payload

	// all components publish json
	event.DataContentType = "application/json"

	return event
}

// NewEvent creates a new Event and sets all required fields.
func NewEvent(uuid string, source string, eventType EventType) *Event {
	return &Event{
		SpecVersion: "1.0",
		ID:          uuid,
		Source:      source,
		Type:        eventType,
		Time:        time.Now(),
	}
}

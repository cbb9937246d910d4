/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"go.uber.org/zap"
)

// Log Fields.
const (
	FieldTenantID                  = "tenantID"
	FieldSessionID                 = "sessionID"
	FieldTransactionID             = "transactionID"
	FieldNotificationID            = "notificationID"
	FieldCredentialConfigurationID = "credentialConfigurationID"
	FieldTokenIssuer               = "tokenIssuer"
	FieldEvent                     = "event"
	FieldWebhookURL                = "webhookURL"
	FieldSweepJob                  = "sweepJob"
	FieldDeletedCount              = "deletedCount"
	FieldHTTPStatus                = "httpStatus"
)

// WithTenantID sets the TenantID field.
func WithTenantID(tenantID string) zap.Field {
	return zap.String(FieldTenantID, tenantID)
}

// WithSessionID sets the SessionID field.
func WithSessionID(sessionID string) zap.Field {
	return zap.String(FieldSessionID, sessionID)
}

// WithTransactionID sets the TransactionID field.
func WithTransactionID(transactionID string) zap.Field {
	return zap.String(FieldTransactionID, transactionID)
}

// WithNotificationID sets the NotificationID field.
func WithNotificationID(notificationID string) zap.Field {
	return zap.String(FieldNotificationID, notificationID)
}

// WithCredentialConfigurationID sets the CredentialConfigurationID field.
func WithCredentialConfigurationID(id string) zap.Field {
	return zap.String(FieldCredentialConfigurationID, id)
}

// WithTokenIssuer sets the TokenIssuer field.
func WithTokenIssuer(iss string) zap.Field {
	return zap.String(FieldTokenIssuer, iss)
}

// WithEvent sets the Event field.
func WithEvent(event string) zap.Field {
	return zap.String(FieldEvent, event)
}

// WithWebhookURL sets the WebhookURL field.
func WithWebhookURL(url string) zap.Field {
	return zap.String(FieldWebhookURL, url)
}

// WithSweepJob sets the SweepJob field.
func WithSweepJob(name string) zap.Field {
	return zap.String(FieldSweepJob, name)
}

// WithDeletedCount sets the DeletedCount field.
func WithDeletedCount(count int64) zap.Field {
	return zap.Int64(FieldDeletedCount, count)
}

// WithHTTPStatus sets the HTTPStatus field.
func WithHTTPStatus(status int) zap.Field {
	return zap.Int(FieldHTTPStatus, status)
}

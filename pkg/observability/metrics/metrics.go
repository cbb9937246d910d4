/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

// Namespace for all issuer metrics.
const Namespace = "issuer"

// Subsystems.
const (
	Offer        = "offer"
	Issuance     = "issuance"
	Nonce        = "nonce"
	Deferred     = "deferred"
	Notification = "notification"
)

// Metric names.
const (
	OfferCreatedMetric         = "created_total"
	CredentialsIssuedMetric    = "credentials_issued_total"
	IssuanceDeferredMetric     = "deferred_total"
	IssuanceFailedMetric       = "failed_total"
	NotificationRecordedMetric = "recorded_total"
	NonceIssuedMetric          = "issued_total"
	NonceConsumedMetric        = "consumed_total"
	DeferredCompletedMetric    = "completed_total"
	DeferredFailedMetric       = "failed_total"
	DeferredRetrievedMetric    = "retrieved_total"
)

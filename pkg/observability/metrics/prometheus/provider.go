/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/observability/metrics"
)

var (
	createOnce sync.Once    //nolint:gochecknoglobals
	instance   *PromMetrics //nolint:gochecknoglobals
)

// GetMetrics returns metrics implementation.
func GetMetrics() *PromMetrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the issuer.
type PromMetrics struct {
	offerCreated         *prometheus.CounterVec
	credentialsIssued    *prometheus.CounterVec
	issuanceDeferred     *prometheus.CounterVec
	issuanceFailed       *prometheus.CounterVec
	notificationRecorded *prometheus.CounterVec
	nonceIssued          *prometheus.CounterVec
	nonceConsumed        *prometheus.CounterVec
	deferredCompleted    *prometheus.CounterVec
	deferredFailed       *prometheus.CounterVec
	deferredRetrieved    *prometheus.CounterVec
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() *PromMetrics {
	pm := &PromMetrics{
		offerCreated: newCounterVec(metrics.Offer, metrics.OfferCreatedMetric,
			"The number of credential offers created.", "tenant"),
		credentialsIssued: newCounterVec(metrics.Issuance, metrics.CredentialsIssuedMetric,
			"The number of credentials issued.", "tenant"),
		issuanceDeferred: newCounterVec(metrics.Issuance, metrics.IssuanceDeferredMetric,
			"The number of issuances deferred.", "tenant"),
		issuanceFailed: newCounterVec(metrics.Issuance, metrics.IssuanceFailedMetric,
			"The number of credential requests rejected.", "tenant", "code"),
		notificationRecorded: newCounterVec(metrics.Notification, metrics.NotificationRecordedMetric,
			"The number of wallet notifications recorded.", "tenant", "event"),
		nonceIssued: newCounterVec(metrics.Nonce, metrics.NonceIssuedMetric,
			"The number of nonces issued.", "tenant"),
		nonceConsumed: newCounterVec(metrics.Nonce, metrics.NonceConsumedMetric,
			"The number of nonce consumption attempts.", "tenant", "valid"),
		deferredCompleted: newCounterVec(metrics.Deferred, metrics.DeferredCompletedMetric,
			"The number of deferred transactions completed.", "tenant"),
		deferredFailed: newCounterVec(metrics.Deferred, metrics.DeferredFailedMetric,
			"The number of deferred transactions failed.", "tenant"),
		deferredRetrieved: newCounterVec(metrics.Deferred, metrics.DeferredRetrievedMetric,
			"The number of deferred credentials retrieved.", "tenant"),
	}

	registerMetrics(pm)

	return pm
}

func (pm *PromMetrics) OfferCreated(tenantID string) {
	pm.offerCreated.WithLabelValues(tenantID).Inc()
}

func (pm *PromMetrics) CredentialsIssued(tenantID string, count int) {
	pm.credentialsIssued.WithLabelValues(tenantID).Add(float64(count))
}

func (pm *PromMetrics) IssuanceDeferred(tenantID string) {
	pm.issuanceDeferred.WithLabelValues(tenantID).Inc()
}

func (pm *PromMetrics) IssuanceFailed(tenantID, errorCode string) {
	pm.issuanceFailed.WithLabelValues(tenantID, errorCode).Inc()
}

func (pm *PromMetrics) NotificationRecorded(tenantID, event string) {
	pm.notificationRecorded.WithLabelValues(tenantID, event).Inc()
}

func (pm *PromMetrics) NonceIssued(tenantID string) {
	pm.nonceIssued.WithLabelValues(tenantID).Inc()
}

func (pm *PromMetrics) NonceConsumed(tenantID string, valid bool) {
	pm.nonceConsumed.WithLabelValues(tenantID, strconv.FormatBool(valid)).Inc()
}

func (pm *PromMetrics) DeferredCompleted(tenantID string) {
	pm.deferredCompleted.WithLabelValues(tenantID).Inc()
}

func (pm *PromMetrics) DeferredFailed(tenantID string) {
	pm.deferredFailed.WithLabelValues(tenantID).Inc()
}

func (pm *PromMetrics) DeferredRetrieved(tenantID string) {
	pm.deferredRetrieved.WithLabelValues(tenantID).Inc()
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.offerCreated, pm.credentialsIssued, pm.issuanceDeferred, pm.issuanceFailed,
		pm.notificationRecorded, pm.nonceIssued, pm.nonceConsumed,
		pm.deferredCompleted, pm.deferredFailed, pm.deferredRetrieved,
	)
}

func newCounterVec(subsystem, name, help string, labels ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labels)
}

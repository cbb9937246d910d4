/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/internal/logfields"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/event/spi"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/profile"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr"
	oidc4vcierr "github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr/oidc4vci"
)

// RecordNotification stores the wallet's acceptance or rejection report against
// the issuance session the notification id was minted for.
func (s *Service) RecordNotification(
	ctx context.Context,
	tenant *profile.Issuer,
	req *NotificationRequest,
) error {
	switch req.Event {
	case NotificationEventAccepted, NotificationEventFailure, NotificationEventDeleted:
	default:
		return oidc4vcierr.NewInvalidNotificationRequestError(
			fmt.Errorf("unsupported notification event %s", req.Event)).
			WithIncorrectValue(req.Event).
			WithComponent(resterr.NotificationSvcComponent)
	}

	session, err := s.store.FindByNotificationID(ctx, tenant.ID, req.NotificationID)
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			return oidc4vcierr.NewInvalidNotificationIDError(
				fmt.Errorf("notification id %s is not known", req.NotificationID)).
				WithComponent(resterr.NotificationSvcComponent)
		}

		return fmt.Errorf("find session by notification id: %w", err)
	}

	now := time.Now().UTC()

	for i := range session.Notifications {
		if session.Notifications[i].ID != req.NotificationID {
			continue
		}

		session.Notifications[i].Event = req.Event
		session.Notifications[i].EventDescription = req.EventDescription
		session.Notifications[i].ReceivedAt = &now
	}

	if req.Event == NotificationEventAccepted {
		session.State = SessionStateCompleted
	} else {
		session.State = SessionStateFailed
	}

	if err = s.store.Update(ctx, session); err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	if err = s.sendEvent(ctx, session, spi.NotificationReceived, &EventPayload{
		NotificationID:    req.NotificationID,
		NotificationEvent: req.Event,
		Error:             req.EventDescription,
	}); err != nil {
		logger.Warnc(ctx, "send notification received event",
			logfields.WithSessionID(string(session.ID)))
	}

	s.metrics.NotificationRecorded(tenant.ID, req.Event)

	logger.Infoc(ctx, "wallet notification recorded",
		logfields.WithTenantID(tenant.ID),
		logfields.WithSessionID(string(session.ID)),
		logfields.WithNotificationID(req.NotificationID))

	return nil
}

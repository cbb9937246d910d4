/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bus

import (
	"context"
	"sync"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/event/spi"
)

var logger = log.New("event-bus")

// Subscriber consumes events published to a topic.
type Subscriber interface {
	Handle(ctx context.Context, event *spi.Event) error
}

// Bus is an in-process event publisher. Delivery is asynchronous and
// best-effort: a failing subscriber is logged, never retried.
type Bus struct {
	mutex       sync.RWMutex
	subscribers map[string][]Subscriber
}

// New creates a Bus.
func New() *Bus {
	return &Bus{
		subscribers: make(map[string][]Subscriber),
	}
}

// Subscribe registers a subscriber for the given topic.
func (b *Bus) Subscribe(topic string, subscriber Subscriber) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.subscribers[topic] = append(b.subscribers[topic], subscriber)
}

// Publish delivers events to all subscribers of the topic. Each delivery runs
// in its own goroutine, detached from the request that produced the event.
func (b *Bus) Publish(ctx context.Context, topic string, events ...*spi.Event) error {
	b.mutex.RLock()
	subscribers := b.subscribers[topic]
	b.mutex.RUnlock()

	for _, event := range events {
		for _, subscriber := range subscribers {
			go func(s Subscriber, e *spi.Event) {
				if err := s.Handle(context.WithoutCancel(ctx), e); err != nil {
					logger.Warnc(ctx, "deliver event", log.WithError(err))
				}
			}(subscriber, event.Copy())
		}
	}

	return nil
}

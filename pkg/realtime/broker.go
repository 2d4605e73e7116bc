package realtime

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Broker is an in-process change feed. Repositories publish row changes,
// dashboard stores subscribe per table and receive only the event types they
// asked for. One topic per table.
type Broker struct {
	pubSub *gochannel.GoChannel
}

func NewBroker() *Broker {
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	return &Broker{pubSub: pubSub}
}

func topicFor(table string) string {
	return "changes." + table
}

// Publish fans the event out to every live subscription on its table.
func (b *Broker) Publish(event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return b.pubSub.Publish(topicFor(event.Table), msg)
}

// Subscription is one listener on a table. Events arrive on C; the channel
// closes after Unsubscribe (or broker Close) once buffered events drain.
type Subscription struct {
	C      <-chan Event
	cancel context.CancelFunc
}

// Unsubscribe tears the listener down. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.cancel()
}

// Subscribe starts listening for changes on table. With no types given every
// event type is delivered; otherwise only the listed ones. Events published
// before Subscribe returns are not replayed.
func (b *Broker) Subscribe(ctx context.Context, table string, types ...EventType) (*Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)

	messages, err := b.pubSub.Subscribe(ctx, topicFor(table))
	if err != nil {
		cancel()
		return nil, err
	}

	wanted := make(map[EventType]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	out := make(chan Event, 16)
	go func() {
		defer close(out)
		for msg := range messages {
			var event Event
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				log.Printf("[ERROR] Failed to unmarshal change event: %v", err)
				msg.Ack()
				continue
			}
			msg.Ack()

			if len(wanted) > 0 && !wanted[event.Type] {
				continue
			}

			select {
			case out <- event:
			case <-ctx.Done():
			}
		}
	}()

	return &Subscription{C: out, cancel: cancel}, nil
}

// Close shuts the broker down and ends every subscription.
func (b *Broker) Close() error {
	return b.pubSub.Close()
}

package service

import (
	"context"
	"fmt"

	"regboard-be/internal/pkg/logger"
	internalWS "regboard-be/internal/websocket"
	"regboard-be/pkg/events"
	pktNats "regboard-be/pkg/nats"
)

// ActivityService forwards audit events from the NATS stream to connected
// dashboard clients, so ingests and searches show up as live activity.
type ActivityService struct {
	subscriber *pktNats.Subscriber
	hub        *internalWS.Hub
	logger     logger.ILogger
}

func NewActivityService(sub *pktNats.Subscriber, hub *internalWS.Hub, log logger.ILogger) *ActivityService {
	return &ActivityService{
		subscriber: sub,
		hub:        hub,
		logger:     log,
	}
}

// Start begins listening to the audit stream with a durable consumer.
func (s *ActivityService) Start() {
	err := s.subscriber.Subscribe(pktNats.AllEvents, "regboard-activity", s.handleEvent)
	if err != nil {
		s.logger.Error("ActivityService", "Failed to start activity subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("ActivityService", fmt.Sprintf("Activity service started, listening to %s", pktNats.AllEvents), nil)
}

func (s *ActivityService) handleEvent(ctx context.Context, event events.Event) error {
	s.hub.Broadcast(map[string]interface{}{
		"type":        "activity",
		"event":       event.EventType(),
		"data":        event.Payload(),
		"occurred_at": event.Timestamp(),
	})
	return nil
}

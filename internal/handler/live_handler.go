package handler

import (
	"context"

	"regboard-be/internal/pkg/logger"
	internalWS "regboard-be/internal/websocket"
	"regboard-be/pkg/realtime"
	"regboard-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// LiveHandler exposes the dashboard live feed: the websocket endpoint plus
// the bridge that forwards corpus change events onto the hub.
type LiveHandler struct {
	hub    *internalWS.Hub
	broker *realtime.Broker
	logger logger.ILogger
}

func NewLiveHandler(hub *internalWS.Hub, broker *realtime.Broker, log logger.ILogger) *LiveHandler {
	return &LiveHandler{
		hub:    hub,
		broker: broker,
		logger: log,
	}
}

// ServeWs handles websocket requests from the peer. The session id is for log
// correlation only; frames go to every connected client.
func (h *LiveHandler) ServeWs(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("LiveHandler", "Starting live session", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, conn, sessionID)
			h.logger.Info("LiveHandler", "Live session ended", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// Start bridges the change broker onto the hub, one subscription per tracked
// table.
func (h *LiveHandler) Start(ctx context.Context) error {
	for _, table := range []string{store.TableDocuments, store.TableRegulations} {
		sub, err := h.broker.Subscribe(ctx, table)
		if err != nil {
			return err
		}
		go h.forward(sub)
	}
	return nil
}

func (h *LiveHandler) forward(sub *realtime.Subscription) {
	for evt := range sub.C {
		record := evt.New
		if evt.Type == realtime.EventDelete {
			record = evt.Old
		}
		h.hub.Broadcast(map[string]interface{}{
			"type":   "change",
			"table":  evt.Table,
			"event":  evt.Type,
			"record": record,
		})
	}
}

// RegisterRoutes registers the live feed route.
func (h *LiveHandler) RegisterRoutes(router fiber.Router) {
	dashboard := router.Group("/dashboard/v1")
	dashboard.Get("/live", h.ServeWs)
}

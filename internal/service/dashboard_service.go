package service

import (
	"context"
	"sync"

	"regboard-be/internal/dto"
	"regboard-be/internal/pkg/logger"
	"regboard-be/internal/repository/memory"
	"regboard-be/pkg/genui/render"
	"regboard-be/pkg/realtime"
	"regboard-be/pkg/store"

	"github.com/google/uuid"
)

type IDashboardService interface {
	State(ctx context.Context, sessionID string) (*dto.DashboardStateResponse, error)
	Search(ctx context.Context, sessionID string, req *dto.DashboardSearchRequest) (*dto.DashboardStateResponse, error)
	Reset(ctx context.Context, sessionID string) (*dto.DashboardStateResponse, error)
	View(ctx context.Context, sessionID string) (*dto.DashboardViewResponse, error)
	Session(ctx context.Context, sessionID string) (string, *store.Store, error)
}

type dashboardService struct {
	sessions *memory.SessionRepository
	fetcher  store.Fetcher
	searcher store.Searcher
	broker   *realtime.Broker
	logger   logger.ILogger

	// Guards get-or-create so concurrent requests with the same session id
	// cannot race two stores into existence and leak a subscription.
	mu sync.Mutex
}

func NewDashboardService(
	sessions *memory.SessionRepository,
	fetcher store.Fetcher,
	searcher store.Searcher,
	broker *realtime.Broker,
	log logger.ILogger,
) IDashboardService {
	return &dashboardService{
		sessions: sessions,
		fetcher:  fetcher,
		searcher: searcher,
		broker:   broker,
		logger:   log,
	}
}

// Session resolves a session id to its live store, creating and warming a new
// one when the id is unknown or empty. Every hit refreshes the idle expiry.
func (c *dashboardService) Session(ctx context.Context, sessionID string) (string, *store.Store, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if sessionID != "" {
		if s, ok := c.sessions.Get(sessionID); ok {
			c.sessions.Save(sessionID, s)
			return sessionID, s, nil
		}
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	s := store.New(c.fetcher, c.searcher, c.broker)
	// The store outlives this request; its subscription must too. Teardown
	// happens when the session registry evicts the store.
	if _, err := s.Subscribe(context.Background()); err != nil {
		return "", nil, err
	}
	s.FetchDocuments(ctx)
	s.FetchRegulations(ctx)

	c.sessions.Save(sessionID, s)
	c.logger.Info("DashboardService", "Session created", map[string]interface{}{"session_id": sessionID})
	return sessionID, s, nil
}

func (c *dashboardService) State(ctx context.Context, sessionID string) (*dto.DashboardStateResponse, error) {
	id, s, err := c.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStateResponse{SessionId: id, State: s.State()}, nil
}

func (c *dashboardService) Search(ctx context.Context, sessionID string, req *dto.DashboardSearchRequest) (*dto.DashboardStateResponse, error) {
	id, s, err := c.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.SearchDocuments(ctx, req.Query, req.Limit)
	return &dto.DashboardStateResponse{SessionId: id, State: s.State()}, nil
}

func (c *dashboardService) Reset(ctx context.Context, sessionID string) (*dto.DashboardStateResponse, error) {
	id, s, err := c.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.Reset()
	return &dto.DashboardStateResponse{SessionId: id, State: s.State()}, nil
}

// View renders the session's dashboard to HTML. The renderer gets no action
// callback: bindings come out as data attributes and a client activates them
// through the action endpoint.
func (c *dashboardService) View(ctx context.Context, sessionID string) (*dto.DashboardViewResponse, error) {
	id, s, err := c.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view, err := buildDashboardView(id, s.State())
	if err != nil {
		return nil, err
	}

	renderer := render.New(nil)
	return &dto.DashboardViewResponse{SessionId: id, Html: renderer.Render(view)}, nil
}

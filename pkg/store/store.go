package store

import (
	"context"
	"log"
	"sync"

	"regboard-be/pkg/realtime"
)

// Fetcher reads recent corpus rows for the dashboard lists, newest first.
type Fetcher interface {
	RecentDocuments(ctx context.Context, limit int) ([]Record, error)
	RecentRegulations(ctx context.Context, limit int) ([]Record, error)
}

// Searcher ranks corpus rows against a query.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]Record, error)
}

// Store is one dashboard session's state. Every transition goes through one
// mutex, so fetch completions and realtime events may interleave arbitrarily:
// the realtime path is a structural merge by id, the fetch path a list
// replacement guarded by a per-action generation token.
type Store struct {
	fetcher  Fetcher
	searcher Searcher
	broker   *realtime.Broker

	mu            sync.Mutex
	documents     []Record
	regulations   []Record
	searchResults []Record
	errMsg        string
	lastQuery     string
	inflight      int

	// Generation tokens. A completion carrying a stale token lost to a newer
	// action (or to Reset) and must not overwrite its result.
	docGen    uint64
	regGen    uint64
	searchGen uint64

	docSub *realtime.Subscription
	regSub *realtime.Subscription
}

func New(fetcher Fetcher, searcher Searcher, broker *realtime.Broker) *Store {
	return &Store{
		fetcher:  fetcher,
		searcher: searcher,
		broker:   broker,
	}
}

// State returns a snapshot with freshly copied slices.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Documents:     cloneRecords(s.documents),
		Regulations:   cloneRecords(s.regulations),
		SearchResults: cloneRecords(s.searchResults),
		IsLoading:     s.inflight > 0,
		IsSubscribed:  s.docSub != nil,
		Error:         s.errMsg,
		LastQuery:     s.lastQuery,
	}
}

// FetchDocuments replaces the document list with the most recent rows. On
// failure the previous list stays and only the error field changes.
func (s *Store) FetchDocuments(ctx context.Context) {
	gen := s.begin(&s.docGen)
	records, err := s.fetcher.RecentDocuments(ctx, DefaultPageSize)
	s.complete(&s.docGen, gen, func() {
		s.documents = records
	}, err)
}

// FetchRegulations replaces the regulation list with the most recent rows.
func (s *Store) FetchRegulations(ctx context.Context) {
	gen := s.begin(&s.regGen)
	records, err := s.fetcher.RecentRegulations(ctx, DefaultPageSize)
	s.complete(&s.regGen, gen, func() {
		s.regulations = records
	}, err)
}

// SearchDocuments runs a semantic search and replaces the result list. A
// non-positive limit falls back to DefaultSearchLimit.
func (s *Store) SearchDocuments(ctx context.Context, query string, limit int) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	s.mu.Lock()
	s.inflight++
	s.errMsg = ""
	s.lastQuery = query
	s.searchGen++
	gen := s.searchGen
	s.mu.Unlock()

	records, err := s.searcher.Search(ctx, query, limit)
	s.complete(&s.searchGen, gen, func() {
		s.searchResults = records
	}, err)
}

// begin marks an action as started: loading on, error cleared, token bumped.
func (s *Store) begin(gen *uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight++
	s.errMsg = ""
	*gen++
	return *gen
}

// complete applies an action result unless a newer action superseded it.
// Loading accounting happens either way so overlapping actions compose.
func (s *Store) complete(gen *uint64, started uint64, apply func(), err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight > 0 {
		s.inflight--
	}
	if *gen != started {
		return
	}
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	apply()
}

// Subscribe opens one change subscription per tracked table and starts
// applying events. It is idempotent: while subscribed, another call changes
// nothing and returns a do-nothing teardown. The real teardown closes both
// subscriptions, clears the handles, and is safe to call repeatedly.
func (s *Store) Subscribe(ctx context.Context) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.docSub != nil {
		return func() {}, nil
	}

	docSub, err := s.broker.Subscribe(ctx, TableDocuments,
		realtime.EventInsert, realtime.EventUpdate, realtime.EventDelete)
	if err != nil {
		return nil, err
	}
	regSub, err := s.broker.Subscribe(ctx, TableRegulations,
		realtime.EventInsert, realtime.EventUpdate, realtime.EventDelete)
	if err != nil {
		docSub.Unsubscribe()
		return nil, err
	}

	s.docSub = docSub
	s.regSub = regSub
	go s.consume(docSub)
	go s.consume(regSub)

	return s.teardown, nil
}

// Close releases the store's subscriptions. The session registry calls this
// when a session expires.
func (s *Store) Close() {
	s.teardown()
}

func (s *Store) teardown() {
	s.mu.Lock()
	docSub, regSub := s.docSub, s.regSub
	s.docSub, s.regSub = nil, nil
	s.mu.Unlock()

	if docSub != nil {
		docSub.Unsubscribe()
	}
	if regSub != nil {
		regSub.Unsubscribe()
	}
}

func (s *Store) consume(sub *realtime.Subscription) {
	for evt := range sub.C {
		s.Apply(evt)
	}
}

// Apply reconciles one change event into the session state: INSERT prepends
// (unless the id is already present), UPDATE replaces the matching entry and
// never inserts, DELETE removes it. Other event types change nothing.
func (s *Store) Apply(evt realtime.Event) {
	var row Record
	switch evt.Type {
	case realtime.EventInsert, realtime.EventUpdate:
		if err := evt.DecodeNew(&row); err != nil {
			log.Printf("[ERROR] Failed to decode %s change on %s: %v", evt.Type, evt.Table, err)
			return
		}
	case realtime.EventDelete:
		if err := evt.DecodeOld(&row); err != nil {
			log.Printf("[ERROR] Failed to decode delete on %s: %v", evt.Table, err)
			return
		}
	default:
		return
	}
	row.DocType = docTypeFor(evt.Table)

	s.mu.Lock()
	defer s.mu.Unlock()

	var list *[]Record
	switch evt.Table {
	case TableDocuments:
		list = &s.documents
	case TableRegulations:
		list = &s.regulations
	default:
		return
	}

	switch evt.Type {
	case realtime.EventInsert:
		if indexById(*list, row.Id) < 0 {
			*list = append([]Record{row}, *list...)
		}
	case realtime.EventUpdate:
		if i := indexById(*list, row.Id); i >= 0 {
			(*list)[i] = row
		}
		// Search results absorb the edit too, keeping their score.
		if i := indexById(s.searchResults, row.Id); i >= 0 {
			row.Similarity = s.searchResults[i].Similarity
			s.searchResults[i] = row
		}
	case realtime.EventDelete:
		*list = removeById(*list, row.Id)
		s.searchResults = removeById(s.searchResults, row.Id)
	}
}

// Reset restores lists and scalars to their initial values and invalidates
// in-flight actions. The subscription, if any, stays live and keeps
// delivering into the emptied lists.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.documents = nil
	s.regulations = nil
	s.searchResults = nil
	s.errMsg = ""
	s.lastQuery = ""
	s.inflight = 0
	s.docGen++
	s.regGen++
	s.searchGen++
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"regboard-be/internal/dto"
	"regboard-be/internal/repository/memory"
	"regboard-be/pkg/realtime"
	"regboard-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// fakeCorpus backs dashboard stores with canned rows, standing in for both
// the fetcher and the searcher.
type fakeCorpus struct {
	documents   []store.Record
	regulations []store.Record
	results     []store.Record
	err         error

	queries []string
}

func (f *fakeCorpus) RecentDocuments(_ context.Context, _ int) ([]store.Record, error) {
	return f.documents, f.err
}

func (f *fakeCorpus) RecentRegulations(_ context.Context, _ int) ([]store.Record, error) {
	return f.regulations, f.err
}

func (f *fakeCorpus) Search(_ context.Context, query string, _ int) ([]store.Record, error) {
	f.queries = append(f.queries, query)
	return f.results, f.err
}

func corpusRecord(docType, source, content string) store.Record {
	return store.Record{
		Id:        uuid.New(),
		DocType:   docType,
		Content:   content,
		Source:    source,
		CreatedAt: time.Now(),
	}
}

func newDashboardForTest(corpus *fakeCorpus) IDashboardService {
	sessions := memory.NewSessionRepository(time.Minute)
	return NewDashboardService(sessions, corpus, corpus, realtime.NewBroker(), nopLogger{})
}

func TestDashboardSessionWarmsAndReuses(t *testing.T) {
	corpus := &fakeCorpus{
		documents:   []store.Record{corpusRecord(store.DocTypeDocument, "gdpr.txt", "lawful basis for processing")},
		regulations: []store.Record{corpusRecord(store.DocTypeRegulation, "GDPR", "principles relating to processing")},
	}
	svc := newDashboardForTest(corpus)

	id, first, err := svc.Session(context.Background(), "")
	require.NoError(t, err)
	require.NotEmpty(t, id)
	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr, "generated session ids are uuids")

	state := first.State()
	assert.Len(t, state.Documents, 1)
	assert.Len(t, state.Regulations, 1)
	assert.True(t, state.IsSubscribed)
	assert.False(t, state.IsLoading)

	again, second, err := svc.Session(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, again)
	assert.Same(t, first, second, "a known id must resolve to the same store")
}

func TestDashboardSessionKeepsClientChosenId(t *testing.T) {
	svc := newDashboardForTest(&fakeCorpus{})

	id, s, err := svc.Session(context.Background(), "client-chosen")
	require.NoError(t, err)
	assert.Equal(t, "client-chosen", id)
	require.NotNil(t, s)
}

func TestDashboardSearchTracksQuery(t *testing.T) {
	score := 0.91
	hit := corpusRecord(store.DocTypeDocument, "gdpr.txt", "notification of a personal data breach")
	hit.Similarity = &score
	corpus := &fakeCorpus{results: []store.Record{hit}}
	svc := newDashboardForTest(corpus)

	res, err := svc.Search(context.Background(), "", &dto.DashboardSearchRequest{Query: "data breach", Limit: 3})
	require.NoError(t, err)

	assert.Equal(t, "data breach", res.State.LastQuery)
	require.Len(t, res.State.SearchResults, 1)
	assert.Equal(t, hit.Id, res.State.SearchResults[0].Id)
	assert.Equal(t, []string{"data breach"}, corpus.queries)
}

func TestDashboardResetClearsStateButStaysSubscribed(t *testing.T) {
	corpus := &fakeCorpus{
		documents: []store.Record{corpusRecord(store.DocTypeDocument, "gdpr.txt", "chunk")},
		results:   []store.Record{corpusRecord(store.DocTypeDocument, "gdpr.txt", "hit")},
	}
	svc := newDashboardForTest(corpus)

	seeded, err := svc.Search(context.Background(), "", &dto.DashboardSearchRequest{Query: "breach"})
	require.NoError(t, err)
	require.NotEmpty(t, seeded.State.SearchResults)

	res, err := svc.Reset(context.Background(), seeded.SessionId)
	require.NoError(t, err)

	assert.Equal(t, seeded.SessionId, res.SessionId)
	assert.Empty(t, res.State.Documents)
	assert.Empty(t, res.State.SearchResults)
	assert.Empty(t, res.State.LastQuery)
	assert.True(t, res.State.IsSubscribed)
}

func TestDashboardStateSurfacesFetchErrors(t *testing.T) {
	corpus := &fakeCorpus{err: errors.New("corpus offline")}
	svc := newDashboardForTest(corpus)

	// A failed warm-up is dashboard state, not a request error.
	res, err := svc.State(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "corpus offline", res.State.Error)
	assert.Empty(t, res.State.Documents)
	assert.Empty(t, res.State.Regulations)
}

func TestDashboardViewRendersHtml(t *testing.T) {
	corpus := &fakeCorpus{
		documents: []store.Record{corpusRecord(store.DocTypeDocument, "gdpr.txt", "records of processing activities")},
	}
	svc := newDashboardForTest(corpus)

	res, err := svc.View(context.Background(), "")
	require.NoError(t, err)

	assert.NotEmpty(t, res.SessionId)
	assert.Contains(t, res.Html, "Regulation corpus")
	assert.Contains(t, res.Html, "Semantic search")
	assert.Contains(t, res.Html, "records of processing activities")
	assert.Contains(t, res.Html, `data-on-submit="search_documents"`)
	assert.Contains(t, res.Html, `data-on-click="refresh_documents"`)
}

// Package store holds the per-session dashboard state: recent corpus rows,
// search results, and the realtime subscription that keeps them current.
package store

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultPageSize bounds every dashboard list query.
	DefaultPageSize = 50
	// DefaultSearchLimit is the match count used when a search gives none.
	DefaultSearchLimit = 10
)

// Tracked tables. Table names double as broker topics.
const (
	TableDocuments   = "documents"
	TableRegulations = "regulations"
)

const (
	DocTypeDocument   = "document"
	DocTypeRegulation = "regulation"
)

// Record is the dashboard projection of one corpus row, either a document or
// a regulation chunk. Similarity is set on search results only.
type Record struct {
	Id         uuid.UUID      `json:"id"`
	DocType    string         `json:"doc_type"`
	Content    string         `json:"content"`
	Source     string         `json:"source"`
	ChunkIndex int            `json:"chunk_idx"`
	ArticleNo  string         `json:"article_no,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Similarity *float64       `json:"similarity,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  *time.Time     `json:"updated_at,omitempty"`
}

// State is a point-in-time snapshot of a session store. Slices are fresh
// copies; callers can hold or mutate them freely.
type State struct {
	Documents     []Record `json:"documents"`
	Regulations   []Record `json:"regulations"`
	SearchResults []Record `json:"search_results"`
	IsLoading     bool     `json:"is_loading"`
	IsSubscribed  bool     `json:"is_subscribed"`
	Error         string   `json:"error,omitempty"`
	LastQuery     string   `json:"last_query,omitempty"`
}

func docTypeFor(table string) string {
	if table == TableRegulations {
		return DocTypeRegulation
	}
	return DocTypeDocument
}

func cloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

func indexById(records []Record, id uuid.UUID) int {
	for i := range records {
		if records[i].Id == id {
			return i
		}
	}
	return -1
}

func removeById(records []Record, id uuid.UUID) []Record {
	i := indexById(records, id)
	if i < 0 {
		return records
	}
	return append(records[:i], records[i+1:]...)
}

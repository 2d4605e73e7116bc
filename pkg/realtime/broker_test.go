package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type documentRow struct {
	Id      string `json:"id"`
	Content string `json:"content"`
}

func waitForEvent(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case evt, ok := <-sub.C:
		require.True(t, ok, "subscription closed before event arrived")
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestBrokerDeliversToTableSubscribers(t *testing.T) {
	broker := NewBroker()
	defer broker.Close()

	sub, err := broker.Subscribe(context.Background(), "documents")
	require.NoError(t, err)
	defer sub.Unsubscribe()

	evt, err := NewEvent("documents", EventInsert, documentRow{Id: "d1", Content: "Article 5"}, nil)
	require.NoError(t, err)
	require.NoError(t, broker.Publish(evt))

	got := waitForEvent(t, sub)
	assert.Equal(t, "documents", got.Table)
	assert.Equal(t, EventInsert, got.Type)

	var row documentRow
	require.NoError(t, got.DecodeNew(&row))
	assert.Equal(t, "d1", row.Id)
	assert.Equal(t, "Article 5", row.Content)
}

func TestBrokerFiltersByEventType(t *testing.T) {
	broker := NewBroker()
	defer broker.Close()

	sub, err := broker.Subscribe(context.Background(), "documents", EventUpdate, EventDelete)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	insert, err := NewEvent("documents", EventInsert, documentRow{Id: "d1"}, nil)
	require.NoError(t, err)
	update, err := NewEvent("documents", EventUpdate, documentRow{Id: "d1", Content: "amended"}, documentRow{Id: "d1"})
	require.NoError(t, err)

	require.NoError(t, broker.Publish(insert))
	require.NoError(t, broker.Publish(update))

	// Insert is filtered out, so the first delivery is the update.
	got := waitForEvent(t, sub)
	assert.Equal(t, EventUpdate, got.Type)
}

func TestBrokerIsolatesTables(t *testing.T) {
	broker := NewBroker()
	defer broker.Close()

	docs, err := broker.Subscribe(context.Background(), "documents")
	require.NoError(t, err)
	defer docs.Unsubscribe()

	regs, err := broker.Subscribe(context.Background(), "regulations")
	require.NoError(t, err)
	defer regs.Unsubscribe()

	evt, err := NewEvent("regulations", EventDelete, nil, documentRow{Id: "r9"})
	require.NoError(t, err)
	require.NoError(t, broker.Publish(evt))

	got := waitForEvent(t, regs)
	assert.Equal(t, "regulations", got.Table)

	select {
	case leaked := <-docs.C:
		t.Fatalf("documents subscription received event for table %q", leaked.Table)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBrokerFanOut(t *testing.T) {
	broker := NewBroker()
	defer broker.Close()

	first, err := broker.Subscribe(context.Background(), "documents")
	require.NoError(t, err)
	defer first.Unsubscribe()

	second, err := broker.Subscribe(context.Background(), "documents")
	require.NoError(t, err)
	defer second.Unsubscribe()

	evt, err := NewEvent("documents", EventInsert, documentRow{Id: "d2"}, nil)
	require.NoError(t, err)
	require.NoError(t, broker.Publish(evt))

	assert.Equal(t, EventInsert, waitForEvent(t, first).Type)
	assert.Equal(t, EventInsert, waitForEvent(t, second).Type)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	broker := NewBroker()
	defer broker.Close()

	sub, err := broker.Subscribe(context.Background(), "documents")
	require.NoError(t, err)

	sub.Unsubscribe()
	sub.Unsubscribe() // second call must not panic

	select {
	case _, ok := <-sub.C:
		assert.False(t, ok, "channel should be closed after unsubscribe")
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after unsubscribe")
	}
}

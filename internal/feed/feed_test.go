package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stash-indexer/config"
)

const sampleBody = `{
  "next_change_id": "2-3-4",
  "stashes": [{
    "id": "stash-1",
    "accountName": "exile",
    "stash": "~price 1 chaos",
    "stashType": "PremiumStash",
    "league": "Standard",
    "public": true,
    "items": [{
      "id": "item-1",
      "name": "Doom Loop",
      "typeLine": "Two-Stone Ring",
      "frameType": 2,
      "league": "Standard",
      "note": "~price 2 chaos",
      "identified": true,
      "corrupted": false,
      "ilvl": 75,
      "implicitMods": ["+12% to Fire and Cold Resistances"],
      "explicitMods": ["+30 to maximum Life"],
      "sockets": [{"group": 0, "attr": "S"}],
      "properties": [{"name": "Quality", "values": [["+20%", 1]], "displayMode": 0}],
      "requirements": [{"name": "Level", "values": [["36", 0]], "displayMode": 0}]
    }]
  }]
}`

func testFeedConfig(url string) *config.FeedConfig {
	return &config.FeedConfig{
		URL:            url,
		CursorParam:    "id",
		UserAgent:      "stash-indexer-test",
		RequestTimeout: time.Second,
	}
}

func TestHTTPClient_Fetch(t *testing.T) {
	var gotQuery, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotUA = r.UserAgent()
		w.Write([]byte(sampleBody))
	}))
	defer server.Close()

	client := NewHTTPClient(testFeedConfig(server.URL), zap.NewNop())

	batch, err := client.Fetch(context.Background(), "1-2-3")
	require.NoError(t, err)
	assert.Equal(t, "id=1-2-3", gotQuery)
	assert.Equal(t, "stash-indexer-test", gotUA)
	assert.Equal(t, "2-3-4", batch.NextCursor)
	require.Len(t, batch.Stashes, 1)

	stash := batch.Stashes[0]
	assert.Equal(t, "stash-1", stash.ID)
	assert.Equal(t, "exile", stash.Account())
	require.Len(t, stash.Items, 1)

	item := stash.Items[0]
	assert.Equal(t, FrameRare, item.FrameType)
	assert.Equal(t, "~price 2 chaos", *item.Note)
	assert.Equal(t, []string{"+30 to maximum Life"}, item.ExplicitMods)
	quality, ok := item.Property("Quality")
	require.True(t, ok)
	assert.Equal(t, "+20%", quality.Values[0].Text)
	assert.Equal(t, 1, quality.Values[0].Kind)
	assert.Equal(t, "36", item.Requirements[0].Values[0].Text)
	assert.Contains(t, item.Raw(), `"+20%",1`)
}

func TestHTTPClient_EmptyCursorOmitsParam(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"next_cursor": "5", "stashes": []}`))
	}))
	defer server.Close()

	batch, err := NewHTTPClient(testFeedConfig(server.URL), zap.NewNop()).Fetch(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
	assert.Equal(t, "5", batch.NextCursor)
	assert.Empty(t, batch.Stashes)
}

func TestHTTPClient_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "Missing cursor", status: http.StatusOK, body: `{"stashes": []}`, wantErr: ErrMissingCursor},
		{name: "Malformed body", status: http.StatusOK, body: `{"next_change_id": `},
		{name: "Server error", status: http.StatusServiceUnavailable, body: `{}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			_, err := NewHTTPClient(testFeedConfig(server.URL), zap.NewNop()).Fetch(context.Background(), "0")
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestPoller_RetriesUntilValid(t *testing.T) {
	var (
		mu     sync.Mutex
		starts []time.Time
		ids    []string
	)
	responses := []string{
		`{"next_change_id": `,     // malformed
		`{"stashes": []}`,         // no cursor
		`{"next_change_id": "9"}`, // valid
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		n := len(starts)
		starts = append(starts, time.Now())
		ids = append(ids, r.URL.Query().Get("id"))
		mu.Unlock()
		w.Write([]byte(responses[n]))
	}))
	defer server.Close()

	interval := 50 * time.Millisecond
	poller := NewPoller(NewHTTPClient(testFeedConfig(server.URL), zap.NewNop()), interval, zap.NewNop())

	batch, err := poller.FetchNext(context.Background(), "8")
	require.NoError(t, err)
	assert.Equal(t, "9", batch.NextCursor)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, starts, 3)
	assert.Equal(t, []string{"8", "8", "8"}, ids)
	for i := 1; i < len(starts); i++ {
		assert.GreaterOrEqual(t, starts[i].Sub(starts[i-1]), interval-5*time.Millisecond)
	}
}

type failingClient struct {
	calls int
}

func (f *failingClient) Fetch(ctx context.Context, cursor string) (*Batch, error) {
	f.calls++
	return nil, errors.New("connection refused")
}

func TestPoller_OnlyReturnsContextError(t *testing.T) {
	client := &failingClient{}
	poller := NewPoller(client, 10*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	batch, err := poller.FetchNext(ctx, "0")
	assert.Nil(t, batch)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, client.calls, 1)
}

func TestPoller_SpacingAppliesAcrossCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"next_change_id": "1"}`))
	}))
	defer server.Close()

	interval := 40 * time.Millisecond
	poller := NewPoller(NewHTTPClient(testFeedConfig(server.URL), zap.NewNop()), interval, zap.NewNop())

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := poller.FetchNext(context.Background(), "0")
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 2*interval-5*time.Millisecond)
}

package integration

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-assistant/travel-assistant-service/internal/catalog"
	"github.com/travel-assistant/travel-assistant-service/test/testutil"
)

// TestConcurrentSearches verifies the search pipeline is safe under parallel
// requests: every goroutine must see a complete, consistent result set.
func TestConcurrentSearches(t *testing.T) {
	ts := NewTestServer(t)

	const goroutines = 20
	var wg sync.WaitGroup
	results := make([]int, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			resp := ts.SearchRequest(map[string]interface{}{})
			if resp.Code != http.StatusOK {
				return
			}
			parsed, err := resp.ParseSearchResponse()
			if err != nil {
				return
			}
			results[idx] = parsed.TotalResults
		}(i)
	}
	wg.Wait()

	for i, total := range results {
		assert.Equal(t, 7, total, "goroutine %d saw a partial result set", i)
	}
}

// TestConcurrentSearchAndReload verifies that reloading the catalog while
// searches are in flight never yields a torn snapshot.
func TestConcurrentSearchAndReload(t *testing.T) {
	cat, err := catalog.Load(testutil.TestDataPath(t, "flights.json"))
	require.NoError(t, err)

	ts := NewTestServerWithCatalog(cat)

	const searchers = 10
	const reloads = 5

	var wg sync.WaitGroup
	totals := make([]int, searchers)

	for i := 0; i < searchers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				resp := ts.SearchRequest(map[string]interface{}{})
				if resp.Code != http.StatusOK {
					return
				}
				parsed, err := resp.ParseSearchResponse()
				if err != nil {
					return
				}
				totals[idx] = parsed.TotalResults
			}
		}(i)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < reloads; i++ {
			assert.NoError(t, cat.Reload())
		}
	}()

	wg.Wait()

	for i, total := range totals {
		assert.Equal(t, 7, total, "searcher %d saw a torn snapshot", i)
	}
}

// TestConcurrentChat verifies the agent's history stays consistent when turns
// arrive in parallel.
func TestConcurrentChat(t *testing.T) {
	ts := NewTestServer(t)

	const goroutines = 10
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := ts.ChatRequest("any flights to Bangkok?")
			assert.Equal(t, http.StatusOK, resp.Code)
		}()
	}
	wg.Wait()

	// Every turn records a user/assistant pair.
	assert.Len(t, ts.Agent.History(), goroutines*2)
}

package controllers

import (
	"io"
	"mindcare/internal/providers"
	"mindcare/internal/storage"
	"mindcare/internal/structures"
	"mindcare/internal/testutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

func testConfig() *structures.Config {
	return &structures.Config{
		Auth: structures.AuthConfig{Secret: "0123456789abcdef0123456789abcdef", TokenTTL: time.Hour},
		Analytics: structures.AnalyticsConfig{
			LowMoodThreshold:           5,
			NegativeSentimentThreshold: -0.3,
			StatsWindowDays:            30,
			ChatHistoryLimit:           20,
		},
		Media: structures.MediaConfig{MaxSizeMB: 1},
	}
}

func newTestDB() *storage.Database {
	return storage.NewDatabaseWithClock(func() time.Time { return testNow })
}

// call invokes handler as user with an optional JSON body and path id.
func call(handler http.HandlerFunc, method, target, user, id string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if user != "" {
		req = req.WithContext(providers.WithUserID(req.Context(), user))
	}
	if id != "" {
		req.SetPathValue("id", id)
	}
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func detail(t *testing.T, rr *httptest.ResponseRecorder) any {
	t.Helper()
	return decode[map[string]any](t, rr)["detail"]
}

func newLogger() *testutil.MockLogger {
	return &testutil.MockLogger{}
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/wellbeing-api/internal/api/shared"
	"github.com/phrazzld/wellbeing-api/internal/domain"
)

// newJSONRequest builds a request with a JSON-encoded body.
func newJSONRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(encoded)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asUser attaches an authenticated user ID to the request context, the
// way the authentication middleware does for real requests.
func asUser(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

// withURLParam attaches a chi route parameter to the request context so
// handlers under test can read it without a full router.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// decodeBody decodes the recorded JSON response body into out.
func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(out))
}

// mustNewUser builds a valid stored user for tests.
func mustNewUser(t *testing.T, email, hashedPassword string) *domain.User {
	t.Helper()

	user, err := domain.NewUser(
		"Test User",
		email,
		time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		"password1234",
	)
	require.NoError(t, err)

	user.HashedPassword = hashedPassword
	user.Password = ""
	return user
}

// mustNewCheckIn builds a valid stored check-in for tests.
func mustNewCheckIn(t *testing.T, userID uuid.UUID, date time.Time, rating int) *domain.CheckIn {
	t.Helper()

	checkIn, err := domain.NewCheckIn(userID, date, rating, nil, nil, "")
	require.NoError(t, err)
	return checkIn
}

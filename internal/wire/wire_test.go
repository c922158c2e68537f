package wire

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"waitwise/internal/data/state"
	"waitwise/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	store := state.NewStore(state.Config{
		Rand: rand.New(rand.NewSource(11)),
		Now:  time.Now,
	}, zap.NewNop())

	config := &utils.Config{
		App:        utils.AppConfig{Name: "waitwise", Port: "0"},
		Simulation: utils.SimulationConfig{TickIntervalSeconds: 5},
	}
	return Wiring(store, config, zap.NewNop())
}

func doJSON(t *testing.T, app *App, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, app *App, email, password string) string {
	t.Helper()

	rec := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func firstCenterID(t *testing.T, app *App) string {
	t.Helper()

	rec := doJSON(t, app, http.MethodGet, "/api/centers", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data)
	return resp.Data[0].ID
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodPost, "/api/booking", "", map[string]string{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, app, http.MethodGet, "/api/notifications", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookingFlow(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "user@demo.com", "demo123")
	centerID := firstCenterID(t, app)

	rec := doJSON(t, app, http.MethodPost, "/api/booking", token, map[string]string{
		"center_id": centerID,
		"slot":      "2:30 PM",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "confirmed", created.Data.Status)

	rec = doJSON(t, app, http.MethodGet, "/api/user/bookings", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, app, http.MethodPut, "/api/bookings/"+created.Data.ID+"/cancel", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, app, http.MethodPost, "/api/bookings/"+created.Data.ID+"/rebook", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	app := newTestApp(t)

	userToken := login(t, app, "user@demo.com", "demo123")
	rec := doJSON(t, app, http.MethodPut, "/api/admin/center/status", userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := login(t, app, "admin@demo.com", "admin123")
	rec = doJSON(t, app, http.MethodPut, "/api/admin/center/status", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	queue := 7
	rec = doJSON(t, app, http.MethodPut, "/api/admin/center/queue", adminToken, map[string]int{
		"queue": queue,
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, app, http.MethodGet, "/api/admin/bookings", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationFlow(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "user@demo.com", "demo123")

	// The login welcome notification is waiting in the inbox
	rec := doJSON(t, app, http.MethodGet, "/api/notifications", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var inbox struct {
		Data struct {
			Notifications []struct {
				ID string `json:"id"`
			} `json:"notifications"`
			UnreadCount int `json:"unread_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inbox))
	require.NotEmpty(t, inbox.Data.Notifications)
	assert.Positive(t, inbox.Data.UnreadCount)

	rec = doJSON(t, app, http.MethodPut, "/api/notifications/"+inbox.Data.Notifications[0].ID+"/read", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, app, http.MethodPut, "/api/notifications/threshold", token, map[string]int{"minutes": 20})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, app, http.MethodPut, "/api/notifications/threshold", token, map[string]int{"minutes": 90})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	enabled := false
	rec = doJSON(t, app, http.MethodPut, "/api/notifications/preferences", token, map[string]any{
		"key":     "centerStatus",
		"enabled": enabled,
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, app, http.MethodDelete, "/api/notifications", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Logout revokes the token
	rec = doJSON(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, app, http.MethodGet, "/api/notifications", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

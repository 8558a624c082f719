package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub_backend/internals/databases/testdb"
	eventModel "eventhub_backend/internals/features/events/model"
	orgModel "eventhub_backend/internals/features/org/model"
	"eventhub_backend/internals/features/registrations/route"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testdb.Open(t)
	app := fiber.New()
	route.RegistrationRoutes(app.Group("/api"), db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp, envelope
}

func seed(t *testing.T, db *gorm.DB, capacity *int) (eventModel.EventModel, orgModel.UserModel, orgModel.UserModel) {
	t.Helper()
	ev := eventModel.EventModel{Title: "Workshop", Capacity: capacity}
	require.NoError(t, db.Create(&ev).Error)
	a := orgModel.UserModel{Name: "A"}
	require.NoError(t, db.Create(&a).Error)
	b := orgModel.UserModel{Name: "B"}
	require.NoError(t, db.Create(&b).Error)
	return ev, a, b
}

func TestRegisterEndpoint_CapacityAndDuplicate(t *testing.T) {
	app, db := newApp(t)
	capacity := 1
	ev, a, b := seed(t, db, &capacity)

	// A gets the only seat
	resp, env := doJSON(t, app, fiber.MethodPost, "/api/registrations", fiber.Map{
		"event_id": ev.EventID, "user_id": a.UserID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Registration confirmed", env["message"])

	// B is turned away with the capacity message
	resp, env = doJSON(t, app, fiber.MethodPost, "/api/registrations", fiber.Map{
		"event_id": ev.EventID, "user_id": b.UserID,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Event at capacity", env["message"])

	// A again is a duplicate, with a different message
	resp, env = doJSON(t, app, fiber.MethodPost, "/api/registrations", fiber.Map{
		"event_id": ev.EventID, "user_id": a.UserID,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "User already registered for this event", env["message"])
}

func TestRegisterEndpoint_UnknownEvent(t *testing.T) {
	app, db := newApp(t)
	_, a, _ := seed(t, db, nil)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/registrations", fiber.Map{
		"event_id": 9999, "user_id": a.UserID,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Event not found", env["message"])
}

func TestAttendanceEndpoint_Upsert(t *testing.T) {
	app, db := newApp(t)
	ev, a, _ := seed(t, db, nil)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/attendance", fiber.Map{
		"event_id": ev.EventID, "user_id": a.UserID, "present": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := env["data"].(map[string]any)
	assert.Equal(t, true, data["present"])

	// re-mark flips the same row instead of adding one
	resp, env = doJSON(t, app, fiber.MethodPost, "/api/attendance", fiber.Map{
		"event_id": ev.EventID, "user_id": a.UserID, "present": false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = env["data"].(map[string]any)
	assert.Equal(t, false, data["present"])

	resp, env = doJSON(t, app, fiber.MethodGet, "/api/attendance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, env["data"].([]any), 1)
}

func TestRegistrationDetails_FilterByUser(t *testing.T) {
	app, db := newApp(t)
	ev, a, b := seed(t, db, nil)

	for _, u := range []orgModel.UserModel{a, b} {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/api/registrations", fiber.Map{
			"event_id": ev.EventID, "user_id": u.UserID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, env := doJSON(t, app, fiber.MethodGet, "/api/registrations/details?user_id=1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rows := env["data"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, "A", row["user_name"])
	assert.Equal(t, "Workshop", row["event_title"])
}

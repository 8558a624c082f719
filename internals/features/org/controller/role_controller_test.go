package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub_backend/internals/databases/testdb"
	"eventhub_backend/internals/features/org/route"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testdb.Open(t)
	app := fiber.New()
	route.OrgRoutes(app.Group("/api"), db)
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

func TestRoleCRUD(t *testing.T) {
	app, _ := newApp(t)

	// create
	resp, env := doJSON(t, app, fiber.MethodPost, "/api/roles", fiber.Map{
		"role_name":   "student",
		"description": "regular attendee",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := env["data"].(map[string]any)
	assert.Equal(t, "student", data["role_name"])
	roleID := data["role_id"].(float64)

	// duplicate name is a conflict, not a second row
	resp, env = doJSON(t, app, fiber.MethodPost, "/api/roles", fiber.Map{
		"role_name": "student",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Role name already exists", env["message"])

	// list
	resp, env = doJSON(t, app, fiber.MethodGet, "/api/roles", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, env["data"].([]any), 1)

	// delete
	resp, _ = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/roles/%.0f", roleID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// delete again → gone
	resp, env = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/roles/%.0f", roleID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Role not found", env["message"])
}

func TestCreateRole_Validation(t *testing.T) {
	app, _ := newApp(t)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/roles", fiber.Map{
		"description": "missing name",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", env["error_code"])
}

func TestCreateUser_HashesAndHidesPassword(t *testing.T) {
	app, db := newApp(t)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/users", fiber.Map{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := env["data"].(map[string]any)
	_, exposed := data["password_hash"]
	assert.False(t, exposed, "password hash must not be serialized")

	var hash string
	require.NoError(t, db.Raw(`SELECT password_hash FROM users WHERE name = 'Alice'`).Scan(&hash).Error)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pass", hash)
}

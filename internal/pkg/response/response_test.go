package response

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h fiber.Handler) (int, map[string]interface{}) {
	app := fiber.New()
	app.Get("/", h)
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestSuccess_NilMetadataIsEmptyObject(t *testing.T) {
	code, body := get(t, func(c *fiber.Ctx) error {
		return Success(c, "ok", []string{"a"}, nil)
	})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, map[string]interface{}{}, body["metadata"])
	assert.Equal(t, []interface{}{"a"}, body["data"])
}

func TestSuccessCreated_WithCount(t *testing.T) {
	code, body := get(t, func(c *fiber.Ctx) error {
		return SuccessCreated(c, "created", nil, Count(3))
	})
	assert.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, map[string]interface{}{"total": 3.0}, body["metadata"])
	assert.Nil(t, body["data"])
}

func TestSearchMeta_Shape(t *testing.T) {
	_, body := get(t, func(c *fiber.Ctx) error {
		return Success(c, "ok", []string{}, SearchMeta{State: "empty", Page: 1, Limit: 20, Sources: []string{}})
	})
	meta := body["metadata"].(map[string]interface{})
	assert.Equal(t, "empty", meta["state"])
	assert.Equal(t, 0.0, meta["totalPages"])
	assert.Equal(t, []interface{}{}, meta["sources"])
	assert.NotContains(t, meta, "filters")
}

func TestError_Envelope(t *testing.T) {
	code, body := get(t, func(c *fiber.Ctx) error {
		return NotFound(c, "listing not found")
	})
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "error", body["status"])
	detail := body["error"].(map[string]interface{})
	assert.Equal(t, "listing not found", detail["message"])
	assert.Equal(t, 404.0, detail["statusCode"])
	assert.Equal(t, map[string]interface{}{}, detail["details"])

	code, body = get(t, func(c *fiber.Ctx) error {
		return Error(c, "Invalid listing", fiber.StatusBadRequest, fiber.Map{"title": "required"})
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, map[string]interface{}{"title": "required"}, body["error"].(map[string]interface{})["details"])
}

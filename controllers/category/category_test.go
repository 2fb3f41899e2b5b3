package categoryController

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"skillforge/config"
	"skillforge/database"
	categoryValidator "skillforge/validators/category"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCategoryApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()
	app.Get("/api/categories", GetCategories)
	app.Post("/api/categories", categoryValidator.CreateCategory(), CreateCategory)
	app.Delete("/api/categories/:id", categoryValidator.CategoryID(), DeleteCategory)
	return app
}

func postCategory(t *testing.T, app *fiber.App, name string) int {
	t.Helper()
	body, _ := json.Marshal(fiber.Map{"name": name})
	req := httptest.NewRequest("POST", "/api/categories", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCreateAndListCategories(t *testing.T) {
	app := setupCategoryApp(t)

	assert.Equal(t, fiber.StatusCreated, postCategory(t, app, "Programming"))
	assert.Equal(t, fiber.StatusCreated, postCategory(t, app, "Design"))

	req := httptest.NewRequest("GET", "/api/categories", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var categories []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))
	require.Len(t, categories, 2)

	// Sorted by name
	assert.Equal(t, "Design", categories[0]["name"])
	assert.Equal(t, "Programming", categories[1]["name"])
}

func TestCreateDuplicateCategory(t *testing.T) {
	app := setupCategoryApp(t)

	assert.Equal(t, fiber.StatusCreated, postCategory(t, app, "Programming"))
	assert.Equal(t, fiber.StatusBadRequest, postCategory(t, app, "Programming"))
}

func TestCreateCategoryBlankName(t *testing.T) {
	app := setupCategoryApp(t)

	assert.Equal(t, fiber.StatusBadRequest, postCategory(t, app, "   "))
}

func TestDeleteCategory(t *testing.T) {
	app := setupCategoryApp(t)

	require.Equal(t, fiber.StatusCreated, postCategory(t, app, "Programming"))

	req := httptest.NewRequest("DELETE", "/api/categories/1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("DELETE", "/api/categories/1", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

package content_test

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"lincloud/feature/content"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.txt"), []byte("linc content"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "guide.txt"), []byte("guide"), 0o644))
	return root
}

func TestLoader(t *testing.T) {
	feature := content.NewFeature(setupRoot(t), true, zap.NewNop())

	assert.Equal(t, "content", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))

	assert.False(t, content.NewFeature("", true, zap.NewNop()).IsEnabled())
}

func TestHandler_ServesFiles(t *testing.T) {
	app := fiber.New()
	require.NoError(t, content.NewFeature(setupRoot(t), true, zap.NewNop()).Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/readme.txt", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "linc content", string(body))

	resp, err = app.Test(httptest.NewRequest("GET", "/docs/guide.txt", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, "guide", string(body))
}

func TestHandler_Browse(t *testing.T) {
	root := setupRoot(t)

	t.Run("Enabled", func(t *testing.T) {
		app := fiber.New()
		require.NoError(t, content.NewFeature(root, true, zap.NewNop()).Load(app))

		resp, err := app.Test(httptest.NewRequest("GET", "/docs/", nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "guide.txt")
	})

	t.Run("Disabled", func(t *testing.T) {
		app := fiber.New()
		require.NoError(t, content.NewFeature(root, false, zap.NewNop()).Load(app))

		resp, err := app.Test(httptest.NewRequest("GET", "/docs/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestHandler_NotFound(t *testing.T) {
	app := fiber.New()
	require.NoError(t, content.NewFeature(setupRoot(t), true, zap.NewNop()).Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/missing.txt", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"not found","path":"/missing.txt"}`, string(body))
}

package snapshot

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"bet-board/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T, dbName string) (*fiber.App, *mocks.Client) {
	svc, client, _ := setupService(t, dbName)
	app := fiber.New()
	NewHandler(svc, snapGame.ID).RegisterRoutes(app)
	return app, client
}

func TestHandleExport(t *testing.T) {
	app, client := setupTestApp(t, "db_snap_h_export")

	client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	client.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/snapshots/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out["object"], "snapshots/day/")
}

func TestHandleExport_UnknownGame(t *testing.T) {
	app, _ := setupTestApp(t, "db_snap_h_unknown")

	resp, err := app.Test(httptest.NewRequest("POST", "/api/snapshots/?game=weekly", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleExport_StorageFailure(t *testing.T) {
	app, client := setupTestApp(t, "db_snap_h_fail")

	client.On("BucketExists", mock.Anything, "test-bucket").Return(false, fmt.Errorf("unreachable"))

	resp, err := app.Test(httptest.NewRequest("POST", "/api/snapshots/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandleList(t *testing.T) {
	app, client := setupTestApp(t, "db_snap_h_list")

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Key: "snapshots/day/2026-08-28T10:00:00Z.json", Size: 99}
	close(ch)
	client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/snapshots/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Snapshots []Info `json:"snapshots"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Snapshots, 1)
	assert.Equal(t, int64(99), out.Snapshots[0].Size)
}

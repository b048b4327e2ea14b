//go:build integration

package storage

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestMinioArchive_StoreAndLoad(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		Cmd:          []string{"server", "/data"},
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     "minioadmin",
			"MINIO_ROOT_PASSWORD": "minioadmin",
		},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	endpoint, err := c.Endpoint(ctx, "")
	require.NoError(t, err)

	archive, err := NewMinioArchive(ctx, MinioOptions{
		Endpoint:  endpoint,
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "reports",
	})
	require.NoError(t, err)

	key, err := archive.Store(ctx, "form-1", map[string]any{"summary": "ok"})
	require.NoError(t, err)
	assert.Contains(t, key, "analysis/form-1/")

	obj, err := archive.client.GetObject(ctx, "reports", key, minio.GetObjectOptions{})
	require.NoError(t, err)
	defer obj.Close()

	var got map[string]any
	require.NoError(t, json.NewDecoder(obj).Decode(&got))
	assert.Equal(t, "ok", got["summary"])
}

package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carecompanion.app/companion-service/pkg/common"
)

func skipUnlessIntegration(t *testing.T) {
	if os.Getenv(common.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func exerciseKV(t *testing.T, kv KV) {
	ctx := context.Background()
	key := "int_" + uuid.NewString()

	require.NoError(t, kv.SetItem(ctx, key, "v1"))
	value, found, err := kv.GetItem(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v1", value)

	require.NoError(t, kv.SetItem(ctx, key, "v2"))
	value, _, err = kv.GetItem(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "v2", value)

	require.NoError(t, kv.RemoveItem(ctx, key))
	_, found, err = kv.GetItem(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisKV(t *testing.T) {
	skipUnlessIntegration(t)
	common.SetTestLoggerNop()

	client, err := DialRedis(context.Background(), envOr(common.EnvKeyRedisAddr, "localhost:6379"), "", 0)
	require.NoError(t, err)
	defer client.Close()

	kv := NewRedisKV(client, "companion_test:")
	exerciseKV(t, kv)

	ctx := context.Background()
	key := "int_ttl_" + uuid.NewString()
	require.NoError(t, kv.SetItemWithTTL(ctx, key, "v1", 50*time.Millisecond))
	assert.Eventually(t, func() bool {
		_, found, err := kv.GetItem(ctx, key)
		return err == nil && !found
	}, 2*time.Second, 20*time.Millisecond)
}

func TestMongoKV(t *testing.T) {
	skipUnlessIntegration(t)
	common.SetTestLoggerNop()

	client, err := DialMongo(context.Background(), envOr(common.EnvKeyMongoURI, "mongodb://localhost:27017"))
	require.NoError(t, err)
	defer client.Disconnect(context.Background())

	exerciseKV(t, NewMongoKV(client.Database("companion_test")))
}

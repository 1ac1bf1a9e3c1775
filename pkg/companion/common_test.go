package companion

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"carecompanion.app/companion-service/pkg/companion/mocks"
	"carecompanion.app/companion-service/pkg/db"
	"carecompanion.app/companion-service/pkg/models"
	"carecompanion.app/companion-service/pkg/storage"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(hour, minute int) *testClock {
	return &testClock{now: time.Date(2024, time.March, 10, hour, minute, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func memoryKV() storage.KV {
	return storage.NewGormKV(db.GetInstance(db.UseMemorySqliteDialector()))
}

// isolatedKV namespaces every key so shared collections start empty for one test.
type isolatedKV struct {
	storage.KV
	prefix string
}

func newIsolatedKV() *isolatedKV {
	return &isolatedKV{KV: memoryKV(), prefix: uuid.NewString() + ":"}
}

func (k *isolatedKV) GetItem(ctx context.Context, key string) (string, bool, error) {
	return k.KV.GetItem(ctx, k.prefix+key)
}

func (k *isolatedKV) SetItem(ctx context.Context, key string, value string) error {
	return k.KV.SetItem(ctx, k.prefix+key, value)
}

func (k *isolatedKV) RemoveItem(ctx context.Context, key string) error {
	return k.KV.RemoveItem(ctx, k.prefix+key)
}

func GetMockCompanionWithMemorySqliteDialector(t *testing.T, clock *testClock) (
	*gomock.Controller,
	*Companion,
	*mocks.MockINotifier,
) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockINotifier(ctrl)
	if clock == nil {
		clock = newTestClock(12, 30)
	}
	return ctrl, New(memoryKV(), notifier, clock.Now), notifier
}

func registerUser(t *testing.T, c *Companion, name string, role models.Role) *models.User {
	t.Helper()
	user, err := c.Identity.Register(context.Background(), models.RegisterInput{
		Name:     name,
		Email:    uuid.NewString()[:8] + "@example.com",
		Password: "secret-pass",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

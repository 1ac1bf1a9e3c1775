package grpc

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"carecompanion.app/companion-service/pkg/auth"
	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/companion"
	"carecompanion.app/companion-service/pkg/db"
	"carecompanion.app/companion-service/pkg/models"
	"carecompanion.app/companion-service/pkg/notify"
	"carecompanion.app/companion-service/pkg/storage"
	_ "carecompanion.app/companion-service/pkg/testing"

	"carecompanion.app/companion-service/pkg/companion/mocks"
)

const bufSize = 1024 * 1024

type testEnv struct {
	client    *ReminderServiceClient
	server    *ReminderServer
	notifier  *mocks.MockINotifier
	companion *companion.Companion
}

func fixedNoon() time.Time {
	return time.Date(2024, time.March, 10, 12, 30, 0, 0, time.UTC)
}

func startTestServer(t *testing.T, limiter *companion.RateLimiterStore) *testEnv {
	listener := bufconn.Listen(bufSize)

	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockINotifier(ctrl)
	kv := storage.NewGormKV(db.GetInstance(db.UseMemorySqliteDialector()))
	core := companion.New(kv, notifier, fixedNoon)

	reminderServer := &ReminderServer{
		Companion:        core,
		Auth:             auth.NewIssuer("test-secret", time.Hour, kv),
		RateLimiterStore: limiter,
	}
	server := grpc.NewServer(reminderServer.ServerOptions()...)
	RegisterReminderServiceServer(server, reminderServer)

	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, s string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &testEnv{
		client:    NewReminderServiceClient(conn),
		server:    reminderServer,
		notifier:  notifier,
		companion: core,
	}
}

func (env *testEnv) signIn(t *testing.T, name string, role models.Role) (*models.User, context.Context) {
	t.Helper()
	user, err := env.companion.Identity.Register(context.Background(), models.RegisterInput{
		Name:     name,
		Email:    uuid.NewString()[:8] + "@example.com",
		Password: "secret-pass",
		Role:     role,
	})
	require.NoError(t, err)

	token, _, err := env.server.Auth.Issue(user)
	require.NoError(t, err)
	return user, metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func (env *testEnv) allowScheduling() {
	env.notifier.EXPECT().
		ScheduleReminder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(notify.Result{Success: true, ID: uuid.NewString()}).
		AnyTimes()
}

func (env *testEnv) addReminder(t *testing.T, owner *models.User, title, clock string, recurring bool) *models.Reminder {
	t.Helper()
	reminder, err := env.companion.Reminder.AddReminder(context.Background(), owner, models.Reminder{
		Type:      models.ReminderTypeCustom,
		Title:     title,
		Time:      clock,
		Recurring: recurring,
		ElderlyID: owner.ID,
	})
	require.NoError(t, err)
	return reminder
}

func reminderTitles(t *testing.T, resp *structpb.Struct) []string {
	t.Helper()
	reminders, err := DecodeReminders(resp)
	require.NoError(t, err)
	return common.Mapper(reminders, func(r models.Reminder) string { return r.Title })
}

func TestReminderViews(t *testing.T) {
	common.SetTestLoggerNop()
	env := startTestServer(t, nil)
	env.allowScheduling()

	elderly, ctx := env.signIn(t, "Margaret", models.RoleElderly)
	breakfast := env.addReminder(t, elderly, "Breakfast pills", "08:00", false)
	env.addReminder(t, elderly, "Evening walk", "17:45", true)

	resp, err := env.client.TodaysReminders(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Breakfast pills", "Evening walk"}, reminderTitles(t, resp))

	resp, err = env.client.MissedReminders(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Breakfast pills"}, reminderTitles(t, resp))

	resp, err = env.client.UpcomingReminders(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Evening walk"}, reminderTitles(t, resp))

	resp, err = env.client.RemindersForElderly(ctx, &structpb.Struct{Fields: map[string]*structpb.Value{
		"elderlyId": structpb.NewStringValue(elderly.ID),
	}})
	require.NoError(t, err)
	assert.Len(t, reminderTitles(t, resp), 2)

	env.notifier.EXPECT().
		Cancel(gomock.Any(), gomock.Eq(breakfast.NotificationID)).
		Return(notify.Result{Success: true}).
		Times(1)
	resp, err = env.client.MarkReminderComplete(ctx, &structpb.Struct{Fields: map[string]*structpb.Value{
		"id": structpb.NewStringValue(breakfast.ID),
	}})
	require.NoError(t, err)
	completed, err := DecodeReminder(resp)
	require.NoError(t, err)
	assert.True(t, completed.Completed)
	assert.Empty(t, completed.NotificationID)

	resp, err = env.client.MissedReminders(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Empty(t, reminderTitles(t, resp))
}

func TestReminderViews_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	{
		env := startTestServer(t, nil)
		_, ctx := env.signIn(t, "Margaret", models.RoleElderly)

		_, err := env.client.RemindersForElderly(ctx, &structpb.Struct{})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))

		_, err = env.client.MarkReminderComplete(ctx, &structpb.Struct{Fields: map[string]*structpb.Value{
			"id": structpb.NewStringValue("missing"),
		}})
		assert.Equal(t, codes.NotFound, status.Code(err))
	}

	{
		env := startTestServer(t, nil)
		_, ctx := env.signIn(t, "Margaret", models.RoleElderly)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockIReminder := mocks.NewMockIReminder(ctrl)
		env.companion.Reminder = mockIReminder
		mockIReminder.EXPECT().
			TodaysReminders(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("just causing error")).
			Times(1)

		_, err := env.client.TodaysReminders(ctx, &emptypb.Empty{})
		assert.Equal(t, codes.Internal, status.Code(err))
	}
}

func TestAuthInterceptor(t *testing.T) {
	common.SetTestLoggerNop()
	env := startTestServer(t, nil)

	_, err := env.client.TodaysReminders(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer garbage")
	_, err = env.client.TodaysReminders(ctx, &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, ctx = env.signIn(t, "Margaret", models.RoleElderly)
	_, err = env.client.TodaysReminders(ctx, &emptypb.Empty{})
	assert.NoError(t, err)
}

func TestRateLimitInterceptor(t *testing.T) {
	common.SetTestLoggerNop()
	env := startTestServer(t, companion.NewRateLimiterStore(0, 0)) // nothing passes by default

	_, ctx := env.signIn(t, "Margaret", models.RoleElderly)

	_, err := env.client.TodaysReminders(ctx, &emptypb.Empty{})
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	resp, err := env.client.SetLimiter(ctx, &structpb.Struct{Fields: map[string]*structpb.Value{
		"rate":  structpb.NewNumberValue(2),
		"burst": structpb.NewNumberValue(2),
	}})
	require.NoError(t, err)
	assert.True(t, resp.GetFields()["success"].GetBoolValue())

	for i := range 3 {
		_, err := env.client.MissedReminders(ctx, &emptypb.Empty{})
		if i < 2 {
			require.NoError(t, err, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, codes.ResourceExhausted, status.Code(err), "request %d should be rate limited", i+1)
		}
	}
}

func TestRateLimitInterceptorSharedStore(t *testing.T) {
	common.SetTestLoggerNop()
	store := companion.NewRateLimiterStore(0, 0)
	env := startTestServer(t, store)

	user, ctx := env.signIn(t, "Margaret", models.RoleElderly)

	// a limit set through the REST server lands in the same store
	store.SetLimiter(user.ID, rate.Every(time.Hour), 1)

	_, err := env.client.TodaysReminders(ctx, &emptypb.Empty{})
	require.NoError(t, err)

	// the token is spent for both transports
	assert.False(t, store.Allow(user.ID))
	_, err = env.client.TodaysReminders(ctx, &emptypb.Empty{})
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestSetLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	{
		env := startTestServer(t, companion.NewRateLimiterStore(2, 2))
		_, ctx := env.signIn(t, "Margaret", models.RoleElderly)

		resp, err := env.client.SetLimiter(ctx, &structpb.Struct{})
		require.NoError(t, err)
		assert.False(t, resp.GetFields()["success"].GetBoolValue())
	}

	{
		env := startTestServer(t, nil)
		_, ctx := env.signIn(t, "Margaret", models.RoleElderly)

		resp, err := env.client.SetLimiter(ctx, &structpb.Struct{Fields: map[string]*structpb.Value{
			"rate":  structpb.NewNumberValue(2),
			"burst": structpb.NewNumberValue(2),
		}})
		require.NoError(t, err)
		assert.False(t, resp.GetFields()["success"].GetBoolValue())
		assert.Equal(t, "RateLimiterStore is not used. No effect.", resp.GetFields()["message"].GetStringValue())
	}
}

package companion

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"

	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/models"
	"carecompanion.app/companion-service/pkg/notify"
	_ "carecompanion.app/companion-service/pkg/testing"
)

func pillReminder(elderlyID string) models.Reminder {
	return models.Reminder{
		Type:      models.ReminderTypeMedication,
		Title:     "Pills",
		Time:      "08:00",
		Recurring: true,
		Frequency: models.FrequencyDaily,
		ElderlyID: elderlyID,
	}
}

func TestAddReminderSchedulesNotification(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, notifier := GetMockCompanionWithMemorySqliteDialector(t, nil)
	defer ctrl.Finish()
	ctx := context.Background()

	elderly := registerUser(t, c, "Margaret", models.RoleElderly)

	notifier.EXPECT().
		ScheduleReminder(gomock.Any(), "Pills", defaultReminderBody, 8, 0, true, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _, _ int, _ bool, data map[string]string) notify.Result {
			assert.Equal(t, elderly.ID, data[notify.DataKeyElderlyID])
			assert.NotEmpty(t, data[notify.DataKeyReminderID])
			return notify.Result{Success: true, ID: "n1"}
		})

	reminder, err := c.Reminder.AddReminder(ctx, elderly, pillReminder(""))
	require.NoError(t, err)
	assert.NotEmpty(t, reminder.ID)
	assert.Equal(t, elderly.ID, reminder.ElderlyID)
	assert.Equal(t, "n1", reminder.NotificationID)

	// a fresh instance reads the persisted collection
	reloaded := New(c.KV, notifier, c.Clock)
	reminders, err := reloaded.Reminder.ListReminders(ctx, elderly)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, "n1", reminders[0].NotificationID)
}

func TestAddReminderUsesDescriptionAsBody(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, notifier := GetMockCompanionWithMemorySqliteDialector(t, nil)
	defer ctrl.Finish()

	elderly := registerUser(t, c, "Margaret", models.RoleElderly)
	input := pillReminder(elderly.ID)
	input.Description = "Two tablets with water"
	input.Recurring = false

	notifier.EXPECT().
		ScheduleReminder(gomock.Any(), "Pills", "Two tablets with water", 8, 0, false, gomock.Any()).
		Return(notify.Result{Success: true, ID: "n1"})

	_, err := c.Reminder.AddReminder(context.Background(), elderly, input)
	require.NoError(t, err)
}

func TestAddReminderScheduleFailureKeepsNoID(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, notifier := GetMockCompanionWithMemorySqliteDialector(t, nil)
	defer ctrl.Finish()

	elderly := registerUser(t, c, "Margaret", models.RoleElderly)

	notifier.EXPECT().
		ScheduleReminder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(notify.Result{Success: false, Err: notify.ErrPermissionDenied})

	reminder, err := c.Reminder.AddReminder(context.Background(), elderly, pillReminder(elderly.ID))
	require.NoError(t, err)
	assert.Empty(t, reminder.NotificationID)

	reminders, _ := c.Reminder.ListReminders(context.Background(), elderly)
	assert.Len(t, reminders, 1)
}

func TestAddReminderValidation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, _ := GetMockCompanionWithMemorySqliteDialector(t, nil)
	defer ctrl.Finish()
	ctx := context.Background()

	elderly := registerUser(t, c, "Margaret", models.RoleElderly)

	{
		input := pillReminder(elderly.ID)
		input.Time = "25:00"
		_, err := c.Reminder.AddReminder(ctx, elderly, input)
		assert.ErrorIs(t, err, ErrValidation)
	}

	{
		input := pillReminder(elderly.ID)
		input.Title = ""
		_, err := c.Reminder.AddReminder(ctx, elderly, input)
		assert.ErrorIs(t, err, ErrValidation)
	}

	{
		_, err := c.Reminder.AddReminder(ctx, nil, pillReminder(elderly.ID))
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	}

	reminders, _ := c.Reminder.ListReminders(ctx, elderly)
	assert.Empty(t, reminders)
}

func TestAddCompletedReminderIsNotScheduled(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, _ := GetMockCompanionWithMemorySqliteDialector(t, nil)
	defer ctrl.Finish()

	elderly := registerUser(t, c, "Margaret", models.RoleElderly)
	input := pillReminder(elderly.ID)
	input.Completed = true

	reminder, err := c.Reminder.AddReminder(context.Background(), elderly, input)
	require.NoError(t, err)
	assert.Empty(t, reminder.NotificationID)
}

func TestMarkReminderCompleteCancelsOnce(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, notifier := GetMockCompanionWithMemorySqliteDialector(t, nil)
	defer ctrl.Finish()
	ctx := context.Background()

	elderly := registerUser(t, c, "Margaret", models.RoleElderly)

	notifier.EXPECT().
		ScheduleReminder(gomock.Any(), gomock.Any(), gomock.Any(), 8, 0, true, gomock.Any()).
		Return(notify.Result{Success: true, ID: "n1"})
	notifier.EXPECT().Cancel(gomock.Any(), "n1").Return(notify.Result{Success: true, ID: "n1"}).Times(1)

	reminder, err := c.Reminder.AddReminder(ctx, elderly, pillReminder(elderly.ID))
	require.NoError(t, err)

	completed, err := c.Reminder.MarkReminderComplete(ctx, elderly, reminder.ID)
	require.NoError(t, err)
	assert.True(t, completed.Completed)
	assert.Empty(t, completed.NotificationID)
	assert.Equal(t, "2024-03-10T12:30:00Z", completed.CompletedTime)

	again, err := c.Reminder.MarkReminderComplete(ctx, elderly, reminder.ID)
	require.NoError(t, err)
	assert.True(t, again.Completed)
	assert.Equal(t, completed.CompletedTime, again.CompletedTime)
}

func TestMarkReminderCompleteCancelFailureStillClears(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, notifier := GetMockCompanionWithMemorySqliteDialector(t, nil)
	defer ctrl.Finish()
	ctx := context.Background()

	elderly := registerUser(t, c, "Margaret", models.RoleElderly)

	notifier.EXPECT().
		ScheduleReminder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(notify.Result{Success: true, ID: "n1"})
	notifier.EXPECT().Cancel(gomock.Any(), "n1").Return(notify.Result{Success: false, Err: errors.New("gone")})

	reminder, err := c.Reminder.AddReminder(ctx, elderly, pillReminder(elderly.ID))
	require.NoError(t, err)

	completed, err := c.Reminder.MarkReminderComplete(ctx, elderly, reminder.ID)
	require.NoError(t, err)
	assert.Empty(t, completed.NotificationID)
}

func TestUpdateReminderReschedules(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, notifier := GetMockCompanionWithMemorySqliteDialector(t, nil)
	defer ctrl.Finish()
	ctx := context.Background()

	elderly := registerUser(t, c, "Margaret", models.RoleElderly)

	gomock.InOrder(
		notifier.EXPECT().
			ScheduleReminder(gomock.Any(), "Pills", gomock.Any(), 8, 0, true, gomock.Any()).
			Return(notify.Result{Success: true, ID: "n1"}),
		notifier.EXPECT().Cancel(gomock.Any(), "n1").Return(notify.Result{Success: true, ID: "n1"}),
		notifier.EXPECT().
			ScheduleReminder(gomock.Any(), "Evening pills", gomock.Any(), 20, 15, true, gomock.Any()).
			Return(notify.Result{Success: true, ID: "n2"}),
	)

	reminder, err := c.Reminder.AddReminder(ctx, elderly, pillReminder(elderly.ID))
	require.NoError(t, err)

	updated, err := c.Reminder.UpdateReminder(ctx, elderly, reminder.ID, models.Patch{
		"title":          "Evening pills",
		"time":           "20:15",
		"id":             "hijacked",
		"notificationId": "forged",
	})
	require.NoError(t, err)
	assert.Equal(t, reminder.ID, updated.ID)
	assert.Equal(t, "Evening pills", updated.Title)
	assert.Equal(t, "n2", updated.NotificationID)
}

func TestUpdateReminderRejectsInvalidPatch(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, notifier := GetMockCompanionWithMemorySqliteDialector(t, nil)
	defer ctrl.Finish()
	ctx := context.Background()

	elderly := registerUser(t, c, "Margaret", models.RoleElderly)
	notifier.EXPECT().
		ScheduleReminder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(notify.Result{Success: true, ID: "n1"})

	reminder, err := c.Reminder.AddReminder(ctx, elderly, pillReminder(elderly.ID))
	require.NoError(t, err)

	_, err = c.Reminder.UpdateReminder(ctx, elderly, reminder.ID, models.Patch{"time": "8am"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = c.Reminder.UpdateReminder(ctx, elderly, "missing", models.Patch{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	reminders, _ := c.Reminder.ListReminders(ctx, elderly)
	require.Len(t, reminders, 1)
	assert.Equal(t, "08:00", reminders[0].Time)
	assert.Equal(t, "n1", reminders[0].NotificationID)
}

func TestDeleteReminderCancelsNotification(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, notifier := GetMockCompanionWithMemorySqliteDialector(t, nil)
	defer ctrl.Finish()
	ctx := context.Background()

	elderly := registerUser(t, c, "Margaret", models.RoleElderly)

	notifier.EXPECT().
		ScheduleReminder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(notify.Result{Success: true, ID: "n1"})
	notifier.EXPECT().Cancel(gomock.Any(), "n1").Return(notify.Result{Success: true, ID: "n1"})

	reminder, err := c.Reminder.AddReminder(ctx, elderly, pillReminder(elderly.ID))
	require.NoError(t, err)

	require.NoError(t, c.Reminder.DeleteReminder(ctx, elderly, reminder.ID))
	assert.ErrorIs(t, c.Reminder.DeleteReminder(ctx, elderly, reminder.ID), ErrNotFound)

	reminders, _ := c.Reminder.ListReminders(ctx, elderly)
	assert.Empty(t, reminders)
}

func TestDisarmAll(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, notifier := GetMockCompanionWithMemorySqliteDialector(t, nil)
	defer ctrl.Finish()
	ctx := context.Background()

	elderly := registerUser(t, c, "Margaret", models.RoleElderly)

	notifier.EXPECT().
		ScheduleReminder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(notify.Result{Success: true, ID: "n1"})
	notifier.EXPECT().
		ScheduleReminder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(notify.Result{Success: false})
	notifier.EXPECT().Cancel(gomock.Any(), "n1").Return(notify.Result{Success: true, ID: "n1"})

	_, err := c.Reminder.AddReminder(ctx, elderly, pillReminder(elderly.ID))
	require.NoError(t, err)
	_, err = c.Reminder.AddReminder(ctx, elderly, pillReminder(elderly.ID))
	require.NoError(t, err)

	require.NoError(t, c.Reminder.DisarmAll(ctx, elderly))

	reminders, _ := c.Reminder.ListReminders(ctx, elderly)
	for _, r := range reminders {
		assert.Empty(t, r.NotificationID)
	}
}

func TestReminderLogs(t *testing.T) {
	buf := &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)
	defer common.SetTestLoggerNop()

	ctrl, c, notifier := GetMockCompanionWithMemorySqliteDialector(t, nil)
	defer ctrl.Finish()

	elderly := registerUser(t, c, "Margaret", models.RoleElderly)
	notifier.EXPECT().
		ScheduleReminder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(notify.Result{Success: true, ID: "n1"})

	_, err := c.Reminder.AddReminder(context.Background(), elderly, pillReminder(elderly.ID))
	require.NoError(t, err)

	found := false
	for _, entry := range ParseLogs(buf) {
		fields := entry.(map[string]any)
		if fields["msg"] == "Added reminder" {
			found = true
			assert.Equal(t, common.LoggerCategoryReminder, fields[common.LoggerFieldCategory])
			assert.Equal(t, common.LoggerNameCompanionCore, fields["logger"])
			reminder := fields["reminder"].(map[string]any)
			assert.Equal(t, "n1", reminder["notificationId"])
		}
	}
	assert.True(t, found, "expected an 'Added reminder' log entry")
}

func TestUpdateReminderCompletedStampsTime(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, notifier := GetMockCompanionWithMemorySqliteDialector(t, nil)
	defer ctrl.Finish()
	ctx := context.Background()

	elderly := registerUser(t, c, "Margaret", models.RoleElderly)

	gomock.InOrder(
		notifier.EXPECT().
			ScheduleReminder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(notify.Result{Success: true, ID: "n1"}),
		notifier.EXPECT().Cancel(gomock.Any(), "n1").Return(notify.Result{Success: true, ID: "n1"}),
	)

	reminder, err := c.Reminder.AddReminder(ctx, elderly, pillReminder(elderly.ID))
	require.NoError(t, err)

	updated, err := c.Reminder.UpdateReminder(ctx, elderly, reminder.ID, models.Patch{"completed": true})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "2024-03-10T12:30:00Z", updated.CompletedTime)
	assert.Empty(t, updated.NotificationID)

	// a later patch keeps the original completion time
	again, err := c.Reminder.UpdateReminder(ctx, elderly, reminder.ID, models.Patch{"description": "Taken with breakfast"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10T12:30:00Z", again.CompletedTime)
}

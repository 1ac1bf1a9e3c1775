package companion

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/models"
	"carecompanion.app/companion-service/pkg/notify"
)

const defaultReminderBody = "Time for your reminder!"

func requireUser(user *models.User) error {
	if user == nil || user.ID == "" {
		return ErrNotAuthenticated
	}
	return nil
}

func reminderLogger() *zap.Logger {
	return common.GetCategoryLogger(common.LoggerNameCompanionCore, common.LoggerCategoryReminder)
}

// armReminder asks the scheduler for a notification and records its id only on success.
func (c *Companion) armReminder(ctx context.Context, reminder *models.Reminder) {
	if c.Notifier == nil {
		return
	}

	hour, minute, err := ParseClock(reminder.Time)
	if err != nil {
		reminderLogger().Error("Reminder has no usable time", zap.Reflect("reminder", reminder), zap.Error(err))
		return
	}

	body := reminder.Description
	if body == "" {
		body = defaultReminderBody
	}
	data := map[string]string{
		notify.DataKeyReminderID: reminder.ID,
		notify.DataKeyElderlyID:  reminder.ElderlyID,
	}

	result := c.Notifier.ScheduleReminder(ctx, reminder.Title, body, hour, minute, reminder.Recurring, data)
	if !result.Success {
		reminderLogger().Error("Failed to schedule notification",
			zap.String("reminder_id", reminder.ID), zap.Error(result.Err))
		return
	}
	reminder.NotificationID = result.ID
}

// disarmReminder cancels the live notification, then forgets its id.
func (c *Companion) disarmReminder(ctx context.Context, reminder *models.Reminder) {
	if reminder.NotificationID == "" {
		return
	}
	if c.Notifier != nil {
		if result := c.Notifier.Cancel(ctx, reminder.NotificationID); !result.Success {
			reminderLogger().Error("Failed to cancel notification",
				zap.String("reminder_id", reminder.ID),
				zap.String("notification_id", reminder.NotificationID),
				zap.Error(result.Err))
		}
	}
	reminder.NotificationID = ""
}

func (c *Companion) listReminders(ctx context.Context, user *models.User) ([]models.Reminder, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	return c.reminders.list(ctx, user.ID), nil
}

func (c *Companion) addReminder(ctx context.Context, user *models.User, input models.Reminder) (*models.Reminder, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	reminder := input
	reminder.ID = newID(c.now())
	reminder.NotificationID = ""
	if reminder.ElderlyID == "" && user.Role == models.RoleElderly {
		reminder.ElderlyID = user.ID
	}
	if err := validateRecord(reminder); err != nil {
		return nil, err
	}

	err := c.reminders.update(ctx, user.ID, func(items []models.Reminder) ([]models.Reminder, bool, error) {
		if !reminder.Completed {
			c.armReminder(ctx, &reminder)
		}
		return append(items, reminder), true, nil
	})
	if err != nil {
		return nil, err
	}
	c.trackReminderOwner(ctx, user.ID)

	reminderLogger().Info("Added reminder", zap.Reflect("reminder", reminder))
	return &reminder, nil
}

func (c *Companion) updateReminder(ctx context.Context, user *models.User, id string, patch models.Patch) (*models.Reminder, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	var updated models.Reminder
	err := c.reminders.update(ctx, user.ID, func(items []models.Reminder) ([]models.Reminder, bool, error) {
		i := c.reminders.indexOf(items, id)
		if i < 0 {
			return nil, false, fmt.Errorf("%w: reminder %s", ErrNotFound, id)
		}

		merged, err := applyPatch(items[i], patch, "id", "notificationId")
		if err != nil {
			return nil, false, err
		}
		if err := validateRecord(merged); err != nil {
			return nil, false, err
		}

		if merged.Completed && !items[i].Completed {
			merged.CompletedTime = c.timestamp()
		}
		c.disarmReminder(ctx, &items[i])
		merged.NotificationID = ""
		if !merged.Completed {
			c.armReminder(ctx, &merged)
		}

		items[i] = merged
		updated = merged
		return items, true, nil
	})
	if err != nil {
		return nil, err
	}

	reminderLogger().Info("Updated reminder", zap.Reflect("reminder", updated))
	return &updated, nil
}

func (c *Companion) deleteReminder(ctx context.Context, user *models.User, id string) error {
	if err := requireUser(user); err != nil {
		return err
	}

	err := c.reminders.update(ctx, user.ID, func(items []models.Reminder) ([]models.Reminder, bool, error) {
		i := c.reminders.indexOf(items, id)
		if i < 0 {
			return nil, false, fmt.Errorf("%w: reminder %s", ErrNotFound, id)
		}
		c.disarmReminder(ctx, &items[i])
		return slices.Delete(items, i, i+1), true, nil
	})
	if err != nil {
		return err
	}

	reminderLogger().Info("Deleted reminder", zap.String("reminder_id", id))
	return nil
}

// markReminderComplete cancels the live notification before clearing its id. Completing an
// already completed reminder changes nothing.
func (c *Companion) markReminderComplete(ctx context.Context, user *models.User, id string) (*models.Reminder, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	var completed models.Reminder
	err := c.reminders.update(ctx, user.ID, func(items []models.Reminder) ([]models.Reminder, bool, error) {
		i := c.reminders.indexOf(items, id)
		if i < 0 {
			return nil, false, fmt.Errorf("%w: reminder %s", ErrNotFound, id)
		}

		reminder := &items[i]
		if reminder.Completed && reminder.NotificationID == "" {
			completed = *reminder
			return items, false, nil
		}

		c.disarmReminder(ctx, reminder)
		reminder.Completed = true
		reminder.CompletedTime = c.timestamp()
		completed = *reminder
		return items, true, nil
	})
	if err != nil {
		return nil, err
	}

	reminderLogger().Info("Completed reminder", zap.Reflect("reminder", completed))
	return &completed, nil
}

// disarmAll cancels every live notification of the user's reminders.
func (c *Companion) disarmAll(ctx context.Context, user *models.User) error {
	if err := requireUser(user); err != nil {
		return err
	}

	return c.reminders.update(ctx, user.ID, func(items []models.Reminder) ([]models.Reminder, bool, error) {
		changed := false
		for i := range items {
			if items[i].NotificationID != "" {
				c.disarmReminder(ctx, &items[i])
				changed = true
			}
		}
		return items, changed, nil
	})
}

type IReminderImpl struct {
	companion *Companion
}

func (ir *IReminderImpl) ListReminders(ctx context.Context, user *models.User) ([]models.Reminder, error) {
	return ir.companion.listReminders(ctx, user)
}

func (ir *IReminderImpl) AddReminder(ctx context.Context, user *models.User, input models.Reminder) (*models.Reminder, error) {
	return ir.companion.addReminder(ctx, user, input)
}

func (ir *IReminderImpl) UpdateReminder(ctx context.Context, user *models.User, id string, patch models.Patch) (*models.Reminder, error) {
	return ir.companion.updateReminder(ctx, user, id, patch)
}

func (ir *IReminderImpl) DeleteReminder(ctx context.Context, user *models.User, id string) error {
	return ir.companion.deleteReminder(ctx, user, id)
}

func (ir *IReminderImpl) MarkReminderComplete(ctx context.Context, user *models.User, id string) (*models.Reminder, error) {
	return ir.companion.markReminderComplete(ctx, user, id)
}

func (ir *IReminderImpl) DisarmAll(ctx context.Context, user *models.User) error {
	return ir.companion.disarmAll(ctx, user)
}

func (ir *IReminderImpl) TodaysReminders(ctx context.Context, user *models.User) ([]models.Reminder, error) {
	return ir.companion.todaysReminders(ctx, user)
}

func (ir *IReminderImpl) UpcomingReminders(ctx context.Context, user *models.User) ([]models.Reminder, error) {
	return ir.companion.upcomingReminders(ctx, user)
}

func (ir *IReminderImpl) MissedReminders(ctx context.Context, user *models.User) ([]models.Reminder, error) {
	return ir.companion.missedReminders(ctx, user)
}

func (ir *IReminderImpl) RemindersForElderly(ctx context.Context, user *models.User, elderlyID string) ([]models.Reminder, error) {
	return ir.companion.remindersForElderly(ctx, user, elderlyID)
}

func (ir *IReminderImpl) ListMedications(ctx context.Context, user *models.User) ([]models.Medication, error) {
	return ir.companion.listMedications(ctx, user)
}

func (ir *IReminderImpl) AddMedication(ctx context.Context, user *models.User, input models.Medication) (*models.Medication, error) {
	return ir.companion.addMedication(ctx, user, input)
}

func (ir *IReminderImpl) UpdateMedication(ctx context.Context, user *models.User, id string, patch models.Patch) (*models.Medication, error) {
	return ir.companion.updateMedication(ctx, user, id, patch)
}

func (ir *IReminderImpl) DeleteMedication(ctx context.Context, user *models.User, id string) error {
	return ir.companion.deleteMedication(ctx, user, id)
}

func (ir *IReminderImpl) ListAppointments(ctx context.Context, user *models.User) ([]models.Appointment, error) {
	return ir.companion.listAppointments(ctx, user)
}

func (ir *IReminderImpl) AddAppointment(ctx context.Context, user *models.User, input models.Appointment) (*models.Appointment, error) {
	return ir.companion.addAppointment(ctx, user, input)
}

func (ir *IReminderImpl) UpdateAppointment(ctx context.Context, user *models.User, id string, patch models.Patch) (*models.Appointment, error) {
	return ir.companion.updateAppointment(ctx, user, id, patch)
}

func (ir *IReminderImpl) DeleteAppointment(ctx context.Context, user *models.User, id string) error {
	return ir.companion.deleteAppointment(ctx, user, id)
}

func (c *Companion) GetIReminder() IReminder {
	return &IReminderImpl{companion: c}
}

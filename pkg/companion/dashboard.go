package companion

import (
	"context"

	"carecompanion.app/companion-service/pkg/models"
)

// Dashboard gathers what the home screen shows for the user.
func (c *Companion) Dashboard(ctx context.Context, user *models.User) (*models.Dashboard, error) {
	today, err := c.Reminder.TodaysReminders(ctx, user)
	if err != nil {
		return nil, err
	}
	missed, err := c.Reminder.MissedReminders(ctx, user)
	if err != nil {
		return nil, err
	}
	unread, err := c.Alert.UnreadAlerts(ctx, user)
	if err != nil {
		return nil, err
	}
	return &models.Dashboard{Today: today, Missed: missed, UnreadAlerts: unread}, nil
}

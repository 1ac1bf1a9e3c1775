package companion

import (
	"context"

	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/models"
)

// trackReminderOwner remembers which users own reminder collections so they can be found
// again at startup.
func (c *Companion) trackReminderOwner(ctx context.Context, ownerID string) {
	err := c.owners.update(ctx, "", func(ids []string) ([]string, bool, error) {
		if c.owners.indexOf(ids, ownerID) >= 0 {
			return ids, false, nil
		}
		return append(ids, ownerID), true, nil
	})
	if err != nil {
		reminderLogger().Error("Failed to track reminder owner", zap.String("owner_id", ownerID), zap.Error(err))
	}
}

// RearmAll schedules again every reminder that held a live notification when the process
// last stopped. Stored notification ids belong to the previous platform instance, so they
// are dropped without cancelling. Reminders without an id (completed, disarmed by the user
// or never scheduled) are left alone. It returns how many reminders were armed.
func (c *Companion) RearmAll(ctx context.Context) (int, error) {
	armed := 0
	for _, owner := range c.owners.list(ctx, "") {
		err := c.reminders.update(ctx, owner, func(items []models.Reminder) ([]models.Reminder, bool, error) {
			changed := false
			for i := range items {
				if items[i].NotificationID == "" {
					continue
				}
				items[i].NotificationID = ""
				changed = true
				if items[i].Completed {
					continue
				}
				c.armReminder(ctx, &items[i])
				if items[i].NotificationID != "" {
					armed++
				}
			}
			return items, changed, nil
		})
		if err != nil {
			return armed, err
		}
	}

	reminderLogger().Info("Re-armed reminders", zap.Int("count", armed))
	return armed, nil
}

package companion

import (
	"context"
	"time"

	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/models"
)

// visibleTo: elderly users see their own reminders, caregivers see those of the elderly
// they look after, anyone else sees nothing.
func visibleTo(user *models.User, reminder models.Reminder) bool {
	switch user.Role {
	case models.RoleElderly:
		return reminder.ElderlyID == user.ID
	case models.RoleCaregiver:
		return common.Contains(user.Elderly, reminder.ElderlyID)
	}
	return false
}

func findAppointment(appointments []models.Appointment, id string) (models.Appointment, bool) {
	for _, appointment := range appointments {
		if appointment.ID == id {
			return appointment, true
		}
	}
	return models.Appointment{}, false
}

func (c *Companion) visibleReminders(ctx context.Context, user *models.User) ([]models.Reminder, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	return common.Filter(c.reminders.list(ctx, user.ID), func(r models.Reminder) bool {
		return visibleTo(user, r)
	}), nil
}

// TODO: reminders carry no date yet, so "today" is every visible reminder. Filter by date
// once one-off reminders store the day they belong to.
func (c *Companion) todaysReminders(ctx context.Context, user *models.User) ([]models.Reminder, error) {
	return c.visibleReminders(ctx, user)
}

func (c *Companion) missedReminders(ctx context.Context, user *models.User) ([]models.Reminder, error) {
	visible, err := c.visibleReminders(ctx, user)
	if err != nil {
		return nil, err
	}

	now := c.now()
	today := now.Format(time.DateOnly)
	appointments := c.appointments.list(ctx, user.ID)

	return common.Filter(visible, func(r models.Reminder) bool {
		if r.Completed {
			return false
		}

		hour, minute, err := ParseClock(r.Time)
		if err != nil {
			return false
		}
		passed := now.Hour() > hour || (now.Hour() == hour && now.Minute() > minute)

		if r.LinkedToAppointment() {
			appointment, ok := findAppointment(appointments, r.RelatedItemID)
			return ok && (appointment.Date < today || (appointment.Date == today && passed))
		}
		return passed
	}), nil
}

func (c *Companion) upcomingReminders(ctx context.Context, user *models.User) ([]models.Reminder, error) {
	visible, err := c.visibleReminders(ctx, user)
	if err != nil {
		return nil, err
	}

	today := c.now().Format(time.DateOnly)
	appointments := c.appointments.list(ctx, user.ID)

	return common.Filter(visible, func(r models.Reminder) bool {
		if r.Completed {
			return false
		}
		if r.LinkedToAppointment() {
			appointment, ok := findAppointment(appointments, r.RelatedItemID)
			return ok && appointment.Date > today
		}
		return r.Recurring
	}), nil
}

// remindersForElderly looks through the caller's own collection without the role rule.
func (c *Companion) remindersForElderly(ctx context.Context, user *models.User, elderlyID string) ([]models.Reminder, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	return common.Filter(c.reminders.list(ctx, user.ID), func(r models.Reminder) bool {
		return r.ElderlyID == elderlyID
	}), nil
}

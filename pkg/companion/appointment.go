package companion

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/models"
)

func appointmentLogger() *zap.Logger {
	return common.GetCategoryLogger(common.LoggerNameCompanionCore, common.LoggerCategoryAppointment)
}

func (c *Companion) listAppointments(ctx context.Context, user *models.User) ([]models.Appointment, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	return c.appointments.list(ctx, user.ID), nil
}

func (c *Companion) addAppointment(ctx context.Context, user *models.User, input models.Appointment) (*models.Appointment, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	appointment := input
	appointment.ID = newID(c.now())
	if appointment.ElderlyID == "" && user.Role == models.RoleElderly {
		appointment.ElderlyID = user.ID
	}
	if err := validateRecord(appointment); err != nil {
		return nil, err
	}

	err := c.appointments.update(ctx, user.ID, func(items []models.Appointment) ([]models.Appointment, bool, error) {
		return append(items, appointment), true, nil
	})
	if err != nil {
		return nil, err
	}

	appointmentLogger().Info("Added appointment", zap.Reflect("appointment", appointment))
	return &appointment, nil
}

func (c *Companion) updateAppointment(ctx context.Context, user *models.User, id string, patch models.Patch) (*models.Appointment, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	var updated models.Appointment
	err := c.appointments.update(ctx, user.ID, func(items []models.Appointment) ([]models.Appointment, bool, error) {
		i := c.appointments.indexOf(items, id)
		if i < 0 {
			return nil, false, fmt.Errorf("%w: appointment %s", ErrNotFound, id)
		}
		merged, err := applyPatch(items[i], patch, "id")
		if err != nil {
			return nil, false, err
		}
		if err := validateRecord(merged); err != nil {
			return nil, false, err
		}
		items[i] = merged
		updated = merged
		return items, true, nil
	})
	if err != nil {
		return nil, err
	}

	appointmentLogger().Info("Updated appointment", zap.Reflect("appointment", updated))
	return &updated, nil
}

// deleteAppointment leaves reminders pointing at it in place; they simply stop showing up
// in the appointment based views.
func (c *Companion) deleteAppointment(ctx context.Context, user *models.User, id string) error {
	if err := requireUser(user); err != nil {
		return err
	}

	return c.appointments.update(ctx, user.ID, func(items []models.Appointment) ([]models.Appointment, bool, error) {
		i := c.appointments.indexOf(items, id)
		if i < 0 {
			return nil, false, fmt.Errorf("%w: appointment %s", ErrNotFound, id)
		}
		return slices.Delete(items, i, i+1), true, nil
	})
}

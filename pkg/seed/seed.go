package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/companion"
	"carecompanion.app/companion-service/pkg/models"
)

const (
	DemoElderlyEmail   = "sangbed.demo@carecompanion.app"
	DemoCaregiverEmail = "claire.demo@carecompanion.app"
)

var everyDay = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func seedLogger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameSeed)
}

// Load registers a demo elderly user and caregiver, links them and fills in the elderly
// user's medications, an upcoming appointment with its reminder and a few handled alerts.
// It does nothing when the demo elderly user already exists.
func Load(ctx context.Context, c *companion.Companion, password string) error {
	if _, err := c.Identity.FindByEmail(ctx, DemoElderlyEmail); err == nil {
		seedLogger().Info("Demo data already present, skipping")
		return nil
	} else if !errors.Is(err, companion.ErrNotFound) {
		return err
	}

	elderly, err := c.Identity.Register(ctx, models.RegisterInput{
		Name:     "Sangbed",
		Email:    DemoElderlyEmail,
		Password: password,
		Role:     models.RoleElderly,
	})
	if err != nil {
		return fmt.Errorf("seed elderly: %w", err)
	}

	caregiver, err := c.Identity.FindByEmail(ctx, DemoCaregiverEmail)
	if errors.Is(err, companion.ErrNotFound) {
		caregiver, err = c.Identity.Register(ctx, models.RegisterInput{
			Name:     "Claire",
			Email:    DemoCaregiverEmail,
			Password: password,
			Role:     models.RoleCaregiver,
		})
	}
	if err != nil {
		return fmt.Errorf("seed caregiver: %w", err)
	}

	if err := c.Identity.Link(ctx, elderly.ID, caregiver.ID); err != nil {
		return fmt.Errorf("seed link: %w", err)
	}
	if elderly, err = c.Identity.GetUser(ctx, elderly.ID); err != nil {
		return err
	}

	if err := loadReminders(ctx, c, elderly); err != nil {
		return err
	}
	if err := loadAlerts(ctx, c, elderly, caregiver); err != nil {
		return err
	}

	seedLogger().Info("Loaded demo data",
		zap.String("elderly_id", elderly.ID), zap.String("caregiver_id", caregiver.ID))
	return nil
}

func loadReminders(ctx context.Context, c *companion.Companion, elderly *models.User) error {
	start := c.Clock().AddDate(0, -3, 0).Format(time.DateOnly)

	medications := []models.Medication{
		{
			Name:         "Lisinopril",
			Dosage:       "10mg",
			Frequency:    "Once daily",
			Schedule:     []models.MedicationSchedule{{Time: "08:00", Days: everyDay}},
			Instructions: "Take with or without food at the same time each day",
			StartDate:    start,
		},
		{
			Name:      "Metformin",
			Dosage:    "500mg",
			Frequency: "Twice daily",
			Schedule: []models.MedicationSchedule{
				{Time: "09:30", Days: everyDay},
				{Time: "19:30", Days: everyDay},
			},
			Instructions: "Take with meals",
			StartDate:    start,
		},
	}
	for _, medication := range medications {
		if _, err := c.Reminder.AddMedication(ctx, elderly, medication); err != nil {
			return fmt.Errorf("seed medication %s: %w", medication.Name, err)
		}
	}

	appointment, err := c.Reminder.AddAppointment(ctx, elderly, models.Appointment{
		Title:      "Quarterly Checkup",
		Date:       c.Clock().AddDate(0, 0, 5).Format(time.DateOnly),
		Time:       "14:00",
		Location:   "City Medical Center, Room 305",
		Notes:      "Bring current medication list",
		DoctorName: "Dr. Jane Wilson",
	})
	if err != nil {
		return fmt.Errorf("seed appointment: %w", err)
	}

	reminders := []models.Reminder{
		{
			Type:          models.ReminderTypeAppointment,
			Title:         "Doctor Appointment",
			Description:   "Checkup with Dr. Wilson",
			Time:          appointment.Time,
			RelatedItemID: appointment.ID,
		},
		{
			Type:      models.ReminderTypeHydration,
			Title:     "Drink a glass of water",
			Time:      "11:00",
			Recurring: true,
			Frequency: models.FrequencyDaily,
		},
	}
	for _, reminder := range reminders {
		if _, err := c.Reminder.AddReminder(ctx, elderly, reminder); err != nil {
			return fmt.Errorf("seed reminder %s: %w", reminder.Title, err)
		}
	}
	return nil
}

type handledAlert struct {
	alert   models.Alert
	details string
}

func loadAlerts(ctx context.Context, c *companion.Companion, elderly, caregiver *models.User) error {
	history := []handledAlert{
		{
			alert: models.Alert{
				Type:    models.AlertTypeMissedMedication,
				Title:   "Missed Medication",
				Message: "Blood pressure medication was not taken at 8:00 AM",
			},
			details: fmt.Sprintf("Called %s and reminded them to take the medication", elderly.Name),
		},
		{
			alert: models.Alert{
				Type:    models.AlertTypeInactivity,
				Title:   "Inactivity Alert",
				Message: "No activity detected for 12 hours",
			},
			details: fmt.Sprintf("Video called %s, they had forgotten to check in", elderly.Name),
		},
	}

	for _, entry := range history {
		entry.alert.ElderlyID = elderly.ID
		entry.alert.CaregiverID = caregiver.ID
		alert, err := c.Alert.AddAlert(ctx, entry.alert)
		if err != nil {
			return fmt.Errorf("seed alert %s: %w", entry.alert.Title, err)
		}
		if _, err := c.Alert.MarkAlertAsRead(ctx, caregiver, alert.ID); err != nil {
			return err
		}
		if _, err := c.Alert.MarkAlertActionTaken(ctx, caregiver, alert.ID, entry.details); err != nil {
			return err
		}
	}

	_, err := c.Alert.AddAlert(ctx, models.Alert{
		ElderlyID:   elderly.ID,
		CaregiverID: caregiver.ID,
		Type:        models.AlertTypeMissedMedication,
		Title:       "Missed Medication",
		Message:     "Metformin was not taken at 9:30 AM",
	})
	return err
}

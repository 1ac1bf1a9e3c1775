package companion

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/models"
	"carecompanion.app/companion-service/pkg/notify"
)

const (
	defaultRecentAlerts = 10
	emergencyTitle      = "Emergency Alert"
)

func alertLogger() *zap.Logger {
	return common.GetCategoryLogger(common.LoggerNameCompanionCore, common.LoggerCategoryAlert)
}

// alertVisibleTo: elderly users see alerts about themselves, caregivers see alerts
// addressed to them.
func alertVisibleTo(user *models.User, alert models.Alert) bool {
	switch user.Role {
	case models.RoleElderly:
		return alert.ElderlyID == user.ID
	case models.RoleCaregiver:
		return alert.CaregiverID == user.ID
	}
	return false
}

func (c *Companion) listAlerts(ctx context.Context, user *models.User) ([]models.Alert, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	return common.Filter(c.alerts.list(ctx, ""), func(a models.Alert) bool {
		return alertVisibleTo(user, a)
	}), nil
}

func (c *Companion) addAlert(ctx context.Context, input models.Alert) (*models.Alert, error) {
	alert := input
	alert.ID = newID(c.now())
	alert.Timestamp = c.timestamp()
	alert.Read = false
	alert.ActionTaken = false
	if err := validateRecord(alert); err != nil {
		return nil, err
	}

	err := c.alerts.update(ctx, "", func(items []models.Alert) ([]models.Alert, bool, error) {
		return append(items, alert), true, nil
	})
	if err != nil {
		return nil, err
	}

	alertLogger().Info("Added alert", zap.Reflect("alert", alert))
	c.notifyCaregiver(ctx, alert)
	return &alert, nil
}

// raiseAlert records an alert on behalf of a signed-in user. Elderly callers raise alerts
// about themselves for one of their caregivers; caregivers address themselves about one of
// their elderly.
func (c *Companion) raiseAlert(ctx context.Context, user *models.User, input models.Alert) (*models.Alert, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	switch user.Role {
	case models.RoleElderly:
		input.ElderlyID = user.ID
		if !common.Contains(user.Caregivers, input.CaregiverID) {
			return nil, fmt.Errorf("%w: caregiver %s", ErrNotConnected, input.CaregiverID)
		}
	case models.RoleCaregiver:
		if input.CaregiverID != user.ID || !common.Contains(user.Elderly, input.ElderlyID) {
			return nil, fmt.Errorf("%w: elderly %s", ErrNotConnected, input.ElderlyID)
		}
	default:
		return nil, ErrNotConnected
	}
	return c.addAlert(ctx, input)
}

// notifyCaregiver pushes the alert right away. Failures are only logged.
func (c *Companion) notifyCaregiver(ctx context.Context, alert models.Alert) {
	if c.Notifier == nil {
		return
	}

	data := map[string]string{
		notify.DataKeyAlertID:     alert.ID,
		notify.DataKeyCaregiverID: alert.CaregiverID,
		notify.DataKeyElderlyID:   alert.ElderlyID,
	}
	if caregiver, err := c.getUser(ctx, alert.CaregiverID); err == nil {
		data[notify.DataKeyEmail] = caregiver.Email
	}

	if result := c.Notifier.Send(ctx, alert.Title, alert.Message, data); !result.Success {
		alertLogger().Error("Failed to notify caregiver",
			zap.String("alert_id", alert.ID), zap.String("caregiver_id", alert.CaregiverID), zap.Error(result.Err))
	}
}

// changeAlert applies fn to one alert the user can see.
func (c *Companion) changeAlert(ctx context.Context, user *models.User, id string, fn func(alert *models.Alert)) (*models.Alert, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	var changed models.Alert
	err := c.alerts.update(ctx, "", func(items []models.Alert) ([]models.Alert, bool, error) {
		i := c.alerts.indexOf(items, id)
		if i < 0 || !alertVisibleTo(user, items[i]) {
			return nil, false, fmt.Errorf("%w: alert %s", ErrNotFound, id)
		}
		fn(&items[i])
		changed = items[i]
		return items, true, nil
	})
	if err != nil {
		return nil, err
	}

	alertLogger().Info("Updated alert", zap.Reflect("alert", changed))
	return &changed, nil
}

func (c *Companion) markAlertAsRead(ctx context.Context, user *models.User, id string) (*models.Alert, error) {
	return c.changeAlert(ctx, user, id, func(alert *models.Alert) {
		alert.Read = true
	})
}

// markAlertActionTaken also marks the alert read. Empty details keep what was recorded
// before.
func (c *Companion) markAlertActionTaken(ctx context.Context, user *models.User, id, details string) (*models.Alert, error) {
	return c.changeAlert(ctx, user, id, func(alert *models.Alert) {
		alert.ActionTaken = true
		alert.Read = true
		if details != "" {
			alert.ActionDetails = details
		}
	})
}

func (c *Companion) deleteAlert(ctx context.Context, user *models.User, id string) error {
	if err := requireUser(user); err != nil {
		return err
	}

	err := c.alerts.update(ctx, "", func(items []models.Alert) ([]models.Alert, bool, error) {
		i := c.alerts.indexOf(items, id)
		if i < 0 || !alertVisibleTo(user, items[i]) {
			return nil, false, fmt.Errorf("%w: alert %s", ErrNotFound, id)
		}
		return slices.Delete(items, i, i+1), true, nil
	})
	if err != nil {
		return err
	}

	alertLogger().Info("Deleted alert", zap.String("alert_id", id))
	return nil
}

func (c *Companion) unreadAlerts(ctx context.Context, user *models.User) ([]models.Alert, error) {
	alerts, err := c.listAlerts(ctx, user)
	if err != nil {
		return nil, err
	}
	return common.Filter(alerts, func(a models.Alert) bool {
		return !a.Read
	}), nil
}

func alertTime(alert models.Alert) time.Time {
	t, _ := time.Parse(time.RFC3339, alert.Timestamp)
	return t
}

// recentAlerts returns at most limit alerts, newest first. limit <= 0 means the default.
func (c *Companion) recentAlerts(ctx context.Context, user *models.User, limit int) ([]models.Alert, error) {
	alerts, err := c.listAlerts(ctx, user)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultRecentAlerts
	}

	slices.SortStableFunc(alerts, func(a, b models.Alert) int {
		return cmp.Compare(alertTime(b).UnixNano(), alertTime(a).UnixNano())
	})
	return alerts[:min(limit, len(alerts))], nil
}

// triggerEmergency raises one emergency alert per caregiver of the elderly user.
func (c *Companion) triggerEmergency(ctx context.Context, user *models.User) ([]models.Alert, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	if user.Role != models.RoleElderly {
		return nil, ErrNotElderly
	}
	if len(user.Caregivers) == 0 {
		return nil, ErrNoCaregivers
	}

	alertLogger().Warn("Emergency triggered", zap.String("elderly_id", user.ID), zap.Strings("caregivers", user.Caregivers))

	raised := make([]models.Alert, 0, len(user.Caregivers))
	for _, caregiverID := range user.Caregivers {
		alert, err := c.addAlert(ctx, models.Alert{
			ElderlyID:   user.ID,
			CaregiverID: caregiverID,
			Type:        models.AlertTypeEmergency,
			Title:       emergencyTitle,
			Message:     fmt.Sprintf("%s has triggered an emergency alert", user.Name),
		})
		if err != nil {
			return raised, err
		}
		raised = append(raised, *alert)
	}
	return raised, nil
}

type IAlertImpl struct {
	companion *Companion
}

func (ia *IAlertImpl) ListAlerts(ctx context.Context, user *models.User) ([]models.Alert, error) {
	return ia.companion.listAlerts(ctx, user)
}

func (ia *IAlertImpl) AddAlert(ctx context.Context, input models.Alert) (*models.Alert, error) {
	return ia.companion.addAlert(ctx, input)
}

func (ia *IAlertImpl) RaiseAlert(ctx context.Context, user *models.User, input models.Alert) (*models.Alert, error) {
	return ia.companion.raiseAlert(ctx, user, input)
}

func (ia *IAlertImpl) MarkAlertAsRead(ctx context.Context, user *models.User, id string) (*models.Alert, error) {
	return ia.companion.markAlertAsRead(ctx, user, id)
}

func (ia *IAlertImpl) MarkAlertActionTaken(ctx context.Context, user *models.User, id, details string) (*models.Alert, error) {
	return ia.companion.markAlertActionTaken(ctx, user, id, details)
}

func (ia *IAlertImpl) DeleteAlert(ctx context.Context, user *models.User, id string) error {
	return ia.companion.deleteAlert(ctx, user, id)
}

func (ia *IAlertImpl) UnreadAlerts(ctx context.Context, user *models.User) ([]models.Alert, error) {
	return ia.companion.unreadAlerts(ctx, user)
}

func (ia *IAlertImpl) RecentAlerts(ctx context.Context, user *models.User, limit int) ([]models.Alert, error) {
	return ia.companion.recentAlerts(ctx, user, limit)
}

func (ia *IAlertImpl) TriggerEmergency(ctx context.Context, user *models.User) ([]models.Alert, error) {
	return ia.companion.triggerEmergency(ctx, user)
}

func (c *Companion) GetIAlert() IAlert {
	return &IAlertImpl{companion: c}
}

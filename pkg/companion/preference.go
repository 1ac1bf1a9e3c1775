package companion

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/models"
)

func preferenceKey(userID string) string {
	return "notificationsEnabled_" + userID
}

func preferenceLogger() *zap.Logger {
	return common.GetCategoryLogger(common.LoggerNameCompanionCore, common.LoggerCategoryPreference)
}

func (c *Companion) notificationsEnabled(ctx context.Context, user *models.User) (bool, error) {
	if err := requireUser(user); err != nil {
		return false, err
	}

	raw, found, err := c.KV.GetItem(ctx, preferenceKey(user.ID))
	if err != nil {
		preferenceLogger().Error("Failed to load notification setting", zap.String("user_id", user.ID), zap.Error(err))
		return false, nil
	}
	if !found {
		return false, nil
	}
	enabled, _ := strconv.ParseBool(raw)
	return enabled, nil
}

func (c *Companion) saveNotificationsEnabled(ctx context.Context, user *models.User, enabled bool) {
	if err := c.KV.SetItem(ctx, preferenceKey(user.ID), strconv.FormatBool(enabled)); err != nil {
		preferenceLogger().Error("Failed to save notification setting", zap.String("user_id", user.ID), zap.Error(err))
	}
	preferenceLogger().Info("Notification setting changed", zap.String("user_id", user.ID), zap.Bool("enabled", enabled))
}

func (c *Companion) permissionsGranted(ctx context.Context) bool {
	return c.Notifier != nil && c.Notifier.RequestPermissions(ctx)
}

// toggleNotifications flips the flag. Turning it on needs granted permissions; turning it
// off disarms every live reminder notification of the user.
func (c *Companion) toggleNotifications(ctx context.Context, user *models.User) (bool, error) {
	enabled, err := c.notificationsEnabled(ctx, user)
	if err != nil {
		return false, err
	}

	if !enabled {
		if !c.permissionsGranted(ctx) {
			return false, ErrPermissionDenied
		}
		c.saveNotificationsEnabled(ctx, user, true)
		return true, nil
	}

	c.saveNotificationsEnabled(ctx, user, false)
	if err := c.Reminder.DisarmAll(ctx, user); err != nil {
		preferenceLogger().Error("Failed to disarm reminders", zap.String("user_id", user.ID), zap.Error(err))
	}
	return false, nil
}

func (c *Companion) requestPermissions(ctx context.Context, user *models.User) (bool, error) {
	if err := requireUser(user); err != nil {
		return false, err
	}
	if !c.permissionsGranted(ctx) {
		return false, nil
	}
	c.saveNotificationsEnabled(ctx, user, true)
	return true, nil
}

type IPreferenceImpl struct {
	companion *Companion
}

func (ip *IPreferenceImpl) NotificationsEnabled(ctx context.Context, user *models.User) (bool, error) {
	return ip.companion.notificationsEnabled(ctx, user)
}

func (ip *IPreferenceImpl) ToggleNotifications(ctx context.Context, user *models.User) (bool, error) {
	return ip.companion.toggleNotifications(ctx, user)
}

func (ip *IPreferenceImpl) RequestPermissions(ctx context.Context, user *models.User) (bool, error) {
	return ip.companion.requestPermissions(ctx, user)
}

func (c *Companion) GetIPreference() IPreference {
	return &IPreferenceImpl{companion: c}
}

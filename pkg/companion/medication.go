package companion

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/models"
)

func medicationLogger() *zap.Logger {
	return common.GetCategoryLogger(common.LoggerNameCompanionCore, common.LoggerCategoryMedication)
}

func (c *Companion) listMedications(ctx context.Context, user *models.User) ([]models.Medication, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	return c.medications.list(ctx, user.ID), nil
}

func (c *Companion) addMedication(ctx context.Context, user *models.User, input models.Medication) (*models.Medication, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	medication := input
	medication.ID = newID(c.now())
	if medication.ElderlyID == "" && user.Role == models.RoleElderly {
		medication.ElderlyID = user.ID
	}
	if err := validateRecord(medication); err != nil {
		return nil, err
	}

	err := c.medications.update(ctx, user.ID, func(items []models.Medication) ([]models.Medication, bool, error) {
		return append(items, medication), true, nil
	})
	if err != nil {
		return nil, err
	}

	medicationLogger().Info("Added medication", zap.Reflect("medication", medication))
	return &medication, nil
}

func (c *Companion) updateMedication(ctx context.Context, user *models.User, id string, patch models.Patch) (*models.Medication, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	var updated models.Medication
	err := c.medications.update(ctx, user.ID, func(items []models.Medication) ([]models.Medication, bool, error) {
		i := c.medications.indexOf(items, id)
		if i < 0 {
			return nil, false, fmt.Errorf("%w: medication %s", ErrNotFound, id)
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

	medicationLogger().Info("Updated medication", zap.Reflect("medication", updated))
	return &updated, nil
}

func (c *Companion) deleteMedication(ctx context.Context, user *models.User, id string) error {
	if err := requireUser(user); err != nil {
		return err
	}

	return c.medications.update(ctx, user.ID, func(items []models.Medication) ([]models.Medication, bool, error) {
		i := c.medications.indexOf(items, id)
		if i < 0 {
			return nil, false, fmt.Errorf("%w: medication %s", ErrNotFound, id)
		}
		return slices.Delete(items, i, i+1), true, nil
	})
}

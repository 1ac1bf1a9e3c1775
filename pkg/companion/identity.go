package companion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/models"
	"carecompanion.app/companion-service/pkg/storage"
)

func userKey(id string) string {
	return "user_" + id
}

func emailKey(email string) string {
	return "user_email_" + strings.ToLower(strings.TrimSpace(email))
}

func credentialsKey(id string) string {
	return "credentials_" + id
}

func identityLogger() *zap.Logger {
	return common.GetCategoryLogger(common.LoggerNameCompanionCore, common.LoggerCategoryIdentity)
}

func (c *Companion) lookupEmail(ctx context.Context, email string) (string, bool, error) {
	return c.KV.GetItem(ctx, emailKey(email))
}

func (c *Companion) saveUser(ctx context.Context, user *models.User) error {
	if err := storage.SetJSON(ctx, c.KV, userKey(user.ID), user); err != nil {
		identityLogger().Error("Failed to save user", zap.String("user_id", user.ID), zap.Error(err))
		return err
	}
	return nil
}

func (c *Companion) register(ctx context.Context, input models.RegisterInput) (*models.User, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := validateRecord(input); err != nil {
		return nil, err
	}

	c.identityMu.Lock()
	defer c.identityMu.Unlock()

	if _, taken, err := c.lookupEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, input.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:    newID(c.now()),
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
		Role:  input.Role,
	}

	if err := c.saveUser(ctx, &user); err != nil {
		return nil, err
	}
	if err := c.KV.SetItem(ctx, credentialsKey(user.ID), string(hash)); err != nil {
		return nil, err
	}
	if err := c.KV.SetItem(ctx, emailKey(user.Email), user.ID); err != nil {
		return nil, err
	}

	identityLogger().Info("Registered user", zap.Reflect("user", user))
	return &user, nil
}

func (c *Companion) login(ctx context.Context, email, password string) (*models.User, error) {
	id, found, err := c.lookupEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrInvalidCredentials
	}

	hash, found, err := c.KV.GetItem(ctx, credentialsKey(id))
	if err != nil {
		return nil, err
	}
	if !found || bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		identityLogger().Info("Rejected login", zap.String("user_id", id))
		return nil, ErrInvalidCredentials
	}

	user, err := c.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	identityLogger().Info("User logged in", zap.String("user_id", id))
	return user, nil
}

// logout drops every cached collection of the user so the next session reads fresh state.
func (c *Companion) logout(ctx context.Context, user *models.User) error {
	if err := requireUser(user); err != nil {
		return err
	}

	c.reminders.reload(user.ID)
	c.medications.reload(user.ID)
	c.appointments.reload(user.ID)
	c.alerts.reload("")
	c.requests.reload("")

	identityLogger().Info("User logged out", zap.String("user_id", user.ID))
	return nil
}

func (c *Companion) getUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	found, err := storage.GetJSON(ctx, c.KV, userKey(id), &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	return &user, nil
}

func (c *Companion) findByEmail(ctx context.Context, email string) (*models.User, error) {
	id, found, err := c.lookupEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
	}
	return c.getUser(ctx, id)
}

// updateUser merges patch into the stored user. Identity fields and the links managed by
// connections cannot be patched.
func (c *Companion) updateUser(ctx context.Context, id string, patch models.Patch) (*models.User, error) {
	c.identityMu.Lock()
	defer c.identityMu.Unlock()

	current, err := c.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	merged, err := applyPatch(*current, patch, "id", "role", "caregivers", "elderly")
	if err != nil {
		return nil, err
	}
	merged.Email = strings.TrimSpace(merged.Email)
	if err := validateRecord(merged); err != nil {
		return nil, err
	}

	emailChanged := emailKey(merged.Email) != emailKey(current.Email)
	if emailChanged {
		if _, taken, err := c.lookupEmail(ctx, merged.Email); err != nil {
			return nil, err
		} else if taken {
			return nil, fmt.Errorf("%w: %s", ErrEmailTaken, merged.Email)
		}
	}

	if err := c.saveUser(ctx, &merged); err != nil {
		return nil, err
	}
	if emailChanged {
		if err := c.KV.SetItem(ctx, emailKey(merged.Email), merged.ID); err != nil {
			return nil, err
		}
		if err := c.KV.RemoveItem(ctx, emailKey(current.Email)); err != nil {
			identityLogger().Error("Failed to drop old email index", zap.String("user_id", id), zap.Error(err))
		}
	}

	identityLogger().Info("Updated user", zap.Reflect("user", merged))
	return &merged, nil
}

func appendUnique(items []string, item string) []string {
	if common.Contains(items, item) {
		return items
	}
	return append(items, item)
}

// link records the elderly/caregiver pair on both users. Linking twice is harmless.
func (c *Companion) link(ctx context.Context, elderlyID, caregiverID string) error {
	c.identityMu.Lock()
	defer c.identityMu.Unlock()

	elderly, err := c.getUser(ctx, elderlyID)
	if err != nil {
		return err
	}
	caregiver, err := c.getUser(ctx, caregiverID)
	if err != nil {
		return err
	}
	if elderly.Role != models.RoleElderly || caregiver.Role != models.RoleCaregiver {
		return fmt.Errorf("%w: link needs one elderly and one caregiver", ErrValidation)
	}

	elderly.Caregivers = appendUnique(elderly.Caregivers, caregiver.ID)
	caregiver.Elderly = appendUnique(caregiver.Elderly, elderly.ID)

	if err := errors.Join(c.saveUser(ctx, elderly), c.saveUser(ctx, caregiver)); err != nil {
		return err
	}

	identityLogger().Info("Linked users", zap.String("elderly_id", elderly.ID), zap.String("caregiver_id", caregiver.ID))
	return nil
}

type IIdentityImpl struct {
	companion *Companion
}

func (ii *IIdentityImpl) Register(ctx context.Context, input models.RegisterInput) (*models.User, error) {
	return ii.companion.register(ctx, input)
}

func (ii *IIdentityImpl) Login(ctx context.Context, email, password string) (*models.User, error) {
	return ii.companion.login(ctx, email, password)
}

func (ii *IIdentityImpl) Logout(ctx context.Context, user *models.User) error {
	return ii.companion.logout(ctx, user)
}

func (ii *IIdentityImpl) GetUser(ctx context.Context, id string) (*models.User, error) {
	return ii.companion.getUser(ctx, id)
}

func (ii *IIdentityImpl) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return ii.companion.findByEmail(ctx, email)
}

func (ii *IIdentityImpl) UpdateUser(ctx context.Context, id string, patch models.Patch) (*models.User, error) {
	return ii.companion.updateUser(ctx, id, patch)
}

func (ii *IIdentityImpl) Link(ctx context.Context, elderlyID, caregiverID string) error {
	return ii.companion.link(ctx, elderlyID, caregiverID)
}

func (c *Companion) GetIIdentity() IIdentity {
	return &IIdentityImpl{companion: c}
}

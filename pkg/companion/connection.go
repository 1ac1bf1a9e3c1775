package companion

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/models"
)

func connectionLogger() *zap.Logger {
	return common.GetCategoryLogger(common.LoggerNameCompanionCore, common.LoggerCategoryConnection)
}

func involves(user *models.User, request models.ConnectionRequest) bool {
	return common.SameEmail(request.FromEmail, user.Email) || common.SameEmail(request.ToEmail, user.Email)
}

func (c *Companion) connectionRequests(ctx context.Context, user *models.User) ([]models.ConnectionRequest, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	return common.Filter(c.requests.list(ctx, ""), func(r models.ConnectionRequest) bool {
		return involves(user, r)
	}), nil
}

func (c *Companion) sendConnectionRequest(ctx context.Context, user *models.User, toEmail string) (*models.ConnectionRequest, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	toEmail = strings.ToLower(strings.TrimSpace(toEmail))
	if err := validateEmail(toEmail); err != nil {
		return nil, err
	}
	if common.SameEmail(toEmail, user.Email) {
		return nil, fmt.Errorf("%w: cannot connect to yourself", ErrValidation)
	}

	request := models.ConnectionRequest{
		ID:        newID(c.now()),
		FromEmail: user.Email,
		ToEmail:   toEmail,
		Status:    models.ConnectionStatusPending,
		Timestamp: c.timestamp(),
		FromName:  user.Name,
		FromRole:  user.Role,
	}

	err := c.requests.update(ctx, "", func(items []models.ConnectionRequest) ([]models.ConnectionRequest, bool, error) {
		return append(items, request), true, nil
	})
	if err != nil {
		return nil, err
	}

	connectionLogger().Info("Sent connection request", zap.Reflect("request", request))
	return &request, nil
}

// answer moves a pending request addressed to the user into status.
func (c *Companion) answer(ctx context.Context, user *models.User, id string, status models.ConnectionStatus) (*models.ConnectionRequest, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	var answered models.ConnectionRequest
	err := c.requests.update(ctx, "", func(items []models.ConnectionRequest) ([]models.ConnectionRequest, bool, error) {
		i := c.requests.indexOf(items, id)
		if i < 0 {
			return nil, false, fmt.Errorf("%w: connection request %s", ErrNotFound, id)
		}
		request := &items[i]
		if !common.SameEmail(request.ToEmail, user.Email) {
			return nil, false, ErrNotRecipient
		}
		if request.Status != models.ConnectionStatusPending {
			return nil, false, fmt.Errorf("%w: status is %s", ErrRequestNotPending, request.Status)
		}
		request.Status = status
		answered = *request
		return items, true, nil
	})
	if err != nil {
		return nil, err
	}

	connectionLogger().Info("Answered connection request", zap.Reflect("request", answered))
	return &answered, nil
}

func (c *Companion) acceptConnectionRequest(ctx context.Context, user *models.User, id string) (*models.ConnectionRequest, error) {
	request, err := c.answer(ctx, user, id, models.ConnectionStatusAccepted)
	if err != nil {
		return nil, err
	}
	c.linkParties(ctx, user, request)
	return request, nil
}

// linkParties records the pair on both identities when both exist and their roles differ.
func (c *Companion) linkParties(ctx context.Context, recipient *models.User, request *models.ConnectionRequest) {
	sender, err := c.Identity.FindByEmail(ctx, request.FromEmail)
	if err != nil {
		connectionLogger().Warn("Sender not found, connection left unlinked",
			zap.String("request_id", request.ID), zap.Error(err))
		return
	}

	var elderlyID, caregiverID string
	switch {
	case sender.Role == models.RoleElderly && recipient.Role == models.RoleCaregiver:
		elderlyID, caregiverID = sender.ID, recipient.ID
	case sender.Role == models.RoleCaregiver && recipient.Role == models.RoleElderly:
		elderlyID, caregiverID = recipient.ID, sender.ID
	default:
		connectionLogger().Warn("Both parties share a role, connection left unlinked",
			zap.String("request_id", request.ID), zap.String("role", string(sender.Role)))
		return
	}

	if err := c.Identity.Link(ctx, elderlyID, caregiverID); err != nil {
		connectionLogger().Error("Failed to link users", zap.String("request_id", request.ID), zap.Error(err))
	}
}

func (c *Companion) rejectConnectionRequest(ctx context.Context, user *models.User, id string) (*models.ConnectionRequest, error) {
	return c.answer(ctx, user, id, models.ConnectionStatusRejected)
}

func (c *Companion) pendingRequests(ctx context.Context, user *models.User) ([]models.ConnectionRequest, error) {
	requests, err := c.connectionRequests(ctx, user)
	if err != nil {
		return nil, err
	}
	return common.Filter(requests, func(r models.ConnectionRequest) bool {
		return r.Status == models.ConnectionStatusPending
	}), nil
}

// connectedUsers describes the other party of every accepted request. The sender sees the
// recipient under the opposite role, the recipient sees the sender as recorded.
func (c *Companion) connectedUsers(ctx context.Context, user *models.User) ([]models.ConnectedUser, error) {
	requests, err := c.connectionRequests(ctx, user)
	if err != nil {
		return nil, err
	}

	accepted := common.Filter(requests, func(r models.ConnectionRequest) bool {
		return r.Status == models.ConnectionStatusAccepted
	})

	return common.Mapper(accepted, func(r models.ConnectionRequest) models.ConnectedUser {
		if common.SameEmail(r.FromEmail, user.Email) {
			return models.ConnectedUser{
				Email: r.ToEmail,
				Name:  c.displayName(ctx, r.ToEmail),
				Role:  r.FromRole.Counterpart(),
			}
		}
		return models.ConnectedUser{
			Email: r.FromEmail,
			Name:  r.FromName,
			Role:  r.FromRole,
		}
	}), nil
}

func (c *Companion) displayName(ctx context.Context, email string) string {
	if other, err := c.Identity.FindByEmail(ctx, email); err == nil && other.Name != "" {
		return other.Name
	}
	return email
}

type IConnectionImpl struct {
	companion *Companion
}

func (ic *IConnectionImpl) ConnectionRequests(ctx context.Context, user *models.User) ([]models.ConnectionRequest, error) {
	return ic.companion.connectionRequests(ctx, user)
}

func (ic *IConnectionImpl) SendConnectionRequest(ctx context.Context, user *models.User, toEmail string) (*models.ConnectionRequest, error) {
	return ic.companion.sendConnectionRequest(ctx, user, toEmail)
}

func (ic *IConnectionImpl) AcceptConnectionRequest(ctx context.Context, user *models.User, id string) (*models.ConnectionRequest, error) {
	return ic.companion.acceptConnectionRequest(ctx, user, id)
}

func (ic *IConnectionImpl) RejectConnectionRequest(ctx context.Context, user *models.User, id string) (*models.ConnectionRequest, error) {
	return ic.companion.rejectConnectionRequest(ctx, user, id)
}

func (ic *IConnectionImpl) PendingRequests(ctx context.Context, user *models.User) ([]models.ConnectionRequest, error) {
	return ic.companion.pendingRequests(ctx, user)
}

func (ic *IConnectionImpl) ConnectedUsers(ctx context.Context, user *models.User) ([]models.ConnectedUser, error) {
	return ic.companion.connectedUsers(ctx, user)
}

func (c *Companion) GetIConnection() IConnection {
	return &IConnectionImpl{companion: c}
}

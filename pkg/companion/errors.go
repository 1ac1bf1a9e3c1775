package companion

import (
	"errors"

	"carecompanion.app/companion-service/pkg/notify"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrNotAuthenticated   = errors.New("user not authenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotRecipient       = errors.New("only the recipient can answer a connection request")
	ErrRequestNotPending  = errors.New("connection request is no longer pending")
	ErrNotElderly         = errors.New("only elderly users can trigger an emergency")
	ErrNoCaregivers       = errors.New("no caregivers to notify")
	ErrNotConnected       = errors.New("users are not connected")
	ErrPermissionDenied   = notify.ErrPermissionDenied
)

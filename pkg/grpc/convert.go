package grpc

import (
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"carecompanion.app/companion-service/pkg/companion"
	"carecompanion.app/companion-service/pkg/models"
)

const (
	fieldReminders = "reminders"
	fieldReminder  = "reminder"
)

// toStruct nests value under key using its JSON form, so gRPC clients see the same field
// names as REST clients.
func toStruct(key string, value any) (*structpb.Struct, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode %s: %v", key, err)
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, status.Errorf(codes.Internal, "encode %s: %v", key, err)
	}
	out, err := structpb.NewStruct(map[string]any{key: decoded})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode %s: %v", key, err)
	}
	return out, nil
}

func fromStruct(s *structpb.Struct, key string, out any) error {
	value, ok := s.GetFields()[key]
	if !ok {
		return fmt.Errorf("missing field %q", key)
	}
	raw, err := value.MarshalJSON()
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// DecodeReminders reads the reminder list out of a view response.
func DecodeReminders(s *structpb.Struct) ([]models.Reminder, error) {
	var reminders []models.Reminder
	if err := fromStruct(s, fieldReminders, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

func DecodeReminder(s *structpb.Struct) (*models.Reminder, error) {
	var reminder models.Reminder
	if err := fromStruct(s, fieldReminder, &reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

func statusFor(err error) error {
	code := codes.Internal
	switch {
	case errors.Is(err, companion.ErrValidation):
		code = codes.InvalidArgument
	case errors.Is(err, companion.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, companion.ErrNotAuthenticated):
		code = codes.Unauthenticated
	case errors.Is(err, companion.ErrPermissionDenied), errors.Is(err, companion.ErrNotRecipient),
		errors.Is(err, companion.ErrNotConnected):
		code = codes.PermissionDenied
	}
	return status.Error(code, err.Error())
}

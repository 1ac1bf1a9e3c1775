package grpc

import (
	"context"
	"fmt"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/models"
)

func serverLogger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameGrpcServer)
}

func validateID(field string, value *string) error {
	var idValidator = z.String().Min(1).Required()
	if issues := idValidator.Validate(value); issues != nil {
		return status.Errorf(codes.InvalidArgument, "validation error: %s %v", field, issues)
	}
	return nil
}

func (s *ReminderServer) caller(ctx context.Context) (*models.User, error) {
	user, ok := userFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "not signed in")
	}
	return user, nil
}

func (s *ReminderServer) view(ctx context.Context, method string, load func(context.Context, *models.User) ([]models.Reminder, error)) (*structpb.Struct, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	reminders, err := load(ctx, user)
	if err != nil {
		serverLogger().Error("Failed to load reminders", zap.String("method", method), zap.String("user_id", user.ID), zap.Error(err))
		return nil, statusFor(err)
	}
	return toStruct(fieldReminders, reminders)
}

func (s *ReminderServer) TodaysReminders(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return s.view(ctx, MethodTodaysReminders, s.Companion.Reminder.TodaysReminders)
}

func (s *ReminderServer) UpcomingReminders(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return s.view(ctx, MethodUpcomingReminders, s.Companion.Reminder.UpcomingReminders)
}

func (s *ReminderServer) MissedReminders(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return s.view(ctx, MethodMissedReminders, s.Companion.Reminder.MissedReminders)
}

func (s *ReminderServer) RemindersForElderly(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	elderlyID := req.GetFields()["elderlyId"].GetStringValue()
	if err := validateID("elderlyId", &elderlyID); err != nil {
		return nil, err
	}

	return s.view(ctx, MethodRemindersForElderly, func(ctx context.Context, user *models.User) ([]models.Reminder, error) {
		return s.Companion.Reminder.RemindersForElderly(ctx, user, elderlyID)
	})
}

func (s *ReminderServer) MarkReminderComplete(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id := req.GetFields()["id"].GetStringValue()
	if err := validateID("id", &id); err != nil {
		return nil, err
	}

	user, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	reminder, err := s.Companion.Reminder.MarkReminderComplete(ctx, user, id)
	if err != nil {
		return nil, statusFor(err)
	}
	return toStruct(fieldReminder, reminder)
}

func limiterStatus(success bool, message string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"success": structpb.NewBoolValue(success),
		"message": structpb.NewStringValue(message),
	}}
}

func (s *ReminderServer) SetLimiter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	fields := req.GetFields()
	if fields["rate"] == nil || fields["burst"] == nil {
		return limiterStatus(false, "validation error: rate and burst are required"), nil
	}

	userRate := fields["rate"].GetNumberValue()
	var rateValidator = z.Float64().Required()
	if err := rateValidator.Validate(&userRate); err != nil {
		return limiterStatus(false, fmt.Sprintf("validation error: %v", err)), nil
	}

	userBurst := int(fields["burst"].GetNumberValue())
	var burstValidator = z.Int().Required()
	if err := burstValidator.Validate(&userBurst); err != nil {
		return limiterStatus(false, fmt.Sprintf("validation error: %v", err)), nil
	}

	if s.RateLimiterStore == nil {
		return limiterStatus(false, "RateLimiterStore is not used. No effect."), nil
	}

	s.RateLimiterStore.SetLimiter(user.ID, rate.Limit(userRate), userBurst)
	return limiterStatus(true, "OK"), nil
}

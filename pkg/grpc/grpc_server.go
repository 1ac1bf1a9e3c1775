package grpc

import (
	"golang.org/x/time/rate"

	"carecompanion.app/companion-service/pkg/auth"
	"carecompanion.app/companion-service/pkg/companion"
)

type ReminderServer struct {
	Companion        *companion.Companion
	Auth             *auth.Issuer
	RateLimiterStore *companion.RateLimiterStore
}

func (s *ReminderServer) GetLimiter(userID string) *rate.Limiter {
	if s.RateLimiterStore == nil {
		return nil
	} else {
		return s.RateLimiterStore.GetLimiter(userID)
	}
}

func (s *ReminderServer) CheckUserLimiter(userID string) bool {
	return s.RateLimiterStore.Allow(userID)
}

// LimitedMethods are the calls that spend the caller's rate limit.
func LimitedMethods() []string {
	return []string{
		FullMethod(MethodTodaysReminders),
		FullMethod(MethodUpcomingReminders),
		FullMethod(MethodMissedReminders),
		FullMethod(MethodRemindersForElderly),
		FullMethod(MethodMarkReminderComplete),
	}
}

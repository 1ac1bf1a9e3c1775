package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/common"
)

const immediateDelaySeconds = 1

// Result mirrors what callers need from a scheduling attempt. On Success=false the caller
// must not keep an id.
type Result struct {
	Success bool
	ID      string
	Err     error
}

func failed(err error) Result {
	return Result{Success: false, Err: err}
}

// Scheduler turns a time of day into a concrete trigger for the configured platform family.
type Scheduler struct {
	platform Platform
	family   Family
	now      func() time.Time
}

type Option func(*Scheduler)

func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

func NewScheduler(platform Platform, family Family, opts ...Option) *Scheduler {
	s := &Scheduler{
		platform: platform,
		family:   family,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scheduler) Family() Family {
	return s.family
}

func schedulerLogger() *zap.Logger {
	return common.GetCategoryLogger(common.LoggerNameNotify, common.LoggerCategoryScheduler)
}

// NextOccurrence is today at hour:minute:00, or tomorrow when that moment is not after now.
func (s *Scheduler) NextOccurrence(hour, minute int) time.Time {
	now := s.now()
	target := atClock(now, hour, minute)
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

// OneTimeTarget is today at hour:minute:00, rolled to tomorrow only when it is strictly
// before now.
func (s *Scheduler) OneTimeTarget(hour, minute int) time.Time {
	now := s.now()
	target := atClock(now, hour, minute)
	if target.Before(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

func atClock(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func secondsUntil(now, target time.Time) int {
	return int(target.Sub(now) / time.Second)
}

func (s *Scheduler) schedule(ctx context.Context, content Content, trigger Trigger) Result {
	if s.family == FamilyNone {
		return failed(ErrUnsupportedPlatform)
	}

	id, err := s.platform.Schedule(ctx, content, trigger)
	if err != nil {
		schedulerLogger().Error("Failed to schedule notification",
			zap.String("title", content.Title), zap.Reflect("trigger", trigger), zap.Error(err))
		return failed(err)
	}

	schedulerLogger().Info("Scheduled notification",
		zap.String("id", id), zap.String("title", content.Title), zap.Reflect("trigger", trigger))
	return Result{Success: true, ID: id}
}

// ScheduleDaily arms a notification that repeats. Interval platforms get a repeating delay
// equal to the time left until the next occurrence; calendar platforms get hour and minute.
func (s *Scheduler) ScheduleDaily(ctx context.Context, title, body string, hour, minute int, data map[string]string) Result {
	if err := validateClock(hour, minute); err != nil {
		return failed(err)
	}

	content := Content{Title: title, Body: body, Data: data}
	if s.family == FamilyInterval {
		seconds := max(1, secondsUntil(s.now(), s.NextOccurrence(hour, minute)))
		return s.schedule(ctx, content, DelayTrigger(seconds, true))
	}
	return s.schedule(ctx, content, CalendarTrigger(hour, minute, true))
}

func (s *Scheduler) ScheduleOneTime(ctx context.Context, title, body string, date time.Time, data map[string]string) Result {
	content := Content{Title: title, Body: body, Data: data}
	if s.family == FamilyInterval {
		seconds := max(1, secondsUntil(s.now(), date))
		return s.schedule(ctx, content, DelayTrigger(seconds, false))
	}
	return s.schedule(ctx, content, DateTrigger(date))
}

// ScheduleReminder is the entry point used for reminders: recurring ones fire every day,
// the rest fire once at the next matching time of day.
func (s *Scheduler) ScheduleReminder(ctx context.Context, title, body string, hour, minute int, recurring bool, data map[string]string) Result {
	if err := validateClock(hour, minute); err != nil {
		return failed(err)
	}
	if recurring {
		return s.ScheduleDaily(ctx, title, body, hour, minute, data)
	}
	return s.ScheduleOneTime(ctx, title, body, s.OneTimeTarget(hour, minute), data)
}

// Send delivers right away, going through the platform like any other notification.
func (s *Scheduler) Send(ctx context.Context, title, body string, data map[string]string) Result {
	return s.schedule(ctx, Content{Title: title, Body: body, Data: data}, DelayTrigger(immediateDelaySeconds, false))
}

func (s *Scheduler) Cancel(ctx context.Context, id string) Result {
	if id == "" {
		return failed(fmt.Errorf("%w: empty id", ErrUnknownNotification))
	}
	if err := s.platform.Cancel(ctx, id); err != nil {
		schedulerLogger().Error("Failed to cancel notification", zap.String("id", id), zap.Error(err))
		return failed(err)
	}
	schedulerLogger().Info("Cancelled notification", zap.String("id", id))
	return Result{Success: true, ID: id}
}

func (s *Scheduler) CancelAll(ctx context.Context) Result {
	if err := s.platform.CancelAll(ctx); err != nil {
		schedulerLogger().Error("Failed to cancel all notifications", zap.Error(err))
		return failed(err)
	}
	return Result{Success: true}
}

func (s *Scheduler) RequestPermissions(ctx context.Context) bool {
	if s.family == FamilyNone {
		// nothing to ask for; the preference can still be stored
		return true
	}
	granted, err := s.platform.RequestPermissions(ctx)
	if err != nil {
		schedulerLogger().Error("Failed to request notification permissions", zap.Error(err))
		return false
	}
	return granted
}

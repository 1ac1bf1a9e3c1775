package notify

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Family selects how triggers are expressed for the underlying platform.
type Family string

const (
	// FamilyCalendar platforms understand wall-clock recurrences and absolute dates.
	FamilyCalendar Family = "calendar"
	// FamilyInterval platforms only understand "fire in N seconds", optionally repeating.
	FamilyInterval Family = "interval"
	// FamilyNone has no local notifications at all.
	FamilyNone Family = "none"
)

func ParseFamily(value string) (Family, error) {
	switch Family(value) {
	case FamilyCalendar, FamilyInterval, FamilyNone:
		return Family(value), nil
	}
	return "", fmt.Errorf("unknown notification platform family %q", value)
}

type TriggerKind string

const (
	TriggerDelay    TriggerKind = "delay"
	TriggerCalendar TriggerKind = "calendar"
	TriggerDate     TriggerKind = "date"
)

type Trigger struct {
	Kind    TriggerKind
	Seconds int
	Repeats bool
	Hour    int
	Minute  int
	Date    time.Time
}

func DelayTrigger(seconds int, repeats bool) Trigger {
	return Trigger{Kind: TriggerDelay, Seconds: seconds, Repeats: repeats}
}

func CalendarTrigger(hour, minute int, repeats bool) Trigger {
	return Trigger{Kind: TriggerCalendar, Hour: hour, Minute: minute, Repeats: repeats}
}

func DateTrigger(date time.Time) Trigger {
	return Trigger{Kind: TriggerDate, Date: date}
}

func (t Trigger) Validate() error {
	switch t.Kind {
	case TriggerDelay:
		if t.Seconds < 1 {
			return fmt.Errorf("%w: delay must be at least one second", ErrInvalidTrigger)
		}
	case TriggerCalendar:
		if err := validateClock(t.Hour, t.Minute); err != nil {
			return err
		}
	case TriggerDate:
		if t.Date.IsZero() {
			return fmt.Errorf("%w: empty date", ErrInvalidTrigger)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidTrigger, t.Kind)
	}
	return nil
}

func validateClock(hour, minute int) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("%w: %02d:%02d is not a time of day", ErrInvalidTrigger, hour, minute)
	}
	return nil
}

type Content struct {
	Title string
	Body  string
	Data  map[string]string
}

// Platform is the local-notification capability: arm a notification for a trigger and get
// back a handle that can cancel it later.
type Platform interface {
	RequestPermissions(ctx context.Context) (bool, error)
	Schedule(ctx context.Context, content Content, trigger Trigger) (string, error)
	Cancel(ctx context.Context, id string) error
	CancelAll(ctx context.Context) error
}

var (
	ErrInvalidTrigger      = errors.New("invalid notification trigger")
	ErrUnsupportedPlatform = errors.New("local notifications are not supported on this platform")
	ErrPermissionDenied    = errors.New("notification permission denied")
	ErrUnknownNotification = errors.New("unknown notification id")
	ErrNoRecipient         = errors.New("notification has no recipient for this deliverer")
)

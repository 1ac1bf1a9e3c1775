package companion

//go:generate mockgen -source=companion.go -destination=mocks/companion_mock.go -package=mocks

import (
	"context"
	"sync"
	"time"

	"carecompanion.app/companion-service/pkg/models"
	"carecompanion.app/companion-service/pkg/notify"
	"carecompanion.app/companion-service/pkg/storage"
)

// INotifier is the part of the notification scheduler the stores rely on.
type INotifier interface {
	ScheduleReminder(ctx context.Context, title, body string, hour, minute int, recurring bool, data map[string]string) notify.Result
	Send(ctx context.Context, title, body string, data map[string]string) notify.Result
	Cancel(ctx context.Context, id string) notify.Result
	RequestPermissions(ctx context.Context) bool
}

type IIdentity interface {
	Register(ctx context.Context, input models.RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, patch models.Patch) (*models.User, error)
	Link(ctx context.Context, elderlyID, caregiverID string) error
}

type IReminder interface {
	ListReminders(ctx context.Context, user *models.User) ([]models.Reminder, error)
	AddReminder(ctx context.Context, user *models.User, input models.Reminder) (*models.Reminder, error)
	UpdateReminder(ctx context.Context, user *models.User, id string, patch models.Patch) (*models.Reminder, error)
	DeleteReminder(ctx context.Context, user *models.User, id string) error
	MarkReminderComplete(ctx context.Context, user *models.User, id string) (*models.Reminder, error)
	DisarmAll(ctx context.Context, user *models.User) error

	TodaysReminders(ctx context.Context, user *models.User) ([]models.Reminder, error)
	UpcomingReminders(ctx context.Context, user *models.User) ([]models.Reminder, error)
	MissedReminders(ctx context.Context, user *models.User) ([]models.Reminder, error)
	RemindersForElderly(ctx context.Context, user *models.User, elderlyID string) ([]models.Reminder, error)

	ListMedications(ctx context.Context, user *models.User) ([]models.Medication, error)
	AddMedication(ctx context.Context, user *models.User, input models.Medication) (*models.Medication, error)
	UpdateMedication(ctx context.Context, user *models.User, id string, patch models.Patch) (*models.Medication, error)
	DeleteMedication(ctx context.Context, user *models.User, id string) error

	ListAppointments(ctx context.Context, user *models.User) ([]models.Appointment, error)
	AddAppointment(ctx context.Context, user *models.User, input models.Appointment) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, user *models.User, id string, patch models.Patch) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, user *models.User, id string) error
}

type IAlert interface {
	ListAlerts(ctx context.Context, user *models.User) ([]models.Alert, error)
	AddAlert(ctx context.Context, input models.Alert) (*models.Alert, error)
	RaiseAlert(ctx context.Context, user *models.User, input models.Alert) (*models.Alert, error)
	MarkAlertAsRead(ctx context.Context, user *models.User, id string) (*models.Alert, error)
	MarkAlertActionTaken(ctx context.Context, user *models.User, id, details string) (*models.Alert, error)
	DeleteAlert(ctx context.Context, user *models.User, id string) error
	UnreadAlerts(ctx context.Context, user *models.User) ([]models.Alert, error)
	RecentAlerts(ctx context.Context, user *models.User, limit int) ([]models.Alert, error)
	TriggerEmergency(ctx context.Context, user *models.User) ([]models.Alert, error)
}

type IConnection interface {
	ConnectionRequests(ctx context.Context, user *models.User) ([]models.ConnectionRequest, error)
	SendConnectionRequest(ctx context.Context, user *models.User, toEmail string) (*models.ConnectionRequest, error)
	AcceptConnectionRequest(ctx context.Context, user *models.User, id string) (*models.ConnectionRequest, error)
	RejectConnectionRequest(ctx context.Context, user *models.User, id string) (*models.ConnectionRequest, error)
	PendingRequests(ctx context.Context, user *models.User) ([]models.ConnectionRequest, error)
	ConnectedUsers(ctx context.Context, user *models.User) ([]models.ConnectedUser, error)
}

type IPreference interface {
	NotificationsEnabled(ctx context.Context, user *models.User) (bool, error)
	ToggleNotifications(ctx context.Context, user *models.User) (bool, error)
	RequestPermissions(ctx context.Context, user *models.User) (bool, error)
}

// Companion owns every store of the service. Build it once with New and hand it to the
// transports.
type Companion struct {
	KV       storage.KV
	Notifier INotifier
	Clock    func() time.Time

	Identity   IIdentity
	Reminder   IReminder
	Alert      IAlert
	Connection IConnection
	Preference IPreference

	reminders    *collection[models.Reminder]
	medications  *collection[models.Medication]
	appointments *collection[models.Appointment]
	alerts       *collection[models.Alert]
	requests     *collection[models.ConnectionRequest]
	owners       *collection[string]
	identityMu   sync.Mutex
}

type ServiceOpts struct {
	Identity   IIdentity
	Reminder   IReminder
	Alert      IAlert
	Connection IConnection
	Preference IPreference
}

func New(kv storage.KV, notifier INotifier, clock func() time.Time) *Companion {
	if clock == nil {
		clock = time.Now
	}
	c := &Companion{
		KV:       kv,
		Notifier: notifier,
		Clock:    clock,

		reminders:    newCollection(kv, ownerKey("reminders"), func(r *models.Reminder) string { return r.ID }),
		medications:  newCollection(kv, ownerKey("medications"), func(m *models.Medication) string { return m.ID }),
		appointments: newCollection(kv, ownerKey("appointments"), func(a *models.Appointment) string { return a.ID }),
		alerts:       newCollection(kv, sharedKey("alerts"), func(a *models.Alert) string { return a.ID }),
		requests:     newCollection(kv, sharedKey("connectionRequests"), func(r *models.ConnectionRequest) string { return r.ID }),
		owners:       newCollection(kv, sharedKey("reminderOwners"), func(id *string) string { return *id }),
	}
	return c.WithServices(ServiceOpts{
		Identity:   c.GetIIdentity(),
		Reminder:   c.GetIReminder(),
		Alert:      c.GetIAlert(),
		Connection: c.GetIConnection(),
		Preference: c.GetIPreference(),
	})
}

func (c *Companion) WithServices(opts ServiceOpts) *Companion {
	if opts.Identity != nil {
		c.Identity = opts.Identity
	}
	if opts.Reminder != nil {
		c.Reminder = opts.Reminder
	}
	if opts.Alert != nil {
		c.Alert = opts.Alert
	}
	if opts.Connection != nil {
		c.Connection = opts.Connection
	}
	if opts.Preference != nil {
		c.Preference = opts.Preference
	}
	return c
}

func (c *Companion) now() time.Time {
	return c.Clock()
}

func (c *Companion) timestamp() string {
	return c.now().Format(time.RFC3339)
}

package models

type Role string

const (
	RoleElderly   Role = "elderly"
	RoleCaregiver Role = "caregiver"
)

// Counterpart is the role on the other side of an elderly/caregiver pair.
func (r Role) Counterpart() Role {
	if r == RoleElderly {
		return RoleCaregiver
	}
	return RoleElderly
}

type ReminderType string

const (
	ReminderTypeMedication  ReminderType = "medication"
	ReminderTypeAppointment ReminderType = "appointment"
	ReminderTypeHydration   ReminderType = "hydration"
	ReminderTypeCustom      ReminderType = "custom"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyCustom  Frequency = "custom"
)

type AlertType string

const (
	AlertTypeMissedMedication  AlertType = "missed_medication"
	AlertTypeMissedAppointment AlertType = "missed_appointment"
	AlertTypeEmergency         AlertType = "emergency"
	AlertTypeInactivity        AlertType = "inactivity"
	AlertTypeCheckIn           AlertType = "check_in"
)

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

type DoctorInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type MedicalInfo struct {
	Allergies  []string    `json:"allergies"`
	Conditions []string    `json:"conditions"`
	BloodType  string      `json:"bloodType,omitempty"`
	DoctorInfo *DoctorInfo `json:"doctorInfo,omitempty"`
}

type User struct {
	ID               string       `json:"id" validate:"required"`
	Name             string       `json:"name" validate:"required"`
	Email            string       `json:"email" validate:"required,email"`
	Phone            string       `json:"phone,omitempty"`
	Role             Role         `json:"role" validate:"required,oneof=elderly caregiver"`
	Birthdate        string       `json:"birthdate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EmergencyContact string       `json:"emergencyContact,omitempty"`
	MedicalInfo      *MedicalInfo `json:"medicalInfo,omitempty"`
	Caregivers       []string     `json:"caregivers,omitempty"`
	Elderly          []string     `json:"elderly,omitempty"`
}

// RegisterInput is what a new account is created from. The password never leaves the
// identity store.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
	Role     Role   `json:"role" validate:"required,oneof=elderly caregiver"`
	Phone    string `json:"phone,omitempty"`
}

type Reminder struct {
	ID              string       `json:"id"`
	Type            ReminderType `json:"type" validate:"required,oneof=medication appointment hydration custom"`
	Title           string       `json:"title" validate:"required"`
	Description     string       `json:"description,omitempty"`
	Time            string       `json:"time" validate:"required,hhmm"`
	Recurring       bool         `json:"recurring"`
	Frequency       Frequency    `json:"frequency,omitempty" validate:"omitempty,oneof=daily weekly monthly custom"`
	CustomFrequency string       `json:"customFrequency,omitempty"`
	ElderlyID       string       `json:"elderlyId" validate:"required"`
	RelatedItemID   string       `json:"relatedItemId,omitempty"`
	Completed       bool         `json:"completed"`
	CompletedTime   string       `json:"completedTime,omitempty"`
	Notified        bool         `json:"notified"`
	NotificationID  string       `json:"notificationId,omitempty"`
}

// LinkedToAppointment reports whether the reminder follows an appointment record rather
// than its own time-of-day.
func (r Reminder) LinkedToAppointment() bool {
	return r.Type == ReminderTypeAppointment && r.RelatedItemID != ""
}

type MedicationSchedule struct {
	Time string   `json:"time" validate:"required,hhmm"`
	Days []string `json:"days" validate:"dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
}

type Medication struct {
	ID           string               `json:"id"`
	Name         string               `json:"name" validate:"required"`
	Dosage       string               `json:"dosage" validate:"required"`
	Frequency    string               `json:"frequency"`
	Schedule     []MedicationSchedule `json:"schedule" validate:"dive"`
	Instructions string               `json:"instructions,omitempty"`
	StartDate    string               `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      string               `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RefillDate   string               `json:"refillDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ElderlyID    string               `json:"elderlyId" validate:"required"`
}

type Appointment struct {
	ID         string `json:"id"`
	Title      string `json:"title" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string `json:"time" validate:"required,hhmm"`
	Location   string `json:"location,omitempty"`
	Notes      string `json:"notes,omitempty"`
	DoctorName string `json:"doctorName,omitempty"`
	ElderlyID  string `json:"elderlyId" validate:"required"`
}

type Alert struct {
	ID            string    `json:"id"`
	ElderlyID     string    `json:"elderlyId" validate:"required"`
	CaregiverID   string    `json:"caregiverId" validate:"required"`
	Type          AlertType `json:"type" validate:"required,oneof=missed_medication missed_appointment emergency inactivity check_in"`
	Title         string    `json:"title" validate:"required"`
	Message       string    `json:"message"`
	Timestamp     string    `json:"timestamp"`
	Read          bool      `json:"read"`
	ActionTaken   bool      `json:"actionTaken"`
	ActionDetails string    `json:"actionDetails,omitempty"`
}

type ConnectionRequest struct {
	ID        string           `json:"id"`
	FromEmail string           `json:"fromEmail"`
	ToEmail   string           `json:"toEmail"`
	Status    ConnectionStatus `json:"status"`
	Timestamp string           `json:"timestamp"`
	FromName  string           `json:"fromName"`
	FromRole  Role             `json:"fromRole"`
}

type ConnectedUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Patch carries a partial update keyed by JSON field name.
type Patch map[string]any

// Dashboard is the home-screen summary for the signed-in user.
type Dashboard struct {
	Today        []Reminder `json:"today"`
	Missed       []Reminder `json:"missed"`
	UnreadAlerts []Alert    `json:"unreadAlerts"`
}

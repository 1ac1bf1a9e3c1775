package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"carecompanion.app/companion-service/pkg/models"
)

type ReminderRequest struct {
	Type            string `json:"type"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Time            string `json:"time"`
	Recurring       bool   `json:"recurring"`
	Frequency       string `json:"frequency,omitempty"`
	CustomFrequency string `json:"customFrequency,omitempty"`
	ElderlyID       string `json:"elderlyId,omitempty" zog:"elderlyId"`
	RelatedItemID   string `json:"relatedItemId,omitempty" zog:"relatedItemId"`
}

var reminderRequestSchema = z.Struct(z.Shape{
	"Type": z.String().Required().OneOf([]string{
		string(models.ReminderTypeMedication),
		string(models.ReminderTypeAppointment),
		string(models.ReminderTypeHydration),
		string(models.ReminderTypeCustom),
	}),
	"Title":           z.String().Required(),
	"Description":     z.String(),
	"Time":            z.String().Required().Len(5),
	"Recurring":       z.Bool(),
	"Frequency":       z.String(),
	"CustomFrequency": z.String(),
	"ElderlyID":       z.String(),
	"RelatedItemID":   z.String(),
})

func (req ReminderRequest) toModel() models.Reminder {
	return models.Reminder{
		Type:            models.ReminderType(req.Type),
		Title:           req.Title,
		Description:     req.Description,
		Time:            req.Time,
		Recurring:       req.Recurring,
		Frequency:       models.Frequency(req.Frequency),
		CustomFrequency: req.CustomFrequency,
		ElderlyID:       req.ElderlyID,
		RelatedItemID:   req.RelatedItemID,
	}
}

func bindPatch(c *gin.Context) (models.Patch, bool) {
	var patch models.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return patch, true
}

func (rs *RestfulServer) ListReminders(c *gin.Context) {
	reminders, err := rs.Companion.Reminder.ListReminders(c.Request.Context(), currentUser(c))
	respond(c, reminders, err)
}

func (rs *RestfulServer) AddReminder(c *gin.Context) {
	var req ReminderRequest
	if err := reminderRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	reminder, err := rs.Companion.Reminder.AddReminder(c.Request.Context(), currentUser(c), req.toModel())
	respondCreated(c, reminder, err)
}

func (rs *RestfulServer) UpdateReminder(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	reminder, err := rs.Companion.Reminder.UpdateReminder(c.Request.Context(), currentUser(c), c.Param("id"), patch)
	respond(c, reminder, err)
}

func (rs *RestfulServer) DeleteReminder(c *gin.Context) {
	err := rs.Companion.Reminder.DeleteReminder(c.Request.Context(), currentUser(c), c.Param("id"))
	respondNoContent(c, err)
}

func (rs *RestfulServer) CompleteReminder(c *gin.Context) {
	reminder, err := rs.Companion.Reminder.MarkReminderComplete(c.Request.Context(), currentUser(c), c.Param("id"))
	respond(c, reminder, err)
}

func (rs *RestfulServer) TodaysReminders(c *gin.Context) {
	reminders, err := rs.Companion.Reminder.TodaysReminders(c.Request.Context(), currentUser(c))
	respond(c, reminders, err)
}

func (rs *RestfulServer) UpcomingReminders(c *gin.Context) {
	reminders, err := rs.Companion.Reminder.UpcomingReminders(c.Request.Context(), currentUser(c))
	respond(c, reminders, err)
}

func (rs *RestfulServer) MissedReminders(c *gin.Context) {
	reminders, err := rs.Companion.Reminder.MissedReminders(c.Request.Context(), currentUser(c))
	respond(c, reminders, err)
}

func (rs *RestfulServer) RemindersForElderly(c *gin.Context) {
	reminders, err := rs.Companion.Reminder.RemindersForElderly(c.Request.Context(), currentUser(c), c.Param("elderly_id"))
	respond(c, reminders, err)
}

func (rs *RestfulServer) ListMedications(c *gin.Context) {
	medications, err := rs.Companion.Reminder.ListMedications(c.Request.Context(), currentUser(c))
	respond(c, medications, err)
}

// AddMedication binds the body as is; the store validates nested schedules.
func (rs *RestfulServer) AddMedication(c *gin.Context) {
	var medication models.Medication
	if err := c.ShouldBindJSON(&medication); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := rs.Companion.Reminder.AddMedication(c.Request.Context(), currentUser(c), medication)
	respondCreated(c, created, err)
}

func (rs *RestfulServer) UpdateMedication(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	medication, err := rs.Companion.Reminder.UpdateMedication(c.Request.Context(), currentUser(c), c.Param("id"), patch)
	respond(c, medication, err)
}

func (rs *RestfulServer) DeleteMedication(c *gin.Context) {
	err := rs.Companion.Reminder.DeleteMedication(c.Request.Context(), currentUser(c), c.Param("id"))
	respondNoContent(c, err)
}

type AppointmentRequest struct {
	Title      string `json:"title"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Location   string `json:"location,omitempty"`
	Notes      string `json:"notes,omitempty"`
	DoctorName string `json:"doctorName,omitempty"`
	ElderlyID  string `json:"elderlyId,omitempty" zog:"elderlyId"`
}

var appointmentRequestSchema = z.Struct(z.Shape{
	"Title":      z.String().Required(),
	"Date":       z.String().Required().Len(10),
	"Time":       z.String().Required().Len(5),
	"Location":   z.String(),
	"Notes":      z.String(),
	"DoctorName": z.String(),
	"ElderlyID":  z.String(),
})

func (rs *RestfulServer) ListAppointments(c *gin.Context) {
	appointments, err := rs.Companion.Reminder.ListAppointments(c.Request.Context(), currentUser(c))
	respond(c, appointments, err)
}

func (rs *RestfulServer) AddAppointment(c *gin.Context) {
	var req AppointmentRequest
	if err := appointmentRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	created, err := rs.Companion.Reminder.AddAppointment(c.Request.Context(), currentUser(c), models.Appointment{
		Title:      req.Title,
		Date:       req.Date,
		Time:       req.Time,
		Location:   req.Location,
		Notes:      req.Notes,
		DoctorName: req.DoctorName,
		ElderlyID:  req.ElderlyID,
	})
	respondCreated(c, created, err)
}

func (rs *RestfulServer) UpdateAppointment(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	appointment, err := rs.Companion.Reminder.UpdateAppointment(c.Request.Context(), currentUser(c), c.Param("id"), patch)
	respond(c, appointment, err)
}

func (rs *RestfulServer) DeleteAppointment(c *gin.Context) {
	err := rs.Companion.Reminder.DeleteAppointment(c.Request.Context(), currentUser(c), c.Param("id"))
	respondNoContent(c, err)
}

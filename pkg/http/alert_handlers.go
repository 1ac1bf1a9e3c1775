package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"carecompanion.app/companion-service/pkg/models"
)

type AlertRequest struct {
	ElderlyID   string `json:"elderlyId,omitempty" zog:"elderlyId"`
	CaregiverID string `json:"caregiverId" zog:"caregiverId"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Message     string `json:"message"`
}

var alertRequestSchema = z.Struct(z.Shape{
	"ElderlyID":   z.String(),
	"CaregiverID": z.String().Required(),
	"Type": z.String().Required().OneOf([]string{
		string(models.AlertTypeMissedMedication),
		string(models.AlertTypeMissedAppointment),
		string(models.AlertTypeEmergency),
		string(models.AlertTypeInactivity),
		string(models.AlertTypeCheckIn),
	}),
	"Title":   z.String().Required(),
	"Message": z.String(),
})

type AlertActionRequest struct {
	Details string `json:"details"`
}

func (rs *RestfulServer) ListAlerts(c *gin.Context) {
	alerts, err := rs.Companion.Alert.ListAlerts(c.Request.Context(), currentUser(c))
	respond(c, alerts, err)
}

// AddAlert records an alert between the caller and one of their connected users.
func (rs *RestfulServer) AddAlert(c *gin.Context) {
	var req AlertRequest
	if err := alertRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	alert, err := rs.Companion.Alert.RaiseAlert(c.Request.Context(), currentUser(c), models.Alert{
		ElderlyID:   req.ElderlyID,
		CaregiverID: req.CaregiverID,
		Type:        models.AlertType(req.Type),
		Title:       req.Title,
		Message:     req.Message,
	})
	respondCreated(c, alert, err)
}

func (rs *RestfulServer) UnreadAlerts(c *gin.Context) {
	alerts, err := rs.Companion.Alert.UnreadAlerts(c.Request.Context(), currentUser(c))
	respond(c, alerts, err)
}

// RecentAlerts takes an optional limit; zero or absent uses the store default.
func (rs *RestfulServer) RecentAlerts(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	alerts, err := rs.Companion.Alert.RecentAlerts(c.Request.Context(), currentUser(c), limit)
	respond(c, alerts, err)
}

func (rs *RestfulServer) MarkAlertRead(c *gin.Context) {
	alert, err := rs.Companion.Alert.MarkAlertAsRead(c.Request.Context(), currentUser(c), c.Param("id"))
	respond(c, alert, err)
}

func (rs *RestfulServer) MarkAlertAction(c *gin.Context) {
	var req AlertActionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := rs.Companion.Alert.MarkAlertActionTaken(c.Request.Context(), currentUser(c), c.Param("id"), req.Details)
	respond(c, alert, err)
}

func (rs *RestfulServer) DeleteAlert(c *gin.Context) {
	err := rs.Companion.Alert.DeleteAlert(c.Request.Context(), currentUser(c), c.Param("id"))
	respondNoContent(c, err)
}

func (rs *RestfulServer) TriggerEmergency(c *gin.Context) {
	alerts, err := rs.Companion.Alert.TriggerEmergency(c.Request.Context(), currentUser(c))
	respondCreated(c, alerts, err)
}

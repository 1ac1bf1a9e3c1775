package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"carecompanion.app/companion-service/pkg/models"
)

var roleValues = []string{string(models.RoleElderly), string(models.RoleCaregiver)}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
}

var registerRequestSchema = z.Struct(z.Shape{
	"Name":     z.String().Required(),
	"Email":    z.String().Required().Email(),
	"Password": z.String().Required().Min(6),
	"Role":     z.String().Required().OneOf(roleValues),
	"Phone":    z.String(),
})

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Email":    z.String().Required(),
	"Password": z.String().Required(),
})

type SessionResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (rs *RestfulServer) startSession(c *gin.Context, status int, user *models.User) {
	token, _, err := rs.Auth.Issue(user)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(status, SessionResponse{Token: token, User: user})
}

func (rs *RestfulServer) Register(c *gin.Context) {
	var req RegisterRequest
	if err := registerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Companion.Identity.Register(c.Request.Context(), models.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.Role(req.Role),
		Phone:    req.Phone,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	rs.startSession(c, http.StatusCreated, user)
}

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Companion.Identity.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	rs.startSession(c, http.StatusOK, user)
}

func (rs *RestfulServer) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	if err := rs.Auth.Revoke(ctx, currentClaims(c)); err != nil {
		abortWithError(c, err)
		return
	}
	if err := rs.Companion.Identity.Logout(ctx, currentUser(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *RestfulServer) GetMe(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

func (rs *RestfulServer) PatchMe(c *gin.Context) {
	var patch models.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := rs.Companion.Identity.UpdateUser(c.Request.Context(), currentUser(c).ID, patch)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (rs *RestfulServer) GetDashboard(c *gin.Context) {
	dashboard, err := rs.Companion.Dashboard(c.Request.Context(), currentUser(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	user := currentUser(c)

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(user.ID, req.Rate, req.Burst)
	serverLogger().Info("Updated rate limit", zap.String("user_id", user.ID), zap.Float64("rate", req.Rate), zap.Int("burst", req.Burst))

	c.Status(http.StatusOK)
}

type NotificationSettingsResponse struct {
	Enabled bool `json:"enabled"`
}

func (rs *RestfulServer) GetNotificationSettings(c *gin.Context) {
	enabled, err := rs.Companion.Preference.NotificationsEnabled(c.Request.Context(), currentUser(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, NotificationSettingsResponse{Enabled: enabled})
}

func (rs *RestfulServer) ToggleNotifications(c *gin.Context) {
	enabled, err := rs.Companion.Preference.ToggleNotifications(c.Request.Context(), currentUser(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, NotificationSettingsResponse{Enabled: enabled})
}

func (rs *RestfulServer) RequestPermissions(c *gin.Context) {
	granted, err := rs.Companion.Preference.RequestPermissions(c.Request.Context(), currentUser(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"granted": granted})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

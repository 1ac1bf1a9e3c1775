package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"carecompanion.app/companion-service/pkg/companion/mocks"
	_ "carecompanion.app/companion-service/pkg/testing"

	"carecompanion.app/companion-service/pkg/auth"
	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/companion"
	"carecompanion.app/companion-service/pkg/db"
	"carecompanion.app/companion-service/pkg/models"
	"carecompanion.app/companion-service/pkg/notify"
	"carecompanion.app/companion-service/pkg/storage"
)

func setupTestServerWithLimiter(t *testing.T, limiter *companion.RateLimiterStore) (*RestfulServer, *mocks.MockINotifier) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockINotifier(ctrl)

	kv := storage.NewGormKV(db.GetInstance(db.UseMemorySqliteDialector()))
	rs := &RestfulServer{
		Server:           gin.New(),
		Companion:        companion.New(kv, notifier, nil),
		Auth:             auth.NewIssuer("test-secret", time.Hour, kv),
		RateLimiterStore: limiter,
		CorsOrigins:      []string{"*"},
	}

	rs.Setup()

	return rs, notifier
}

func setupTestServer(t *testing.T) (*RestfulServer, *mocks.MockINotifier) {
	// default we use no limiter
	return setupTestServerWithLimiter(t, nil)
}

func allowNotifications(notifier *mocks.MockINotifier) {
	notifier.EXPECT().
		ScheduleReminder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(notify.Result{Success: true, ID: uuid.NewString()}).
		AnyTimes()
	notifier.EXPECT().
		Cancel(gomock.Any(), gomock.Any()).
		Return(notify.Result{Success: true}).
		AnyTimes()
	notifier.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(notify.Result{Success: true, ID: uuid.NewString()}).
		AnyTimes()
}

func doRequest(rs *RestfulServer, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func registerSession(t *testing.T, rs *RestfulServer, name string, role models.Role) SessionResponse {
	t.Helper()
	w := doRequest(rs, http.MethodPost, "/auth/register", "", RegisterRequest{
		Name:     name,
		Email:    uuid.NewString()[:8] + "@example.com",
		Password: "secret-pass",
		Role:     string(role),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var session SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.NotEmpty(t, session.Token)
	return session
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealthCheck(t *testing.T) {
	common.SetTestLoggerNop()
	rs, _ := setupTestServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRegisterLoginLogout(t *testing.T) {
	common.SetTestLoggerNop()
	rs, _ := setupTestServer(t)

	session := registerSession(t, rs, "Margaret", models.RoleElderly)
	assert.Equal(t, models.RoleElderly, session.User.Role)

	w := doRequest(rs, http.MethodGet, "/me", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, session.User.ID, decode[models.User](t, w).ID)

	w = doRequest(rs, http.MethodPost, "/auth/login", "", LoginRequest{Email: session.User.Email, Password: "secret-pass"})
	require.Equal(t, http.StatusOK, w.Code)
	second := decode[SessionResponse](t, w)
	assert.Equal(t, session.User.ID, second.User.ID)

	w = doRequest(rs, http.MethodPost, "/auth/logout", session.Token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(rs, http.MethodGet, "/me", session.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// other sessions of the same user stay valid
	w = doRequest(rs, http.MethodGet, "/me", second.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()
	rs, _ := setupTestServer(t)

	{
		// empty payload should be rejected
		w := doRequest(rs, http.MethodPost, "/auth/register", "", []byte("{}"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		w := doRequest(rs, http.MethodPost, "/auth/register", "", RegisterRequest{
			Name: "Bob", Email: "bob@example.com", Password: "secret-pass", Role: "nurse",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		session := registerSession(t, rs, "Margaret", models.RoleElderly)
		w := doRequest(rs, http.MethodPost, "/auth/register", "", RegisterRequest{
			Name: "Other", Email: session.User.Email, Password: "secret-pass", Role: "caregiver",
		})
		assert.Equal(t, http.StatusConflict, w.Code)

		w = doRequest(rs, http.MethodPost, "/auth/login", "", LoginRequest{Email: session.User.Email, Password: "wrong-pass"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	{
		w := doRequest(rs, http.MethodGet, "/reminders", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = doRequest(rs, http.MethodGet, "/reminders", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestPatchMe(t *testing.T) {
	common.SetTestLoggerNop()
	rs, _ := setupTestServer(t)
	session := registerSession(t, rs, "Margaret", models.RoleElderly)

	w := doRequest(rs, http.MethodPatch, "/me", session.Token, map[string]any{"phone": "555-0100", "role": "caregiver"})
	require.Equal(t, http.StatusOK, w.Code)

	user := decode[models.User](t, w)
	assert.Equal(t, "555-0100", user.Phone)
	assert.Equal(t, models.RoleElderly, user.Role)
}

func TestReminderRoutes(t *testing.T) {
	common.SetTestLoggerNop()
	rs, notifier := setupTestServer(t)
	allowNotifications(notifier)
	session := registerSession(t, rs, "Margaret", models.RoleElderly)

	w := doRequest(rs, http.MethodPost, "/reminders", session.Token, ReminderRequest{
		Type:      "hydration",
		Title:     "Drink water",
		Time:      "08:00",
		Recurring: true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Reminder](t, w)
	assert.Equal(t, session.User.ID, created.ElderlyID)
	assert.NotEmpty(t, created.NotificationID)

	w = doRequest(rs, http.MethodGet, "/reminders", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Reminder](t, w), 1)

	w = doRequest(rs, http.MethodPatch, "/reminders/"+created.ID, session.Token, map[string]any{"title": "Drink a glass of water"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Drink a glass of water", decode[models.Reminder](t, w).Title)

	w = doRequest(rs, http.MethodPost, "/reminders/"+created.ID+"/complete", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	completed := decode[models.Reminder](t, w)
	assert.True(t, completed.Completed)
	assert.Empty(t, completed.NotificationID)

	w = doRequest(rs, http.MethodGet, "/reminders/missed", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.Reminder](t, w))

	w = doRequest(rs, http.MethodGet, "/elderly/"+session.User.ID+"/reminders", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Reminder](t, w), 1)

	w = doRequest(rs, http.MethodDelete, "/reminders/"+created.ID, session.Token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(rs, http.MethodGet, "/reminders/today", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.Reminder](t, w))
}

func TestReminderRoutes_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	{
		rs, _ := setupTestServer(t)
		session := registerSession(t, rs, "Margaret", models.RoleElderly)
		// empty payload should be rejected
		w := doRequest(rs, http.MethodPost, "/reminders", session.Token, []byte("{}"))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doRequest(rs, http.MethodPost, "/reminders", session.Token, ReminderRequest{Type: "custom", Title: "Walk", Time: "25:00"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doRequest(rs, http.MethodPatch, "/reminders/missing", session.Token, map[string]any{"title": "x"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	{
		rs, _ := setupTestServer(t)
		session := registerSession(t, rs, "Margaret", models.RoleElderly)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockIReminder := mocks.NewMockIReminder(ctrl)
		rs.Companion.Reminder = mockIReminder
		mockIReminder.EXPECT().
			MissedReminders(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("just causing error")).
			Times(1)

		w := doRequest(rs, http.MethodGet, "/reminders/missed", session.Token, nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	}
}

func TestMedicationAndAppointmentRoutes(t *testing.T) {
	common.SetTestLoggerNop()
	rs, _ := setupTestServer(t)
	session := registerSession(t, rs, "Margaret", models.RoleElderly)

	w := doRequest(rs, http.MethodPost, "/medications", session.Token, models.Medication{
		Name:      "Metformin",
		Dosage:    "500mg",
		Frequency: "twice daily",
		Schedule:  []models.MedicationSchedule{{Time: "08:00", Days: []string{"monday"}}},
		StartDate: "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	medication := decode[models.Medication](t, w)

	w = doRequest(rs, http.MethodPatch, "/medications/"+medication.ID, session.Token, map[string]any{"dosage": "850mg"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "850mg", decode[models.Medication](t, w).Dosage)

	w = doRequest(rs, http.MethodDelete, "/medications/"+medication.ID, session.Token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(rs, http.MethodPost, "/appointments", session.Token, AppointmentRequest{
		Title: "Cardiology", Date: "2024-03-12", Time: "10:30", DoctorName: "Dr. Patel",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	appointment := decode[models.Appointment](t, w)
	assert.Equal(t, session.User.ID, appointment.ElderlyID)

	w = doRequest(rs, http.MethodGet, "/appointments", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Appointment](t, w), 1)

	w = doRequest(rs, http.MethodPost, "/appointments", session.Token, AppointmentRequest{Title: "Dentist", Date: "12/03/2024", Time: "10:30"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func connect(t *testing.T, rs *RestfulServer, elderly, caregiver SessionResponse) {
	t.Helper()
	w := doRequest(rs, http.MethodPost, "/connections", elderly.Token, ConnectionRequestBody{Email: caregiver.User.Email})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	request := decode[models.ConnectionRequest](t, w)

	w = doRequest(rs, http.MethodPost, "/connections/"+request.ID+"/accept", caregiver.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestConnectionRoutes(t *testing.T) {
	common.SetTestLoggerNop()
	rs, _ := setupTestServer(t)
	elderly := registerSession(t, rs, "Margaret", models.RoleElderly)
	caregiver := registerSession(t, rs, "Claire", models.RoleCaregiver)

	w := doRequest(rs, http.MethodPost, "/connections", elderly.Token, ConnectionRequestBody{Email: caregiver.User.Email})
	require.Equal(t, http.StatusCreated, w.Code)
	request := decode[models.ConnectionRequest](t, w)
	assert.Equal(t, models.ConnectionStatusPending, request.Status)

	w = doRequest(rs, http.MethodGet, "/connections/pending", caregiver.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.ConnectionRequest](t, w), 1)

	// only the recipient may answer
	w = doRequest(rs, http.MethodPost, "/connections/"+request.ID+"/accept", elderly.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(rs, http.MethodPost, "/connections/"+request.ID+"/accept", caregiver.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(rs, http.MethodPost, "/connections/"+request.ID+"/reject", caregiver.Token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(rs, http.MethodGet, "/connections/connected", elderly.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []models.ConnectedUser{{Email: caregiver.User.Email, Name: "Claire", Role: models.RoleCaregiver}},
		decode[[]models.ConnectedUser](t, w))

	w = doRequest(rs, http.MethodGet, "/connections", caregiver.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.ConnectionRequest](t, w), 1)

	w = doRequest(rs, http.MethodPost, "/connections", elderly.Token, ConnectionRequestBody{Email: "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAlertRoutes(t *testing.T) {
	common.SetTestLoggerNop()
	rs, notifier := setupTestServer(t)
	allowNotifications(notifier)
	elderly := registerSession(t, rs, "Margaret", models.RoleElderly)
	caregiver := registerSession(t, rs, "Claire", models.RoleCaregiver)

	w := doRequest(rs, http.MethodPost, "/alerts/emergency", elderly.Token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	connect(t, rs, elderly, caregiver)

	w = doRequest(rs, http.MethodPost, "/alerts/emergency", caregiver.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(rs, http.MethodPost, "/alerts/emergency", elderly.Token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	raised := decode[[]models.Alert](t, w)
	require.Len(t, raised, 1)
	assert.Equal(t, caregiver.User.ID, raised[0].CaregiverID)

	w = doRequest(rs, http.MethodPost, "/alerts", elderly.Token, AlertRequest{
		CaregiverID: caregiver.User.ID, Type: "check_in", Title: "Morning check-in", Message: "All good",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	checkIn := decode[models.Alert](t, w)
	assert.Equal(t, elderly.User.ID, checkIn.ElderlyID)

	w = doRequest(rs, http.MethodGet, "/alerts/unread", caregiver.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Alert](t, w), 2)

	w = doRequest(rs, http.MethodPost, "/alerts/"+raised[0].ID+"/read", caregiver.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[models.Alert](t, w).Read)

	w = doRequest(rs, http.MethodPost, "/alerts/"+raised[0].ID+"/action", caregiver.Token, AlertActionRequest{Details: "Called her"})
	require.Equal(t, http.StatusOK, w.Code)
	acted := decode[models.Alert](t, w)
	assert.True(t, acted.ActionTaken)
	assert.Equal(t, "Called her", acted.ActionDetails)

	w = doRequest(rs, http.MethodGet, "/alerts/recent?limit=1", caregiver.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Alert](t, w), 1)

	w = doRequest(rs, http.MethodGet, "/alerts/recent?limit=abc", caregiver.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(rs, http.MethodDelete, "/alerts/"+checkIn.ID, caregiver.Token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(rs, http.MethodGet, "/dashboard", caregiver.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[models.Dashboard](t, w).UnreadAlerts)
}

func TestAlertRoutes_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()
	rs, notifier := setupTestServer(t)
	allowNotifications(notifier)
	elderly := registerSession(t, rs, "Margaret", models.RoleElderly)
	caregiver := registerSession(t, rs, "Claire", models.RoleCaregiver)
	stranger := registerSession(t, rs, "Sam", models.RoleCaregiver)

	w := doRequest(rs, http.MethodPost, "/alerts", elderly.Token, AlertRequest{
		CaregiverID: stranger.User.ID, Type: "emergency", Title: "Help",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	connect(t, rs, elderly, caregiver)

	w = doRequest(rs, http.MethodPost, "/alerts", elderly.Token, AlertRequest{
		CaregiverID: stranger.User.ID, Type: "emergency", Title: "Help",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(rs, http.MethodPost, "/alerts", stranger.Token, AlertRequest{
		ElderlyID: elderly.User.ID, CaregiverID: stranger.User.ID, Type: "inactivity", Title: "No movement",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(rs, http.MethodPost, "/alerts", caregiver.Token, AlertRequest{
		ElderlyID: elderly.User.ID, CaregiverID: caregiver.User.ID, Type: "inactivity", Title: "No movement",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(rs, http.MethodPost, "/alerts", elderly.Token, AlertRequest{
		CaregiverID: caregiver.User.ID, Type: "party", Title: "Cake",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(rs, http.MethodGet, "/alerts/unread", stranger.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.Alert](t, w))
}

func TestNotificationSettingsRoutes(t *testing.T) {
	common.SetTestLoggerNop()
	rs, notifier := setupTestServer(t)
	session := registerSession(t, rs, "Margaret", models.RoleElderly)

	w := doRequest(rs, http.MethodGet, "/settings/notifications", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[NotificationSettingsResponse](t, w).Enabled)

	notifier.EXPECT().RequestPermissions(gomock.Any()).Return(false).Times(1)
	w = doRequest(rs, http.MethodPost, "/settings/notifications/toggle", session.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	notifier.EXPECT().RequestPermissions(gomock.Any()).Return(true).Times(1)
	w = doRequest(rs, http.MethodPost, "/settings/notifications/permissions", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"granted":true}`, w.Body.String())

	w = doRequest(rs, http.MethodPost, "/settings/notifications/toggle", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[NotificationSettingsResponse](t, w).Enabled)
}

func TestRemindersWithLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs, _ := setupTestServerWithLimiter(t, companion.NewRateLimiterStore(2, 2)) // 2 req/sec, burst 2
	session := registerSession(t, rs, "Margaret", models.RoleElderly)

	// Simulate 3 requests in quick succession, only 2 should be allowed
	for i := range 3 {
		w := doRequest(rs, http.MethodGet, "/reminders", session.Token, nil)
		if i < 2 {
			require.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, w.Code, "request %d should be rate limited", i+1)
		}
	}

	w := doRequest(rs, http.MethodPost, "/limiter", session.Token, LimiterRequest{Rate: 2, Burst: 2})
	require.Equal(t, http.StatusOK, w.Code, "limiter request should be allowed")

	w = doRequest(rs, http.MethodGet, "/reminders", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, "request after resetting the limiter should be allowed")
}

func TestPostLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	{
		rs, _ := setupTestServerWithLimiter(t, companion.NewRateLimiterStore(2, 2))
		session := registerSession(t, rs, "Margaret", models.RoleElderly)
		// empty payload should be rejected
		w := doRequest(rs, http.MethodPost, "/limiter", session.Token, []byte("{}"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		rs, _ := setupTestServer(t) // default without limiter store
		session := registerSession(t, rs, "Margaret", models.RoleElderly)
		// without limiter store setting the limiter is accepted but has no effect
		w := doRequest(rs, http.MethodPost, "/limiter", session.Token, LimiterRequest{Rate: 0.001, Burst: 1})
		require.Equal(t, http.StatusOK, w.Code)

		for range 3 {
			w = doRequest(rs, http.MethodGet, "/alerts", session.Token, nil)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	}
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/utilibill/backend/internal/domain/notification"
	"github.com/utilibill/backend/internal/domain/shared"
)

type fakeReminderService struct {
	notifications map[uuid.UUID]*notification.Notification
	paidBills     map[uuid.UUID]bool
	knownBills    map[uuid.UUID]bool
}

func newFakeReminderService() *fakeReminderService {
	return &fakeReminderService{
		notifications: make(map[uuid.UUID]*notification.Notification),
		paidBills:     make(map[uuid.UUID]bool),
		knownBills:    make(map[uuid.UUID]bool),
	}
}

func (f *fakeReminderService) BuildReminder(_ context.Context, billID uuid.UUID, overrideMessage string) (*notification.Notification, error) {
	if !f.knownBills[billID] {
		return nil, shared.ErrNotFound
	}
	if f.paidBills[billID] {
		return nil, shared.ErrAlreadyPaid
	}
	message := overrideMessage
	if message == "" {
		message = "Your bill of BDT 500.00 is due on 15 Sep 2026. Please pay before the due date to avoid disconnection."
	}
	n, err := notification.NewNotification(uuid.New(), &billID, "Payment reminder", message)
	if err != nil {
		return nil, err
	}
	f.notifications[n.ID] = n
	return n, nil
}

func (f *fakeReminderService) MarkRead(_ context.Context, notificationID, customerID uuid.UUID) error {
	n, ok := f.notifications[notificationID]
	if !ok || !n.BelongsTo(customerID) {
		return shared.ErrNotFound
	}
	n.MarkRead()
	return nil
}

func (f *fakeReminderService) ListForCustomer(_ context.Context, customerID uuid.UUID, limit int) ([]*notification.Notification, error) {
	var out []*notification.Notification
	for _, n := range f.notifications {
		if n.BelongsTo(customerID) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SentAt.After(out[j].SentAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func setupNotificationRouter(service ReminderService) *gin.Engine {
	engine := gin.New()
	h := NewNotificationHandler(service, zap.NewNop())
	h.RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func TestNotificationHandler_BuildReminder(t *testing.T) {
	t.Run("builds reminder with default message", func(t *testing.T) {
		service := newFakeReminderService()
		router := setupNotificationRouter(service)

		billID := uuid.New()
		service.knownBills[billID] = true

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/bills/"+billID.String()+"/reminders", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w.Body)
		data := resp["data"].(map[string]any)
		assert.Contains(t, data["message"], "due on")
		assert.Equal(t, billID.String(), data["bill_id"])
	})

	t.Run("builds reminder with override message", func(t *testing.T) {
		service := newFakeReminderService()
		router := setupNotificationRouter(service)

		billID := uuid.New()
		service.knownBills[billID] = true

		body, _ := json.Marshal(map[string]string{"message": "Final notice."})
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/bills/"+billID.String()+"/reminders", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w.Body)
		data := resp["data"].(map[string]any)
		assert.Equal(t, "Final notice.", data["message"])
	})

	t.Run("returns 404 for unknown bill", func(t *testing.T) {
		router := setupNotificationRouter(newFakeReminderService())

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/bills/"+uuid.New().String()+"/reminders", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 409 for paid bill", func(t *testing.T) {
		service := newFakeReminderService()
		router := setupNotificationRouter(service)

		billID := uuid.New()
		service.knownBills[billID] = true
		service.paidBills[billID] = true

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/bills/"+billID.String()+"/reminders", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	newNotification := func(t *testing.T, service *fakeReminderService, customerID uuid.UUID) *notification.Notification {
		t.Helper()
		n, err := notification.NewNotification(customerID, nil, "Payment reminder", "pay up")
		require.NoError(t, err)
		service.notifications[n.ID] = n
		return n
	}

	markRead := func(router *gin.Engine, notificationID uuid.UUID, customerID string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]string{"customer_id": customerID})
		w := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/api/v1/notifications/"+notificationID.String()+"/read", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("owner marks notification read", func(t *testing.T) {
		service := newFakeReminderService()
		router := setupNotificationRouter(service)
		customerID := uuid.New()
		n := newNotification(t, service, customerID)

		w := markRead(router, n.ID, customerID.String())

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.True(t, n.IsRead)
	})

	t.Run("foreign customer gets 404", func(t *testing.T) {
		service := newFakeReminderService()
		router := setupNotificationRouter(service)
		n := newNotification(t, service, uuid.New())

		w := markRead(router, n.ID, uuid.New().String())

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, n.IsRead)
	})

	t.Run("rejects missing customer_id", func(t *testing.T) {
		service := newFakeReminderService()
		router := setupNotificationRouter(service)
		n := newNotification(t, service, uuid.New())

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/api/v1/notifications/"+n.ID.String()+"/read", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNotificationHandler_ListForCustomer(t *testing.T) {
	service := newFakeReminderService()
	router := setupNotificationRouter(service)

	customerID := uuid.New()
	for i := 0; i < 3; i++ {
		n, err := notification.NewNotification(customerID, nil, "Payment reminder", "pay up")
		require.NoError(t, err)
		n.SentAt = time.Now().Add(time.Duration(i) * time.Minute)
		service.notifications[n.ID] = n
	}

	t.Run("lists notifications with default limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/customers/"+customerID.String()+"/notifications", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w.Body)
		data := resp["data"].([]any)
		assert.Len(t, data, 3)
		meta := resp["meta"].(map[string]any)
		assert.Equal(t, float64(50), meta["limit"])
	})

	t.Run("honors limit query", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/customers/"+customerID.String()+"/notifications?limit=2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w.Body)
		data := resp["data"].([]any)
		assert.Len(t, data, 2)
	})

	t.Run("rejects non-numeric limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/customers/"+customerID.String()+"/notifications?limit=lots", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

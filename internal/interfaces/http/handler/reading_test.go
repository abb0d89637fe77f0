package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appbilling "github.com/utilibill/backend/internal/application/billing"
	"github.com/utilibill/backend/internal/domain/metering"
	"github.com/utilibill/backend/internal/domain/shared"
	"github.com/utilibill/backend/internal/domain/tariff"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeReadingService struct {
	readings map[uuid.UUID]*metering.Reading
	recorded *metering.Reading
}

func newFakeReadingService() *fakeReadingService {
	return &fakeReadingService{readings: make(map[uuid.UUID]*metering.Reading)}
}

func (f *fakeReadingService) RecordReading(_ context.Context, input appbilling.RecordReadingInput) (*metering.Reading, error) {
	r, err := metering.NewReading(input.MeterID, input.CustomerID, input.Month, input.UnitsConsumed, input.Class, input.RecordedAt)
	if err != nil {
		return nil, err
	}
	f.recorded = r
	f.readings[r.ID] = r
	return r, nil
}

func (f *fakeReadingService) GetReading(_ context.Context, id uuid.UUID) (*metering.Reading, error) {
	r, ok := f.readings[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return r, nil
}

func setupReadingRouter(service ReadingService) *gin.Engine {
	engine := gin.New()
	h := NewReadingHandler(service, zap.NewNop())
	h.RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func decodeResponse(t *testing.T, body *bytes.Buffer) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	return resp
}

func TestReadingHandler_Record(t *testing.T) {
	t.Run("records valid reading", func(t *testing.T) {
		service := newFakeReadingService()
		router := setupReadingRouter(service)

		payload := map[string]any{
			"meter_id":        uuid.New().String(),
			"customer_id":     uuid.New().String(),
			"month":           "2026-08",
			"units_consumed":  250,
			"connection_type": "residential",
		}
		body, _ := json.Marshal(payload)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/readings", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w.Body)
		assert.Equal(t, true, resp["success"])
		data := resp["data"].(map[string]any)
		assert.Equal(t, "2026-08", data["month"])
		assert.Equal(t, float64(250), data["units_consumed"])
		require.NotNil(t, service.recorded)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		router := setupReadingRouter(newFakeReadingService())

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/readings", bytes.NewReader([]byte(`{"meter_id":"not-a-uuid"}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w.Body)
		assert.Equal(t, false, resp["success"])
	})

	t.Run("rejects unknown connection type", func(t *testing.T) {
		router := setupReadingRouter(newFakeReadingService())

		payload := map[string]any{
			"meter_id":        uuid.New().String(),
			"customer_id":     uuid.New().String(),
			"month":           "2026-08",
			"units_consumed":  10,
			"connection_type": "industrial",
		}
		body, _ := json.Marshal(payload)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/readings", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps domain validation to 400", func(t *testing.T) {
		router := setupReadingRouter(newFakeReadingService())

		payload := map[string]any{
			"meter_id":       uuid.New().String(),
			"customer_id":    uuid.New().String(),
			"month":          "08-2026",
			"units_consumed": 10,
		}
		body, _ := json.Marshal(payload)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/readings", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w.Body)
		errInfo := resp["error"].(map[string]any)
		assert.Equal(t, "ERR_INVALID_INPUT", errInfo["code"])
	})
}

func TestReadingHandler_Get(t *testing.T) {
	service := newFakeReadingService()
	router := setupReadingRouter(service)

	reading, err := metering.NewReading(uuid.New(), uuid.New(), "2026-08", 120, tariff.ClassCommercial, time.Now())
	require.NoError(t, err)
	service.readings[reading.ID] = reading

	t.Run("returns reading by ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/readings/"+reading.ID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w.Body)
		data := resp["data"].(map[string]any)
		assert.Equal(t, reading.ID.String(), data["id"])
		assert.Equal(t, "commercial", data["connection_type"])
	})

	t.Run("returns 404 for unknown reading", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/readings/"+uuid.New().String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects non-UUID path parameter", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/readings/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/dto"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/models"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// --- Mock FlightService ---

type mockFlightService struct {
	createFn  func(ctx context.Context, flight *models.Flight) error
	getFn     func(ctx context.Context, id uint) (*models.Flight, error)
	listFn    func(ctx context.Context) ([]models.Flight, error)
	updateFn  func(ctx context.Context, id uint, update service.FlightUpdate) (*models.Flight, error)
	deleteFn  func(ctx context.Context, id uint) error
	seatsFn   func(ctx context.Context, flightID uint) ([]string, error)
}

func (m *mockFlightService) CreateFlight(ctx context.Context, flight *models.Flight) error {
	return m.createFn(ctx, flight)
}
func (m *mockFlightService) GetFlight(ctx context.Context, id uint) (*models.Flight, error) {
	return m.getFn(ctx, id)
}
func (m *mockFlightService) ListFlights(ctx context.Context) ([]models.Flight, error) {
	return m.listFn(ctx)
}
func (m *mockFlightService) UpdateFlight(ctx context.Context, id uint, update service.FlightUpdate) (*models.Flight, error) {
	return m.updateFn(ctx, id, update)
}
func (m *mockFlightService) DeleteFlight(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockFlightService) ReservedSeats(ctx context.Context, flightID uint) ([]string, error) {
	if m.seatsFn != nil {
		return m.seatsFn(ctx, flightID)
	}
	return nil, nil
}

const createFlightBody = `{
	"flight_number": "JJ1234",
	"origin": "São Paulo",
	"destination": "Rio de Janeiro",
	"departure_date": "2026-09-01T08:30:00Z",
	"total_seats": 180,
	"price": 350.5
}`

func TestCreateFlight_Handler_Success(t *testing.T) {
	svc := &mockFlightService{
		createFn: func(ctx context.Context, flight *models.Flight) error {
			flight.ID = 1
			flight.AvailableSeats = flight.TotalSeats
			return nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/flights", strings.NewReader(createFlightBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewFlightHandler(svc)
	err := h.CreateFlight(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.FlightResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "JJ1234", resp.FlightNumber)
	assert.Equal(t, 180, resp.AvailableSeats)
	assert.Equal(t, models.FlightScheduled, resp.Status)
	assert.Nil(t, resp.Weather)
}

func TestCreateFlight_Handler_MissingFields(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/flights", strings.NewReader(`{"flight_number":"JJ1234"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewFlightHandler(nil)
	err := h.CreateFlight(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateFlight_Handler_InvalidStatus(t *testing.T) {
	body := `{
		"flight_number": "JJ1234",
		"origin": "São Paulo",
		"destination": "Rio de Janeiro",
		"departure_date": "2026-09-01T08:30:00Z",
		"total_seats": 180,
		"status": "boarding"
	}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/flights", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewFlightHandler(nil)
	err := h.CreateFlight(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateFlight_Handler_DuplicateFlightNumber(t *testing.T) {
	svc := &mockFlightService{
		createFn: func(ctx context.Context, flight *models.Flight) error {
			return errors.New(`ERROR: duplicate key value violates unique constraint "idx_flights_flight_number"`)
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/flights", strings.NewReader(createFlightBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewFlightHandler(svc)
	err := h.CreateFlight(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestGetFlight_Handler_IncludesReservedSeats(t *testing.T) {
	svc := &mockFlightService{
		getFn: func(ctx context.Context, id uint) (*models.Flight, error) {
			return &models.Flight{
				ID:             id,
				FlightNumber:   "JJ1234",
				TotalSeats:     180,
				AvailableSeats: 178,
				Status:         models.FlightScheduled,
				DepartureDate:  time.Now().Add(24 * time.Hour),
			}, nil
		},
		seatsFn: func(ctx context.Context, flightID uint) ([]string, error) {
			return []string{"12A", "12B"}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/flights/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewFlightHandler(svc)
	err := h.GetFlight(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.FlightResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"12A", "12B"}, resp.ReservedSeats)
}

func TestGetFlight_Handler_NotFound(t *testing.T) {
	svc := &mockFlightService{
		getFn: func(ctx context.Context, id uint) (*models.Flight, error) {
			return nil, service.ErrFlightNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/flights/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	h := NewFlightHandler(svc)
	err := h.GetFlight(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestListFlights_Handler_Success(t *testing.T) {
	svc := &mockFlightService{
		listFn: func(ctx context.Context) ([]models.Flight, error) {
			return []models.Flight{
				{ID: 1, FlightNumber: "JJ1234"},
				{ID: 2, FlightNumber: "G31410"},
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/flights", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewFlightHandler(svc)
	err := h.ListFlights(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.FlightResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestUpdateFlight_Handler_Success(t *testing.T) {
	var captured service.FlightUpdate
	svc := &mockFlightService{
		updateFn: func(ctx context.Context, id uint, update service.FlightUpdate) (*models.Flight, error) {
			captured = update
			return &models.Flight{ID: id, FlightNumber: "JJ1234", Status: models.FlightDelayed}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/flights/1", strings.NewReader(`{"status":"delayed","price":410.0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewFlightHandler(svc)
	err := h.UpdateFlight(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Only the fields present in the body reach the service
	assert.Nil(t, captured.FlightNumber)
	assert.Nil(t, captured.TotalSeats)
	assert.NotNil(t, captured.Status)
	assert.Equal(t, models.FlightDelayed, *captured.Status)
	assert.NotNil(t, captured.Price)
	assert.Equal(t, 410.0, *captured.Price)
}

func TestUpdateFlight_Handler_RejectsZeroSeats(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/flights/1", strings.NewReader(`{"total_seats":0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewFlightHandler(nil)
	err := h.UpdateFlight(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestUpdateFlight_Handler_SeatsBelowClaims(t *testing.T) {
	svc := &mockFlightService{
		updateFn: func(ctx context.Context, id uint, update service.FlightUpdate) (*models.Flight, error) {
			return nil, service.ErrTotalSeatsBelowClaims
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/flights/1", strings.NewReader(`{"total_seats":2}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewFlightHandler(svc)
	err := h.UpdateFlight(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestUpdateFlight_Handler_NotFound(t *testing.T) {
	svc := &mockFlightService{
		updateFn: func(ctx context.Context, id uint, update service.FlightUpdate) (*models.Flight, error) {
			return nil, service.ErrFlightNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/flights/999", strings.NewReader(`{"price":100.0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	h := NewFlightHandler(svc)
	err := h.UpdateFlight(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestDeleteFlight_Handler_Success(t *testing.T) {
	svc := &mockFlightService{
		deleteFn: func(ctx context.Context, id uint) error { return nil },
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/flights/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewFlightHandler(svc)
	err := h.DeleteFlight(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteFlight_Handler_NotFound(t *testing.T) {
	svc := &mockFlightService{
		deleteFn: func(ctx context.Context, id uint) error { return service.ErrFlightNotFound },
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/flights/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	h := NewFlightHandler(svc)
	err := h.DeleteFlight(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

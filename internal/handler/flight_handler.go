package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/dto"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/models"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/service"
)

type FlightHandler struct {
	svc service.FlightService
}

func NewFlightHandler(svc service.FlightService) *FlightHandler {
	return &FlightHandler{svc: svc}
}

func (h *FlightHandler) RegisterRoutes(e *echo.Echo) {
	flights := e.Group("/api/flights")
	flights.GET("", h.ListFlights)
	flights.POST("", h.CreateFlight)
	flights.GET("/:id", h.GetFlight)
	flights.PUT("/:id", h.UpdateFlight)
	flights.DELETE("/:id", h.DeleteFlight)
}

func (h *FlightHandler) ListFlights(c echo.Context) error {
	flights, err := h.svc.ListFlights(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.FlightResponse, len(flights))
	for i, f := range flights {
		resp[i] = dto.ToFlightResponse(&f, nil)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) GetFlight(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid flight id")
	}

	flight, err := h.svc.GetFlight(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFlightNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "flight not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	seats, err := h.svc.ReservedSeats(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToFlightResponse(flight, seats))
}

func (h *FlightHandler) CreateFlight(c echo.Context) error {
	var req dto.CreateFlightRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	req.FlightNumber = strings.TrimSpace(req.FlightNumber)
	if req.FlightNumber == "" || req.Origin == "" || req.Destination == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "flight_number, origin and destination are required")
	}
	if req.TotalSeats < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "total_seats must be at least 1")
	}
	if req.DepartureDate.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "departure_date is required")
	}
	status := models.FlightScheduled
	if req.Status != "" {
		if !dto.ValidStatus(req.Status) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid flight status")
		}
		status = models.FlightStatus(req.Status)
	}

	flight := &models.Flight{
		FlightNumber:  req.FlightNumber,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		TotalSeats:    req.TotalSeats,
		Price:         req.Price,
		Status:        status,
	}

	if err := h.svc.CreateFlight(c.Request().Context(), flight); err != nil {
		if isDuplicateKey(err) {
			return echo.NewHTTPError(http.StatusConflict, "flight number already exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToFlightResponse(flight, nil))
}

func (h *FlightHandler) UpdateFlight(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid flight id")
	}

	var req dto.UpdateFlightRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.TotalSeats != nil && *req.TotalSeats < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "total_seats must be at least 1")
	}

	update := service.FlightUpdate{
		FlightNumber:  req.FlightNumber,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		TotalSeats:    req.TotalSeats,
		Price:         req.Price,
	}
	if req.Status != nil {
		if !dto.ValidStatus(*req.Status) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid flight status")
		}
		status := models.FlightStatus(*req.Status)
		update.Status = &status
	}

	flight, err := h.svc.UpdateFlight(c.Request().Context(), id, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFlightNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "flight not found")
		case errors.Is(err, service.ErrTotalSeatsBelowClaims):
			return echo.NewHTTPError(http.StatusConflict, "total_seats is below the number of reserved seats")
		case isDuplicateKey(err):
			return echo.NewHTTPError(http.StatusConflict, "flight number already exists")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToFlightResponse(flight, nil))
}

func (h *FlightHandler) DeleteFlight(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid flight id")
	}

	if err := h.svc.DeleteFlight(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrFlightNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "flight not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "flight removed successfully"})
}

func parseID(c echo.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}

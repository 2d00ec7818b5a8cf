package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/dto"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/service"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/flights/:flightId/reservations", h.ListFlightReservations)
	e.POST("/api/flights/:flightId/reservations", h.CreateReservation)
	e.GET("/api/reservations/code/:code", h.GetReservationByCode)
	e.POST("/api/reservations/:id/cancel", h.CancelReservation)
}

func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	flightID, err := parseID(c, "flightId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid flight id")
	}

	var req dto.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	req.PassengerName = strings.TrimSpace(req.PassengerName)
	req.PassengerEmail = strings.ToLower(strings.TrimSpace(req.PassengerEmail))
	req.PassengerDocument = strings.TrimSpace(req.PassengerDocument)
	req.SeatNumber = strings.ToUpper(strings.TrimSpace(req.SeatNumber))

	if req.PassengerName == "" || req.PassengerEmail == "" || req.PassengerDocument == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "passenger_name, passenger_email and passenger_document are required")
	}
	if !strings.Contains(req.PassengerEmail, "@") {
		return echo.NewHTTPError(http.StatusBadRequest, "passenger_email is not a valid email address")
	}
	if req.SeatNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "seat_number is required")
	}

	passenger := service.PassengerInfo{
		Name:     req.PassengerName,
		Email:    req.PassengerEmail,
		Document: req.PassengerDocument,
	}

	reservation, err := h.svc.CreateReservation(c.Request().Context(), flightID, passenger, req.SeatNumber)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFlightNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "flight not found")
		case errors.Is(err, service.ErrNoSeatsAvailable):
			return echo.NewHTTPError(http.StatusConflict, "no seats available on this flight")
		case errors.Is(err, service.ErrSeatTaken):
			return echo.NewHTTPError(http.StatusConflict, "this seat is already taken")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}

	if _, err := h.svc.CancelReservation(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "reservation not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "reservation cancelled successfully"})
}

func (h *ReservationHandler) GetReservationByCode(c echo.Context) error {
	code := strings.ToUpper(c.Param("code"))

	reservation, err := h.svc.GetReservationByCode(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "reservation not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *ReservationHandler) ListFlightReservations(c echo.Context) error {
	flightID, err := parseID(c, "flightId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid flight id")
	}

	reservations, err := h.svc.ListReservationsForFlight(c.Request().Context(), flightID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ReservationResponse, len(reservations))
	for i, r := range reservations {
		resp[i] = dto.ToReservationResponse(&r)
	}
	return c.JSON(http.StatusOK, resp)
}

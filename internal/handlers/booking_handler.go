package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/servibook/booking-api/internal/domain/booking"
	"github.com/servibook/booking-api/internal/domain/role"
	"github.com/servibook/booking-api/internal/httperr"
	"github.com/servibook/booking-api/internal/httpresp"
	"github.com/servibook/booking-api/internal/middleware"
	ucbooking "github.com/servibook/booking-api/internal/usecase/booking"
)

type BookingHandler struct {
	repo           domain.Repository
	createUC       *ucbooking.CreateBooking
	cancelUC       *ucbooking.CancelBooking
	availabilityUC *ucbooking.CheckAvailability
}

func NewBookingHandler(
	repo domain.Repository,
	createUC *ucbooking.CreateBooking,
	cancelUC *ucbooking.CancelBooking,
	availabilityUC *ucbooking.CheckAvailability,
) *BookingHandler {
	return &BookingHandler{
		repo:           repo,
		createUC:       createUC,
		cancelUC:       cancelUC,
		availabilityUC: availabilityUC,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	ServiceID   uint   `json:"service_id" binding:"required"`
	BookingDate string `json:"booking_date" binding:"required"` // YYYY-MM-DD
	TimeSlot    string `json:"time_slot" binding:"required"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		UserID:    userID,
		ServiceID: req.ServiceID,
		Date:      req.BookingDate,
		TimeSlot:  req.TimeSlot,
		Address:   req.Address,
		Notes:     req.Notes,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Booking date must be YYYY-MM-DD.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Service not found.")
		case httperr.IsBusiness(err, "slot_already_booked"):
			httperr.Conflict(c, "slot_already_booked", "Time slot already booked.")
		default:
			httperr.Internal(c, "failed_to_create_booking", "Could not create booking.")
		}
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.repo.ListBookingsForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	userRole, _ := c.MustGet(middleware.ContextUserRole).(string)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	b, err := h.repo.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_booking", "Could not load booking.")
		return
	}

	if b.UserID != userID && !role.Role(userRole).IsAdmin() {
		httperr.Forbidden(c, "not_authorized", "Not authorized.")
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "not_owner"):
			httperr.Forbidden(c, "not_authorized", "Not authorized.")
		default:
			httperr.Internal(c, "failed_to_cancel_booking", "Could not cancel booking.")
		}
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "A date is required.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		httperr.Internal(c, "failed_to_check_availability", "Could not check availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         date,
		"booked_slots": slots,
	})
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

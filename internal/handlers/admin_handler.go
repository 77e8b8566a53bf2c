package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servibook/booking-api/internal/domain/booking"
	"github.com/servibook/booking-api/internal/domain/role"
	"github.com/servibook/booking-api/internal/dto"
	"github.com/servibook/booking-api/internal/httperr"
	"github.com/servibook/booking-api/internal/httpresp"
	"github.com/servibook/booking-api/internal/models"
	ucbooking "github.com/servibook/booking-api/internal/usecase/booking"
)

type AdminHandler struct {
	db       *gorm.DB
	statusUC *ucbooking.UpdateBookingStatus
}

func NewAdminHandler(db *gorm.DB, statusUC *ucbooking.UpdateBookingStatus) *AdminHandler {
	return &AdminHandler{db: db, statusUC: statusUC}
}

// --------- Bookings ---------

// ListBookings applies status and day filters at the query layer; the
// free-text search runs in memory over the joined rows afterward, which
// is fine at this catalog's scale.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	q := h.db.Preload("User").Preload("Service")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	if dateStr := c.Query("date"); dateStr != "" {
		day, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		day = day.UTC()
		q = q.Where("booking_date >= ? AND booking_date < ?", day, day.Add(24*time.Hour))
	}

	var bookings []models.Booking
	if err := q.Order("created_at DESC").Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
		filtered := bookings[:0]
		for _, b := range bookings {
			if strings.Contains(strings.ToLower(b.User.Name), search) ||
				strings.Contains(strings.ToLower(b.User.Email), search) ||
				strings.Contains(strings.ToLower(b.Service.Name), search) {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}

	httpresp.List(c, bookings)
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.statusUC.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Invalid status.")
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "slot_already_booked"):
			httperr.Conflict(c, "slot_already_booked", "Time slot already booked.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Could not update booking status.")
		}
		return
	}

	httpresp.Action(c,
		fmt.Sprintf("Booking %s successfully. Email sent to customer.", b.Status),
		gin.H{"booking": b},
	)
}

func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	res := h.db.Delete(&models.Booking{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_booking", "Could not delete booking.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	httpresp.Action(c, "Booking deleted successfully", nil)
}

// --------- Dashboard ---------

func (h *AdminHandler) Dashboard(c *gin.Context) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	// Aggregates share one error slot; a zero from a failing store must
	// not pass for a real figure.
	var dashErr error
	keep := func(err error) {
		if dashErr == nil && err != nil {
			dashErr = err
		}
	}

	countBookings := func(conds ...any) int64 {
		var n int64
		q := h.db.Model(&models.Booking{})
		if len(conds) > 0 {
			q = q.Where(conds[0], conds[1:]...)
		}
		keep(q.Count(&n).Error)
		return n
	}

	var totalUsers, totalServices int64
	keep(h.db.Model(&models.User{}).Where("role = ?", string(role.User)).Count(&totalUsers).Error)
	keep(h.db.Model(&models.Service{}).Where("status = ?", models.ServiceStatusActive).Count(&totalServices).Error)

	// Revenue counts completed bookings; the monthly figure is gated on
	// the booking's creation date, matching the figure the dashboard has
	// always shown.
	var totalRevenue, monthlyRevenue float64
	keep(h.db.Model(&models.Booking{}).
		Where("status = ?", string(booking.StatusCompleted)).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&totalRevenue).Error)
	keep(h.db.Model(&models.Booking{}).
		Where("status = ? AND created_at >= ?", string(booking.StatusCompleted), startOfMonth).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&monthlyRevenue).Error)

	var recent []models.Booking
	keep(h.db.Preload("User").Preload("Service").
		Order("created_at DESC").
		Limit(10).
		Find(&recent).Error)

	var upcoming []models.Booking
	keep(h.db.Preload("User").Preload("Service").
		Where(
			"booking_date >= ? AND booking_date <= ? AND status IN ?",
			today, today.AddDate(0, 0, 7),
			booking.ActiveStatuses(),
		).
		Order("booking_date ASC").
		Find(&upcoming).Error)

	statistics := gin.H{
		"total_bookings":     countBookings(),
		"pending_bookings":   countBookings("status = ?", string(booking.StatusPending)),
		"confirmed_bookings": countBookings("status = ?", string(booking.StatusConfirmed)),
		"completed_bookings": countBookings("status = ?", string(booking.StatusCompleted)),
		"cancelled_bookings": countBookings("status = ?", string(booking.StatusCancelled)),
		"total_users":        totalUsers,
		"total_services":     totalServices,
		"total_revenue":      totalRevenue,
		"monthly_revenue":    monthlyRevenue,
		"today_bookings":     countBookings("booking_date >= ? AND booking_date < ?", today, today.Add(24*time.Hour)),
	}

	if dashErr != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Could not load dashboard.")
		return
	}

	httpresp.OK(c, gin.H{
		"statistics":        statistics,
		"recent_bookings":   dto.SummarizeBookings(recent),
		"upcoming_bookings": dto.SummarizeBookings(upcoming),
	})
}

// --------- Users ---------

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("created_at DESC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Could not list users.")
		return
	}
	// PasswordHash is json:"-", so the credential never leaves this layer.
	httpresp.List(c, users)
}

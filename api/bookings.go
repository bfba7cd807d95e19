package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/washify/booking/internal/domain"
	"github.com/washify/booking/internal/service/booking"
	"github.com/washify/booking/internal/validation"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service booking.BookingUseCase
	log     *zap.SugaredLogger
}

type bookingResponse struct {
	ID              string          `json:"id"`
	BookingNumber   string          `json:"booking_number"`
	Status          string          `json:"status"`
	BookingDate     string          `json:"booking_date"`
	BookingTime     string          `json:"booking_time"`
	Address         string          `json:"address"`
	PostalCode      string          `json:"postal_code"`
	City            string          `json:"city"`
	SpecialRequests string          `json:"special_requests,omitempty"`
	TotalPrice      float64         `json:"total_price"`
	Customer        customerView    `json:"customer"`
	ServicePackage  packageResponse `json:"service_package"`
}

type customerView struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CarModel     string `json:"car_model"`
	LicensePlate string `json:"license_plate,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func NewBookingHandler(service booking.BookingUseCase, log *zap.SugaredLogger) *BookingHandler {
	return &BookingHandler{service: service, log: log}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/:number", h.get)
}

// RegisterAdmin mounts the admin-only routes; the caller attaches auth.
func (h *BookingHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.PATCH("/:id/status", h.updateStatus)
}

func (h *BookingHandler) create(c *gin.Context) {
	var sub validation.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), sub)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
			return
		}
		h.log.Errorw("create booking failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) get(c *gin.Context) {
	number := c.Param("number")
	details, err := h.service.GetByNumber(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		h.log.Errorw("lookup booking failed", "booking_number", number, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(details))
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		h.log.Errorw("list bookings failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id := c.Param("id")
	updated, err := h.service.UpdateStatus(c.Request.Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, domain.ErrTransitionNotAllowed):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case !domain.KnownStatus(domain.BookingStatus(req.Status)):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		default:
			h.log.Errorw("update status failed", "id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         updated.ID,
		"status":     string(updated.Status),
		"updated_at": updated.UpdatedAt,
	})
}

func toBookingResponse(d *domain.BookingDetails) bookingResponse {
	return bookingResponse{
		ID:              d.ID,
		BookingNumber:   d.BookingNumber,
		Status:          string(d.Status),
		BookingDate:     d.BookingDate.Format(validation.DateLayout),
		BookingTime:     d.BookingTime,
		Address:         d.Address,
		PostalCode:      d.PostalCode,
		City:            d.City,
		SpecialRequests: d.SpecialRequests,
		TotalPrice:      d.TotalPrice,
		Customer: customerView{
			Name:         d.Customer.Name,
			Email:        d.Customer.Email,
			Phone:        d.Customer.Phone,
			CarModel:     d.Customer.CarModel,
			LicensePlate: d.Customer.LicensePlate,
		},
		ServicePackage: toPackageResponse(d.ServicePackage),
	}
}

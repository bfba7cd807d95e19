package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/washify/booking/internal/email"
	"github.com/washify/booking/internal/kafka"
	"go.uber.org/zap"
)

// EmailHandler is the direct pass-through to the mail provider. The booking
// flow itself notifies through the event topic; this endpoint exists for the
// frontend's fire-and-forget confirmation call.
type EmailHandler struct {
	sender email.Sender
	log    *zap.SugaredLogger
}

type sendBookingEmailRequest struct {
	CustomerEmail string  `json:"customerEmail"`
	CustomerName  string  `json:"customerName"`
	BookingNumber string  `json:"bookingNumber"`
	ServiceName   string  `json:"serviceName"`
	ServicePrice  float64 `json:"servicePrice"`
	BookingDate   string  `json:"bookingDate"`
	BookingTime   string  `json:"bookingTime"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	PostalCode    string  `json:"postalCode"`
	CarModel      string  `json:"carModel"`
	LicensePlate  string  `json:"licensePlate"`
}

func NewEmailHandler(sender email.Sender, log *zap.SugaredLogger) *EmailHandler {
	return &EmailHandler{sender: sender, log: log}
}

func (h *EmailHandler) Register(router *gin.RouterGroup) {
	router.POST("/send-booking-email", h.send)
}

func (h *EmailHandler) send(c *gin.Context) {
	var req sendBookingEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	msg, err := email.Confirmation(kafka.BookingEvent{
		BookingNumber: req.BookingNumber,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		ServiceName:   req.ServiceName,
		ServicePrice:  req.ServicePrice,
		BookingDate:   req.BookingDate,
		BookingTime:   req.BookingTime,
		Address:       req.Address,
		PostalCode:    req.PostalCode,
		City:          req.City,
		CarModel:      req.CarModel,
		LicensePlate:  req.LicensePlate,
	})
	if err != nil {
		h.log.Errorw("compose confirmation failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send email"})
		return
	}

	id, err := h.sender.Send(c.Request.Context(), msg)
	if err != nil {
		var providerErr *email.ProviderError
		if errors.As(err, &providerErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": providerErr.Message})
			return
		}
		h.log.Errorw("send confirmation failed", "booking_number", req.BookingNumber, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

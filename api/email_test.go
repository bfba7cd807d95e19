package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/washify/booking/internal/email"
	"go.uber.org/zap"
)

type stubSender struct {
	id  string
	err error
}

func (s *stubSender) Send(ctx context.Context, msg email.Message) (string, error) {
	return s.id, s.err
}

func emailRequestBody() []byte {
	body, _ := json.Marshal(sendBookingEmailRequest{
		CustomerEmail: "anna@example.se",
		CustomerName:  "Anna Svensson",
		BookingNumber: "W12345678",
		ServiceName:   "Basic",
		ServicePrice:  299,
		BookingDate:   "2026-03-15",
		BookingTime:   "10:00",
		Address:       "Storgatan 1",
		City:          "Stockholm",
		PostalCode:    "12345",
		CarModel:      "Volvo V60",
	})
	return body
}

func TestEmailHandler_send(t *testing.T) {
	handler := NewEmailHandler(&stubSender{id: "msg-123"}, zap.NewNop().Sugar())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/send-booking-email", bytes.NewReader(emailRequestBody()))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.send(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "msg-123", response["id"])
}

func TestEmailHandler_send_ProviderError(t *testing.T) {
	sender := &stubSender{err: &email.ProviderError{StatusCode: 422, Message: "invalid to address"}}
	handler := NewEmailHandler(sender, zap.NewNop().Sugar())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/send-booking-email", bytes.NewReader(emailRequestBody()))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.send(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "invalid to address", response["error"])
}

func TestEmailHandler_send_TransportError(t *testing.T) {
	handler := NewEmailHandler(&stubSender{err: errors.New("connection refused")}, zap.NewNop().Sugar())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/send-booking-email", bytes.NewReader(emailRequestBody()))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.send(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

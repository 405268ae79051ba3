package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kaamkarwalo/booking-api/internal/models"
)

type CreateBookingRequest struct {
	CustomerID      string     `json:"customerId"`
	CustomerName    string     `json:"customerName"`
	CustomerPhone   string     `json:"customerPhone"`
	WorkerID        string     `json:"workerId"`
	WorkerName      string     `json:"workerName"`
	WorkerPhone     string     `json:"workerPhone"`
	Service         string     `json:"service"`
	Date            *time.Time `json:"date"`
	Status          string     `json:"status"`
	PaymentReceived bool       `json:"paymentReceived"`
	Rating          *float64   `json:"rating"`
	Feedback        string     `json:"feedback"`
}

// CreateBooking persists a booking unconditionally and queues the admin
// alert. The response reports success as soon as the write commits; the
// notification outcome never affects it.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	booking := models.Booking{
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		WorkerID:        req.WorkerID,
		WorkerName:      req.WorkerName,
		WorkerPhone:     req.WorkerPhone,
		Service:         req.Service,
		Status:          req.Status,
		PaymentReceived: req.PaymentReceived,
		Rating:          req.Rating,
		Feedback:        req.Feedback,
	}
	if req.Date != nil {
		booking.Date = *req.Date
	} else {
		booking.Date = time.Now()
	}
	if booking.Status == "" {
		booking.Status = "pending"
	}

	if err := h.Bookings.Insert(c.Request.Context(), &booking); err != nil {
		log.Error().Err(err).Msg("failed to save booking")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save booking"})
		return
	}

	if h.Alerts != nil {
		h.Alerts.Enqueue(booking)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking saved", "booking": booking})
}

// GetBookings returns every booking document.
func (h *Handler) GetBookings(c *gin.Context) {
	bookings, err := h.Bookings.FindAll(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingDeliveries returns the notification delivery records for one
// booking, so an operator can see whether its admin alerts went out.
func (h *Handler) GetBookingDeliveries(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	records, err := h.Deliveries.FindByBooking(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("bookingId", id.Hex()).Msg("failed to list delivery records")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve delivery records"})
		return
	}
	if records == nil {
		records = make([]models.DeliveryRecord, 0)
	}
	c.JSON(http.StatusOK, records)
}

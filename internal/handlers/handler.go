package handlers

import (
	"github.com/kaamkarwalo/booking-api/internal/models"
	"github.com/kaamkarwalo/booking-api/internal/repository"
)

// Alerter queues an admin notification for a saved booking.
type Alerter interface {
	Enqueue(booking models.Booking)
}

// Handler carries the dependencies every route needs: the repositories and
// the notification dispatcher, threaded in explicitly from main.
type Handler struct {
	Users      repository.UserRepository
	Bookings   repository.BookingRepository
	Deliveries repository.DeliveryRepository
	Alerts     Alerter
}

func NewHandler(users repository.UserRepository, bookings repository.BookingRepository, deliveries repository.DeliveryRepository, alerts Alerter) *Handler {
	return &Handler{
		Users:      users,
		Bookings:   bookings,
		Deliveries: deliveries,
		Alerts:     alerts,
	}
}

package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kaamkarwalo/booking-api/internal/models"
	"github.com/kaamkarwalo/booking-api/internal/repository"
)

// Dispatcher delivers admin alerts for new bookings off the request path.
// Alerts are queued after the booking write commits and drained by a single
// worker goroutine, so a slow or failing external API never adds latency to
// the booking-creation response. Every attempt is recorded as a
// DeliveryRecord for operator visibility.
type Dispatcher struct {
	whatsapp   TextSender
	mail       MailSender
	deliveries repository.DeliveryRepository

	adminPhone string
	adminEmail string

	mu     sync.Mutex
	closed bool
	jobs   chan models.Booking
	done   chan struct{}
}

// NewDispatcher starts the worker goroutine. Either sender may be nil when
// its credentials are not configured; the dispatcher then records the skip
// instead of sending.
func NewDispatcher(whatsapp TextSender, mail MailSender, deliveries repository.DeliveryRepository, adminPhone, adminEmail string) *Dispatcher {
	d := &Dispatcher{
		whatsapp:   whatsapp,
		mail:       mail,
		deliveries: deliveries,
		adminPhone: adminPhone,
		adminEmail: adminEmail,
		jobs:       make(chan models.Booking, 64),
		done:       make(chan struct{}),
	}
	go d.run()
	return d
}

// Enqueue queues an admin alert for a saved booking. It never blocks: when
// the queue is full, or the dispatcher is already closed, the alert is
// dropped and logged, not the request.
func (d *Dispatcher) Enqueue(booking models.Booking) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		log.Warn().Str("bookingId", booking.ID.Hex()).Msg("dispatcher closed, alert dropped")
		return
	}
	select {
	case d.jobs <- booking:
	default:
		log.Warn().Str("bookingId", booking.ID.Hex()).Msg("notification queue full, alert dropped")
	}
}

// Close drains the queue and stops the worker. Safe to call more than once
// and concurrently with Enqueue.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.jobs)
	}
	d.mu.Unlock()
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for booking := range d.jobs {
		d.notify(booking)
	}
}

// notify sends the WhatsApp message first and, only if that succeeded, the
// admin email. Failures are logged and recorded, never escalated.
func (d *Dispatcher) notify(booking models.Booking) {
	message := fmt.Sprintf(
		"New Booking Received:\nCustomer: %s (%s)\nService: %s\nWorker: %s (%s)\nDate: %s",
		booking.CustomerName, booking.CustomerPhone,
		booking.Service,
		booking.WorkerName, booking.WorkerPhone,
		booking.Date.Format("Jan 2, 2006 3:04 PM"),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if d.whatsapp == nil {
		log.Warn().Str("bookingId", booking.ID.Hex()).Msg("WhatsApp sender not configured, alert skipped")
		d.record(ctx, booking, models.ChannelWhatsApp, models.DeliveryFailed, "sender not configured")
		return
	}

	messageID, err := d.whatsapp.SendText(ctx, d.adminPhone, message)
	if err != nil {
		log.Error().Err(err).Str("bookingId", booking.ID.Hex()).Msg("WhatsApp send failed")
		d.record(ctx, booking, models.ChannelWhatsApp, models.DeliveryFailed, err.Error())
		return
	}
	log.Info().Str("bookingId", booking.ID.Hex()).Str("messageId", messageID).Msg("WhatsApp notification sent")
	d.record(ctx, booking, models.ChannelWhatsApp, models.DeliverySent, messageID)

	if d.mail == nil {
		log.Warn().Str("bookingId", booking.ID.Hex()).Msg("mail sender not configured, admin email skipped")
		d.record(ctx, booking, models.ChannelEmail, models.DeliveryFailed, "sender not configured")
		return
	}

	emailBody := message + "\n\nPlease check the dashboard for more details."
	if err := d.mail.SendMail(d.adminEmail, "New Booking Alert", emailBody); err != nil {
		log.Error().Err(err).Str("bookingId", booking.ID.Hex()).Msg("admin email send failed")
		d.record(ctx, booking, models.ChannelEmail, models.DeliveryFailed, err.Error())
		return
	}
	log.Info().Str("bookingId", booking.ID.Hex()).Msg("admin email sent")
	d.record(ctx, booking, models.ChannelEmail, models.DeliverySent, d.adminEmail)
}

func (d *Dispatcher) record(ctx context.Context, booking models.Booking, channel, status, detail string) {
	if d.deliveries == nil {
		return
	}
	rec := &models.DeliveryRecord{
		BookingID: booking.ID,
		Channel:   channel,
		Status:    status,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if err := d.deliveries.Insert(ctx, rec); err != nil {
		log.Error().Err(err).Str("bookingId", booking.ID.Hex()).Msg("failed to record delivery outcome")
	}
}

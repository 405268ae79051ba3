package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Delivery channels for booking alerts.
const (
	ChannelWhatsApp = "whatsapp"
	ChannelEmail    = "email"
)

// Delivery statuses.
const (
	DeliverySent   = "sent"
	DeliveryFailed = "failed"
)

// DeliveryRecord keeps the outcome of one outbound notification attempt so
// operators can see which booking alerts never went out.
type DeliveryRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookingID primitive.ObjectID `bson:"bookingId" json:"bookingId"`
	Channel   string             `bson:"channel" json:"channel"`
	Status    string             `bson:"status" json:"status"`
	Detail    string             `bson:"detail" json:"detail"` // message ID on success, error text on failure
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

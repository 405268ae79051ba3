package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kaamkarwalo/booking-api/internal/models"
)

// BookingRepository defines operations for booking records.
type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	FindAll(ctx context.Context) ([]models.Booking, error)
}

type bookingRepository struct {
	coll *mongo.Collection
}

// NewBookingRepository creates a BookingRepository backed by the "bookings" collection.
func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &bookingRepository{coll: db.Collection("bookings")}
}

func (r *bookingRepository) Insert(ctx context.Context, booking *models.Booking) error {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	if bookings == nil {
		bookings = make([]models.Booking, 0)
	}
	return bookings, nil
}

package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kaamkarwalo/booking-api/internal/models"
)

// DeliveryRepository records the outcome of outbound booking notifications.
type DeliveryRepository interface {
	Insert(ctx context.Context, rec *models.DeliveryRecord) error
	FindByBooking(ctx context.Context, bookingID primitive.ObjectID) ([]models.DeliveryRecord, error)
}

type deliveryRepository struct {
	coll *mongo.Collection
}

// NewDeliveryRepository creates a DeliveryRepository backed by the "deliveries" collection.
func NewDeliveryRepository(db *mongo.Database) DeliveryRepository {
	return &deliveryRepository{coll: db.Collection("deliveries")}
}

func (r *deliveryRepository) Insert(ctx context.Context, rec *models.DeliveryRecord) error {
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, rec)
	if err != nil {
		return fmt.Errorf("insert delivery record: %w", err)
	}
	return nil
}

func (r *deliveryRepository) FindByBooking(ctx context.Context, bookingID primitive.ObjectID) ([]models.DeliveryRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"bookingId": bookingID})
	if err != nil {
		return nil, fmt.Errorf("find delivery records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.DeliveryRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode delivery records: %w", err)
	}
	return records, nil
}

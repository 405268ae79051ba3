package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID      string             `bson:"customerId" json:"customerId"`
	CustomerName    string             `bson:"customerName" json:"customerName"`
	CustomerPhone   string             `bson:"customerPhone" json:"customerPhone"`
	WorkerID        string             `bson:"workerId" json:"workerId"`
	WorkerName      string             `bson:"workerName" json:"workerName"`
	WorkerPhone     string             `bson:"workerPhone" json:"workerPhone"`
	Service         string             `bson:"service" json:"service"`
	Date            time.Time          `bson:"date" json:"date"`
	Status          string             `bson:"status" json:"status"` // defaults to "pending"
	PaymentReceived bool               `bson:"paymentReceived" json:"paymentReceived"`
	Rating          *float64           `bson:"rating" json:"rating"`
	Feedback        string             `bson:"feedback" json:"feedback"`
}

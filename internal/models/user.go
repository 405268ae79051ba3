package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"userId" json:"userId"`
	Role       string             `bson:"role" json:"role"` // "customer", "worker", "admin"
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone" json:"phone"` // login and uniqueness key
	WorkerType string             `bson:"workerType" json:"workerType"`
	Password   string             `bson:"password" json:"-"` // bcrypt hash, hidden from JSON responses
	City       string             `bson:"city" json:"city"`
	District   string             `bson:"district" json:"district"`
	State      string             `bson:"state" json:"state"`
	Address    string             `bson:"address" json:"address"`
	Location   string             `bson:"location" json:"location"`
}

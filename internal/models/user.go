package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered viewer account. Passwords are stored exactly as
// submitted; nothing in this service hashes or compares them. That mirrors
// the deployed contract and is tracked as a known defect, not a choice to
// copy elsewhere.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Username  string             `bson:"username,omitempty" json:"username,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Mobile    string             `bson:"mobile" json:"mobile"`
	City      string             `bson:"city" json:"city"`
	State     string             `bson:"state" json:"state"`
	Country   string             `bson:"country" json:"country"`
	UserID    string             `bson:"user_id" json:"userId"`
	Password  string             `bson:"password" json:"password"`
	IsOnline  bool               `bson:"is_online" json:"isOnline"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

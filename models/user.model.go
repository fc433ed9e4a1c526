package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered customer
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
}

// DisplayName returns the user's name, falling back to the capitalized
// local part of the email address when no name was given at signup
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	prefix, _, _ := strings.Cut(u.Email, "@")
	if prefix == "" {
		return "Customer"
	}
	return strings.ToUpper(prefix[:1]) + prefix[1:]
}

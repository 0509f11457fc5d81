// Package models holds the document shapes stored in MongoDB. Field names
// mirror the collection documents; emails are persisted lowercased.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MembershipStatusPaid = "PAID"

	RegistrationStatusPaid = "PAID"
	Currency               = "INR"

	PaymentRefFree = "FREE"
	PaymentRefCash = "CASH"
)

// Membership is evidence that a person paid for facility membership. Created
// by the payment flow; read-only here.
type Membership struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserRef   string             `bson:"userRef,omitempty" json:"userRef,omitempty"`
	UserName  string             `bson:"userName" json:"userName"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// User is the canonical account profile. Its name/email/phone win over the
// membership copy when both exist for the same email.
type User struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserRef string             `bson:"userRef,omitempty" json:"userRef,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Staff is an admin login account for the back office.
type Staff struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
}

type Event struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	EntryFee  float64            `bson:"entryFee" json:"entryFee"`
	StartsAt  *time.Time         `bson:"startsAt,omitempty" json:"startsAt,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Registration is written exactly once per admin action and never mutated.
// GuestID is set if and only if Type is "guest"; UserRef/Email only for
// identified registrants. Amount snapshots the event fee at creation time.
type Registration struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID    primitive.ObjectID `bson:"eventId" json:"eventId"`
	EventTitle string             `bson:"eventTitle" json:"eventTitle"`
	Type       string             `bson:"type" json:"type"`
	UserRef    string             `bson:"userRef,omitempty" json:"userRef,omitempty"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
	GuestID    string             `bson:"guestId,omitempty" json:"guestId,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Amount     float64            `bson:"amount" json:"amount"`
	Currency   string             `bson:"currency" json:"currency"`
	Status     string             `bson:"status" json:"status"`
	AdminPaid  bool               `bson:"adminPaid" json:"adminPaid"`
	PaymentRef string             `bson:"paymentRef" json:"paymentRef"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// Slot is one busy interval on a court. Court stays a string in storage;
// aggregation parses it and drops entries that are not numeric.
type Slot struct {
	Court string `bson:"court" json:"court"`
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// Booking is a registered-user court booking for one date.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserRef   string             `bson:"userRef,omitempty" json:"userRef,omitempty"`
	UserName  string             `bson:"userName,omitempty" json:"userName,omitempty"`
	UserEmail string             `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	Date      string             `bson:"date" json:"date"`
	Amount    float64            `bson:"amount" json:"amount"`
	Currency  string             `bson:"currency" json:"currency"`
	Slots     []Slot             `bson:"slots" json:"slots"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// GuestBooking shares the slot shape with Booking but identifies the holder
// by guest fields instead of an account reference.
type GuestBooking struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GuestID    string             `bson:"guestId,omitempty" json:"guestId,omitempty"`
	GuestName  string             `bson:"guestName,omitempty" json:"guestName,omitempty"`
	GuestPhone string             `bson:"guestPhone,omitempty" json:"guestPhone,omitempty"`
	Date       string             `bson:"date" json:"date"`
	Amount     float64            `bson:"amount" json:"amount"`
	Currency   string             `bson:"currency" json:"currency"`
	Slots      []Slot             `bson:"slots" json:"slots"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

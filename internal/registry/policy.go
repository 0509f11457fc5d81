// Package registry implements the admin-entry registration flow: it derives
// the charge amount, payment status, and payment reference for an event
// registrant and persists exactly one registration record.
package registry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tanmaydb/courtdesk/internal/fault"
	"github.com/tanmaydb/courtdesk/internal/models"
)

// Store is the slice of the data layer the policy needs.
type Store interface {
	EventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	InsertRegistration(ctx context.Context, reg *models.Registration) (primitive.ObjectID, error)
}

// Input is one admin registration request.
type Input struct {
	EventID    string
	EventTitle string // optional; defaults to the event's stored title
	Registrant Registrant
	MarkPaid   bool
}

// Receipt is what the admin flow gets back. GuestID is set only for guest
// registrations.
type Receipt struct {
	ID         string  `json:"id"`
	GuestID    string  `json:"guestId,omitempty"`
	EventTitle string  `json:"eventTitle"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Status     string  `json:"status"`
	AdminPaid  bool    `json:"adminPaid"`
	PaymentRef string  `json:"paymentRef"`
}

// guestPhoneRegion is the default region used when normalizing guest phone
// numbers that carry no country prefix.
const guestPhoneRegion = "IN"

type Policy struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Policy {
	return &Policy{store: store, now: time.Now}
}

// Register validates the input, snapshots the event fee, derives the payment
// fields, and persists one registration record.
//
// Free events are always marked adminPaid regardless of the markPaid input
// and carry paymentRef "FREE"; paid events carry "CASH" and adminPaid
// reflects whether cash was actually collected. Status is recorded "PAID"
// either way; adminPaid is the real paid/unpaid signal in this flow.
func (p *Policy) Register(ctx context.Context, in Input) (*Receipt, error) {
	eventID := strings.TrimSpace(in.EventID)
	if eventID == "" {
		return nil, fault.Validation("missing event id")
	}
	oid, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, fault.Validation("invalid event id")
	}
	if in.Registrant == nil {
		return nil, fault.Validation("missing registrant")
	}

	event, err := p.store.EventByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	fee := event.EntryFee
	if fee < 0 {
		fee = 0
	}
	isFree := fee <= 0

	reg := models.Registration{
		EventID:    event.ID,
		EventTitle: strings.TrimSpace(in.EventTitle),
		Type:       in.Registrant.classification(),
		Amount:     fee,
		Currency:   models.Currency,
		Status:     models.RegistrationStatusPaid,
	}
	if reg.EventTitle == "" {
		reg.EventTitle = event.Title
	}

	if isFree {
		reg.AdminPaid = true
		reg.PaymentRef = models.PaymentRefFree
	} else {
		reg.AdminPaid = in.MarkPaid
		reg.PaymentRef = models.PaymentRefCash
	}

	switch r := in.Registrant.(type) {
	case MemberRegistrant:
		if strings.TrimSpace(r.Email) == "" {
			return nil, fault.Validation("member registration requires an email")
		}
		reg.Name = strings.TrimSpace(r.Name)
		reg.Email = normalizeEmail(r.Email)
	case UserRegistrant:
		if strings.TrimSpace(r.Email) == "" {
			return nil, fault.Validation("user registration requires an email")
		}
		reg.Name = strings.TrimSpace(r.Name)
		reg.Email = normalizeEmail(r.Email)
		reg.UserRef = strings.TrimSpace(r.UserRef)
	case GuestRegistrant:
		name := strings.TrimSpace(r.Name)
		phone := strings.TrimSpace(r.Phone)
		if name == "" || phone == "" {
			return nil, fault.Validation("guest registration requires name and phone")
		}
		reg.Name = name
		reg.Phone = normalizePhone(phone)
		reg.GuestID = p.newGuestID()
	default:
		return nil, fault.Validation("unknown registrant classification")
	}

	id, err := p.store.InsertRegistration(ctx, &reg)
	if err != nil {
		return nil, err
	}

	return &Receipt{
		ID:         id.Hex(),
		GuestID:    reg.GuestID,
		EventTitle: reg.EventTitle,
		Amount:     reg.Amount,
		Currency:   reg.Currency,
		Status:     reg.Status,
		AdminPaid:  reg.AdminPaid,
		PaymentRef: reg.PaymentRef,
	}, nil
}

// newGuestID keeps the operator-readable timestamp prefix and adds a
// UUID-derived suffix so concurrent registrations cannot collide.
func (p *Policy) newGuestID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("G%d-%s", p.now().UnixMilli(), suffix)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizePhone formats the number as E.164 when it parses; anything the
// parser rejects is stored verbatim.
func normalizePhone(phone string) string {
	num, err := phonenumbers.Parse(phone, guestPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return phone
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

// internal/api/registrations/handlers.go
package registrations

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/tanmaydb/courtdesk/internal/api/apiutil"
	"github.com/tanmaydb/courtdesk/internal/email"
	"github.com/tanmaydb/courtdesk/internal/fault"
	"github.com/tanmaydb/courtdesk/internal/models"
	"github.com/tanmaydb/courtdesk/internal/registry"
)

var (
	policy *registry.Policy
	sender email.Sender
)

// InitHandlers wires the fee policy and an optional confirmation sender. A
// nil sender disables confirmation emails.
func InitHandlers(p *registry.Policy, s email.Sender) {
	policy = p
	sender = s
}

type createRequest struct {
	EventID    string `json:"eventId"`
	EventTitle string `json:"eventTitle"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	UserRef    string `json:"userRef"`
	GuestName  string `json:"guestName"`
	GuestPhone string `json:"guestPhone"`
	MarkPaid   bool   `json:"markPaid"`
}

// registrant maps the wire payload onto the tagged registrant variant.
func (req createRequest) registrant() (registry.Registrant, error) {
	switch req.Type {
	case registry.ClassMember:
		return registry.MemberRegistrant{Name: req.Name, Email: req.Email}, nil
	case registry.ClassUser:
		return registry.UserRegistrant{Name: req.Name, Email: req.Email, UserRef: req.UserRef}, nil
	case registry.ClassGuest:
		return registry.GuestRegistrant{Name: req.GuestName, Phone: req.GuestPhone}, nil
	default:
		return nil, fault.Validation("type must be member, user, or guest")
	}
}

func HandleCreateRegistration(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, fault.Validation("invalid registration payload"))
		return
	}

	registrant, err := req.registrant()
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	receipt, err := policy.Register(r.Context(), registry.Input{
		EventID:    req.EventID,
		EventTitle: req.EventTitle,
		Registrant: registrant,
		MarkPaid:   req.MarkPaid,
	})
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	if sender != nil && req.Email != "" {
		logger := log.Ctx(r.Context())
		email.SendRegistrationConfirmation(sender, models.Registration{
			EventTitle: receipt.EventTitle,
			Email:      req.Email,
			Amount:     receipt.Amount,
			Currency:   receipt.Currency,
			AdminPaid:  receipt.AdminPaid,
		}, logger)
	}

	_ = apiutil.WriteJSON(w, http.StatusCreated, receipt)
}

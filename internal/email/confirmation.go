package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tanmaydb/courtdesk/internal/models"
)

const confirmationTimeout = 5 * time.Second

// SendRegistrationConfirmation emails the registrant their event receipt.
// The send runs asynchronously with its own timeout so a slow SES call never
// blocks the admin flow. No-op when the sender is nil or the registration has
// no email.
func SendRegistrationConfirmation(sender Sender, reg models.Registration, logger *zerolog.Logger) {
	if sender == nil {
		return
	}
	recipient := strings.TrimSpace(reg.Email)
	if recipient == "" {
		return
	}

	subject := fmt.Sprintf("Registration confirmed: %s", reg.EventTitle)
	body := confirmationBody(reg)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), confirmationTimeout)
		defer cancel()
		if err := sender.Send(ctx, recipient, subject, body); err != nil && logger != nil {
			logger.Error().Err(err).Str("recipient", recipient).Msg("Failed to send registration confirmation")
		}
	}()
}

func confirmationBody(reg models.Registration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are registered for %s.\n\n", reg.EventTitle)
	if reg.Amount > 0 {
		fmt.Fprintf(&b, "Entry fee: %.2f %s", reg.Amount, reg.Currency)
		if reg.AdminPaid {
			b.WriteString(" (received)\n")
		} else {
			b.WriteString(" (payable in cash at the front desk)\n")
		}
	} else {
		b.WriteString("Entry is free.\n")
	}
	b.WriteString("\nSee you on court.\n")
	return b.String()
}

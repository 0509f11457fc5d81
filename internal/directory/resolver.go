// Package directory resolves free-text search over paid memberships into
// merged identity rows, preferring the canonical user profile over the
// membership copy when both exist for the same email.
package directory

import (
	"context"
	"strings"

	"github.com/tanmaydb/courtdesk/internal/models"
)

// Store is the slice of the data layer the resolver needs.
type Store interface {
	SearchPaidMemberships(ctx context.Context, term string, limit int64) ([]models.Membership, error)
	UsersByEmails(ctx context.Context, emails []string) ([]models.User, error)
}

// Person is one merged identity row. ID and UserRef come from the user
// profile when one matched, otherwise from the membership.
type Person struct {
	ID      string `json:"id"`
	UserRef string `json:"userRef,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
}

const candidateLimit = 150

type Resolver struct {
	store Store
}

func New(store Store) *Resolver {
	return &Resolver{store: store}
}

// Search finds paid memberships matching the query by name or email,
// enriches each hit with the user profile for the same email, and returns
// one row per distinct email, newest membership first. A blank query yields
// an empty result without touching storage; a storage failure yields an
// empty result and the error.
func (r *Resolver) Search(ctx context.Context, query string) ([]Person, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return []Person{}, nil
	}

	memberships, err := r.store.SearchPaidMemberships(ctx, term, candidateLimit)
	if err != nil {
		return []Person{}, err
	}

	users, err := r.store.UsersByEmails(ctx, distinctEmails(memberships))
	if err != nil {
		return []Person{}, err
	}

	usersByEmail := make(map[string]models.User, len(users))
	for _, u := range users {
		key := normalizeEmail(u.Email)
		if key == "" {
			continue
		}
		if _, ok := usersByEmail[key]; !ok {
			usersByEmail[key] = u
		}
	}

	seen := make(map[string]struct{}, len(memberships))
	people := make([]Person, 0, len(memberships))
	for _, m := range memberships {
		person := merge(m, usersByEmail)
		person.Email = normalizeEmail(person.Email)
		key := person.Email
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		people = append(people, person)
	}
	return people, nil
}

// merge builds the identity row for one membership candidate. User profile
// fields win; the membership is the fallback.
func merge(m models.Membership, usersByEmail map[string]models.User) Person {
	person := Person{
		ID:      m.ID.Hex(),
		UserRef: m.UserRef,
		Name:    m.UserName,
		Email:   m.UserEmail,
	}

	user, ok := usersByEmail[normalizeEmail(m.UserEmail)]
	if !ok {
		return person
	}

	person.ID = user.ID.Hex()
	person.UserRef = user.UserRef
	if user.Name != "" {
		person.Name = user.Name
	}
	if user.Email != "" {
		person.Email = user.Email
	}
	person.Phone = user.Phone
	return person
}

// distinctEmails collects the non-empty candidate emails, first occurrence
// first, deduplicated case-insensitively.
func distinctEmails(memberships []models.Membership) []string {
	seen := make(map[string]struct{}, len(memberships))
	emails := make([]string, 0, len(memberships))
	for _, m := range memberships {
		key := normalizeEmail(m.UserEmail)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		emails = append(emails, m.UserEmail)
	}
	return emails
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

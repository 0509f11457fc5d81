package registrations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tanmaydb/courtdesk/internal/fault"
	"github.com/tanmaydb/courtdesk/internal/models"
	"github.com/tanmaydb/courtdesk/internal/registry"
)

type fakeStore struct {
	event    *models.Event
	inserted *models.Registration
}

func (f *fakeStore) EventByID(_ context.Context, id primitive.ObjectID) (*models.Event, error) {
	if f.event == nil || f.event.ID != id {
		return nil, fault.NotFound("event")
	}
	return f.event, nil
}

func (f *fakeStore) InsertRegistration(_ context.Context, reg *models.Registration) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	reg.ID = id
	f.inserted = reg
	return id, nil
}

func setupRegistrationsTest(t *testing.T, fee float64) *fakeStore {
	t.Helper()
	fake := &fakeStore{
		event: &models.Event{ID: primitive.NewObjectID(), Title: "Summer Smash", EntryFee: fee},
	}
	InitHandlers(registry.New(fake), nil)
	t.Cleanup(func() { policy = nil })
	return fake
}

func postRegistration(t *testing.T, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/registrations", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	HandleCreateRegistration(recorder, req)
	return recorder
}

func TestHandleCreateRegistrationMemberCash(t *testing.T) {
	fake := setupRegistrationsTest(t, 500)

	recorder := postRegistration(t, map[string]any{
		"eventId":  fake.event.ID.Hex(),
		"type":     "member",
		"name":     "Asha",
		"email":    "Asha@Club.IN",
		"markPaid": false,
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("status: %d, body: %s", recorder.Code, recorder.Body.String())
	}

	var receipt registry.Receipt
	if err := json.Unmarshal(recorder.Body.Bytes(), &receipt); err != nil {
		t.Fatalf("decode receipt: %v", err)
	}
	if receipt.AdminPaid {
		t.Fatal("adminPaid must be false for uncollected cash")
	}
	if receipt.PaymentRef != models.PaymentRefCash {
		t.Fatalf("paymentRef: %s", receipt.PaymentRef)
	}
	if receipt.Amount != 500 {
		t.Fatalf("amount: %v", receipt.Amount)
	}
	if receipt.Status != models.RegistrationStatusPaid {
		t.Fatalf("status: %s", receipt.Status)
	}
	if fake.inserted.Email != "asha@club.in" {
		t.Fatalf("stored email: %s", fake.inserted.Email)
	}
}

func TestHandleCreateRegistrationGuest(t *testing.T) {
	fake := setupRegistrationsTest(t, 0)

	recorder := postRegistration(t, map[string]any{
		"eventId":    fake.event.ID.Hex(),
		"type":       "guest",
		"guestName":  "Sam",
		"guestPhone": "9990001111",
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("status: %d, body: %s", recorder.Code, recorder.Body.String())
	}

	var receipt registry.Receipt
	if err := json.Unmarshal(recorder.Body.Bytes(), &receipt); err != nil {
		t.Fatalf("decode receipt: %v", err)
	}
	if receipt.GuestID == "" {
		t.Fatal("guest id missing from receipt")
	}
	if !receipt.AdminPaid || receipt.PaymentRef != models.PaymentRefFree {
		t.Fatalf("free event derivation: adminPaid=%v ref=%s", receipt.AdminPaid, receipt.PaymentRef)
	}
	if fake.inserted.Email != "" || fake.inserted.UserRef != "" {
		t.Fatal("guest registration must not carry identified-user fields")
	}
}

func TestHandleCreateRegistrationValidation(t *testing.T) {
	fake := setupRegistrationsTest(t, 500)

	cases := []struct {
		name    string
		payload map[string]any
		status  int
	}{
		{"unknown type", map[string]any{"eventId": fake.event.ID.Hex(), "type": "vip"}, http.StatusBadRequest},
		{"member without email", map[string]any{"eventId": fake.event.ID.Hex(), "type": "member", "name": "Asha"}, http.StatusBadRequest},
		{"missing event id", map[string]any{"type": "member", "email": "a@b.c"}, http.StatusBadRequest},
		{"unknown event", map[string]any{"eventId": primitive.NewObjectID().Hex(), "type": "member", "email": "a@b.c"}, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake.inserted = nil
			recorder := postRegistration(t, tc.payload)
			if recorder.Code != tc.status {
				t.Fatalf("status: %d, body: %s", recorder.Code, recorder.Body.String())
			}
			if fake.inserted != nil {
				t.Fatal("no registration may be created")
			}
		})
	}
}

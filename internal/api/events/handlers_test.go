package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tanmaydb/courtdesk/internal/models"
)

type fakeStore struct {
	events  []models.Event
	created *models.Event
}

func (f *fakeStore) CreateEvent(_ context.Context, event *models.Event) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	event.ID = id
	f.created = event
	return id, nil
}

func (f *fakeStore) ListEvents(_ context.Context, _ int64) ([]models.Event, error) {
	return f.events, nil
}

func setupEventsTest(t *testing.T) *fakeStore {
	t.Helper()
	fake := &fakeStore{}
	InitHandlers(fake)
	t.Cleanup(func() { store = nil })
	return fake
}

func postEvent(t *testing.T, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	HandleCreateEvent(recorder, req)
	return recorder
}

func TestHandleCreateEvent(t *testing.T) {
	fake := setupEventsTest(t)

	recorder := postEvent(t, map[string]any{
		"title":    "Summer Smash",
		"entryFee": 500,
		"startsAt": "2024-06-01T06:00:00Z",
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("status: %d, body: %s", recorder.Code, recorder.Body.String())
	}
	if fake.created == nil {
		t.Fatal("event was not persisted")
	}
	if fake.created.EntryFee != 500 {
		t.Fatalf("entry fee: %v", fake.created.EntryFee)
	}
	if fake.created.StartsAt == nil {
		t.Fatal("startsAt was not parsed")
	}
}

func TestHandleCreateEventValidation(t *testing.T) {
	fake := setupEventsTest(t)

	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"missing title", map[string]any{"entryFee": 100}},
		{"blank title", map[string]any{"title": "   "}},
		{"negative fee", map[string]any{"title": "X", "entryFee": -1}},
		{"bad startsAt", map[string]any{"title": "X", "startsAt": "tomorrow"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake.created = nil
			recorder := postEvent(t, tc.payload)
			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("status: %d", recorder.Code)
			}
			if fake.created != nil {
				t.Fatal("no event may be created")
			}
		})
	}
}

func TestHandleListEventsEmpty(t *testing.T) {
	setupEventsTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	recorder := httptest.NewRecorder()
	HandleListEvents(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status: %d", recorder.Code)
	}
	if body := strings.TrimSpace(recorder.Body.String()); body != "[]" {
		t.Fatalf("body: %s", body)
	}
}

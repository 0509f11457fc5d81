// internal/api/events/handlers.go
package events

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tanmaydb/courtdesk/internal/api/apiutil"
	"github.com/tanmaydb/courtdesk/internal/fault"
	"github.com/tanmaydb/courtdesk/internal/models"
)

const listLimit = 100

// EventStore is the slice of the data layer the event handlers need.
type EventStore interface {
	CreateEvent(ctx context.Context, event *models.Event) (primitive.ObjectID, error)
	ListEvents(ctx context.Context, limit int64) ([]models.Event, error)
}

var store EventStore

func InitHandlers(s EventStore) {
	store = s
}

type createRequest struct {
	Title    string  `json:"title"`
	EntryFee float64 `json:"entryFee"`
	StartsAt string  `json:"startsAt"`
}

func HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, fault.Validation("invalid event payload"))
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		apiutil.WriteError(w, r, fault.Validation("event title is required"))
		return
	}
	if req.EntryFee < 0 {
		apiutil.WriteError(w, r, fault.Validation("entry fee must not be negative"))
		return
	}

	event := models.Event{Title: title, EntryFee: req.EntryFee}
	if req.StartsAt != "" {
		startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
		if err != nil {
			apiutil.WriteError(w, r, fault.Validation("startsAt must be RFC3339"))
			return
		}
		event.StartsAt = &startsAt
	}

	if _, err := store.CreateEvent(r.Context(), &event); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	_ = apiutil.WriteJSON(w, http.StatusCreated, event)
}

func HandleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := store.ListEvents(r.Context(), listLimit)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	_ = apiutil.WriteJSON(w, http.StatusOK, events)
}

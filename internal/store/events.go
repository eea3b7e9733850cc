package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/appdate/appdate/internal/models"
	"github.com/appdate/appdate/internal/storage"
)

const eventsKey = "appdate.events"

var validate = validator.New()

// EventRepository owns the event collection. Every mutating call rewrites
// the whole serialized collection back to the key-value store.
type EventRepository interface {
	List(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, req *models.EventRequest) (*models.Event, error)
	Update(ctx context.Context, id string, req *models.EventRequest) (*models.Event, error)
	UpdateNotes(ctx context.Context, id string, notes string) error
	Delete(ctx context.Context, id string) error
}

type eventRepository struct {
	kv  *storage.Store
	log zerolog.Logger
	now func() time.Time

	mu sync.Mutex
}

// NewEventRepository creates a new event repository over the key-value store.
func NewEventRepository(kv *storage.Store, log zerolog.Logger) EventRepository {
	return &eventRepository{
		kv:  kv,
		log: log,
		now: time.Now,
	}
}

// List returns the full collection in insertion order.
func (r *eventRepository) List(ctx context.Context) ([]models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Create validates the request, assigns a fresh ID, appends and persists.
func (r *eventRepository) Create(ctx context.Context, req *models.EventRequest) (*models.Event, error) {
	timeRange, category, err := validateEventRequest(req)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := r.load()
	if err != nil {
		return nil, err
	}

	event := models.Event{
		ID:       uuid.NewString(),
		Title:    strings.TrimSpace(req.Title),
		Date:     req.Date,
		Time:     timeRange,
		Category: category,
	}
	events = append(events, event)

	if err := r.save(events); err != nil {
		r.log.Error().Err(err).Str("event_id", event.ID).Msg("Failed to persist created event")
		return nil, err
	}

	return &event, nil
}

// Update replaces the record in place, preserving its ID and notes.
func (r *eventRepository) Update(ctx context.Context, id string, req *models.EventRequest) (*models.Event, error) {
	timeRange, category, err := validateEventRequest(req)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := r.load()
	if err != nil {
		return nil, err
	}

	idx := indexOf(events, id)
	if idx < 0 {
		return nil, ErrEventNotFound
	}

	event := events[idx]
	event.Title = strings.TrimSpace(req.Title)
	event.Date = req.Date
	event.Time = timeRange
	event.Category = category
	events[idx] = event

	if err := r.save(events); err != nil {
		r.log.Error().Err(err).Str("event_id", id).Msg("Failed to persist updated event")
		return nil, err
	}

	return &event, nil
}

// UpdateNotes sets the notes document and its last-edited timestamp without
// further validation. It is triggered by the debounced autosave rather than
// explicit user confirmation.
func (r *eventRepository) UpdateNotes(ctx context.Context, id string, notes string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := r.load()
	if err != nil {
		return err
	}

	idx := indexOf(events, id)
	if idx < 0 {
		return ErrEventNotFound
	}

	events[idx].Notes = notes
	events[idx].NotesLastEdited = r.now().Format(time.RFC3339)

	if err := r.save(events); err != nil {
		r.log.Error().Err(err).Str("event_id", id).Msg("Failed to persist notes")
		return err
	}

	return nil
}

// Delete removes the event. Deleting an absent ID is a no-op.
func (r *eventRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := r.load()
	if err != nil {
		return err
	}

	idx := indexOf(events, id)
	if idx < 0 {
		return nil
	}

	events = append(events[:idx], events[idx+1:]...)

	if err := r.save(events); err != nil {
		r.log.Error().Err(err).Str("event_id", id).Msg("Failed to persist after delete")
		return err
	}

	return nil
}

// load reads the collection, recovering to the empty collection when the
// stored blob is unparseable.
func (r *eventRepository) load() ([]models.Event, error) {
	raw, err := r.kv.Get(eventsKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []models.Event{}, nil
		}
		return nil, err
	}

	var events []models.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		r.log.Warn().Err(err).Msg("Invalid event data in storage, resetting")
		if err := r.save([]models.Event{}); err != nil {
			return nil, err
		}
		return []models.Event{}, nil
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

func (r *eventRepository) save(events []models.Event) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return r.kv.Put(eventsKey, raw)
}

func indexOf(events []models.Event, id string) int {
	for i := range events {
		if events[i].ID == id {
			return i
		}
	}
	return -1
}

// validateEventRequest applies the create/edit form rules and resolves the
// stored time range and category.
func validateEventRequest(req *models.EventRequest) (string, models.Category, error) {
	if strings.TrimSpace(req.Title) == "" {
		return "", "", &ValidationError{Message: "Please add a title!"}
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return "", "", &ValidationError{Message: "Please select a date!"}
		}
		return "", "", err
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return "", "", &ValidationError{Message: "Please select a date!"}
	}

	timeRange := ""
	if !req.NoTime {
		if req.TimeFrom == "" || req.TimeTo == "" {
			return "", "", &ValidationError{Message: "Please enter time range or select No Time!"}
		}
		if !wellFormedTime(req.TimeFrom) || !wellFormedTime(req.TimeTo) {
			return "", "", &ValidationError{Message: "Please enter time range or select No Time!"}
		}
		timeRange = req.TimeFrom + " - " + req.TimeTo
	}

	// The carousel starts on School Event, so an unset category means the
	// user never moved it.
	category := req.Category
	if category == "" {
		category = models.CategorySchoolEvent
	}
	if !category.Valid() {
		return "", "", &ValidationError{Message: "Please choose a valid event type!"}
	}

	return timeRange, category, nil
}

func wellFormedTime(v string) bool {
	_, err := time.Parse("15:04", v)
	return err == nil
}

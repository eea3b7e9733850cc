package models

// Event is a single calendar entry. The whole event collection is the unit
// of persistence: every mutation rewrites the serialized collection.
type Event struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Date     string   `json:"date"` // ISO YYYY-MM-DD
	Time     string   `json:"time"` // "HH:MM - HH:MM", empty means "no time"
	Category Category `json:"category"`

	// Notes is a rich-text HTML document attached lazily from the notes
	// editor. NotesLastEdited is set only when notes are saved.
	Notes           string `json:"notes,omitempty"`
	NotesLastEdited string `json:"notesLastEdited,omitempty"`
}

// HasTime reports whether the event carries an explicit time range.
func (e Event) HasTime() bool {
	return e.Time != ""
}

// EventRequest carries the fields of the create/edit form.
type EventRequest struct {
	Title    string   `json:"title" validate:"required"`
	Date     string   `json:"date" validate:"required"`
	Category Category `json:"category"`

	// TimeFrom/TimeTo are the two halves of the time range. NoTime marks
	// the explicit "no time" state; when it is false both halves must be
	// filled in.
	TimeFrom string `json:"time_from"`
	TimeTo   string `json:"time_to"`
	NoTime   bool   `json:"no_time"`
}

// NotesRequest carries an autosaved rich-text document.
type NotesRequest struct {
	Notes string `json:"notes"`
}

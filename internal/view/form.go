package view

import (
	"github.com/grh-water/water-console/internal/validator"
)

// FormState is the edit form's state
type FormState int

const (
	FormClosed FormState = iota
	FormOpenCreate
	FormOpenEdit
)

// Form is the create/edit modal's state machine. The draft is a copy of
// the record being edited (or a fresh template), so Cancel never leaks
// mutations back into the collection.
type Form[E any] struct {
	state     FormState
	draft     E
	editingID string
	errors    map[string]bool

	validator *validator.Validator
	values    func(E) map[string]string
}

// NewForm creates a form model. values extracts the label-to-value map the
// required-field validator checks.
func NewForm[E any](v *validator.Validator, values func(E) map[string]string) *Form[E] {
	return &Form[E]{
		state:     FormClosed,
		validator: v,
		values:    values,
		errors:    make(map[string]bool),
	}
}

// OpenCreate moves closed -> open-create with the given template draft.
func (f *Form[E]) OpenCreate(template E) {
	f.state = FormOpenCreate
	f.draft = template
	f.editingID = ""
	f.errors = make(map[string]bool)
}

// OpenEdit moves closed -> open-edit with a copy of the active record.
func (f *Form[E]) OpenEdit(id string, record E) {
	f.state = FormOpenEdit
	f.draft = record
	f.editingID = id
	f.errors = make(map[string]bool)
}

// Cancel returns to closed and discards the draft. No side effects.
func (f *Form[E]) Cancel() {
	var zero E
	f.state = FormClosed
	f.draft = zero
	f.editingID = ""
	f.errors = make(map[string]bool)
}

// Close is Cancel under its success-path name: called after a save went
// through.
func (f *Form[E]) Close() {
	f.Cancel()
}

// State returns the current form state.
func (f *Form[E]) State() FormState {
	return f.state
}

// Open reports whether the form is open in either mode.
func (f *Form[E]) Open() bool {
	return f.state != FormClosed
}

// Editing reports whether the form is in edit mode.
func (f *Form[E]) Editing() bool {
	return f.state == FormOpenEdit
}

// EditingID returns the id of the record being edited, or "" in create
// mode.
func (f *Form[E]) EditingID() string {
	return f.editingID
}

// Draft returns the in-progress draft.
func (f *Form[E]) Draft() E {
	return f.draft
}

// SetDraft replaces the draft (field edits go through here).
func (f *Form[E]) SetDraft(draft E) {
	f.draft = draft
}

// Validate runs the required-field checks on the draft. On failure the
// per-field error flags are set and the form must stay open; the resource
// client is never called for an invalid draft.
func (f *Form[E]) Validate() bool {
	result := f.validator.Validate(f.values(f.draft))
	f.errors = result.Missing
	return result.Valid
}

// FieldError reports whether the labeled field failed the last validation.
func (f *Form[E]) FieldError(label string) bool {
	return f.errors[label]
}

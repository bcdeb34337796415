package view

import (
	"testing"

	"github.com/grh-water/water-console/internal/validator"
)

type account struct {
	ID   string
	Name string
	Note string
}

func newAccountForm() *Form[account] {
	return NewForm(
		validator.NewValidator("Name"),
		func(a account) map[string]string {
			return map[string]string{"Name": a.Name, "Note": a.Note}
		},
	)
}

func TestFormStartsClosed(t *testing.T) {
	f := newAccountForm()
	if f.State() != FormClosed || f.Open() {
		t.Fatal("a new form is closed")
	}
}

func TestOpenCreate(t *testing.T) {
	f := newAccountForm()
	f.OpenCreate(account{Name: "template"})

	if f.State() != FormOpenCreate {
		t.Fatalf("expected open-create, got %v", f.State())
	}
	if f.Editing() {
		t.Error("create mode is not editing")
	}
	if f.EditingID() != "" {
		t.Error("create mode has no editing id")
	}
	if f.Draft().Name != "template" {
		t.Error("the template seeds the draft")
	}
}

func TestOpenEdit(t *testing.T) {
	f := newAccountForm()
	f.OpenEdit("7", account{ID: "7", Name: "stored"})

	if f.State() != FormOpenEdit || !f.Editing() {
		t.Fatal("expected open-edit")
	}
	if f.EditingID() != "7" {
		t.Errorf("expected editing id 7, got %q", f.EditingID())
	}
}

func TestCancelDiscardsDraft(t *testing.T) {
	f := newAccountForm()
	f.OpenEdit("7", account{ID: "7", Name: "stored"})

	draft := f.Draft()
	draft.Name = "edited but abandoned"
	f.SetDraft(draft)
	f.Cancel()

	if f.Open() {
		t.Fatal("cancel closes the form")
	}
	if f.Draft().Name != "" {
		t.Error("cancel drops the draft")
	}
	if f.EditingID() != "" {
		t.Error("cancel drops the editing id")
	}
}

func TestValidateFlagsMissingRequired(t *testing.T) {
	f := newAccountForm()
	f.OpenCreate(account{})

	if f.Validate() {
		t.Fatal("empty required field must fail validation")
	}
	if !f.FieldError("Name") {
		t.Error("Name must carry the error flag")
	}
	if f.State() != FormOpenCreate {
		t.Error("failed validation keeps the form open")
	}
}

func TestValidateClearsOldErrors(t *testing.T) {
	f := newAccountForm()
	f.OpenCreate(account{})
	f.Validate()

	f.SetDraft(account{Name: "filled in"})
	if !f.Validate() {
		t.Fatal("a complete draft passes")
	}
	if f.FieldError("Name") {
		t.Error("a passing validation clears the error flag")
	}
}

func TestReopenResetsErrors(t *testing.T) {
	f := newAccountForm()
	f.OpenCreate(account{})
	f.Validate()
	f.Cancel()

	f.OpenCreate(account{})
	if f.FieldError("Name") {
		t.Error("errors from a previous session must not leak into a fresh form")
	}
}

package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type device struct {
	ID   string
	Name string
	SN   string
}

func newDeviceList() *List[device] {
	return NewList(
		func(d device) string { return d.ID },
		func(d device) []string { return []string{d.Name, d.SN} },
	)
}

func sampleDevices() []device {
	return []device{
		{ID: "1", Name: "Estación Norte", SN: "SN-100"},
		{ID: "2", Name: "Estación Sur", SN: "SN-200"},
		{ID: "3", Name: "Bomba Central", SN: "SN-300"},
	}
}

func TestFilteredEmptySearchReturnsAll(t *testing.T) {
	l := newDeviceList()
	l.SetItems(sampleDevices())

	if diff := cmp.Diff(sampleDevices(), l.Filtered()); diff != "" {
		t.Errorf("unexpected filtering (-want +got):\n%s", diff)
	}
}

func TestFilteredIsCaseInsensitive(t *testing.T) {
	l := newDeviceList()
	l.SetItems(sampleDevices())
	l.SetSearch("estación")

	got := l.Filtered()
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}

	l.SetSearch("ESTACIÓN")
	if len(l.Filtered()) != 2 {
		t.Error("upper-case search must match the same records")
	}
}

func TestFilteredMatchesAnySearchField(t *testing.T) {
	l := newDeviceList()
	l.SetItems(sampleDevices())

	l.SetSearch("sn-300")
	got := l.Filtered()
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("serial search failed, got %v", got)
	}
}

func TestFilteredDoesNotMutateItems(t *testing.T) {
	l := newDeviceList()
	l.SetItems(sampleDevices())
	l.SetSearch("bomba")
	_ = l.Filtered()

	if len(l.Items()) != 3 {
		t.Error("filtering must not shrink the underlying collection")
	}

	l.SetSearch("")
	if len(l.Filtered()) != 3 {
		t.Error("clearing the search restores the full list")
	}
}

func TestSelectionLifecycle(t *testing.T) {
	l := newDeviceList()
	l.SetItems(sampleDevices())

	if _, ok := l.Active(); ok {
		t.Fatal("no selection after load")
	}

	l.Select("2")
	active, ok := l.Active()
	if !ok || active.ID != "2" {
		t.Fatalf("expected device 2 active, got %v (ok=%v)", active, ok)
	}

	// Selecting another record replaces the selection.
	l.Select("3")
	if l.ActiveID() != "3" {
		t.Errorf("expected 3 active, got %q", l.ActiveID())
	}

	l.ClearSelection()
	if l.ActiveID() != "" {
		t.Error("clear must drop the selection")
	}
}

func TestSetItemsClearsSelection(t *testing.T) {
	l := newDeviceList()
	l.SetItems(sampleDevices())
	l.Select("1")

	l.SetItems(sampleDevices())
	if _, ok := l.Active(); ok {
		t.Error("a reload drops the active record")
	}
}

func TestActiveGoneFromCollection(t *testing.T) {
	l := newDeviceList()
	l.SetItems(sampleDevices())
	l.Select("2")

	// Simulate the record disappearing without a SetItems call.
	l.items = l.items[:1]
	if _, ok := l.Active(); ok {
		t.Error("a selection pointing at a removed record is not active")
	}
	if l.ActiveID() != "" {
		t.Error("ActiveID follows Active")
	}
}

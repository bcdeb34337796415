package model

// Status is the console-side device/account status. The backend vocabulary
// is "Installed"/"Inactive"; the two are translated through a fixed two-way
// mapping and nothing else ever appears in the UI.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// StatusFromBackend maps the backend's status vocabulary to the console
// enum. Anything that is not "Installed" counts as inactive.
func StatusFromBackend(s string) Status {
	if s == "Installed" {
		return StatusActive
	}
	return StatusInactive
}

// Backend maps the console enum back to the backend vocabulary.
func (s Status) Backend() string {
	if s == StatusActive {
		return "Installed"
	}
	return "Inactive"
}

// Toggle flips between the two states.
func (s Status) Toggle() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

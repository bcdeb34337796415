package validator

import "testing"

func TestValidatePassesWhenAllPresent(t *testing.T) {
	v := NewValidator("Name", "Email")
	result := v.Validate(map[string]string{"Name": "Ana", "Email": "a@b.c", "Extra": ""})

	if !result.Valid {
		t.Fatal("expected valid result")
	}
	if len(result.Missing) != 0 {
		t.Errorf("expected no missing fields, got %v", result.Missing)
	}
}

func TestValidateFlagsMissingFields(t *testing.T) {
	v := NewValidator("Name", "Email", "Role")
	result := v.Validate(map[string]string{"Name": "Ana"})

	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if !result.Missing["Email"] || !result.Missing["Role"] {
		t.Errorf("expected Email and Role flagged, got %v", result.Missing)
	}
	if result.Missing["Name"] {
		t.Error("Name was present and must not be flagged")
	}
}

func TestValidateTreatsBlankAsMissing(t *testing.T) {
	v := NewValidator("Name")
	result := v.Validate(map[string]string{"Name": "   \t"})

	if result.Valid {
		t.Fatal("whitespace-only value must not satisfy a required field")
	}
	if !result.Missing["Name"] {
		t.Errorf("expected Name flagged, got %v", result.Missing)
	}
}

func TestValidateNoRequiredFields(t *testing.T) {
	v := NewValidator()
	if result := v.Validate(nil); !result.Valid {
		t.Error("validator with no required fields must always pass")
	}
}

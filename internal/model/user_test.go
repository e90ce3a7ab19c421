package model

import (
	"testing"
)

func TestSetPasswordMarksDirty(t *testing.T) {
	user := User{Password: "stored-hash"}

	if user.PasswordChanged {
		t.Fatal("fresh record must not be marked dirty")
	}

	user.SetPassword("new-secret")

	if !user.PasswordChanged {
		t.Error("expected PasswordChanged after SetPassword")
	}
	if user.Password != "new-secret" {
		t.Errorf("expected staged plaintext, got %q", user.Password)
	}
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()

	if prefs.StudyHoursPerDay != 2 {
		t.Errorf("expected 2 study hours per day, got %d", prefs.StudyHoursPerDay)
	}
	if prefs.DifficultyLevel != DifficultyMedium {
		t.Errorf("expected medium difficulty, got %q", prefs.DifficultyLevel)
	}
	if !prefs.Notifications.Email || !prefs.Notifications.Reminders {
		t.Errorf("expected notifications on by default, got %+v", prefs.Notifications)
	}
}

func TestPreferencesValidate(t *testing.T) {
	prefs := Preferences{
		StudyDays:        []string{"monday", "Wednesday", "friday"},
		StudyHoursPerDay: 3,
	}
	if err := prefs.Validate(); err != nil {
		t.Errorf("expected weekday names to pass, got %v", err)
	}

	prefs.StudyHoursPerDay = 13
	if err := prefs.Validate(); err == nil {
		t.Error("expected rejection of 13 study hours")
	}

	prefs.StudyHoursPerDay = 3
	prefs.StudyDays = []string{"monday", "someday"}
	if err := prefs.Validate(); err == nil {
		t.Error("expected rejection of a non-weekday study day")
	}

	if err := DefaultPreferences().Validate(); err != nil {
		t.Errorf("defaults must validate, got %v", err)
	}
}

func TestGoalListScanValue(t *testing.T) {
	goals := GoalList{
		{GoalID: "g1", Title: "Learn Go", Category: "programming", Priority: PriorityHigh, Status: GoalActive},
	}

	value, err := goals.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var decoded GoalList
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(decoded) != 1 || decoded[0].GoalID != "g1" || decoded[0].Priority != PriorityHigh {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
}

func TestGoalListNilValue(t *testing.T) {
	var goals GoalList

	value, err := goals.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if string(value.([]byte)) != "[]" {
		t.Errorf("expected empty array for nil list, got %s", value)
	}
}

func TestPhaseListScanValue(t *testing.T) {
	phases := PhaseList{
		{PhaseNumber: 1, Title: "Basics", Topics: []Topic{{TopicID: "t1", Title: "Syntax", IsCompleted: true}}},
	}

	value, err := phases.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var decoded PhaseList
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(decoded) != 1 || len(decoded[0].Topics) != 1 || !decoded[0].Topics[0].IsCompleted {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
}

func TestJSONScanNilAndEmpty(t *testing.T) {
	var goals GoalList
	if err := goals.Scan(nil); err != nil {
		t.Errorf("nil scan: %v", err)
	}
	if err := goals.Scan([]byte{}); err != nil {
		t.Errorf("empty scan: %v", err)
	}
	if err := goals.Scan(42); err == nil {
		t.Error("expected error for unsupported src type")
	}
}

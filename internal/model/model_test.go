package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestLevelFormParsesAndValidates(t *testing.T) {
	level, err := LevelForm{ID: " 7 ", Name: " Polargeist ", Creator: "RobTop"}.Level()
	if err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
	if level.ID != 7 || level.Name != "Polargeist" {
		t.Fatalf("expected trimmed id 7 and name, got %d %q", level.ID, level.Name)
	}
	if level.Copies == nil {
		t.Fatalf("expected non-nil copies after normalize")
	}
}

func TestLevelFormRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		form  LevelForm
		field string
	}{
		{"missing id", LevelForm{Name: "a", Creator: "b"}, "id"},
		{"non numeric id", LevelForm{ID: "12a", Name: "a", Creator: "b"}, "id"},
		{"blank name", LevelForm{ID: "1", Name: "  ", Creator: "b"}, "name"},
		{"blank creator", LevelForm{ID: "1", Name: "a"}, "creator"},
	}
	for _, tc := range cases {
		_, err := tc.form.Level()
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
		if ve.Field != tc.field {
			t.Fatalf("%s: expected field %q, got %q", tc.name, tc.field, ve.Field)
		}
	}
}

func TestCopyFormNormalizesStatusAndTags(t *testing.T) {
	c, err := CopyForm{ID: "101", Creator: "X", Status: " Approved ", Tags: []string{" ldm ", "", "2p"}}.Copy()
	if err != nil {
		t.Fatalf("expected valid copy, got %v", err)
	}
	if c.Status != CopyStatusApproved {
		t.Fatalf("expected approved, got %q", c.Status)
	}
	if len(c.Tags) != 2 || c.Tags[0] != "ldm" || c.Tags[1] != "2p" {
		t.Fatalf("expected cleaned tags, got %#v", c.Tags)
	}
	if c.DisplayName() != UnnamedCopy {
		t.Fatalf("expected unnamed display name, got %q", c.DisplayName())
	}
}

func TestCopyFormRejectsUnknownStatus(t *testing.T) {
	_, err := CopyForm{ID: "1", Creator: "X", Status: "maybe"}.Copy()
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "status" {
		t.Fatalf("expected status ValidationError, got %v", err)
	}
}

func TestCountsAndClone(t *testing.T) {
	level := Level{ID: 1, Name: "a", Creator: "b", Copies: []Copy{
		{ID: 1, Creator: "x", Status: CopyStatusApproved, Tags: []string{"t"}},
		{ID: 2, Creator: "y", Status: CopyStatusRejected},
		{ID: 3, Creator: "z", Status: CopyStatusRejected},
	}}
	counts := level.Counts()
	if counts != (StatusCounts{Approved: 1, Rejected: 2, Total: 3}) {
		t.Fatalf("unexpected counts %+v", counts)
	}

	clone := level.Clone()
	clone.Copies[0].Tags[0] = "changed"
	clone.Copies[1].Creator = "changed"
	if level.Copies[0].Tags[0] != "t" || level.Copies[1].Creator != "y" {
		t.Fatalf("expected clone to share no data with the original")
	}
}

func TestSortByIDIsStable(t *testing.T) {
	levels := []Level{{ID: 5, Name: "e"}, {ID: 1, Name: "a"}, {ID: 3, Name: "c"}, {ID: 1, Name: "b"}}
	SortByID(levels)
	got := []string{levels[0].Name, levels[1].Name, levels[2].Name, levels[3].Name}
	want := []string{"a", "b", "c", "e"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestFormRoundTripFromLevel(t *testing.T) {
	form := LevelFormFrom(Level{ID: 42, Name: "n", Creator: "c", Description: "d"})
	if form.ID != "42" || form.Description != "d" {
		t.Fatalf("unexpected form %+v", form)
	}
	copyForm := CopyFormFrom(Copy{ID: 9, Creator: "x", Status: CopyStatusPending, Reason: "why"})
	if copyForm.ID != "9" || copyForm.Status != "pending" || copyForm.Reason != "why" {
		t.Fatalf("unexpected copy form %+v", copyForm)
	}
}

func TestCheckCatalog(t *testing.T) {
	levels := []Level{
		{ID: 1, Name: "a", Creator: "b", Copies: []Copy{
			{ID: 10, Creator: "x", Status: CopyStatusApproved},
			{ID: 10, Creator: "y", Status: CopyStatusPending},
		}},
		{ID: 1, Name: "dup", Creator: "b"},
		{ID: 2, Name: "", Creator: "b", Copies: []Copy{{ID: 1, Status: "bogus"}}},
	}
	problems := CheckCatalog(levels)

	var errs, warnings int
	for _, p := range problems {
		if p.Warning {
			warnings++
		} else {
			errs++
		}
	}
	// duplicate level id, missing name, copy without creator
	if errs != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", errs, problems)
	}
	if warnings != 1 {
		t.Fatalf("expected 1 repeated copy id warning, got %d", warnings)
	}
}

func TestFormIDAcceptsNumbersAndText(t *testing.T) {
	cases := map[string]FormID{
		`{"id":5}`:      "5",
		`{"id":"5"}`:    "5",
		`{"id":" 12 "}`: "12",
		`{"id":null}`:   "",
	}
	for body, want := range cases {
		var form LevelForm
		if err := json.Unmarshal([]byte(body), &form); err != nil {
			t.Fatalf("%s: unexpected error %v", body, err)
		}
		if form.ID != want {
			t.Fatalf("%s: expected id %q, got %q", body, want, form.ID)
		}
	}

	var form LevelForm
	if err := json.Unmarshal([]byte(`{"id":true}`), &form); err == nil {
		t.Fatalf("expected a boolean id to be rejected")
	}
	if err := json.Unmarshal([]byte(`{"id":5.5,"name":"a","creator":"b"}`), &form); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if _, err := form.Level(); err == nil {
		t.Fatalf("expected a fractional id to fail validation")
	}
}

func TestFormStatusIsNormalizedOnDecode(t *testing.T) {
	var form CopyForm
	if err := json.Unmarshal([]byte(`{"id":1,"creator":"x","status":" Approved "}`), &form); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if form.Status != "approved" {
		t.Fatalf("expected approved, got %q", form.Status)
	}
	if err := json.Unmarshal([]byte(`{"status":3}`), &form); err == nil {
		t.Fatalf("expected a numeric status to be rejected")
	}
}

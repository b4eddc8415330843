package convert

import (
	"errors"
	"reflect"
	"regexp"
	"testing"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
)

func TestMeetingDate(t *testing.T) {
	tests := []struct {
		raw  string
		want courseplanner.MeetingDate
	}{
		{"03 Mar - 10 Mar", courseplanner.MeetingDate{Start: "03-03", End: "03-10"}},
		{"3 Mar - 10 Mar", courseplanner.MeetingDate{Start: "03-03", End: "03-10"}},
		{"28 Jul - 1 Sep", courseplanner.MeetingDate{Start: "07-28", End: "09-01"}},
		{"1 Jan - 31 Dec", courseplanner.MeetingDate{Start: "01-01", End: "12-31"}},
	}

	mmdd := regexp.MustCompile(`^\d{2}-\d{2}$`)
	for _, tt := range tests {
		got, err := MeetingDate(tt.raw)
		if err != nil {
			t.Fatalf("MeetingDate(%q) returned error: %s", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("MeetingDate(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
		if !mmdd.MatchString(got.Start) || !mmdd.MatchString(got.End) {
			t.Errorf("MeetingDate(%q) = %+v, not MM-DD", tt.raw, got)
		}
	}
}

func TestMeetingDateMalformed(t *testing.T) {
	for _, raw := range []string{
		"03 Mar 10 Mar",
		"03 Mar - 10 Mar - 12 Mar",
		"03 March - 10 Mar",
		"03 Mar - 10 mar",
		"Mar - 10 Mar",
		"",
	} {
		_, err := MeetingDate(raw)
		if !errors.Is(err, courseplanner.ErrMalformedField) {
			t.Errorf("MeetingDate(%q) error = %v, want ErrMalformedField", raw, err)
		}
	}
}

func TestMeetingTime(t *testing.T) {
	tests := map[string]string{
		"2pm":  "14:00",
		"10am": "10:00",
		"9am":  "09:00",
		"1PM":  "13:00",
		"12am": "12:00",
		"12pm": "24:00",
		"1 pm": "13:00",
	}

	hhmm := regexp.MustCompile(`^\d{2}:00$`)
	for raw, want := range tests {
		got, err := MeetingTime(raw)
		if err != nil {
			t.Fatalf("MeetingTime(%q) returned error: %s", raw, err)
		}
		if got != want {
			t.Errorf("MeetingTime(%q) = %q, want %q", raw, got, want)
		}
		if !hhmm.MatchString(got) {
			t.Errorf("MeetingTime(%q) = %q, not HH:00", raw, got)
		}
	}
}

func TestMeetingTimeMalformed(t *testing.T) {
	for _, raw := range []string{"", "pm", "noon", "xxpm"} {
		if _, err := MeetingTime(raw); !errors.Is(err, courseplanner.ErrMalformedField) {
			t.Errorf("MeetingTime(%q) error = %v, want ErrMalformedField", raw, err)
		}
	}
}

func TestRequisite(t *testing.T) {
	if got := Requisite(""); got != nil {
		t.Errorf("Requisite(\"\") = %+v, want nil", got)
	}

	if got := Requisite("Admission to the program"); got != nil {
		t.Errorf("Requisite with no course codes = %+v, want nil", got)
	}

	raw := "COMP SCI 1103, COMP SCI 2202"
	got := Requisite(raw)
	want := &courseplanner.Requisite{Description: raw, Subjects: []string{"COMP SCI 1103", "COMP SCI 2202"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Requisite(%q) = %+v, want %+v", raw, got, want)
	}
}

func TestRequisiteKeepsOrderAndDuplicates(t *testing.T) {
	raw := "MATHS 1012 or COMP SCI 2202B, and MATHS 1012"
	got := Requisite(raw)
	if got == nil {
		t.Fatalf("Requisite(%q) = nil", raw)
	}

	want := []string{"MATHS 1012", "COMP SCI 2202B", "MATHS 1012"}
	if !reflect.DeepEqual(got.Subjects, want) {
		t.Errorf("subjects = %v, want %v", got.Subjects, want)
	}
	if got.Description != raw {
		t.Errorf("description = %q, want original text", got.Description)
	}
}

func TestTermAlias(t *testing.T) {
	tests := map[string]string{
		"sem1":          "Semester 1",
		"sem2":          "Semester 2",
		"sem":           "Semester",
		"tri3":          "Trimester 3",
		"term4":         "Term 4",
		"elc1":          "ELC Term 1",
		"ol2":           "Online Teaching Period 2",
		"melb1":         "Melb Teaching Period 1",
		"pce2":          "PCE Term 2",
		"fast":          "Fast Track",
		"fast1":         "Fast Track",
		"summer":        "Summer School",
		"winter2":       "Winter School",
		"Semester 1":    "Semester 1",
		"unknown_alias": "unknown_alias",
		"":              "",
	}

	for alias, want := range tests {
		if got := TermAlias(alias); got != want {
			t.Errorf("TermAlias(%q) = %q, want %q", alias, got, want)
		}
	}
}

func TestRequisiteUnicodeText(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"COMP SCI\u00a01103", []string{"COMP SCI 1103"}},
		{"COMP\u00a0SCI 1103", []string{"COMP\u00a0SCI 1103"}},
		{"MATHS\u20031012", []string{"MATHS 1012"}},
		{"MATHS 1012\u00e9", []string{"MATHS 1012\u00e9"}},
		{"ELEC\u2009ENG 2100 or MATHS 1012", []string{"ELEC\u2009ENG 2100", "MATHS 1012"}},
		{"(COMP SCI 1103)", []string{"COMP SCI 1103"}},
	}

	for _, tt := range tests {
		got := Requisite(tt.raw)
		if got == nil {
			t.Errorf("Requisite(%q) = nil, want %q", tt.raw, tt.want)
			continue
		}
		if !reflect.DeepEqual(got.Subjects, tt.want) {
			t.Errorf("Requisite(%q) subjects = %q, want %q", tt.raw, got.Subjects, tt.want)
		}
	}
}

func TestRequisiteNeedsWordBoundary(t *testing.T) {
	for _, raw := range []string{"xCOMP 1103", "\u00e9COMP 1103", "_MATHS 1012"} {
		if got := Requisite(raw); got != nil {
			t.Errorf("Requisite(%q) = %+v, want nil", raw, got)
		}
	}
}

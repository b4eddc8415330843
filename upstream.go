package courseplanner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Raw row shapes as returned by the course planner API

// TermCode is the upstream's numeric term identifier. The API is not consistent about
// sending it as a number or a string, so both are accepted.
type TermCode string

func (c *TermCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = TermCode(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("term code must be a string or number: %w", err)
	}
	*c = TermCode(n.String())
	return nil
}

func (c TermCode) MarshalJSON() ([]byte, error) {
	// only canonical integers go out bare, "0150" or "+5" would not be valid JSON numbers
	if n, err := strconv.ParseInt(string(c), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(c) {
		return []byte(c), nil
	}
	return json.Marshal(string(c))
}

type RawTermEntry struct {
	Code        TermCode `json:"TERM"`
	Description string   `json:"DESCR"`
}

type RawCriticalDates struct {
	LastDay      string `json:"LAST_DAY"`
	CensusDate   string `json:"CENSUS_DT"`
	LastDayToWFN string `json:"LAST_DAY_TO_WFN"`
	LastDayToWF  string `json:"LAST_DAY_TO_WF"`
}

type RawCourseDetail struct {
	Subject          string           `json:"SUBJECT"`
	CatalogNumber    string           `json:"CATALOG_NBR"`
	Title            string           `json:"COURSE_TITLE"`
	ClassNumber      json.RawMessage  `json:"CLASS_NBR"`
	Year             json.RawMessage  `json:"YEAR"`
	TermDescription  string           `json:"TERM_DESCR"`
	Campus           string           `json:"CAMPUS"`
	Career           string           `json:"ACAD_CAREER_DESCR"`
	Units            json.RawMessage  `json:"UNITS"`
	Restriction      string           `json:"RESTRICTION"`
	RestrictionText  string           `json:"RESTRICTION_TXT"`
	PreRequisite     string           `json:"PRE_REQUISITE"`
	CoRequisite      string           `json:"CO_REQUISITE"`
	AssumedKnowledge string           `json:"ASSUMED_KNOWLEDGE"`
	Incompatible     string           `json:"INCOMPATIBLE"`
	Syllabus         string           `json:"SYLLABUS"`
	Assessment       string           `json:"ASSESSMENT"`
	Contact          string           `json:"CONTACT"`
	CriticalDates    RawCriticalDates `json:"CRITICAL_DATES"`
	URL              string           `json:"URL"`
}

type RawMeeting struct {
	Days      string `json:"days"`
	Dates     string `json:"dates"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location"`
}

type RawClass struct {
	ClassNumber json.RawMessage   `json:"class_nbr"`
	Section     string            `json:"section"`
	Size        json.RawMessage   `json:"size"`
	Enrolled    json.RawMessage   `json:"enrolled"`
	Available   json.RawMessage   `json:"available"`
	Notes       []json.RawMessage `json:"notes"`
	Meetings    []RawMeeting      `json:"meetings"`
}

type RawClassGroup struct {
	Type    string     `json:"type"`
	Classes []RawClass `json:"classes"`
}

type RawClassList struct {
	Groups []RawClassGroup `json:"groups"`
}

type RawCourseRow struct {
	CourseID      json.RawMessage `json:"COURSE_ID"`
	Subject       string          `json:"SUBJECT"`
	CatalogNumber string          `json:"CATALOG_NBR"`
	Title         string          `json:"COURSE_TITLE"`
	Career        string          `json:"ACAD_CAREER_DESCR"`
	Year          json.RawMessage `json:"YEAR"`
	Units         json.RawMessage `json:"UNITS"`
	Campus        string          `json:"CAMPUS"`
}

// SearchQuery filters a course search. An empty Term searches every term of the year.
type SearchQuery struct {
	Year       int
	Term       TermCode
	MaxResults int
}

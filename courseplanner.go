package courseplanner

import (
	"context"
	"encoding/json"
	"time"
)

// Domain types are defined in this file

// Requisite is a free-text requisite along with the course codes found in it.
type Requisite struct {
	Description string   `json:"description"`
	Subjects    []string `json:"subjects"`
}

// MeetingDate holds "MM-DD" dates
type MeetingDate struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MeetingTime holds "HH:00" times
type MeetingTime struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ClassMeeting struct {
	Day      string      `json:"day"`
	Date     MeetingDate `json:"date"`
	Time     MeetingTime `json:"time"`
	Location string      `json:"location"`
}

type Capacity struct {
	Size      json.RawMessage `json:"size"`
	Enrolled  json.RawMessage `json:"enrolled"`
	Available json.RawMessage `json:"available"`
}

type ClassSection struct {
	Number   json.RawMessage   `json:"number"`
	Section  string            `json:"section"`
	Capacity Capacity          `json:"capacity"`
	Notes    []json.RawMessage `json:"notes"`
	Meetings []ClassMeeting    `json:"meetings"`
}

type ClassGroup struct {
	Type    string         `json:"type"`
	Classes []ClassSection `json:"classes"`
}

type CourseName struct {
	Subject string `json:"subject"`
	Code    string `json:"code"`
	Title   string `json:"title"`
}

// Requirement is nil-valued per slot when the upstream has nothing usable for it
type Requirement struct {
	Restriction      *string    `json:"restriction"`
	Prerequisite     *Requisite `json:"prerequisite"`
	Corequisite      *Requisite `json:"corequisite"`
	AssumedKnowledge *Requisite `json:"assumed_knowledge"`
	Incompatible     *Requisite `json:"incompatible"`
}

type CriticalDates struct {
	LastDayAddOnline string `json:"last_day_add_online"`
	CensusDate       string `json:"census_date"`
	LastDayWNF       string `json:"last_day_wnf"`
	LastDayWF        string `json:"last_day_wf"`
}

// CourseRecord is the full normalized view of one course offering
type CourseRecord struct {
	CourseID      int             `json:"course_id"`
	Name          CourseName      `json:"name"`
	ClassNumber   json.RawMessage `json:"class_number"`
	Year          json.RawMessage `json:"year"`
	Term          string          `json:"term"`
	Campus        string          `json:"campus"`
	Career        string          `json:"career"`
	Units         json.RawMessage `json:"units"`
	Requirement   Requirement     `json:"requirement"`
	Description   string          `json:"description"`
	Assessment    string          `json:"assessment"`
	Contact       string          `json:"contact"`
	CriticalDates CriticalDates   `json:"critical_dates"`
	OutlineURL    string          `json:"outline_url"`
	ClassList     []ClassGroup    `json:"class_list"`
}

// CourseSummary is the lightweight record returned by list queries.
// Term echoes what the caller asked for, nil when no term filter was given.
type CourseSummary struct {
	CourseID json.RawMessage `json:"course_id"`
	Name     string          `json:"name"`
	Title    string          `json:"title"`
	Subject  string          `json:"subject"`
	Number   string          `json:"number"`
	Career   string          `json:"career"`
	Year     json.RawMessage `json:"year"`
	Term     *string         `json:"term"`
	Units    json.RawMessage `json:"units"`
	Campus   string          `json:"campus"`
}

// Upstream is the course planner API. Every call hits the network, nothing is cached.
type Upstream interface {
	Terms(ctx context.Context) ([]RawTermEntry, error)
	CourseDetail(ctx context.Context, courseID, year int, term TermCode) (RawCourseDetail, error)
	ClassList(ctx context.Context, courseID int, term TermCode) (RawClassList, error)
	SearchCourses(ctx context.Context, query SearchQuery) ([]RawCourseRow, error)
}

// Service that turns a (year, term) pair into an upstream term code
type TermResolver interface {
	Resolve(ctx context.Context, year int, term string) (TermCode, error)
}

// Service that assembles normalized course data
type CourseService interface {
	GetCourse(ctx context.Context, courseID, year int, term string) (CourseRecord, error)
	ListCourses(ctx context.Context, year int, term *string) ([]CourseSummary, error)
}

// A single served request, kept for the lookup history
type Lookup struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	CourseID   int       `json:"course_id"`
	Year       int       `json:"year"`
	Term       string    `json:"term"`
	OK         bool      `json:"ok"`
	Error      string    `json:"error"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	LookupCourse   = "course"
	LookupCourses  = "courses"
	LookupCalendar = "calendar"
)

// Stores the lookup history
type LookupRepository interface {
	Record(ctx context.Context, lookup Lookup) error
	Recent(ctx context.Context, limit int) ([]Lookup, error)
	Close() error
}

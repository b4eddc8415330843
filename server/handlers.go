package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/hlog"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
	"github.com/jacobmichels/Course-Planner-Go/calendar"
	"github.com/jacobmichels/Course-Planner-Go/catalog"
)

const (
	defaultLookupLimit = 50
	maxLookupLimit     = 500
)

// errBadRequest marks failures in the inbound parameters themselves
var errBadRequest = errors.New("bad request")

func (s Server) pingHandler() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		if _, err := w.Write([]byte("OK")); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("error writing ping response")
		}
	}
}

type courseQuery struct {
	courseID int
	year     int
	term     string
}

// course_id from the path, year and term from the query with the current year and semester as defaults
func (s Server) parseCourseQuery(r *http.Request, p httprouter.Params) (courseQuery, error) {
	courseID, err := strconv.Atoi(p.ByName("course_id"))
	if err != nil {
		return courseQuery{}, fmt.Errorf("%w: course id %q is not a number", errBadRequest, p.ByName("course_id"))
	}

	now := s.now()
	year, err := parseYear(r, now)
	if err != nil {
		return courseQuery{}, err
	}

	term := catalog.DefaultTerm(now)
	if r.URL.Query().Has("term") {
		term = r.URL.Query().Get("term")
	}

	return courseQuery{courseID, year, term}, nil
}

func parseYear(r *http.Request, now time.Time) (int, error) {
	if !r.URL.Query().Has("year") {
		return catalog.DefaultYear(now), nil
	}

	raw := r.URL.Query().Get("year")
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: year %q is not a number", errBadRequest, raw)
	}
	return year, nil
}

func (s Server) courseHandler() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		started := time.Now()
		lookup := courseplanner.Lookup{Kind: courseplanner.LookupCourse}

		q, err := s.parseCourseQuery(r, p)
		if err != nil {
			writeError(w, r, err)
			s.record(r, lookup, started, err)
			return
		}
		lookup.CourseID, lookup.Year, lookup.Term = q.courseID, q.year, q.term

		record, err := s.courses.GetCourse(r.Context(), q.courseID, q.year, q.term)
		s.record(r, lookup, started, err)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, record)
	}
}

func (s Server) calendarHandler() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		started := time.Now()
		lookup := courseplanner.Lookup{Kind: courseplanner.LookupCalendar}

		q, err := s.parseCourseQuery(r, p)
		if err != nil {
			writeError(w, r, err)
			s.record(r, lookup, started, err)
			return
		}
		lookup.CourseID, lookup.Year, lookup.Term = q.courseID, q.year, q.term

		record, err := s.courses.GetCourse(r.Context(), q.courseID, q.year, q.term)
		if err != nil {
			s.record(r, lookup, started, err)
			writeError(w, r, err)
			return
		}

		cal, err := calendar.Build(record, q.year, s.location, s.now())
		s.record(r, lookup, started, err)
		if err != nil {
			writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%d.ics"`, q.courseID))
		if _, err := w.Write([]byte(cal.Serialize())); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("error writing calendar response")
		}
	}
}

func (s Server) coursesHandler() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		started := time.Now()
		lookup := courseplanner.Lookup{Kind: courseplanner.LookupCourses}

		year, err := parseYear(r, s.now())
		if err != nil {
			writeError(w, r, err)
			s.record(r, lookup, started, err)
			return
		}
		lookup.Year = year

		// no term means every term of the year
		var term *string
		if r.URL.Query().Has("term") {
			t := r.URL.Query().Get("term")
			term = &t
			lookup.Term = t
		}

		courses, err := s.courses.ListCourses(r.Context(), year, term)
		s.record(r, lookup, started, err)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, courses)
	}
}

func (s Server) lookupsHandler() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		limit := defaultLookupLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				writeError(w, r, fmt.Errorf("%w: limit %q must be a positive number", errBadRequest, raw))
				return
			}
			limit = min(n, maxLookupLimit)
		}

		lookups, err := s.lookups.Recent(r.Context(), limit)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if lookups == nil {
			lookups = []courseplanner.Lookup{}
		}

		writeJSON(w, r, lookups)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("error encoding response")
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, courseplanner.ErrInvalidTerm),
		errors.Is(err, courseplanner.ErrInvalidYear):
		return http.StatusBadRequest
	case errors.Is(err, courseplanner.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, courseplanner.ErrMalformedField),
		errors.Is(err, courseplanner.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		hlog.FromRequest(r).Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		hlog.FromRequest(r).Info().Err(err).Int("status", status).Msg("request rejected")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("error encoding error response")
	}
}

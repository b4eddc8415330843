package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
	"github.com/jacobmichels/Course-Planner-Go/convert"
)

// upstream's value for available seats on a full class
const fullSentinel = "FULL"

func (c Catalog) GetCourse(ctx context.Context, courseID, year int, term string) (courseplanner.CourseRecord, error) {
	// Assembly steps
	// 1. Resolve the term to a term code
	// 2. Fetch the course detail and class list, they don't depend on each other
	// 3. Convert every meeting, capacity and requisite
	// Any failure fails the whole record, there are no partial results

	code, err := c.terms.Resolve(ctx, year, term)
	if err != nil {
		return courseplanner.CourseRecord{}, err
	}

	var (
		detail  courseplanner.RawCourseDetail
		classes courseplanner.RawClassList
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail, err = c.upstream.CourseDetail(gctx, courseID, year, code)
		if err != nil {
			return fmt.Errorf("failed to fetch course detail for %d: %w", courseID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		classes, err = c.upstream.ClassList(gctx, courseID, code)
		if err != nil {
			return fmt.Errorf("failed to fetch class list for %d: %w", courseID, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return courseplanner.CourseRecord{}, err
	}

	classList, err := convertClassList(classes)
	if err != nil {
		return courseplanner.CourseRecord{}, fmt.Errorf("failed to convert class list for %d: %w", courseID, err)
	}

	log.Debug().Int("course_id", courseID).Str("term_code", string(code)).Int("groups", len(classList)).Msg("assembled course")

	return courseplanner.CourseRecord{
		CourseID: courseID,
		Name: courseplanner.CourseName{
			Subject: detail.Subject,
			Code:    detail.CatalogNumber,
			Title:   detail.Title,
		},
		ClassNumber:   detail.ClassNumber,
		Year:          detail.Year,
		Term:          detail.TermDescription,
		Campus:        detail.Campus,
		Career:        detail.Career,
		Units:         detail.Units,
		Requirement:   requirement(detail),
		Description:   detail.Syllabus,
		Assessment:    detail.Assessment,
		Contact:       detail.Contact,
		CriticalDates: criticalDates(detail.CriticalDates),
		OutlineURL:    detail.URL,
		ClassList:     classList,
	}, nil
}

func requirement(detail courseplanner.RawCourseDetail) courseplanner.Requirement {
	var restriction *string
	if detail.Restriction == "Y" {
		text := detail.RestrictionText
		restriction = &text
	}

	return courseplanner.Requirement{
		Restriction:      restriction,
		Prerequisite:     convert.Requisite(detail.PreRequisite),
		Corequisite:      convert.Requisite(detail.CoRequisite),
		AssumedKnowledge: convert.Requisite(detail.AssumedKnowledge),
		Incompatible:     convert.Requisite(detail.Incompatible),
	}
}

// already display ready upstream, passed through as is
func criticalDates(raw courseplanner.RawCriticalDates) courseplanner.CriticalDates {
	return courseplanner.CriticalDates{
		LastDayAddOnline: raw.LastDay,
		CensusDate:       raw.CensusDate,
		LastDayWNF:       raw.LastDayToWFN,
		LastDayWF:        raw.LastDayToWF,
	}
}

func convertClassList(raw courseplanner.RawClassList) ([]courseplanner.ClassGroup, error) {
	groups := make([]courseplanner.ClassGroup, 0, len(raw.Groups))
	for _, rawGroup := range raw.Groups {
		group := courseplanner.ClassGroup{
			Type:    rawGroup.Type,
			Classes: make([]courseplanner.ClassSection, 0, len(rawGroup.Classes)),
		}

		for _, rawClass := range rawGroup.Classes {
			class, err := convertClass(rawClass)
			if err != nil {
				return nil, fmt.Errorf("%s class %s: %w", rawGroup.Type, rawClass.Section, err)
			}
			group.Classes = append(group.Classes, class)
		}

		groups = append(groups, group)
	}

	return groups, nil
}

func convertClass(raw courseplanner.RawClass) (courseplanner.ClassSection, error) {
	notes := raw.Notes
	if notes == nil {
		notes = []json.RawMessage{}
	}

	meetings := make([]courseplanner.ClassMeeting, 0, len(raw.Meetings))
	for _, rawMeeting := range raw.Meetings {
		meeting, err := convertMeeting(rawMeeting)
		if err != nil {
			return courseplanner.ClassSection{}, err
		}
		meetings = append(meetings, meeting)
	}

	return courseplanner.ClassSection{
		Number:  raw.ClassNumber,
		Section: raw.Section,
		Capacity: courseplanner.Capacity{
			Size:      raw.Size,
			Enrolled:  raw.Enrolled,
			Available: available(raw.Available),
		},
		Notes:    notes,
		Meetings: meetings,
	}, nil
}

func convertMeeting(raw courseplanner.RawMeeting) (courseplanner.ClassMeeting, error) {
	date, err := convert.MeetingDate(raw.Dates)
	if err != nil {
		return courseplanner.ClassMeeting{}, err
	}
	start, err := convert.MeetingTime(raw.StartTime)
	if err != nil {
		return courseplanner.ClassMeeting{}, err
	}
	end, err := convert.MeetingTime(raw.EndTime)
	if err != nil {
		return courseplanner.ClassMeeting{}, err
	}

	return courseplanner.ClassMeeting{
		Day:      raw.Days,
		Date:     date,
		Time:     courseplanner.MeetingTime{Start: start, End: end},
		Location: raw.Location,
	}, nil
}

// a full class reports "FULL" instead of a number
func available(raw json.RawMessage) json.RawMessage {
	var s string
	if err := json.Unmarshal(bytes.TrimSpace(raw), &s); err == nil && s == fullSentinel {
		return json.RawMessage("0")
	}
	return raw
}

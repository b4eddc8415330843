package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
)

const untilFormat = "20060102T150405Z"

var weekdays = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// Build renders every class meeting of a course as a weekly recurring event.
// Meeting dates carry no year, so the year the course was requested for is used.
func Build(record courseplanner.CourseRecord, year int, loc *time.Location, stamp time.Time) (*ics.Calendar, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Course Planner Go//Course Calendar//EN")

	for _, group := range record.ClassList {
		for _, class := range group.Classes {
			for i, meeting := range class.Meetings {
				if err := addMeeting(cal, record, group.Type, class, i, meeting, year, loc, stamp); err != nil {
					return nil, fmt.Errorf("%s %s meeting %d: %w", group.Type, class.Section, i, err)
				}
			}
		}
	}

	return cal, nil
}

func addMeeting(cal *ics.Calendar, record courseplanner.CourseRecord, groupType string, class courseplanner.ClassSection, index int, meeting courseplanner.ClassMeeting, year int, loc *time.Location, stamp time.Time) error {
	day, err := date(year, meeting.Date.Start, loc)
	if err != nil {
		return err
	}
	last, err := date(year, meeting.Date.End, loc)
	if err != nil {
		return err
	}
	until := last.AddDate(0, 0, 1).Add(-time.Second)

	weekday, recurring := parseWeekday(meeting.Day)
	if recurring {
		day = day.AddDate(0, 0, (int(weekday)-int(day.Weekday())+7)%7)
		if day.After(until) {
			return nil
		}
	}

	first, err := at(day, meeting.Time.Start)
	if err != nil {
		return err
	}
	finish, err := at(day, meeting.Time.End)
	if err != nil {
		return err
	}

	uid := fmt.Sprintf("%d-%s-%s-%d@courseplanner", record.CourseID, strings.ReplaceAll(groupType, " ", ""), class.Section, index)
	event := cal.AddEvent(uid)
	event.SetDtStampTime(stamp)
	event.SetStartAt(first)
	event.SetEndAt(finish)
	event.SetSummary(fmt.Sprintf("%s %s %s (%s)", record.Name.Subject, record.Name.Code, groupType, class.Section))
	event.SetLocation(meeting.Location)
	if recurring {
		event.AddProperty(ics.ComponentPropertyRrule, "FREQ=WEEKLY;UNTIL="+until.UTC().Format(untilFormat))
	}

	return nil
}

// "03-10" as midnight in the given year
func date(year int, monthDay string, loc *time.Location) (time.Time, error) {
	month, day, ok := strings.Cut(monthDay, "-")
	if !ok {
		return time.Time{}, fmt.Errorf("%w: date %q is not MM-DD", courseplanner.ErrMalformedField, monthDay)
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month %q in %s", courseplanner.ErrMalformedField, month, monthDay)
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: day %q in %s", courseplanner.ErrMalformedField, day, monthDay)
	}

	return time.Date(year, time.Month(m), d, 0, 0, 0, 0, loc), nil
}

// "14:00" on day. The time converter writes 12pm as "24:00", which is read back as noon.
func at(day time.Time, hourMinute string) (time.Time, error) {
	hour, minute, ok := strings.Cut(hourMinute, ":")
	if !ok {
		return time.Time{}, fmt.Errorf("%w: time %q is not HH:MM", courseplanner.ErrMalformedField, hourMinute)
	}
	h, err := strconv.Atoi(hour)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: hour %q in %s", courseplanner.ErrMalformedField, hour, hourMinute)
	}
	m, err := strconv.Atoi(minute)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: minute %q in %s", courseplanner.ErrMalformedField, minute, hourMinute)
	}

	if h == 24 {
		h = 12
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return time.Time{}, fmt.Errorf("%w: time %q out of range", courseplanner.ErrMalformedField, hourMinute)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location()), nil
}

// accepts "Monday", "mon", "MON"
func parseWeekday(day string) (time.Weekday, bool) {
	day = strings.ToLower(strings.TrimSpace(day))
	if len(day) < 3 {
		return 0, false
	}
	weekday, ok := weekdays[day[:3]]
	return weekday, ok
}

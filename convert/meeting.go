package convert

import (
	"fmt"
	"strconv"
	"strings"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
)

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MeetingDate converts a "DD Mon - DD Mon" range into "MM-DD" start and end dates
func MeetingDate(raw string) (courseplanner.MeetingDate, error) {
	parts := strings.Split(raw, " - ")
	if len(parts) != 2 {
		return courseplanner.MeetingDate{}, fmt.Errorf("%w: meeting dates %q must contain exactly one \" - \"", courseplanner.ErrMalformedField, raw)
	}

	start, err := monthDay(parts[0])
	if err != nil {
		return courseplanner.MeetingDate{}, err
	}
	end, err := monthDay(parts[1])
	if err != nil {
		return courseplanner.MeetingDate{}, err
	}

	return courseplanner.MeetingDate{Start: start, End: end}, nil
}

// "3 Mar" -> "03-03"
func monthDay(raw string) (string, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return "", fmt.Errorf("%w: meeting date %q must be a day and a month", courseplanner.ErrMalformedField, raw)
	}

	day, month := fields[0], fields[1]
	for i, m := range months {
		if m == month {
			return fmt.Sprintf("%02d-%s", i+1, zeroPad(day)), nil
		}
	}

	return "", fmt.Errorf("%w: unknown month %q", courseplanner.ErrMalformedField, month)
}

func zeroPad(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}

// MeetingTime converts "2pm" style times to "14:00". 12am stays "12:00" and hours are not range checked.
func MeetingTime(raw string) (string, error) {
	if len(raw) < 3 {
		return "", fmt.Errorf("%w: meeting time %q too short", courseplanner.ErrMalformedField, raw)
	}

	period := raw[len(raw)-2:]
	hour, err := strconv.Atoi(strings.TrimSpace(raw[:len(raw)-2]))
	if err != nil {
		return "", fmt.Errorf("%w: meeting time %q has no hour: %s", courseplanner.ErrMalformedField, raw, err)
	}

	if strings.EqualFold(period, "pm") {
		hour += 12
	}

	return fmt.Sprintf("%02d:00", hour), nil
}

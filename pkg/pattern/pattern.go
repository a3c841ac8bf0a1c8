// Package pattern parses capture timestamps out of common camera and
// screenshot filename conventions.
//
// Rules are ordered and evaluated first-match-wins: when a filename could
// satisfy more than one rule, the earlier rule takes precedence. A separate
// ignore list names conventions known to carry no parseable timestamp, so
// callers can suppress the unrecognized-format diagnostic for them.
package pattern

import (
	"regexp"
	"strconv"
	"time"
)

// Rule matches a bare filename and captures six numeric groups:
// year, month, day, hour, minute, second.
type Rule struct {
	Name string
	re   *regexp.Regexp
}

// Rules is the ordered set of recognized filename conventions.
var Rules = []Rule{
	// Samsung Galaxy camera app: IMG_20140310_153045.jpg
	{"galaxy-camera", regexp.MustCompile(`^(?:IMG|VID|PANO)_(20\d{2})(\d{2})(\d{2})_(\d{2})(\d{2})(\d{2})\.(?:jpg|mp4)$`)},
	// GNOME screenshot tool: Screenshot from 2014-03-10 15:30:45.png
	{"gnome-screenshot", regexp.MustCompile(`^Screenshot from (20\d{2})-(\d{2})-(\d{2}) (\d{2}):(\d{2}):(\d{2})\.(?:jpg|png)$`)},
	// Cheese webcam: 2014-03-10-153045.jpg
	{"cheese-webcam", regexp.MustCompile(`^(20\d{2})-(\d{2})-(\d{2})-(\d{2})(\d{2})(\d{2})\.jpg$`)},
	// Bare date_time: 20140310_153045.jpg
	{"bare-datetime", regexp.MustCompile(`^(20\d{2})(\d{2})(\d{2})_(\d{2})(\d{2})(\d{2})\.(?:jpg|mp4)$`)},
	// Camera360: C360_2014-03-10-15-30-45-123.jpg
	{"camera360", regexp.MustCompile(`^C360_(20\d{2})-(\d{2})-(\d{2})-(\d{2})-(\d{2})-(\d{2})-\d{3}\.jpg$`)},
}

// ignoreRules matches naming conventions that are known to encode no
// timestamp (sequential camera counters and the like).
var ignoreRules = []*regexp.Regexp{
	regexp.MustCompile(`^\d{5}\.MTS$`),
	regexp.MustCompile(`^HPIM\d{4}\.jpg$`),
	regexp.MustCompile(`^P\d{6,7}\.(?:JPG|MOV)$`),
}

// Extract applies the rule list in order to a bare filename.
//
// Filenames encode local wall-clock capture time, so the captured fields are
// interpreted in loc (callers pass time.Local in production). A structural
// match whose fields are not a calendar-valid date/time is treated the same
// as no match for that rule, and the scan continues.
func Extract(filename string, loc *time.Location) (time.Time, bool) {
	for _, rule := range Rules {
		m := rule.re.FindStringSubmatch(filename)
		if m == nil {
			continue
		}
		if t, ok := fieldsToTime(m[1:], loc); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// Ignored reports whether the filename matches a known timestamp-free
// convention.
func Ignored(filename string) bool {
	for _, re := range ignoreRules {
		if re.MatchString(filename) {
			return true
		}
	}
	return false
}

// fieldsToTime converts six captured digit groups into a calendar-validated
// time in loc.
func fieldsToTime(fields []string, loc *time.Location) (time.Time, bool) {
	if len(fields) != 6 {
		return time.Time{}, false
	}

	n := make([]int, 6)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return time.Time{}, false
		}
		n[i] = v
	}

	t := time.Date(n[0], time.Month(n[1]), n[2], n[3], n[4], n[5], 0, loc)

	// time.Date normalizes out-of-range fields (month 13 rolls into the
	// next year), so require the components to round-trip.
	if t.Year() != n[0] || t.Month() != time.Month(n[1]) || t.Day() != n[2] ||
		t.Hour() != n[3] || t.Minute() != n[4] || t.Second() != n[5] {
		return time.Time{}, false
	}

	return t, true
}

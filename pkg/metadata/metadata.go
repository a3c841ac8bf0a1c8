// Package metadata extracts the embedded capture time (EXIF
// DateTimeOriginal) from media files.
//
// Image files are read with a pure-Go EXIF decoder, which is always
// available. Video containers need the external exiftool binary; that
// capability is probed once at startup and its absence degrades video files
// to "no metadata" for the rest of the run.
package metadata

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// tagName is the single metadata field consulted. There is deliberately no
// fallback chain: the capture-time-original tag either parses or the file
// has no metadata candidate.
const tagName = "DateTimeOriginal"

// Reader returns the raw string value of the capture-time tag for one file.
//
// Implementations return ("", false, nil) when the tag is absent. Errors are
// best-effort failures: the extractor treats them like absence.
type Reader interface {
	CaptureTime(path string) (string, bool, error)
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".m4v": true, ".mkv": true,
	".avi": true, ".webm": true, ".mts": true, ".3gp": true,
}

// Extractor reads and parses capture times, dispatching by file type.
type Extractor struct {
	images Reader
	videos Reader // nil when the exiftool capability is unavailable
	loc    *time.Location
	logger zerolog.Logger
	closer func() error
}

// NewExtractor builds an Extractor. EXIF time strings carry no timezone, so
// parsed values are interpreted in loc (time.Local in production). The
// exiftool probe failing is not an error: a one-time
// warning is logged and video files yield no metadata for the run.
func NewExtractor(loc *time.Location, logger zerolog.Logger) *Extractor {
	e := &Extractor{
		images: exifReader{},
		loc:    loc,
		logger: logger,
	}

	videos, closer, err := newExiftoolReader()
	if err != nil {
		logger.Warn().Err(err).Msg("exiftool unavailable, video metadata extraction disabled")
		return e
	}
	e.videos = videos
	e.closer = closer
	return e
}

// NewExtractorWithReaders is the injection seam for tests.
func NewExtractorWithReaders(images, videos Reader, loc *time.Location, logger zerolog.Logger) *Extractor {
	return &Extractor{images: images, videos: videos, loc: loc, logger: logger}
}

// Close releases the exiftool process, if one was started.
func (e *Extractor) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer()
}

// Extract returns the capture time embedded in the file at path, or false
// when the file carries none. Missing or malformed metadata is common and
// never escalated beyond an info diagnostic.
func (e *Extractor) Extract(path string) (time.Time, bool) {
	reader := e.images
	if videoExtensions[strings.ToLower(filepath.Ext(path))] {
		if e.videos == nil {
			// Capability absent: already warned once at startup.
			return time.Time{}, false
		}
		reader = e.videos
	}

	raw, found, err := reader.CaptureTime(path)
	if err != nil {
		e.logger.Info().Err(err).Str("file", path).Msgf("could not read metadata from %q", path)
		return time.Time{}, false
	}
	if !found {
		e.logger.Info().Str("file", path).Msgf("did not find %s tag in file %q", tagName, path)
		return time.Time{}, false
	}

	return e.parseTimeString(raw)
}

// parseTimeString parses the fixed 19-character EXIF layout
// "YYYY:MM:DD HH:MM:SS". Any deviation yields no candidate.
func (e *Extractor) parseTimeString(s string) (time.Time, bool) {
	if len(s) != 19 {
		e.logger.Info().Str("value", s).Msgf("invalid %s time string length %q", tagName, s)
		return time.Time{}, false
	}

	fields := []string{s[0:4], s[5:7], s[8:10], s[11:13], s[14:16], s[17:19]}
	n := make([]int, 6)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			e.logger.Info().Str("value", s).Msgf("invalid %s time string %q", tagName, s)
			return time.Time{}, false
		}
		n[i] = v
	}

	t := time.Date(n[0], time.Month(n[1]), n[2], n[3], n[4], n[5], 0, e.loc)
	if t.Year() != n[0] || t.Month() != time.Month(n[1]) || t.Day() != n[2] ||
		t.Hour() != n[3] || t.Minute() != n[4] || t.Second() != n[5] {
		e.logger.Info().Str("value", s).Msgf("invalid %s time string %q", tagName, s)
		return time.Time{}, false
	}

	return t, true
}

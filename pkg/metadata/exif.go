package metadata

import (
	"os"

	"github.com/rwcarlsen/goexif/exif"
)

// exifReader reads the capture-time tag from image files with the pure-Go
// goexif decoder.
type exifReader struct{}

func (exifReader) CaptureTime(path string) (string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		// Not a decodable image or no EXIF block at all; both mean the
		// tag is absent.
		return "", false, nil
	}

	field, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return "", false, nil
	}

	s, err := field.StringVal()
	if err != nil {
		return "", false, nil
	}

	return s, true, nil
}

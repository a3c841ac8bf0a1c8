package metadata

import (
	"errors"

	"github.com/barasher/go-exiftool"
)

// exiftoolReader reads the capture-time tag from video containers through a
// persistent exiftool process. Constructing it fails when the exiftool
// binary is not installed; callers treat that as a missing capability.
type exiftoolReader struct {
	et *exiftool.Exiftool
}

func newExiftoolReader() (Reader, func() error, error) {
	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, nil, err
	}
	return exiftoolReader{et: et}, et.Close, nil
}

func (r exiftoolReader) CaptureTime(path string) (string, bool, error) {
	metas := r.et.ExtractMetadata(path)
	if len(metas) == 0 {
		return "", false, nil
	}
	meta := metas[0]
	if meta.Err != nil {
		return "", false, meta.Err
	}

	s, err := meta.GetString(tagName)
	if err != nil {
		if errors.Is(err, exiftool.ErrKeyNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	return s, true, nil
}

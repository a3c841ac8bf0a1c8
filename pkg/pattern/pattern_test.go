package pattern

import (
	"testing"
	"time"
)

func TestExtract_RecognizedFormats(t *testing.T) {
	loc := time.FixedZone("TEST", 2*60*60)

	testCases := []struct {
		name     string
		filename string
		want     time.Time
	}{
		{
			name:     "galaxy camera photo",
			filename: "IMG_20140310_153045.jpg",
			want:     time.Date(2014, 3, 10, 15, 30, 45, 0, loc),
		},
		{
			name:     "galaxy camera video",
			filename: "VID_20150704_210001.mp4",
			want:     time.Date(2015, 7, 4, 21, 0, 1, 0, loc),
		},
		{
			name:     "galaxy panorama",
			filename: "PANO_20130101_000000.jpg",
			want:     time.Date(2013, 1, 1, 0, 0, 0, 0, loc),
		},
		{
			name:     "gnome screenshot",
			filename: "Screenshot from 2016-11-30 09:08:07.png",
			want:     time.Date(2016, 11, 30, 9, 8, 7, 0, loc),
		},
		{
			name:     "cheese webcam",
			filename: "2014-03-10-153045.jpg",
			want:     time.Date(2014, 3, 10, 15, 30, 45, 0, loc),
		},
		{
			name:     "bare datetime",
			filename: "20140310_153045.mp4",
			want:     time.Date(2014, 3, 10, 15, 30, 45, 0, loc),
		},
		{
			name:     "camera360",
			filename: "C360_2014-03-10-15-30-45-123.jpg",
			want:     time.Date(2014, 3, 10, 15, 30, 45, 0, loc),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Extract(tc.filename, loc)
			if !ok {
				t.Fatalf("expected a match for %q", tc.filename)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("unexpected time\n got: %v\nwant: %v", got, tc.want)
			}
		})
	}
}

func TestExtract_NoMatch(t *testing.T) {
	filenames := []string{
		"holiday.jpg",
		"IMG_2014031_153045.jpg",           // too few date digits
		"IMG_20140310_153045.gif",          // extension not covered
		"prefix_IMG_20140310_153045.jpg",   // rules are anchored
		"Screenshot from 2016-11-30.png",   // missing time component
		"C360_2014-03-10-15-30-45-12.jpg",  // short trailing counter
		"19990310_153045.jpg",              // year outside 20xx
		"00042.MTS",                        // ignore-list name, not a rule
	}

	for _, filename := range filenames {
		if _, ok := Extract(filename, time.UTC); ok {
			t.Errorf("expected no match for %q", filename)
		}
	}
}

func TestExtract_CalendarInvalidFieldsRejected(t *testing.T) {
	// Structurally these match the galaxy-camera rule, but the captured
	// fields do not form a real date/time.
	filenames := []string{
		"IMG_20141341_153045.jpg", // month 13
		"IMG_20140232_153045.jpg", // Feb 32nd
		"IMG_20140310_253045.jpg", // hour 25
		"IMG_20140310_156045.jpg", // minute 60
		"IMG_20140310_153061.jpg", // second 61
	}

	for _, filename := range filenames {
		if got, ok := Extract(filename, time.UTC); ok {
			t.Errorf("expected no candidate for %q, got %v", filename, got)
		}
	}
}

func TestExtract_UsesProvidedLocation(t *testing.T) {
	locA := time.FixedZone("A", 0)
	locB := time.FixedZone("B", 5*60*60)

	a, ok := Extract("IMG_20140310_153045.jpg", locA)
	if !ok {
		t.Fatal("expected a match")
	}
	b, ok := Extract("IMG_20140310_153045.jpg", locB)
	if !ok {
		t.Fatal("expected a match")
	}

	if got, want := a.Unix()-b.Unix(), int64(5*60*60); got != want {
		t.Fatalf("expected %d seconds between zones, got %d", want, got)
	}
}

func TestIgnored(t *testing.T) {
	testCases := []struct {
		filename string
		want     bool
	}{
		{"00042.MTS", true},
		{"HPIM1234.jpg", true},
		{"P123456.JPG", true},
		{"P1234567.MOV", true},
		{"P12345.JPG", false},
		{"IMG_20140310_153045.jpg", false},
		{"holiday.jpg", false},
		{"00042.mts", false}, // ignore rules are case-sensitive
	}

	for _, tc := range testCases {
		if got := Ignored(tc.filename); got != tc.want {
			t.Errorf("Ignored(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}

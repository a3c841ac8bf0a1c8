package correct

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/djherbis/times"
)

func writeTestFile(t *testing.T, mtime time.Time) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "IMG_20140310_153045.jpg")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	return path
}

func TestApply_ReportFormat(t *testing.T) {
	trueTime := time.Date(2014, 3, 10, 15, 30, 45, 0, time.UTC)
	path := writeTestFile(t, trueTime.Add(-3661*time.Second))

	out := new(bytes.Buffer)
	res := Apply(out, path, trueTime, 3661, Options{Simulate: true})
	if res.Error != nil {
		t.Fatalf("unexpected error: %v", res.Error)
	}

	want := "IMG_20140310_153045.jpg: discrepancy of 1h1m1s (3661)\n"
	if out.String() != want {
		t.Fatalf("unexpected report\n got: %q\nwant: %q", out.String(), want)
	}
}

func TestApply_SetsAccessAndModificationTimes(t *testing.T) {
	trueTime := time.Date(2014, 3, 10, 15, 30, 45, 0, time.Local)
	path := writeTestFile(t, trueTime.Add(2*time.Hour+5*time.Minute))

	out := new(bytes.Buffer)
	res := Apply(out, path, trueTime, 7500, Options{})
	if res.Error != nil {
		t.Fatalf("unexpected error: %v", res.Error)
	}
	if !res.Applied {
		t.Fatal("expected Applied=true")
	}

	ts, err := times.Stat(path)
	if err != nil {
		t.Fatalf("stat times: %v", err)
	}
	if !ts.ModTime().Equal(trueTime) {
		t.Fatalf("mod time = %v, want %v", ts.ModTime(), trueTime)
	}
	if !ts.AccessTime().Equal(trueTime) {
		t.Fatalf("access time = %v, want %v", ts.AccessTime(), trueTime)
	}
}

func TestApply_SimulateLeavesFileUntouched(t *testing.T) {
	original := time.Date(2020, 6, 7, 8, 9, 10, 0, time.Local)
	path := writeTestFile(t, original)

	outSim := new(bytes.Buffer)
	res := Apply(outSim, path, original.Add(-time.Hour), 3600, Options{Simulate: true})
	if res.Error != nil {
		t.Fatalf("unexpected error: %v", res.Error)
	}
	if res.Applied {
		t.Fatal("simulation must not apply changes")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(original) {
		t.Fatalf("mod time changed in simulation: %v", info.ModTime())
	}

	// The report is identical with and without simulation.
	outReal := new(bytes.Buffer)
	Apply(outReal, path, original.Add(-time.Hour), 3600, Options{})
	if outSim.String() != outReal.String() {
		t.Fatalf("simulation report differs\n sim: %q\nreal: %q", outSim.String(), outReal.String())
	}
}

func TestApply_MissingFileReturnsError(t *testing.T) {
	out := new(bytes.Buffer)
	res := Apply(out, filepath.Join(t.TempDir(), "missing.jpg"), time.Now(), 100, Options{})
	if res.Error == nil {
		t.Fatal("expected error for missing file")
	}
	if out.Len() == 0 {
		t.Fatal("report must be printed before the mutation is attempted")
	}
}

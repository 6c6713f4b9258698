package dataset

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadCSVSkipsHeaderAndBadRows(t *testing.T) {
	path := writeFile(t, "tunnelling.csv",
		"energy,transmission,error\n"+
			"1.0,0.5,0.1\n"+
			"not,a,number\n"+
			"2.0,0.25,0.05\n"+
			"1.5,0.3\n")

	ds, err := ReadCSV(path, ReadOptions{SkipHeader: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(ds) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(ds))
	}
	if ds[0].X != 1.0 || ds[0].Y != 0.5 || ds[0].Err != 0.1 {
		t.Errorf("unexpected first sample: %+v", ds[0])
	}
}

func TestReadCSVCommentLines(t *testing.T) {
	path := writeFile(t, "nuclear.csv",
		"%time(hr),activity(TBq),error\n"+
			"1.0,20.0,0.5\n"+
			"%another comment\n"+
			"2.0,15.0,0.4\n")

	ds, err := ReadCSV(path, ReadOptions{Comment: '%'})
	if err != nil {
		t.Fatal(err)
	}
	if len(ds) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(ds))
	}
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv"), ReadOptions{})
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestTransmissionValidator(t *testing.T) {
	v := TransmissionValidator(3.0)
	tests := []struct {
		name string
		s    Sample
		want bool
	}{
		{"valid", Sample{1.0, 0.5, 0.1}, true},
		{"transmission above one", Sample{1.0, 1.2, 0.1}, false},
		{"negative transmission", Sample{1.0, -0.1, 0.1}, false},
		{"energy above barrier", Sample{3.5, 0.5, 0.1}, false},
		{"negative energy", Sample{-1.0, 0.5, 0.1}, false},
		{"zero uncertainty", Sample{1.0, 0.5, 0}, false},
		{"nan value", Sample{math.NaN(), 0.5, 0.1}, false},
	}
	for _, tt := range tests {
		if got := v(tt.s); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestActivityValidator(t *testing.T) {
	v := ActivityValidator()
	tests := []struct {
		name string
		s    Sample
		want bool
	}{
		{"valid", Sample{1.0, 20.0, 0.5}, true},
		{"zero uncertainty", Sample{1.0, 20.0, 0}, false},
		{"percentage error at 100%", Sample{1.0, 0.5, 0.5}, false},
		{"percentage error above 100%", Sample{1.0, 0.5, 0.6}, false},
		{"nan measurement", Sample{1.0, math.NaN(), 0.5}, false},
		{"infinite time", Sample{math.Inf(1), 20.0, 0.5}, false},
	}
	for _, tt := range tests {
		if got := v(tt.s); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestMergeSortsByX(t *testing.T) {
	a := Dataset{{X: 3, Y: 1, Err: 1}, {X: 1, Y: 2, Err: 1}}
	b := Dataset{{X: 2, Y: 3, Err: 1}}

	merged := Merge(a, b)
	if len(merged) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(merged))
	}
	for i := 1; i < len(merged); i++ {
		if merged[i].X < merged[i-1].X {
			t.Fatalf("merged dataset not sorted: %v", merged.Xs())
		}
	}
}

func TestScaleX(t *testing.T) {
	ds := Dataset{{X: 1, Y: 20, Err: 0.5}, {X: 2.5, Y: 15, Err: 0.4}}
	scaled := ds.ScaleX(3600)

	if scaled[0].X != 3600 || scaled[1].X != 9000 {
		t.Errorf("unexpected scaled times: %v", scaled.Xs())
	}
	if ds[0].X != 1 {
		t.Error("ScaleX should not mutate the original dataset")
	}
	if scaled[0].Y != 20 || scaled[0].Err != 0.5 {
		t.Error("ScaleX should leave measurements untouched")
	}
}

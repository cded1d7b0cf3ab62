package writers

import (
	"bytes"
	"iter"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/xuri/excelize/v2"

	"github.com/gewnthar/neotrack/models"
)

func resultSeq(approaches ...*models.CloseApproach) iter.Seq[*models.CloseApproach] {
	return func(yield func(*models.CloseApproach) bool) {
		for _, a := range approaches {
			if !yield(a) {
				return
			}
		}
	}
}

func erosApproach() *models.CloseApproach {
	ca := models.NewCloseApproach("433", time.Date(2027, time.April, 30, 12, 0, 0, 0, time.UTC), 0.15, 5.2)
	ca.NEO = models.NewNearEarthObject("433", "Eros", 16.84, false)
	return ca
}

func unknownDiameterApproach() *models.CloseApproach {
	ca := models.NewCloseApproach("2020 AB", time.Date(2025, time.January, 1, 6, 30, 0, 0, time.UTC), 0.02, 11.0)
	ca.NEO = models.NewNearEarthObject("2020 AB", "", math.NaN(), true)
	return ca
}

func TestWriteToCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteToCSV(&buf, resultSeq(erosApproach())); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header plus one row", len(lines))
	}
	wantHeader := "datetime_utc,distance_au,velocity_km_s,designation,name,diameter_km,potentially_hazardous"
	if lines[0] != wantHeader {
		t.Fatalf("header: got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2027-04-30 12:00,0.15,5.2,433,Eros,16.84,false") {
		t.Fatalf("row: got %q", lines[1])
	}
}

func TestWriteToCSVEmptyStreamStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteToCSV(&buf, resultSeq()); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "datetime_utc,") {
		t.Fatalf("expected header-only output, got %q", buf.String())
	}
}

func TestWriteToJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteToJSON(&buf, resultSeq(erosApproach(), unknownDiameterApproach())); err != nil {
		t.Fatal(err)
	}

	var records []ApproachRecord
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	eros := records[0]
	if eros.DatetimeUTC != "2027-04-30 12:00" || eros.DistanceAU != 0.15 || eros.VelocityKmS != 5.2 {
		t.Fatalf("approach fields: %+v", eros)
	}
	if eros.NEO.Designation != "433" || eros.NEO.Name != "Eros" ||
		float64(eros.NEO.DiameterKm) != 16.84 || eros.NEO.PotentiallyHazardous {
		t.Fatalf("neo fields: %+v", eros.NEO)
	}

	// The unknown diameter survives the trip as null -> NaN.
	unknown := records[1]
	if !math.IsNaN(float64(unknown.NEO.DiameterKm)) {
		t.Fatalf("diameter: got %v, want NaN", unknown.NEO.DiameterKm)
	}
	if !unknown.NEO.PotentiallyHazardous {
		t.Fatal("hazardous flag lost in round trip")
	}
}

func TestWriteToJSONEmitsNullForNaN(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteToJSON(&buf, resultSeq(unknownDiameterApproach())); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"diameter_km": null`) {
		t.Fatalf("expected null diameter, got %s", buf.String())
	}
}

func TestSerializeUnresolvedApproach(t *testing.T) {
	ca := models.NewCloseApproach("999", time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC), 0.5, 3.3)
	rec := Serialize(ca)
	if rec.NEO.Designation != "999" {
		t.Fatalf("designation: got %q", rec.NEO.Designation)
	}
	if !math.IsNaN(float64(rec.NEO.DiameterKm)) {
		t.Fatal("unresolved approach must serialize with unknown diameter")
	}
}

func TestWriteResultsDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "out.csv")
	if err := WriteResults(csvPath, resultSeq(erosApproach())); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "datetime_utc,") {
		t.Fatal("csv outfile missing header")
	}

	jsonPath := filepath.Join(dir, "out.json")
	if err := WriteResults(jsonPath, resultSeq(erosApproach())); err != nil {
		t.Fatal(err)
	}

	if err := WriteResults(filepath.Join(dir, "out.txt"), resultSeq()); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestWriteToXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteToXLSX(path, resultSeq(erosApproach(), unknownDiameterApproach())); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := f.GetCellValue(xlsxSheet, "A2")
	if err != nil {
		t.Fatal(err)
	}
	if got != "2027-04-30 12:00" {
		t.Fatalf("A2: got %q", got)
	}

	// Unknown diameter stays blank.
	diameter, err := f.GetCellValue(xlsxSheet, "F3")
	if err != nil {
		t.Fatal(err)
	}
	if diameter != "" {
		t.Fatalf("F3: got %q, want empty", diameter)
	}
}

// writers/write.go
package writers

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jszwec/csvutil"

	"github.com/gewnthar/neotrack/models"
)

// Diameter is a float64 whose JSON form is null when the value is unknown
// (NaN). Plain float64 cannot round-trip NaN through JSON at all.
type Diameter float64

// MarshalJSON encodes an unknown diameter as null.
func (d Diameter) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(d)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(d))
}

// UnmarshalJSON decodes null back into the NaN sentinel.
func (d *Diameter) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Diameter(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*d = Diameter(v)
	return nil
}

// csvRow is one output line of the CSV export. The column order here is the
// published format and must not change.
type csvRow struct {
	DatetimeUTC          string  `csv:"datetime_utc"`
	DistanceAU           float64 `csv:"distance_au"`
	VelocityKmS          float64 `csv:"velocity_km_s"`
	Designation          string  `csv:"designation"`
	Name                 string  `csv:"name"`
	DiameterKm           float64 `csv:"diameter_km"`
	PotentiallyHazardous bool    `csv:"potentially_hazardous"`
}

// NEORecord is the nested "neo" object of the JSON export.
type NEORecord struct {
	Designation          string   `json:"designation"`
	Name                 string   `json:"name"`
	DiameterKm           Diameter `json:"diameter_km"`
	PotentiallyHazardous bool     `json:"potentially_hazardous"`
}

// ApproachRecord is one element of the JSON export array.
type ApproachRecord struct {
	DatetimeUTC string    `json:"datetime_utc"`
	DistanceAU  float64   `json:"distance_au"`
	VelocityKmS float64   `json:"velocity_km_s"`
	NEO         NEORecord `json:"neo"`
}

// Serialize flattens an approach and its resolved NEO into the JSON record
// shape. An unresolved approach serializes with an empty NEO whose diameter
// is unknown.
func Serialize(approach *models.CloseApproach) ApproachRecord {
	rec := ApproachRecord{
		DatetimeUTC: approach.TimeString(),
		DistanceAU:  approach.Distance,
		VelocityKmS: approach.Velocity,
		NEO: NEORecord{
			Designation: approach.Designation,
			DiameterKm:  Diameter(math.NaN()),
		},
	}
	if approach.NEO != nil {
		rec.NEO.Designation = approach.NEO.Designation
		rec.NEO.Name = approach.NEO.Name
		rec.NEO.DiameterKm = Diameter(approach.NEO.Diameter)
		rec.NEO.PotentiallyHazardous = approach.NEO.Hazardous
	}
	return rec
}

// WriteToCSV writes the result stream as CSV: one header row with the seven
// published field names, then one row per approach.
func WriteToCSV(w io.Writer, results iter.Seq[*models.CloseApproach]) error {
	cw := csv.NewWriter(w)
	encoder := csvutil.NewEncoder(cw)

	// Emit the header even when the result stream is empty.
	if err := encoder.EncodeHeader(csvRow{}); err != nil {
		return fmt.Errorf("failed to encode CSV header: %w", err)
	}

	for approach := range results {
		rec := Serialize(approach)
		row := csvRow{
			DatetimeUTC:          rec.DatetimeUTC,
			DistanceAU:           rec.DistanceAU,
			VelocityKmS:          rec.VelocityKmS,
			Designation:          rec.NEO.Designation,
			Name:                 rec.NEO.Name,
			DiameterKm:           float64(rec.NEO.DiameterKm),
			PotentiallyHazardous: rec.NEO.PotentiallyHazardous,
		}
		if err := encoder.Encode(row); err != nil {
			return fmt.Errorf("failed to encode CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}

// WriteToJSON writes the result stream as a JSON array of approach records,
// each holding a nested "neo" object.
func WriteToJSON(w io.Writer, results iter.Seq[*models.CloseApproach]) error {
	records := make([]ApproachRecord, 0)
	for approach := range results {
		records = append(records, Serialize(approach))
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// WriteResults writes the result stream to the file at path, picking the
// format from the extension: .csv, .json, or .xlsx.
func WriteResults(path string, results iter.Seq[*models.CloseApproach]) error {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".xlsx" {
		return WriteToXLSX(path, results)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	switch ext {
	case ".csv":
		return WriteToCSV(f, results)
	case ".json":
		return WriteToJSON(f, results)
	default:
		return fmt.Errorf("unsupported output extension %q (want .csv, .json, or .xlsx)", ext)
	}
}

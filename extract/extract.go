// extract/extract.go
package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/jszwec/csvutil"

	"github.com/gewnthar/neotrack/logger"
	"github.com/gewnthar/neotrack/models"
)

// neoRow maps the columns of interest in the NASA small-body CSV. The file
// carries dozens of other columns; csvutil ignores anything without a tag.
// All fields decode as strings because the dataset leaves unknown values
// empty rather than omitting the column.
type neoRow struct {
	Designation string `csv:"pdes"`
	Name        string `csv:"name"`
	Diameter    string `csv:"diameter"`
	Hazardous   string `csv:"pha"`
}

// approachDocument is the envelope of the NASA close-approach JSON export:
// positional rows under a top-level "data" key. Values are strings, with
// null standing in for missing ones.
type approachDocument struct {
	Data [][]*string `json:"data"`
}

// Positions of the fields we consume from each close-approach row.
const (
	cadFieldDesignation = 0
	cadFieldTime        = 3
	cadFieldDistance    = 4
	cadFieldVelocity    = 7
)

// LoadNEOs reads near-Earth objects from a CSV file at the given path.
func LoadNEOs(path string, log logger.Logger) ([]*models.NearEarthObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open NEO CSV file: %w", err)
	}
	defer f.Close()

	neos, err := ParseNEOs(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse NEO CSV file %s: %w", path, err)
	}
	if log != nil {
		log.Info("loaded near-Earth objects", "path", path, "count", len(neos))
	}
	return neos, nil
}

// ParseNEOs decodes near-Earth objects from CSV data. An empty diameter
// becomes NaN (unknown), and the hazardous flag is true only for "Y".
func ParseNEOs(r io.Reader) ([]*models.NearEarthObject, error) {
	decoder, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}

	var rows []neoRow
	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode NEO rows: %w", err)
	}

	neos := make([]*models.NearEarthObject, 0, len(rows))
	for i, row := range rows {
		diameter := math.NaN()
		if row.Diameter != "" {
			diameter, err = strconv.ParseFloat(row.Diameter, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad diameter %q: %w", i+1, row.Diameter, err)
			}
		}
		neos = append(neos, models.NewNearEarthObject(
			row.Designation,
			row.Name,
			diameter,
			row.Hazardous == "Y",
		))
	}
	return neos, nil
}

// LoadApproaches reads close approaches from a JSON file at the given path.
func LoadApproaches(path string, log logger.Logger) ([]*models.CloseApproach, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open close-approach JSON file: %w", err)
	}
	defer f.Close()

	approaches, err := ParseApproaches(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse close-approach JSON file %s: %w", path, err)
	}
	if log != nil {
		log.Info("loaded close approaches", "path", path, "count", len(approaches))
	}
	return approaches, nil
}

// ParseApproaches decodes close approaches from the NASA JSON export. Empty
// or null distance and velocity values become 0.
func ParseApproaches(r io.Reader) ([]*models.CloseApproach, error) {
	var doc approachDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode close-approach JSON: %w", err)
	}

	approaches := make([]*models.CloseApproach, 0, len(doc.Data))
	for i, row := range doc.Data {
		if len(row) <= cadFieldVelocity {
			return nil, fmt.Errorf("row %d: expected at least %d fields, got %d", i, cadFieldVelocity+1, len(row))
		}

		t, err := models.ParseApproachTime(field(row, cadFieldTime))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		distance, err := floatField(row, cadFieldDistance)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad distance: %w", i, err)
		}
		velocity, err := floatField(row, cadFieldVelocity)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad velocity: %w", i, err)
		}

		approaches = append(approaches, models.NewCloseApproach(
			field(row, cadFieldDesignation), t, distance, velocity,
		))
	}
	return approaches, nil
}

func field(row []*string, i int) string {
	if row[i] == nil {
		return ""
	}
	return *row[i]
}

func floatField(row []*string, i int) (float64, error) {
	s := field(row, i)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// writers/xlsx.go
package writers

import (
	"fmt"
	"iter"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/gewnthar/neotrack/models"
)

const xlsxSheet = "Close Approaches"

// WriteToXLSX writes the result stream as a spreadsheet with the same seven
// columns as the CSV export. Unknown diameters are left as blank cells.
func WriteToXLSX(path string, results iter.Seq[*models.CloseApproach]) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")

	headers := []string{
		"datetime_utc", "distance_au", "velocity_km_s",
		"designation", "name", "diameter_km", "potentially_hazardous",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(xlsxSheet, cell, header)
	}

	row := 2
	for approach := range results {
		rec := Serialize(approach)
		values := []interface{}{
			rec.DatetimeUTC,
			rec.DistanceAU,
			rec.VelocityKmS,
			rec.NEO.Designation,
			rec.NEO.Name,
			float64(rec.NEO.DiameterKm),
			rec.NEO.PotentiallyHazardous,
		}
		for col, value := range values {
			if v, ok := value.(float64); ok && math.IsNaN(v) {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(xlsxSheet, cell, value)
		}
		row++
	}

	for i := 1; i <= len(headers); i++ {
		colName, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(xlsxSheet, colName, colName, 20)
	}

	f.SetActiveSheet(index)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}
	return nil
}

// services/explorer.go
package services

import (
	"fmt"
	"io"
	"iter"

	"github.com/gewnthar/neotrack/database"
	"github.com/gewnthar/neotrack/extract"
	"github.com/gewnthar/neotrack/filters"
	"github.com/gewnthar/neotrack/logger"
	"github.com/gewnthar/neotrack/models"
	"github.com/gewnthar/neotrack/writers"
)

// Explorer ties the loaded database to the operations the CLI exposes. One
// Explorer serves one session: load both datasets once, then answer any
// number of inspect and query requests against the same database.
type Explorer struct {
	DB  *database.Database
	log logger.Logger
}

// Open loads the two datasets and builds the database.
func Open(neoPath, cadPath string, log logger.Logger) (*Explorer, error) {
	neos, err := extract.LoadNEOs(neoPath, log)
	if err != nil {
		return nil, err
	}
	approaches, err := extract.LoadApproaches(cadPath, log)
	if err != nil {
		return nil, err
	}
	return &Explorer{
		DB:  database.New(neos, approaches, log),
		log: log,
	}, nil
}

// NewExplorer wraps an already-built database. Used by tests and the REPL.
func NewExplorer(db *database.Database, log logger.Logger) *Explorer {
	return &Explorer{DB: db, log: log}
}

// Query evaluates the criteria against the database and caps the stream at
// limit results (0 means unlimited).
func (e *Explorer) Query(c filters.Criteria, limit int) iter.Seq[*models.CloseApproach] {
	return filters.Limit(e.DB.Query(filters.CreateFilters(c)), limit)
}

// WriteQuery runs a query and sends the results to outfile, choosing the
// format from the file extension. With an empty outfile the results print to
// w, one human-readable line per approach.
func (e *Explorer) WriteQuery(w io.Writer, c filters.Criteria, limit int, outfile string) error {
	results := e.Query(c, limit)

	if outfile == "" {
		n := 0
		for approach := range results {
			fmt.Fprintln(w, approach)
			n++
		}
		if n == 0 {
			fmt.Fprintln(w, "No matching close approaches found.")
		}
		return nil
	}

	if err := writers.WriteResults(outfile, results); err != nil {
		return err
	}
	e.log.Info("wrote query results", "outfile", outfile)
	return nil
}

// Inspect looks up a single NEO by designation or, failing that, by name,
// and prints it to w. With verbose set it also prints every known close
// approach of that object. A miss prints a note rather than failing: an
// unknown object is an answer, not an error.
func (e *Explorer) Inspect(w io.Writer, designation, name string, verbose bool) error {
	if designation == "" && name == "" {
		return fmt.Errorf("inspect needs a designation or a name")
	}

	var neo *models.NearEarthObject
	if designation != "" {
		neo = e.DB.GetNEOByDesignation(designation)
	} else {
		neo = e.DB.GetNEOByName(name)
	}

	if neo == nil {
		fmt.Fprintln(w, "No matching NEO found in the database.")
		return nil
	}

	fmt.Fprintln(w, neo)
	if verbose {
		for _, approach := range neo.Approaches {
			fmt.Fprintf(w, "- %s\n", approach)
		}
	}
	return nil
}

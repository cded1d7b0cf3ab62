// database/database.go
package database

import (
	"iter"
	"sort"

	"github.com/gewnthar/neotrack/filters"
	"github.com/gewnthar/neotrack/logger"
	"github.com/gewnthar/neotrack/models"
)

// Database is the in-memory cross-referenced store of NEOs and their close
// approaches. It is built once from the two loaded datasets and read-only
// afterwards: construction resolves every approach's designation foreign key
// into a direct NEO reference, fills each NEO's approach collection, and
// keeps the full approach list sorted by time for query output.
//
// After construction the database may be read from any number of goroutines;
// nothing mutates it again.
type Database struct {
	neos       []*models.NearEarthObject
	approaches []*models.CloseApproach

	byDesignation map[string]*models.NearEarthObject
	byName        map[string]*models.NearEarthObject
}

// New builds a database from the loaded NEOs and close approaches.
//
// The join walks the approaches in input order, so each NEO's approach
// collection preserves the relative order of the source data. Approaches
// whose designation is missing from the NEO set are kept in the database but
// left unresolved; that is a known quirk of the datasets, not an error.
// Duplicate NEO designations resolve last-write-wins.
func New(neos []*models.NearEarthObject, approaches []*models.CloseApproach, log logger.Logger) *Database {
	db := &Database{
		neos:          neos,
		byDesignation: make(map[string]*models.NearEarthObject, len(neos)),
		byName:        make(map[string]*models.NearEarthObject),
	}

	for _, neo := range neos {
		db.byDesignation[neo.Designation] = neo
		if neo.HasName() {
			db.byName[neo.Name] = neo
		}
	}

	unresolved := 0
	for _, approach := range approaches {
		neo, ok := db.byDesignation[approach.Designation]
		if !ok {
			unresolved++
			continue
		}
		approach.NEO = neo
		neo.AddApproach(approach)
	}

	// Query output order is ascending approach time. The sort is stable so
	// approaches sharing a timestamp keep their input order. Sorting a copy
	// leaves the caller's slice alone.
	db.approaches = make([]*models.CloseApproach, len(approaches))
	copy(db.approaches, approaches)
	sort.SliceStable(db.approaches, func(i, j int) bool {
		return db.approaches[i].Time.Before(db.approaches[j].Time)
	})

	if log != nil {
		log.Info("database built",
			"neos", len(neos),
			"approaches", len(approaches),
			"unresolved_approaches", unresolved,
		)
	}
	return db
}

// GetNEOByDesignation returns the NEO with the given primary designation, or
// nil when no such object exists. A miss is "not found", not an error.
func (db *Database) GetNEOByDesignation(designation string) *models.NearEarthObject {
	return db.byDesignation[designation]
}

// GetNEOByName returns the NEO with the given IAU name (case-sensitive), or
// nil when absent. Unnamed objects are never matched, so the empty string
// always misses.
func (db *Database) GetNEOByName(name string) *models.NearEarthObject {
	if name == "" {
		return nil
	}
	return db.byName[name]
}

// NEOCount returns the number of NEOs in the database.
func (db *Database) NEOCount() int { return len(db.neos) }

// ApproachCount returns the number of close approaches in the database,
// unresolved ones included.
func (db *Database) ApproachCount() int { return len(db.approaches) }

// Query produces the close approaches matching every supplied filter, in
// ascending time order. A nil or empty filter collection yields every
// approach.
//
// The result is a lazy pull stream: filters run only as the consumer
// iterates, each approach is tested against the filters in the order given
// with the first failure short-circuiting the rest, and breaking out of the
// range stops all remaining work. Iterating never mutates the database.
func (db *Database) Query(fs []filters.AttributeFilter) iter.Seq[*models.CloseApproach] {
	return func(yield func(*models.CloseApproach) bool) {
		for _, approach := range db.approaches {
			if !matchesAll(fs, approach) {
				continue
			}
			if !yield(approach) {
				return
			}
		}
	}
}

func matchesAll(fs []filters.AttributeFilter, approach *models.CloseApproach) bool {
	for _, f := range fs {
		if !f.Matches(approach) {
			return false
		}
	}
	return true
}

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/gewnthar/neotrack/database"
	"github.com/gewnthar/neotrack/logger"
	"github.com/gewnthar/neotrack/models"
	"github.com/gewnthar/neotrack/services"
)

func replExplorer(t *testing.T) *services.Explorer {
	t.Helper()

	neos := []*models.NearEarthObject{
		models.NewNearEarthObject("433", "Eros", 16.84, false),
	}
	approaches := []*models.CloseApproach{
		models.NewCloseApproach("433", time.Date(2027, time.April, 30, 12, 0, 0, 0, time.UTC), 0.15, 5.2),
	}
	db := database.New(neos, approaches, logger.Nop())
	return services.NewExplorer(db, logger.Nop())
}

func TestParseREPLQuery(t *testing.T) {
	c, limit, outfile, err := parseREPLQuery([]string{
		"start-date=2020-01-01", "max-distance=0.5", "hazardous=false", "limit=10", "outfile=out.json",
	})
	if err != nil {
		t.Fatal(err)
	}
	if c.StartDate == nil || !c.StartDate.Equal(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start date: %v", c.StartDate)
	}
	if c.DistanceMax == nil || *c.DistanceMax != 0.5 {
		t.Fatalf("max distance: %v", c.DistanceMax)
	}
	if c.Hazardous == nil || *c.Hazardous {
		t.Fatalf("hazardous: %v", c.Hazardous)
	}
	if limit != 10 || outfile != "out.json" {
		t.Fatalf("limit/outfile: %d/%q", limit, outfile)
	}
}

func TestParseREPLQueryRejectsUnknownKey(t *testing.T) {
	if _, _, _, err := parseREPLQuery([]string{"color=red"}); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if _, _, _, err := parseREPLQuery([]string{"hazardous"}); err == nil {
		t.Fatal("expected error for missing value")
	}
}

func TestREPLInspectAndQuery(t *testing.T) {
	input := strings.NewReader("inspect Eros verbose\nquery max-distance=0.2\nquit\n")
	var out bytes.Buffer

	if err := runREPL(replExplorer(t), input, &out); err != nil {
		t.Fatal(err)
	}

	s := out.String()
	if !strings.Contains(s, "433 (Eros)") {
		t.Fatalf("inspect output missing: %q", s)
	}
	if !strings.Contains(s, "2027-04-30 12:00") {
		t.Fatalf("query output missing: %q", s)
	}
}

func TestREPLUnknownCommand(t *testing.T) {
	input := strings.NewReader("frobnicate\nquit\n")
	var out bytes.Buffer

	if err := runREPL(replExplorer(t), input, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("output: %q", out.String())
	}
}

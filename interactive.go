// interactive.go
package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gewnthar/neotrack/filters"
	"github.com/gewnthar/neotrack/services"
)

const replHelp = `Commands:
  inspect <designation-or-name> [verbose]   show one NEO (verbose lists its approaches)
  query [key=value ...]                     filter close approaches
      keys: date, start-date, end-date (YYYY-MM-DD),
            min-distance, max-distance, min-velocity, max-velocity,
            min-diameter, max-diameter, hazardous (true/false),
            limit, outfile
  help                                      show this help
  quit                                      leave the session`

// runREPL reads commands from r and answers them against the explorer's
// already-loaded database, one line per command, until EOF or quit.
func runREPL(explorer *services.Explorer, r io.Reader, w io.Writer) error {
	fmt.Fprintf(w, "neotrack interactive session: %d NEOs, %d close approaches loaded. Type 'help' for commands.\n",
		explorer.DB.NEOCount(), explorer.DB.ApproachCount())

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "neotrack> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		args := strings.Fields(line)
		switch strings.ToLower(args[0]) {
		case "quit", "exit":
			return scanner.Err()
		case "help":
			fmt.Fprintln(w, replHelp)
		case "inspect":
			if len(args) < 2 {
				fmt.Fprintln(w, "usage: inspect <designation-or-name> [verbose]")
				continue
			}
			verbose := len(args) > 2 && strings.EqualFold(args[2], "verbose")
			key := args[1]
			// Try the designation index first, then the name index.
			if explorer.DB.GetNEOByDesignation(key) != nil {
				explorer.Inspect(w, key, "", verbose)
			} else {
				explorer.Inspect(w, "", key, verbose)
			}
		case "query":
			criteria, limit, outfile, err := parseREPLQuery(args[1:])
			if err != nil {
				fmt.Fprintf(w, "error: %v\n", err)
				continue
			}
			if err := explorer.WriteQuery(w, criteria, limit, outfile); err != nil {
				fmt.Fprintf(w, "error: %v\n", err)
			}
		default:
			fmt.Fprintf(w, "unknown command %q; type 'help'\n", args[0])
		}
	}
	return scanner.Err()
}

// parseREPLQuery turns key=value arguments into query criteria.
func parseREPLQuery(args []string) (filters.Criteria, int, string, error) {
	var (
		c       filters.Criteria
		limit   int
		outfile string
	)

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return c, 0, "", fmt.Errorf("expected key=value, got %q", arg)
		}

		var err error
		switch strings.ToLower(key) {
		case "date":
			err = parseDateInto(value, &c.Date)
		case "start-date":
			err = parseDateInto(value, &c.StartDate)
		case "end-date":
			err = parseDateInto(value, &c.EndDate)
		case "min-distance":
			err = parseFloatInto(value, &c.DistanceMin)
		case "max-distance":
			err = parseFloatInto(value, &c.DistanceMax)
		case "min-velocity":
			err = parseFloatInto(value, &c.VelocityMin)
		case "max-velocity":
			err = parseFloatInto(value, &c.VelocityMax)
		case "min-diameter":
			err = parseFloatInto(value, &c.DiameterMin)
		case "max-diameter":
			err = parseFloatInto(value, &c.DiameterMax)
		case "hazardous":
			var flag bool
			if flag, err = strconv.ParseBool(value); err == nil {
				c.Hazardous = &flag
			}
		case "limit":
			limit, err = strconv.Atoi(value)
		case "outfile":
			outfile = value
		default:
			return c, 0, "", fmt.Errorf("unknown query key %q", key)
		}
		if err != nil {
			return c, 0, "", fmt.Errorf("bad value for %s: %w", key, err)
		}
	}

	return c, limit, outfile, nil
}

func parseDateInto(value string, dst **time.Time) error {
	t, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return err
	}
	*dst = &t
	return nil
}

func parseFloatInto(value string, dst **float64) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*dst = &v
	return nil
}

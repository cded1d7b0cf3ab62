// main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gewnthar/neotrack/config"
	"github.com/gewnthar/neotrack/filters"
	"github.com/gewnthar/neotrack/logger"
	"github.com/gewnthar/neotrack/services"
)

const dateLayout = "2006-01-02"

var (
	configPath string
	neoFile    string
	cadFile    string
)

var rootCmd = &cobra.Command{
	Use:   "neotrack",
	Short: "Explore NASA's near-Earth object close approach data",
	Long: "neotrack loads NASA's near-Earth object and close-approach datasets " +
		"into an in-memory database and answers queries against it.",
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default config.yaml)")
	rootCmd.PersistentFlags().StringVar(&neoFile, "neofile", "", "path to the NEO CSV file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&cadFile, "cadfile", "", "path to the close-approach JSON file (overrides config)")

	rootCmd.AddCommand(newQueryCmd(), newInspectCmd(), newInteractiveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openExplorer loads config, builds the logger, and loads the database.
// Every subcommand starts here.
func openExplorer() (*services.Explorer, error) {
	if err := config.Load(configPath); err != nil {
		return nil, err
	}
	log := logger.New(config.AppConfig.Logging.Level)

	neoPath := config.AppConfig.Data.NEOCSV
	if neoFile != "" {
		neoPath = neoFile
	}
	cadPath := config.AppConfig.Data.CadJSON
	if cadFile != "" {
		cadPath = cadFile
	}

	return services.Open(neoPath, cadPath, log)
}

func newInspectCmd() *cobra.Command {
	var (
		designation string
		name        string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect a single NEO by designation or by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			explorer, err := openExplorer()
			if err != nil {
				return err
			}
			return explorer.Inspect(cmd.OutOrStdout(), designation, name, verbose)
		},
	}

	cmd.Flags().StringVarP(&designation, "designation", "d", "", "primary designation of the NEO")
	cmd.Flags().StringVarP(&name, "name", "n", "", "IAU name of the NEO")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also list the NEO's close approaches")
	return cmd
}

func newQueryCmd() *cobra.Command {
	var (
		date, startDate, endDate string
		minDistance, maxDistance float64
		minVelocity, maxVelocity float64
		minDiameter, maxDiameter float64
		hazardous                bool
		limit                    int
		outfile                  string
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query close approaches with a set of attribute filters",
		Long: "Query close approaches matching every given filter, in ascending " +
			"time order. Without --outfile the results print to stdout; with it, " +
			"the extension picks the format (.csv, .json, or .xlsx).",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := buildCriteria(cmd, date, startDate, endDate,
				minDistance, maxDistance, minVelocity, maxVelocity,
				minDiameter, maxDiameter, hazardous)
			if err != nil {
				return err
			}

			explorer, err := openExplorer()
			if err != nil {
				return err
			}
			return explorer.WriteQuery(cmd.OutOrStdout(), criteria, limit, outfile)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "approaches on this date exactly (YYYY-MM-DD)")
	cmd.Flags().StringVar(&startDate, "start-date", "", "approaches on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "approaches on or before this date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&minDistance, "min-distance", 0, "minimum approach distance in au")
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "maximum approach distance in au")
	cmd.Flags().Float64Var(&minVelocity, "min-velocity", 0, "minimum relative velocity in km/s")
	cmd.Flags().Float64Var(&maxVelocity, "max-velocity", 0, "maximum relative velocity in km/s")
	cmd.Flags().Float64Var(&minDiameter, "min-diameter", 0, "minimum NEO diameter in km")
	cmd.Flags().Float64Var(&maxDiameter, "max-diameter", 0, "maximum NEO diameter in km")
	cmd.Flags().BoolVar(&hazardous, "hazardous", false, "filter on the hazardous flag (--hazardous=false matches non-hazardous NEOs)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results (0 means all)")
	cmd.Flags().StringVarP(&outfile, "outfile", "o", "", "write results to this file instead of stdout")
	return cmd
}

// buildCriteria turns the query flags into filter criteria. Only flags the
// user actually passed become constraints, so --hazardous=false filters for
// non-hazardous NEOs while omitting the flag filters nothing.
func buildCriteria(cmd *cobra.Command, date, startDate, endDate string,
	minDistance, maxDistance, minVelocity, maxVelocity,
	minDiameter, maxDiameter float64, hazardous bool,
) (filters.Criteria, error) {
	var c filters.Criteria

	setDate := func(flag, value string, dst **time.Time) error {
		if !cmd.Flags().Changed(flag) {
			return nil
		}
		t, err := time.ParseInLocation(dateLayout, value, time.UTC)
		if err != nil {
			return fmt.Errorf("invalid --%s %q: want YYYY-MM-DD", flag, value)
		}
		*dst = &t
		return nil
	}
	setFloat := func(flag string, value float64, dst **float64) {
		if cmd.Flags().Changed(flag) {
			*dst = &value
		}
	}

	if err := setDate("date", date, &c.Date); err != nil {
		return c, err
	}
	if err := setDate("start-date", startDate, &c.StartDate); err != nil {
		return c, err
	}
	if err := setDate("end-date", endDate, &c.EndDate); err != nil {
		return c, err
	}
	setFloat("min-distance", minDistance, &c.DistanceMin)
	setFloat("max-distance", maxDistance, &c.DistanceMax)
	setFloat("min-velocity", minVelocity, &c.VelocityMin)
	setFloat("max-velocity", maxVelocity, &c.VelocityMax)
	setFloat("min-diameter", minDiameter, &c.DiameterMin)
	setFloat("max-diameter", maxDiameter, &c.DiameterMax)
	if cmd.Flags().Changed("hazardous") {
		c.Hazardous = &hazardous
	}

	return c, nil
}

func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session against the loaded database",
		Long: "Load both datasets once, then answer inspect and query commands " +
			"from a prompt without reloading between requests.",
		RunE: func(cmd *cobra.Command, args []string) error {
			explorer, err := openExplorer()
			if err != nil {
				return err
			}
			return runREPL(explorer, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

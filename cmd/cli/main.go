package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"retrofit-risk/internal/data"
	"retrofit-risk/internal/model"
	"retrofit-risk/internal/report"
	"retrofit-risk/internal/simulation"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "assess":
		cmdAssess(os.Args[2:])
	case "check-forecasts":
		cmdCheckForecasts(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli assess --capex 60000 --opex 2000 --savings 27400 --lifetime 20 --level professional")
	fmt.Println("  cli check-forecasts --file forecasts.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - assess prints the JSON response envelope; --raw-out dumps per-scenario indicators as CSV")
	fmt.Println("  - check-forecasts validates scenario ordering in an external forecast table")
}

func cmdAssess(args []string) {
	fs := flag.NewFlagSet("assess", flag.ExitOnError)
	capex := fs.Float64("capex", 0, "Capital expenditure (€)")
	opex := fs.Float64("opex", 0, "Annual maintenance cost (€)")
	savings := fs.Float64("savings", 0, "Annual energy savings (kWh)")
	lifetime := fs.Int("lifetime", 20, "Project lifetime (years)")
	loan := fs.Float64("loan", 0, "Loan amount (€)")
	loanTerm := fs.Int("loan-term", 0, "Loan term (years)")
	level := fs.String("level", "professional", "Output level: private or professional")
	indicators := fs.String("indicators", "", "Comma-separated indicator subset (default: all five)")
	nSims := fs.Int("n", simulation.DefaultNSims, "Number of Monte Carlo scenarios")
	seed := fs.Uint64("seed", simulation.DefaultSeed, "Random seed")
	forecastsPath := fs.String("forecasts", "", "External forecast tables YAML (default: embedded)")
	rawOut := fs.String("raw-out", "", "Optional path for a per-scenario indicator CSV")
	_ = fs.Parse(args)

	inputs, err := model.NewProjectInputs(*capex, *opex, *savings, *lifetime, *loan, *loanTerm)
	if err != nil {
		fatal(err)
	}
	outputLevel, err := report.ParseOutputLevel(*level)
	if err != nil {
		fatal(err)
	}
	var names []string
	if *indicators != "" {
		names = strings.Split(*indicators, ",")
	}
	requested, err := model.ParseIndicators(names)
	if err != nil {
		fatal(err)
	}
	forecasts, err := data.LoadForecasts(*forecastsPath)
	if err != nil {
		fatal(err)
	}

	engine := simulation.New()
	res, err := engine.Run(inputs, *forecasts, simulation.Options{NSims: *nSims, Seed: *seed})
	if err != nil {
		fatal(err)
	}

	if *rawOut != "" {
		if err := os.MkdirAll(filepath.Dir(*rawOut), 0o755); err != nil {
			fatal(err)
		}
		if err := simulation.WriteRawCSV(*rawOut, res); err != nil {
			fatal(err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d scenario rows to %s\n", res.NSims, *rawOut)
	}

	env, err := report.Build(inputs, res, outputLevel, requested)
	if err != nil {
		fatal(err)
	}
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))
}

func cmdCheckForecasts(args []string) {
	fs := flag.NewFlagSet("check-forecasts", flag.ExitOnError)
	file := fs.String("file", "", "Forecast tables YAML to validate")
	_ = fs.Parse(args)

	if *file == "" {
		fmt.Println("--file is required")
		os.Exit(2)
	}
	if _, err := data.LoadForecasts(*file); err != nil {
		fatal(err)
	}
	fmt.Printf("%s: OK\n", *file)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

package main

import (
	"encoding/json"
	"fmt"

	"retrofit-risk/internal/data"
	"retrofit-risk/internal/model"
	"retrofit-risk/internal/report"
	"retrofit-risk/internal/simulation"
)

// Demo:
// - Load the embedded market forecast tables
// - Assess a worked retrofit project (60 k€ capex, partially loan-financed)
// - Print the private and professional envelopes side by side
func main() {
	forecasts, err := data.LoadForecasts("")
	if err != nil {
		panic(err)
	}

	inputs, err := model.NewProjectInputs(60000, 2000, 27400, 20, 25000, 15)
	if err != nil {
		panic(err)
	}

	engine := simulation.New()
	res, err := engine.Run(inputs, *forecasts, simulation.DefaultOptions())
	if err != nil {
		panic(err)
	}

	for _, level := range []report.OutputLevel{report.Private, report.Professional} {
		env, err := report.Build(inputs, res, level, nil)
		if err != nil {
			panic(err)
		}
		out, err := json.MarshalIndent(env, "", "  ")
		if err != nil {
			panic(err)
		}
		fmt.Printf("=== %s ===\n%s\n\n", level, out)
	}
}

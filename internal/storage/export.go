package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/superball/internal/sim"
)

type ExportData struct {
	Model      string             `json:"model"`
	Controller string             `json:"controller"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Steps      int                `json:"steps"`
	Actuators  []string           `json:"actuators"`
	Times      []float64          `json:"times"`
	Tensions   [][]float64        `json:"tensions"`
	Controls   [][]float64        `json:"controls"`
	Metrics    map[string]float64 `json:"metrics"`
}

func ExportJSON(w io.Writer, meta RunMetadata, result *sim.Result) error {
	data := ExportData{
		Model:      meta.Model,
		Controller: meta.Controller,
		Dt:         meta.Dt,
		Duration:   meta.Duration,
		Steps:      result.StepsTaken,
		Actuators:  result.Actuators,
		Times:      result.Times,
		Tensions:   make([][]float64, len(result.States)),
		Controls:   make([][]float64, len(result.Controls)),
		Metrics:    result.Metrics,
	}
	for i, s := range result.States {
		data.Tensions[i] = s
	}
	for i, c := range result.Controls {
		data.Controls[i] = c
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteCSV writes one row per sample: time, every tension, then every rest
// length change. The initial sample has no control and gets zeros.
func WriteCSV(w io.Writer, result *sim.Result) error {
	cw := csv.NewWriter(w)

	header := []string{"time"}
	for _, name := range result.Actuators {
		header = append(header, TensionPrefix+name)
	}
	for _, name := range result.Actuators {
		header = append(header, ControlPrefix+name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	n := len(result.Actuators)
	for i := range result.States {
		row := make([]string, 0, 1+2*n)
		row = append(row, strconv.FormatFloat(result.Times[i], 'f', 6, 64))
		for _, v := range result.States[i] {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}

		// controls[i-1] moved the structure from sample i-1 to sample i
		if i > 0 && i-1 < len(result.Controls) {
			for _, v := range result.Controls[i-1] {
				row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
			}
		} else {
			for j := 0; j < n; j++ {
				row = append(row, "0")
			}
		}

		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

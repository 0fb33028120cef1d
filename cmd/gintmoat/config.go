package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// loadSettings reads a YAML settings file. The keys match the yaml tags of
// settings; unknown keys are rejected.
func loadSettings(path string) (settings, error) {
	var s settings
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("%w: parse config %s: %v", errInput, path, err)
	}
	if s.RealPart != 0 {
		s.hasRealPart = true
	}
	return s, nil
}

// changed reports which settings were given explicitly on the command line.
// Positional arguments count as explicit jump and real_part.
func changed(cmd *cobra.Command, nargs int) func(key string) bool {
	flags := map[string]string{
		"verbose":      "verbose",
		"print_primes": "printprimes",
		"max_norm":     "max-norm",
		"growth_step":  "growth-step",
		"width":        "width",
		"height":       "height",
		"max_imag":     "max-imag",
		"metrics_file": "metrics-file",
	}
	return func(key string) bool {
		switch key {
		case "jump":
			return nargs > 0
		case "real_part":
			return nargs > 1
		case "mode":
			f := cmd.Flags()
			return f.Changed(modeOrigin) || f.Changed(modeSegmented) || f.Changed(modeVertical)
		}
		return cmd.Flags().Changed(flags[key])
	}
}

// merge fills every setting of cli not given explicitly from file.
func merge(cli, file settings, explicit func(key string) bool) settings {
	out := cli
	if !explicit("jump") && file.Jump != 0 {
		out.Jump = file.Jump
	}
	if !explicit("real_part") && file.hasRealPart {
		out.RealPart, out.hasRealPart = file.RealPart, true
	}
	if !explicit("mode") && file.Mode != "" {
		out.Mode = file.Mode
	}
	if !explicit("verbose") && file.Verbose {
		out.Verbose = true
	}
	if !explicit("print_primes") && file.PrintPrimes {
		out.PrintPrimes = true
	}
	if !explicit("max_norm") && file.MaxNorm != 0 {
		out.MaxNorm = file.MaxNorm
	}
	if !explicit("growth_step") && file.GrowthStep != 0 {
		out.GrowthStep = file.GrowthStep
	}
	if !explicit("width") && file.Width != 0 {
		out.Width = file.Width
	}
	if !explicit("height") && file.Height != 0 {
		out.Height = file.Height
	}
	if !explicit("max_imag") && file.MaxImag != 0 {
		out.MaxImag = file.MaxImag
	}
	if !explicit("metrics_file") && file.MetricsFile != "" {
		out.MetricsFile = file.MetricsFile
	}
	return out
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"timefill/pkg/config"
	"timefill/pkg/gapfill"
	"timefill/pkg/volume"
)

func main() {
	// Parse command line arguments
	inputPath := flag.String("input", "", "Raw int16 volume to fill (little-endian, time-major)")
	outputPath := flag.String("output", "filled.bin", "Output volume filename")
	configPath := flag.String("config", "timefill.yaml", "Optional YAML configuration file")
	numCores := flag.Int("cores", 0, "Number of CPU cores to use (default: value from config)")
	sentinel := flag.Int("sentinel", gapfill.DefaultSentinel, "No-data marker used by the input product")
	timeSteps := flag.Int("time", 0, "Number of rasters in the stack (overrides config)")
	rows := flag.Int("rows", 0, "Raster row count (overrides config)")
	cols := flag.Int("cols", 0, "Raster column count (overrides config)")
	quiet := flag.Bool("quiet", false, "Suppress progress output")
	flag.Parse()

	// Validate inputs
	if *inputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration; missing file falls back to defaults
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Flags explicitly set on the command line override config values
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cores":
			cfg.Processing.NumCores = *numCores
		case "sentinel":
			cfg.Processing.Sentinel = *sentinel
		case "time":
			cfg.Volume.TimeSteps = *timeSteps
		case "rows":
			cfg.Volume.Rows = *rows
		case "cols":
			cfg.Volume.Cols = *cols
		case "quiet":
			cfg.Output.Verbose = !*quiet
		}
	})

	if cfg.Volume.TimeSteps <= 0 || cfg.Volume.Rows <= 0 || cfg.Volume.Cols <= 0 {
		log.Fatalf("Volume dimensions must be set via flags or config, got (%d, %d, %d)",
			cfg.Volume.TimeSteps, cfg.Volume.Rows, cfg.Volume.Cols)
	}

	// Read the raw volume
	in, err := os.Open(*inputPath)
	if err != nil {
		log.Fatalf("Failed to open input volume: %v", err)
	}
	vol, err := volume.ReadRaw(in, cfg.Volume.TimeSteps, cfg.Volume.Rows, cfg.Volume.Cols)
	in.Close()
	if err != nil {
		log.Fatalf("Failed to read input volume: %v", err)
	}

	if cfg.Output.Verbose {
		fmt.Printf("Loaded volume: %d time steps x %d rows x %d cols (%d traces)\n",
			vol.TimeSteps, vol.Rows, vol.Cols, vol.NumTraces())
		fmt.Printf("No-data sentinel: %d\n", cfg.Processing.Sentinel)
		fmt.Printf("Filling temporal gaps with %d workers...\n", cfg.Processing.NumCores)
	}

	// Run the gap filler across all pixel traces
	startTime := time.Now()
	filled, err := gapfill.FillParallel(context.Background(), vol, cfg.Processing.Sentinel, cfg.Processing.NumCores)
	if err != nil {
		log.Fatalf("Gap filling failed: %v", err)
	}
	processingTime := time.Since(startTime)

	// Write the filled volume
	out, err := os.Create(*outputPath)
	if err != nil {
		log.Fatalf("Failed to create output volume: %v", err)
	}
	if err := filled.WriteRaw(out); err != nil {
		out.Close()
		log.Fatalf("Failed to write output volume: %v", err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("Failed to close output volume: %v", err)
	}

	if cfg.Output.Verbose {
		stats := gapfill.Stats(vol, filled, cfg.Processing.Sentinel)

		fmt.Printf("\nGap filling completed in %.2f seconds\n", processingTime.Seconds())
		fmt.Printf("Output volume saved to: %s\n\n", *outputPath)

		fmt.Printf("Fill summary:\n")
		fmt.Printf("=============\n")
		fmt.Printf("Samples:         %d\n", stats.Total)
		fmt.Printf("Interior gaps:   %d\n", stats.Gaps)
		fmt.Printf("Filled:          %d\n", stats.Filled)
		fmt.Printf("Unresolved:      %d\n", stats.Unresolved)
		if stats.Filled > 0 {
			fmt.Printf("Filled mean:     %.2f\n", stats.FilledMean)
			fmt.Printf("Filled stddev:   %.2f\n", stats.FilledStdDev)
		}
		if stats.Unresolved > 0 {
			fmt.Println("\nUnresolved gaps keep the sentinel; runs longer than two samples")
			fmt.Println("are left for downstream smoothing to handle.")
		}
	}
}

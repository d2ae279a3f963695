// Package main provides a performance benchmarking tool for the colorcurve CLI.
// It generates synthetic campaigns of increasing length, runs each command
// several times, treats the first successful run as cold and averages the rest
// as warm, and writes the results to CSV for performance analysis.
//
// Prerequisites:
// - colorcurve binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory the synthetic campaigns are written to
package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-history average, cold run and average of warm runs).
type BenchmarkResult struct {
	Campaign      string
	Command       string
	NoHistoryTime string
	ColdTime      string
	WarmTime      string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir       string
	Timeout       time.Duration
	NoHistoryRuns int
	HistoryRuns   int
	Campaigns     map[string]int // Campaign name to number of nights
	Order         []string
	Commands      []string
	Period        float64
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:       os.Args[1],
		Timeout:       5 * time.Minute,
		NoHistoryRuns: 3,
		HistoryRuns:   4,
		Campaigns:     map[string]int{"season": 120, "decade": 1200, "century": 12000},
		Order:         []string{"season", "decade", "century"},
		Commands:      []string{"colors", "cycles", "report"},
		Period:        60.37,
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(config, results)
}

// checkPrerequisites verifies that the colorcurve binary exists and writes the campaigns.
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("colorcurve"); err != nil {
		return fmt.Errorf("colorcurve binary not found in PATH")
	}
	for _, name := range config.Order {
		if err := writeCampaign(filepath.Join(config.WorkDir, name), config.Campaigns[name], config.Period); err != nil {
			return fmt.Errorf("cannot write campaign %s: %w", name, err)
		}
	}
	return nil
}

// writeCampaign writes nightly averages of a target with an orbital modulation
// and a constant comparison star, in the default file layout.
func writeCampaign(dir string, nights int, period float64) error {
	offsets := map[string]float64{"B": 0.45, "V": 0, "R": -0.2, "I": -0.35}
	for band, offset := range offsets {
		dataDir := filepath.Join(dir, band, "data")
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return err
		}
		for _, source := range []string{"target", "compa1"} {
			var sb strings.Builder
			for n := range nights {
				mjd := 55000 + float64(n) + 0.3
				mag := 9.6 + offset
				if source == "target" {
					mag = 8.8 + offset*(1+0.1*math.Sin(2*math.Pi*float64(n)/period))
				}
				_, _ = fmt.Fprintf(&sb, "%.5f %.4f %.4f %d\n", mjd, mag, 0.01, 4)
			}
			name := fmt.Sprintf("S0_%s_MJD_MAG_ERR-%s-nightly_average.dat", source, band)
			if err := os.WriteFile(filepath.Join(dataDir, name), []byte(sb.String()), 0o644); err != nil {
				return err
			}
		}
	}
	return nil
}

// runBenchmarks executes all benchmark tests across the campaigns.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d campaigns, %v timeout, no-history: %d runs, history: %d runs\n",
		len(config.Order), config.Timeout, config.NoHistoryRuns, config.HistoryRuns)

	historyPath := filepath.Join(config.WorkDir, "history.db")
	for _, name := range config.Order {
		fmt.Printf("Benchmarking %s (%d nights)\n", name, config.Campaigns[name])
		dir := filepath.Join(config.WorkDir, name)
		for _, command := range config.Commands {
			results = append(results, runBenchmarkSuite(config, name, dir, command, historyPath))
		}
	}

	return results
}

// runBenchmarkSuite runs both no-history and history benchmarks for a command.
func runBenchmarkSuite(config BenchmarkConfig, campaign, dir, command, historyPath string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", command, campaign)

	runPhase := func(historyArgs []string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, dir, command, historyArgs, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avgTime = fmt.Sprintf("%.3fs", sum/float64(len(times)))
		}
		return cold, avgTime
	}

	_, noHistoryAvg := runPhase([]string{"--history-backend", "none"}, config.NoHistoryRuns, "No-history")
	coldTime, warmAvg := runPhase([]string{"--history-backend", "sqlite", "--history-db-connect", historyPath}, config.HistoryRuns, "History")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-history average: %s, Cold time: %s, Warm average: %s\n", noHistoryAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Campaign:      campaign,
		Command:       command,
		NoHistoryTime: noHistoryAvg,
		ColdTime:      coldTimeStr,
		WarmTime:      warmAvg,
	}
}

// runBenchmark executes a colorcurve command multiple times and returns cold time and warm times.
func runBenchmark(config BenchmarkConfig, dir, command string, historyArgs []string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := []string{command, dir,
		"--period", fmt.Sprintf("%g", config.Period),
		"--jd0-cycle", "2455000.5",
		"--jd0", "2455000.5",
		"--output-dir", filepath.Join(dir, "colors"),
	}
	args = append(args, historyArgs...)

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("colorcurve", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, command) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
			<-done
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion.
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)
	if command == "report" {
		return strings.Contains(outputStr, "Normal termination.")
	}
	return strings.Contains(outputStr, "Computed in")
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("colorcurve_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"campaign", "cmd", "no_history_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Campaign, result.Command, result.NoHistoryTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary.
func printSummary(config BenchmarkConfig, results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, command := range config.Commands {
		fmt.Printf("%s:\n", command)
		for _, result := range results {
			if result.Command == command {
				fmt.Printf("  %-8s: No-history: %s, Cold: %s, Warm: %s\n", result.Campaign, result.NoHistoryTime, result.ColdTime, result.WarmTime)
			}
		}
	}
	fmt.Printf("Benchmark script completed successfully\n")
}

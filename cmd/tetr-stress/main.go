package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"
)

// Every player steps at this rate of simulated time, independent of wall-clock speed.
const frameTime = time.Second / 60

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	games := flag.Int("games", 100, "The number of games played side by side.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for pieces and bot input.")
	fall := flag.Duration("fall", 20*time.Millisecond, "Fall interval of every game.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *games < 1 {
		log.Fatalf("-games must be at least 1, got %d", *games)
	}
	if *fall <= 0 {
		log.Fatalf("-fall must be positive, got %s", *fall)
	}

	log.Println("Starting tetris stress test...")

	log.Printf("Creating %d games...\n", *games)
	players := make([]*Player, *games)
	for i := range players {
		players[i] = NewPlayer(*seed+uint64(i), *fall)
	}

	report := &Report{
		Duration:       *duration,
		Games:          *games,
		Seed:           *seed,
		FallInterval:   *fall,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalFrames int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			for _, p := range players {
				p.Step(frameTime)
			}
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	for _, p := range players {
		lines, pieces := p.Totals()
		report.Rounds += p.Rounds
		report.Lines += lines
		report.Pieces += pieces
		report.Systems = AddSystemStats(report.Systems, p.Scheduler().GetStats())
	}

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

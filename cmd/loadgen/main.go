package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/volmatch/volmatch/internal/loadgen"
)

// Default configuration constants.
const (
	defaultNumUsers   = 200
	defaultNumEvents  = 500
	defaultNumQueries = 2000
	defaultLimit      = 10
	defaultWorkers    = 2 // multiplier for runtime.NumCPU()
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numUsers  = flag.Int("users", defaultNumUsers, "Number of volunteers to create")
		numEvents = flag.Int("events", defaultNumEvents, "Number of events to create")
		queries   = flag.Int("queries", defaultNumQueries, "Number of suggestion queries to issue")
		limit     = flag.Int("limit", defaultLimit, "limit parameter for suggestion queries")
		workers   = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout   = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile   = flag.String("log", "", "Log file for output (default: loadgen_log_TIMESTAMP.log)")
		verbose   = flag.Bool("verbose", false, "Enable verbose logging")
		help      = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		loadgen.ShowHelp()
		return
	}

	// Setup logging
	if err := loadgen.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	// Create run configuration
	config := &loadgen.Config{
		BaseURL:   *baseURL,
		NumUsers:  *numUsers,
		NumEvents: *numEvents,
		Queries:   *queries,
		Limit:     *limit,
		Workers:   *workers,
		Timeout:   *timeout,
		LogFile:   *logFile,
		Verbose:   *verbose,
	}

	// Run the load generator
	if err := loadgen.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Load generation failed: " + err.Error() + "\n")
		return
	}
}

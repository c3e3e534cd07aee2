// Package loadgen exercises a running volmatch service: it fills the
// directory with synthetic volunteers and events, fires concurrent
// suggestion queries, and verifies the responses.
package loadgen

import "time"

// Config holds configuration for the load generator.
type Config struct {
	BaseURL   string        // Base URL of the service
	NumUsers  int           // Number of volunteers to create
	NumEvents int           // Number of events to create
	Queries   int           // Number of suggestion queries to issue
	Limit     int           // limit parameter for suggestion queries
	Workers   int           // Number of concurrent workers
	Timeout   time.Duration // HTTP request timeout
	LogFile   string        // Log file for output
	Verbose   bool          // Enable verbose logging
}

// Stats holds run statistics.
type Stats struct {
	UsersCreated       int
	EventsCreated      int
	QueriesIssued      int
	QueriesSuccessful  int
	QueriesFailed      int
	OrderingViolations int
	BoundViolations    int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}

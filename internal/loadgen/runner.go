package loadgen

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	model "github.com/volmatch/volmatch/internal/domain/model"
	"github.com/volmatch/volmatch/pkg/logger"
)

// Run executes the complete load generation pass.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting volmatch load generator",
		logger.String("baseURL", config.BaseURL),
		logger.Int("users", config.NumUsers),
		logger.Int("events", config.NumEvents),
		logger.Int("queries", config.Queries),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()))

	client := newHTTPClient(config.Timeout)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Fill the directory
	userIDs, err := createUsers(ctx, client, config, stats)
	if err != nil {
		return fmt.Errorf("user creation failed: %w", err)
	}
	if err := createEvents(ctx, client, config, stats); err != nil {
		return fmt.Errorf("event creation failed: %w", err)
	}

	// Step 3: Fire concurrent suggestion queries and verify responses
	if err := runQueries(ctx, client, config, userIDs, stats); err != nil {
		return fmt.Errorf("query run failed: %w", err)
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	if stats.OrderingViolations > 0 || stats.BoundViolations > 0 {
		return fmt.Errorf("verification failed: %d ordering violations, %d bound violations",
			stats.OrderingViolations, stats.BoundViolations)
	}

	logger.Get().Info(ctx, "load generation completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Any 200 counts as healthy; the endpoint serves Prometheus metrics.
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// errCollector keeps the first error reported by any worker. Workers fail
// with mixed concrete types (transport errors, status errors), so the
// guard is a mutex rather than an atomic value.
type errCollector struct {
	mu  sync.Mutex
	err error
}

func (c *errCollector) record(err error) {
	c.mu.Lock()
	if c.err == nil {
		c.err = err
	}
	c.mu.Unlock()
}

func (c *errCollector) first() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// createUsers posts synthetic volunteers concurrently and collects their IDs.
func createUsers(ctx context.Context, client *HTTPClient, config *Config, stats *Stats) ([]string, error) {
	logger.Get().Info(ctx, "creating volunteers", logger.Int("count", config.NumUsers))

	userIDs := make([]string, config.NumUsers)
	var created int64

	indexChan := make(chan int, config.Workers*2)
	var wg sync.WaitGroup
	var collected errCollector

	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				stored, err := client.createUser(ctx, config.BaseURL, GenerateUser(i))
				if err != nil {
					collected.record(err)
					continue
				}
				userIDs[i] = stored.ID
				atomic.AddInt64(&created, 1)
			}
		}()
	}

	for i := 0; i < config.NumUsers; i++ {
		select {
		case <-ctx.Done():
			close(indexChan)
			wg.Wait()
			return nil, fmt.Errorf("cancelled during user creation: %w", ctx.Err())
		case indexChan <- i:
		}
	}
	close(indexChan)
	wg.Wait()

	if err := collected.first(); err != nil {
		return nil, err
	}

	stats.UsersCreated = int(atomic.LoadInt64(&created))
	logger.Get().Info(ctx, "volunteers created", logger.Int("count", stats.UsersCreated))
	return userIDs, nil
}

// createEvents posts synthetic events concurrently.
func createEvents(ctx context.Context, client *HTTPClient, config *Config, stats *Stats) error {
	logger.Get().Info(ctx, "creating events", logger.Int("count", config.NumEvents))

	var created int64

	indexChan := make(chan int, config.Workers*2)
	var wg sync.WaitGroup
	var collected errCollector

	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				if _, err := client.createEvent(ctx, config.BaseURL, GenerateEvent(i)); err != nil {
					collected.record(err)
					continue
				}
				atomic.AddInt64(&created, 1)
			}
		}()
	}

	for i := 0; i < config.NumEvents; i++ {
		select {
		case <-ctx.Done():
			close(indexChan)
			wg.Wait()
			return fmt.Errorf("cancelled during event creation: %w", ctx.Err())
		case indexChan <- i:
		}
	}
	close(indexChan)
	wg.Wait()

	if err := collected.first(); err != nil {
		return err
	}

	stats.EventsCreated = int(atomic.LoadInt64(&created))
	logger.Get().Info(ctx, "events created", logger.Int("count", stats.EventsCreated))
	return nil
}

// runQueries fires suggestion queries round-robin over the created
// volunteers and verifies each response.
func runQueries(ctx context.Context, client *HTTPClient, config *Config, userIDs []string, stats *Stats) error {
	if len(userIDs) == 0 {
		return fmt.Errorf("no volunteers to query")
	}

	logger.Get().Info(ctx, "issuing suggestion queries",
		logger.Int("queries", config.Queries),
		logger.Int("workers", config.Workers))

	var (
		issued     int64
		successful int64
		failed     int64
		ordering   int64
		bounds     int64
	)

	queryChan := make(chan string, config.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for userID := range queryChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				atomic.AddInt64(&issued, 1)
				resp, err := client.suggest(ctx, config.BaseURL, userID, config.Limit)
				if err != nil {
					atomic.AddInt64(&failed, 1)
					if config.Verbose {
						logger.Get().Warn(ctx, "query failed",
							logger.String("userID", userID),
							logger.Error(err))
					}
					continue
				}

				atomic.AddInt64(&ordering, int64(countOrderingViolations(resp.Matches)))
				atomic.AddInt64(&bounds, int64(countBoundViolations(resp.Matches)))
				if len(resp.Matches) > config.Limit || resp.TotalMatches < len(resp.Matches) {
					atomic.AddInt64(&bounds, 1)
				}
				atomic.AddInt64(&successful, 1)
			}
		}()
	}

	for i := 0; i < config.Queries; i++ {
		select {
		case <-ctx.Done():
			close(queryChan)
			wg.Wait()
			return fmt.Errorf("cancelled during query run: %w", ctx.Err())
		case queryChan <- userIDs[i%len(userIDs)]:
		}
	}
	close(queryChan)
	wg.Wait()

	stats.QueriesIssued = int(atomic.LoadInt64(&issued))
	stats.QueriesSuccessful = int(atomic.LoadInt64(&successful))
	stats.QueriesFailed = int(atomic.LoadInt64(&failed))
	stats.OrderingViolations = int(atomic.LoadInt64(&ordering))
	stats.BoundViolations = int(atomic.LoadInt64(&bounds))

	return nil
}

// countOrderingViolations counts adjacent pairs out of descending order.
func countOrderingViolations(matches []model.MatchResult) int {
	violations := 0
	for i := 1; i < len(matches); i++ {
		if matches[i].MatchScore > matches[i-1].MatchScore {
			violations++
		}
	}
	return violations
}

// countBoundViolations counts scores outside [0,1].
func countBoundViolations(matches []model.MatchResult) int {
	violations := 0
	for _, m := range matches {
		if m.MatchScore < 0 || m.MatchScore > 1 {
			violations++
			continue
		}
		b := m.Breakdown
		for _, s := range []float64{b.SkillMatch, b.AvailabilityMatch, b.DistanceScore, b.CauseAffinity} {
			if s < 0 || s > 1 {
				violations++
				break
			}
		}
	}
	return violations
}

// displayFinalStats logs the final run statistics.
func displayFinalStats(stats *Stats) {
	var queriesPerSecond float64
	if stats.Duration > 0 {
		queriesPerSecond = float64(stats.QueriesIssued) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("usersCreated", stats.UsersCreated),
		logger.Int("eventsCreated", stats.EventsCreated),
		logger.Int("queriesIssued", stats.QueriesIssued),
		logger.Int("queriesSuccessful", stats.QueriesSuccessful),
		logger.Int("queriesFailed", stats.QueriesFailed),
		logger.Int("orderingViolations", stats.OrderingViolations),
		logger.Int("boundViolations", stats.BoundViolations),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("queriesPerSecond", queriesPerSecond))
}

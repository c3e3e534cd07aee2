package loadgen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	model "github.com/volmatch/volmatch/internal/domain/model"
	"github.com/volmatch/volmatch/pkg/logger"
)

// mixedFailureServer alternates 500 responses with dropped connections, so
// concurrent workers see both status errors and transport errors.
func mixedFailureServer() *httptest.Server {
	var calls int64
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&calls, 1)%2 == 0 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		hj, ok := w.(http.Hijacker)
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		conn, _, err := hj.Hijack()
		if err == nil {
			_ = conn.Close()
		}
	}))
}

func TestCreateUsersMixedFailures(t *testing.T) {
	convey.Convey("Given a service where volunteer creation fails in mixed ways", t, func() {
		_ = logger.Init()

		srv := mixedFailureServer()
		defer srv.Close()

		config := &Config{
			BaseURL:  srv.URL,
			NumUsers: 40,
			Workers:  8,
			Timeout:  2 * time.Second,
		}
		client := newHTTPClient(config.Timeout)
		stats := &Stats{}

		convey.Convey("When creating volunteers concurrently", func() {
			var (
				userIDs []string
				err     error
			)
			run := func() {
				userIDs, err = createUsers(context.Background(), client, config, stats)
			}

			convey.Convey("Then the run should surface the first error instead of panicking", func() {
				convey.So(run, convey.ShouldNotPanic)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(userIDs, convey.ShouldBeNil)
			})
		})
	})
}

func TestCreateEventsMixedFailures(t *testing.T) {
	convey.Convey("Given a service where event creation fails in mixed ways", t, func() {
		_ = logger.Init()

		srv := mixedFailureServer()
		defer srv.Close()

		config := &Config{
			BaseURL:   srv.URL,
			NumEvents: 40,
			Workers:   8,
			Timeout:   2 * time.Second,
		}
		client := newHTTPClient(config.Timeout)
		stats := &Stats{}

		convey.Convey("When creating events concurrently", func() {
			var err error
			run := func() {
				err = createEvents(context.Background(), client, config, stats)
			}

			convey.Convey("Then the run should surface the first error instead of panicking", func() {
				convey.So(run, convey.ShouldNotPanic)
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestCreateUsersSuccess(t *testing.T) {
	convey.Convey("Given a service that accepts every volunteer", t, func() {
		_ = logger.Init()

		var accepted int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var user model.User
			if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			user.ID = fmt.Sprintf("id-%d", atomic.AddInt64(&accepted, 1))
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(user)
		}))
		defer srv.Close()

		config := &Config{
			BaseURL:  srv.URL,
			NumUsers: 25,
			Workers:  4,
			Timeout:  2 * time.Second,
		}
		client := newHTTPClient(config.Timeout)
		stats := &Stats{}

		convey.Convey("When creating volunteers concurrently", func() {
			userIDs, err := createUsers(context.Background(), client, config, stats)

			convey.Convey("Then every volunteer should get a server-assigned ID", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(userIDs), convey.ShouldEqual, config.NumUsers)
				convey.So(stats.UsersCreated, convey.ShouldEqual, config.NumUsers)
				for _, id := range userIDs {
					convey.So(id, convey.ShouldNotBeEmpty)
				}
			})
		})
	})
}

func TestErrCollector(t *testing.T) {
	convey.Convey("Given an error collector", t, func() {
		var collected errCollector

		convey.Convey("When no error has been recorded", func() {
			convey.So(collected.first(), convey.ShouldBeNil)
		})

		convey.Convey("When errors of different concrete types race", func() {
			first := fmt.Errorf("status error")
			second := context.DeadlineExceeded

			record := func() {
				collected.record(first)
				collected.record(second)
			}

			convey.Convey("Then recording should not panic and the first should win", func() {
				convey.So(record, convey.ShouldNotPanic)
				convey.So(collected.first(), convey.ShouldEqual, first)
			})
		})
	})
}

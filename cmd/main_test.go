package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
	"github.com/volmatch/volmatch/internal/adapters/http/api"
	app "github.com/volmatch/volmatch/internal/app"
	"github.com/volmatch/volmatch/internal/config"
	"github.com/volmatch/volmatch/internal/domain/matching"
	"github.com/volmatch/volmatch/pkg/logger"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("VOLMATCH_ADDR", ":8080")
			_ = os.Setenv("VOLMATCH_DEFAULT_SUGGEST_LIMIT", "15")
			defer func() {
				_ = os.Unsetenv("VOLMATCH_ADDR")
				_ = os.Unsetenv("VOLMATCH_DEFAULT_SUGGEST_LIMIT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DefaultSuggestLimit, convey.ShouldEqual, 15)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithWeights(matching.DefaultWeights()),
					app.WithDistanceThresholds(5, 50),
					app.WithPartialOverlapCredit(0.7),
					app.WithDemoData(false),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then HTTP server should be creatable", func() {
				server := api.NewServer(svc, svc,
					api.WithSuggestLimits(10, 100),
					api.WithSimilarLimit(5),
				)
				convey.So(server, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsUpdaters(t *testing.T) {
	convey.Convey("Given the background metrics updaters", t, func() {
		_ = logger.Init()

		convey.Convey("When running one system metrics pass", func() {
			convey.Convey("Then it should not panic", func() {
				convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When running one service metrics pass", func() {
			ctx := context.Background()
			svc := app.New(app.WithDemoData(true))
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			convey.Convey("Then it should not panic", func() {
				convey.So(func() { updateServiceMetrics(svc) }, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When the updater loops are cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})
			go func() {
				startSystemMetricsUpdater(ctx)
				close(done)
			}()
			cancel()

			convey.Convey("Then the loop should exit promptly", func() {
				select {
				case <-done:
				case <-time.After(2 * time.Second):
					t.Fatal("system metrics updater did not stop")
				}
			})
		})
	})
}

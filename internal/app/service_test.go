package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/volmatch/volmatch/internal/adapters/repository"
	service "github.com/volmatch/volmatch/internal/app"
	"github.com/volmatch/volmatch/internal/domain/matching"
	"github.com/volmatch/volmatch/internal/domain/model"
	"github.com/volmatch/volmatch/pkg/logger"
)

func TestService(t *testing.T) {
	convey.Convey("Given a matching service with demo data", t, func() {
		_ = logger.Init()
		ctx := context.Background()

		svc := service.New(service.WithDemoData(true))
		err := svc.Start(ctx)
		convey.So(err, convey.ShouldBeNil)
		defer svc.Stop()

		convey.Convey("When requesting matches for a demo volunteer", func() {
			results, err := svc.Matches(ctx, "user1")

			convey.Convey("Then every event should be ranked", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(results, convey.ShouldHaveLength, 8)
			})

			convey.Convey("Then the ranking should be descending", func() {
				convey.So(err, convey.ShouldBeNil)
				for i := 1; i < len(results); i++ {
					convey.So(results[i-1].MatchScore, convey.ShouldBeGreaterThanOrEqualTo, results[i].MatchScore)
				}
			})

			convey.Convey("Then the tutoring event should rank first for Alice", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(results[0].Event.ID, convey.ShouldEqual, "event1")
				convey.So(results[0].MatchScore, convey.ShouldBeBetweenOrEqual, 0.0, 1.0)
			})
		})

		convey.Convey("When requesting matches for an unknown volunteer", func() {
			results, err := svc.Matches(ctx, "nobody")

			convey.Convey("Then it should report ErrUserNotFound", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, matching.ErrUserNotFound), convey.ShouldBeTrue)
				convey.So(results, convey.ShouldBeNil)
			})
		})

		convey.Convey("When looking up similar events", func() {
			similar, err := svc.SimilarEvents(ctx, "event1", 5)

			convey.Convey("Then related events should be returned without the target", func() {
				convey.So(err, convey.ShouldBeNil)
				for _, ev := range similar {
					convey.So(ev.ID, convey.ShouldNotEqual, "event1")
				}
			})
		})

		convey.Convey("When looking up similar events for an unknown event", func() {
			_, err := svc.SimilarEvents(ctx, "nope", 5)

			convey.Convey("Then it should report ErrEventNotFound", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, matching.ErrEventNotFound), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When creating a volunteer and an event", func() {
			user, err := svc.CreateUser(ctx, model.User{Name: "New Volunteer"})
			convey.So(err, convey.ShouldBeNil)

			event, err := svc.CreateEvent(ctx, model.Event{Title: "New Event"})
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then IDs should be assigned server-side", func() {
				convey.So(user.ID, convey.ShouldNotBeEmpty)
				convey.So(event.ID, convey.ShouldNotBeEmpty)
			})

			convey.Convey("Then the new volunteer should get a ranking too", func() {
				results, err := svc.Matches(ctx, user.ID)
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(results), convey.ShouldBeGreaterThanOrEqualTo, 9)
			})

			convey.Convey("Then the new event should appear in the listing", func() {
				events := svc.ListEvents(ctx)
				ids := make([]string, 0, len(events))
				for _, ev := range events {
					ids = append(ids, ev.ID)
				}
				convey.So(ids, convey.ShouldContain, event.ID)
			})
		})

		convey.Convey("When reading service stats", func() {
			stats := svc.GetStats()

			convey.Convey("Then directory sizes and weights should be reported", func() {
				convey.So(stats["started"], convey.ShouldEqual, true)
				convey.So(stats["totalUsers"], convey.ShouldEqual, 5)
				convey.So(stats["totalEvents"], convey.ShouldEqual, 8)
				convey.So(stats["skillWeight"], convey.ShouldEqual, 0.5)
			})
		})
	})

	convey.Convey("Given a service without demo data", t, func() {
		_ = logger.Init()
		ctx := context.Background()

		svc := service.New(service.WithDemoData(false))
		err := svc.Start(ctx)
		convey.So(err, convey.ShouldBeNil)
		defer svc.Stop()

		convey.Convey("When listing events", func() {
			convey.Convey("Then the directory should start empty", func() {
				convey.So(svc.ListEvents(ctx), convey.ShouldBeEmpty)
			})
		})
	})

	convey.Convey("Given a service with an injected store", t, func() {
		_ = logger.Init()
		ctx := context.Background()

		store := repository.NewMemStore(
			repository.WithUsers([]model.User{{ID: "only", Name: "Only One"}}),
		)
		svc := service.New(service.WithStore(store))
		err := svc.Start(ctx)
		convey.So(err, convey.ShouldBeNil)
		defer svc.Stop()

		convey.Convey("When fetching the injected volunteer", func() {
			user, err := svc.GetUser(ctx, "only")

			convey.Convey("Then the injected store should be used", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(user.Name, convey.ShouldEqual, "Only One")
			})
		})
	})

	convey.Convey("Given custom engine options", t, func() {
		_ = logger.Init()
		ctx := context.Background()

		svc := service.New(
			service.WithDemoData(true),
			service.WithWeights(matching.Weights{Skill: 1.0}),
		)
		err := svc.Start(ctx)
		convey.So(err, convey.ShouldBeNil)
		defer svc.Stop()

		convey.Convey("When ranking with skill-only weights", func() {
			results, err := svc.Matches(ctx, "user1")

			convey.Convey("Then scores should equal the skill sub-score", func() {
				convey.So(err, convey.ShouldBeNil)
				for _, r := range results {
					convey.So(r.MatchScore, convey.ShouldAlmostEqual, r.Breakdown.SkillMatch, 1e-9)
				}
			})
		})
	})
}

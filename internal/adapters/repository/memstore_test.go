package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/volmatch/volmatch/internal/adapters/repository"
	model "github.com/volmatch/volmatch/internal/domain/model"
)

func TestMemStore(t *testing.T) {
	convey.Convey("Given an empty directory store", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore()

		convey.Convey("When looking up an unknown user", func() {
			_, err := store.UserByID(ctx, "missing")

			convey.Convey("Then it should report ErrNotFound", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, repository.ErrNotFound), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When inserting a user without an ID", func() {
			stored, err := store.PutUser(ctx, model.User{Name: "Alice"})

			convey.Convey("Then an ID should be assigned", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(stored.ID, convey.ShouldNotBeEmpty)

				got, err := store.UserByID(ctx, stored.ID)
				convey.So(err, convey.ShouldBeNil)
				convey.So(got.Name, convey.ShouldEqual, "Alice")
			})
		})

		convey.Convey("When inserting a user with an explicit ID", func() {
			stored, err := store.PutUser(ctx, model.User{ID: "user-1", Name: "Bob"})

			convey.Convey("Then the ID should be kept", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(stored.ID, convey.ShouldEqual, "user-1")
				convey.So(store.UserCount(ctx), convey.ShouldEqual, 1)
			})

			convey.Convey("And replacing it should not grow the directory", func() {
				convey.So(err, convey.ShouldBeNil)
				_, err := store.PutUser(ctx, model.User{ID: "user-1", Name: "Bobby"})
				convey.So(err, convey.ShouldBeNil)
				convey.So(store.UserCount(ctx), convey.ShouldEqual, 1)

				got, err := store.UserByID(ctx, "user-1")
				convey.So(err, convey.ShouldBeNil)
				convey.So(got.Name, convey.ShouldEqual, "Bobby")
			})
		})

		convey.Convey("When inserting several events", func() {
			for _, id := range []string{"e1", "e2", "e3"} {
				_, err := store.PutEvent(ctx, model.Event{ID: id, Title: id})
				convey.So(err, convey.ShouldBeNil)
			}

			convey.Convey("Then listings should keep insertion order", func() {
				events := store.Events(ctx)
				convey.So(events, convey.ShouldHaveLength, 3)
				convey.So(events[0].ID, convey.ShouldEqual, "e1")
				convey.So(events[1].ID, convey.ShouldEqual, "e2")
				convey.So(events[2].ID, convey.ShouldEqual, "e3")
				convey.So(store.EventCount(ctx), convey.ShouldEqual, 3)
			})

			convey.Convey("Then mutating a listing should not affect the store", func() {
				events := store.Events(ctx)
				events[0].Title = "changed"

				got, err := store.EventByID(ctx, "e1")
				convey.So(err, convey.ShouldBeNil)
				convey.So(got.Title, convey.ShouldEqual, "e1")
			})
		})
	})

	convey.Convey("Given a store preloaded via options", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore(
			repository.WithUsers(repository.DemoUsers()),
			repository.WithEvents(repository.DemoEvents()),
		)

		convey.Convey("When counting the demo dataset", func() {
			convey.Convey("Then all records should be present", func() {
				convey.So(store.UserCount(ctx), convey.ShouldEqual, 5)
				convey.So(store.EventCount(ctx), convey.ShouldEqual, 8)
			})
		})

		convey.Convey("When fetching a demo user", func() {
			user, err := store.UserByID(ctx, "user1")

			convey.Convey("Then the profile should round-trip", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(user.Name, convey.ShouldEqual, "Alice Johnson")
				convey.So(user.Skills, convey.ShouldContain, "Teaching")
				convey.So(user.Availability, convey.ShouldHaveLength, 3)
			})
		})

		convey.Convey("When listing users", func() {
			users := store.Users(ctx)

			convey.Convey("Then insertion order should hold", func() {
				convey.So(users, convey.ShouldHaveLength, 5)
				convey.So(users[0].ID, convey.ShouldEqual, "user1")
				convey.So(users[4].ID, convey.ShouldEqual, "user5")
			})
		})
	})

	convey.Convey("Given concurrent writers and readers", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore()

		convey.Convey("When hammering the store from many goroutines", func() {
			var wg sync.WaitGroup
			for i := 0; i < 16; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < 50; j++ {
						_, _ = store.PutUser(ctx, model.User{Name: "v"})
						_ = store.Users(ctx)
						_ = store.UserCount(ctx)
					}
				}()
			}
			wg.Wait()

			convey.Convey("Then every insert should be accounted for", func() {
				convey.So(store.UserCount(ctx), convey.ShouldEqual, 16*50)
			})
		})
	})
}

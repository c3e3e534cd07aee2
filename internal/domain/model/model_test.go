package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
	model "github.com/volmatch/volmatch/internal/domain/model"
)

func TestUser(t *testing.T) {
	convey.Convey("Given a User struct", t, func() {
		convey.Convey("When creating a volunteer profile", func() {
			user := model.User{
				ID:     "user-1",
				Name:   "Alice Johnson",
				Skills: []string{"Teaching", "Mentoring"},
				Availability: []model.AvailabilityWindow{
					{DayOfWeek: 0, StartTime: "09:00", EndTime: "17:00"},
				},
				Location:         model.GeoPoint{Latitude: 40.7128, Longitude: -74.0060},
				CausePreferences: []string{"Education"},
			}

			convey.Convey("Then it should hold the profile fields", func() {
				convey.So(user.ID, convey.ShouldEqual, "user-1")
				convey.So(user.Skills, convey.ShouldHaveLength, 2)
				convey.So(user.Availability[0].DayOfWeek, convey.ShouldEqual, 0)
				convey.So(user.Location.Latitude, convey.ShouldAlmostEqual, 40.7128)
			})

			convey.Convey("Then it should serialize with camelCase keys", func() {
				data, err := json.Marshal(user)
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(data), convey.ShouldContainSubstring, `"causePreferences"`)
				convey.So(string(data), convey.ShouldContainSubstring, `"dayOfWeek"`)
				convey.So(string(data), convey.ShouldContainSubstring, `"startTime"`)
			})
		})
	})
}

func TestMatchResult(t *testing.T) {
	convey.Convey("Given a MatchResult", t, func() {
		event := model.Event{
			ID:             "event-1",
			Title:          "After-School Tutoring",
			RequiredSkills: []string{"Teaching"},
			EventDate:      time.Date(2024, 2, 4, 14, 0, 0, 0, time.UTC),
			Duration:       3,
			Cause:          "Education",
			OrganizationID: "org1",
		}

		result := model.MatchResult{
			Event:      event,
			MatchScore: 0.833,
			Breakdown: model.ScoreBreakdown{
				SkillMatch:        1.0,
				AvailabilityMatch: 1.0,
				DistanceScore:     0.5,
				CauseAffinity:     0.33,
			},
		}

		convey.Convey("When serializing to JSON", func() {
			data, err := json.Marshal(result)

			convey.Convey("Then the breakdown should use camelCase keys", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(data), convey.ShouldContainSubstring, `"matchScore"`)
				convey.So(string(data), convey.ShouldContainSubstring, `"skillMatch"`)
				convey.So(string(data), convey.ShouldContainSubstring, `"availabilityMatch"`)
				convey.So(string(data), convey.ShouldContainSubstring, `"distanceScore"`)
				convey.So(string(data), convey.ShouldContainSubstring, `"causeAffinity"`)
			})

			convey.Convey("Then an empty organization name should be omitted", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(data), convey.ShouldNotContainSubstring, `"organizationName"`)
			})
		})
	})
}

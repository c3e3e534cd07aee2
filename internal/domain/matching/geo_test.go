package matching_test

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
	matching "github.com/volmatch/volmatch/internal/domain/matching"
	model "github.com/volmatch/volmatch/internal/domain/model"
)

func TestHaversineKM(t *testing.T) {
	convey.Convey("Given pairs of coordinates", t, func() {
		convey.Convey("When both points are identical", func() {
			p := model.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}

			convey.Convey("Then the distance should be zero", func() {
				convey.So(matching.HaversineKM(p, p), convey.ShouldEqual, 0.0)
			})
		})

		convey.Convey("When measuring between known cities", func() {
			nyc := model.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}
			la := model.GeoPoint{Latitude: 34.0522, Longitude: -118.2437}

			d := matching.HaversineKM(nyc, la)

			convey.Convey("Then the distance should be roughly 3936 km", func() {
				convey.So(d, convey.ShouldAlmostEqual, 3936, 20)
			})

			convey.Convey("Then the distance should be symmetric", func() {
				convey.So(matching.HaversineKM(la, nyc), convey.ShouldAlmostEqual, d, 1e-9)
			})
		})

		convey.Convey("When moving one degree of latitude", func() {
			a := model.GeoPoint{Latitude: 40.0, Longitude: -74.0}
			b := model.GeoPoint{Latitude: 41.0, Longitude: -74.0}

			convey.Convey("Then the distance should be roughly 111 km", func() {
				convey.So(matching.HaversineKM(a, b), convey.ShouldAlmostEqual, 111.2, 1)
			})
		})
	})
}

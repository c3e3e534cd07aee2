package loadgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	model "github.com/volmatch/volmatch/internal/domain/model"
)

// Pools the generator draws from. Skills overlap between volunteers and
// events on purpose so rankings spread across the score range.
var (
	skillPool = []string{
		"Teaching", "Mentoring", "Cooking", "Food Service", "First Aid",
		"Nursing", "Construction", "Carpentry", "Painting", "Marketing",
		"Social Media", "Writing", "Event Planning", "Childcare", "Animal Care",
	}
	causePool = []string{
		"Education", "Hunger Relief", "Healthcare", "Housing", "Environment",
		"Elderly Care", "Animal Welfare", "Community", "Arts",
	}
)

// NYC bounding box for generated coordinates.
const (
	baseLatitude  = 40.55
	baseLongitude = -74.10
	latitudeSpan  = 0.35
	longitudeSpan = 0.30
)

const (
	randomDivisor   = 1_000_000
	maxSkills       = 4
	maxPreferences  = 3
	maxWindows      = 3
	maxDurationHrs  = 6
	daysAheadWindow = 28
)

// randomFloat returns a random float64 in [0,1) using crypto/rand.
func randomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomDivisor))
	return float64(n.Int64()) / float64(randomDivisor)
}

// randomInt returns a random int in [0,n).
func randomInt(n int) int {
	if n <= 0 {
		return 0
	}
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// randomPoint returns a coordinate inside the generator's bounding box.
func randomPoint() model.GeoPoint {
	return model.GeoPoint{
		Latitude:  baseLatitude + randomFloat()*latitudeSpan,
		Longitude: baseLongitude + randomFloat()*longitudeSpan,
	}
}

// pickSome returns between 1 and max distinct entries from pool.
func pickSome(pool []string, max int) []string {
	count := 1 + randomInt(max)
	if count > len(pool) {
		count = len(pool)
	}

	picked := make([]string, 0, count)
	used := make(map[int]struct{}, count)
	for len(picked) < count {
		idx := randomInt(len(pool))
		if _, ok := used[idx]; ok {
			continue
		}
		used[idx] = struct{}{}
		picked = append(picked, pool[idx])
	}
	return picked
}

// GenerateUser creates a synthetic volunteer profile.
func GenerateUser(index int) model.User {
	windows := make([]model.AvailabilityWindow, 0, maxWindows)
	usedDays := make(map[int]struct{})
	for len(windows) < 1+randomInt(maxWindows) {
		day := randomInt(7)
		if _, ok := usedDays[day]; ok {
			continue
		}
		usedDays[day] = struct{}{}

		startHour := 7 + randomInt(10) // 07:00 .. 16:00
		endHour := startHour + 2 + randomInt(6)
		if endHour > 23 {
			endHour = 23
		}
		windows = append(windows, model.AvailabilityWindow{
			DayOfWeek: day,
			StartTime: fmt.Sprintf("%02d:00", startHour),
			EndTime:   fmt.Sprintf("%02d:00", endHour),
		})
	}

	return model.User{
		Name:             fmt.Sprintf("Volunteer %d", index),
		Skills:           pickSome(skillPool, maxSkills),
		Availability:     windows,
		Location:         randomPoint(),
		CausePreferences: pickSome(causePool, maxPreferences),
	}
}

// GenerateEvent creates a synthetic event in the next four weeks.
func GenerateEvent(index int) model.Event {
	day := time.Now().UTC().AddDate(0, 0, 1+randomInt(daysAheadWindow))
	start := time.Date(day.Year(), day.Month(), day.Day(), 8+randomInt(12), 0, 0, 0, time.UTC)

	cause := causePool[randomInt(len(causePool))]

	return model.Event{
		Title:          fmt.Sprintf("Generated Event %d", index),
		Description:    fmt.Sprintf("Synthetic %s opportunity for load testing", cause),
		RequiredSkills: pickSome(skillPool, maxSkills),
		EventDate:      start,
		Duration:       float64(1 + randomInt(maxDurationHrs)),
		Location:       randomPoint(),
		Cause:          cause,
		OrganizationID: uuid.NewString(),
	}
}

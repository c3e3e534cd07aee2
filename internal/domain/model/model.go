// Package model contains domain models passed between layers.
package model

import "time"

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AvailabilityWindow is a recurring weekly slot a volunteer is free.
// DayOfWeek follows time.Weekday numbering (Sunday = 0). StartTime and
// EndTime are wall-clock "HH:MM" strings; windows never span midnight.
type AvailabilityWindow struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// User represents a volunteer profile.
// Fields mirror the OpenAPI schema for /users.
type User struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Skills           []string             `json:"skills"`
	Availability     []AvailabilityWindow `json:"availability"`
	Location         GeoPoint             `json:"location"`
	CausePreferences []string             `json:"causePreferences"`
}

// Event represents a volunteering opportunity.
// Duration is in hours; EventDate carries both the day and the start time.
type Event struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	RequiredSkills   []string  `json:"requiredSkills"`
	EventDate        time.Time `json:"eventDate"`
	Duration         float64   `json:"duration"`
	Location         GeoPoint  `json:"location"`
	Cause            string    `json:"cause"`
	OrganizationID   string    `json:"organizationId"`
	OrganizationName string    `json:"organizationName,omitempty"`
}

// ScoreBreakdown carries the four sub-scores behind a composite match score.
// Every component is within [0,1].
type ScoreBreakdown struct {
	SkillMatch        float64 `json:"skillMatch"`
	AvailabilityMatch float64 `json:"availabilityMatch"`
	DistanceScore     float64 `json:"distanceScore"`
	CauseAffinity     float64 `json:"causeAffinity"`
}

// MatchResult pairs an event with its composite score and breakdown.
type MatchResult struct {
	Event      Event          `json:"event"`
	MatchScore float64        `json:"matchScore"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
}

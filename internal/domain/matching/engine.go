// Package matching scores volunteers against events and ranks the results.
//
// The engine is pure and stateless: every method is deterministic, never
// mutates its inputs, and every sub-score lands in [0,1].
package matching

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	model "github.com/volmatch/volmatch/internal/domain/model"
)

// Distance thresholds in kilometers for the distance sub-score.
const (
	// FullScoreDistanceKM is the distance at or below which an event scores 1.0.
	FullScoreDistanceKM = 5.0
	// ZeroScoreDistanceKM is the distance at or beyond which an event scores 0.
	ZeroScoreDistanceKM = 50.0
)

// Default scoring configuration constants.
const (
	defaultSkillWeight        = 0.5
	defaultAvailabilityWeight = 0.2
	defaultDistanceWeight     = 0.2
	defaultCauseWeight        = 0.1

	// partialOverlapCredit scales availability when an event starts inside a
	// window but overruns it.
	defaultPartialOverlapCredit = 0.7

	// neutralCauseAffinity is returned when a volunteer lists no preferences.
	neutralCauseAffinity = 0.5
	// relatedCauseAffinity is returned on substring-related causes.
	relatedCauseAffinity = 0.7

	minutesPerHour = 60
)

// Weights holds the composite score weights. They are expected to sum to 1.
type Weights struct {
	Skill        float64
	Availability float64
	Distance     float64
	Cause        float64
}

// DefaultWeights returns the standard 0.5/0.2/0.2/0.1 split.
func DefaultWeights() Weights {
	return Weights{
		Skill:        defaultSkillWeight,
		Availability: defaultAvailabilityWeight,
		Distance:     defaultDistanceWeight,
		Cause:        defaultCauseWeight,
	}
}

// Engine computes match scores between volunteers and events.
type Engine struct {
	weights Weights
	// Distance thresholds in kilometers
	fullScoreDistanceKM float64
	zeroScoreDistanceKM float64
	// Availability credit for partial overlap
	partialOverlapCredit float64
}

// NewEngine creates an engine with configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		weights:              DefaultWeights(),
		fullScoreDistanceKM:  FullScoreDistanceKM,
		zeroScoreDistanceKM:  ZeroScoreDistanceKM,
		partialOverlapCredit: defaultPartialOverlapCredit,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// SkillMatch returns the fraction of the event's required skills the
// volunteer has. Labels compare case-insensitively; an event without
// required skills matches everyone.
func (e *Engine) SkillMatch(user model.User, event model.Event) float64 {
	if len(event.RequiredSkills) == 0 {
		return 1.0
	}

	have := make(map[string]struct{}, len(user.Skills))
	for _, s := range user.Skills {
		have[strings.ToLower(s)] = struct{}{}
	}

	matched := 0
	for _, req := range event.RequiredSkills {
		if _, ok := have[strings.ToLower(req)]; ok {
			matched++
		}
	}

	return float64(matched) / float64(len(event.RequiredSkills))
}

// AvailabilityMatch checks the event interval against the volunteer's first
// window on the event's weekday. Full containment scores 1.0; an event that
// starts inside the window but overruns it earns partial credit scaled by
// the covered fraction; everything else scores 0.
func (e *Engine) AvailabilityMatch(user model.User, event model.Event) float64 {
	day := int(event.EventDate.Weekday())

	var window *model.AvailabilityWindow
	for i := range user.Availability {
		if user.Availability[i].DayOfWeek == day {
			window = &user.Availability[i]
			break
		}
	}
	if window == nil {
		return 0
	}

	winStart, ok := parseClock(window.StartTime)
	if !ok {
		return 0
	}
	winEnd, ok := parseClock(window.EndTime)
	if !ok {
		return 0
	}

	eventStart := event.EventDate.Hour()*minutesPerHour + event.EventDate.Minute()
	durationMin := int(event.Duration * minutesPerHour)
	eventEnd := eventStart + durationMin

	if eventStart >= winStart && eventEnd <= winEnd {
		return 1.0
	}

	// Starts inside the window but runs past its end.
	if eventStart >= winStart && eventStart < winEnd {
		if durationMin <= 0 {
			return 0
		}
		overlap := float64(winEnd-eventStart) / float64(durationMin)
		if overlap > 1 {
			overlap = 1
		}
		return e.partialOverlapCredit * overlap
	}

	return 0
}

// DistanceScore maps the great-circle distance between volunteer and event
// onto [0,1]: full score up close, zero far away, linear in between.
func (e *Engine) DistanceScore(user model.User, event model.Event) float64 {
	d := HaversineKM(user.Location, event.Location)

	switch {
	case d <= e.fullScoreDistanceKM:
		return 1.0
	case d >= e.zeroScoreDistanceKM:
		return 0
	default:
		return 1 - (d-e.fullScoreDistanceKM)/(e.zeroScoreDistanceKM-e.fullScoreDistanceKM)
	}
}

// CauseAffinity compares the event's cause against the volunteer's
// preferences. No preferences is neutral, an exact match is full, and
// substring containment either way counts as related.
func (e *Engine) CauseAffinity(user model.User, event model.Event) float64 {
	if len(user.CausePreferences) == 0 {
		return neutralCauseAffinity
	}

	cause := strings.ToLower(event.Cause)
	for _, p := range user.CausePreferences {
		if strings.ToLower(p) == cause {
			return 1.0
		}
	}
	for _, p := range user.CausePreferences {
		pref := strings.ToLower(p)
		if pref == "" || cause == "" {
			continue
		}
		if strings.Contains(cause, pref) || strings.Contains(pref, cause) {
			return relatedCauseAffinity
		}
	}

	return 0
}

// Score computes the composite match between one volunteer and one event.
// The breakdown is always populated, even when the composite is 0.
func (e *Engine) Score(user model.User, event model.Event) model.MatchResult {
	b := model.ScoreBreakdown{
		SkillMatch:        e.SkillMatch(user, event),
		AvailabilityMatch: e.AvailabilityMatch(user, event),
		DistanceScore:     e.DistanceScore(user, event),
		CauseAffinity:     e.CauseAffinity(user, event),
	}

	score := b.SkillMatch*e.weights.Skill +
		b.AvailabilityMatch*e.weights.Availability +
		b.DistanceScore*e.weights.Distance +
		b.CauseAffinity*e.weights.Cause

	return model.MatchResult{
		Event:      event,
		MatchScore: score,
		Breakdown:  b,
	}
}

// MatchesFor scores every event for the given volunteer and returns the
// results ordered by descending composite score. Ties keep the input event
// order, so rankings are deterministic. The full ranking is returned;
// truncation belongs to the caller.
func (e *Engine) MatchesFor(userID string, users []model.User, events []model.Event) ([]model.MatchResult, error) {
	var user *model.User
	for i := range users {
		if users[i].ID == userID {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	results := make([]model.MatchResult, 0, len(events))
	for _, ev := range events {
		results = append(results, e.Score(*user, ev))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	return results, nil
}

// similarDescriptionThreshold is the minimum Jaccard word overlap between two
// event descriptions for them to count as similar.
const similarDescriptionThreshold = 0.3

// SimilarEvents returns up to limit events related to the given one: same
// organization, same location, or a description word overlap above the
// threshold. Candidates keep their input order.
func (e *Engine) SimilarEvents(eventID string, events []model.Event, limit int) ([]model.Event, error) {
	var target *model.Event
	for i := range events {
		if events[i].ID == eventID {
			target = &events[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}

	similar := make([]model.Event, 0, limit)
	for _, ev := range events {
		if ev.ID == target.ID {
			continue
		}
		if e.isSimilar(*target, ev) {
			similar = append(similar, ev)
			if limit > 0 && len(similar) >= limit {
				break
			}
		}
	}

	return similar, nil
}

func (e *Engine) isSimilar(a, b model.Event) bool {
	if a.OrganizationID != "" && a.OrganizationID == b.OrganizationID {
		return true
	}
	if a.Location == b.Location {
		return true
	}
	return jaccardWordOverlap(a.Description, b.Description) > similarDescriptionThreshold
}

// jaccardWordOverlap computes |A ∩ B| / |A ∪ B| over lowercased word sets.
func jaccardWordOverlap(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(s))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// parseClock parses a wall-clock "HH:MM" string into minutes since midnight.
// Anything malformed reports false; callers treat that as no availability.
func parseClock(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*minutesPerHour + minute, true
}

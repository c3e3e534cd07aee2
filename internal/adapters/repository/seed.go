package repository

import (
	"time"

	model "github.com/volmatch/volmatch/internal/domain/model"
)

// Demo dataset: a handful of NYC-area volunteers and events so a fresh
// process can answer suggestions immediately. Enabled via config.

// DemoUsers returns the sample volunteer profiles.
func DemoUsers() []model.User {
	return []model.User{
		{
			ID:     "user1",
			Name:   "Alice Johnson",
			Skills: []string{"Teaching", "Mentoring", "Public Speaking", "Childcare"},
			Availability: []model.AvailabilityWindow{
				{DayOfWeek: 0, StartTime: "09:00", EndTime: "17:00"},
				{DayOfWeek: 1, StartTime: "18:00", EndTime: "21:00"},
				{DayOfWeek: 5, StartTime: "10:00", EndTime: "16:00"},
			},
			Location:         model.GeoPoint{Latitude: 40.7128, Longitude: -74.0060},
			CausePreferences: []string{"Education", "Children", "Youth Development"},
		},
		{
			ID:     "user2",
			Name:   "Bob Smith",
			Skills: []string{"Cooking", "Food Service", "Event Planning"},
			Availability: []model.AvailabilityWindow{
				{DayOfWeek: 2, StartTime: "10:00", EndTime: "15:00"},
				{DayOfWeek: 4, StartTime: "10:00", EndTime: "15:00"},
				{DayOfWeek: 6, StartTime: "08:00", EndTime: "12:00"},
			},
			Location:         model.GeoPoint{Latitude: 40.7580, Longitude: -73.9855},
			CausePreferences: []string{"Hunger Relief", "Food Security", "Community"},
		},
		{
			ID:     "user3",
			Name:   "Carol Williams",
			Skills: []string{"Medical", "First Aid", "Nursing", "Health Education"},
			Availability: []model.AvailabilityWindow{
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
				{DayOfWeek: 3, StartTime: "09:00", EndTime: "17:00"},
				{DayOfWeek: 5, StartTime: "10:00", EndTime: "14:00"},
			},
			Location:         model.GeoPoint{Latitude: 40.7505, Longitude: -73.9934},
			CausePreferences: []string{"Healthcare", "Public Health", "Elderly Care"},
		},
		{
			ID:     "user4",
			Name:   "David Brown",
			Skills: []string{"Construction", "Carpentry", "Painting", "General Maintenance"},
			Availability: []model.AvailabilityWindow{
				{DayOfWeek: 0, StartTime: "08:00", EndTime: "16:00"},
				{DayOfWeek: 6, StartTime: "08:00", EndTime: "16:00"},
			},
			Location:         model.GeoPoint{Latitude: 40.6782, Longitude: -73.9442},
			CausePreferences: []string{"Housing", "Community Development", "Infrastructure"},
		},
		{
			ID:     "user5",
			Name:   "Emma Davis",
			Skills: []string{"Marketing", "Social Media", "Graphic Design", "Writing"},
			Availability: []model.AvailabilityWindow{
				{DayOfWeek: 1, StartTime: "19:00", EndTime: "22:00"},
				{DayOfWeek: 3, StartTime: "19:00", EndTime: "22:00"},
				{DayOfWeek: 5, StartTime: "13:00", EndTime: "18:00"},
			},
			Location:         model.GeoPoint{Latitude: 40.7282, Longitude: -73.9942},
			CausePreferences: []string{"Arts", "Environment", "Animal Welfare"},
		},
	}
}

// DemoEvents returns the sample events.
func DemoEvents() []model.Event {
	return []model.Event{
		{
			ID:               "event1",
			Title:            "After-School Tutoring Program",
			Description:      "Help elementary students with homework and reading",
			RequiredSkills:   []string{"Teaching", "Mentoring", "Patience"},
			EventDate:        time.Date(2024, 2, 4, 14, 0, 0, 0, time.UTC),
			Duration:         3,
			Location:         model.GeoPoint{Latitude: 40.7140, Longitude: -74.0060},
			Cause:            "Education",
			OrganizationID:   "org1",
			OrganizationName: "Youth Education Foundation",
		},
		{
			ID:               "event2",
			Title:            "Community Soup Kitchen",
			Description:      "Prepare and serve meals to those in need",
			RequiredSkills:   []string{"Cooking", "Food Service"},
			EventDate:        time.Date(2024, 2, 7, 11, 0, 0, 0, time.UTC),
			Duration:         4,
			Location:         model.GeoPoint{Latitude: 40.7600, Longitude: -73.9850},
			Cause:            "Hunger Relief",
			OrganizationID:   "org2",
			OrganizationName: "City Food Bank",
		},
		{
			ID:               "event3",
			Title:            "Health Screening Clinic",
			Description:      "Provide basic health screenings to community members",
			RequiredSkills:   []string{"Medical", "First Aid", "Health Education"},
			EventDate:        time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC),
			Duration:         6,
			Location:         model.GeoPoint{Latitude: 40.7510, Longitude: -73.9930},
			Cause:            "Healthcare",
			OrganizationID:   "org3",
			OrganizationName: "Community Health Alliance",
		},
		{
			ID:               "event4",
			Title:            "Habitat Restoration Project",
			Description:      "Help build and repair homes for families in need",
			RequiredSkills:   []string{"Construction", "Carpentry"},
			EventDate:        time.Date(2024, 2, 3, 9, 0, 0, 0, time.UTC),
			Duration:         6,
			Location:         model.GeoPoint{Latitude: 40.6800, Longitude: -73.9450},
			Cause:            "Housing",
			OrganizationID:   "org4",
			OrganizationName: "Habitat for Humanity",
		},
		{
			ID:               "event5",
			Title:            "Environmental Cleanup Day",
			Description:      "Clean up local parks and waterways",
			RequiredSkills:   []string{"Physical Labor", "Teamwork"},
			EventDate:        time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC),
			Duration:         4,
			Location:         model.GeoPoint{Latitude: 40.7300, Longitude: -73.9950},
			Cause:            "Environment",
			OrganizationID:   "org5",
			OrganizationName: "Green Earth Initiative",
		},
		{
			ID:               "event6",
			Title:            "Senior Center Social Event",
			Description:      "Organize activities and provide companionship to seniors",
			RequiredSkills:   []string{"Communication", "Patience", "Event Planning"},
			EventDate:        time.Date(2024, 2, 6, 14, 0, 0, 0, time.UTC),
			Duration:         3,
			Location:         model.GeoPoint{Latitude: 40.7550, Longitude: -73.9920},
			Cause:            "Elderly Care",
			OrganizationID:   "org6",
			OrganizationName: "Senior Support Network",
		},
		{
			ID:               "event7",
			Title:            "Animal Shelter Volunteer Day",
			Description:      "Help care for animals and assist with adoption events",
			RequiredSkills:   []string{"Animal Care", "Compassion"},
			EventDate:        time.Date(2024, 2, 10, 13, 0, 0, 0, time.UTC),
			Duration:         5,
			Location:         model.GeoPoint{Latitude: 40.7200, Longitude: -73.9900},
			Cause:            "Animal Welfare",
			OrganizationID:   "org7",
			OrganizationName: "City Animal Rescue",
		},
		{
			ID:               "event8",
			Title:            "Digital Marketing Workshop",
			Description:      "Teach nonprofits how to use social media effectively",
			RequiredSkills:   []string{"Marketing", "Social Media", "Teaching"},
			EventDate:        time.Date(2024, 2, 5, 19, 0, 0, 0, time.UTC),
			Duration:         2,
			Location:         model.GeoPoint{Latitude: 40.7280, Longitude: -73.9940},
			Cause:            "Education",
			OrganizationID:   "org8",
			OrganizationName: "Tech for Good",
		},
	}
}

package catalog

import (
	"time"

	"secretariat/models"
)

// Directory resolves business and service records by identifier. Lookups
// never fail: unknown identifiers fall back to the default business and
// its first service so a stale link still renders a schedule.
type Directory interface {
	Business(id string) models.Business
	Service(businessID, serviceID string) (models.Business, models.Service)
	Businesses() []models.Business
}

// StaticDirectory implements Directory over an in-memory table. The
// catalog is an external data source in this system; this stand-in keeps
// the same lookup contract so a live catalog can replace it later.
type StaticDirectory struct {
	businesses []models.Business
}

// NewStaticDirectory returns a directory seeded with the demo catalog.
func NewStaticDirectory() *StaticDirectory {
	return &StaticDirectory{businesses: seedBusinesses()}
}

// Business resolves a business id, falling back to the default business.
func (d *StaticDirectory) Business(id string) models.Business {
	for _, b := range d.businesses {
		if b.ID == id {
			return b
		}
	}
	return d.businesses[0]
}

// Service resolves a service within a business, falling back to the
// business's first service on an unknown service id.
func (d *StaticDirectory) Service(businessID, serviceID string) (models.Business, models.Service) {
	business := d.Business(businessID)
	for _, svc := range business.Services {
		if svc.ID == serviceID {
			return business, svc
		}
	}
	return business, business.Services[0]
}

// Businesses lists the full catalog.
func (d *StaticDirectory) Businesses() []models.Business {
	out := make([]models.Business, len(d.businesses))
	copy(out, d.businesses)
	return out
}

func clock(hour, minute int) models.ClockOfDay {
	return models.ClockOfDay(hour*60 + minute)
}

func seedBusinesses() []models.Business {
	return []models.Business{
		{
			ID:          "crimson-cuts",
			Name:        "Crimson Cuts",
			Location:    "Pullman",
			Description: "Walk-in barbershop near campus.",
			OpenWeekdays: []time.Weekday{
				time.Monday, time.Tuesday, time.Wednesday,
				time.Thursday, time.Friday, time.Saturday,
			},
			Services: []models.Service{
				{
					ID:              "fade-cut",
					BusinessID:      "crimson-cuts",
					Name:            "Fade + Style",
					DurationMinutes: 30,
					WindowStart:     clock(9, 0),
					WindowEnd:       clock(17, 0),
				},
				{
					ID:              "beard-trim",
					BusinessID:      "crimson-cuts",
					Name:            "Beard Trim",
					DurationMinutes: 15,
					WindowStart:     clock(9, 0),
					WindowEnd:       clock(17, 0),
				},
			},
		},
		{
			ID:          "palouse-dental",
			Name:        "Palouse Dental Studio",
			Location:    "Moscow",
			Description: "Family dentistry with same-week cleanings.",
			OpenWeekdays: []time.Weekday{
				time.Monday, time.Tuesday, time.Wednesday,
				time.Thursday, time.Friday,
			},
			Services: []models.Service{
				{
					ID:              "cleaning",
					BusinessID:      "palouse-dental",
					Name:            "Cleaning + Exam",
					DurationMinutes: 60,
					WindowStart:     clock(8, 0),
					WindowEnd:       clock(16, 0),
				},
				{
					ID:              "whitening",
					BusinessID:      "palouse-dental",
					Name:            "Whitening Session",
					DurationMinutes: 45,
					WindowStart:     clock(10, 0),
					WindowEnd:       clock(15, 0),
				},
			},
		},
		{
			ID:          "evergreen-physio",
			Name:        "Evergreen Physiotherapy",
			Location:    "Pullman",
			Description: "Sports rehab and massage therapy.",
			OpenWeekdays: []time.Weekday{
				time.Tuesday, time.Wednesday, time.Thursday,
				time.Friday, time.Saturday,
			},
			Services: []models.Service{
				{
					ID:              "deep-tissue",
					BusinessID:      "evergreen-physio",
					Name:            "Deep Tissue Massage",
					DurationMinutes: 60,
					WindowStart:     clock(10, 0),
					WindowEnd:       clock(18, 0),
				},
				{
					ID:              "assessment",
					BusinessID:      "evergreen-physio",
					Name:            "Injury Assessment",
					DurationMinutes: 30,
					WindowStart:     clock(10, 0),
					WindowEnd:       clock(18, 0),
				},
			},
		},
	}
}

package domain

import "time"

// ServiceType represents the category of cleaning job.
type ServiceType string

const (
	ServiceStandard  ServiceType = "Standard"
	ServiceDeep      ServiceType = "Deep"
	ServiceMoveInOut ServiceType = "Move In/Out"
	ServiceAirbnb    ServiceType = "Airbnb"
)

// serviceSlugs maps URL slugs to service types. The slug is the public
// identifier used in booking flow URLs.
var serviceSlugs = map[string]ServiceType{
	"standard":    ServiceStandard,
	"deep":        ServiceDeep,
	"move-in-out": ServiceMoveInOut,
	"airbnb":      ServiceAirbnb,
}

var slugsByService = map[ServiceType]string{
	ServiceStandard:  "standard",
	ServiceDeep:      "deep",
	ServiceMoveInOut: "move-in-out",
	ServiceAirbnb:    "airbnb",
}

// ServiceTypeFromSlug resolves a URL slug to a service type.
// Returns false for unknown slugs.
func ServiceTypeFromSlug(slug string) (ServiceType, bool) {
	s, ok := serviceSlugs[slug]
	return s, ok
}

// Slug returns the URL slug for a service type, or "" for an unknown type.
func (s ServiceType) Slug() string {
	return slugsByService[s]
}

// Valid reports whether s is one of the known service types.
func (s ServiceType) Valid() bool {
	_, ok := slugsByService[s]
	return ok
}

// Frequency represents how often a booking repeats.
type Frequency string

const (
	FrequencyOneTime  Frequency = "one-time"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiWeekly Frequency = "bi-weekly"
	FrequencyMonthly  Frequency = "monthly"
)

// BookingStatus represents the current status of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Address is the service location for a booking.
type Address struct {
	Line1  string `json:"line1"`
	Suburb string `json:"suburb"`
	City   string `json:"city"`
}

// Booking represents a confirmed cleaning job in the system.
type Booking struct {
	ID                string
	Reference         string // Human-readable booking code, e.g. SP-1A2B3C4D
	CustomerID        string
	Service           ServiceType
	Bedrooms          int
	Bathrooms         int
	Extras            []string
	Notes             string
	Date              string // ISO date, e.g. 2026-03-14
	Time              string // Half-hour slot, e.g. 09:30
	Frequency         Frequency
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	Address           Address
	TotalAmount       float64 // Whole currency units, computed by the pricing engine
	ServiceFee        float64 // Company-retained portion, excluded from commission
	Status            BookingStatus
	AssignedCleanerID string
	PaymentReference  string
	CreatedAt         time.Time
	CancelledAt       time.Time
	CompletedAt       time.Time
}

// Receipt represents a completed-booking receipt.
type Receipt struct {
	ID              string
	BookingID       string
	Reference       string
	CustomerID      string
	CleanerID       string
	Service         ServiceType
	Date            string
	Time            string
	BaseAmount      float64
	RoomsAmount     float64
	ExtrasAmount    float64
	TotalAmount     float64
	ServiceFee      float64
	CleanerEarnings float64
	CompanyEarnings float64
	CreatedAt       time.Time
}

package service

import (
	"fmt"
	"math"

	"sparkle/internal/domain"
)

// PricingService computes booking quotes from the fixed price book. It is
// deliberately pure: the same function renders the live quote while the
// customer clicks through the wizard and computes the charged total at
// submission, so any divergence between the two would be a billing defect.
type PricingService struct {
	config PricingConfig
}

// NewPricingService creates a PricingService with the default price book.
func NewPricingService() *PricingService {
	return &PricingService{config: DefaultPricingConfig()}
}

// PricingConfig contains the price book used for quoting.
type PricingConfig struct {
	BaseFee     float64                        // Starting fee before the service multiplier
	PerBedroom  float64                        // Added per bedroom
	PerBathroom float64                        // Added per bathroom
	Multipliers map[domain.ServiceType]float64 // Per-service multiplier on the base fee
	Extras      map[string]float64             // Flat price per optional add-on
}

// DefaultPricingConfig returns the published price book.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		BaseFee:     250,
		PerBedroom:  20,
		PerBathroom: 30,
		Multipliers: map[domain.ServiceType]float64{
			domain.ServiceStandard:  1.0,
			domain.ServiceDeep:      1.4,
			domain.ServiceMoveInOut: 1.6,
			domain.ServiceAirbnb:    1.2,
		},
		Extras: map[string]float64{
			"Inside Fridge":    60,
			"Inside Oven":      80,
			"Inside Cabinets":  70,
			"Interior Windows": 100,
			"Interior Walls":   120,
			"Water Plants":     40,
			"Ironing":          50,
			"Laundry":          70,
		},
	}
}

// PriceBreakdown is an itemized quote.
type PriceBreakdown struct {
	Base   float64 // BaseFee after the service multiplier
	Rooms  float64 // Bedroom + bathroom charges
	Extras float64 // Sum of selected add-ons
	Total  float64 // Rounded to whole currency units
}

// CalcTotal computes the total price for a booking configuration, rounded to
// whole currency units. Unknown service types fall back to the Standard
// multiplier and unknown extras contribute zero; stale clients quoting
// removed extras get a sane price instead of an error.
func (s *PricingService) CalcTotal(service domain.ServiceType, bedrooms, bathrooms int, extras []string) float64 {
	return s.Quote(service, bedrooms, bathrooms, extras).Total
}

// Quote computes an itemized price breakdown for a booking configuration.
func (s *PricingService) Quote(service domain.ServiceType, bedrooms, bathrooms int, extras []string) PriceBreakdown {
	multiplier, ok := s.config.Multipliers[service]
	if !ok {
		multiplier = 1.0
	}

	base := s.config.BaseFee * multiplier
	rooms := float64(bedrooms)*s.config.PerBedroom + float64(bathrooms)*s.config.PerBathroom

	var extrasCost float64
	for _, extra := range extras {
		extrasCost += s.config.Extras[extra]
	}

	return PriceBreakdown{
		Base:   base,
		Rooms:  rooms,
		Extras: extrasCost,
		Total:  math.Round(base + rooms + extrasCost),
	}
}

// ExtraPrice returns the flat price for an add-on, or 0 for unknown keys.
func (s *PricingService) ExtraPrice(extra string) float64 {
	return s.config.Extras[extra]
}

// Time slot boundaries: bookings start on the half hour from 07:00 through
// 13:00 inclusive.
const (
	firstSlotHour = 7
	lastSlotHour  = 13
)

// GenerateTimeSlots produces the fixed ordered sequence of bookable start
// times, "07:00" through "13:00" in half-hour steps (13 slots). Identical
// output on every call.
func GenerateTimeSlots() []string {
	var slots []string
	for hour := firstSlotHour; hour <= lastSlotHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
		if hour < lastSlotHour {
			slots = append(slots, fmt.Sprintf("%02d:30", hour))
		}
	}
	return slots
}

// ValidTimeSlot reports whether t is one of the bookable start times.
func ValidTimeSlot(t string) bool {
	for _, slot := range GenerateTimeSlots() {
		if slot == t {
			return true
		}
	}
	return false
}

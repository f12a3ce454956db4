package domain

import "time"

// Cleaner represents a cleaner on the roster.
type Cleaner struct {
	ID       string
	Name     string
	Phone    string
	Email    string
	HireDate *time.Time // nil = newly hired, commission starts at the base rate
	Active   bool
}

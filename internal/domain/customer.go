package domain

import "time"

// Customer represents a customer in the system. Customers are created
// implicitly from the booking flow's contact step; no account is required.
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CreatedAt time.Time
}

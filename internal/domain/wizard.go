package domain

// Wizard step numbers. The URL path is the source of truth for which step is
// displayed; the stored CurrentStep is synchronized with it on every mount.
const (
	StepServiceSelect = 1
	StepDetails       = 2
	StepSchedule      = 3
	StepContact       = 4
	StepReview        = 5
)

// WizardState holds one customer session's progress through the booking flow.
// It is owned exclusively by that session and persisted as a single record in
// the session store between requests.
type WizardState struct {
	CurrentStep int         `json:"current_step"`
	Service     ServiceType `json:"service"`

	// Details step
	Bedrooms  int      `json:"bedrooms"`
	Bathrooms int      `json:"bathrooms"`
	Extras    []string `json:"extras"`
	Notes     string   `json:"notes"`

	// Schedule step
	Date      string    `json:"date"` // ISO date, "" until chosen
	Time      string    `json:"time"` // Half-hour slot, "" until chosen
	Frequency Frequency `json:"frequency"`

	// Contact step
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Address   Address `json:"address"`

	// Review step
	PaymentReference string `json:"payment_reference"`
}

// NewWizardState returns the defaults a fresh session starts with.
func NewWizardState() *WizardState {
	return &WizardState{
		CurrentStep: StepServiceSelect,
		Bedrooms:    2,
		Bathrooms:   1,
		Extras:      []string{},
		Frequency:   FrequencyOneTime,
	}
}

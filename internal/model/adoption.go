package model

import "time"

// AdoptionStatus is the lifecycle state of an adoption request.
type AdoptionStatus string

// Valid adoption statuses. Transitions are monotonic: a pending adoption
// may become completed or cancelled; completed and cancelled are terminal.
const (
	AdoptionPending   AdoptionStatus = "pending"
	AdoptionCompleted AdoptionStatus = "completed"
	AdoptionCancelled AdoptionStatus = "cancelled"
)

// IsValid reports whether the status is one of the known states.
func (s AdoptionStatus) IsValid() bool {
	switch s {
	case AdoptionPending, AdoptionCompleted, AdoptionCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition to next is allowed.
func (s AdoptionStatus) CanTransitionTo(next AdoptionStatus) bool {
	return s == AdoptionPending && (next == AdoptionCompleted || next == AdoptionCancelled)
}

// CustomerDetails is the fulfillment snapshot captured when an adoption
// request is created. It is deliberately independent of the User record,
// so it can differ from the account profile.
type CustomerDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Adoption links a user to a dog by ID. It holds non-owning references
// only; the full User and Dog records live in their own stores.
type Adoption struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	DogID           string          `json:"dogId"`
	AdoptionDate    time.Time       `json:"adoptionDate"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
	Status          AdoptionStatus  `json:"status"`
}

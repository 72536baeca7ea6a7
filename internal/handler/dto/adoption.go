package dto

// CreateAdoptionRequest represents the request body for an adoption request.
// The customer fields are snapshotted onto the adoption record and may
// differ from the caller's account profile.
type CreateAdoptionRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	DogID    string `json:"dogId"`
}

// CreateAdoptionResponse confirms an adoption request with the dog's
// display name and price for the confirmation screen.
type CreateAdoptionResponse struct {
	Success bool    `json:"success"`
	DogName string  `json:"dogName"`
	Price   float64 `json:"price"`
}

package dto

// CreatePetRequestBody defines the request body for CreatePet service.
type CreatePetRequestBody struct {
	Name        string `json:"name"`
	Species     string `json:"species"`
	Breed       string `json:"breed"`
	AgeMonths   int32  `json:"age_months"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Location    string `json:"location"`
}

// UpdatePetRequestBody defines the request body for UpdatePet service.
type UpdatePetRequestBody struct {
	Name        *string `json:"name"`
	Species     *string `json:"species"`
	Breed       *string `json:"breed"`
	AgeMonths   *int32  `json:"age_months"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Location    *string `json:"location"`
}

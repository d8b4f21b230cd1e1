package models

// ValidateResponse reports the checksum verdict with a human-readable
// message suitable for direct display in the form UI.
type ValidateResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// GenerateResponse returns the computed check digit and the completed
// 12-digit number.
type GenerateResponse struct {
	CheckDigit    int    `json:"check_digit"`
	AadhaarNumber string `json:"aadhaar_number"`
}

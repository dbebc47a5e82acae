package domain

import "strings"

// Vehicle identifies a pricing row selected by the user
type Vehicle struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	FuelType     string `json:"fuelType"`
}

// IsComplete returns true if all three lookup keys are present
func (v Vehicle) IsComplete() bool {
	return strings.TrimSpace(v.Manufacturer) != "" &&
		strings.TrimSpace(v.Model) != "" &&
		strings.TrimSpace(v.FuelType) != ""
}

// IsZero returns true if no field is set
func (v Vehicle) IsZero() bool {
	return v.Manufacturer == "" && v.Model == "" && v.FuelType == ""
}

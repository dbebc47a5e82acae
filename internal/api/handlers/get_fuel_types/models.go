package get_fuel_types

// FuelTypesResponse HTTP response model
type FuelTypesResponse struct {
	Manufacturer string   `json:"manufacturer"`
	Model        string   `json:"model"`
	FuelTypes    []string `json:"fuelTypes"`
}

package save_vehicle

import "github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"

// SaveVehicleRequest HTTP request model
type SaveVehicleRequest struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	FuelType     string `json:"fuelType"`
}

// ToVehicle конвертирует запрос в доменную модель
func (r *SaveVehicleRequest) ToVehicle() domain.Vehicle {
	return domain.Vehicle{
		Manufacturer: r.Manufacturer,
		Model:        r.Model,
		FuelType:     r.FuelType,
	}
}

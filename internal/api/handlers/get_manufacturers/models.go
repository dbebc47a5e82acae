package get_manufacturers

// ManufacturersResponse HTTP response model
type ManufacturersResponse struct {
	Manufacturers []string `json:"manufacturers"`
}

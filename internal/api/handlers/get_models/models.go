package get_models

// ModelsResponse HTTP response model
type ModelsResponse struct {
	Manufacturer string   `json:"manufacturer"`
	Models       []string `json:"models"`
}

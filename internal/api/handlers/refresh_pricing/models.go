package refresh_pricing

// RefreshResponse HTTP response model
type RefreshResponse struct {
	Rows int `json:"rows"`
}

package domain

// DoorstepService is an entry of the fixed doorstep-service catalog.
// The catalog is compiled in: adding an unknown service id to the cart
// indicates a code bug, not bad user input
type DoorstepService struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// DoorstepServiceCatalog is the fixed catalog of doorstep services,
// in display order
var DoorstepServiceCatalog = []DoorstepService{
	{
		ID:              "car-wash",
		Name:            "Doorstep Car Wash",
		Description:     "Exterior foam wash with interior vacuuming at your doorstep",
		Price:           399,
		DurationMinutes: 45,
	},
	{
		ID:              "deep-cleaning",
		Name:            "Interior Deep Cleaning",
		Description:     "Seat shampooing, dashboard polish and full interior detailing",
		Price:           1999,
		DurationMinutes: 180,
	},
	{
		ID:              "battery-jumpstart",
		Name:            "Battery Jumpstart",
		Description:     "On-spot jumpstart with battery health check",
		Price:           299,
		DurationMinutes: 30,
	},
	{
		ID:              "ac-checkup",
		Name:            "Car AC Checkup",
		Description:     "AC vent cleaning, gas level and cooling performance check",
		Price:           499,
		DurationMinutes: 60,
	},
	{
		ID:              "wheel-care",
		Name:            "Wheel & Tyre Care",
		Description:     "Tyre rotation, pressure check and alloy cleaning",
		Price:           599,
		DurationMinutes: 60,
	},
	{
		ID:              "sanitization",
		Name:            "Car Sanitization",
		Description:     "Anti-bacterial fogging treatment for the full cabin",
		Price:           699,
		DurationMinutes: 45,
	},
	{
		ID:              "headlight-restoration",
		Name:            "Headlight Restoration",
		Description:     "Buffing and UV coating for faded headlights",
		Price:           799,
		DurationMinutes: 60,
	},
	{
		ID:              "engine-oil-topup",
		Name:            "Engine Oil Top-up",
		Description:     "Oil level inspection and top-up with standard grade oil",
		Price:           349,
		DurationMinutes: 30,
	},
}

// FindDoorstepService looks up a catalog entry by id
func FindDoorstepService(id string) (*DoorstepService, bool) {
	for i := range DoorstepServiceCatalog {
		if DoorstepServiceCatalog[i].ID == id {
			return &DoorstepServiceCatalog[i], true
		}
	}
	return nil, false
}

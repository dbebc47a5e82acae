package sessionstore

// Ключи значений, хранимых в сессии
// Все значения сериализуются в JSON
const (
	KeySelectedVehicle = "selected_vehicle"
	KeyUserMobile      = "user_mobile"
	KeyUserLocation    = "user_location"
	KeyPendingCoupon   = "pending_coupon"
	KeyExpressLeadID   = "express_lead_id"
	KeyCartItems       = "cart_items"
)

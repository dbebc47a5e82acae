package update_cart_item

// UpdateItemRequest HTTP request model
// Нулевое или отрицательное количество удаляет позицию из корзины
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

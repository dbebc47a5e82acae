package checkout

import "github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"

// Request модель запроса на создание платежного заказа
type Request struct {
	SessionID string
}

// Response модель ответа с платежным заказом и ссылкой подтверждения
type Response struct {
	OrderID      string            `json:"orderId"`
	Amount       float64           `json:"amount"`      // В рупиях
	AmountMinor  int64             `json:"amountMinor"` // В пайсах
	Currency     string            `json:"currency"`
	Items        []domain.CartLine `json:"items"`
	WhatsAppLink string            `json:"whatsAppLink"`
}

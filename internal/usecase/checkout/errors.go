package checkout

import "errors"

var (
	// ErrEmptyCart возвращается при попытке оплатить пустую корзину
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrOrderCreateFailed возвращается, когда платежный шлюз не создал
	// заказ; операция безопасна для повтора
	ErrOrderCreateFailed = errors.New("checkout: payment order creation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("checkout: invalid input data")
)

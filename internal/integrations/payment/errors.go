package payment

import "errors"

var (
	// ErrOrderCreateFailed возвращается, когда шлюз отклонил создание ордера
	// Отличимая от успеха ошибка позволяет UI предложить повтор оплаты
	// без перезапуска всего booking flow
	ErrOrderCreateFailed = errors.New("payment client: order creation failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payment client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("payment client: invalid response")
)

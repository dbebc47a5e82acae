package cart

import "errors"

var (
	// ErrUnknownService возвращается при попытке добавить в корзину
	// serviceId, отсутствующий в статическом каталоге. Каталог компилируется
	// в бинарь, поэтому такая ошибка указывает на баг в коде, а не на
	// пользовательские данные
	ErrUnknownService = errors.New("cart: unknown doorstep service id")

	// ErrInvalidQuantity возвращается при некорректном количестве
	ErrInvalidQuantity = errors.New("cart: quantity must be positive")

	// ErrPersist возвращается при ошибке сохранения корзины в сессию
	ErrPersist = errors.New("cart: failed to persist cart state")
)

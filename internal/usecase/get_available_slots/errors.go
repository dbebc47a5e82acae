package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате обслуживания
	ErrInvalidDate = errors.New("invalid service date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)

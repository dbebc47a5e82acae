package cms

import "errors"

var (
	// ErrLeadNotFound возвращается, когда лид не найден в CMS
	ErrLeadNotFound = errors.New("cms client: lead not found")

	// ErrCouponRejected возвращается, когда CMS отклонила купон
	// Текст причины извлекается из ответа и пригоден для показа пользователю
	ErrCouponRejected = errors.New("cms client: coupon rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("cms client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от CMS
	ErrInvalidResponse = errors.New("cms client: invalid response")

	// ErrServiceDegraded возвращается при недоступности CMS
	// Вызывающая сторона решает, деградировать ли функциональность
	ErrServiceDegraded = errors.New("cms unavailable: graceful degradation applied")
)

package apply_coupon

import "errors"

var (
	// ErrCouponRejected возвращается, когда CMS отклонила купон;
	// причина отказа передается пользователю как есть
	ErrCouponRejected = errors.New("apply_coupon: coupon rejected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("apply_coupon: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("apply_coupon: internal error")
)

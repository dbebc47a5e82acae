package pricingsheet

import "errors"

var (
	// ErrFetch возвращается при ошибке загрузки CSV по HTTP
	ErrFetch = errors.New("pricingsheet: failed to fetch pricing sheet")

	// ErrUnexpectedStatus возвращается при неожиданном HTTP статусе
	ErrUnexpectedStatus = errors.New("pricingsheet: unexpected status code")

	// ErrParse возвращается при ошибке разбора CSV
	ErrParse = errors.New("pricingsheet: failed to parse pricing sheet")
)

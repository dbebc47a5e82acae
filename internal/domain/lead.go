package domain

import (
	"time"

	"github.com/gaadimech/GaadiMech-PWA-sub001/pkg/types"
)

// ExpressLead represents an express-service lead as this service sees it.
// The record itself lives in the CMS; only the id is cached per session so
// a page reload does not create a duplicate lead
type ExpressLead struct {
	ID           int64
	MobileNumber string
	ServiceType  string

	CarBrand string
	CarModel string
	FuelType string

	ServicePrice float64
	FinalPrice   float64
	CouponCode   *string

	ServiceDate *time.Time
	TimeSlot    *types.TimeString
}

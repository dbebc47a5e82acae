package schedule_express_lead

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/infra/sessionstore"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/integrations/cms"
	pricingService "github.com/gaadimech/GaadiMech-PWA-sub001/internal/service/pricing"
	"github.com/gaadimech/GaadiMech-PWA-sub001/pkg/types"
)

// UseCase use case планирования экспресс-лида (фаза 2)
// Обновляет лид, созданный в фазе 1, датой и слотом. Если кешированного
// ID лида нет (перезагрузка страницы между фазами), лид прозрачно
// создается заново - фаза 2 без фазы 1 не является ошибкой
type UseCase struct {
	pricing      PricingService
	sessions     SessionStore
	cmsCli       CMSClient
	timeProvider TimeProvider
	logger       Logger
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(pricing PricingService, sessions SessionStore, cmsCli CMSClient, logger Logger) *UseCase {
	return &UseCase{
		pricing:      pricing,
		sessions:     sessions,
		cmsCli:       cmsCli,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case планирования экспресс-лида
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ScheduleExpressLead: session=%s, date=%s, slot=%s",
		req.SessionID, req.ServiceDate.Format(domain.DateFormat), req.TimeSlot)

	// 1. Валидация входных данных
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("ScheduleExpressLead: validation failed: %v", err)
		return nil, err
	}

	// 2. Восстанавливаем контекст фазы 1 из сессии
	var vehicle domain.Vehicle
	if !uc.sessions.Get(req.SessionID, sessionstore.KeySelectedVehicle, &vehicle) || !vehicle.IsComplete() {
		uc.logger.Warn("ScheduleExpressLead: no vehicle for session=%s", req.SessionID)
		return nil, ErrNoVehicle
	}

	pricing, err := uc.pricing.ResolvePricing(vehicle)
	if err != nil {
		if errors.Is(err, pricingService.ErrNoPricingMatch) {
			return nil, fmt.Errorf("%w: pricing no longer available", ErrInternal)
		}
		return nil, fmt.Errorf("%w: failed to resolve pricing: %v", ErrInternal, err)
	}

	servicePrice := pricing.ExpressServicePrice
	finalPrice := pricing.DiscountedExpressPrice
	if finalPrice <= 0 {
		finalPrice = servicePrice
	}

	var coupon domain.AppliedCoupon
	var couponCode *string
	if uc.sessions.Get(req.SessionID, sessionstore.KeyPendingCoupon, &coupon) && coupon.Code != "" {
		couponCode = &coupon.Code
		finalPrice -= coupon.DiscountAmount
		if finalPrice < 0 {
			finalPrice = 0
		}
	}

	// 3. Кешированный лид фазы 1, либо прозрачное создание нового
	var leadID int64
	createdTransparently := false
	if !uc.sessions.Get(req.SessionID, sessionstore.KeyExpressLeadID, &leadID) || leadID == 0 {
		leadID, err = uc.createLeadTransparently(ctx, req.SessionID, vehicle, servicePrice, finalPrice, couponCode)
		if err != nil {
			return nil, err
		}
		createdTransparently = true
	}

	// 4. Обновляем лид расписанием и финальной ценой
	update := &cms.ExpressLeadUpdateRequest{
		TimeSlot:     slotLabel(req.TimeSlot),
		ServiceDate:  req.ServiceDate.Format(domain.DateFormat),
		ServicePrice: servicePrice,
		CouponCode:   couponCode,
		FinalPrice:   finalPrice,
	}

	if err := uc.cmsCli.UpdateExpressLead(ctx, leadID, update); err != nil {
		if errors.Is(err, cms.ErrLeadNotFound) {
			// Кешированный лид пропал на стороне CMS - сбрасываем кеш,
			// чтобы следующая попытка создала лид заново
			uc.sessions.Put(req.SessionID, sessionstore.KeyExpressLeadID, int64(0))
			uc.logger.Warn("ScheduleExpressLead: cached lead id=%d vanished from CMS", leadID)
			return nil, ErrLeadNotFound
		}
		uc.logger.Error("ScheduleExpressLead: failed to update lead id=%d: %v", leadID, err)
		return nil, fmt.Errorf("%w: failed to update lead: %v", ErrInternal, err)
	}

	uc.logger.Info("ScheduleExpressLead: lead id=%d scheduled for %s %s (transparent create=%t)",
		leadID, req.ServiceDate.Format(domain.DateFormat), req.TimeSlot, createdTransparently)

	return &Response{
		LeadID:               leadID,
		ServiceDate:          req.ServiceDate,
		TimeSlot:             req.TimeSlot,
		SlotLabel:            slotLabel(req.TimeSlot),
		ServicePrice:         servicePrice,
		FinalPrice:           finalPrice,
		CouponCode:           couponCode,
		CreatedTransparently: createdTransparently,
	}, nil
}

// createLeadTransparently создает лид, когда фаза 2 выполняется без
// кешированного ID (например, после перезагрузки страницы)
func (uc *UseCase) createLeadTransparently(
	ctx context.Context,
	sessionID string,
	vehicle domain.Vehicle,
	servicePrice, finalPrice float64,
	couponCode *string,
) (int64, error) {
	var mobile string
	if !uc.sessions.Get(sessionID, sessionstore.KeyUserMobile, &mobile) || mobile == "" {
		uc.logger.Warn("ScheduleExpressLead: phase 2 without phase 1 and no mobile in session=%s", sessionID)
		return 0, ErrNoMobile
	}

	leadID, err := uc.cmsCli.CreateExpressLead(ctx, &cms.ExpressLeadRequest{
		MobileNumber: mobile,
		ServiceType:  domain.ServiceTypeExpress,
		CarBrand:     vehicle.Manufacturer,
		CarModel:     vehicle.Model,
		FuelType:     vehicle.FuelType,
		ServicePrice: servicePrice,
		CouponCode:   couponCode,
		FinalPrice:   finalPrice,
	})
	if err != nil {
		uc.logger.Error("ScheduleExpressLead: transparent lead creation failed: %v", err)
		return 0, fmt.Errorf("%w: transparent lead creation failed: %v", ErrInternal, err)
	}

	if err := uc.sessions.Put(sessionID, sessionstore.KeyExpressLeadID, leadID); err != nil {
		uc.logger.Warn("ScheduleExpressLead: failed to cache lead id: %v", err)
	}

	uc.logger.Info("ScheduleExpressLead: lead id=%d created transparently", leadID)
	return leadID, nil
}

// validateRequest валидирует входные данные запроса
func (uc *UseCase) validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if req.ServiceDate.IsZero() {
		return fmt.Errorf("%w: service date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	date := time.Date(req.ServiceDate.Year(), req.ServiceDate.Month(), req.ServiceDate.Day(), 0, 0, 0, 0, req.ServiceDate.Location())

	if date.Before(today) {
		return ErrInvalidDate
	}
	if date.After(today.AddDate(0, 0, domain.ExpressAdvanceBookingDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrInvalidDate, domain.ExpressAdvanceBookingDays)
	}

	if req.TimeSlot.IsZero() {
		return fmt.Errorf("%w: time slot is required", ErrInvalidInput)
	}
	if !domain.IsValidExpressSlot(req.TimeSlot) {
		return fmt.Errorf("%w: %s", ErrInvalidSlot, req.TimeSlot)
	}

	return nil
}

// slotLabel возвращает отображаемую подпись слота по его началу
func slotLabel(start types.TimeString) string {
	for _, slot := range domain.ExpressSlotWindows {
		if slot.StartTime == start {
			return slot.Label
		}
	}
	return start.String()
}

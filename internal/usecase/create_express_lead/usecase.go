package create_express_lead

import (
	"context"
	"errors"
	"fmt"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/infra/sessionstore"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/integrations/cms"
	pricingService "github.com/gaadimech/GaadiMech-PWA-sub001/internal/service/pricing"
)

// UseCase use case создания экспресс-лида (фаза 1)
// Захватывает валидный мобильный номер, резолвит цену по выбранному
// автомобилю и создает лид в CMS. ID лида кешируется в сессии, чтобы
// перезагрузка страницы не плодила дубликаты
type UseCase struct {
	pricing  PricingService
	sessions SessionStore
	cmsCli   CMSClient
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(pricing PricingService, sessions SessionStore, cmsCli CMSClient, logger Logger) *UseCase {
	return &UseCase{
		pricing:  pricing,
		sessions: sessions,
		cmsCli:   cmsCli,
		logger:   logger,
	}
}

// Execute выполняет use case создания экспресс-лида
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateExpressLead: session=%s, mobile=%s", req.SessionID, maskMobile(req.MobileNumber))

	// 1. Валидация до любого сетевого вызова
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateExpressLead: validation failed: %v", err)
		return nil, err
	}

	serviceType := req.ServiceType
	if serviceType == "" {
		serviceType = domain.ServiceTypeExpress
	}

	// 2. Автомобиль: из запроса либо выбранный в сессии
	vehicle := req.Vehicle
	if !vehicle.IsComplete() {
		if !uc.sessions.Get(req.SessionID, sessionstore.KeySelectedVehicle, &vehicle) || !vehicle.IsComplete() {
			uc.logger.Warn("CreateExpressLead: no vehicle for session=%s", req.SessionID)
			return nil, ErrNoVehicle
		}
	}

	// 3. Резолвим цену
	pricing, err := uc.pricing.ResolvePricing(vehicle)
	if err != nil {
		if errors.Is(err, pricingService.ErrNoPricingMatch) {
			uc.logger.Warn("CreateExpressLead: pricing unavailable for %s %s (%s)",
				vehicle.Manufacturer, vehicle.Model, vehicle.FuelType)
			return nil, ErrPricingUnavailable
		}
		uc.logger.Error("CreateExpressLead: failed to resolve pricing: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve pricing: %v", ErrInternal, err)
	}

	// 4. Цены экспресс-сервиса: скидка прайс-листа между обычной и
	// акционной ценой
	servicePrice := pricing.ExpressServicePrice
	discountedPrice := pricing.DiscountedExpressPrice
	if discountedPrice <= 0 {
		discountedPrice = servicePrice
	}
	autoDiscount := pricing.AutoDiscountAmount()

	// 5. Примененный купон, если есть в сессии
	var coupon domain.AppliedCoupon
	var couponCode *string
	additionalDiscount := 0.0
	if uc.sessions.Get(req.SessionID, sessionstore.KeyPendingCoupon, &coupon) && coupon.Code != "" {
		couponCode = &coupon.Code
		additionalDiscount = coupon.DiscountAmount
	}

	finalPrice := discountedPrice - additionalDiscount
	if finalPrice < 0 {
		finalPrice = 0
	}

	// 6. Создаем лид в CMS
	leadID, err := uc.cmsCli.CreateExpressLead(ctx, &cms.ExpressLeadRequest{
		MobileNumber: req.MobileNumber,
		ServiceType:  serviceType,
		CarBrand:     vehicle.Manufacturer,
		CarModel:     vehicle.Model,
		FuelType:     vehicle.FuelType,
		ServicePrice: servicePrice,
		CouponCode:   couponCode,
		FinalPrice:   finalPrice,
	})
	if err != nil {
		uc.logger.Error("CreateExpressLead: failed to create lead: %v", err)
		return nil, fmt.Errorf("%w: failed to create lead: %v", ErrInternal, err)
	}

	// 7. Кешируем номер и ID лида в сессии для фазы 2
	if err := uc.sessions.Put(req.SessionID, sessionstore.KeyUserMobile, req.MobileNumber); err != nil {
		uc.logger.Warn("CreateExpressLead: failed to cache mobile in session: %v", err)
	}
	if err := uc.sessions.Put(req.SessionID, sessionstore.KeyExpressLeadID, leadID); err != nil {
		uc.logger.Warn("CreateExpressLead: failed to cache lead id in session: %v", err)
	}

	uc.logger.Info("CreateExpressLead: lead id=%d created, final price=%.2f", leadID, finalPrice)

	return &Response{
		LeadID:             leadID,
		ServicePrice:       servicePrice,
		DiscountedPrice:    discountedPrice,
		AutoDiscountAmount: autoDiscount,
		AdditionalDiscount: additionalDiscount,
		FinalPrice:         finalPrice,
		CouponCode:         couponCode,
	}, nil
}

// maskMobile скрывает середину номера в логах
func maskMobile(mobile string) string {
	if len(mobile) != 10 {
		return "***"
	}
	return mobile[:2] + "******" + mobile[8:]
}

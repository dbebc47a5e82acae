package apply_coupon

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/infra/sessionstore"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/integrations/cms"
	"github.com/gaadimech/GaadiMech-PWA-sub001/pkg/ptr"
)

// fallbackCouponCode купон-образец, принимаемый локально, когда CMS
// недоступна. Дает плоские 10% от суммы заказа
const (
	fallbackCouponCode = "TEST-10OFF"
	fallbackRate       = 0.10
)

// UseCase use case применения и снятия купона
// Купон валидируется в CMS и сохраняется в сессии как ожидающий;
// к итогу корзины он не применяется, только к экспресс-лиду
type UseCase struct {
	sessions SessionStore
	cmsCli   CMSClient
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionStore, cmsCli CMSClient, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		cmsCli:   cmsCli,
		logger:   logger,
	}
}

// Execute выполняет use case применения купона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация и нормализация кода
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApplyCoupon: validation failed: %v", err)
		return nil, err
	}
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	uc.logger.Info("ApplyCoupon: session=%s, code=%s, amount=%.2f", req.SessionID, code, req.Amount)

	// 2. Валидируем купон в CMS
	terms, err := uc.cmsCli.ValidateCoupon(ctx, code, req.Amount)
	if err != nil {
		if errors.Is(err, cms.ErrCouponRejected) {
			uc.logger.Info("ApplyCoupon: code=%s rejected: %v", code, err)
			return nil, fmt.Errorf("%w: %s", ErrCouponRejected, rejectionReason(err))
		}

		// CMS недоступна: принимаем локальный купон-образец, остальные
		// коды отклоняем
		if code == fallbackCouponCode {
			uc.logger.Warn("ApplyCoupon: CMS unavailable, accepting fallback code=%s: %v", code, err)
			return uc.applyTerms(req.SessionID, &cms.CouponTerms{
				Code:           code,
				DiscountType:   string(domain.DiscountPercentage),
				DiscountAmount: ptr.Ptr(req.Amount * fallbackRate),
			}, req.Amount)
		}

		uc.logger.Error("ApplyCoupon: CMS validation failed for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: coupon validation failed: %v", ErrInternal, err)
	}

	return uc.applyTerms(req.SessionID, terms, req.Amount)
}

// Remove снимает ожидающий купон с сессии. Итог возвращается к значению
// до применения, операция идемпотентна
func (uc *UseCase) Remove(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	uc.sessions.Delete(sessionID, sessionstore.KeyPendingCoupon)
	uc.logger.Info("ApplyCoupon: pending coupon removed for session=%s", sessionID)
	return nil
}

// applyTerms сохраняет купон в сессии и собирает ответ
func (uc *UseCase) applyTerms(sessionID string, terms *cms.CouponTerms, amount float64) (*Response, error) {
	discount := terms.Amount()
	applied := domain.AppliedCoupon{
		Code:           terms.Code,
		DiscountType:   domain.DiscountType(terms.DiscountType),
		DiscountAmount: discount,
	}

	if err := uc.sessions.Put(sessionID, sessionstore.KeyPendingCoupon, applied); err != nil {
		uc.logger.Error("ApplyCoupon: failed to store coupon in session: %v", err)
		return nil, fmt.Errorf("%w: failed to store coupon: %v", ErrInternal, err)
	}

	finalPrice := amount - discount
	if finalPrice < 0 {
		finalPrice = 0
	}

	uc.logger.Info("ApplyCoupon: code=%s applied, discount=%.2f, final=%.2f", terms.Code, discount, finalPrice)

	return &Response{
		Code:           terms.Code,
		DiscountType:   terms.DiscountType,
		DiscountAmount: discount,
		FinalPrice:     finalPrice,
	}, nil
}

// rejectionReason извлекает человекочитаемую причину отказа из ошибки CMS
func rejectionReason(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}

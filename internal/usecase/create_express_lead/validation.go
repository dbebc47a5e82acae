package create_express_lead

import (
	"fmt"
	"regexp"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
)

// mobileRegexp индийский мобильный номер: начинается с 6-9, ровно 10 цифр
var mobileRegexp = regexp.MustCompile(domain.MobileNumberPattern)

// validateRequest валидирует входные данные запроса
// Ошибка валидации гарантированно возникает до любого сетевого вызова
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if !mobileRegexp.MatchString(req.MobileNumber) {
		return fmt.Errorf("%w: %q", ErrInvalidMobile, req.MobileNumber)
	}

	if req.ServiceType != "" &&
		req.ServiceType != domain.ServiceTypeExpress &&
		req.ServiceType != domain.ServiceTypePeriodic {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}

	return nil
}

package pricing

import (
	"context"
	"sort"
	"sync"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
)

// Service резолвер цен по прайс-листу
// Держит разобранные строки в памяти; Refresh перечитывает прайс-лист
type Service struct {
	loader SheetLoader
	log    Logger

	mu   sync.RWMutex
	rows []domain.PricingRow
}

// NewService создает новый экземпляр резолвера цен
func NewService(loader SheetLoader, log Logger) *Service {
	return &Service{
		loader: loader,
		log:    log,
		rows:   []domain.PricingRow{},
	}
}

// Refresh перечитывает прайс-лист и возвращает количество строк
// Ошибки загрузки деградируют до пустого списка внутри загрузчика;
// при пустом результате старые данные сохраняются, чтобы временный сбой
// сети не обнулял работающий каталог
func (s *Service) Refresh(ctx context.Context) int {
	rows := s.loader.LoadOrEmpty(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(rows) == 0 && len(s.rows) > 0 {
		s.log.Warn("Refresh: loader returned no rows, keeping %d previously loaded rows", len(s.rows))
		return len(s.rows)
	}

	s.rows = rows
	s.log.Info("Refresh: pricing data refreshed, %d rows", len(rows))
	return len(rows)
}

// ListManufacturers возвращает отсортированный список уникальных брендов
// Регистр сохраняется как в прайс-листе
func (s *Service) ListManufacturers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	manufacturers := make([]string, 0)

	for _, row := range s.rows {
		if _, ok := seen[row.Brand]; ok {
			continue
		}
		seen[row.Brand] = struct{}{}
		manufacturers = append(manufacturers, row.Brand)
	}

	sort.Strings(manufacturers)
	return manufacturers
}

// ListModels возвращает уникальные модели бренда
// Сравнение бренда точное, с учетом регистра как в прайс-листе
func (s *Service) ListModels(manufacturer string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	models := make([]string, 0)

	for _, row := range s.rows {
		if row.Brand != manufacturer {
			continue
		}
		if _, ok := seen[row.Model]; ok {
			continue
		}
		seen[row.Model] = struct{}{}
		models = append(models, row.Model)
	}

	sort.Strings(models)
	return models
}

// ListFuelTypes возвращает типы топлива для пары бренд+модель
// Строки без единой положительной цены в четырех ключевых колонках
// отфильтровываются: UI не должен позволять выбрать комбинацию,
// у которой нет пригодной цены
func (s *Service) ListFuelTypes(manufacturer, model string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	fuelTypes := make([]string, 0)

	for i := range s.rows {
		row := &s.rows[i]
		if row.Brand != manufacturer || row.Model != model {
			continue
		}
		if !row.HasUsablePrice() {
			continue
		}
		if _, ok := seen[row.FuelType]; ok {
			continue
		}
		seen[row.FuelType] = struct{}{}
		fuelTypes = append(fuelTypes, row.FuelType)
	}

	sort.Strings(fuelTypes)
	return fuelTypes
}

// ResolvePricing находит строку прайс-листа для автомобиля
// Сопоставление без учета регистра по всем трем ключам; при дублях
// в прайс-листе побеждает первая встреченная строка (порядок строк
// листа значим - семантика сохранена для совместимости с таблицей)
func (s *Service) ResolvePricing(vehicle domain.Vehicle) (*domain.PricingData, error) {
	if !vehicle.IsComplete() {
		return nil, ErrIncompleteVehicle
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.rows {
		if s.rows[i].Matches(vehicle) {
			data := s.rows[i].ToPricingData()
			return &data, nil
		}
	}

	s.log.Info("ResolvePricing: no match for %s %s (%s)",
		vehicle.Manufacturer, vehicle.Model, vehicle.FuelType)
	return nil, ErrNoPricingMatch
}

package pricingsheet

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
)

// Позиционный порядок колонок прайс-листа
const (
	colFuelType = iota
	colBrand
	colModel
	colPeriodicPrice
	colExpressPrice
	colDiscountedPrice
	colDentPaintPrice
	colFullBodyPaintPrice
	colACServicePrice

	columnCount = 9
)

// headerMarker первая ячейка заголовочной строки прайс-листа
const headerMarker = "FuelType"

// Loader загружает и разбирает CSV прайс-лист по HTTP
type Loader struct {
	url        string
	httpClient *http.Client
	log        Logger
}

// NewLoader создает новый загрузчик прайс-листа
func NewLoader(url string, timeout time.Duration, log Logger) *Loader {
	return &Loader{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Load загружает прайс-лист и возвращает разобранные строки
func (l *Loader) Load(ctx context.Context) ([]domain.PricingRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrFetch, err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	rows, err := parseRows(resp.Body)
	if err != nil {
		return nil, err
	}

	l.log.Info("Pricing sheet loaded: %d rows from %s", len(rows), l.url)
	return rows, nil
}

// LoadOrEmpty загружает прайс-лист, при любой ошибке логирует её и
// возвращает пустой список. Отсутствие данных о ценах - валидное,
// нефатальное состояние: UI показывает "цена недоступна"
func (l *Loader) LoadOrEmpty(ctx context.Context) []domain.PricingRow {
	rows, err := l.Load(ctx)
	if err != nil {
		l.log.Error("Failed to load pricing sheet, degrading to empty pricing data: %v", err)
		return []domain.PricingRow{}
	}
	return rows
}

// parseRows разбирает CSV в строки прайс-листа
// Заголовок опционален и определяется по литералу "FuelType" в первой ячейке
// Колонки маппятся позиционно; пустые и нечисловые цены становятся 0
func parseRows(r io.Reader) ([]domain.PricingRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // строки с неполным набором колонок допустимы

	rows := make([]domain.PricingRow, 0)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}

		if len(record) == 0 {
			continue
		}

		// Пропускаем заголовок
		if strings.TrimSpace(record[colFuelType]) == headerMarker {
			continue
		}

		// Строка без трех ключевых полей бесполезна для резолвера
		if len(record) < 3 {
			continue
		}

		row := domain.PricingRow{
			FuelType: strings.TrimSpace(record[colFuelType]),
			Brand:    strings.TrimSpace(record[colBrand]),
			Model:    strings.TrimSpace(record[colModel]),
		}

		if row.FuelType == "" || row.Brand == "" || row.Model == "" {
			continue
		}

		row.PeriodicServicePrice = parsePrice(record, colPeriodicPrice)
		row.ExpressServicePrice = parsePrice(record, colExpressPrice)
		row.DiscountedExpressPrice = parsePrice(record, colDiscountedPrice)
		row.DentPaintPrice = parsePrice(record, colDentPaintPrice)
		row.FullBodyPaintPrice = parsePrice(record, colFullBodyPaintPrice)
		row.ACServicePrice = parsePrice(record, colACServicePrice)

		rows = append(rows, row)
	}

	return rows, nil
}

// parsePrice извлекает цену из колонки
// Отсутствующая, пустая или нечисловая ячейка дает 0: строка с частично
// заполненными ценами остается пригодной для остальных услуг
func parsePrice(record []string, col int) float64 {
	if col >= len(record) {
		return 0
	}

	raw := strings.TrimSpace(record[col])
	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.TrimPrefix(raw, "₹")
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return 0
	}

	return value
}

package cart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/infra/sessionstore"
)

// syncTimeout ограничивает время фоновой синхронизации снапшота,
// чтобы зависший коннект к БД не копил горутины
const syncTimeout = 10 * time.Second

// Service агрегат корзины: единственный владелец состояния корзин
// Создается один раз при старте приложения и передается явно всем,
// кому нужна корзина - никаких скрытых глобальных синглтонов
//
// Источник истины - сессионное хранилище; снапшот в БД advisory
// и пишется best-effort в фоне
type Service struct {
	sessions  SessionStore
	repo      SnapshotRepository // nil = бэкенд-синхронизация выключена
	txManager TransactionManager
	log       Logger

	// mu сериализует мутации: durable-запись и нотификация слушателей
	// должны быть атомарны относительно друг друга
	mu sync.Mutex

	listenerMu     sync.Mutex
	listeners      map[int]Listener
	nextListenerID int
}

// NewService создает новый агрегат корзины
// repo и txManager могут быть nil - тогда синхронизация в БД выключена
func NewService(sessions SessionStore, repo SnapshotRepository, txManager TransactionManager, log Logger) *Service {
	return &Service{
		sessions:  sessions,
		repo:      repo,
		txManager: txManager,
		log:       log,
		listeners: make(map[int]Listener),
	}
}

// AddItem добавляет услугу в корзину или увеличивает её количество
// Неизвестный serviceID - программная ошибка (каталог статический)
func (s *Service) AddItem(ctx context.Context, sessionID, serviceID string, quantity int) (*domain.CartLine, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	service, ok := domain.FindDoorstepService(serviceID)
	if !ok {
		s.log.Error("AddItem: unknown service id=%s, this is a code bug", serviceID)
		return nil, fmt.Errorf("%w: %s", ErrUnknownService, serviceID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.loadItems(sessionID)

	var line *domain.CartLine
	found := false
	for i := range items {
		if items[i].ServiceID == serviceID {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, domain.CartItem{
			ServiceID: serviceID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		})
	}

	summary, err := s.persistAndNotify(sessionID, items)
	if err != nil {
		return nil, err
	}

	for i := range summary.Items {
		if summary.Items[i].ServiceID == serviceID {
			line = &summary.Items[i]
			break
		}
	}

	s.log.Info("AddItem: session=%s, service=%s (%s), qty+%d", sessionID, serviceID, service.Name, quantity)
	return line, nil
}

// RemoveItem удаляет услугу из корзины
// Идемпотентен: отсутствие записи не является ошибкой
func (s *Service) RemoveItem(ctx context.Context, sessionID, serviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.loadItems(sessionID)

	filtered := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		if item.ServiceID != serviceID {
			filtered = append(filtered, item)
		}
	}

	// Записи не было - настоящий no-op, без записи и нотификаций
	if len(filtered) == len(items) {
		return nil
	}

	if _, err := s.persistAndNotify(sessionID, filtered); err != nil {
		return err
	}

	s.log.Info("RemoveItem: session=%s, service=%s", sessionID, serviceID)
	return nil
}

// UpdateQuantity устанавливает количество услуги напрямую (не аддитивно)
// Количество <= 0 эквивалентно удалению записи
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, serviceID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, serviceID)
	}

	if _, ok := domain.FindDoorstepService(serviceID); !ok {
		s.log.Error("UpdateQuantity: unknown service id=%s, this is a code bug", serviceID)
		return fmt.Errorf("%w: %s", ErrUnknownService, serviceID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.loadItems(sessionID)

	found := false
	for i := range items {
		if items[i].ServiceID == serviceID {
			items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, domain.CartItem{
			ServiceID: serviceID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		})
	}

	if _, err := s.persistAndNotify(sessionID, items); err != nil {
		return err
	}

	s.log.Info("UpdateQuantity: session=%s, service=%s, qty=%d", sessionID, serviceID, quantity)
	return nil
}

// GetItemQuantity возвращает количество услуги в корзине
// 0 означает "нет в корзине": вызывающая сторона не различает
// "никогда не добавляли" и "добавили и удалили"
func (s *Service) GetItemQuantity(sessionID, serviceID string) int {
	for _, item := range s.loadItems(sessionID) {
		if item.ServiceID == serviceID {
			return item.Quantity
		}
	}
	return 0
}

// GetCartSummary возвращает производное представление корзины
// Чистая функция от записей корзины и статического каталога,
// пересчитывается на каждый запрос
func (s *Service) GetCartSummary(sessionID string) domain.CartSummary {
	return domain.ComputeCartSummary(s.loadItems(sessionID))
}

// ClearCart опустошает корзину и сохраняет пустое состояние
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.persistAndNotify(sessionID, []domain.CartItem{}); err != nil {
		return err
	}

	s.log.Info("ClearCart: session=%s", sessionID)
	return nil
}

// GetCheckoutData проецирует корзину в форму для создания платежного
// ордера. Сумма в рупиях: конвертация в минорные единицы - забота
// вызывающей стороны
func (s *Service) GetCheckoutData(sessionID string) domain.CheckoutData {
	summary := s.GetCartSummary(sessionID)
	return domain.CheckoutData{
		Amount:       summary.Total,
		Currency:     domain.Currency,
		ItemCount:    summary.ItemCount,
		ServiceCount: summary.ServiceCount,
		Items:        summary.Items,
	}
}

// AddListener регистрирует слушателя мутаций корзины и возвращает его id
func (s *Service) AddListener(l Listener) int {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()

	s.nextListenerID++
	id := s.nextListenerID
	s.listeners[id] = l
	return id
}

// RemoveListener снимает слушателя по id
func (s *Service) RemoveListener(id int) {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()

	delete(s.listeners, id)
}

// loadItems читает записи корзины из сессии
// Поврежденное или отсутствующее значение дает пустую корзину
func (s *Service) loadItems(sessionID string) []domain.CartItem {
	var items []domain.CartItem
	if !s.sessions.Get(sessionID, sessionstore.KeyCartItems, &items) {
		return []domain.CartItem{}
	}

	// Защита инварианта: количество <= 0 не должно переживать загрузку
	valid := items[:0]
	for _, item := range items {
		if item.Quantity > 0 {
			valid = append(valid, item)
		}
	}
	return valid
}

// persistAndNotify сохраняет состояние, уведомляет слушателей ровно один
// раз и запускает фоновую синхронизацию снапшота
// Порядок фиксирован: durable-запись, затем слушатели, затем фоновый sync
func (s *Service) persistAndNotify(sessionID string, items []domain.CartItem) (domain.CartSummary, error) {
	if err := s.sessions.Put(sessionID, sessionstore.KeyCartItems, items); err != nil {
		return domain.CartSummary{}, fmt.Errorf("%w: %v", ErrPersist, err)
	}

	summary := domain.ComputeCartSummary(items)

	s.notify(sessionID, summary)
	s.syncSnapshotAsync(sessionID, summary)

	return summary, nil
}

// notify синхронно вызывает всех зарегистрированных слушателей
func (s *Service) notify(sessionID string, summary domain.CartSummary) {
	s.listenerMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenerMu.Unlock()

	for _, l := range listeners {
		l(sessionID, summary)
	}
}

// syncSnapshotAsync пишет снапшот корзины в БД fire-and-forget
// Ошибки логируются и никогда не доходят до вызывающей стороны:
// бэкенд-копия advisory, без ретраев и бэкоффа
func (s *Service) syncSnapshotAsync(sessionID string, summary domain.CartSummary) {
	if s.repo == nil || s.txManager == nil {
		return
	}

	snapshot := &domain.CartSnapshot{
		SessionID: sessionID,
		Items:     summary.Items,
		Subtotal:  summary.Subtotal,
		Discount:  summary.Discount,
		Total:     summary.Total,
		UpdatedAt: time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()

		err := s.txManager.Do(ctx, func(txCtx context.Context) error {
			return s.repo.ReplaceSnapshot(txCtx, snapshot)
		})
		if err != nil {
			s.log.Warn("Cart sync failed for session=%s (local cart unaffected): %v", sessionID, err)
		}
	}()
}

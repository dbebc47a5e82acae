package cart

import (
	"context"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
)

// SessionStore интерфейс сессионного хранилища
type SessionStore interface {
	Put(sessionID, key string, value interface{}) error
	Get(sessionID, key string, dest interface{}) bool
	Delete(sessionID, key string)
}

// SnapshotRepository интерфейс бэкенд-хранилища снапшотов корзин
type SnapshotRepository interface {
	ReplaceSnapshot(ctx context.Context, snapshot *domain.CartSnapshot) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Listener вызывается после каждой мутации корзины с состоянием
// после изменения. Вызов синхронный, ровно один на мутацию
type Listener func(sessionID string, summary domain.CartSummary)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

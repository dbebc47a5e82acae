package sessionstore

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store процессный аналог browser session storage: эфемерное
// key/value хранилище на сессию с вытеснением по idle-таймауту
// Все операции потокобезопасны
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
	log      Logger
}

type session struct {
	values   map[string]json.RawMessage
	lastSeen time.Time
}

// New создает хранилище сессий и запускает фоновую очистку
// протухших сессий до закрытия stopCh
func New(ttl, sweepInterval time.Duration, log Logger, stopCh <-chan struct{}) *Store {
	s := &Store{
		sessions: make(map[string]*session),
		ttl:      ttl,
		log:      log,
	}

	go s.sweep(sweepInterval, stopCh)

	return s
}

// NewSession создает новую сессию и возвращает её идентификатор
func (s *Store) NewSession() string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = &session{
		values:   make(map[string]json.RawMessage),
		lastSeen: time.Now(),
	}

	return id
}

// Touch продлевает сессию и возвращает true, если сессия существует
func (s *Store) Touch(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return false
	}

	sess.lastSeen = time.Now()
	return true
}

// Put сохраняет значение по ключу в сессии
// Несуществующая сессия создается неявно: клиент мог пережить рестарт сервиса
func (s *Store) Put(sessionID, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{values: make(map[string]json.RawMessage)}
		s.sessions[sessionID] = sess
	}

	sess.values[key] = data
	sess.lastSeen = time.Now()
	return nil
}

// Get читает значение по ключу в dest
// Возвращает false, если сессии или ключа нет. Поврежденное значение
// трактуется как отсутствующее и удаляется, ошибка наружу не отдается
func (s *Store) Get(sessionID, key string, dest interface{}) bool {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.RUnlock()
		return false
	}
	data, ok := sess.values[key]
	s.mu.RUnlock()

	if !ok {
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.log.Warn("Session %s: corrupt value for key %s, dropping: %v", sessionID, key, err)
		s.Delete(sessionID, key)
		return false
	}

	return true
}

// Delete удаляет значение по ключу, отсутствие ключа не является ошибкой
func (s *Store) Delete(sessionID, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sessionID]; ok {
		delete(sess.values, key)
		sess.lastSeen = time.Now()
	}
}

// ClearSession удаляет все значения сессии
func (s *Store) ClearSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sessionID]; ok {
		sess.values = make(map[string]json.RawMessage)
		sess.lastSeen = time.Now()
	}
}

// sweep периодически удаляет сессии, не использовавшиеся дольше TTL
func (s *Store) sweep(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-s.ttl)
			removed := 0

			s.mu.Lock()
			for id, sess := range s.sessions {
				if sess.lastSeen.Before(cutoff) {
					delete(s.sessions, id)
					removed++
				}
			}
			s.mu.Unlock()

			if removed > 0 {
				s.log.Info("Session sweep: removed %d expired sessions", removed)
			}
		}
	}
}

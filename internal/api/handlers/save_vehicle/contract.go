package save_vehicle

// SessionStore интерфейс сессионного хранилища
type SessionStore interface {
	Put(sessionID, key string, value interface{}) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

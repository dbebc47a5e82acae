package clear_vehicle

// SessionStore интерфейс сессионного хранилища
type SessionStore interface {
	Delete(sessionID, key string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

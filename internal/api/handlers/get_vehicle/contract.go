package get_vehicle

// SessionStore интерфейс сессионного хранилища
type SessionStore interface {
	Get(sessionID, key string, dest interface{}) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package i

// Logger writes leveled, human-readable log lines.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}

package i

// Logger is the component logger handed to services and adapters.
type Logger interface {
	Debug(string)
	Info(string)
	Warn(string)
	Error(string)
}

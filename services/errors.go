package services

// ServiceError is a typed error carrying the HTTP status the handler
// should respond with.
type ServiceError struct {
	StatusCode int
	Message    string
	// Fields holds field-level validation messages, when applicable.
	Fields map[string]string
}

func (e *ServiceError) Error() string {
	return e.Message
}

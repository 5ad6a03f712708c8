package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

const (
	// RequestIDKey - id входящего запроса (генерируется на каждый запрос)
	RequestIDKey = contextKey("request_id")
	// CorrelationIDKey - сквозной id, пришедший в X-Correlation-ID
	CorrelationIDKey = contextKey("correlation_id")
)

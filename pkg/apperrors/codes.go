package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// Общие, не-доменные коды ошибок
const (
	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"

	// Ошибки внешнего DSS API
	CodeUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE" // сеть / транспорт
	CodeUpstreamStatus      ErrorCode = "UPSTREAM_STATUS"      // ответ не 2xx
	CodeUpstreamDecode      ErrorCode = "UPSTREAM_DECODE"      // невалидный JSON

	// Ошибки ввода и сценария сравнения
	CodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	CodeNoCriteria        ErrorCode = "NO_CRITERIA_SELECTED"
	CodeInvalidTransition ErrorCode = "INVALID_TRANSITION"

	// Кэш справочников
	CodeCacheError ErrorCode = "CACHE_ERROR"
)

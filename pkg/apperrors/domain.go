package apperrors

import (
	"fmt"
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для ошибок запроса, внешнего DSS API, кэша и сценария сравнения.
*/

const upstreamDomain = "dss_api"

// =========================================================================
// Ошибки запроса
// =========================================================================

// ErrInternal оборачивает неожиданную ошибку (500)
func ErrInternal(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

// ErrValidation - поля формы/запроса не прошли проверку, details - карта поле -> сообщение (400)
func ErrValidation(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest).WithDetails(details)
}

// ErrBadRequest - тело или query не разбираются (400)
func ErrBadRequest(message string) *AppError {
	return New(CodeValidationFailed, "request", message, http.StatusBadRequest)
}

// =========================================================================
// Фабричные ФУНКЦИИ (ошибки внешнего API)
// =========================================================================

// ErrUpstreamUnavailable - сеть/транспорт: запрос не дошел или ответ не получен (502)
func ErrUpstreamUnavailable(err error, endpoint string) *AppError {
	return Wrap(err, CodeUpstreamUnavailable, upstreamDomain,
		"Không thể kết nối tới máy chủ API", http.StatusBadGateway).
		WithDetails(map[string]string{"endpoint": endpoint})
}

// ErrUpstreamStatus - API ответил не-2xx статусом (502).
// Сообщение повторяет формат "Lỗi API: <status text>".
func ErrUpstreamStatus(status int, endpoint string) *AppError {
	statusText := http.StatusText(status)
	if statusText == "" {
		statusText = fmt.Sprintf("HTTP %d", status)
	}
	return New(CodeUpstreamStatus, upstreamDomain, "Lỗi API: "+statusText, http.StatusBadGateway).
		WithDetails(map[string]interface{}{
			"endpoint": endpoint,
			"status":   status,
		})
}

// ErrUpstreamDecode - API вернул тело, которое не разбирается как JSON (502)
func ErrUpstreamDecode(err error, endpoint string) *AppError {
	return Wrap(err, CodeUpstreamDecode, upstreamDomain,
		"Phản hồi API không hợp lệ", http.StatusBadGateway).
		WithDetails(map[string]string{"endpoint": endpoint})
}

// ErrInvalidTransition - недопустимый переход машины состояний сравнения
func ErrInvalidTransition(from, to string) *AppError {
	return New(CodeInvalidTransition, "compare_flow",
		fmt.Sprintf("invalid transition %s -> %s", from, to), http.StatusInternalServerError)
}

// ErrCache оборачивает ошибку хранилища кэша справочников.
// Наружу не отдается: кэш только логирует ее и идет во внешний API.
func ErrCache(err error, op string) *AppError {
	return Wrap(err, CodeCacheError, "cache", "cache "+op+" failed", http.StatusInternalServerError)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ
// =========================================================================

// ErrNoCriteriaSelected - ни одного критерия не отмечено, запрос не отправляется.
// Message - это текст блокирующего предупреждения.
var ErrNoCriteriaSelected = New(
	CodeNoCriteria,
	"compare",
	"Vui lòng chọn ít nhất một tiêu chí để so sánh!",
	http.StatusUnprocessableEntity,
)

// UserMessage возвращает текст для показа пользователю.
// Для неизвестных ошибок детали не раскрываются.
func UserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Message
	}
	return "Đã xảy ra lỗi không xác định"
}

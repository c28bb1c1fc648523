package constants

// Standard response field keys
const (
	ResponseFieldTotal     = "total"
	ResponseFieldPage      = "page"
	ResponseFieldPageTotal = "page_total"
	ResponseFieldData      = "data"

	ResponseFieldMessage = "message"
	ResponseFieldDetails = "details"
	ResponseFieldField   = "field"
)

// Entity mutation alert headers, kept compatible with the original web
// client which reads them to flash create/update/delete notifications.
const (
	HeaderAlert       = "X-Carstock-Alert"
	HeaderAlertParams = "X-Carstock-Params"
	HeaderError       = "X-Carstock-Error"
)

func BuildListResponse(total int64, page int, pageTotal int, data any) map[string]any {
	return map[string]any{
		ResponseFieldTotal:     total,
		ResponseFieldPage:      page,
		ResponseFieldPageTotal: pageTotal,
		ResponseFieldData:      data,
	}
}

func BuildErrorResponse(message string, details any) map[string]any {
	response := map[string]any{
		ResponseFieldMessage: message,
	}

	if details != nil && details != "" {
		response[ResponseFieldDetails] = details
	}

	return response
}

// BuildFieldErrorResponse names the single field that failed validation.
func BuildFieldErrorResponse(message, field string) map[string]any {
	return map[string]any{
		ResponseFieldMessage: message,
		ResponseFieldField:   field,
	}
}

func BuildSuccessResponse(message string) map[string]any {
	return map[string]any{
		ResponseFieldMessage: message,
	}
}

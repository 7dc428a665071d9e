package http

import (
	"encoding/json"
	"net/http"

	"usage-analytics/internal/shared/loggers"
	"usage-analytics/internal/shared/svcerrors"
)

// ErrorResponse is the JSON body of a failed debug-endpoint response.
type ErrorResponse struct {
	RequestID        string `json:"requestId"`
	ErrorCategory    string `json:"errorCategory"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

// writeErrorResponse renders svcErr as JSON. The debug server has no
// client-facing error surface, so every failure answers 500.
func writeErrorResponse(w http.ResponseWriter, r *http.Request, svcErr *svcerrors.ServiceError) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetErrorCode(svcErr.Code)
	}

	loggers.Ctx(r.Context()).Debug().
		Str(loggers.FieldErrorCode, svcErr.Code).
		Str("errorCategory", svcErr.Category).
		Str("errorMessage", svcErr.Message).
		Msg("error response")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)

	_ = json.NewEncoder(w).Encode(ErrorResponse{
		RequestID:        requestID(r),
		ErrorCategory:    svcErr.Category,
		ErrorCode:        svcErr.Code,
		ErrorDescription: svcErr.Message,
	})
}

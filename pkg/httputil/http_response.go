// Package httputil renders the JSON envelopes shared by every handler and
// middleware of the API surface.
package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// ErrorResponse is the wire shape of every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	body, _ := sonic.ConfigFastest.Marshal(resp)
	writeBody(w, statusCode, body)
}

// WriteJSONResponse encodes body with sonic before touching the response,
// so an unencodable body (a NaN smuggled into a float field, say) degrades
// to a clean 500 envelope instead of a half-written reply.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	if body == nil {
		w.WriteHeader(statusCode)
		return
	}
	encoded, err := sonic.ConfigDefault.Marshal(body)
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, "response encoding failed", err)
		return
	}
	writeBody(w, statusCode, encoded)
}

func writeBody(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}

package response

import (
	"encoding/json"
	"net/http"
)

// encodeFailureBody is sent when a response value cannot be marshalled
const encodeFailureBody = `{"message":"Internal server error.","code":"INTERNAL_ERROR"}`

// JSON writes data as a JSON response. Profiles change on every fight, so
// responses are never cached. The body is marshalled before the header is
// written, which turns an encoding failure into a clean 500.
func JSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(encodeFailureBody)
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

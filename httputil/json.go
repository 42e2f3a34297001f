// httputil/json.go
package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
)

var jsonLogger atomic.Pointer[zap.Logger]

// SetLogger configures the logger used for encoding failures that happen
// after the status line is sent. Call once during startup.
func SetLogger(logger *zap.Logger) {
	jsonLogger.Store(logger)
}

// WriteJSON writes v as JSON with the given status code. Status codes outside
// 100-599 become 500.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	if status < 100 || status > 599 {
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		if l := jsonLogger.Load(); l != nil {
			l.Error("json encoding failed after headers sent",
				zap.String("type", fmt.Sprintf("%T", v)), zap.Error(err))
		}
	}
}

// BindJSON decodes the request body as JSON into v. Unknown fields, trailing
// values and empty bodies are rejected. Error messages are safe to return to
// clients.
func BindJSON(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return parseJSONError(err)
	}
	if dec.More() {
		return errors.New("request body contains multiple JSON values")
	}
	return nil
}

// parseJSONError converts json decoding errors into user-friendly messages.
func parseJSONError(err error) error {
	if errors.Is(err, io.EOF) {
		return errors.New("request body is empty")
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Errorf("malformed JSON at position %d", syntaxErr.Offset)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Errorf("invalid value for field %q: expected %s", typeErr.Field, typeErr.Type.String())
	}

	// "json: unknown field \"name\""
	if strings.HasPrefix(err.Error(), "json: unknown field") {
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), "\"")
		return fmt.Errorf("unknown field %q", field)
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return errors.New("request body too large")
	}

	return errors.New("invalid JSON in request body")
}

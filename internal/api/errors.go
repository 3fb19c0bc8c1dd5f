package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error is a non-2xx backend response. Fields keeps the decoded error
// payload so callers can branch on validation keys (e.g. the signup flow
// inspects "username"/"email" to detect an existing account).
type Error struct {
	Status int
	Fields map[string]any
}

func newError(resp *http.Response) *Error {
	e := &Error{Status: resp.StatusCode}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if len(body) > 0 {
		_ = json.Unmarshal(body, &e.Fields)
	}
	return e
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: backend returned %d", e.Status)
}

// HasField reports whether the error payload carried the named key.
func (e *Error) HasField(name string) bool {
	_, ok := e.Fields[name]
	return ok
}

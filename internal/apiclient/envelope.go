package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"auction-marketplace/internal/marketerrors"
)

// envelope is the response wrapper used by every endpoint:
// {"success": true, "message": "...", "data": ...} or
// {"success": false, "message": "...", "error": "..."}
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func decode(status int, payload []byte, out any) error {
	var env envelope
	isEnvelope := len(bytes.TrimSpace(payload)) > 0 && json.Unmarshal(payload, &env) == nil

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return &marketerrors.APIError{
			StatusCode: status,
			Message:    errorMessage(status, env, isEnvelope),
			Code:       env.Code,
		}
	}

	if isEnvelope && env.Success != nil && !*env.Success {
		return &marketerrors.APIError{
			StatusCode: status,
			Message:    errorMessage(status, env, true),
			Code:       env.Code,
		}
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}

	data := json.RawMessage(payload)
	if isEnvelope && env.Success != nil {
		data = env.Data
	}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

func errorMessage(status int, env envelope, isEnvelope bool) string {
	if isEnvelope {
		if env.Message != "" {
			return env.Message
		}
		var s string
		if json.Unmarshal(env.Error, &s) == nil && s != "" {
			return s
		}
	}
	return http.StatusText(status)
}

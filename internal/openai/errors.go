package openai

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/harisaicharan3/openaictl/internal/httpx"
	"github.com/harisaicharan3/openaictl/internal/provider"
)

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

func stringifyCode(code any, fallback string) string {
	if v, ok := code.(string); ok && v != "" {
		return v
	}
	if fallback != "" {
		return fallback
	}
	return "unknown"
}

func networkError(err error) *provider.Error {
	return &provider.Error{
		Provider: providerName,
		Code:     httpx.ClassifyNetworkErr(err),
		Message:  err.Error(),
		Cause:    err,
	}
}

func requestError(code string, err error) *provider.Error {
	return &provider.Error{Provider: providerName, Code: code, Message: err.Error(), Cause: err}
}

func invalidRequest(msg string) *provider.Error {
	return &provider.Error{Provider: providerName, Code: "invalid_request", Message: msg}
}

// statusError decodes the OpenAI error envelope from a non-2xx body, falling
// back to the raw body when the envelope is absent.
func statusError(status int, body []byte) *provider.Error {
	var er errorResponse
	if json.Unmarshal(body, &er) == nil && er.Error.Message != "" {
		return &provider.Error{
			Provider: providerName,
			Code:     stringifyCode(er.Error.Code, er.Error.Type),
			Status:   status,
			Message:  er.Error.Message,
		}
	}
	return &provider.Error{
		Provider: providerName,
		Code:     "http_error",
		Status:   status,
		Message:  strings.TrimSpace(string(body)),
	}
}

func readStatusError(resp *http.Response) *provider.Error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	return statusError(resp.StatusCode, b)
}

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jmorgan/resume-generator/internal/knowledge"
	"github.com/jmorgan/resume-generator/internal/pipeline"
	"github.com/jmorgan/resume-generator/internal/splicing"
)

// errorBody is the JSON error envelope returned by every failed request.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Error codes surfaced to API clients.
const (
	codeInvalidRequest    = "invalid_request"
	codeTemplateViolation = "template_contract_violation"
	codeKnowledgeBase     = "knowledge_base_error"
	codeInternal          = "internal_error"
)

// writeError maps a pipeline failure onto an HTTP status and error code.
// Template-contract violations keep their distinct code so callers can tell
// a broken template apart from bad input or a bad knowledge base.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := codeInternal

	var validationErr *pipeline.ValidationError
	var regionErr *splicing.RegionError
	var loadErr *knowledge.LoadError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		code = codeInvalidRequest
	case errors.As(err, &regionErr):
		code = codeTemplateViolation
	case errors.As(err, &loadErr):
		code = codeKnowledgeBase
	}

	var body errorBody
	body.Error.Code = code
	body.Error.Message = err.Error()
	writeJSON(w, status, body)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

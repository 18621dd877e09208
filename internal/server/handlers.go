package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jmorgan/resume-generator/internal/keywords"
	"github.com/jmorgan/resume-generator/internal/pipeline"
	"github.com/jmorgan/resume-generator/internal/types"
)

// analyzeJobRequest is the body for POST /api/analyze-job.
type analyzeJobRequest struct {
	JobDescription string `json:"job_description"`
}

// generateRequest is the body for POST /api/generate-resume.
type generateRequest struct {
	JobDescription string `json:"job_description"`
	JobTitle       string `json:"job_title,omitempty"`
	MaxProjects    int    `json:"max_projects,omitempty"`
}

// generateResponse is the success body for POST /api/generate-resume.
type generateResponse struct {
	DocumentText string               `json:"document_text"`
	Metadata     types.ResumeMetadata `json:"metadata"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	var req analyzeJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &pipeline.ValidationError{Message: "request body must be valid JSON"})
		return
	}
	if req.JobDescription == "" {
		writeError(w, &pipeline.ValidationError{Message: "job_description is required"})
		return
	}

	kws := keywords.Extract(req.JobDescription)
	writeJSON(w, http.StatusOK, map[string]any{
		"keywords": kws,
		"count":    len(kws),
	})
}

func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &pipeline.ValidationError{Message: "request body must be valid JSON"})
		return
	}

	result, err := pipeline.Generate(r.Context(), s.store, pipeline.Request{
		JobDescription: req.JobDescription,
		JobTitle:       req.JobTitle,
		MaxProjects:    req.MaxProjects,
	}, s.log)
	if err != nil {
		s.log.Warn("generation failed", zap.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		DocumentText: result.DocumentText,
		Metadata:     result.Metadata,
	})
}

func (s *Server) handleKnowledgeSummary(w http.ResponseWriter, r *http.Request) {
	kb, err := s.store.LoadAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	projectTitles := make([]string, 0, len(kb.Projects))
	for _, p := range kb.Projects {
		projectTitles = append(projectTitles, p.Title)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"positions":        len(kb.Positions),
		"projects":         len(kb.Projects),
		"skill_categories": kb.Skills.Len(),
		"project_titles":   projectTitles,
	})
}

func (s *Server) handleReload(w http.ResponseWriter, _ *http.Request) {
	s.store.ClearCache()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cache cleared"})
}

// Package pipeline orchestrates a single resume generation run: keyword
// extraction, relevance scoring, content selection, block rendering, and
// template splicing over the loaded knowledge base.
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jmorgan/resume-generator/internal/keywords"
	"github.com/jmorgan/resume-generator/internal/knowledge"
	"github.com/jmorgan/resume-generator/internal/rendering"
	"github.com/jmorgan/resume-generator/internal/selection"
	"github.com/jmorgan/resume-generator/internal/splicing"
	"github.com/jmorgan/resume-generator/internal/types"
)

// Request holds the inputs for one generation run.
type Request struct {
	JobDescription string `validate:"required"`
	JobTitle       string
	// MaxProjects optionally lowers the project entry cap for this run.
	// Zero means the default; values above the structural cap are clamped.
	MaxProjects int `validate:"gte=0"`
}

// Result is a completed generation: the full spliced document plus metadata
// describing what went into it. Callers receive either this or a typed
// failure, never a partially spliced document.
type Result struct {
	DocumentText string
	Metadata     types.ResumeMetadata
}

// ValidationError reports a rejected request. It is returned before any
// knowledge-base access happens.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Message
}

var validate = validator.New()

// Generate runs the full tailoring pipeline against the knowledge store.
// Validation errors and template-contract violations abort the run with a
// typed error; knowledge-base shape gaps degrade into metadata flags instead.
func Generate(ctx context.Context, store *knowledge.Store, req Request, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	kb, err := store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("knowledge base loaded",
		zap.Int("positions", len(kb.Positions)),
		zap.Int("projects", len(kb.Projects)),
		zap.Int("skill_categories", kb.Skills.Len()))

	kws := keywords.Extract(req.JobDescription)
	log.Info("keywords extracted", zap.Int("count", len(kws)), zap.Strings("keywords", kws))

	experience := selection.SelectExperience(kb.Positions, kws)
	projects := selection.SelectProjects(kb.Projects, kws)
	if req.MaxProjects > 0 && len(projects) > req.MaxProjects {
		projects = projects[:req.MaxProjects]
	}
	skills := selection.SelectSkills(kb.Skills, kws)

	tmpl, err := splicing.Parse(kb.Template)
	if err != nil {
		return nil, err
	}

	doc := tmpl.Splice(splicing.Blocks{
		Summary:    rendering.RenderSummary(&kb.Profile, req.JobTitle, kws),
		Experience: rendering.RenderExperienceBlock(experience),
		Projects:   rendering.RenderProjectsBlock(projects),
		Skills:     rendering.RenderSkillsBlock(skills),
	})

	meta := buildMetadata(&req, kws, experience, projects, skills)
	log.Info("resume generated",
		zap.String("run_id", meta.RunID),
		zap.Int("experience_entries", meta.ExperienceEntries),
		zap.Int("projects", meta.ProjectsIncluded),
		zap.Int("skill_lines", meta.SkillLines))

	return &Result{DocumentText: doc, Metadata: meta}, nil
}

func validateRequest(req *Request) error {
	if err := validate.Struct(req); err != nil {
		return &ValidationError{Message: "job description is required"}
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return &ValidationError{Message: "job description must not be blank"}
	}
	return nil
}

func buildMetadata(
	req *Request,
	kws []string,
	experience []selection.ExperienceEntry,
	projects []selection.ProjectEntry,
	skills *types.SkillCategories,
) types.ResumeMetadata {
	meta := types.ResumeMetadata{
		RunID:             uuid.NewString(),
		GeneratedAt:       time.Now().UTC(),
		JobTitle:          req.JobTitle,
		Keywords:          kws,
		ExperienceEntries: len(experience),
		ProjectsIncluded:  len(projects),
		SkillLines:        rendering.SkillLineCount(skills),
		EmptyExperience:   len(experience) == 0,
		EmptyProjects:     len(projects) == 0,
		EmptySkills:       skills.Len() == 0,
		SinglePage:        true,
		ATSOptimized:      true,
	}

	for i := range experience {
		if experience[i].Short() {
			meta.ShortExperienceEntries = append(meta.ShortExperienceEntries, experience[i].Position.Company)
		}
	}
	for i := range projects {
		if projects[i].Short() {
			meta.ShortProjectEntries = append(meta.ShortProjectEntries, projects[i].Project.Title)
		}
	}

	return meta
}

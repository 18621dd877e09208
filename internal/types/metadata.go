package types

import "time"

// ResumeMetadata reports what went into a generated resume. The SinglePage and
// ATSOptimized fields are declarative assertions about the output posture;
// real page-count verification is delegated to the LaTeX toolchain.
type ResumeMetadata struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	JobTitle    string    `json:"job_title,omitempty"`

	Keywords          []string `json:"keywords"`
	ExperienceEntries int      `json:"experience_entries"`
	ProjectsIncluded  int      `json:"projects_included"`
	SkillLines        int      `json:"skill_lines"`

	// Degraded cases: entries that could not reach their exact bullet count
	// even after backfill. Recorded, never fatal.
	ShortExperienceEntries []string `json:"short_experience_entries,omitempty"`
	ShortProjectEntries    []string `json:"short_project_entries,omitempty"`

	// Empty-section flags: set when the knowledge base had no data at all
	// for a section. Surfaced to the caller instead of raising an error.
	EmptyExperience bool `json:"empty_experience,omitempty"`
	EmptyProjects   bool `json:"empty_projects,omitempty"`
	EmptySkills     bool `json:"empty_skills,omitempty"`

	SinglePage   bool `json:"single_page"`
	ATSOptimized bool `json:"ats_optimized"`
}

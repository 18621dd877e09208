// Package types provides type definitions for structured data used throughout the resume generation system.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Position status values as they appear in the knowledge base.
const (
	StatusCurrent   = "current"
	StatusCompleted = "completed"
)

// Skill proficiency levels as they appear in the knowledge base.
const (
	ProficiencyAdvanced     = "Advanced"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyBeginner     = "Beginner"
)

// Profile represents the candidate's identity, education, and career summary data.
type Profile struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Location         string   `json:"location"`
	GitHub           string   `json:"github"`
	LinkedIn         string   `json:"linkedin"`
	Education        Education `json:"education"`
	CareerHighlights []string `json:"career_highlights"`
	StrongestAreas   []string `json:"strongest_areas"`
}

// Education represents a single education record.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Graduation  string `json:"graduation"`
}

// Duration holds the human-readable start/end labels for a position.
type Duration struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Position represents a single work experience entry.
// Description is the canonical source for resume bullets; Achievements
// are consumed only as backfill when descriptions run short.
type Position struct {
	ID           int      `json:"id"`
	Company      string   `json:"company"`
	Title        string   `json:"position"`
	Location     string   `json:"location"`
	Duration     Duration `json:"duration"`
	Status       string   `json:"status"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
	Achievements []string `json:"achievements,omitempty"`
}

// IsCurrent reports whether the position is still held.
func (p *Position) IsCurrent() bool {
	return p.Status == StatusCurrent
}

// DateLabel formats the position's duration for display, e.g. "Jan 2022 -- Present".
func (p *Position) DateLabel() string {
	if p.Duration.Start == "" && p.Duration.End == "" {
		return ""
	}
	end := p.Duration.End
	if end == "" {
		end = "Present"
	}
	return p.Duration.Start + " -- " + end
}

// Skill represents a single skill with proficiency and usage context.
type Skill struct {
	Name            string   `json:"name"`
	Proficiency     string   `json:"proficiency"`
	YearsExperience string   `json:"years_experience,omitempty"`
	Context         []string `json:"context,omitempty"`
}

// IsProficient reports whether the skill is held at Advanced or Intermediate level.
func (s *Skill) IsProficient() bool {
	return s.Proficiency == ProficiencyAdvanced || s.Proficiency == ProficiencyIntermediate
}

// SkillCategory represents a named group of skills.
type SkillCategory struct {
	Name   string  `json:"name"`
	Skills []Skill `json:"skills"`
}

// SkillCategories holds skill categories keyed by category identifier while
// preserving the order in which the keys were declared in the knowledge base.
type SkillCategories struct {
	Keys  []string
	ByKey map[string]SkillCategory
}

// UnmarshalJSON decodes a JSON object of categories while recording the order
// in which the keys appear. A plain map decode would randomize category order
// and with it the skills block layout.
func (sc *SkillCategories) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("skill categories: expected JSON object, got %v", tok)
	}

	sc.Keys = nil
	sc.ByKey = make(map[string]SkillCategory)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skill categories: expected string key, got %v", keyTok)
		}

		var cat SkillCategory
		if err := dec.Decode(&cat); err != nil {
			return fmt.Errorf("skill categories: decoding category %q: %w", key, err)
		}

		sc.Keys = append(sc.Keys, key)
		sc.ByKey[key] = cat
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// Get returns the category for a key, or an empty category if absent.
func (sc *SkillCategories) Get(key string) SkillCategory {
	if sc == nil || sc.ByKey == nil {
		return SkillCategory{}
	}
	return sc.ByKey[key]
}

// Len returns the number of categories.
func (sc *SkillCategories) Len() int {
	if sc == nil {
		return 0
	}
	return len(sc.Keys)
}

// Project represents a portfolio project. RepoURL is derived deterministically
// from the project title at load time; bullet points are generated per request
// during selection and never stored.
type Project struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	RepoURL string `json:"-"`
}

// KnowledgeBase aggregates all knowledge-base data loaded for a generation run.
type KnowledgeBase struct {
	Profile   Profile
	Positions []Position
	Skills    *SkillCategories
	Projects  []Project
	Template  string
}

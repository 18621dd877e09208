package selection

import (
	"github.com/jmorgan/resume-generator/internal/scoring"
	"github.com/jmorgan/resume-generator/internal/types"
)

// MaxSkillsPerCategory caps how many skills a single category may retain.
const MaxSkillsPerCategory = 8

// SelectSkills filters each skill category against the keyword set. A skill
// survives if it is textually relevant to the keywords or held at Advanced or
// Intermediate proficiency. Retained skills are ordered relevant-first, then
// by declared order within each tier, and capped at MaxSkillsPerCategory.
// Categories retaining no skills are omitted from the result entirely.
func SelectSkills(categories *types.SkillCategories, kws []string) *types.SkillCategories {
	out := &types.SkillCategories{ByKey: make(map[string]types.SkillCategory)}
	if categories == nil {
		return out
	}

	for _, key := range categories.Keys {
		cat := categories.ByKey[key]

		var relevant, proficient []types.Skill
		for _, s := range cat.Skills {
			switch {
			case scoring.SkillMatches(&s, kws):
				relevant = append(relevant, s)
			case s.IsProficient():
				proficient = append(proficient, s)
			}
		}

		retained := append(relevant, proficient...)
		if len(retained) == 0 {
			continue
		}
		if len(retained) > MaxSkillsPerCategory {
			retained = retained[:MaxSkillsPerCategory]
		}

		out.Keys = append(out.Keys, key)
		out.ByKey[key] = types.SkillCategory{Name: cat.Name, Skills: retained}
	}

	return out
}

package selection

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmorgan/resume-generator/internal/types"
)

func categoriesOf(t *testing.T, pairs ...any) *types.SkillCategories {
	t.Helper()
	sc := &types.SkillCategories{ByKey: make(map[string]types.SkillCategory)}
	for i := 0; i < len(pairs); i += 2 {
		key := pairs[i].(string)
		cat := pairs[i+1].(types.SkillCategory)
		sc.Keys = append(sc.Keys, key)
		sc.ByKey[key] = cat
	}
	return sc
}

func TestSelectSkills_RelevantSkillSurvivesRegardlessOfProficiency(t *testing.T) {
	in := categoriesOf(t, "languages", types.SkillCategory{
		Name: "Languages",
		Skills: []types.Skill{
			{Name: "Rust", Proficiency: types.ProficiencyBeginner},
		},
	})

	out := SelectSkills(in, []string{"Rust"})
	assert.Equal(t, []string{"languages"}, out.Keys)
	assert.Equal(t, "Rust", out.Get("languages").Skills[0].Name)
}

func TestSelectSkills_ProficientSkillSurvivesWithoutMatch(t *testing.T) {
	in := categoriesOf(t, "languages", types.SkillCategory{
		Name: "Languages",
		Skills: []types.Skill{
			{Name: "Haskell", Proficiency: types.ProficiencyIntermediate},
		},
	})

	out := SelectSkills(in, []string{"Go"})
	assert.Equal(t, "Haskell", out.Get("languages").Skills[0].Name)
}

func TestSelectSkills_BeginnerIrrelevantSkillDropped(t *testing.T) {
	in := categoriesOf(t, "languages", types.SkillCategory{
		Name: "Languages",
		Skills: []types.Skill{
			{Name: "Perl", Proficiency: types.ProficiencyBeginner},
		},
	})

	out := SelectSkills(in, []string{"Go"})
	assert.Zero(t, out.Len())
}

func TestSelectSkills_EmptyCategoryOmitted(t *testing.T) {
	in := categoriesOf(t,
		"keep", types.SkillCategory{Name: "Keep", Skills: []types.Skill{
			{Name: "Go", Proficiency: types.ProficiencyAdvanced},
		}},
		"drop", types.SkillCategory{Name: "Drop", Skills: []types.Skill{
			{Name: "Fortran", Proficiency: types.ProficiencyBeginner},
		}},
	)

	out := SelectSkills(in, nil)
	assert.Equal(t, []string{"keep"}, out.Keys)
	_, present := out.ByKey["drop"]
	assert.False(t, present)
}

func TestSelectSkills_RelevantOrderedBeforeProficient(t *testing.T) {
	in := categoriesOf(t, "backend", types.SkillCategory{
		Name: "Backend",
		Skills: []types.Skill{
			{Name: "Kafka", Proficiency: types.ProficiencyAdvanced},
			{Name: "PostgreSQL", Proficiency: types.ProficiencyBeginner},
		},
	})

	out := SelectSkills(in, []string{"PostgreSQL"})
	skills := out.Get("backend").Skills
	assert.Equal(t, "PostgreSQL", skills[0].Name)
	assert.Equal(t, "Kafka", skills[1].Name)
}

func TestSelectSkills_CapsAtEightPerCategory(t *testing.T) {
	var skills []types.Skill
	for i := 0; i < 12; i++ {
		skills = append(skills, types.Skill{
			Name:        fmt.Sprintf("Skill %d", i),
			Proficiency: types.ProficiencyAdvanced,
		})
	}
	in := categoriesOf(t, "tools", types.SkillCategory{Name: "Tools", Skills: skills})

	out := SelectSkills(in, nil)
	retained := out.Get("tools").Skills
	assert.Len(t, retained, MaxSkillsPerCategory)
	assert.Equal(t, "Skill 0", retained[0].Name)
	assert.Equal(t, "Skill 7", retained[7].Name)
}

func TestSelectSkills_PreservesCategoryOrder(t *testing.T) {
	in := categoriesOf(t,
		"b_second", types.SkillCategory{Skills: []types.Skill{{Name: "X", Proficiency: types.ProficiencyAdvanced}}},
		"a_first", types.SkillCategory{Skills: []types.Skill{{Name: "Y", Proficiency: types.ProficiencyAdvanced}}},
	)

	out := SelectSkills(in, nil)
	assert.Equal(t, []string{"b_second", "a_first"}, out.Keys)
}

func TestSelectSkills_NilInput(t *testing.T) {
	out := SelectSkills(nil, []string{"Go"})
	assert.Zero(t, out.Len())
}

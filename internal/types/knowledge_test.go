package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition_IsCurrent(t *testing.T) {
	assert.True(t, (&Position{Status: StatusCurrent}).IsCurrent())
	assert.False(t, (&Position{Status: StatusCompleted}).IsCurrent())
	assert.False(t, (&Position{}).IsCurrent())
}

func TestPosition_DateLabel(t *testing.T) {
	p := Position{Duration: Duration{Start: "Jan 2022", End: "Mar 2024"}}
	assert.Equal(t, "Jan 2022 -- Mar 2024", p.DateLabel())
}

func TestPosition_DateLabelOpenEnded(t *testing.T) {
	p := Position{Duration: Duration{Start: "Jan 2022"}}
	assert.Equal(t, "Jan 2022 -- Present", p.DateLabel())
}

func TestPosition_DateLabelEmpty(t *testing.T) {
	assert.Equal(t, "", (&Position{}).DateLabel())
}

func TestSkill_IsProficient(t *testing.T) {
	assert.True(t, (&Skill{Proficiency: ProficiencyAdvanced}).IsProficient())
	assert.True(t, (&Skill{Proficiency: ProficiencyIntermediate}).IsProficient())
	assert.False(t, (&Skill{Proficiency: ProficiencyBeginner}).IsProficient())
	assert.False(t, (&Skill{}).IsProficient())
}

func TestSkillCategories_UnmarshalPreservesKeyOrder(t *testing.T) {
	data := []byte(`{
		"zeta": {"name": "Zeta", "skills": [{"name": "Z", "proficiency": "Advanced"}]},
		"alpha": {"name": "Alpha", "skills": [{"name": "A", "proficiency": "Beginner"}]},
		"mid": {"name": "Mid", "skills": []}
	}`)

	var sc SkillCategories
	require.NoError(t, json.Unmarshal(data, &sc))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, sc.Keys)
	assert.Equal(t, "Zeta", sc.Get("zeta").Name)
	assert.Equal(t, "A", sc.Get("alpha").Skills[0].Name)
}

func TestSkillCategories_UnmarshalRejectsNonObject(t *testing.T) {
	var sc SkillCategories
	assert.Error(t, json.Unmarshal([]byte(`["not", "an", "object"]`), &sc))
}

func TestSkillCategories_GetAbsentKey(t *testing.T) {
	var sc SkillCategories
	assert.Empty(t, sc.Get("missing").Skills)
}

func TestSkillCategories_NilSafe(t *testing.T) {
	var sc *SkillCategories
	assert.Zero(t, sc.Len())
	assert.Empty(t, sc.Get("anything").Skills)
}

func TestPosition_UnmarshalTitleFromPositionField(t *testing.T) {
	data := []byte(`{"company": "Northwind Logistics", "position": "Senior Software Engineer"}`)

	var p Position
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, "Senior Software Engineer", p.Title)
}

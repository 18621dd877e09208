package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ProfileConforms(t *testing.T) {
	doc := []byte(`{"profile": {"name": "Jordan Reyes", "email": "jordan@example.com"}}`)
	assert.NoError(t, Validate(Profile, doc))
}

func TestValidate_ProfileWrapperRequired(t *testing.T) {
	doc := []byte(`{"name": "Jordan Reyes"}`)

	err := Validate(Profile, doc)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, Profile, ve.Schema)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidate_WorkExperienceStatusEnum(t *testing.T) {
	doc := []byte(`{
		"work_experience": {
			"positions": [{"company": "X", "position": "Engineer", "status": "retired"}]
		}
	}`)

	err := Validate(WorkExperience, doc)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidate_WorkExperienceConforms(t *testing.T) {
	doc := []byte(`{
		"work_experience": {
			"positions": [{
				"id": 1,
				"company": "Northwind Logistics",
				"position": "Senior Software Engineer",
				"status": "current",
				"description": ["built the tracking API"],
				"technologies": ["Go", "AWS"]
			}]
		}
	}`)
	assert.NoError(t, Validate(WorkExperience, doc))
}

func TestValidate_SkillsProficiencyEnum(t *testing.T) {
	doc := []byte(`{
		"skills": {
			"categories": {
				"backend": {"name": "Backend", "skills": [{"name": "Go", "proficiency": "Wizard"}]}
			}
		}
	}`)

	err := Validate(Skills, doc)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidate_ProjectConforms(t *testing.T) {
	doc := []byte(`{"project": {"title": "Shipment Tracker", "summary": "Tracks shipments."}}`)
	assert.NoError(t, Validate(Project, doc))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nonexistent", []byte(`{}`))
	var sle *SchemaLoadError
	require.ErrorAs(t, err, &sle)
	assert.Equal(t, "nonexistent", sle.Schema)
}

func TestValidationError_MessageListsFields(t *testing.T) {
	ve := &ValidationError{
		Schema: Profile,
		Errors: []FieldError{{Field: "profile.name", Message: "Invalid type"}},
	}
	assert.Contains(t, ve.Error(), "profile.name")
	assert.Contains(t, ve.Error(), "Invalid type")
}

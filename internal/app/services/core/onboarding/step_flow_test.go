package onboarding

import (
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stepIDs(steps []StepDefinition) []string {
	ids := make([]string, 0, len(steps))
	for _, step := range steps {
		ids = append(ids, step.ID)
	}
	return ids
}

func truePtr() *bool {
	v := true
	return &v
}

func falsePtr() *bool {
	v := false
	return &v
}

func TestVisibleSteps_ManualPath(t *testing.T) {
	doc := &models.ProfileDocument{DataSource: constvars.DataSourceManual}

	ids := stepIDs(VisibleSteps(doc))

	t.Run("shows every check step and lifestyle", func(t *testing.T) {
		assert.Contains(t, ids, constvars.StepConditionsCheck)
		assert.Contains(t, ids, constvars.StepAllergiesCheck)
		assert.Contains(t, ids, constvars.StepSurgeriesCheck)
		assert.Contains(t, ids, constvars.StepTreatmentCheck)
		assert.Contains(t, ids, constvars.StepFamilyCheck)
		assert.Contains(t, ids, constvars.StepLifestyle)
	})

	t.Run("hides detail steps until their gate is answered yes", func(t *testing.T) {
		assert.NotContains(t, ids, constvars.StepConditionsDetail)
		assert.NotContains(t, ids, constvars.StepAllergiesDetail)
		assert.NotContains(t, ids, constvars.StepMedicationsDet)
	})

	t.Run("gate answered yes reveals the detail step right after its check", func(t *testing.T) {
		doc.HasMedicalConditions = truePtr()
		gatedIDs := stepIDs(VisibleSteps(doc))

		checkIdx := indexOf(gatedIDs, constvars.StepConditionsCheck)
		detailIdx := indexOf(gatedIDs, constvars.StepConditionsDetail)
		assert.GreaterOrEqual(t, detailIdx, 0)
		assert.Equal(t, checkIdx+1, detailIdx)
	})

	t.Run("gate answered no keeps the detail step hidden", func(t *testing.T) {
		doc.HasMedicalConditions = falsePtr()
		assert.NotContains(t, stepIDs(VisibleSteps(doc)), constvars.StepConditionsDetail)
	})
}

func TestVisibleSteps_EHRPath(t *testing.T) {
	t.Run("skips basic info when the import already carried a first name", func(t *testing.T) {
		doc := &models.ProfileDocument{
			DataSource: constvars.DataSourceEHRUpload,
			BasicInfo:  &models.BasicInfo{FirstName: "Dana"},
		}
		assert.NotContains(t, stepIDs(VisibleSteps(doc)), constvars.StepBasicInfo)
	})

	t.Run("still shows basic info when the import was incomplete", func(t *testing.T) {
		doc := &models.ProfileDocument{DataSource: constvars.DataSourceEHRUpload}
		assert.Contains(t, stepIDs(VisibleSteps(doc)), constvars.StepBasicInfo)
	})

	t.Run("still shows demographics when date of birth is missing", func(t *testing.T) {
		doc := &models.ProfileDocument{
			DataSource: constvars.DataSourceEHRUpload,
			BasicInfo:  &models.BasicInfo{FirstName: "Dana", BiologicalSex: constvars.GenderFemale},
		}
		assert.Contains(t, stepIDs(VisibleSteps(doc)), constvars.StepDemographics)
	})

	t.Run("hides manual-only historical steps", func(t *testing.T) {
		doc := &models.ProfileDocument{
			DataSource:           constvars.DataSourceEHRUpload,
			HasMedicalConditions: truePtr(),
		}
		ids := stepIDs(VisibleSteps(doc))
		assert.NotContains(t, ids, constvars.StepConditionsCheck)
		assert.NotContains(t, ids, constvars.StepConditionsDetail)
		assert.NotContains(t, ids, constvars.StepLifestyle)
	})

	t.Run("medications detail opens on the import path too", func(t *testing.T) {
		doc := &models.ProfileDocument{
			DataSource:       constvars.DataSourceEHRUpload,
			TakesMedications: truePtr(),
		}
		assert.Contains(t, stepIDs(VisibleSteps(doc)), constvars.StepMedicationsDet)
	})
}

func TestVisibleSteps_AlwaysPresent(t *testing.T) {
	for _, source := range []string{constvars.DataSourceManual, constvars.DataSourceEHRUpload, ""} {
		doc := &models.ProfileDocument{DataSource: source}
		ids := stepIDs(VisibleSteps(doc))

		assert.Contains(t, ids, constvars.StepDataSource, "source %q", source)
		assert.Contains(t, ids, constvars.StepPhysical, "source %q", source)
		assert.Contains(t, ids, constvars.StepMedicationsCheck, "source %q", source)
		assert.Contains(t, ids, constvars.StepGoals, "source %q", source)
		assert.Contains(t, ids, constvars.StepPreferences, "source %q", source)
		assert.Contains(t, ids, constvars.StepComplete, "source %q", source)
	}
}

func TestVisibleSteps_OrderedSubsequence(t *testing.T) {
	doc := &models.ProfileDocument{
		DataSource:           constvars.DataSourceManual,
		HasMedicalConditions: truePtr(),
		TakesMedications:     truePtr(),
		HasAllergies:         truePtr(),
		HasSurgicalHistory:   truePtr(),
		IsReceivingTreatment: truePtr(),
		HasFamilyHistory:     truePtr(),
	}

	visible := VisibleSteps(doc)

	t.Run("preserves master order", func(t *testing.T) {
		cursor := 0
		for _, step := range visible {
			found := false
			for ; cursor < len(masterSteps); cursor++ {
				if masterSteps[cursor].ID == step.ID {
					found = true
					cursor++
					break
				}
			}
			assert.True(t, found, "step %s out of order", step.ID)
		}
	})

	t.Run("fully opened manual path shows the whole wizard", func(t *testing.T) {
		assert.Len(t, visible, len(masterSteps))
	})

	t.Run("idempotent for the same document", func(t *testing.T) {
		assert.Equal(t, stepIDs(visible), stepIDs(VisibleSteps(doc)))
	})
}

func TestIsStepValid(t *testing.T) {
	complete := &models.ProfileDocument{
		DataSource: constvars.DataSourceManual,
		BasicInfo: &models.BasicInfo{
			FirstName:     "Dana",
			LastName:      "Rivera",
			DateOfBirth:   "1990-05-15",
			BiologicalSex: constvars.GenderFemale,
		},
		PhysicalMeasurements: &models.PhysicalMeasurements{Height: 170, HeightUnit: constvars.HeightUnitCm, Weight: 65, WeightUnit: constvars.WeightUnitKg},
		MedicalConditions:    []models.MedicalCondition{{Name: "asthma"}},
		Medications:          []models.Medication{{Name: "albuterol"}},
		Allergies:            []models.Allergy{{Allergen: "penicillin"}},
		Surgeries:            []models.Surgery{{Procedure: "appendectomy"}},
		FamilyHistory:        []models.FamilyHistoryEntry{{Relation: "mother", Condition: "hypertension"}},
		CurrentTreatment:     &models.Treatment{Type: "physical_therapy"},
		Lifestyle:            &models.Lifestyle{ActivityLevel: "moderate"},
	}
	empty := &models.ProfileDocument{}

	tests := []struct {
		name   string
		stepID string
		doc    *models.ProfileDocument
		want   bool
	}{
		{"data source unanswered", constvars.StepDataSource, empty, false},
		{"data source chosen", constvars.StepDataSource, complete, true},
		{"basic info missing last name", constvars.StepBasicInfo, &models.ProfileDocument{BasicInfo: &models.BasicInfo{FirstName: "Dana"}}, false},
		{"basic info complete", constvars.StepBasicInfo, complete, true},
		{"demographics missing sex", constvars.StepDemographics, &models.ProfileDocument{BasicInfo: &models.BasicInfo{DateOfBirth: "1990-05-15"}}, false},
		{"demographics complete", constvars.StepDemographics, complete, true},
		{"physical zero weight", constvars.StepPhysical, &models.ProfileDocument{PhysicalMeasurements: &models.PhysicalMeasurements{Height: 170}}, false},
		{"physical complete", constvars.StepPhysical, complete, true},
		{"check steps valid even unanswered", constvars.StepConditionsCheck, empty, true},
		{"conditions detail needs entries", constvars.StepConditionsDetail, empty, false},
		{"conditions detail with entries", constvars.StepConditionsDetail, complete, true},
		{"medications detail needs entries", constvars.StepMedicationsDet, empty, false},
		{"treatment detail needs treatment", constvars.StepTreatmentDetail, empty, false},
		{"treatment detail with treatment", constvars.StepTreatmentDetail, complete, true},
		{"lifestyle needs activity level", constvars.StepLifestyle, empty, false},
		{"lifestyle complete", constvars.StepLifestyle, complete, true},
		{"goals always valid", constvars.StepGoals, empty, true},
		{"preferences always valid", constvars.StepPreferences, empty, true},
		{"complete always valid", constvars.StepComplete, empty, true},
		{"unknown step invalid", "totally_unknown", complete, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStepValid(tt.stepID, tt.doc))
		})
	}
}

// Imported medications satisfy the detail step with no manual entry.
func TestIsStepValid_ImportedMedications(t *testing.T) {
	doc := &models.ProfileDocument{DataSource: constvars.DataSourceEHRUpload}
	doc.Merge(&models.ProfileDocument{
		Medications:      []models.Medication{{Name: "metformin"}, {Name: "lisinopril"}},
		TakesMedications: truePtr(),
	})

	assert.Contains(t, stepIDs(VisibleSteps(doc)), constvars.StepMedicationsDet)
	assert.True(t, IsStepValid(constvars.StepMedicationsDet, doc))
}

func TestKnownStep(t *testing.T) {
	assert.True(t, KnownStep(constvars.StepDataSource))
	assert.True(t, KnownStep(constvars.StepComplete))
	assert.False(t, KnownStep("nonsense"))
}

func indexOf(ids []string, id string) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}

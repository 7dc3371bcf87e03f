package onboarding

import (
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildProfileRecord(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	doc := &models.ProfileDocument{
		DataSource: constvars.DataSourceManual,
		BasicInfo: &models.BasicInfo{
			FirstName:     "Dana",
			LastName:      "Rivera",
			DateOfBirth:   "1990-05-15",
			BiologicalSex: "F",
		},
		PhysicalMeasurements: &models.PhysicalMeasurements{
			Height:     70,
			HeightUnit: constvars.HeightUnitIn,
			Weight:     150,
			WeightUnit: constvars.WeightUnitLb,
		},
		Medications: []models.Medication{{Name: "metformin"}},
		HealthGoals: []models.HealthGoal{
			{Category: "fitness", Title: "Run a 5k"},
			{Category: "weight", Title: "Lose 5 kg"},
		},
		CurrentTreatment: &models.Treatment{Type: "physical_therapy", Description: "knee rehab twice a week"},
		Preferences:      &models.Preferences{GoalNarrative: "get back to running", Motivations: []string{"family"}},
	}

	record := BuildProfileRecord("user-1", doc, now)

	t.Run("joins the name and trims it", func(t *testing.T) {
		assert.Equal(t, "Dana Rivera", record.Name)
	})

	t.Run("age counts whole years at the reference date", func(t *testing.T) {
		assert.Equal(t, 34, record.Age)
	})

	t.Run("normalizes gender and units", func(t *testing.T) {
		assert.Equal(t, constvars.GenderFemale, record.Gender)
		assert.Equal(t, 177.8, record.Height)
		assert.Equal(t, 68.0, record.Weight)
	})

	t.Run("joins goal titles", func(t *testing.T) {
		assert.Equal(t, "Run a 5k, Lose 5 kg", record.Goals)
	})

	t.Run("physical therapy description carries over", func(t *testing.T) {
		assert.Equal(t, "knee rehab twice a week", record.PhysicalTherapy)
	})

	t.Run("comprehensive data keeps the full document", func(t *testing.T) {
		assert.Equal(t, *doc, record.ComprehensiveData.Profile)
		assert.Equal(t, doc.Medications, record.ComprehensiveData.RecentData.CurrentMedications)
		assert.Equal(t, "get back to running", record.ComprehensiveData.Goals.Narrative)
	})

	t.Run("stamps both timestamps with the reference time", func(t *testing.T) {
		assert.Equal(t, now, record.CreatedAt)
		assert.Equal(t, now, record.UpdatedAt)
	})
}

func TestBuildProfileRecord_SparseDocument(t *testing.T) {
	now := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)
	doc := &models.ProfileDocument{DataSource: constvars.DataSourceManual}

	record := BuildProfileRecord("user-2", doc, now)

	t.Run("missing sections collapse to zero values", func(t *testing.T) {
		assert.Equal(t, "", record.Name)
		assert.Equal(t, 0, record.Age)
		assert.Equal(t, "", record.Gender)
		assert.Equal(t, "", record.Goals)
		assert.Equal(t, "", record.PhysicalTherapy)
	})

	t.Run("collection fields are empty slices, never nil", func(t *testing.T) {
		assert.NotNil(t, record.ComprehensiveData.HistoricalData.Conditions)
		assert.NotNil(t, record.ComprehensiveData.HistoricalData.Allergies)
		assert.NotNil(t, record.ComprehensiveData.HistoricalData.Surgeries)
		assert.NotNil(t, record.ComprehensiveData.HistoricalData.FamilyHistory)
		assert.NotNil(t, record.ComprehensiveData.RecentData.CurrentMedications)
		assert.NotNil(t, record.ComprehensiveData.Goals.Goals)
	})
}

func TestBuildProfileRecord_GenderMapping(t *testing.T) {
	now := time.Now()
	tests := []struct {
		input string
		want  string
	}{
		{"male", constvars.GenderMale},
		{"M", constvars.GenderMale},
		{"female", constvars.GenderFemale},
		{"f", constvars.GenderFemale},
		{"nonbinary", constvars.GenderOther},
		{"", ""},
	}

	for _, tt := range tests {
		doc := &models.ProfileDocument{BasicInfo: &models.BasicInfo{BiologicalSex: tt.input}}
		record := BuildProfileRecord("user-3", doc, now)
		assert.Equal(t, tt.want, record.Gender, "input %q", tt.input)
	}
}

func TestBuildProfileRecord_TreatmentTypeFilter(t *testing.T) {
	now := time.Now()
	doc := &models.ProfileDocument{
		CurrentTreatment: &models.Treatment{Type: "medication_review", Description: "quarterly review"},
	}

	record := BuildProfileRecord("user-4", doc, now)

	assert.Equal(t, "", record.PhysicalTherapy)
	assert.Equal(t, doc.CurrentTreatment, record.ComprehensiveData.RecentData.CurrentTreatment)
}

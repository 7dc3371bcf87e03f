package ehrimport

import (
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/constvars"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func decodeDoc(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var doc map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestParse_InsufficientDocuments(t *testing.T) {
	t.Run("nil document", func(t *testing.T) {
		assert.Nil(t, Parse(nil))
	})

	t.Run("empty document", func(t *testing.T) {
		assert.Nil(t, Parse(map[string]interface{}{}))
	})

	t.Run("demographics without a name", func(t *testing.T) {
		doc := decodeDoc(t, `{"demographics": {"dateOfBirth": "1990-05-15"}}`)
		assert.Nil(t, Parse(doc))
	})

	t.Run("sections without demographics", func(t *testing.T) {
		doc := decodeDoc(t, `{"medications": [{"name": "metformin"}]}`)
		assert.Nil(t, Parse(doc))
	})
}

func TestParse_MinimalDocument(t *testing.T) {
	doc := decodeDoc(t, `{"demographics": {"firstName": "Dana"}}`)

	result := Parse(doc)

	assert.NotNil(t, result)
	assert.Equal(t, "Dana", result.Demographics.FirstName)

	t.Run("missing sections become empty collections", func(t *testing.T) {
		assert.Empty(t, result.Conditions)
		assert.NotNil(t, result.Conditions)
		assert.Empty(t, result.Medications)
		assert.NotNil(t, result.Medications)
		assert.Empty(t, result.Allergies)
		assert.Empty(t, result.Surgeries)
		assert.Empty(t, result.FamilyHistory)
		assert.Nil(t, result.Lifestyle)
	})
}

func TestParse_Demographics(t *testing.T) {
	t.Run("splits a single display name", func(t *testing.T) {
		doc := decodeDoc(t, `{"patient": {"name": "Dana Maria Rivera", "gender": "F", "dob": "1990-05-15"}}`)

		result := Parse(doc)

		assert.NotNil(t, result)
		assert.Equal(t, "Dana", result.Demographics.FirstName)
		assert.Equal(t, "Maria Rivera", result.Demographics.LastName)
		assert.Equal(t, constvars.GenderFemale, result.Demographics.BiologicalSex)
		assert.Equal(t, "1990-05-15", result.Demographics.DateOfBirth)
	})

	t.Run("accepts snake_case keys", func(t *testing.T) {
		doc := decodeDoc(t, `{"patient_info": {"first_name": "Dana", "last_name": "Rivera", "date_of_birth": "1990-05-15", "biological_sex": "female"}}`)

		result := Parse(doc)

		assert.NotNil(t, result)
		assert.Equal(t, "Dana", result.Demographics.FirstName)
		assert.Equal(t, "Rivera", result.Demographics.LastName)
		assert.Equal(t, "1990-05-15", result.Demographics.DateOfBirth)
	})

	t.Run("drops a date of birth in a vendor layout", func(t *testing.T) {
		doc := decodeDoc(t, `{"demographics": {"firstName": "Dana", "dob": "05/15/1990"}}`)

		result := Parse(doc)

		assert.NotNil(t, result)
		assert.Equal(t, "", result.Demographics.DateOfBirth)
	})

	t.Run("maps unknown sex labels to other", func(t *testing.T) {
		doc := decodeDoc(t, `{"demographics": {"firstName": "Dana", "sex": "nonbinary"}}`)
		assert.Equal(t, constvars.GenderOther, Parse(doc).Demographics.BiologicalSex)
	})
}

func TestParse_Sections(t *testing.T) {
	doc := decodeDoc(t, `{
		"demographics": {"firstName": "Dana", "lastName": "Rivera"},
		"diagnoses": [
			{"diagnosis_description": "Type 2 diabetes", "clinical_status": "Chronic", "onset_date": "2019-03-01"},
			{"diagnosis_description": "Seasonal rhinitis"},
			{"status": "active"}
		],
		"medications": [
			{"name": "metformin", "dose": "500mg", "sig": "twice daily"},
			{"drug_name": "lisinopril"}
		],
		"allergies": [
			{"substance": "penicillin", "criticality": "high"},
			{"allergen": "pollen"}
		],
		"procedures": [{"description": "Appendectomy", "date": "2010-07-20"}],
		"family_history": [{"relative": "mother", "diagnosis": "hypertension"}],
		"social_history": {"activity_level": "Moderate", "smoking_status": "Never", "sleep_hours": 7.5}
	}`)

	result := Parse(doc)
	assert.NotNil(t, result)

	t.Run("conditions keep vendor spellings and drop nameless entries", func(t *testing.T) {
		assert.Len(t, result.Conditions, 2)
		assert.Equal(t, "Type 2 diabetes", result.Conditions[0].Name)
		assert.Equal(t, constvars.ConditionStatusChronic, result.Conditions[0].Status)
		assert.Equal(t, "2019-03-01", result.Conditions[0].DiagnosedDate)
	})

	t.Run("missing condition status defaults to active", func(t *testing.T) {
		assert.Equal(t, constvars.ConditionStatusActive, result.Conditions[1].Status)
	})

	t.Run("medications map dose and sig", func(t *testing.T) {
		assert.Len(t, result.Medications, 2)
		assert.Equal(t, "500mg", result.Medications[0].Dosage)
		assert.Equal(t, "twice daily", result.Medications[0].Frequency)
		assert.Equal(t, "lisinopril", result.Medications[1].Name)
	})

	t.Run("allergy severity normalizes with a moderate default", func(t *testing.T) {
		assert.Equal(t, constvars.SeveritySevere, result.Allergies[0].Severity)
		assert.Equal(t, constvars.SeverityModerate, result.Allergies[1].Severity)
	})

	t.Run("surgeries and family history carry over", func(t *testing.T) {
		assert.Equal(t, "Appendectomy", result.Surgeries[0].Procedure)
		assert.Equal(t, "mother", result.FamilyHistory[0].Relation)
		assert.Equal(t, "hypertension", result.FamilyHistory[0].Condition)
	})

	t.Run("lifestyle labels lowercase", func(t *testing.T) {
		assert.Equal(t, "moderate", result.Lifestyle.ActivityLevel)
		assert.Equal(t, "never", result.Lifestyle.SmokingStatus)
		assert.Equal(t, 7.5, result.Lifestyle.AverageSleepHours)
	})
}

func TestToProfileDocument(t *testing.T) {
	t.Run("nil result", func(t *testing.T) {
		assert.Nil(t, ToProfileDocument(nil))
	})

	t.Run("asserts gate flags only for populated sections", func(t *testing.T) {
		result := &models.EHRImportResult{
			Demographics: models.EHRDemographics{FirstName: "Dana", LastName: "Rivera"},
			Medications:  []models.Medication{{Name: "metformin"}, {Name: "lisinopril"}},
		}

		doc := ToProfileDocument(result)

		assert.Equal(t, constvars.DataSourceEHRUpload, doc.DataSource)
		assert.Equal(t, "Dana", doc.BasicInfo.FirstName)

		assert.NotNil(t, doc.TakesMedications)
		assert.True(t, *doc.TakesMedications)
		assert.Len(t, doc.Medications, 2)

		assert.Nil(t, doc.HasMedicalConditions)
		assert.Nil(t, doc.HasAllergies)
		assert.Nil(t, doc.HasSurgicalHistory)
		assert.Nil(t, doc.HasFamilyHistory)
	})
}

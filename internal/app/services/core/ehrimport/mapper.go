package ehrimport

import (
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/utils"
	"strings"
)

// Parse normalizes an already-decoded EHR export into an EHRImportResult.
// It returns nil when the document lacks the minimum demographics block
// (a patient name). Missing secondary sections map to empty collections,
// partial exports are the expected case rather than an error.
//
// Key names vary between EHR vendors, so every field lookup accepts the
// camelCase, snake_case, and short-form spellings seen in real exports.
func Parse(doc map[string]interface{}) *models.EHRImportResult {
	if doc == nil {
		return nil
	}

	demoRaw := objectField(doc, "demographics", "patient", "patientInfo", "patient_info")
	demographics, ok := parseDemographics(demoRaw)
	if !ok {
		return nil
	}

	result := &models.EHRImportResult{
		Demographics:  demographics,
		Conditions:    []models.MedicalCondition{},
		Medications:   []models.Medication{},
		Allergies:     []models.Allergy{},
		Surgeries:     []models.Surgery{},
		FamilyHistory: []models.FamilyHistoryEntry{},
	}

	for _, entry := range arrayField(doc, "medicalConditions", "medical_conditions", "conditions", "diagnoses") {
		if condition, ok := parseCondition(entry); ok {
			result.Conditions = append(result.Conditions, condition)
		}
	}
	for _, entry := range arrayField(doc, "medications", "currentMedications", "current_medications") {
		if medication, ok := parseMedication(entry); ok {
			result.Medications = append(result.Medications, medication)
		}
	}
	for _, entry := range arrayField(doc, "allergies") {
		if allergy, ok := parseAllergy(entry); ok {
			result.Allergies = append(result.Allergies, allergy)
		}
	}
	for _, entry := range arrayField(doc, "surgeries", "procedures", "surgicalHistory", "surgical_history") {
		if surgery, ok := parseSurgery(entry); ok {
			result.Surgeries = append(result.Surgeries, surgery)
		}
	}
	for _, entry := range arrayField(doc, "familyHistory", "family_history") {
		if family, ok := parseFamilyHistory(entry); ok {
			result.FamilyHistory = append(result.FamilyHistory, family)
		}
	}

	if lifestyleRaw := objectField(doc, "lifestyle", "socialHistory", "social_history"); lifestyleRaw != nil {
		result.Lifestyle = parseLifestyle(lifestyleRaw)
	}

	return result
}

// ToProfileDocument converts an import result into the partial profile update
// the wizard merges. Gate flags are only asserted for sections the export
// actually carried, so an empty section never answers a question the user has
// not been asked.
func ToProfileDocument(result *models.EHRImportResult) *models.ProfileDocument {
	if result == nil {
		return nil
	}

	doc := &models.ProfileDocument{
		DataSource: constvars.DataSourceEHRUpload,
		BasicInfo: &models.BasicInfo{
			FirstName:     result.Demographics.FirstName,
			LastName:      result.Demographics.LastName,
			PreferredName: result.Demographics.PreferredName,
			DateOfBirth:   result.Demographics.DateOfBirth,
			BiologicalSex: result.Demographics.BiologicalSex,
		},
		Lifestyle: result.Lifestyle,
	}

	if len(result.Conditions) > 0 {
		doc.MedicalConditions = result.Conditions
		doc.HasMedicalConditions = boolPtr(true)
	}
	if len(result.Medications) > 0 {
		doc.Medications = result.Medications
		doc.TakesMedications = boolPtr(true)
	}
	if len(result.Allergies) > 0 {
		doc.Allergies = result.Allergies
		doc.HasAllergies = boolPtr(true)
	}
	if len(result.Surgeries) > 0 {
		doc.Surgeries = result.Surgeries
		doc.HasSurgicalHistory = boolPtr(true)
	}
	if len(result.FamilyHistory) > 0 {
		doc.FamilyHistory = result.FamilyHistory
		doc.HasFamilyHistory = boolPtr(true)
	}

	return doc
}

func parseDemographics(raw map[string]interface{}) (models.EHRDemographics, bool) {
	if raw == nil {
		return models.EHRDemographics{}, false
	}

	demographics := models.EHRDemographics{
		FirstName:     stringField(raw, "firstName", "first_name", "givenName", "given_name"),
		LastName:      stringField(raw, "lastName", "last_name", "familyName", "family_name"),
		PreferredName: stringField(raw, "preferredName", "preferred_name", "nickname"),
		DateOfBirth:   dateField(raw, "dateOfBirth", "date_of_birth", "dob", "birthDate", "birth_date"),
		BiologicalSex: normalizeSex(stringField(raw, "biologicalSex", "biological_sex", "sex", "gender")),
	}

	// Many exports carry a single display name instead of split fields.
	if demographics.FirstName == "" {
		if name := stringField(raw, "name", "fullName", "full_name"); name != "" {
			parts := strings.Fields(name)
			demographics.FirstName = parts[0]
			if len(parts) > 1 {
				demographics.LastName = strings.Join(parts[1:], " ")
			}
		}
	}

	if demographics.FirstName == "" {
		return models.EHRDemographics{}, false
	}
	return demographics, true
}

func parseCondition(raw map[string]interface{}) (models.MedicalCondition, bool) {
	name := stringField(raw, "name", "condition", "description", "diagnosis", "diagnosisDescription", "diagnosis_description")
	if name == "" {
		return models.MedicalCondition{}, false
	}
	return models.MedicalCondition{
		Name:          name,
		Status:        normalizeStatus(stringField(raw, "status", "clinicalStatus", "clinical_status")),
		DiagnosedDate: dateField(raw, "diagnosedDate", "diagnosed_date", "onsetDate", "onset_date", "date"),
		Notes:         stringField(raw, "notes", "note", "clinicalNote", "clinical_note"),
	}, true
}

func parseMedication(raw map[string]interface{}) (models.Medication, bool) {
	name := stringField(raw, "name", "medication", "drug", "drugName", "drug_name")
	if name == "" {
		return models.Medication{}, false
	}
	return models.Medication{
		Name:      name,
		Dosage:    stringField(raw, "dosage", "dose", "strength"),
		Frequency: stringField(raw, "frequency", "schedule", "sig"),
		Reason:    stringField(raw, "reason", "indication", "for"),
	}, true
}

func parseAllergy(raw map[string]interface{}) (models.Allergy, bool) {
	allergen := stringField(raw, "allergen", "substance", "name")
	if allergen == "" {
		return models.Allergy{}, false
	}
	return models.Allergy{
		Allergen: allergen,
		Reaction: stringField(raw, "reaction", "manifestation"),
		Severity: normalizeSeverity(stringField(raw, "severity", "criticality")),
	}, true
}

func parseSurgery(raw map[string]interface{}) (models.Surgery, bool) {
	procedure := stringField(raw, "procedure", "name", "description")
	if procedure == "" {
		return models.Surgery{}, false
	}
	return models.Surgery{
		Procedure: procedure,
		Date:      dateField(raw, "date", "performedDate", "performed_date"),
		Notes:     stringField(raw, "notes", "note"),
	}, true
}

func parseFamilyHistory(raw map[string]interface{}) (models.FamilyHistoryEntry, bool) {
	condition := stringField(raw, "condition", "diagnosis", "name")
	if condition == "" {
		return models.FamilyHistoryEntry{}, false
	}
	return models.FamilyHistoryEntry{
		Relation:  stringField(raw, "relation", "relationship", "relative"),
		Condition: condition,
		Notes:     stringField(raw, "notes", "note"),
	}, true
}

func parseLifestyle(raw map[string]interface{}) *models.Lifestyle {
	return &models.Lifestyle{
		ActivityLevel:     strings.ToLower(stringField(raw, "activityLevel", "activity_level")),
		ExerciseFrequency: stringField(raw, "exerciseFrequency", "exercise_frequency"),
		AverageSleepHours: numberField(raw, "averageSleepHours", "average_sleep_hours", "sleepHours", "sleep_hours"),
		SmokingStatus:     strings.ToLower(stringField(raw, "smokingStatus", "smoking_status", "smoking")),
		AlcoholFrequency:  strings.ToLower(stringField(raw, "alcoholFrequency", "alcohol_frequency", "alcohol")),
	}
}

// normalizeSeverity lowercases a vendor severity label and collapses unknown
// values to moderate, the safest assumption for surfacing an allergy.
func normalizeSeverity(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case constvars.SeverityMild, "low":
		return constvars.SeverityMild
	case constvars.SeveritySevere, "high", "critical":
		return constvars.SeveritySevere
	default:
		return constvars.SeverityModerate
	}
}

func normalizeStatus(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case constvars.ConditionStatusResolved, "inactive", "remission":
		return constvars.ConditionStatusResolved
	case constvars.ConditionStatusChronic:
		return constvars.ConditionStatusChronic
	default:
		return constvars.ConditionStatusActive
	}
}

func normalizeSex(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case constvars.GenderMale, "m":
		return constvars.GenderMale
	case constvars.GenderFemale, "f":
		return constvars.GenderFemale
	case "":
		return ""
	default:
		return constvars.GenderOther
	}
}

func objectField(raw map[string]interface{}, keys ...string) map[string]interface{} {
	for _, key := range keys {
		if nested, ok := raw[key].(map[string]interface{}); ok {
			return nested
		}
	}
	return nil
}

func arrayField(raw map[string]interface{}, keys ...string) []map[string]interface{} {
	for _, key := range keys {
		items, ok := raw[key].([]interface{})
		if !ok {
			continue
		}
		entries := make([]map[string]interface{}, 0, len(items))
		for _, item := range items {
			if entry, ok := item.(map[string]interface{}); ok {
				entries = append(entries, entry)
			}
		}
		return entries
	}
	return nil
}

func stringField(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value, ok := raw[key].(string); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// dateField keeps only values already in ISO-8601 date form. A vendor date
// in another layout is dropped rather than guessed at.
func dateField(raw map[string]interface{}, keys ...string) string {
	value := stringField(raw, keys...)
	if value == "" || !utils.IsISODate(value) {
		return ""
	}
	return value
}

func numberField(raw map[string]interface{}, keys ...string) float64 {
	for _, key := range keys {
		if value, ok := raw[key].(float64); ok {
			return value
		}
	}
	return 0
}

func boolPtr(value bool) *bool {
	return &value
}

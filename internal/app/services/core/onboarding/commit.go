package onboarding

import (
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/utils"
	"strings"
	"time"
)

// BuildProfileRecord projects a finished wizard document into the record the
// persistence backend stores. It is a pure function: every user input was
// already merged into the document at entry time, so no extra state is folded
// in here. The flat top-level fields replicate the legacy shape the first
// backend version understood and are submitted alongside the structured
// comprehensive document.
func BuildProfileRecord(userID string, doc *models.ProfileDocument, now time.Time) *models.Profile {
	record := &models.Profile{
		UserID: userID,
		Age:    utils.AgeAt(dateOfBirth(doc), now),
		Gender: mapGender(doc),
	}

	if doc.BasicInfo != nil {
		record.Name = strings.TrimSpace(doc.BasicInfo.FirstName + " " + doc.BasicInfo.LastName)
	}

	if doc.PhysicalMeasurements != nil {
		record.Weight = utils.WeightToKg(doc.PhysicalMeasurements.Weight, doc.PhysicalMeasurements.WeightUnit)
		record.Height = utils.HeightToCm(doc.PhysicalMeasurements.Height, doc.PhysicalMeasurements.HeightUnit)
	}

	titles := make([]string, 0, len(doc.HealthGoals))
	for _, goal := range doc.HealthGoals {
		titles = append(titles, goal.Title)
	}
	record.Goals = strings.Join(titles, ", ")

	if doc.CurrentTreatment != nil && doc.CurrentTreatment.Type == "physical_therapy" {
		record.PhysicalTherapy = doc.CurrentTreatment.Description
	}

	goalsData := models.GoalsData{Goals: emptyIfNil(doc.HealthGoals)}
	if doc.Preferences != nil {
		goalsData.Narrative = doc.Preferences.GoalNarrative
		goalsData.Motivations = doc.Preferences.Motivations
		goalsData.Challenges = doc.Preferences.Challenges
	}

	record.ComprehensiveData = models.ComprehensiveData{
		Profile: *doc,
		HistoricalData: models.HistoricalData{
			Conditions:    emptyIfNil(doc.MedicalConditions),
			Surgeries:     emptyIfNil(doc.Surgeries),
			Allergies:     emptyIfNil(doc.Allergies),
			FamilyHistory: emptyIfNil(doc.FamilyHistory),
		},
		RecentData: models.RecentData{
			Measurements:       doc.PhysicalMeasurements,
			CurrentMedications: emptyIfNil(doc.Medications),
			CurrentTreatment:   doc.CurrentTreatment,
			Lifestyle:          doc.Lifestyle,
		},
		Goals: goalsData,
	}

	record.CreatedAt = now
	record.UpdatedAt = now
	return record
}

func dateOfBirth(doc *models.ProfileDocument) string {
	if doc.BasicInfo == nil {
		return ""
	}
	return doc.BasicInfo.DateOfBirth
}

func mapGender(doc *models.ProfileDocument) string {
	if doc.BasicInfo == nil {
		return ""
	}
	switch strings.ToLower(doc.BasicInfo.BiologicalSex) {
	case "male", "m":
		return constvars.GenderMale
	case "female", "f":
		return constvars.GenderFemale
	case "":
		return ""
	default:
		return constvars.GenderOther
	}
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

package onboarding

import (
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/constvars"
)

// StepDefinition is one node of the wizard. ShowIf must be a pure function
// of the profile document: no I/O, no hidden state. A nil ShowIf means the
// step is always visible.
type StepDefinition struct {
	ID     string
	Title  string
	ShowIf func(doc *models.ProfileDocument) bool
}

// masterSteps is the static total order of the wizard. VisibleSteps filters
// it in place; steps are never reordered relative to one another.
var masterSteps = []StepDefinition{
	{ID: constvars.StepDataSource, Title: "How would you like to add your health data?"},
	{ID: constvars.StepBasicInfo, Title: "Basic information", ShowIf: basicInfoNeeded},
	{ID: constvars.StepDemographics, Title: "Demographics", ShowIf: demographicsNeeded},

	// Physical measurements and current medications are perishable data, so
	// they are collected on every path: an EHR export is assumed to lag
	// real-time for these fields.
	{ID: constvars.StepPhysical, Title: "Physical measurements"},

	{ID: constvars.StepConditionsCheck, Title: "Do you have any medical conditions?", ShowIf: manualPath},
	{ID: constvars.StepConditionsDetail, Title: "Medical conditions", ShowIf: manualGate(func(d *models.ProfileDocument) *bool { return d.HasMedicalConditions })},

	{ID: constvars.StepMedicationsCheck, Title: "Do you currently take any medications?"},
	{ID: constvars.StepMedicationsDet, Title: "Current medications", ShowIf: gate(func(d *models.ProfileDocument) *bool { return d.TakesMedications })},

	{ID: constvars.StepAllergiesCheck, Title: "Do you have any allergies?", ShowIf: manualPath},
	{ID: constvars.StepAllergiesDetail, Title: "Allergies", ShowIf: manualGate(func(d *models.ProfileDocument) *bool { return d.HasAllergies })},

	{ID: constvars.StepSurgeriesCheck, Title: "Have you had any surgeries?", ShowIf: manualPath},
	{ID: constvars.StepSurgeriesDetail, Title: "Surgical history", ShowIf: manualGate(func(d *models.ProfileDocument) *bool { return d.HasSurgicalHistory })},

	{ID: constvars.StepTreatmentCheck, Title: "Are you currently receiving treatment?", ShowIf: manualPath},
	{ID: constvars.StepTreatmentDetail, Title: "Current treatment", ShowIf: manualGate(func(d *models.ProfileDocument) *bool { return d.IsReceivingTreatment })},

	{ID: constvars.StepFamilyCheck, Title: "Any relevant family medical history?", ShowIf: manualPath},
	{ID: constvars.StepFamilyDetail, Title: "Family history", ShowIf: manualGate(func(d *models.ProfileDocument) *bool { return d.HasFamilyHistory })},

	{ID: constvars.StepLifestyle, Title: "Lifestyle", ShowIf: manualPath},

	{ID: constvars.StepGoals, Title: "Health goals"},
	{ID: constvars.StepPreferences, Title: "Preferences"},
	{ID: constvars.StepComplete, Title: "All set"},
}

func manualPath(doc *models.ProfileDocument) bool {
	return doc.DataSource == constvars.DataSourceManual
}

// basicInfoNeeded shows the step unless the EHR path already satisfied it:
// an incomplete import still surfaces the step.
func basicInfoNeeded(doc *models.ProfileDocument) bool {
	if doc.DataSource == constvars.DataSourceManual {
		return true
	}
	return doc.BasicInfo == nil || doc.BasicInfo.FirstName == ""
}

func demographicsNeeded(doc *models.ProfileDocument) bool {
	if doc.DataSource == constvars.DataSourceManual {
		return true
	}
	return doc.BasicInfo == nil || doc.BasicInfo.DateOfBirth == "" || doc.BasicInfo.BiologicalSex == ""
}

func gate(flag func(*models.ProfileDocument) *bool) func(*models.ProfileDocument) bool {
	return func(doc *models.ProfileDocument) bool {
		v := flag(doc)
		return v != nil && *v
	}
}

func manualGate(flag func(*models.ProfileDocument) *bool) func(*models.ProfileDocument) bool {
	gated := gate(flag)
	return func(doc *models.ProfileDocument) bool {
		return manualPath(doc) && gated(doc)
	}
}

// VisibleSteps returns the ordered subsequence of the master list whose
// predicates hold for the given document. It is pure and idempotent.
func VisibleSteps(doc *models.ProfileDocument) []StepDefinition {
	visible := make([]StepDefinition, 0, len(masterSteps))
	for _, step := range masterSteps {
		if step.ShowIf == nil || step.ShowIf(doc) {
			visible = append(visible, step)
		}
	}
	return visible
}

// IsStepValid reports whether the named step is complete enough to advance
// past. Check steps are always valid even when unanswered; an unanswered
// gate simply keeps its detail step hidden. Unknown step ids are invalid.
func IsStepValid(stepID string, doc *models.ProfileDocument) bool {
	switch stepID {
	case constvars.StepDataSource:
		return doc.DataSource != ""
	case constvars.StepBasicInfo:
		return doc.BasicInfo != nil && doc.BasicInfo.FirstName != "" && doc.BasicInfo.LastName != ""
	case constvars.StepDemographics:
		return doc.BasicInfo != nil && doc.BasicInfo.DateOfBirth != "" && doc.BasicInfo.BiologicalSex != ""
	case constvars.StepPhysical:
		return doc.PhysicalMeasurements != nil && doc.PhysicalMeasurements.Height > 0 && doc.PhysicalMeasurements.Weight > 0
	case constvars.StepConditionsCheck,
		constvars.StepMedicationsCheck,
		constvars.StepAllergiesCheck,
		constvars.StepSurgeriesCheck,
		constvars.StepTreatmentCheck,
		constvars.StepFamilyCheck:
		return true
	case constvars.StepConditionsDetail:
		return len(doc.MedicalConditions) > 0
	case constvars.StepMedicationsDet:
		return len(doc.Medications) > 0
	case constvars.StepAllergiesDetail:
		return len(doc.Allergies) > 0
	case constvars.StepSurgeriesDetail:
		return len(doc.Surgeries) > 0
	case constvars.StepTreatmentDetail:
		return doc.CurrentTreatment != nil
	case constvars.StepFamilyDetail:
		return len(doc.FamilyHistory) > 0
	case constvars.StepLifestyle:
		return doc.Lifestyle != nil && doc.Lifestyle.ActivityLevel != ""
	case constvars.StepGoals, constvars.StepPreferences, constvars.StepComplete:
		return true
	default:
		return false
	}
}

// KnownStep reports whether the id belongs to the master list.
func KnownStep(stepID string) bool {
	for _, step := range masterSteps {
		if step.ID == stepID {
			return true
		}
	}
	return false
}

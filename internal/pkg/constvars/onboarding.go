package constvars

// Onboarding step identifiers. The master order lives in the onboarding
// service; these ids are shared with clients and must stay stable.
const (
	StepDataSource       = "data_source"
	StepBasicInfo        = "basic_info"
	StepDemographics     = "demographics"
	StepPhysical         = "physical"
	StepConditionsCheck  = "conditions_check"
	StepConditionsDetail = "conditions_detail"
	StepMedicationsCheck = "medications_check"
	StepMedicationsDet   = "medications_detail"
	StepAllergiesCheck   = "allergies_check"
	StepAllergiesDetail  = "allergies_detail"
	StepSurgeriesCheck   = "surgeries_check"
	StepSurgeriesDetail  = "surgeries_detail"
	StepTreatmentCheck   = "treatment_check"
	StepTreatmentDetail  = "treatment_detail"
	StepFamilyCheck      = "family_check"
	StepFamilyDetail     = "family_detail"
	StepLifestyle        = "lifestyle"
	StepGoals            = "goals"
	StepPreferences      = "preferences"
	StepComplete         = "complete"
)

const (
	DataSourceEHRUpload = "ehr_upload"
	DataSourceManual    = "manual"
)

const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

const (
	ConditionStatusActive   = "active"
	ConditionStatusResolved = "resolved"
	ConditionStatusChronic  = "chronic"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	HeightUnitCm = "cm"
	HeightUnitIn = "in"
	WeightUnitKg = "kg"
	WeightUnitLb = "lb"
)

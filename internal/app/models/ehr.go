package models

// EHRImportResult is the normalized output of the EHR import mapper,
// write-once after construction. Every section is already in the shape the
// corresponding ProfileDocument field uses so it can be merged directly.
type EHRImportResult struct {
	Demographics  EHRDemographics      `json:"demographics"`
	Conditions    []MedicalCondition   `json:"conditions"`
	Medications   []Medication         `json:"medications"`
	Allergies     []Allergy            `json:"allergies"`
	Surgeries     []Surgery            `json:"surgeries"`
	FamilyHistory []FamilyHistoryEntry `json:"familyHistory"`
	Lifestyle     *Lifestyle           `json:"lifestyle,omitempty"`
}

type EHRDemographics struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	PreferredName string `json:"preferredName,omitempty"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`
	BiologicalSex string `json:"biologicalSex,omitempty"`
}

package models

// Profile is the persisted record produced by a committed onboarding
// session. The flat top-level fields are the legacy shape the first version
// of the persistence backend understood; ComprehensiveData carries the full
// structured document. Both are stored together.
type Profile struct {
	ID              string  `json:"id" bson:"_id,omitempty"`
	UserID          string  `json:"userId" bson:"userId"`
	Name            string  `json:"name" bson:"name"`
	Goals           string  `json:"goals" bson:"goals"`
	PhysicalTherapy string  `json:"physicalTherapy,omitempty" bson:"physicalTherapy,omitempty"`
	Age             int     `json:"age" bson:"age"`
	Gender          string  `json:"gender,omitempty" bson:"gender,omitempty"`
	Weight          float64 `json:"weight,omitempty" bson:"weight,omitempty"`
	Height          float64 `json:"height,omitempty" bson:"height,omitempty"`

	ComprehensiveData ComprehensiveData `json:"comprehensiveData" bson:"comprehensiveData"`
	TimeModel         `bson:",inline"`
}

type ComprehensiveData struct {
	Profile        ProfileDocument `json:"profile" bson:"profile"`
	HistoricalData HistoricalData  `json:"historicalData" bson:"historicalData"`
	RecentData     RecentData      `json:"recentData" bson:"recentData"`
	Goals          GoalsData       `json:"goals" bson:"goals"`
}

// HistoricalData groups the stable, past health facts.
type HistoricalData struct {
	Conditions    []MedicalCondition   `json:"conditions" bson:"conditions"`
	Surgeries     []Surgery            `json:"surgeries" bson:"surgeries"`
	Allergies     []Allergy            `json:"allergies" bson:"allergies"`
	FamilyHistory []FamilyHistoryEntry `json:"familyHistory" bson:"familyHistory"`
}

// RecentData groups the perishable, current health facts.
type RecentData struct {
	Measurements       *PhysicalMeasurements `json:"measurements,omitempty" bson:"measurements,omitempty"`
	CurrentMedications []Medication          `json:"currentMedications" bson:"currentMedications"`
	CurrentTreatment   *Treatment            `json:"currentTreatment,omitempty" bson:"currentTreatment,omitempty"`
	Lifestyle          *Lifestyle            `json:"lifestyle,omitempty" bson:"lifestyle,omitempty"`
}

type GoalsData struct {
	Goals       []HealthGoal `json:"goals" bson:"goals"`
	Narrative   string       `json:"narrative,omitempty" bson:"narrative,omitempty"`
	Motivations []string     `json:"motivations,omitempty" bson:"motivations,omitempty"`
	Challenges  []string     `json:"challenges,omitempty" bson:"challenges,omitempty"`
}

package models

// ProfileDocument is the accumulating health-profile record built across the
// onboarding wizard. Fields are pointers or slices so an unset field is
// distinguishable from an explicitly answered one; the boolean gate flags are
// tri-state for the same reason.
type ProfileDocument struct {
	DataSource           string                `json:"dataSource,omitempty" bson:"dataSource,omitempty"`
	BasicInfo            *BasicInfo            `json:"basicInfo,omitempty" bson:"basicInfo,omitempty"`
	PhysicalMeasurements *PhysicalMeasurements `json:"physicalMeasurements,omitempty" bson:"physicalMeasurements,omitempty"`

	MedicalConditions []MedicalCondition   `json:"medicalConditions,omitempty" bson:"medicalConditions,omitempty"`
	Medications       []Medication         `json:"medications,omitempty" bson:"medications,omitempty"`
	Allergies         []Allergy            `json:"allergies,omitempty" bson:"allergies,omitempty"`
	Surgeries         []Surgery            `json:"surgeries,omitempty" bson:"surgeries,omitempty"`
	FamilyHistory     []FamilyHistoryEntry `json:"familyHistory,omitempty" bson:"familyHistory,omitempty"`

	CurrentTreatment *Treatment   `json:"currentTreatment,omitempty" bson:"currentTreatment,omitempty"`
	Lifestyle        *Lifestyle   `json:"lifestyle,omitempty" bson:"lifestyle,omitempty"`
	HealthGoals      []HealthGoal `json:"healthGoals,omitempty" bson:"healthGoals,omitempty"`
	Preferences      *Preferences `json:"preferences,omitempty" bson:"preferences,omitempty"`

	HasMedicalConditions *bool `json:"hasMedicalConditions,omitempty" bson:"hasMedicalConditions,omitempty"`
	TakesMedications     *bool `json:"takesMedications,omitempty" bson:"takesMedications,omitempty"`
	HasAllergies         *bool `json:"hasAllergies,omitempty" bson:"hasAllergies,omitempty"`
	HasSurgicalHistory   *bool `json:"hasSurgicalHistory,omitempty" bson:"hasSurgicalHistory,omitempty"`
	IsReceivingTreatment *bool `json:"isReceivingTreatment,omitempty" bson:"isReceivingTreatment,omitempty"`
	HasFamilyHistory     *bool `json:"hasFamilyHistory,omitempty" bson:"hasFamilyHistory,omitempty"`
}

type BasicInfo struct {
	FirstName     string `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty" bson:"lastName,omitempty"`
	PreferredName string `json:"preferredName,omitempty" bson:"preferredName,omitempty"`
	DateOfBirth   string `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	BiologicalSex string `json:"biologicalSex,omitempty" bson:"biologicalSex,omitempty"`
}

type PhysicalMeasurements struct {
	Height     float64 `json:"height,omitempty" bson:"height,omitempty"`
	HeightUnit string  `json:"heightUnit,omitempty" bson:"heightUnit,omitempty"`
	Weight     float64 `json:"weight,omitempty" bson:"weight,omitempty"`
	WeightUnit string  `json:"weightUnit,omitempty" bson:"weightUnit,omitempty"`
	BloodType  string  `json:"bloodType,omitempty" bson:"bloodType,omitempty"`
}

type MedicalCondition struct {
	Name          string `json:"name" bson:"name"`
	Status        string `json:"status,omitempty" bson:"status,omitempty"`
	DiagnosedDate string `json:"diagnosedDate,omitempty" bson:"diagnosedDate,omitempty"`
	Notes         string `json:"notes,omitempty" bson:"notes,omitempty"`
}

type Medication struct {
	Name      string `json:"name" bson:"name"`
	Dosage    string `json:"dosage,omitempty" bson:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty" bson:"frequency,omitempty"`
	Reason    string `json:"reason,omitempty" bson:"reason,omitempty"`
}

type Allergy struct {
	Allergen string `json:"allergen" bson:"allergen"`
	Reaction string `json:"reaction,omitempty" bson:"reaction,omitempty"`
	Severity string `json:"severity,omitempty" bson:"severity,omitempty"`
}

type Surgery struct {
	Procedure string `json:"procedure" bson:"procedure"`
	Date      string `json:"date,omitempty" bson:"date,omitempty"`
	Notes     string `json:"notes,omitempty" bson:"notes,omitempty"`
}

type FamilyHistoryEntry struct {
	Relation  string `json:"relation" bson:"relation"`
	Condition string `json:"condition" bson:"condition"`
	Notes     string `json:"notes,omitempty" bson:"notes,omitempty"`
}

type Treatment struct {
	Type        string `json:"type" bson:"type"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Frequency   string `json:"frequency,omitempty" bson:"frequency,omitempty"`
	Goals       string `json:"goals,omitempty" bson:"goals,omitempty"`
}

type Lifestyle struct {
	ActivityLevel      string   `json:"activityLevel,omitempty" bson:"activityLevel,omitempty"`
	ExerciseFrequency  string   `json:"exerciseFrequency,omitempty" bson:"exerciseFrequency,omitempty"`
	AverageSleepHours  float64  `json:"averageSleepHours,omitempty" bson:"averageSleepHours,omitempty"`
	SleepQuality       string   `json:"sleepQuality,omitempty" bson:"sleepQuality,omitempty"`
	StressLevel        int      `json:"stressLevel,omitempty" bson:"stressLevel,omitempty"`
	WaterIntakeOz      float64  `json:"waterIntakeOz,omitempty" bson:"waterIntakeOz,omitempty"`
	SmokingStatus      string   `json:"smokingStatus,omitempty" bson:"smokingStatus,omitempty"`
	AlcoholFrequency   string   `json:"alcoholFrequency,omitempty" bson:"alcoholFrequency,omitempty"`
	DietaryPreferences []string `json:"dietaryPreferences,omitempty" bson:"dietaryPreferences,omitempty"`
}

type HealthGoal struct {
	Category    string `json:"category" bson:"category"`
	Title       string `json:"title" bson:"title"`
	TargetValue string `json:"targetValue,omitempty" bson:"targetValue,omitempty"`
	TargetUnit  string `json:"targetUnit,omitempty" bson:"targetUnit,omitempty"`
	Priority    int    `json:"priority,omitempty" bson:"priority,omitempty"`
}

type Preferences struct {
	Motivations        []string `json:"motivations,omitempty" bson:"motivations,omitempty"`
	Challenges         []string `json:"challenges,omitempty" bson:"challenges,omitempty"`
	GoalNarrative      string   `json:"goalNarrative,omitempty" bson:"goalNarrative,omitempty"`
	NotificationsOptIn *bool    `json:"notificationsOptIn,omitempty" bson:"notificationsOptIn,omitempty"`
}

// Merge applies a partial update onto the document. The merge is additive:
// only fields the update actually carries overwrite their counterpart, and a
// step that owns a nested object replaces that object wholesale. Fields the
// update does not touch are never cleared.
func (d *ProfileDocument) Merge(update *ProfileDocument) {
	if update == nil {
		return
	}
	if update.DataSource != "" {
		d.DataSource = update.DataSource
	}
	if update.BasicInfo != nil {
		d.BasicInfo = update.BasicInfo
	}
	if update.PhysicalMeasurements != nil {
		d.PhysicalMeasurements = update.PhysicalMeasurements
	}
	if update.MedicalConditions != nil {
		d.MedicalConditions = update.MedicalConditions
	}
	if update.Medications != nil {
		d.Medications = update.Medications
	}
	if update.Allergies != nil {
		d.Allergies = update.Allergies
	}
	if update.Surgeries != nil {
		d.Surgeries = update.Surgeries
	}
	if update.FamilyHistory != nil {
		d.FamilyHistory = update.FamilyHistory
	}
	if update.CurrentTreatment != nil {
		d.CurrentTreatment = update.CurrentTreatment
	}
	if update.Lifestyle != nil {
		d.Lifestyle = update.Lifestyle
	}
	if update.HealthGoals != nil {
		d.HealthGoals = update.HealthGoals
	}
	if update.Preferences != nil {
		d.Preferences = update.Preferences
	}
	if update.HasMedicalConditions != nil {
		d.HasMedicalConditions = update.HasMedicalConditions
	}
	if update.TakesMedications != nil {
		d.TakesMedications = update.TakesMedications
	}
	if update.HasAllergies != nil {
		d.HasAllergies = update.HasAllergies
	}
	if update.HasSurgicalHistory != nil {
		d.HasSurgicalHistory = update.HasSurgicalHistory
	}
	if update.IsReceivingTreatment != nil {
		d.IsReceivingTreatment = update.IsReceivingTreatment
	}
	if update.HasFamilyHistory != nil {
		d.HasFamilyHistory = update.HasFamilyHistory
	}
}

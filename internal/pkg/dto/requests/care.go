package requests

type CreateVital struct {
	Type       string  `json:"type" validate:"required,oneof=heart_rate blood_pressure_systolic blood_pressure_diastolic blood_glucose temperature spo2 weight"`
	Value      float64 `json:"value" validate:"required,gt=0"`
	Unit       string  `json:"unit" validate:"required"`
	RecordedAt string  `json:"recordedAt,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type CreateChecklistItem struct {
	Title   string `json:"title" validate:"required"`
	Notes   string `json:"notes,omitempty"`
	DueDate string `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type ConnectDevice struct {
	Vendor string `json:"vendor" validate:"required"`
	Model  string `json:"model,omitempty"`
}

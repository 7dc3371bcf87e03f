package models

import "time"

type Vital struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	UserID     string    `json:"userId" bson:"userId"`
	Type       string    `json:"type" bson:"type"`
	Value      float64   `json:"value" bson:"value"`
	Unit       string    `json:"unit" bson:"unit"`
	RecordedAt time.Time `json:"recordedAt" bson:"recordedAt"`
	TimeModel  `bson:",inline"`
}

type ChecklistItem struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	UserID    string `json:"userId" bson:"userId"`
	Title     string `json:"title" bson:"title"`
	Notes     string `json:"notes,omitempty" bson:"notes,omitempty"`
	Completed bool   `json:"completed" bson:"completed"`
	DueDate   string `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	TimeModel `bson:",inline"`
}

type Device struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	UserID      string    `json:"userId" bson:"userId"`
	Vendor      string    `json:"vendor" bson:"vendor"`
	Model       string    `json:"model,omitempty" bson:"model,omitempty"`
	Status      string    `json:"status" bson:"status"`
	ConnectedAt time.Time `json:"connectedAt" bson:"connectedAt"`
	TimeModel   `bson:",inline"`
}

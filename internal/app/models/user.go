package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	FullName  string `bson:"fullName,omitempty"`
	ProfileID string `bson:"profileId,omitempty"`
	TimeModel `bson:",inline"`
}

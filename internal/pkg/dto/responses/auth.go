package responses

type Register struct {
	UserID string `json:"userId"`
}

type Login struct {
	Token string `json:"token"`
}

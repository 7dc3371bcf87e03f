package responses

type ChatCompletion struct {
	Reply string `json:"reply"`
	Model string `json:"model,omitempty"`
}

package requests

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatCompletion struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

package domain

// Message roles understood by chat-completion services.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Prompt is the structured input for one inference call.
type Prompt struct {
	SystemMessage string
	UserMessage   string
}

// PromptMessage follows the role/content pair required by chat APIs.
type PromptMessage struct {
	Role    string
	Content string
}

// Messages flattens the prompt into chat messages. The system entry is only
// present when the prompt carries system instructions.
func (p Prompt) Messages() []PromptMessage {
	messages := make([]PromptMessage, 0, 2)
	if p.SystemMessage != "" {
		messages = append(messages, PromptMessage{Role: RoleSystem, Content: p.SystemMessage})
	}
	return append(messages, PromptMessage{Role: RoleUser, Content: p.UserMessage})
}

// InferenceRequest is everything the completion service needs for one call.
type InferenceRequest struct {
	Model           string
	Prompt          Prompt
	MaxOutputTokens int
	Temperature     float64
}

// NewInferenceRequest applies the mode's generation policy to a prompt.
func NewInferenceRequest(model string, prompt Prompt, mode OperatingMode) InferenceRequest {
	return InferenceRequest{
		Model:           model,
		Prompt:          prompt,
		MaxOutputTokens: mode.MaxTokens(),
		Temperature:     mode.Temperature(),
	}
}

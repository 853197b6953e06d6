package ai

import "github.com/neuron-cli/neuron/internal/domain"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

// chatCompletionResponse keeps pointers so a missing field can be told apart
// from an empty one.
type chatCompletionResponse struct {
	Choices []struct {
		Message *struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func toChatRequest(req domain.InferenceRequest) chatCompletionRequest {
	messages := req.Prompt.Messages()
	chat := make([]chatMessage, 0, len(messages))
	for _, msg := range messages {
		chat = append(chat, chatMessage{Role: msg.Role, Content: msg.Content})
	}
	return chatCompletionRequest{
		Model:       req.Model,
		Messages:    chat,
		MaxTokens:   req.MaxOutputTokens,
		Temperature: req.Temperature,
	}
}

package domain

// DefaultModel is used when neither the environment nor the config file names one.
const DefaultModel = "openai/gpt-4"

// AvailableModels lists the model identifiers offered by `neuron models`.
var AvailableModels = []string{
	"openai/gpt-4.1",
}

// Credential is the resolved authentication material for the completion service.
// The API key is opaque: it is never logged and never echoed back.
type Credential struct {
	APIKey string
	Model  string
}

// ModelOrDefault returns the configured model or DefaultModel.
func (c Credential) ModelOrDefault() string {
	if c.Model == "" {
		return DefaultModel
	}
	return c.Model
}

// String keeps the key out of formatted output.
func (c Credential) String() string {
	return "Credential{APIKey: " + MaskSecret(c.APIKey) + ", Model: " + c.Model + "}"
}

// MaskSecret reports only whether a secret is set, never any of its characters.
func MaskSecret(secret string) string {
	if secret == "" {
		return "(unset)"
	}
	return "****"
}

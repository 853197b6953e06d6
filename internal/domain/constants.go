package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for files holding the API key (rw-------)
	SecureFilePermissions = 0o600
)

// Completion service constants
const (
	// CompletionEndpoint is the chat-completion URL every inference call is posted to
	CompletionEndpoint = "https://models.github.ai/inference/chat/completions"
	// InferenceTimeout bounds a whole inference call, connection through body read
	InferenceTimeout = 10 * time.Second
)

// Environment variables
const (
	EnvAPIKey = "NEURON_API_KEY"
	EnvModel  = "NEURON_MODEL"
	EnvConfig = "NEURON_CONFIG"
	EnvDebug  = "NEURON_DEBUG"
)

// ExplainCommandPrefix is prepended to a candidate command when the operator
// asks for an explanation before confirming.
const ExplainCommandPrefix = "Explain this command: "

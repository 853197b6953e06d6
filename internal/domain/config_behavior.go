package domain

import "runtime"

// Credential returns the resolved credential, applying the default model.
func (c *Config) Credential() Credential {
	return Credential{APIKey: c.APIKey, Model: c.ModelOrDefault()}
}

// HasAPIKey reports whether an API key has been resolved.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}

// ModelOrDefault returns the configured model or DefaultModel.
func (c *Config) ModelOrDefault() string {
	if c.Model == "" {
		return DefaultModel
	}
	return c.Model
}

// SetAPIKey replaces the stored API key.
func (c *Config) SetAPIKey(key string) {
	c.APIKey = key
}

// SetModel replaces the stored model identifier.
func (c *Config) SetModel(model string) {
	c.Model = model
}

// ShouldAutoExecuteSafe checks if safe commands run without confirmation by default.
func (c *Config) ShouldAutoExecuteSafe() bool {
	return c.Preferences.AutoExecuteSafe
}

// GetExecutionShell returns the interpreter used for approved commands.
// Defaults to /bin/sh (cmd on Windows), matching system(3).
func (c *Config) GetExecutionShell() string {
	if c.Execution.Shell != "" {
		return c.Execution.Shell
	}
	return DefaultShell()
}

// DefaultShell returns the host's command interpreter.
func DefaultShell() string {
	if runtime.GOOS == "windows" {
		return "cmd"
	}
	return "/bin/sh"
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	if c.APIKey != "" {
		c.APIKey = MaskSecret(c.APIKey)
	}
	return c
}

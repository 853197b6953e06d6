package domain

// Config mirrors ~/.neuron/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	APIKey              string            `yaml:"api_key,omitempty"`
	Model               string            `yaml:"model,omitempty"`
	Preferences         Preferences       `yaml:"preferences"`
	Execution           ExecutionSettings `yaml:"execution"`
}

// Preferences captures user level toggles.
type Preferences struct {
	AutoExecuteSafe bool `yaml:"auto_execute_safe"`
}

// ExecutionSettings controls how approved commands run.
type ExecutionSettings struct {
	Shell string `yaml:"shell,omitempty"`
}

package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// DenylistYAML contains the fixed, ordered list of dangerous command fragments.
//
//go:embed defaults/denylist.yaml
var DenylistYAML []byte

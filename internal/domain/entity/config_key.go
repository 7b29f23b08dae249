package entity

import "strings"

// EnvPrefix prefixes every environment variable that overrides a config key.
const EnvPrefix = "XIBOIC"

// ConfigKeyInfo documents one configuration key for `config schema`.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "player.host_name".
	Key string `json:"key"`
	// Type is the Go type name: string, int, bool or a list type.
	Type string `json:"type"`
	// Default is the default value rendered as text.
	Default string `json:"default"`
	// Description is a one line explanation.
	Description string `json:"description"`
	// Values lists the accepted values of an enum key.
	Values []string `json:"values,omitempty"`
	// Range describes numeric bounds such as "1-65535" or ">=0".
	Range string `json:"range,omitempty"`
	// Section groups keys for display: Player, Widget, Preview, Logging.
	Section string `json:"section"`
}

// EnvVar returns the environment variable that overrides the key,
// e.g. XIBOIC_PLAYER_HOST_NAME for player.host_name.
func (k ConfigKeyInfo) EnvVar() string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(k.Key, ".", "_"))
}

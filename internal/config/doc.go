// Package config loads optional rolldice settings.
//
// Settings are layered: built-in defaults, then an optional config file,
// then ROLLDICE_* environment variables. Command-line flags are applied on
// top by the cli package. With no file and no environment variables the
// defaults reproduce the plain interactive behaviour.
//
// Config files may be JSON with comments (.json, .jsonc), YAML (.yaml,
// .yml) or TOML (.toml). JSONC is handled by github.com/tidwall/jsonc,
// which strips comments and trailing commas before encoding/json parses it.
package config

package config

import (
	"fmt"
	"os"
)

// Template returns a commented example packetctl.toml.
func Template() string {
	return exampleTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(exampleTemplate), 0o600)
}

const exampleTemplate = `log_level = "info"
max_depth = 16

# Extension messages are registered after the built-in catalog.
[[messages]]
id = 100
name = "TABLE_NOTE"
parent = "POKER_ID"

[[messages.fields]]
name = "note"
type = "s"
default = ""

[[messages.fields]]
name = "cards"
type = "Bl"
default = [1, 2]

[[messages.fields]]
name = "stake"
type = "c"

[[messages]]
id = 101
name = "TABLE_NOTES"

[[messages.fields]]
name = "notes"
type = "pl"
`

package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int          `toml:"version"`
	Links   []linkSchema `toml:"links"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported links schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type linkSchema struct {
	UserID     string   `toml:"user_id"`
	Identities []string `toml:"identities"`
	UpdatedAt  string   `toml:"updated_at,omitempty"`
}

package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Members []memberSchema `toml:"members"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported members schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type memberSchema struct {
	UserID      string `toml:"user_id"`
	Invites     int    `toml:"invites"`
	PanelUserID int    `toml:"panel_user_id,omitempty"`
	Admin       bool   `toml:"admin,omitempty"`
	UpdatedAt   string `toml:"updated_at,omitempty"`
}

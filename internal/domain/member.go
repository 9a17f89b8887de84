package domain

import (
	"fmt"
	"strings"
)

// UserID identifies a chat user.
type UserID string

// PanelUserID is the numeric account id on the panel.
type PanelUserID int

type Member struct {
	UserID      UserID
	Invites     int
	PanelUserID PanelUserID
	Admin       bool
}

func (m Member) Linked() bool {
	return m.PanelUserID > 0
}

func (m Member) Validate() error {
	if strings.TrimSpace(string(m.UserID)) == "" {
		return fmt.Errorf("user id is required")
	}
	if m.Invites < 0 {
		return fmt.Errorf("invites must not be negative, got %d", m.Invites)
	}
	return nil
}

// PanelAccount is the input for creating or finding a panel user.
type PanelAccount struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

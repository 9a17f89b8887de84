package application

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panelbot/internal/domain"
)

func TestValidators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		validate func(string) (string, error)
		input    string
		want     string
		wantErr  bool
	}{
		{name: "int in range", validate: IntInRange("memory", 128, 4096), input: " 2048 ", want: "2048"},
		{name: "int lower bound", validate: IntInRange("memory", 128, 4096), input: "128", want: "128"},
		{name: "int over max", validate: IntInRange("memory", 128, 4096), input: "4097", wantErr: true},
		{name: "int not a number", validate: IntInRange("memory", 128, 4096), input: "lots", wantErr: true},
		{name: "int decimal", validate: IntInRange("memory", 128, 4096), input: "1024.5", wantErr: true},
		{name: "name trimmed", validate: NonEmptyMax("name", 40), input: "  lobby ", want: "lobby"},
		{name: "name empty", validate: NonEmptyMax("name", 40), input: "   ", wantErr: true},
		{name: "name too long", validate: NonEmptyMax("name", 40), input: strings.Repeat("x", 41), wantErr: true},
		{name: "name multibyte at limit", validate: NonEmptyMax("name", 3), input: "日本語", want: "日本語"},
		{name: "one of case insensitive", validate: OneOf("offering", []string{"paper", "forge"}), input: "PAPER", want: "paper"},
		{name: "one of unknown", validate: OneOf("offering", []string{"paper", "forge"}), input: "bukkit", wantErr: true},
		{name: "token", validate: Token("identifier"), input: " abc123 ", want: "abc123"},
		{name: "token with space", validate: Token("identifier"), input: "abc 123", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.validate(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/panelbot/internal/domain"
	"github.com/bnema/panelbot/internal/ports"
)

// CredentialService keeps each member's client key in the secret store.
type CredentialService struct {
	store ports.SecretStore
}

func NewCredentialService(store ports.SecretStore) *CredentialService {
	return &CredentialService{store: store}
}

func ClientKeyRef(id domain.UserID) string {
	return fmt.Sprintf("panelbot/users/%s/client_key", id)
}

func (s *CredentialService) SetClientKey(ctx context.Context, id domain.UserID, key domain.ClientKey) error {
	trimmed := strings.TrimSpace(string(key))
	if trimmed == "" {
		return domain.NewValidationError("key", "must not be empty")
	}
	if strings.ContainsAny(trimmed, " \t\r\n") {
		return domain.NewValidationError("key", "must not contain spaces")
	}
	if err := s.store.Put(ctx, ClientKeyRef(id), trimmed); err != nil {
		return fmt.Errorf("store client key: %w", err)
	}
	return nil
}

func (s *CredentialService) ClientKey(ctx context.Context, id domain.UserID) (domain.ClientKey, error) {
	value, err := s.store.Get(ctx, ClientKeyRef(id))
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			return "", domain.ErrCredentialNotFound
		}
		return "", fmt.Errorf("load client key: %w", err)
	}
	if strings.TrimSpace(value) == "" {
		return "", domain.ErrCredentialNotFound
	}
	return domain.ClientKey(value), nil
}

// HasClientKey reports false for a missing key and for a store failure.
func (s *CredentialService) HasClientKey(ctx context.Context, id domain.UserID) bool {
	_, err := s.ClientKey(ctx, id)
	return err == nil
}

func (s *CredentialService) RemoveClientKey(ctx context.Context, id domain.UserID) error {
	if err := s.store.Delete(ctx, ClientKeyRef(id)); err != nil && !errors.Is(err, domain.ErrCredentialNotFound) {
		return fmt.Errorf("delete client key: %w", err)
	}
	return nil
}

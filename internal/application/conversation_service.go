package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/panelbot/internal/domain"
)

const (
	StepOffering   = "offering"
	StepName       = "name"
	StepMemory     = "memory"
	StepCPU        = "cpu"
	StepDisk       = "disk"
	StepKey        = "key"
	StepIdentifier = "identifier"
	StepCommand    = "command"
)

// ConversationService builds the create and manage flows and drives them
// through the session manager.
type ConversationService struct {
	sessions    *SessionManager
	provisioner *ProvisioningService
	manage      *ManageService
	credentials *CredentialService
}

func NewConversationService(sessions *SessionManager, provisioner *ProvisioningService, manage *ManageService, credentials *CredentialService) *ConversationService {
	return &ConversationService{
		sessions:    sessions,
		provisioner: provisioner,
		manage:      manage,
		credentials: credentials,
	}
}

func (s *ConversationService) Sessions() *SessionManager {
	return s.sessions
}

// StartCreate opens the create flow bounded by the tier for invites.
func (s *ConversationService) StartCreate(ctx context.Context, userID domain.UserID, owner domain.PanelUserID, invites int) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	if owner <= 0 {
		return Outcome{}, domain.ErrAccountNotLinked
	}

	tier := s.provisioner.Tiers().Resolve(invites)
	bounds := tier.Bounds()

	keys := make([]string, 0)
	for _, key := range s.provisioner.Catalog().Keys() {
		keys = append(keys, string(key))
	}

	flow := Flow{
		Kind: domain.SessionKindCreate,
		Steps: []Step{
			{
				Name:     StepOffering,
				Prompt:   fmt.Sprintf("Which offering? (%s)", strings.Join(keys, ", ")),
				Validate: OneOf(StepOffering, keys),
			},
			{
				Name:     StepName,
				Prompt:   fmt.Sprintf("Server name? (max %d characters)", domain.MaxServerNameLength),
				Validate: NonEmptyMax(StepName, domain.MaxServerNameLength),
			},
			{
				Name:     StepMemory,
				Prompt:   fmt.Sprintf("Memory in MB? (%d-%d, %s tier)", domain.MinMemoryMB, bounds.MaxMemoryMB, tier.Name),
				Validate: IntInRange(StepMemory, domain.MinMemoryMB, bounds.MaxMemoryMB),
			},
			{
				Name:     StepCPU,
				Prompt:   fmt.Sprintf("CPU in %%? (%d-%d)", domain.MinCPUPercent, bounds.MaxCPUPercent),
				Validate: IntInRange(StepCPU, domain.MinCPUPercent, bounds.MaxCPUPercent),
			},
			{
				Name:     StepDisk,
				Prompt:   fmt.Sprintf("Disk in MB? (%d-%d)", domain.MinDiskMB, bounds.MaxDiskMB),
				Validate: IntInRange(StepDisk, domain.MinDiskMB, bounds.MaxDiskMB),
			},
		},
		Complete: func(ctx context.Context, answers domain.Answers) (string, error) {
			req, err := provisioningRequestFrom(owner, answers)
			if err != nil {
				return "", err
			}
			identifier, err := s.provisioner.Provision(ctx, req, bounds)
			if err != nil {
				return "", err
			}
			return string(identifier), nil
		},
	}

	return s.sessions.Start(userID, flow)
}

// StartManage opens the manage loop. The key step is skipped when the member
// already has a stored client key; a key given in the flow is stored.
func (s *ConversationService) StartManage(ctx context.Context, userID domain.UserID) (Outcome, error) {
	stored, err := s.credentials.ClientKey(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrCredentialNotFound) {
		return Outcome{}, err
	}

	var steps []Step
	if stored == "" {
		steps = append(steps, Step{
			Name:     StepKey,
			Prompt:   "Paste your panel client API key.",
			Validate: Token(StepKey),
		})
	}
	steps = append(steps,
		Step{
			Name:     StepIdentifier,
			Prompt:   "Server identifier?",
			Validate: Token(StepIdentifier),
		},
		Step{
			Name:     StepCommand,
			Prompt:   fmt.Sprintf("Command? (%s, or cancel to finish)", strings.Join(ManageActions(), ", ")),
			Validate: OneOf(StepCommand, ManageActions()),
		},
	)

	key := stored
	flow := Flow{
		Kind:  domain.SessionKindManage,
		Steps: steps,
		Loop:  true,
		Complete: func(ctx context.Context, answers domain.Answers) (string, error) {
			if key == "" {
				given, _ := answers.Get(StepKey)
				if err := s.credentials.SetClientKey(ctx, userID, domain.ClientKey(given)); err != nil {
					return "", err
				}
				key = domain.ClientKey(given)
			}
			identifier, _ := answers.Get(StepIdentifier)
			command, _ := answers.Get(StepCommand)
			return s.manage.Dispatch(ctx, key, domain.InstanceIdentifier(identifier), ManageAction(command))
		},
	}

	return s.sessions.Start(userID, flow)
}

func (s *ConversationService) Submit(ctx context.Context, userID domain.UserID, text string) (Outcome, error) {
	return s.sessions.Submit(ctx, userID, text)
}

func (s *ConversationService) Cancel(userID domain.UserID) (domain.Session, error) {
	return s.sessions.Cancel(userID)
}

func provisioningRequestFrom(owner domain.PanelUserID, answers domain.Answers) (domain.ProvisioningRequest, error) {
	req := domain.ProvisioningRequest{Owner: owner}

	offering, _ := answers.Get(StepOffering)
	req.Offering = domain.OfferingKey(offering)
	req.Name, _ = answers.Get(StepName)

	for _, field := range []struct {
		step   string
		target *int
	}{
		{StepMemory, &req.MemoryMB},
		{StepCPU, &req.CPUPercent},
		{StepDisk, &req.DiskMB},
	} {
		raw, _ := answers.Get(field.step)
		value, err := strconv.Atoi(raw)
		if err != nil {
			return domain.ProvisioningRequest{}, domain.NewValidationError(field.step, "must be a whole number")
		}
		*field.target = value
	}

	return req, nil
}

// Package reply renders application results as the text panelbot sends back
// to a user.
package reply

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/panelbot/internal/application"
	"github.com/bnema/panelbot/internal/domain"
)

const progressBarWidth = 20

// UnknownOutcome is shown when a create request may or may not have reached
// the panel.
const UnknownOutcome = "unknown outcome, check the panel before retrying"

// Plans renders the tier table. The tier matching invites is highlighted; a
// negative invites value highlights nothing.
func Plans(tiers domain.Tiers, invites int) string {
	s := newStyles()
	if len(tiers) == 0 {
		return s.empty.Render("No plans configured.")
	}

	current := ""
	if invites >= 0 {
		current = tiers.Resolve(invites).Name
	}

	lines := []string{s.title.Render("Plans")}
	for _, tier := range tiers {
		row := fmt.Sprintf("%-10s %3d+ invites  %6d MB  %4d%% CPU  %6d MB disk",
			tier.Name, tier.MinInvites, tier.MaxMemoryMB, tier.MaxCPUPercent, tier.MaxDiskMB)
		if tier.Name == current {
			lines = append(lines, s.current.Render("> "+row))
			continue
		}
		lines = append(lines, s.detail.Render("  "+row))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Offerings lists the deployable templates.
func Offerings(catalog *domain.Catalog) string {
	s := newStyles()
	if catalog == nil || len(catalog.List()) == 0 {
		return s.empty.Render("No offerings configured.")
	}

	lines := []string{s.title.Render("Offerings")}
	for _, offering := range catalog.List() {
		lines = append(lines, fmt.Sprintf("%s %s",
			s.name.Render(string(offering.Key)),
			s.detail.Render(offering.DisplayName)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func Invites(status application.InviteStatus) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Invites"),
		fmt.Sprintf("%s %s", s.header.Render("Member:"), s.name.Render(string(status.Member.UserID))),
		fmt.Sprintf("%s %s", s.header.Render("Invites:"), s.detail.Render(fmt.Sprintf("%d", status.Member.Invites))),
		fmt.Sprintf("%s %s", s.header.Render("Tier:"), s.detail.Render(tierSummary(status.Tier))),
	}

	if !status.HasNext {
		lines = append(lines, s.success.Render("Top tier reached."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	span := status.Next.MinInvites - status.Tier.MinInvites
	done := status.Member.Invites - status.Tier.MinInvites
	percent := 0.0
	if span > 0 {
		percent = float64(done) / float64(span) * 100
	}

	lines = append(lines,
		fmt.Sprintf("%s %s", s.header.Render("Next:"),
			s.detail.Render(fmt.Sprintf("%s in %d invite(s)", status.Next.Name, status.Remaining))),
		renderProgressBar(percent, progressBarWidth, s),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func Node(stats application.NodeStats) string {
	s := newStyles()
	line := fmt.Sprintf("Node %d: %d free of %d allocations", stats.NodeID, stats.Free, stats.Total)
	if stats.Free == 0 {
		return s.warning.Render(line)
	}
	return s.detail.Render(line)
}

func Servers(servers []domain.Server) string {
	s := newStyles()
	if len(servers) == 0 {
		return s.empty.Render("No servers.")
	}

	lines := []string{s.title.Render("Servers")}
	for _, server := range servers {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			s.header.Render(fmt.Sprintf("#%d", server.ID)),
			s.name.Render(fmt.Sprintf("%s (%s)", server.Name, server.Identifier)),
			s.detail.Render(fmt.Sprintf("%d MB  %d%% CPU  %d MB disk", server.MemoryMB, server.CPUPercent, server.DiskMB)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Created confirms a provisioned server.
func Created(identifier domain.InstanceIdentifier) string {
	s := newStyles()
	return s.success.Render(fmt.Sprintf("Server created: %s", identifier))
}

// Outcome renders the reply for one conversational turn.
func Outcome(out application.Outcome) string {
	s := newStyles()

	switch out.State {
	case domain.SessionCompleted:
		if out.Session.Kind == domain.SessionKindCreate {
			return Created(domain.InstanceIdentifier(out.Result))
		}
		return s.success.Render(out.Result)
	case domain.SessionFailed:
		return Error(out.Err)
	case domain.SessionCancelled:
		if out.Result != "" {
			return lipgloss.JoinVertical(lipgloss.Left, s.success.Render(out.Result), s.empty.Render("Session cancelled."))
		}
		return s.empty.Render("Session cancelled.")
	case domain.SessionTimedOut:
		return s.warning.Render("Session timed out.")
	}

	lines := make([]string, 0, 2)
	switch {
	case out.Err != nil:
		lines = append(lines, Error(out.Err))
	case out.Result != "":
		lines = append(lines, s.success.Render(out.Result))
	}
	if out.Prompt != "" {
		lines = append(lines, s.prompt.Render(out.Prompt))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Expired tells a user their session was swept.
func Expired(session domain.Session) string {
	s := newStyles()
	return s.warning.Render(fmt.Sprintf("Your %s session timed out.", session.Kind))
}

// Error maps a failure to user-facing text.
func Error(err error) string {
	s := newStyles()
	if err == nil {
		return ""
	}
	return s.warning.Render(ErrorText(err))
}

// ErrorText is the unstyled message for err.
func ErrorText(err error) string {
	var (
		validation *domain.ValidationError
		rejected   *domain.PanelRejectedError
		transport  *domain.TransportError
	)

	switch {
	case errors.As(err, &validation):
		return "Invalid " + validation.Error()
	case errors.As(err, &transport):
		return "Panel did not answer in time: " + UnknownOutcome + "."
	case errors.As(err, &rejected):
		body := strings.TrimSpace(rejected.Body)
		if body == "" {
			return fmt.Sprintf("Panel rejected the request (status %d).", rejected.Status)
		}
		return fmt.Sprintf("Panel rejected the request (status %d): %s", rejected.Status, body)
	case errors.Is(err, domain.ErrNoCapacity), errors.Is(err, domain.ErrAllocationNotFound):
		return "No free allocation on the node. Try again later."
	case errors.Is(err, domain.ErrSessionAlreadyActive):
		return "You already have an active session. Reply cancel to end it."
	case errors.Is(err, domain.ErrNoActiveSession):
		return "No active session."
	case errors.Is(err, domain.ErrSessionBusy):
		return "Still working on your previous reply."
	case errors.Is(err, domain.ErrSessionTimedOut):
		return "Session timed out."
	case errors.Is(err, domain.ErrAccountNotLinked):
		return "Your panel account is not linked. Register first."
	case errors.Is(err, domain.ErrCredentialNotFound):
		return "No client key stored. Set one with manage key."
	case errors.Is(err, domain.ErrNotAdmin):
		return "This command is for admins only."
	case errors.Is(err, domain.ErrUnknownOffering):
		return "Unknown offering."
	default:
		return "Error: " + err.Error()
	}
}

func tierSummary(tier domain.Tier) string {
	return fmt.Sprintf("%s (%d MB, %d%% CPU, %d MB disk)", tier.Name, tier.MaxMemoryMB, tier.MaxCPUPercent, tier.MaxDiskMB)
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return s.barBracket.Render("[]")
	}

	clamped := clampPercent(percent)
	filled := int((clamped / 100) * float64(width))
	if filled > width {
		filled = width
	}

	fillStyle := s.barFill.Foreground(interpolateColor(clamped, 0, 100))
	return fmt.Sprintf("%s%s%s%s %3.0f%%",
		s.barBracket.Render("["),
		fillStyle.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
		clamped,
	)
}

func clampPercent(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

// interpolateColor maps value onto the 240-255 grey ramp.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max <= min {
		return lipgloss.Color("255")
	}
	ratio := (clampPercent(value) - min) / (max - min)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return lipgloss.Color(fmt.Sprintf("%d", 240+int(ratio*15)))
}

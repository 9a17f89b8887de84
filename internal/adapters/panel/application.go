package panel

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bnema/panelbot/internal/domain"
	"github.com/bnema/panelbot/internal/ports"
)

const (
	applicationPrefix = "/api/application"
	listPageSize      = "100"
)

var _ ports.PanelApplicationAPI = (*ApplicationClient)(nil)

// ApplicationClient talks to the administrative API with the bot's own key.
type ApplicationClient struct {
	transport transport
	key       domain.ApplicationKey
	timeouts  Timeouts
}

func NewApplicationClient(api API, key domain.ApplicationKey, httpClient *http.Client, timeouts Timeouts) (*ApplicationClient, error) {
	if strings.TrimSpace(string(key)) == "" {
		return nil, errors.New("panel application key is required")
	}
	t, err := newTransport(api, httpClient)
	if err != nil {
		return nil, err
	}
	return &ApplicationClient{transport: t, key: key, timeouts: timeouts}, nil
}

func (c *ApplicationClient) ListAllocations(ctx context.Context, nodeID int) ([]domain.Allocation, error) {
	const op = "list allocations"

	resp, err := c.get(ctx, op, fmt.Sprintf("%s/nodes/%d/allocations", applicationPrefix, nodeID), url.Values{"per_page": {listPageSize}})
	if err != nil {
		return nil, err
	}

	var payload listEnvelope[allocationAttributes]
	if err := decode(op, resp, &payload); err != nil {
		return nil, err
	}

	allocations := make([]domain.Allocation, 0, len(payload.Data))
	for _, item := range payload.Data {
		allocations = append(allocations, domain.Allocation{
			ID:       domain.AllocationID(item.Attributes.ID),
			IP:       item.Attributes.IP,
			Port:     item.Attributes.Port,
			Assigned: item.Attributes.Assigned,
		})
	}
	return allocations, nil
}

// CreateServer is sent once. The caller interprets the status.
func (c *ApplicationClient) CreateServer(ctx context.Context, payload ports.CreateServerPayload) (ports.PanelResponse, error) {
	return c.transport.do(ctx, request{
		op:      "create server",
		method:  http.MethodPost,
		path:    applicationPrefix + "/servers",
		body:    payload,
		token:   string(c.key),
		timeout: c.timeouts.create(),
	})
}

func (c *ApplicationClient) DeleteServer(ctx context.Context, id domain.ServerID) error {
	const op = "delete server"

	resp, err := c.transport.do(ctx, request{
		op:      op,
		method:  http.MethodDelete,
		path:    applicationPrefix + "/servers/" + strconv.Itoa(int(id)),
		token:   string(c.key),
		timeout: c.timeouts.request(),
	})
	if err != nil {
		return err
	}
	return expect(op, resp, http.StatusNoContent, http.StatusOK)
}

func (c *ApplicationClient) ListServers(ctx context.Context) ([]domain.Server, error) {
	const op = "list servers"

	resp, err := c.get(ctx, op, applicationPrefix+"/servers", url.Values{"per_page": {listPageSize}})
	if err != nil {
		return nil, err
	}

	var payload listEnvelope[serverAttributes]
	if err := decode(op, resp, &payload); err != nil {
		return nil, err
	}

	servers := make([]domain.Server, 0, len(payload.Data))
	for _, item := range payload.Data {
		attrs := item.Attributes
		servers = append(servers, domain.Server{
			ID:         domain.ServerID(attrs.ID),
			Name:       attrs.Name,
			Identifier: domain.InstanceIdentifier(attrs.Identifier),
			MemoryMB:   attrs.Limits.Memory,
			CPUPercent: attrs.Limits.CPU,
			DiskMB:     attrs.Limits.Disk,
		})
	}
	return servers, nil
}

func (c *ApplicationClient) FindUserByEmail(ctx context.Context, email string) (domain.PanelUserID, error) {
	const op = "find user"

	resp, err := c.get(ctx, op, applicationPrefix+"/users", url.Values{"filter[email]": {strings.TrimSpace(email)}})
	if err != nil {
		return 0, err
	}

	var payload listEnvelope[userAttributes]
	if err := decode(op, resp, &payload); err != nil {
		return 0, err
	}
	if len(payload.Data) == 0 || payload.Data[0].Attributes.ID <= 0 {
		return 0, domain.ErrPanelUserNotFound
	}
	return domain.PanelUserID(payload.Data[0].Attributes.ID), nil
}

func (c *ApplicationClient) CreateUser(ctx context.Context, account domain.PanelAccount) (domain.PanelUserID, error) {
	const op = "create user"

	resp, err := c.transport.do(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   applicationPrefix + "/users",
		body: createUserRequest{
			Email:     account.Email,
			Username:  account.Username,
			FirstName: account.FirstName,
			LastName:  account.LastName,
			Password:  account.Password,
		},
		token:   string(c.key),
		timeout: c.timeouts.request(),
	})
	if err != nil {
		return 0, err
	}
	if err := expect(op, resp, http.StatusCreated, http.StatusOK); err != nil {
		return 0, err
	}

	var payload objectEnvelope[userAttributes]
	if err := decode(op, resp, &payload); err != nil {
		return 0, err
	}
	if payload.Attributes.ID <= 0 {
		return 0, fmt.Errorf("%s: response is missing the user id", op)
	}
	return domain.PanelUserID(payload.Attributes.ID), nil
}

func (c *ApplicationClient) get(ctx context.Context, op, path string, query url.Values) (ports.PanelResponse, error) {
	resp, err := c.transport.do(ctx, request{
		op:      op,
		method:  http.MethodGet,
		path:    path,
		query:   query,
		token:   string(c.key),
		timeout: c.timeouts.request(),
	})
	if err != nil {
		return ports.PanelResponse{}, err
	}
	if err := expect(op, resp, http.StatusOK); err != nil {
		return ports.PanelResponse{}, err
	}
	return resp, nil
}

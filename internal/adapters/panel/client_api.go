package panel

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/panelbot/internal/domain"
	"github.com/bnema/panelbot/internal/ports"
)

const clientPrefix = "/api/client/servers/"

var _ ports.PanelClientAPI = (*ClientAPI)(nil)

// ClientAPI acts on servers with a member's personal key, passed per call.
type ClientAPI struct {
	transport transport
	timeouts  Timeouts
}

func NewClientAPI(api API, httpClient *http.Client, timeouts Timeouts) (*ClientAPI, error) {
	t, err := newTransport(api, httpClient)
	if err != nil {
		return nil, err
	}
	return &ClientAPI{transport: t, timeouts: timeouts}, nil
}

func (c *ClientAPI) SendPowerSignal(ctx context.Context, key domain.ClientKey, identifier domain.InstanceIdentifier, signal domain.PowerSignal) error {
	const op = "send power signal"

	resp, err := c.post(ctx, op, key, identifier, "/power", powerRequest{Signal: string(signal)})
	if err != nil {
		return err
	}
	return expect(op, resp, http.StatusNoContent, http.StatusOK, http.StatusAccepted)
}

func (c *ClientAPI) Reinstall(ctx context.Context, key domain.ClientKey, identifier domain.InstanceIdentifier) error {
	const op = "reinstall server"

	resp, err := c.post(ctx, op, key, identifier, "/settings/reinstall", nil)
	if err != nil {
		return err
	}
	return expect(op, resp, http.StatusNoContent, http.StatusOK, http.StatusAccepted)
}

func (c *ClientAPI) GetServer(ctx context.Context, key domain.ClientKey, identifier domain.InstanceIdentifier) (domain.ServerDetails, error) {
	const op = "get server"

	if err := checkClientArgs(key, identifier); err != nil {
		return domain.ServerDetails{}, err
	}

	resp, err := c.transport.do(ctx, request{
		op:      op,
		method:  http.MethodGet,
		path:    clientPrefix + url.PathEscape(string(identifier)),
		token:   string(key),
		timeout: c.timeouts.request(),
	})
	if err != nil {
		return domain.ServerDetails{}, err
	}
	if err := expect(op, resp, http.StatusOK); err != nil {
		return domain.ServerDetails{}, err
	}

	var payload objectEnvelope[clientServerAttributes]
	if err := decode(op, resp, &payload); err != nil {
		return domain.ServerDetails{}, err
	}

	return domain.ServerDetails{
		Name:       payload.Attributes.Name,
		Identifier: domain.InstanceIdentifier(payload.Attributes.Identifier),
		SFTPHost:   payload.Attributes.SFTPDetails.IP,
		SFTPPort:   payload.Attributes.SFTPDetails.Port,
	}, nil
}

func (c *ClientAPI) post(ctx context.Context, op string, key domain.ClientKey, identifier domain.InstanceIdentifier, suffix string, body any) (ports.PanelResponse, error) {
	if err := checkClientArgs(key, identifier); err != nil {
		return ports.PanelResponse{}, err
	}
	return c.transport.do(ctx, request{
		op:      op,
		method:  http.MethodPost,
		path:    clientPrefix + url.PathEscape(string(identifier)) + suffix,
		body:    body,
		token:   string(key),
		timeout: c.timeouts.request(),
	})
}

func checkClientArgs(key domain.ClientKey, identifier domain.InstanceIdentifier) error {
	if strings.TrimSpace(string(key)) == "" {
		return errors.New("client key is required")
	}
	if strings.TrimSpace(string(identifier)) == "" {
		return errors.New("server identifier is required")
	}
	return nil
}

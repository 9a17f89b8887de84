package panel

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panelbot/internal/domain"
)

func TestSendPowerSignalUsesMemberKey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/client/servers/abc123/power", r.URL.Path)
		assert.Equal(t, "Bearer ptlc_member", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "restart", body["signal"])
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	client, err := NewClientAPI(API{BaseURL: server.URL}, server.Client(), Timeouts{})
	require.NoError(t, err)

	require.NoError(t, client.SendPowerSignal(context.Background(), "ptlc_member", "abc123", domain.PowerRestart))
}

func TestSendPowerSignalRejectedByPanel(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"errors":[{"code":"AccessDeniedHttpException"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClientAPI(API{BaseURL: server.URL}, server.Client(), Timeouts{})
	require.NoError(t, err)

	err = client.SendPowerSignal(context.Background(), "ptlc_member", "abc123", domain.PowerStart)

	var rejected *domain.PanelRejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, http.StatusForbidden, rejected.Status)
}

func TestReinstallHitsSettingsEndpoint(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/client/servers/abc123/settings/reinstall", r.URL.Path)
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(server.Close)

	client, err := NewClientAPI(API{BaseURL: server.URL}, server.Client(), Timeouts{})
	require.NoError(t, err)

	require.NoError(t, client.Reinstall(context.Background(), "ptlc_member", "abc123"))
}

func TestGetServerMapsSFTPDetails(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/client/servers/abc123", r.URL.Path)
		_, _ = w.Write([]byte(`{"attributes":{"name":"Test","identifier":"abc123","sftp_details":{"ip":"node.example.com","port":2022}}}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClientAPI(API{BaseURL: server.URL}, server.Client(), Timeouts{})
	require.NoError(t, err)

	details, err := client.GetServer(context.Background(), "ptlc_member", "abc123")
	require.NoError(t, err)
	assert.Equal(t, domain.ServerDetails{Name: "Test", Identifier: "abc123", SFTPHost: "node.example.com", SFTPPort: 2022}, details)
}

func TestClientAPIRejectsMissingArguments(t *testing.T) {
	t.Parallel()

	client, err := NewClientAPI(API{BaseURL: "https://panel.example.com"}, nil, Timeouts{})
	require.NoError(t, err)

	err = client.SendPowerSignal(context.Background(), "", "abc123", domain.PowerStart)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client key is required")

	_, err = client.GetServer(context.Background(), "ptlc_member", " ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server identifier is required")
}

func TestTransportFailureIsTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewClientAPI(API{BaseURL: url}, nil, Timeouts{})
	require.NoError(t, err)

	err = client.Reinstall(context.Background(), "ptlc_member", "abc123")

	var transportErr *domain.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "reinstall server", transportErr.Op)
}

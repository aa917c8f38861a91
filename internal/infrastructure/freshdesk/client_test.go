package freshdesk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siges-soporte/siges-api/internal/application/ports"
	"github.com/siges-soporte/siges-api/internal/infrastructure/freshdesk"
	"github.com/siges-soporte/siges-api/pkg/config"
)

// newTestClient levanta un servidor que responde tickets y captura la query
// recibida, y devuelve un cliente apuntando a él.
func newTestClient(t *testing.T, tickets []ports.HelpdeskTicket) (*freshdesk.Client, *url.Values) {
	t.Helper()
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(tickets))
	}))
	t.Cleanup(srv.Close)
	return freshdesk.NewClient(config.FreshdeskConfig{Domain: srv.URL, APIKey: "clave"}), &gotQuery
}

// ──────────────────────────────────────────────────────────────────────────────
// ListTickets
// ──────────────────────────────────────────────────────────────────────────────

func TestListTickets_ReenviaFiltrosDeGrupoYAgente(t *testing.T) {
	client, gotQuery := newTestClient(t, []ports.HelpdeskTicket{
		{ID: 1, Subject: "uno"},
		{ID: 2, Subject: "dos"},
	})

	_, err := client.ListTickets(context.Background(), ports.TicketFilter{
		Page:    2,
		GroupID: 10,
		AgentID: 99,
	})
	require.NoError(t, err)

	assert.Equal(t, "10", gotQuery.Get("group_id"))
	assert.Equal(t, "99", gotQuery.Get("agent_id"))
	assert.Equal(t, "2", gotQuery.Get("page"))
}

func TestListTickets_SinFiltros_NoMandaParams(t *testing.T) {
	client, gotQuery := newTestClient(t, nil)

	_, err := client.ListTickets(context.Background(), ports.TicketFilter{})
	require.NoError(t, err)

	assert.Empty(t, gotQuery.Get("group_id"))
	assert.Empty(t, gotQuery.Get("agent_id"))
	assert.Empty(t, gotQuery.Get("page"))
}

func TestListTickets_FiltraStatusLocalmente(t *testing.T) {
	client, _ := newTestClient(t, []ports.HelpdeskTicket{
		{ID: 1, Status: 2},
		{ID: 2, Status: 5},
		{ID: 3, Status: 2},
	})

	out, err := client.ListTickets(context.Background(), ports.TicketFilter{Status: 2})
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(3), out[1].ID)
}

func TestListTickets_ErrorDelProveedor_PreservaStatusYCuerpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"rate limit"}`))
	}))
	t.Cleanup(srv.Close)
	client := freshdesk.NewClient(config.FreshdeskConfig{Domain: srv.URL, APIKey: "clave"})

	_, err := client.ListTickets(context.Background(), ports.TicketFilter{})
	var he *ports.HelpdeskError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusTooManyRequests, he.StatusCode)
	assert.Contains(t, he.Body, "rate limit")
}

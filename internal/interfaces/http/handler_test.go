package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/usecase"
	"github.com/siges-soporte/siges-api/internal/domain"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
	apphttp "github.com/siges-soporte/siges-api/internal/interfaces/http"
	"github.com/siges-soporte/siges-api/pkg/codegen"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repos en memoria para montar handlers reales sobre app.Test
// ──────────────────────────────────────────────────────────────────────────────

type stubClientRepo struct {
	clients map[string]*entity.Client
}

func newStubClientRepo(clients ...*entity.Client) *stubClientRepo {
	r := &stubClientRepo{clients: map[string]*entity.Client{}}
	for _, c := range clients {
		r.clients[c.ID] = c
	}
	return r
}

func (r *stubClientRepo) Create(c *entity.Client) error {
	clone := *c
	r.clients[c.ID] = &clone
	return nil
}

func (r *stubClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}

func (r *stubClientRepo) List() ([]*entity.Client, error) {
	ids := make([]string, 0, len(r.clients))
	for id := range r.clients {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*entity.Client, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.clients[id])
	}
	return out, nil
}

func (r *stubClientRepo) Update(c *entity.Client) error { return nil }

func (r *stubClientRepo) FindByInfoAndEmail(info, email string) (*entity.Client, error) {
	return nil, nil
}

func (r *stubClientRepo) MissingIDs(ids []string) ([]string, error) { return nil, nil }

type stubOpticketRepo struct {
	nextID  int64
	tickets map[int64]*entity.Opticket
}

func newStubOpticketRepo() *stubOpticketRepo {
	return &stubOpticketRepo{tickets: map[int64]*entity.Opticket{}}
}

func (r *stubOpticketRepo) Create(op *entity.Opticket) error {
	r.nextID++
	op.ID = r.nextID
	clone := *op
	r.tickets[op.ID] = &clone
	return nil
}

func (r *stubOpticketRepo) GetByID(id int64) (*entity.Opticket, error) {
	return r.tickets[id], nil
}

func (r *stubOpticketRepo) List() ([]*entity.Opticket, error) {
	ids := make([]int64, 0, len(r.tickets))
	for id := range r.tickets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Opticket, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.tickets[id])
	}
	return out, nil
}

func (r *stubOpticketRepo) Delete(id int64) error {
	if _, ok := r.tickets[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tickets, id)
	return nil
}

type stubPcRepo struct {
	nextID int64
	pcs    map[int64]*entity.Pc
}

func newStubPcRepo() *stubPcRepo {
	return &stubPcRepo{pcs: map[int64]*entity.Pc{}}
}

func (r *stubPcRepo) Create(pc *entity.Pc) error {
	r.nextID++
	pc.ID = r.nextID
	clone := *pc
	r.pcs[pc.ID] = &clone
	return nil
}

func (r *stubPcRepo) GetByID(id int64) (*entity.Pc, error) { return r.pcs[id], nil }

func (r *stubPcRepo) List() ([]*entity.Pc, error) {
	out := make([]*entity.Pc, 0, len(r.pcs))
	for _, pc := range r.pcs {
		out = append(out, pc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubPcRepo) ListByClient(clientID string, areas []string) ([]*entity.Pc, error) {
	var out []*entity.Pc
	for _, pc := range r.pcs {
		if pc.ClientID == nil || *pc.ClientID != clientID {
			continue
		}
		if len(areas) > 0 {
			found := false
			for _, a := range areas {
				if pc.Area == a {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, pc)
	}
	return out, nil
}

func (r *stubPcRepo) ListByTeamviewerID(teamviewerID string) ([]*entity.Pc, error) {
	var out []*entity.Pc
	for _, pc := range r.pcs {
		if pc.TeamviewerID == teamviewerID {
			out = append(out, pc)
		}
	}
	return out, nil
}

func (r *stubPcRepo) Update(pc *entity.Pc) error {
	clone := *pc
	r.pcs[pc.ID] = &clone
	return nil
}

func (r *stubPcRepo) UpdateByTeamviewerID(pc *entity.Pc) (int64, error) {
	var touched int64
	for id, existing := range r.pcs {
		if existing.TeamviewerID != pc.TeamviewerID {
			continue
		}
		clone := *pc
		clone.ID = id
		r.pcs[id] = &clone
		touched++
	}
	return touched, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Montaje y helpers HTTP
// ──────────────────────────────────────────────────────────────────────────────

func buildHandlerApp(clients *stubClientRepo) (*fiber.App, *stubOpticketRepo, *stubPcRepo) {
	optickets := newStubOpticketRepo()
	pcs := newStubPcRepo()

	clientHandler := apphttp.NewClientHandler(usecase.NewClientUseCase(clients))
	opticketHandler := apphttp.NewOpticketHandler(usecase.NewOpticketUseCase(optickets))
	pcHandler := apphttp.NewPcHandler(usecase.NewPcUseCase(pcs, clients))

	app := fiber.New()
	app.Get("/clients", clientHandler.List)
	app.Post("/clients", clientHandler.Create)
	app.Put("/clients", clientHandler.Update)
	app.Get("/clients/:clientId/email", clientHandler.GetEmail)
	app.Get("/optickets", opticketHandler.List)
	app.Post("/optickets", opticketHandler.Create)
	app.Delete("/optickets", opticketHandler.Delete)
	app.Get("/pcs", pcHandler.List)
	app.Post("/pcs", pcHandler.Upsert)
	return app, optickets, pcs
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Clients
// ──────────────────────────────────────────────────────────────────────────────

func TestClients_Create_SinID_GeneraCodigo(t *testing.T) {
	app, _, _ := buildHandlerApp(newStubClientRepo())

	resp := doJSON(t, app, http.MethodPost, "/clients", dto.CreateClientRequest{
		Email: []string{"global@empresa.cl"},
		Info:  "Empresa Uno",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeBody[dto.ClientResponse](t, resp)
	assert.True(t, codegen.Valid(out.ID), "el código generado debe tener forma AB1234: %q", out.ID)
	assert.Equal(t, []string{"global@empresa.cl"}, out.Email)
}

func TestClients_Create_IDTomado_Retorna409(t *testing.T) {
	app, _, _ := buildHandlerApp(newStubClientRepo(
		&entity.Client{ID: "AB1234", Info: "Empresa Uno"},
	))

	resp := doJSON(t, app, http.MethodPost, "/clients", dto.CreateClientRequest{
		ID:   "AB1234",
		Info: "Empresa Dos",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Cliente ya existente", out.Message)
}

func TestClients_Update_SinID_Retorna400(t *testing.T) {
	app, _, _ := buildHandlerApp(newStubClientRepo())

	resp := doJSON(t, app, http.MethodPut, "/clients", dto.UpdateClientRequest{Info: "Sin ID"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClients_GetEmail_DevuelveGlobal(t *testing.T) {
	app, _, _ := buildHandlerApp(newStubClientRepo(
		&entity.Client{ID: "AB1234", Emails: []string{"global@empresa.cl", "otro@empresa.cl"}},
	))

	resp := doJSON(t, app, http.MethodGet, "/clients/AB1234/email", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[dto.ClientEmailResponse](t, resp)
	assert.Equal(t, "global@empresa.cl", out.Email)
}

func TestClients_GetEmail_Inexistente_Retorna404(t *testing.T) {
	app, _, _ := buildHandlerApp(newStubClientRepo())

	resp := doJSON(t, app, http.MethodGet, "/clients/ZZ0000/email", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Optickets
// ──────────────────────────────────────────────────────────────────────────────

func TestOptickets_Create_SinDetalle_Retorna400(t *testing.T) {
	app, _, _ := buildHandlerApp(newStubClientRepo())

	resp := doJSON(t, app, http.MethodPost, "/optickets", dto.CreateOpticketRequest{
		Name: "Impresora caída",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Faltan parametros", out.Message)
}

func TestOptickets_CicloCompleto(t *testing.T) {
	app, repo, _ := buildHandlerApp(newStubClientRepo())

	resp := doJSON(t, app, http.MethodPost, "/optickets", dto.CreateOpticketRequest{
		Name:   "Impresora caída",
		Client: "Empresa Uno",
		Detail: "No imprime desde ayer",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[dto.OpticketResponse](t, resp)
	assert.Equal(t, "Impresora caída", created.Name)
	require.Len(t, repo.tickets, 1)

	resp = doJSON(t, app, http.MethodDelete, "/optickets?id=1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	msg := decodeBody[dto.MessageResponse](t, resp)
	assert.Equal(t, "Opticket eliminado", msg.Message)
	assert.Empty(t, repo.tickets)
}

func TestOptickets_Delete_IDNoNumerico_Retorna400(t *testing.T) {
	app, _, _ := buildHandlerApp(newStubClientRepo())

	resp := doJSON(t, app, http.MethodDelete, "/optickets?id=abc", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pcs
// ──────────────────────────────────────────────────────────────────────────────

func TestPcs_Upsert_NuevoYRepetido(t *testing.T) {
	app, _, repo := buildHandlerApp(newStubClientRepo(
		&entity.Client{ID: "AB1234", Info: "Empresa Uno"},
	))
	clientID := "AB1234"

	resp := doJSON(t, app, http.MethodPost, "/pcs", dto.CreatePcRequest{
		Alias:        "caja-1",
		TeamviewerID: "111222333",
		Area:         "P",
		ClientID:     &clientID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "primer alta crea")
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/pcs", dto.CreatePcRequest{
		Alias:        "caja-1-renombrada",
		TeamviewerID: "111222333",
		Area:         "P",
		ClientID:     &clientID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "mismo teamviewer_id actualiza")
	out := decodeBody[dto.PcResponse](t, resp)
	assert.Equal(t, "caja-1-renombrada", out.Alias)
	assert.Len(t, repo.pcs, 1, "el upsert no debe duplicar filas")
}

func TestPcs_Upsert_SinTeamviewerID_Retorna400(t *testing.T) {
	app, _, _ := buildHandlerApp(newStubClientRepo())

	resp := doJSON(t, app, http.MethodPost, "/pcs", dto.CreatePcRequest{Alias: "sin-tv"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPcs_List_AreaParaguas(t *testing.T) {
	app, _, repo := buildHandlerApp(newStubClientRepo(
		&entity.Client{ID: "AB1234", Info: "Empresa Uno"},
	))
	clientID := "AB1234"
	for _, area := range []string{"P", "N", "A", "T"} {
		_ = repo.Create(&entity.Pc{TeamviewerID: "tv-" + area, Area: area, ClientID: &clientID})
	}

	// P abarca también N (áreas de producción).
	resp := doJSON(t, app, http.MethodGet, "/pcs?clientId=AB1234&area=P", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[[]dto.PcResponse](t, resp)
	areas := make([]string, 0, len(out))
	for _, pc := range out {
		areas = append(areas, pc.Area)
	}
	assert.ElementsMatch(t, []string{"P", "N"}, areas)
}

func TestPcs_List_ClienteInexistente_Retorna404(t *testing.T) {
	app, _, _ := buildHandlerApp(newStubClientRepo())

	resp := doJSON(t, app, http.MethodGet, "/pcs?clientId=ZZ0000", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

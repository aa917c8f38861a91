package usecase_test

import (
	"context"
	"errors"
	"sort"

	"github.com/siges-soporte/siges-api/internal/application/ports"
	"github.com/siges-soporte/siges-api/internal/domain"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
	"github.com/siges-soporte/siges-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Respetan el contrato de los
// repos reales: los Get* devuelven (nil, nil) cuando no hay fila.
// ──────────────────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	r := &fakeClientRepo{clients: map[string]*entity.Client{}}
	for _, c := range clients {
		r.clients[c.ID] = c
	}
	return r
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	if _, ok := r.clients[c.ID]; ok {
		return domain.ErrConflict
	}
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}

func (r *fakeClientRepo) List() ([]*entity.Client, error) {
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

func (r *fakeClientRepo) Update(c *entity.Client) error {
	if _, ok := r.clients[c.ID]; !ok {
		return domain.ErrClientNotFound
	}
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) FindByInfoAndEmail(info, email string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.Info != info {
			continue
		}
		for _, addr := range c.Emails {
			if addr == email {
				return c, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) MissingIDs(ids []string) ([]string, error) {
	var missing []string
	for _, id := range ids {
		if _, ok := r.clients[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// takenClientRepo simula un espacio de códigos agotado: todo id ya existe.
type takenClientRepo struct {
	fakeClientRepo
}

func (r *takenClientRepo) GetByID(id string) (*entity.Client, error) {
	return &entity.Client{ID: id}, nil
}

type fakeBotuserRepo struct {
	nextID   int64
	botusers map[int64]*entity.Botuser
	links    map[int64]map[string]bool
	clients  *fakeClientRepo
}

func newFakeBotuserRepo(clients *fakeClientRepo) *fakeBotuserRepo {
	return &fakeBotuserRepo{
		botusers: map[int64]*entity.Botuser{},
		links:    map[int64]map[string]bool{},
		clients:  clients,
	}
}

func (r *fakeBotuserRepo) Create(b *entity.Botuser) error {
	for _, existing := range r.botusers {
		if existing.Phone == b.Phone {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	b.ID = r.nextID
	clone := *b
	r.botusers[b.ID] = &clone
	r.links[b.ID] = map[string]bool{}
	return nil
}

func (r *fakeBotuserRepo) hydrate(b *entity.Botuser) *entity.Botuser {
	out := *b
	out.Clients = []entity.Client{}
	ids := make([]string, 0, len(r.links[b.ID]))
	for id := range r.links[b.ID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if c := r.clients.clients[id]; c != nil {
			out.Clients = append(out.Clients, *c)
		}
	}
	return &out
}

func (r *fakeBotuserRepo) GetByID(id int64) (*entity.Botuser, error) {
	b, ok := r.botusers[id]
	if !ok {
		return nil, nil
	}
	return r.hydrate(b), nil
}

func (r *fakeBotuserRepo) GetByPhone(phone string) (*entity.Botuser, error) {
	for _, b := range r.botusers {
		if b.Phone == phone {
			return r.hydrate(b), nil
		}
	}
	return nil, nil
}

func (r *fakeBotuserRepo) List() ([]*entity.Botuser, error) {
	out := make([]*entity.Botuser, 0, len(r.botusers))
	for id := int64(1); id <= r.nextID; id++ {
		if b, ok := r.botusers[id]; ok {
			out = append(out, r.hydrate(b))
		}
	}
	return out, nil
}

func (r *fakeBotuserRepo) ListByClient(clientID string) ([]*entity.Botuser, error) {
	var out []*entity.Botuser
	for id := int64(1); id <= r.nextID; id++ {
		b, ok := r.botusers[id]
		if ok && r.links[id][clientID] {
			out = append(out, r.hydrate(b))
		}
	}
	return out, nil
}

func (r *fakeBotuserRepo) Update(b *entity.Botuser) error {
	if _, ok := r.botusers[b.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *b
	clone.Clients = nil
	r.botusers[b.ID] = &clone
	return nil
}

func (r *fakeBotuserRepo) AddClients(botuserID int64, clientIDs []string) error {
	if r.links[botuserID] == nil {
		r.links[botuserID] = map[string]bool{}
	}
	for _, id := range clientIDs {
		if _, ok := r.clients.clients[id]; !ok {
			return domain.ErrClientNotFound
		}
		r.links[botuserID][id] = true
	}
	return nil
}

func (r *fakeBotuserRepo) ReplaceClients(botuserID int64, clientIDs []string) error {
	r.links[botuserID] = map[string]bool{}
	return r.AddClients(botuserID, clientIDs)
}

func (r *fakeBotuserRepo) Delete(id int64) error {
	if _, ok := r.botusers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.botusers, id)
	delete(r.links, id)
	return nil
}

type fakeUserRepo struct {
	nextID  int64
	users   map[int64]*entity.User
	clients *fakeClientRepo
}

func newFakeUserRepo(clients *fakeClientRepo) *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}, clients: clients}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	if u.ClientID != nil {
		if _, ok := r.clients.clients[*u.ClientID]; !ok {
			return domain.ErrClientNotFound
		}
	}
	r.nextID++
	u.ID = r.nextID
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByIDWithClient(id int64) (*entity.User, error) {
	u, err := r.GetByID(id)
	if u == nil || err != nil {
		return u, err
	}
	if u.ClientID != nil {
		u.ClientInfo = r.clients.clients[*u.ClientID]
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for id := int64(1); id <= r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			withClient, _ := r.GetByIDWithClient(u.ID)
			out = append(out, withClient)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *u
	clone.ClientInfo = nil
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) UpdatePassword(id int64, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) SetStatus(id int64, status int) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (r *fakeUserRepo) Delete(id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// fakeTxRunner ejecuta el closure directo sobre los fakes, sin transacción.
type fakeTxRunner struct {
	users   repository.UserRepository
	clients repository.ClientRepository
}

func (r *fakeTxRunner) RunUserClient(_ context.Context, fn func(repository.UserRepository, repository.ClientRepository) error) error {
	return fn(r.users, r.clients)
}

// fakeMailer registra los correos enviados; con fail activo todos fallan.
type fakeMailer struct {
	sent []ports.Mail
	fail bool
}

func (m *fakeMailer) Send(mail ports.Mail) error {
	if m.fail {
		return &ports.SendError{Reason: ports.ReasonSend, Err: errors.New("smtp rechazado")}
	}
	m.sent = append(m.sent, mail)
	return nil
}

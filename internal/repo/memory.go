package repo

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memUser struct {
	id       int
	email    string
	password string
}

// Memory is a process-local Repository.
type Memory struct {
	mu     sync.Mutex
	users  map[string]memUser
	calcs  []Calculation
	nextID int
	now    func() time.Time
}

func NewMemory() *Memory {
	return &Memory{users: make(map[string]memUser), now: time.Now}
}

func (m *Memory) CreateUser(_ context.Context, login, email, password string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[login]; ok {
		return 0, ErrDuplicate
	}
	m.nextID++
	m.users[login] = memUser{id: m.nextID, email: email, password: password}
	return m.nextID, nil
}

func (m *Memory) GetByLogin(_ context.Context, login string) (int, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[login]
	if !ok {
		return 0, "", ErrNotFound
	}
	return u.id, u.password, nil
}

func (m *Memory) SaveCalculation(_ context.Context, c Calculation) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = int64(len(m.calcs) + 1)
	c.CreatedAt = m.now()
	m.calcs = append(m.calcs, c)
	return c.ID, nil
}

func (m *Memory) ListCalculations(_ context.Context, userID, limit int) ([]Calculation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Calculation
	for _, c := range m.calcs {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

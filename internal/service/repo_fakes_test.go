package service

import (
	"sort"
	"sync"
	"time"

	"tshirt-design-api/internal/domain"
)

// 内存版仓库，按接口语义实现（未找到返回 nil,nil；列表按创建时间倒序）

type memDesignRepo struct {
	mu    sync.Mutex
	seq   int
	items map[string]*domain.Design
	users map[string]*domain.User // FindAll 用来填 Owner
}

func newMemDesignRepo() *memDesignRepo {
	return &memDesignRepo{
		items: make(map[string]*domain.Design),
		users: make(map[string]*domain.User),
	}
}

var memBase = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func (r *memDesignRepo) Create(d *domain.Design) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if d.CreatedAt.IsZero() {
		d.CreatedAt = memBase.Add(time.Duration(r.seq) * time.Second)
	}
	d.UpdatedAt = d.CreatedAt
	cp := *d
	r.items[d.ID] = &cp
	return nil
}

func (r *memDesignRepo) FindByID(id string) (*domain.Design, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *memDesignRepo) FindByOwner(ownerID string) ([]domain.Design, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Design
	for _, d := range r.items {
		if d.OwnerID == ownerID {
			out = append(out, *d)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *memDesignRepo) FindAll(status domain.Status) ([]domain.Design, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Design
	for _, d := range r.items {
		if status != "" && d.Status != status {
			continue
		}
		cp := *d
		if u, ok := r.users[d.OwnerID]; ok {
			uc := *u
			cp.Owner = &uc
		}
		out = append(out, cp)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *memDesignRepo) Update(d *domain.Design) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d.UpdatedAt = time.Now()
	cp := *d
	r.items[d.ID] = &cp
	return nil
}

func (r *memDesignRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func sortNewestFirst(ds []domain.Design) {
	sort.Slice(ds, func(i, j int) bool { return ds[i].CreatedAt.After(ds[j].CreatedAt) })
}

type memUserRepo struct {
	mu      sync.Mutex
	items   map[string]*domain.User
	deleted map[string]bool
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{items: make(map[string]*domain.User), deleted: make(map[string]bool)}
}

func (r *memUserRepo) Create(u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByID(id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok || r.deleted[id] {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByEmail(email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.items {
		if u.Email == email && !r.deleted[id] {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(offset, limit int, q string, withDeleted bool) ([]domain.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.User
	for id, u := range r.items {
		if r.deleted[id] && !withDeleted {
			continue
		}
		out = append(out, *u)
	}
	total := int64(len(out))
	if offset > len(out) {
		offset = len(out)
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (r *memUserRepo) SoftDelete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok || r.deleted[id] {
		return false, nil
	}
	r.deleted[id] = true
	return true, nil
}

package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"phi-inspection/internal/data/entity"
	"phi-inspection/internal/data/repository"
	"phi-inspection/pkg/apperror"

	"github.com/google/uuid"
)

// tickClock advances one second per reading so updated-at ordering is observable.
// It starts at the wall clock so tokens minted from it verify against real time.
type tickClock struct {
	mu  sync.Mutex
	cur time.Time
}

func newTickClock() *tickClock {
	return &tickClock{cur: time.Now().UTC().Truncate(time.Second)}
}

func (c *tickClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.Add(time.Second)
	return c.cur
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperror.Conflict("User already exists with this email")
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) find(match func(entity.User) bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.ID == id })
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Email == email })
}

func (r *fakeUserRepo) FindByPhiID(_ context.Context, phiID string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.PhiID == phiID })
}

func (r *fakeUserRepo) FindByNIC(_ context.Context, nic string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.NIC == nic })
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Name, stored.Email, stored.Phone, stored.Address = user.Name, user.Email, user.Phone, user.Address
	stored.UpdatedAt = user.UpdatedAt
	r.users[user.ID] = stored
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.PasswordHash = user.PasswordHash
	stored.UpdatedAt = user.UpdatedAt
	r.users[user.ID] = stored
	return nil
}

type fakeShopRepo struct {
	mu    sync.Mutex
	shops map[uuid.UUID]entity.Shop
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{shops: map[uuid.UUID]entity.Shop{}}
}

func (r *fakeShopRepo) Create(_ context.Context, shop *entity.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shops[shop.ID] = *shop
	return nil
}

func (r *fakeShopRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	shop, ok := r.shops[id]
	if !ok {
		return nil, nil
	}
	return &shop, nil
}

func (r *fakeShopRepo) collect(match func(entity.Shop) bool) []*entity.Shop {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.Shop{}
	for _, s := range r.shops {
		if match(s) {
			shop := s
			out = append(out, &shop)
		}
	}
	return out
}

func (r *fakeShopRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Shop, error) {
	out := r.collect(func(s entity.Shop) bool { return s.OwnedBy(ownerID) })
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeShopRepo) FindByLicense(_ context.Context, license string) (*entity.Shop, error) {
	out := r.collect(func(s entity.Shop) bool { return s.LicenseNumber != nil && *s.LicenseNumber == license })
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *fakeShopRepo) FindUnowned(_ context.Context) ([]*entity.Shop, error) {
	return r.collect(func(s entity.Shop) bool { return s.CreatedBy == nil }), nil
}

func (r *fakeShopRepo) Directory(_ context.Context) ([]entity.ShopDirectoryEntry, error) {
	var entries []entity.ShopDirectoryEntry
	for _, s := range r.collect(func(entity.Shop) bool { return true }) {
		entries = append(entries, entity.ShopDirectoryEntry{Name: s.Name, OwnerName: s.OwnerName, Category: s.Category})
	}
	return entries, nil
}

func (r *fakeShopRepo) Update(_ context.Context, shop *entity.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shops[shop.ID]; !ok {
		return repository.ErrNotFound
	}
	r.shops[shop.ID] = *shop
	return nil
}

func (r *fakeShopRepo) AssignOwner(_ context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	shop, ok := r.shops[id]
	if !ok || shop.CreatedBy != nil {
		return repository.ErrNotFound
	}
	shop.CreatedBy = &ownerID
	r.shops[id] = shop
	return nil
}

func (r *fakeShopRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shops[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.shops, id)
	return nil
}

type fakeInspectionRepo struct {
	mu   sync.Mutex
	byID map[uuid.UUID]entity.Inspection
}

func newFakeInspectionRepo() *fakeInspectionRepo {
	return &fakeInspectionRepo{byID: map[uuid.UUID]entity.Inspection{}}
}

func (r *fakeInspectionRepo) Create(_ context.Context, in *entity.Inspection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[in.ID] = *in
	return nil
}

func (r *fakeInspectionRepo) FindAll(_ context.Context) ([]*entity.Inspection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Inspection, 0, len(r.byID))
	for _, in := range r.byID {
		item := in
		out = append(out, &item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InspectionDate.After(out[j].InspectionDate) })
	return out, nil
}

func (r *fakeInspectionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Inspection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	in, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &in, nil
}

func (r *fakeInspectionRepo) FindByPublicID(_ context.Context, publicID string) (*entity.Inspection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, in := range r.byID {
		if in.PublicID == publicID {
			found := in
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeInspectionRepo) Update(_ context.Context, in *entity.Inspection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[in.ID]; !ok {
		return repository.ErrNotFound
	}
	r.byID[in.ID] = *in
	return nil
}

func (r *fakeInspectionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[uuid.UUID]entity.Task{}}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = *task
	return nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	return &task, nil
}

func (r *fakeTaskRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.Task{}
	for _, t := range r.tasks {
		if t.CreatedBy == ownerID {
			task := t
			out = append(out, &task)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TaskDate.Equal(out[j].TaskDate) {
			return out[i].TaskDate.Before(out[j].TaskDate)
		}
		return out[i].ScheduledTime < out[j].ScheduledTime
	})
	return out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[task.ID]; !ok {
		return repository.ErrNotFound
	}
	r.tasks[task.ID] = *task
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

// Package memory provides in-memory repository implementations used by tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Poirot101/oct-recruitment-system/internal/common"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/application"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/profile"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/user"
)

type applicationKey struct {
	profileCode int64
	entryNumber string
}

// Store holds every table behind one mutex, mirroring the per-row atomicity of
// the real backend.
type Store struct {
	mu           sync.Mutex
	users        map[string]user.User
	profiles     map[int64]profile.Profile
	applications map[applicationKey]application.Application
	nextCode     int64
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]user.User),
		profiles:     make(map[int64]profile.Profile),
		applications: make(map[applicationKey]application.Application),
		nextCode:     1,
	}
}

func (s *Store) Users() user.Repository               { return (*userRepo)(s) }
func (s *Store) Profiles() profile.Repository         { return (*profileRepo)(s) }
func (s *Store) Applications() application.Repository { return (*applicationRepo)(s) }

type userRepo Store

func (r *userRepo) GetByID(ctx context.Context, userID string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.users[userID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	return &account, nil
}

func (r *userRepo) List(ctx context.Context) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]user.User, 0, len(r.users))
	for _, account := range r.users {
		items = append(items, account)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].UserID < items[j].UserID })
	return items, nil
}

func (r *userRepo) Create(ctx context.Context, account user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[account.UserID]; ok {
		return nil, common.NewError(common.CodeConflict, "user already exists", nil)
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	r.users[account.UserID] = account
	return &account, nil
}

type profileRepo Store

func (r *profileRepo) Create(ctx context.Context, p profile.Profile) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ProfileCode = r.nextCode
	r.nextCode++
	p.CreatedAt = time.Now().UTC()
	r.profiles[p.ProfileCode] = p
	return &p, nil
}

func (r *profileRepo) GetByCode(ctx context.Context, code int64) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[code]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "profile not found", nil)
	}
	return &p, nil
}

func (r *profileRepo) List(ctx context.Context) ([]profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]profile.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProfileCode < items[j].ProfileCode })
	return items, nil
}

func (r *profileRepo) ListByRecruiter(ctx context.Context, recruiterEmail string) ([]profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []profile.Profile
	for _, p := range r.profiles {
		if p.RecruiterEmail == recruiterEmail {
			items = append(items, p)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProfileCode < items[j].ProfileCode })
	return items, nil
}

type applicationRepo Store

func (r *applicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := applicationKey{app.ProfileCode, app.EntryNumber}
	if _, ok := r.applications[key]; ok {
		return nil, common.NewError(common.CodeConflict, "already applied to this profile", nil)
	}
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = application.StatusApplied
	}
	app.Profile = nil
	r.applications[key] = app
	return &app, nil
}

func (r *applicationRepo) FindByProfileAndStudent(ctx context.Context, profileCode int64, entryNumber string) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.applications[applicationKey{profileCode, entryNumber}]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	return &app, nil
}

func (r *applicationRepo) HasAccepted(ctx context.Context, entryNumber string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.applications {
		if app.EntryNumber == entryNumber && app.Status == application.StatusAccepted {
			return true, nil
		}
	}
	return false, nil
}

func (r *applicationRepo) ListByStudent(ctx context.Context, entryNumber string) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.applications {
		if app.EntryNumber == entryNumber {
			items = append(items, r.withProfile(app))
		}
	}
	sortApplications(items)
	return items, nil
}

func (r *applicationRepo) ListByRecruiter(ctx context.Context, recruiterEmail string) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.applications {
		if p, ok := r.profiles[app.ProfileCode]; ok && p.RecruiterEmail == recruiterEmail {
			items = append(items, r.withProfile(app))
		}
	}
	sortApplications(items)
	return items, nil
}

func (r *applicationRepo) ListAll(ctx context.Context) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]application.Application, 0, len(r.applications))
	for _, app := range r.applications {
		items = append(items, r.withProfile(app))
	}
	sortApplications(items)
	return items, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, profileCode int64, entryNumber string, status application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := applicationKey{profileCode, entryNumber}
	app, ok := r.applications[key]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	app.Status = status
	app.UpdatedAt = time.Now().UTC()
	r.applications[key] = app
	return &app, nil
}

func (r *applicationRepo) withProfile(app application.Application) application.Application {
	if p, ok := r.profiles[app.ProfileCode]; ok {
		app.Profile = &p
	}
	return app
}

func sortApplications(items []application.Application) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].ProfileCode != items[j].ProfileCode {
			return items[i].ProfileCode < items[j].ProfileCode
		}
		return items[i].EntryNumber < items[j].EntryNumber
	})
}

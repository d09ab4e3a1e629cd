package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	nextID    int
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("user-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id, roleID string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.RoleID = roleID
	return nil
}

func (r *stubUserRepo) UpdateStatus(_ context.Context, id string, active bool) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsActive = active
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

type stubRoleRepo struct {
	byID   map[string]*domain.Role
	nextID int
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{byID: make(map[string]*domain.Role)}
}

// seed inserts a role directly, bypassing service-level rules.
func (r *stubRoleRepo) seed(name string, perms ...string) *domain.Role {
	r.nextID++
	role := &domain.Role{
		ID:          fmt.Sprintf("role-%d", r.nextID),
		Name:        name,
		Permissions: perms,
	}
	r.byID[role.ID] = role
	return role
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	for _, existing := range r.byID {
		if existing.Name == role.Name {
			return nil, domain.ErrRoleExists
		}
	}
	r.nextID++
	clone := *role
	clone.ID = fmt.Sprintf("role-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubRoleRepo) FindByID(_ context.Context, id string) (*domain.Role, error) {
	role, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	clone := *role
	return &clone, nil
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	for _, role := range r.byID {
		if role.Name == name {
			clone := *role
			return &clone, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) List(_ context.Context) ([]*domain.Role, error) {
	out := make([]*domain.Role, 0, len(r.byID))
	for _, role := range r.byID {
		clone := *role
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubRoleRepo) Update(_ context.Context, id string, update ports.RoleUpdate) error {
	role, ok := r.byID[id]
	if !ok {
		return domain.ErrRoleNotFound
	}
	if update.Description != nil {
		role.Description = *update.Description
	}
	if update.Permissions != nil {
		role.Permissions = *update.Permissions
	}
	return nil
}

func (r *stubRoleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrRoleNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubRoleRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

type stubWebsiteRepo struct {
	byID   map[string]*domain.Website
	nextID int
}

func newStubWebsiteRepo() *stubWebsiteRepo {
	return &stubWebsiteRepo{byID: make(map[string]*domain.Website)}
}

func (r *stubWebsiteRepo) Create(_ context.Context, w *domain.Website) (*domain.Website, error) {
	r.nextID++
	clone := *w
	clone.ID = fmt.Sprintf("site-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubWebsiteRepo) FindByID(_ context.Context, id string) (*domain.Website, error) {
	w, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrWebsiteNotFound
	}
	clone := *w
	return &clone, nil
}

// List applies the same filters the real Mongo repo would use.
func (r *stubWebsiteRepo) List(_ context.Context, filter ports.ListWebsitesFilter) ([]*domain.Website, error) {
	var out []*domain.Website
	for _, w := range r.byID {
		if filter.OwnerID != "" && w.OwnerID != filter.OwnerID {
			continue
		}
		if filter.PublishedOnly && !w.Published {
			continue
		}
		clone := *w
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubWebsiteRepo) Update(_ context.Context, id string, update ports.WebsiteUpdate) error {
	w, ok := r.byID[id]
	if !ok {
		return domain.ErrWebsiteNotFound
	}
	if update.Title != nil {
		w.Title = *update.Title
	}
	if update.Description != nil {
		w.Description = *update.Description
	}
	if update.Template != nil {
		w.Template = *update.Template
	}
	if update.Content != nil {
		w.Content = *update.Content
	}
	if update.Published != nil {
		w.Published = *update.Published
	}
	if update.PublishedAt != nil {
		t := *update.PublishedAt
		w.PublishedAt = &t
	}
	w.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *stubWebsiteRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrWebsiteNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubWebsiteRepo) Count(_ context.Context, filter ports.ListWebsitesFilter) (int64, error) {
	list, _ := r.List(context.Background(), filter)
	return int64(len(list)), nil
}

type recordedView struct {
	websiteID string
	day       time.Time
	unique    bool
}

type stubAnalyticsRepo struct {
	views     []recordedView
	daily     []*domain.DailyAnalytics
	recordErr error
}

func (r *stubAnalyticsRepo) RecordView(_ context.Context, websiteID string, day time.Time, uniqueVisitor bool) error {
	if r.recordErr != nil {
		return r.recordErr
	}
	r.views = append(r.views, recordedView{websiteID: websiteID, day: day, unique: uniqueVisitor})
	return nil
}

func (r *stubAnalyticsRepo) LastDays(_ context.Context, websiteID string, n int) ([]*domain.DailyAnalytics, error) {
	if len(r.daily) > n {
		return r.daily[:n], nil
	}
	return r.daily, nil
}

type stubDeduper struct {
	seen    map[string]bool
	seenErr error
	markErr error
}

func newStubDeduper() *stubDeduper {
	return &stubDeduper{seen: make(map[string]bool)}
}

func (d *stubDeduper) key(websiteID, visitorID string, day time.Time) string {
	return websiteID + "|" + visitorID + "|" + day.Format("2006-01-02")
}

func (d *stubDeduper) SeenToday(_ context.Context, websiteID, visitorID string, day time.Time) (bool, error) {
	if d.seenErr != nil {
		return false, d.seenErr
	}
	return d.seen[d.key(websiteID, visitorID, day)], nil
}

func (d *stubDeduper) MarkSeen(_ context.Context, websiteID, visitorID string, day time.Time) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.seen[d.key(websiteID, visitorID, day)] = true
	return nil
}

// stubGenerator returns a fixed document without touching any provider.
type stubGenerator struct {
	doc    domain.ContentDocument
	source ports.ContentSource
	calls  []ports.GenerateInput
}

func (g *stubGenerator) Generate(_ context.Context, input ports.GenerateInput) (*domain.ContentDocument, ports.ContentSource) {
	g.calls = append(g.calls, input)
	clone := g.doc
	return &clone, g.source
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// editorActor builds an actor with the editor role for ownership tests.
func editorActor(userID string) ports.Actor {
	return ports.Actor{
		User: &domain.User{ID: userID, IsActive: true},
		Role: &domain.Role{Name: domain.RoleEditor},
	}
}

func adminActor(userID string) ports.Actor {
	return ports.Actor{
		User: &domain.User{ID: userID, IsActive: true},
		Role: &domain.Role{Name: domain.RoleAdmin},
	}
}

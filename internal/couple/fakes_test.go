package couple

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/saulo-duarte/vicinato-api/internal/identity"
	"github.com/saulo-duarte/vicinato-api/internal/profile"
)

// store backs both fake repositories so a unit of work can roll them
// back together.
type store struct {
	rels      map[uuid.UUID]Relationship
	profiles  map[uuid.UUID]profile.Profile
	createErr error
}

func newStore() *store {
	return &store{rels: map[uuid.UUID]Relationship{}, profiles: map[uuid.UUID]profile.Profile{}}
}

type fakeRels struct{ s *store }

func (f fakeRels) Create(_ context.Context, rel *Relationship) error {
	if f.s.createErr != nil {
		return f.s.createErr
	}
	f.s.rels[rel.ID] = *rel
	return nil
}

func (f fakeRels) FindBetween(_ context.Context, a, b uuid.UUID) (*Relationship, error) {
	for _, rel := range f.s.rels {
		if (rel.User1ID == a && rel.User2ID == b) || (rel.User1ID == b && rel.User2ID == a) {
			cp := rel
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (f fakeRels) Accept(_ context.Context, id, recipientID uuid.UUID) (*Relationship, error) {
	rel, ok := f.s.rels[id]
	if !ok || rel.User2ID != recipientID {
		return nil, ErrNotFound
	}
	rel.Status = StatusAccepted
	f.s.rels[id] = rel
	return &rel, nil
}

func (f fakeRels) ListForUser(_ context.Context, userID uuid.UUID) ([]Relationship, error) {
	var out []Relationship
	for _, rel := range f.s.rels {
		if rel.Involves(userID) {
			out = append(out, rel)
		}
	}
	return out, nil
}

func (f fakeRels) DeleteForUser(_ context.Context, id, userID uuid.UUID) error {
	rel, ok := f.s.rels[id]
	if !ok || !rel.Involves(userID) {
		return ErrNotFound
	}
	delete(f.s.rels, id)
	return nil
}

func (f fakeRels) FindAccepted(_ context.Context, userID uuid.UUID) (*Relationship, error) {
	var matches []Relationship
	for _, rel := range f.s.rels {
		if rel.Status == StatusAccepted && rel.Involves(userID) {
			matches = append(matches, rel)
		}
	}
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].CreatedAt.Before(matches[j].CreatedAt) })
	return &matches[0], nil
}

type fakeProfiles struct{ s *store }

func (f fakeProfiles) FindByID(_ context.Context, id uuid.UUID) (*profile.Profile, error) {
	p, ok := f.s.profiles[id]
	if !ok {
		return nil, profile.ErrNotFound
	}
	return &p, nil
}

func (f fakeProfiles) FindByIDs(_ context.Context, ids []uuid.UUID) ([]profile.Profile, error) {
	var out []profile.Profile
	for _, id := range ids {
		if p, ok := f.s.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f fakeProfiles) Update(_ context.Context, id uuid.UUID, _ map[string]interface{}) error {
	if _, ok := f.s.profiles[id]; !ok {
		return profile.ErrNotFound
	}
	return nil
}

func (f fakeProfiles) EnsureExists(_ context.Context, id uuid.UUID, fullName string) error {
	if _, ok := f.s.profiles[id]; !ok {
		f.s.profiles[id] = profile.Profile{ID: id, FullName: &fullName}
	}
	return nil
}

type fakeUnitOfWork struct{ s *store }

func (u fakeUnitOfWork) Do(_ context.Context, fn func(profiles profile.Repository, rels Repository) error) error {
	rels := make(map[uuid.UUID]Relationship, len(u.s.rels))
	for k, v := range u.s.rels {
		rels[k] = v
	}
	profiles := make(map[uuid.UUID]profile.Profile, len(u.s.profiles))
	for k, v := range u.s.profiles {
		profiles[k] = v
	}

	if err := fn(fakeProfiles{u.s}, fakeRels{u.s}); err != nil {
		u.s.rels, u.s.profiles = rels, profiles
		return err
	}
	return nil
}

type fakeDirectory struct {
	byEmail map[string]uuid.UUID
	err     error
}

func (d fakeDirectory) LookupUserIDByEmail(_ context.Context, email string) (uuid.UUID, error) {
	if d.err != nil {
		return uuid.Nil, d.err
	}
	id, ok := d.byEmail[email]
	if !ok {
		return uuid.Nil, identity.ErrUserNotFound
	}
	return id, nil
}

func newTestService(s *store, dir fakeDirectory) Service {
	return NewService(fakeRels{s}, fakeUnitOfWork{s}, dir, fakeProfiles{s})
}

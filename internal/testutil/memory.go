package testutil

import (
	"bytes"
	"context"
	"io"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/carlisting-server/internal/model"
)

// MemoryUsers is an in-memory model.UserStore.
type MemoryUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

var _ model.UserStore = (*MemoryUsers)(nil)

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{users: make(map[uuid.UUID]model.User)}
}

func (s *MemoryUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (s *MemoryUsers) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *MemoryUsers) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return model.User{}, model.ErrAlreadyExists
		}
	}
	s.users[user.ID] = user
	return user, nil
}

// Delete removes a user, leaving their issued tokens behind.
func (s *MemoryUsers) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

// MemoryTokens is an in-memory model.TokenStore.
type MemoryTokens struct {
	mu     sync.Mutex
	tokens []model.UserToken
}

var _ model.TokenStore = (*MemoryTokens)(nil)

func NewMemoryTokens() *MemoryTokens {
	return &MemoryTokens{}
}

func (s *MemoryTokens) Create(_ context.Context, token model.UserToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = append(s.tokens, token)
	return nil
}

func (s *MemoryTokens) PruneByUser(_ context.Context, userID uuid.UUID, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []model.UserToken
	seen := 0
	for i := len(s.tokens) - 1; i >= 0; i-- {
		t := s.tokens[i]
		if t.UserID == userID {
			seen++
			if seen > keep {
				continue
			}
		}
		kept = append(kept, t)
	}
	slices.Reverse(kept)
	s.tokens = kept
	return nil
}

// Count returns the number of tokens stored for userID.
func (s *MemoryTokens) Count(userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tokens {
		if t.UserID == userID {
			n++
		}
	}
	return n
}

// MemoryCars is an in-memory model.CarStore.
type MemoryCars struct {
	mu   sync.Mutex
	cars map[uuid.UUID]model.Car
}

var _ model.CarStore = (*MemoryCars)(nil)

func NewMemoryCars() *MemoryCars {
	return &MemoryCars{cars: make(map[uuid.UUID]model.Car)}
}

func (s *MemoryCars) Create(_ context.Context, car model.Car) (model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cars[car.ID] = car
	return car, nil
}

func (s *MemoryCars) ListByOwner(_ context.Context, ownerID uuid.UUID, search string) ([]model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(search)
	cars := make([]model.Car, 0)
	for _, c := range s.cars {
		if c.OwnerID != ownerID {
			continue
		}
		if needle == "" || carMatches(c, needle) {
			cars = append(cars, c)
		}
	}
	sort.Slice(cars, func(i, j int) bool {
		return cars[i].CreatedAt.After(cars[j].CreatedAt)
	})
	return cars, nil
}

func carMatches(c model.Car, needle string) bool {
	if strings.Contains(strings.ToLower(c.Title), needle) || strings.Contains(strings.ToLower(c.Description), needle) {
		return true
	}
	return slices.ContainsFunc(c.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), needle)
	})
}

func (s *MemoryCars) GetByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) (model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cars[id]
	if !ok || c.OwnerID != ownerID {
		return model.Car{}, model.ErrNotFound
	}
	return c, nil
}

func (s *MemoryCars) Update(_ context.Context, car model.Car) (model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cars[car.ID]
	if !ok || c.OwnerID != car.OwnerID {
		return model.Car{}, model.ErrNotFound
	}
	s.cars[car.ID] = car
	return car, nil
}

func (s *MemoryCars) DeleteByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cars[id]
	if !ok || c.OwnerID != ownerID {
		return 0, nil
	}
	delete(s.cars, id)
	return 1, nil
}

// MemoryStorage is an in-memory model.Storage.
type MemoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

var _ model.Storage = (*MemoryStorage)(nil)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string][]byte)}
}

func (s *MemoryStorage) Upload(_ context.Context, key string, reader io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *MemoryStorage) Download(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, model.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *MemoryStorage) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok, nil
}

// Len returns the number of stored objects.
func (s *MemoryStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

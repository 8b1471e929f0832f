package catalog

import (
	"errors"
	"sync"
)

var (
	ErrNotFound  = errors.New("plan not found")
	ErrDuplicate = errors.New("plan already exists")
)

// Repository stores catalog plans. List returns plans in catalog order,
// which is also the tie-break order for recommendations.
type Repository interface {
	List() ([]Product, error)
	GetByID(id string) (Product, error)
	Create(p Product) (Product, error)
	Update(id string, p Product) (Product, error)
	Delete(id string) error
	// Reset replaces all plans with the provided list (used for dev / seeding)
	Reset(plans []Product) error
}

// InMemoryRepository keeps plans in a slice. Used for tests, the CLI and
// deployments without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	for _, p := range seed {
		r.storage = append(r.storage, p.clone())
	}
	return r
}

func (r *InMemoryRepository) List() ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.storage))
	for i, p := range r.storage {
		out[i] = p.clone()
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p.clone(), nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.storage {
		if existing.ID == p.ID {
			return Product{}, ErrDuplicate
		}
	}
	r.storage = append(r.storage, p.clone())
	return p, nil
}

func (r *InMemoryRepository) Update(id string, p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			p.ID = id
			r.storage[i] = p.clone()
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Reset replaces the whole in-memory storage with the provided plans.
func (r *InMemoryRepository) Reset(plans []Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Product, 0, len(plans))
	for _, p := range plans {
		r.storage = append(r.storage, p.clone())
	}
	return nil
}

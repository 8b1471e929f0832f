package catalog

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every plan in catalog order.
func (s *Service) List() ([]Product, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Product, error) {
	return s.repo.GetByID(id)
}

// Create stores p; a plan without an id takes its slug as id.
func (s *Service) Create(p Product) (Product, error) {
	if p.ID == "" {
		p.ID = p.Slug
	}
	return s.repo.Create(p)
}

func (s *Service) Update(id string, p Product) (Product, error) {
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

// ResetPlans replaces all plans with the given list (used for dev / seeding).
func (s *Service) ResetPlans(plans []Product) error {
	for i := range plans {
		if plans[i].ID == "" {
			plans[i].ID = plans[i].Slug
		}
	}
	return s.repo.Reset(plans)
}

package recommend

import (
	"fmt"

	"github.com/wichananm65/pergola-planner/internal/catalog"
)

// PlanLister supplies the catalog, in catalog order.
type PlanLister interface {
	List() ([]catalog.Product, error)
}

// Observer is notified after each run. *metrics.Recorder satisfies it.
type Observer interface {
	ObserveRecommendations(count int)
}

type Service struct {
	plans    PlanLister
	observer Observer
}

// NewService builds a Service; observer may be nil.
func NewService(plans PlanLister, observer Observer) *Service {
	return &Service{plans: plans, observer: observer}
}

// Recommend loads the current catalog and ranks it for space.
func (s *Service) Recommend(space UserSpace) ([]Recommendation, error) {
	plans, err := s.plans.List()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	recs := Recommend(space, plans)
	if s.observer != nil {
		s.observer.ObserveRecommendations(len(recs))
	}
	return recs, nil
}

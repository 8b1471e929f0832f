package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/wichananm65/pergola-planner/internal/content"
	"github.com/wichananm65/pergola-planner/internal/recommend"
	"go.uber.org/zap"
)

// Recommender runs the engine against the live catalog.
type Recommender interface {
	Recommend(space recommend.UserSpace) ([]recommend.Recommendation, error)
}

// TransitionObserver is told about every step change.
type TransitionObserver interface {
	ObserveTransition(step string)
}

// View is what a client renders for a session.
type View struct {
	Session
	CanSubmit       bool                       `json:"canSubmit"`
	Errors          map[string]string          `json:"errors,omitempty"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Fallback        *content.Fallback          `json:"fallback,omitempty"`
	Disclaimer      string                     `json:"disclaimer"`
}

type Service struct {
	store       Store
	recommender Recommender
	content     content.Content
	observer    TransitionObserver
	logger      *zap.Logger
	now         func() time.Time
}

type Option func(*Service)

// WithObserver reports transitions to o.
func WithObserver(o TransitionObserver) Option {
	return func(s *Service) { s.observer = o }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store Store, r Recommender, c content.Content, opts ...Option) *Service {
	s := &Service{
		store:       store,
		recommender: r,
		content:     c,
		logger:      zap.NewNop(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Create() (View, error) {
	sess, err := s.store.Create(s.now().UTC())
	if err != nil {
		return View{}, fmt.Errorf("create session: %w", err)
	}
	s.logger.Debug("planner session created", zap.String("session", sess.ID))
	return s.view(sess)
}

func (s *Service) Get(id string) (View, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return View{}, err
	}
	return s.view(sess)
}

// Edit applies p and returns the refreshed view. The edit is kept only if
// the view can be built.
func (s *Service) Edit(id string, p FormPatch) (View, error) {
	var v View
	_, err := s.store.Update(id, func(sess *Session) error {
		sess.Edit(p, s.now().UTC())
		var err error
		v, err = s.view(*sess)
		return err
	})
	if err != nil {
		return View{}, err
	}
	return v, nil
}

func (s *Service) Submit(id string) (View, error) {
	return s.transition(id, (*Session).Submit)
}

func (s *Service) Reset(id string) (View, error) {
	return s.transition(id, (*Session).Reset)
}

func (s *Service) Delete(id string) error {
	return s.store.Delete(id)
}

// Prune drops sessions idle for longer than maxIdle.
func (s *Service) Prune(maxIdle time.Duration) int {
	n := s.store.Prune(s.now().UTC().Add(-maxIdle))
	if n > 0 {
		s.logger.Info("pruned idle planner sessions", zap.Int("count", n))
	}
	return n
}

// RunPruner calls Prune every interval until ctx is done. A non-positive
// maxIdle disables pruning.
func (s *Service) RunPruner(ctx context.Context, maxIdle, interval time.Duration) {
	if maxIdle <= 0 || interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Prune(maxIdle)
		}
	}
}

// transition changes the step and builds the new view while the store holds
// the session, so a failed view leaves the stored step untouched.
func (s *Service) transition(id string, step func(*Session, time.Time) error) (View, error) {
	var (
		from Step
		v    View
	)
	sess, err := s.store.Update(id, func(sess *Session) error {
		from = sess.Step
		if err := step(sess, s.now().UTC()); err != nil {
			return err
		}
		var err error
		v, err = s.view(*sess)
		return err
	})
	if err != nil {
		return View{}, err
	}
	s.logger.Debug("planner step changed",
		zap.String("session", sess.ID),
		zap.Stringer("from", from),
		zap.Stringer("to", sess.Step))
	if s.observer != nil {
		s.observer.ObserveTransition(sess.Step.String())
	}
	return v, nil
}

// view derives recommendations from the session's current form. Nothing is
// cached: every view recomputes.
func (s *Service) view(sess Session) (View, error) {
	v := View{
		Session:         sess,
		CanSubmit:       sess.Form.CanSubmit(),
		Recommendations: []recommend.Recommendation{},
		Disclaimer:      s.content.Disclaimer,
	}
	if errs := sess.Form.Validate(); len(errs) > 0 {
		v.Errors = errs
	}
	if sess.Step != StepResults {
		return v, nil
	}

	if space, ok := sess.Form.Space(); ok {
		recs, err := s.recommender.Recommend(space)
		if err != nil {
			return View{}, err
		}
		v.Recommendations = recs
	}
	v.Fallback = s.content.FallbackFor(len(v.Recommendations))
	return v, nil
}

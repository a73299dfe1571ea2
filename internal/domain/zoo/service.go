package zoo

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"digital-zoo/internal/platform/logger"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"component": "zoo"}),
		now:  time.Now,
	}
}

type AdmitInput struct {
	Kind    string
	Name    string
	Age     int
	Diet    string
	Habitat string
}

// Admit valida el input, construye la especie concreta y guarda el registro.
func (s *Service) Admit(ctx context.Context, in AdmitInput) (Record, error) {
	kind, err := ParseKind(in.Kind)
	if err != nil {
		return Record{}, err
	}

	a, err := New(kind,
		strings.TrimSpace(in.Name),
		in.Age,
		NewDiet(strings.TrimSpace(in.Diet)),
		NewHabitat(strings.TrimSpace(in.Habitat)),
	)
	if err != nil {
		return Record{}, err
	}

	r := Record{
		ID:        uuid.NewString(),
		Kind:      kind,
		Name:      a.Name(),
		Age:       a.Age(),
		Species:   a.Species(),
		Diet:      a.Diet().Type(),
		Habitat:   a.Habitat().Description(),
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return Record{}, fmt.Errorf("create animal: %w", err)
	}

	s.log.Info("animal admitted", map[string]any{
		"animal_id": r.ID,
		"kind":      string(r.Kind),
		"name":      r.Name,
	})
	return r, nil
}

func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	if strings.TrimSpace(id) == "" {
		return Record{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

// Release saca al animal del registro.
func (s *Service) Release(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("animal released", map[string]any{"animal_id": id})
	return nil
}

// Sounds hace la pasada de sonidos sobre todo el registro, en orden.
func (s *Service) Sounds(ctx context.Context) ([]string, error) {
	var buf bytes.Buffer
	err := s.withZoo(ctx, func(z *Zoo) {
		z.MakeAllAnimalsSound(&buf)
	})
	if err != nil {
		return nil, err
	}
	return splitLines(buf.String()), nil
}

// Feed hace la pasada de comida sobre todo el registro, en orden.
func (s *Service) Feed(ctx context.Context) ([]string, error) {
	var buf bytes.Buffer
	err := s.withZoo(ctx, func(z *Zoo) {
		z.FeedAll(&buf)
	})
	if err != nil {
		return nil, err
	}
	return splitLines(buf.String()), nil
}

// Info devuelve la ficha de un animal.
func (s *Service) Info(ctx context.Context, id string) (string, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	a, err := r.Animal()
	if err != nil {
		return "", fmt.Errorf("hydrate animal %s: %w", r.ID, err)
	}

	var buf bytes.Buffer
	DisplayInfo(&buf, a)
	return buf.String(), nil
}

// Report arma el mismo reporte que el escenario fijo, sobre el registro.
func (s *Service) Report(ctx context.Context) (string, error) {
	var buf bytes.Buffer
	err := s.withZoo(ctx, func(z *Zoo) {
		z.WriteReport(&buf)
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SeedCanonical admite los cuatro animales del escenario fijo.
func (s *Service) SeedCanonical(ctx context.Context) ([]Record, error) {
	out := make([]Record, 0, len(Canonical()))
	for _, c := range Canonical() {
		r, err := s.Admit(ctx, AdmitInput{
			Kind:    string(c.Kind),
			Name:    c.Name,
			Age:     c.Age,
			Diet:    c.Diet,
			Habitat: c.Habitat,
		})
		if err != nil {
			return out, fmt.Errorf("seed %s: %w", c.Name, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// withZoo arma una colección con el registro actual, ejecuta fn y la libera.
func (s *Service) withZoo(ctx context.Context, fn func(z *Zoo)) error {
	records, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list animals: %w", err)
	}

	z := NewZoo()
	defer z.Release()

	for _, r := range records {
		a, err := r.Animal()
		if err != nil {
			// registros con especies que ya no están registradas: se saltean
			s.log.Warn("skipping animal", map[string]any{
				"animal_id": r.ID,
				"kind":      string(r.Kind),
				"error":     err.Error(),
			})
			continue
		}
		z.Add(a)
	}

	fn(z)
	return nil
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}

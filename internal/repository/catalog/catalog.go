package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"portfolio-backend/internal/domain"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultCatalog []byte

type document struct {
	Projects  []domain.Project      `yaml:"projects"`
	TechStack []domain.TechCategory `yaml:"tech_stack"`
}

// catalogRepo serves showcase data parsed once at startup. It is read-only,
// so concurrent readers need no locking.
type catalogRepo struct {
	projects  []domain.Project
	byID      map[string]int
	techStack []domain.TechCategory
}

// NewDefaultRepository loads the catalog embedded in the binary
func NewDefaultRepository(validate *validator.Validate) (domain.PortfolioRepository, error) {
	return NewRepository(defaultCatalog, validate)
}

// NewRepository parses and validates a YAML catalog
func NewRepository(data []byte, validate *validator.Validate) (domain.PortfolioRepository, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	repo := &catalogRepo{
		projects:  doc.Projects,
		byID:      make(map[string]int, len(doc.Projects)),
		techStack: doc.TechStack,
	}
	for i := range doc.Projects {
		p := &doc.Projects[i]
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("catalog: project %d (%q): %w", i, p.ID, err)
		}
		if _, dup := repo.byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate project id %q", p.ID)
		}
		repo.byID[p.ID] = i
	}
	for i := range doc.TechStack {
		if err := validate.Struct(&doc.TechStack[i]); err != nil {
			return nil, fmt.Errorf("catalog: tech category %d (%q): %w", i, doc.TechStack[i].ID, err)
		}
	}
	return repo, nil
}

func (r *catalogRepo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

func (r *catalogRepo) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := r.projects[i]
	return &p, nil
}

func (r *catalogRepo) ListTechCategories(ctx context.Context) ([]domain.TechCategory, error) {
	out := make([]domain.TechCategory, len(r.techStack))
	copy(out, r.techStack)
	return out, nil
}

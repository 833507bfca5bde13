package services

import (
	"context"
	"strings"

	"ritual/internal/config"
	"ritual/internal/domain"
	"ritual/internal/errors"
	"ritual/internal/repository/sqlite"
	"ritual/internal/validation"

	"github.com/google/uuid"
)

// templateServiceImpl implements the TemplateService interface
type templateServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.TemplateValidator
}

// NewTemplateService creates a new TemplateService instance
func NewTemplateService(repo sqlite.Repository, cfg *config.Config) TemplateService {
	return &templateServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewTemplateValidatorWithConfig(cfg),
	}
}

// ListTemplates returns every template, enabled or not
func (s *templateServiceImpl) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	dbTemplates, err := s.repo.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Template.FromDatabaseSlice(dbTemplates), nil
}

// GetTemplate retrieves a template by its ID
func (s *templateServiceImpl) GetTemplate(ctx context.Context, id string) (*domain.Template, error) {
	dbTemplate, err := s.repo.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	tmpl := s.mapper.Template.FromDatabase(dbTemplate)
	return &tmpl, nil
}

// AddTemplate stores an enabled template with normalized days and returns its id
func (s *templateServiceImpl) AddTemplate(ctx context.Context, def domain.TemplateDefinition) (string, error) {
	def.Title = strings.TrimSpace(def.Title)
	if err := s.validator.ValidateDefinition(def); err != nil {
		return "", validation.ToAppError(err)
	}

	tmpl := domain.NewTemplate(def)
	tmpl.ID = uuid.NewString()

	if err := s.repo.PutTemplate(ctx, s.mapper.Template.ToDatabase(tmpl)); err != nil {
		return "", err
	}
	return tmpl.ID, nil
}

// UpdateTemplate applies patch to the template. Unknown ids are ignored.
func (s *templateServiceImpl) UpdateTemplate(ctx context.Context, id string, patch domain.TemplatePatch) error {
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		patch.Title = &trimmed
	}
	if err := s.validator.ValidatePatch(patch); err != nil {
		return validation.ToAppError(err)
	}
	if patch.IsEmpty() {
		return nil
	}

	dbTemplate, err := s.repo.GetTemplate(ctx, id)
	if err != nil {
		return errors.IgnoreNotFound(err)
	}

	updated := s.mapper.Template.FromDatabase(dbTemplate).Apply(patch)
	return s.repo.PutTemplate(ctx, s.mapper.Template.ToDatabase(updated))
}

// DeleteTemplate removes a template
func (s *templateServiceImpl) DeleteTemplate(ctx context.Context, id string) error {
	return errors.IgnoreNotFound(s.repo.DeleteTemplate(ctx, id))
}

// TemplatesForDate returns the enabled templates whose days include the
// weekday of date
func (s *templateServiceImpl) TemplatesForDate(ctx context.Context, date string) ([]domain.Template, error) {
	weekday, err := domain.WeekdayOf(date)
	if err != nil {
		return nil, errors.NewInvalidInputError("date", date, "must be YYYY-MM-DD")
	}

	all, err := s.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}

	var matching []domain.Template
	for _, tmpl := range all {
		if tmpl.AppliesOn(weekday) {
			matching = append(matching, tmpl)
		}
	}
	return matching, nil
}

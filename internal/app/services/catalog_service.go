package services

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/pedrohba/gradeplan/internal/app/models"
	"github.com/pedrohba/gradeplan/internal/app/repositories"
	"github.com/pedrohba/gradeplan/internal/pkg/apperrors"
)

// CatalogService owns the in-memory catalog snapshot. Readers get whatever
// snapshot is current at call time; Reload builds a fresh validated snapshot
// and swaps it in atomically, so in-flight optimizations keep the catalog they
// started with.
type CatalogService struct {
	catalogRepo *repositories.CatalogRepository
	current     atomic.Pointer[models.Catalog]
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo *repositories.CatalogRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Reload loads the catalog from storage, validates it and makes it current.
// On failure the previous snapshot stays in place.
func (s *CatalogService) Reload(ctx context.Context) (*models.Catalog, error) {
	catalog, err := s.catalogRepo.LoadCatalog(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to reload catalog")
		return nil, err
	}

	s.current.Store(catalog)
	s.logger.Info().Int("courses", catalog.Len()).Msg("Catalog reloaded")
	return catalog, nil
}

// Catalog returns the current snapshot, or ErrCatalogNotLoaded before the
// first successful load.
func (s *CatalogService) Catalog() (*models.Catalog, error) {
	catalog := s.current.Load()
	if catalog == nil {
		return nil, apperrors.ErrCatalogNotLoaded
	}
	return catalog, nil
}

// GetAllCourses returns every course of the current snapshot.
func (s *CatalogService) GetAllCourses() ([]*models.Course, error) {
	catalog, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	return catalog.Courses(), nil
}

// GetCourse returns one course with its offerings.
func (s *CatalogService) GetCourse(id string) (*models.Course, []*models.Offering, error) {
	catalog, err := s.Catalog()
	if err != nil {
		return nil, nil, err
	}

	course := catalog.Course(id)
	if course == nil {
		return nil, nil, apperrors.NewCustomError(apperrors.ErrResourceNotFound, "course "+id+" not found")
	}
	return course, catalog.Offerings(id), nil
}

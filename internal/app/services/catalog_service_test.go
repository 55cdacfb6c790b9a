package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrohba/gradeplan/internal/pkg/apperrors"
)

func TestCatalogService_NotLoaded(t *testing.T) {
	svc := NewCatalogService(nil, zerolog.Nop())

	_, err := svc.Catalog()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCatalogNotLoaded)

	_, err = svc.GetAllCourses()
	assert.ErrorIs(t, err, apperrors.ErrCatalogNotLoaded)

	_, _, err = svc.GetCourse("CS101")
	assert.ErrorIs(t, err, apperrors.ErrCatalogNotLoaded)
}

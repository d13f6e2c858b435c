package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/scorecard"
)

// fakeSchoolProvider serves schools from a fixed map and records lookups.
type fakeSchoolProvider struct {
	schools  map[string]*scorecard.University
	err      error
	requests []string
}

func (f *fakeSchoolProvider) Search(_ context.Context, _ scorecard.SearchParams) (*scorecard.SearchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &scorecard.SearchResult{}, nil
}

func (f *fakeSchoolProvider) GetSchool(_ context.Context, unitID string) (*scorecard.University, error) {
	f.requests = append(f.requests, unitID)
	if f.err != nil {
		return nil, f.err
	}
	if school, ok := f.schools[unitID]; ok {
		return school, nil
	}
	return nil, apperrors.ErrSchoolNotFound
}

func schoolNamed(name string) *scorecard.University {
	return &scorecard.University{Name: &name}
}

func TestCompare_EmptyIDList(t *testing.T) {
	svc := NewUniversityService(&fakeSchoolProvider{})

	_, err := svc.Compare(context.Background(), &dto.CompareRequest{})

	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCompare_TooManyIDs(t *testing.T) {
	svc := NewUniversityService(&fakeSchoolProvider{})

	_, err := svc.Compare(context.Background(), &dto.CompareRequest{
		UnitIDs: []int64{1, 2, 3, 4, 5, 6},
	})

	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCompare_SkipsUnknownIDs(t *testing.T) {
	provider := &fakeSchoolProvider{schools: map[string]*scorecard.University{
		"100654": schoolNamed("Alabama A & M University"),
		"100663": schoolNamed("University of Alabama at Birmingham"),
	}}
	svc := NewUniversityService(provider)

	schools, err := svc.Compare(context.Background(), &dto.CompareRequest{
		UnitIDs: []int64{100654, 999999, 100663},
	})
	require.NoError(t, err)

	require.Len(t, schools, 2)
	assert.Equal(t, "Alabama A & M University", *schools[0].Name)
	assert.Equal(t, "University of Alabama at Birmingham", *schools[1].Name)
	// Every id was still looked up, in request order.
	assert.Equal(t, []string{"100654", "999999", "100663"}, provider.requests)
}

func TestCompare_TransportErrorAborts(t *testing.T) {
	provider := &fakeSchoolProvider{err: apperrors.ErrUpstreamFailure}
	svc := NewUniversityService(provider)

	_, err := svc.Compare(context.Background(), &dto.CompareRequest{
		UnitIDs: []int64{100654, 100663},
	})

	require.ErrorIs(t, err, apperrors.ErrUpstreamFailure)
	assert.Len(t, provider.requests, 1)
}

func TestGetByID_RequiresID(t *testing.T) {
	svc := NewUniversityService(&fakeSchoolProvider{})

	_, err := svc.GetByID(context.Background(), "")

	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetByID_PassesThrough(t *testing.T) {
	provider := &fakeSchoolProvider{schools: map[string]*scorecard.University{
		"100654": schoolNamed("Alabama A & M University"),
	}}
	svc := NewUniversityService(provider)

	school, err := svc.GetByID(context.Background(), "100654")
	require.NoError(t, err)
	assert.Equal(t, "Alabama A & M University", *school.Name)

	_, err = svc.GetByID(context.Background(), "999999")
	require.True(t, errors.Is(err, apperrors.ErrSchoolNotFound))
}

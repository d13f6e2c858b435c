package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/scorecard"
)

// maxCompareIDs bounds a single compare request.
const maxCompareIDs = 5

// SchoolProvider is the upstream statistics surface
type SchoolProvider interface {
	Search(ctx context.Context, params scorecard.SearchParams) (*scorecard.SearchResult, error)
	GetSchool(ctx context.Context, unitID string) (*scorecard.University, error)
}

// UniversityService proxies university statistics lookups
type UniversityService struct {
	provider SchoolProvider
}

// NewUniversityService creates a new UniversityService
func NewUniversityService(provider SchoolProvider) *UniversityService {
	return &UniversityService{provider: provider}
}

// Search queries schools by optional name and state filters
func (s *UniversityService) Search(ctx context.Context, params scorecard.SearchParams) (*scorecard.SearchResult, error) {
	return s.provider.Search(ctx, params)
}

// GetByID fetches one school by institution id
func (s *UniversityService) GetByID(ctx context.Context, unitID string) (*scorecard.University, error) {
	if unitID == "" {
		return nil, apperrors.NewValidationError("unit id is required")
	}
	return s.provider.GetSchool(ctx, unitID)
}

// Compare fetches up to five schools by id. Unknown ids are silently
// skipped; transport failures abort the whole request.
func (s *UniversityService) Compare(ctx context.Context, req *dto.CompareRequest) ([]scorecard.University, error) {
	if len(req.UnitIDs) == 0 {
		return nil, apperrors.NewValidationError("unit_ids cannot be empty")
	}
	if len(req.UnitIDs) > maxCompareIDs {
		return nil, apperrors.NewValidationError("at most 5 universities can be compared")
	}

	schools := make([]scorecard.University, 0, len(req.UnitIDs))
	for _, unitID := range req.UnitIDs {
		school, err := s.provider.GetSchool(ctx, strconv.FormatInt(unitID, 10))
		if err != nil {
			if errors.Is(err, apperrors.ErrSchoolNotFound) {
				continue
			}
			return nil, err
		}
		schools = append(schools, *school)
	}

	return schools, nil
}

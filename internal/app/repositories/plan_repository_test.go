package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplanhq/eduplan-backend/internal/app/models"
)

func TestNormalizeDegree(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  ", ""},
		{"BSc", "bsc"},
		{"  Master of Science ", "master of science"},
		{"PHD", "phd"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDegree(tt.in), "input %q", tt.in)
	}
}

func planWithDegree(id int64, degree string) *models.EducationPlan {
	return &models.EducationPlan{
		ID:      id,
		Payload: models.PlanPayload{Degree: degree},
	}
}

func TestSelectPlan_EmptyInput(t *testing.T) {
	assert.Nil(t, selectPlan(nil, ""))
	assert.Nil(t, selectPlan(nil, "BSc"))
	assert.Nil(t, selectPlan([]*models.EducationPlan{}, ""))
}

func TestSelectPlan_NoDegreeTakesFirst(t *testing.T) {
	plans := []*models.EducationPlan{
		planWithDegree(1, "MSc"),
		planWithDegree(2, ""),
		planWithDegree(3, "BSc"),
	}

	got := selectPlan(plans, "")

	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)
}

func TestSelectPlan_ExactNormalizedMatch(t *testing.T) {
	plans := []*models.EducationPlan{
		planWithDegree(1, ""),
		planWithDegree(2, "BSc"),
		planWithDegree(3, "MSc"),
	}

	got := selectPlan(plans, "  msc ")

	require.NotNil(t, got)
	assert.Equal(t, int64(3), got.ID)
}

func TestSelectPlan_DegreeNeverFallsBack(t *testing.T) {
	// A degree-scoped lookup must not match a degree-less plan even when
	// it is the only one stored.
	plans := []*models.EducationPlan{
		planWithDegree(1, ""),
	}

	assert.Nil(t, selectPlan(plans, "BSc"))
}

func TestSelectPlan_NoMatchAmongDegrees(t *testing.T) {
	plans := []*models.EducationPlan{
		planWithDegree(1, "BSc"),
		planWithDegree(2, "MSc"),
	}

	assert.Nil(t, selectPlan(plans, "PhD"))
}

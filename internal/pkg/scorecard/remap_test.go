package scorecard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() map[string]interface{} {
	return map[string]interface{}{
		"id":                   float64(100654),
		"school.name":          "Alabama A & M University",
		"school.city":          "Normal",
		"school.state":         "AL",
		"school.school_url":    "www.aamu.edu",
		"school.ownership":     float64(1),
		"school.locale":        float64(12),
		"latest.academic_year": float64(2022),
		"latest.student.size":  float64(5196),
		"latest.student.part_time_share":            0.0622,
		"latest.completion.rate_suppressed.overall": 0.2807,
		"latest.cost.attendance.academic_year":      float64(23167),
		"latest.earnings.10_yrs_after_entry.median": float64(35500),
		"latest.aid.median_debt.completers.overall": float64(31000),
		"latest.admissions.admission_rate.overall":  0.684,
		"latest.admissions.sat_scores.average.overall": float64(920),
		"latest.student.share_white":                   0.0159,
		"latest.student.share_black":                   0.9026,
	}
}

func TestMapSchool_BasicFields(t *testing.T) {
	u := MapSchool(sampleRecord())

	require.NotNil(t, u.UnitID)
	assert.Equal(t, int64(100654), *u.UnitID)
	assert.Equal(t, "Alabama A & M University", *u.Name)
	assert.Equal(t, "AL", *u.State)
	assert.Equal(t, 2022, *u.Year)
	assert.Equal(t, "Public", u.OrganizationType)
	assert.Equal(t, "City", u.LocationType)
	assert.Equal(t, 0.2807, *u.GraduationRate)
	assert.Equal(t, float64(35500), *u.MedianEarnings)
	// Typical earnings mirror the median figure.
	assert.Equal(t, *u.MedianEarnings, *u.TypicalEarnings)
	assert.Equal(t, 0.9026, *u.CampusDiversity.Black)
	assert.Nil(t, u.CampusDiversity.Hispanic)
}

func TestMapSchool_EmptyRecord(t *testing.T) {
	u := MapSchool(map[string]interface{}{})

	assert.Nil(t, u.UnitID)
	assert.Nil(t, u.Name)
	assert.Nil(t, u.Size)
	assert.Nil(t, u.TestScore)
	assert.Nil(t, u.FullTimeEnrollment)
	assert.Nil(t, u.PartTimeEnrollment)
	assert.Nil(t, u.FamilyIncomeNetPrice)
	assert.Equal(t, "Other", u.OrganizationType)
	assert.Equal(t, "Other", u.LocationType)
}

func TestMapSchool_UnknownCodesMapToOther(t *testing.T) {
	record := sampleRecord()
	record["school.ownership"] = float64(9)
	record["school.locale"] = float64(99)

	u := MapSchool(record)

	assert.Equal(t, "Other", u.OrganizationType)
	assert.Equal(t, "Other", u.LocationType)
}

func TestMapSchool_TestScorePrefersSAT(t *testing.T) {
	record := sampleRecord()
	record["latest.admissions.act_scores.midpoint.cumulative"] = float64(18)

	u := MapSchool(record)

	require.NotNil(t, u.TestScore)
	assert.Equal(t, float64(920), *u.TestScore)
}

func TestMapSchool_TestScoreFallsBackToACT(t *testing.T) {
	record := sampleRecord()
	delete(record, "latest.admissions.sat_scores.average.overall")
	record["latest.admissions.act_scores.midpoint.cumulative"] = float64(18)

	u := MapSchool(record)

	require.NotNil(t, u.TestScore)
	assert.Equal(t, float64(18), *u.TestScore)
}

func TestSplitEnrollment(t *testing.T) {
	size := 5196.0
	share := 0.0622

	ft, pt := splitEnrollment(&size, &share)

	require.NotNil(t, ft)
	require.NotNil(t, pt)
	assert.Equal(t, int64(4873), *ft) // round(5196 * 0.9378)
	assert.Equal(t, int64(323), *pt)  // round(5196 * 0.0622)
}

func TestSplitEnrollment_BothInputsRequired(t *testing.T) {
	size := 5196.0
	share := 0.0622

	ft, pt := splitEnrollment(&size, nil)
	assert.Nil(t, ft)
	assert.Nil(t, pt)

	ft, pt = splitEnrollment(nil, &share)
	assert.Nil(t, ft)
	assert.Nil(t, pt)
}

func TestPickNetPrice_PublicPreferred(t *testing.T) {
	record := map[string]interface{}{
		"latest.cost.net_price.public.by_income_level.0-30000":  float64(14000),
		"latest.cost.net_price.private.by_income_level.0-30000": float64(22000),
	}

	price := pickNetPrice(record)

	require.NotNil(t, price)
	assert.Equal(t, "public", price.Source)
	assert.Equal(t, map[string]float64{"0-30000": 14000}, price.Breakdown)
}

func TestPickNetPrice_PrivateFallback(t *testing.T) {
	record := map[string]interface{}{
		"latest.cost.net_price.public.by_income_level.0-30000":      nil,
		"latest.cost.net_price.private.by_income_level.0-30000":     float64(22000),
		"latest.cost.net_price.private.by_income_level.30001-48000": float64(24500),
		"latest.cost.net_price.private.by_income_level.48001-75000": nil,
	}

	price := pickNetPrice(record)

	require.NotNil(t, price)
	assert.Equal(t, "private", price.Source)
	// Null brackets are dropped, not carried as zeros.
	assert.Equal(t, map[string]float64{
		"0-30000":     22000,
		"30001-48000": 24500,
	}, price.Breakdown)
}

func TestPickNetPrice_AllNull(t *testing.T) {
	record := map[string]interface{}{
		"latest.cost.net_price.public.by_income_level.0-30000":  nil,
		"latest.cost.net_price.private.by_income_level.0-30000": nil,
	}

	assert.Nil(t, pickNetPrice(record))
}

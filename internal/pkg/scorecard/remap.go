package scorecard

import (
	"math"
)

// baseFields is the fixed projection requested from the provider on every
// call. The provider returns records as flat maps keyed by these dotted
// names.
var baseFields = []string{
	"id",
	"school.name",
	"school.city",
	"school.state",
	"school.school_url",
	"school.ownership",
	"school.locale",
	"latest.academic_year",
	"latest.student.size",
	"latest.student.part_time_share",
	"latest.completion.rate_suppressed.overall",
	"latest.cost.attendance.academic_year",
	"latest.cost.net_price.public.by_income_level.0-30000",
	"latest.cost.net_price.public.by_income_level.30001-48000",
	"latest.cost.net_price.public.by_income_level.48001-75000",
	"latest.cost.net_price.public.by_income_level.75001-110000",
	"latest.cost.net_price.public.by_income_level.110001-plus",
	"latest.cost.net_price.private.by_income_level.0-30000",
	"latest.cost.net_price.private.by_income_level.30001-48000",
	"latest.cost.net_price.private.by_income_level.48001-75000",
	"latest.cost.net_price.private.by_income_level.75001-110000",
	"latest.cost.net_price.private.by_income_level.110001-plus",
	"latest.earnings.10_yrs_after_entry.median",
	"latest.aid.median_debt.completers.overall",
	"latest.student.share_white",
	"latest.student.share_black",
	"latest.student.share_hispanic",
	"latest.student.share_asian",
	"latest.student.share_two_or_more",
	"latest.student.share_non_resident_alien",
	"latest.admissions.sat_scores.average.overall",
	"latest.admissions.act_scores.midpoint.cumulative",
	"latest.admissions.admission_rate.overall",
}

// incomeBrackets are the provider's net-price income bracket keys.
var incomeBrackets = []string{
	"0-30000",
	"30001-48000",
	"48001-75000",
	"75001-110000",
	"110001-plus",
}

// ownershipNames translates the provider's ownership codes.
var ownershipNames = map[int]string{
	1: "Public",
	2: "Private nonprofit",
	3: "Private for-profit",
}

// localeNames translates the provider's locale codes.
var localeNames = map[int]string{
	11: "City",
	12: "City",
	13: "City",
	21: "Suburban",
	22: "Suburban",
	23: "Suburban",
	31: "Town",
	32: "Town",
	33: "Town",
	41: "Rural",
	42: "Rural",
	43: "Rural",
}

// DiversityStats carries the student body share per group.
type DiversityStats struct {
	White       *float64 `json:"white"`
	Black       *float64 `json:"black"`
	Hispanic    *float64 `json:"hispanic"`
	Asian       *float64 `json:"asian"`
	TwoOrMore   *float64 `json:"two_or_more"`
	NonResident *float64 `json:"non_resident"`
}

// IncomeNetPrice is the income-bracketed net price tagged with the
// breakdown it came from ("public" or "private").
type IncomeNetPrice struct {
	Source    string             `json:"source"`
	Breakdown map[string]float64 `json:"breakdown"`
}

// University is the stable internal record shape. Every field is
// independently optional; absent provider data stays absent, never
// zero-filled.
type University struct {
	UnitID               *int64          `json:"unit_id"`
	Name                 *string         `json:"name"`
	City                 *string         `json:"city"`
	State                *string         `json:"state"`
	Website              *string         `json:"website"`
	Year                 *int            `json:"year"`
	OrganizationType     string          `json:"organization_type"`
	Size                 *int64          `json:"size"`
	LocationType         string          `json:"location_type"`
	GraduationRate       *float64        `json:"graduation_rate"`
	AverageAnnualCost    *float64        `json:"average_annual_cost"`
	MedianEarnings       *float64        `json:"median_earnings"`
	FinancialAidDebt     *float64        `json:"financial_aid_debt"`
	TypicalEarnings      *float64        `json:"typical_earnings"`
	CampusDiversity      DiversityStats  `json:"campus_diversity"`
	TestScore            *float64        `json:"test_score"`
	AcceptanceRate       *float64        `json:"acceptance_rate"`
	FullTimeEnrollment   *int64          `json:"full_time_enrollment"`
	PartTimeEnrollment   *int64          `json:"part_time_enrollment"`
	FamilyIncomeNetPrice *IncomeNetPrice `json:"family_income_net_price"`
}

// MapSchool remaps one provider record into the internal University shape.
// The function is pure: identical input always produces identical output,
// and missing source fields simply leave the matching output fields unset.
func MapSchool(record map[string]interface{}) University {
	u := University{
		UnitID:            getInt64(record, "id"),
		Name:              getString(record, "school.name"),
		City:              getString(record, "school.city"),
		State:             getString(record, "school.state"),
		Website:           getString(record, "school.school_url"),
		Year:              getInt(record, "latest.academic_year"),
		Size:              getInt64(record, "latest.student.size"),
		GraduationRate:    getFloat(record, "latest.completion.rate_suppressed.overall"),
		AverageAnnualCost: getFloat(record, "latest.cost.attendance.academic_year"),
		MedianEarnings:    getFloat(record, "latest.earnings.10_yrs_after_entry.median"),
		FinancialAidDebt:  getFloat(record, "latest.aid.median_debt.completers.overall"),
		AcceptanceRate:    getFloat(record, "latest.admissions.admission_rate.overall"),
		CampusDiversity: DiversityStats{
			White:       getFloat(record, "latest.student.share_white"),
			Black:       getFloat(record, "latest.student.share_black"),
			Hispanic:    getFloat(record, "latest.student.share_hispanic"),
			Asian:       getFloat(record, "latest.student.share_asian"),
			TwoOrMore:   getFloat(record, "latest.student.share_two_or_more"),
			NonResident: getFloat(record, "latest.student.share_non_resident_alien"),
		},
	}

	u.TypicalEarnings = u.MedianEarnings

	u.OrganizationType = lookupCode(record, "school.ownership", ownershipNames)
	u.LocationType = lookupCode(record, "school.locale", localeNames)

	// SAT average preferred, ACT composite midpoint as fallback
	u.TestScore = getFloat(record, "latest.admissions.sat_scores.average.overall")
	if u.TestScore == nil {
		u.TestScore = getFloat(record, "latest.admissions.act_scores.midpoint.cumulative")
	}

	u.FullTimeEnrollment, u.PartTimeEnrollment = splitEnrollment(
		getFloat(record, "latest.student.size"),
		getFloat(record, "latest.student.part_time_share"),
	)

	u.FamilyIncomeNetPrice = pickNetPrice(record)

	return u
}

// lookupCode resolves an integer code through a name table; unknown and
// missing codes both come out as "Other".
func lookupCode(record map[string]interface{}, key string, names map[int]string) string {
	code := getInt(record, key)
	if code == nil {
		return "Other"
	}
	if name, ok := names[*code]; ok {
		return name
	}
	return "Other"
}

// splitEnrollment derives full-time and part-time counts from the total
// size and the part-time share. Both outputs are absent unless both inputs
// are present; each count is rounded independently.
func splitEnrollment(size, partTimeShare *float64) (fullTime, partTime *int64) {
	if size == nil || partTimeShare == nil {
		return nil, nil
	}

	ft := int64(math.Round(*size * (1 - *partTimeShare)))
	pt := int64(math.Round(*size * *partTimeShare))
	return &ft, &pt
}

// pickNetPrice assembles the income-bracketed net price. The public
// breakdown wins when it has at least one non-null bracket, otherwise the
// private breakdown is used; null brackets are dropped rather than kept.
func pickNetPrice(record map[string]interface{}) *IncomeNetPrice {
	for _, source := range []string{"public", "private"} {
		breakdown := map[string]float64{}
		for _, bracket := range incomeBrackets {
			key := "latest.cost.net_price." + source + ".by_income_level." + bracket
			if v := getFloat(record, key); v != nil {
				breakdown[bracket] = *v
			}
		}
		if len(breakdown) > 0 {
			return &IncomeNetPrice{Source: source, Breakdown: breakdown}
		}
	}
	return nil
}

// getFloat reads a numeric field, nil when absent or null.
func getFloat(record map[string]interface{}, key string) *float64 {
	v, ok := record[key]
	if !ok || v == nil {
		return nil
	}
	switch n := v.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	}
	return nil
}

// getInt reads a numeric field as int, nil when absent or null.
func getInt(record map[string]interface{}, key string) *int {
	f := getFloat(record, key)
	if f == nil {
		return nil
	}
	i := int(*f)
	return &i
}

// getInt64 reads a numeric field as int64, nil when absent or null.
func getInt64(record map[string]interface{}, key string) *int64 {
	f := getFloat(record, key)
	if f == nil {
		return nil
	}
	i := int64(*f)
	return &i
}

// getString reads a string field, nil when absent or null.
func getString(record map[string]interface{}, key string) *string {
	v, ok := record[key]
	if !ok || v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

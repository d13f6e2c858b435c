package models

// Country is static reference data, read-only from the API's perspective.
type Country struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// State belongs to exactly one country.
type State struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	CountryID int64  `json:"country_id" db:"country_id"`
}

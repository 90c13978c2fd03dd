package dto

// PageRef points at a neighboring page in a paginated listing. Absence
// signals a boundary (first or last page).
type PageRef struct {
	Page  int   `json:"page"`
	Limit int64 `json:"limit"`
}

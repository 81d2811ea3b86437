package domain

import "time"

// FilterCriteria - выбранные пользователем ограничения, новое значение на каждый пересчёт
type FilterCriteria struct {
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	County          string    `json:"county"`
	AlcoholRequired bool      `json:"alcohol_required"`
	Parties         []Party   `json:"parties,omitempty"`
}

// AllCounties reports whether the county selector is the "all counties" sentinel.
func (c FilterCriteria) AllCounties() bool {
	return c.County == "" || c.County == AllCounties
}

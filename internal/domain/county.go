package domain

import "sort"

// County - округ Калифорнии с населением
type County struct {
	Code       string `json:"code" yaml:"code"`
	Name       string `json:"name" yaml:"name"`
	Population int64  `json:"population" yaml:"population"`
}

// CountyReference - статический справочник код округа -> (название, население).
// Не изменяется после загрузки.
type CountyReference struct {
	byCode map[string]County
}

// NewCountyReference builds a reference from a list of counties. Later duplicates win.
func NewCountyReference(counties []County) CountyReference {
	byCode := make(map[string]County, len(counties))
	for _, c := range counties {
		byCode[c.Code] = c
	}
	return CountyReference{byCode: byCode}
}

// Lookup returns the county with the given code.
func (r CountyReference) Lookup(code string) (County, bool) {
	c, ok := r.byCode[code]
	return c, ok
}

// Population returns the population of the county, zero when unknown.
func (r CountyReference) Population(code string) int64 {
	return r.byCode[code].Population
}

// TotalPopulation sums the population of every county.
func (r CountyReference) TotalPopulation() int64 {
	var total int64
	for _, c := range r.byCode {
		total += c.Population
	}
	return total
}

// Len returns the number of counties.
func (r CountyReference) Len() int {
	return len(r.byCode)
}

// Counties returns all counties ordered by code.
func (r CountyReference) Counties() []County {
	out := make([]County, 0, len(r.byCode))
	for _, c := range r.byCode {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Code < out[j].Code
	})
	return out
}

package analytics

import (
	"github.com/collisions-monitor/internal/domain"
)

// ResidentRates normalizes the subset's victim totals by the population of the selected
// county, or of the whole reference for the "all" selector. Rates are zero when the
// population is unknown.
func ResidentRates(subset domain.RecordSet, county string, reference domain.CountyReference) domain.PopulationRates {
	population := reference.TotalPopulation()
	if county != "" && county != domain.AllCounties {
		population = reference.Population(county)
	}

	killed, injured := VictimTotals(subset)
	return domain.PopulationRates{
		Population:                 population,
		FatalitiesPer1000Residents: Rate(killed, population, PopulationScale),
		InjuriesPer1000Residents:   Rate(injured, population, PopulationScale),
	}
}

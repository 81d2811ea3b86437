package domain

// AggregateResult - полный набор метрик, вычисленных по отфильтрованному подмножеству.
// Пересчитывается целиком при каждом изменении фильтра.
type AggregateResult struct {
	FatalitiesPer1000    float64        `json:"fatalities_per_1000"`
	InjuriesPer1000      float64        `json:"injuries_per_1000"`
	PedestrianFatalities int            `json:"pedestrian_fatalities"`
	PedestrianInjuries   int            `json:"pedestrian_injuries"`
	BicyclistFatalities  int            `json:"bicyclist_fatalities"`
	BicyclistInjuries    int            `json:"bicyclist_injuries"`
	MapPoints            []Point        `json:"map_points"`
	Hourly               []HourlyBucket `json:"hourly"`
	TopFactors           []FactorShare  `json:"top_factors"`
}

// HourlyBucket - суммы за один час суток. Отсутствующий час означает ноль.
type HourlyBucket struct {
	Hour           int `json:"hour"`
	SevereInjuries int `json:"severe_injuries"`
	Fatalities     int `json:"fatalities"`
}

// FactorShare - доля категории причины ДТП в процентах от всего подмножества
type FactorShare struct {
	Factor     string  `json:"factor"`
	Percentage float64 `json:"percentage"`
}

// PopulationRates - показатели на 1000 жителей выбранного округа (или всего справочника)
type PopulationRates struct {
	Population                 int64   `json:"population"`
	FatalitiesPer1000Residents float64 `json:"fatalities_per_1000_residents"`
	InjuriesPer1000Residents   float64 `json:"injuries_per_1000_residents"`
}

package dto

// DashboardRequest - параметры фильтра дашборда из query string.
// Пустые даты означают границы загруженного окна.
type DashboardRequest struct {
	StartDate string   `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string   `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	County    string   `query:"county" validate:"omitempty,max=3"`
	Alcohol   bool     `query:"alcohol"`
	Parties   []string `query:"parties" validate:"omitempty,max=4,dive,oneof=pedestrian bicycle motorcycle truck"`
}

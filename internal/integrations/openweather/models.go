package openweather

// CurrentResponse ответ /data/2.5/weather (только используемые поля)
type CurrentResponse struct {
	Main struct {
		Temp      float64  `json:"temp"`
		FeelsLike float64  `json:"feels_like"`
		TempMin   *float64 `json:"temp_min"`
		TempMax   *float64 `json:"temp_max"`
		Humidity  int      `json:"humidity"`
		Pressure  *int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"` // м/с
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
}

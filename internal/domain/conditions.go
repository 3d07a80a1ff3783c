package domain

// Weather current weather at the beach
type Weather struct {
	Temp          float64 `json:"temp"`
	FeelsLike     float64 `json:"feels_like"`
	TempMin       float64 `json:"temp_min"`
	TempMax       float64 `json:"temp_max"`
	Description   string  `json:"description"`
	Humidity      int     `json:"humidity"`
	WindSpeed     int     `json:"wind_speed"` // km/h
	WindDirection string  `json:"wind_direction"`
	Pressure      int     `json:"pressure"`
	RainChance    int     `json:"rain_chance"`
	RainMM        float64 `json:"rain_mm"`
	UVIndex       int     `json:"uv_index"`
	Sunrise       string  `json:"sunrise"`
	Sunset        string  `json:"sunset"`
	Source        string  `json:"source"`
	Error         string  `json:"error,omitempty"`
}

// Waves surf conditions estimate
type Waves struct {
	WaveHeight           float64 `json:"wave_height"`
	WaveHeightMax        float64 `json:"wave_height_max"`
	WaveDirection        string  `json:"wave_direction"`
	WaveDirectionDegrees int     `json:"wave_direction_degrees"`
	SwellPeriod          int     `json:"swell_period"`
	SwellDirection       string  `json:"swell_direction"`
	WaterTemp            int     `json:"water_temp"`
	WindWaveHeight       float64 `json:"wind_wave_height"`
	SurfRating           string  `json:"surf_rating"`
	BestTime             string  `json:"best_time"`
	TideInfluence        string  `json:"tide_influence"`
	ConditionsSummary    string  `json:"conditions_summary"`
	Source               string  `json:"source"`
}

// Tide one high or low tide of the day
type Tide struct {
	Type   string `json:"type"`
	Time   string `json:"time"`
	Height string `json:"height"`
}

// Tides tide table of the day
type Tides struct {
	Location string `json:"location"`
	Tides    []Tide `json:"tides"`
	Source   string `json:"source"`
}

// NewsItem one surf news headline
type NewsItem struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
	Summary   string `json:"summary"`
}

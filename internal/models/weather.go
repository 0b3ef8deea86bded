package models

// WeatherQuery identifies one historical weather lookup.
type WeatherQuery struct {
	Latitude  float64
	Longitude float64
	StartDate string
	EndDate   string
}

// DailySeries carries the parallel arrays of the Open-Meteo archive response;
// index i across every slice describes the same calendar day.
type DailySeries struct {
	Time             []string  `json:"time"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
}

// HistoricalWeather is the archive payload served to clients.
type HistoricalWeather struct {
	Latitude   float64           `json:"latitude"`
	Longitude  float64           `json:"longitude"`
	Timezone   string            `json:"timezone"`
	Elevation  float64           `json:"elevation"`
	DailyUnits map[string]string `json:"daily_units"`
	Daily      DailySeries       `json:"daily"`
}

package models

// Location is one geocoding match in the shape the Open-Meteo geocoding API
// returns it; the fields pass through to clients unchanged.
type Location struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   float64 `json:"elevation,omitempty"`
	CountryCode string  `json:"country_code,omitempty"`
	Country     string  `json:"country,omitempty"`
	Admin1      string  `json:"admin1,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
	Population  int64   `json:"population,omitempty"`
}

// ReverseLocation is the subset of the BigDataCloud reverse-geocode payload
// the frontend displays. That upstream uses camelCase field names.
type ReverseLocation struct {
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	City                 string  `json:"city"`
	Locality             string  `json:"locality"`
	PrincipalSubdivision string  `json:"principalSubdivision"`
	CountryName          string  `json:"countryName"`
	CountryCode          string  `json:"countryCode"`
}

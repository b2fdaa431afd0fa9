package domain

// Coordinate - координата для Mapbox
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// MatrixResponse - ответ Mapbox Matrix API. Cells are nil when Mapbox could
// not find a route between the pair.
type MatrixResponse struct {
	Code         string       `json:"code"`
	Message      string       `json:"message,omitempty"`
	Distances    [][]*float64 `json:"distances"` // в метрах
	Durations    [][]*float64 `json:"durations"` // в секундах
	Destinations []Location   `json:"destinations"`
	Sources      []Location   `json:"sources"`
}

// Location - локация в ответе Mapbox
type Location struct {
	Name     string    `json:"name"`
	Location []float64 `json:"location"` // [lon, lat]
}

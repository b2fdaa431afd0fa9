package domain

// Place - place fields used to hydrate schedule rows
type Place struct {
	ID       string   `json:"id" db:"id"`
	Name     *string  `json:"name" db:"name"`
	Category *string  `json:"category" db:"category"`
	Lat      *float64 `json:"lat" db:"lat"`
	Lng      *float64 `json:"lng" db:"lng"`
}

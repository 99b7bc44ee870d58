package dto

type StoreOutput struct {
	Name       string
	Kind       string
	Lat        float64
	Lon        float64
	DistanceKm float64
}

type NearestInput struct {
	Lat   float64
	Lon   float64
	Limit int
}

type CenterOutput struct {
	Lat float64
	Lon float64
}

package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"

	apperrors "aperture/internal/platform/errors"
)

type Kind string

const (
	KindLocal  Kind = "local"
	KindOnline Kind = "online"
)

func ParseKind(raw string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(raw))); k {
	case "", KindLocal, KindOnline:
		return k, nil
	default:
		return "", fmt.Errorf("store kind %q: %w", raw, apperrors.ErrInvalidInput)
	}
}

type Location struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

func (l Location) Validate() error {
	if l.Lat < -90 || l.Lat > 90 || l.Lon < -180 || l.Lon > 180 {
		return fmt.Errorf("location %.4f,%.4f: %w", l.Lat, l.Lon, apperrors.ErrOutOfRange)
	}
	return nil
}

const earthRadiusKm = 6371.0

// DistanceKm is the great-circle distance between two points.
func DistanceKm(a, b Location) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

type Store struct {
	Name     string `yaml:"name"`
	Kind     Kind   `yaml:"kind"`
	Location `yaml:",inline"`
}

// Ranked is a store with its distance from a query point.
type Ranked struct {
	Store
	DistanceKm float64
}

// Filter keeps stores of the given kind; an empty kind keeps all.
func Filter(stores []Store, kind Kind) []Store {
	out := make([]Store, 0, len(stores))
	for _, s := range stores {
		if kind == "" || s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// Nearest orders local stores by distance from origin, then by name.
// A limit <= 0 returns all of them.
func Nearest(stores []Store, origin Location, limit int) []Ranked {
	local := Filter(stores, KindLocal)
	out := make([]Ranked, 0, len(local))
	for _, s := range local {
		out = append(out, Ranked{Store: s, DistanceKm: DistanceKm(origin, s.Location)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DistanceKm != out[j].DistanceKm {
			return out[i].DistanceKm < out[j].DistanceKm
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DefaultCenter is where the locator starts: the first store.
func DefaultCenter(stores []Store) (Location, error) {
	if len(stores) == 0 {
		return Location{}, fmt.Errorf("store directory is empty: %w", apperrors.ErrNotFound)
	}
	return stores[0].Location, nil
}

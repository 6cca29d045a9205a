package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EarthRadiusKm - радиус Земли для расчёта расстояний по сфере
const EarthRadiusKm = 6371.0

// Position - точка на карте
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GreatCircleKm считает расстояние между точками по сферической теореме косинусов.
// Аргумент acos ограничивается отрезком [-1, 1], иначе для совпадающих точек возможен NaN.
func GreatCircleKm(lat1, lng1, lat2, lng2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlng := (lng2 - lng1) * math.Pi / 180

	cos := math.Cos(rlat1)*math.Cos(rlat2)*math.Cos(dlng) + math.Sin(rlat1)*math.Sin(rlat2)
	cos = math.Max(-1, math.Min(1, cos))
	return EarthRadiusKm * math.Acos(cos)
}

// Route - упорядоченный список точек маршрута
type Route struct {
	positions []Position
}

// NewRoute создает маршрут из переданных точек
func NewRoute(positions ...Position) *Route {
	r := &Route{}
	for _, p := range positions {
		r.Append(p)
	}
	return r
}

func (r *Route) Append(p Position) {
	r.positions = append(r.positions, p)
}

func (r *Route) Clear() {
	r.positions = nil
}

func (r *Route) Len() int {
	return len(r.positions)
}

// Positions возвращает копию точек маршрута
func (r *Route) Positions() []Position {
	out := make([]Position, len(r.positions))
	copy(out, r.positions)
	return out
}

// JSON сериализует маршрут в формат, который понимает виджет карты
func (r *Route) JSON() string {
	parts := make([]string, 0, len(r.positions))
	for _, p := range r.positions {
		parts = append(parts, fmt.Sprintf(`{"lat": %f, "lng": %f}`, p.Lat, p.Lng))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// CandidateMessage - точки-кандидаты, отправляемые виджету карты для проверки попадания на маршрут.
// В JSON представляется плоским массивом [lat1, lng1, lat2, lng2, ...].
type CandidateMessage struct {
	Points []Position
}

// Flat разворачивает точки в плоский массив координат
func (m CandidateMessage) Flat() []float64 {
	flat := make([]float64, 0, len(m.Points)*2)
	for _, p := range m.Points {
		flat = append(flat, p.Lat, p.Lng)
	}
	return flat
}

func (m CandidateMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Flat())
}

// ParseSelection разбирает ответ виджета карты: индексы кандидатов через запятую.
// Пустая строка означает, что ни один кандидат не выбран.
func ParseSelection(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []int{}, nil
	}

	parts := strings.Split(raw, ",")
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid candidate index %q: %w", part, err)
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

package advisory

import (
	"fmt"
	"math"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/road_risk_advisor/internal/models"
)

// Виды рекомендаций
const (
	KindSummary        = "summary"
	KindTrafficControl = "traffic_control"
	KindRoadSurface    = "road_surface"
	KindSpeed          = "speed"
	KindSeason         = "season"
	KindWeather        = "weather"
)

// Период, за который ДТП считается недавним, в годах
const recentYears = 5

var severityCoefficients = map[string]float64{
	models.SeverityNonInjury: 0.80,
	models.SeverityMinor:     0.85,
	models.SeveritySerious:   0.90,
	models.SeverityFatal:     0.95,
}

// Item - одна рекомендация для отображения пользователю
type Item struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon"`
}

// Report - результат анализа набора записей
type Report struct {
	Items       []Item
	Total       int
	Recent      int
	AverageRisk float64
	PeakRisk    float64
	Riskiest    *models.IncidentRecord
}

// Engine считает риск по записям и формирует рекомендации. Состояния не хранит.
type Engine struct {
	clock clockwork.Clock
}

// New создает Engine. nil clock означает системное время.
func New(clock clockwork.Clock) *Engine {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Engine{clock: clock}
}

// SeverityCoefficient возвращает вес тяжести ДТП; -1 для неизвестного значения
func SeverityCoefficient(severity string) float64 {
	if c, ok := severityCoefficients[severity]; ok {
		return c
	}
	return -1
}

// RiskScore - риск одной записи относительно текущего года
func RiskScore(r models.IncidentRecord, currentYear int) float64 {
	recency := float64(currentYear - r.Year)
	multiVehicle := 0.0
	if r.VehicleCount() > 1 {
		multiVehicle = 1
	}
	return math.Exp(-(recency*(1-SeverityCoefficient(r.Severity)) - 2.2)) + multiVehicle
}

// Advise строит отчёт: сводка, рекомендации по самому опасному ДТП, сезон, погода
func (e *Engine) Advise(records []models.IncidentRecord) Report {
	now := e.clock.Now()
	currentYear := now.Year()

	report := Report{Total: len(records)}
	if len(records) == 0 {
		report.Items = []Item{
			{Kind: KindSummary, Title: summaryTitle, Body: summaryEmpty, Icon: summaryIcon},
			seasonItem(now.Month()),
		}
		return report
	}

	var sum, peak float64
	riskiest := -1
	for i, r := range records {
		risk := RiskScore(r, currentYear)
		sum += risk
		// >= при проходе слева направо: при равенстве побеждает последняя запись
		if risk >= peak || riskiest < 0 {
			peak = risk
			riskiest = i
		}
		if currentYear-r.Year <= recentYears {
			report.Recent++
		}
	}
	report.AverageRisk = sum / float64(len(records))
	report.PeakRisk = peak
	riskiestRecord := records[riskiest]
	report.Riskiest = &riskiestRecord

	report.Items = append(report.Items, Item{
		Kind:  KindSummary,
		Title: summaryTitle,
		Body: fmt.Sprintf(summaryText, report.Total, report.Recent,
			int(math.Round(report.AverageRisk)), int(math.Round(report.PeakRisk))),
		Icon: summaryIcon,
	})
	report.Items = append(report.Items, riskiestItems(riskiestRecord)...)
	report.Items = append(report.Items, seasonItem(now.Month()))
	if item, ok := weatherItem(records); ok {
		report.Items = append(report.Items, item)
	}
	return report
}

func riskiestItems(r models.IncidentRecord) []Item {
	items := make([]Item, 0, 3)

	if r.TrafficControl != "Nil" && r.TrafficControl != "Unknown" && r.TrafficControl != "" {
		a, ok := trafficControlAdvice[r.TrafficControl]
		if !ok {
			a = genericTrafficControlAdvice
		}
		items = append(items, Item{Kind: KindTrafficControl, Title: roadTitle, Body: a.body, Icon: a.icon})
	}
	if r.RoadSurface == "Unsealed" {
		items = append(items, Item{Kind: KindRoadSurface, Title: roadTitle, Body: unsealedRoadAdvice.body, Icon: unsealedRoadAdvice.icon})
	}
	if r.AdvisorySpeed > 0 {
		items = append(items, Item{Kind: KindSpeed, Title: speedTitle, Body: speedAdvice.body, Icon: speedAdvice.icon})
	}
	return items
}

func seasonItem(month time.Month) Item {
	s, ok := monthSeasons[month]
	if !ok {
		s = seasonUnknown
	}
	a := seasonAdvice[s]
	return Item{Kind: KindSeason, Title: "Driving in " + string(s), Body: a.body, Icon: a.icon}
}

// mostFrequentWeather ищет самое частое погодное условие по обоим полям.
// При равенстве выигрывает значение, первым набравшее максимум.
func mostFrequentWeather(records []models.IncidentRecord) (string, bool) {
	counts := make(map[string]int)
	best, bestCount := "", 0
	count := func(value string) {
		if _, skip := noWeather[value]; skip {
			return
		}
		counts[value]++
		if counts[value] > bestCount {
			best, bestCount = value, counts[value]
		}
	}
	for _, r := range records {
		count(r.WeatherA)
		count(r.WeatherB)
	}
	return best, bestCount > 0
}

func weatherItem(records []models.IncidentRecord) (Item, bool) {
	weather, ok := mostFrequentWeather(records)
	if !ok {
		return Item{}, false
	}
	body, ok := weatherAdvice[weather]
	if !ok {
		return Item{}, false
	}
	return Item{Kind: KindWeather, Title: weatherTitle, Body: body, Icon: weatherIcon}, true
}

package advisory

import (
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/road_risk_advisor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engineAt(year int, month time.Month) *Engine {
	return New(clockwork.NewFakeClockAt(time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)))
}

func record(severity string, year int) models.IncidentRecord {
	return models.IncidentRecord{
		Severity:       severity,
		Year:           year,
		TrafficControl: "Nil",
		RoadSurface:    "Sealed",
		WeatherA:       "Null",
		WeatherB:       "Null",
	}
}

func kinds(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Kind)
	}
	return out
}

func TestRiskScore_Formula(t *testing.T) {
	r := record(models.SeverityFatal, 2013)

	got := RiskScore(r, 2023)

	assert.InDelta(t, math.Exp(-(10*0.05 - 2.2)), got, 1e-12)
}

func TestRiskScore_DecreasesWithRecency(t *testing.T) {
	for _, sev := range []string{models.SeverityFatal, models.SeveritySerious, models.SeverityMinor, models.SeverityNonInjury} {
		recent := RiskScore(record(sev, 2022), 2023)
		old := RiskScore(record(sev, 2013), 2023)
		assert.Greater(t, recent, old, sev)
	}
}

func TestRiskScore_MultiVehicleBonus(t *testing.T) {
	single := record(models.SeverityMinor, 2020)
	single.CarStationWagon = 1
	multi := single
	multi.Truck = 1

	assert.InDelta(t, RiskScore(single, 2023)+1, RiskScore(multi, 2023), 1e-12)
}

func TestSeverityCoefficient_Unknown(t *testing.T) {
	assert.Equal(t, -1.0, SeverityCoefficient("Property Damage"))
	assert.Equal(t, 0.95, SeverityCoefficient(models.SeverityFatal))
}

func TestAdvise_EmptyInput(t *testing.T) {
	report := engineAt(2023, time.July).Advise(nil)

	require.Len(t, report.Items, 2)
	assert.Equal(t, KindSummary, report.Items[0].Kind)
	assert.Equal(t, summaryEmpty, report.Items[0].Body)
	assert.Equal(t, KindSeason, report.Items[1].Kind)
	assert.Equal(t, "Driving in Winter", report.Items[1].Title)
	assert.Nil(t, report.Riskiest)
	assert.Zero(t, report.Total)
}

func TestAdvise_Summary(t *testing.T) {
	records := []models.IncidentRecord{
		record(models.SeverityFatal, 2022),
		record(models.SeverityMinor, 2010),
		record(models.SeverityNonInjury, 2018),
	}

	report := engineAt(2023, time.March).Advise(records)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Recent)
	require.NotEmpty(t, report.Items)
	summary := report.Items[0]
	assert.Equal(t, "Summary", summary.Title)
	assert.Contains(t, summary.Body, "There have been 3 crashes in total, with 2 of these crashes in the past five years.")
	assert.Contains(t, summary.Body, "with the highest risk crash being 9/10.")
	assert.Equal(t, "/img/note-2-32.png", summary.Icon)
}

func TestAdvise_RiskiestTieKeepsLast(t *testing.T) {
	first := record(models.SeveritySerious, 2020)
	first.Location1 = "first"
	second := record(models.SeveritySerious, 2020)
	second.Location1 = "second"
	second.RoadSurface = "Unsealed"

	report := engineAt(2023, time.May).Advise([]models.IncidentRecord{first, second})

	require.NotNil(t, report.Riskiest)
	assert.Equal(t, "second", report.Riskiest.Location1)
	assert.Contains(t, kinds(report.Items), KindRoadSurface)
}

func TestAdvise_RiskiestItemsOrder(t *testing.T) {
	r := record(models.SeverityFatal, 2023)
	r.TrafficControl = "Give way"
	r.RoadSurface = "Unsealed"
	r.AdvisorySpeed = 35
	r.WeatherA = "Heavy rain"

	report := engineAt(2023, time.October).Advise([]models.IncidentRecord{r})

	assert.Equal(t, []string{KindSummary, KindTrafficControl, KindRoadSurface, KindSpeed, KindSeason, KindWeather}, kinds(report.Items))
	assert.Equal(t, "/img/give_way_icon.png", report.Items[1].Icon)
	assert.Equal(t, "Driving in Spring", report.Items[4].Title)
}

func TestAdvise_TrafficControlSkippedForNilAndUnknown(t *testing.T) {
	for _, tc := range []string{"Nil", "Unknown"} {
		r := record(models.SeverityFatal, 2023)
		r.TrafficControl = tc

		report := engineAt(2023, time.January).Advise([]models.IncidentRecord{r})

		assert.NotContains(t, kinds(report.Items), KindTrafficControl, tc)
	}

	r := record(models.SeverityFatal, 2023)
	r.TrafficControl = "Pointsman"
	report := engineAt(2023, time.January).Advise([]models.IncidentRecord{r})
	assert.Contains(t, kinds(report.Items), KindTrafficControl)
}

func TestAdvise_Seasons(t *testing.T) {
	tests := map[time.Month]string{
		time.December:  "Driving in Summer",
		time.February:  "Driving in Summer",
		time.March:     "Driving in Autumn",
		time.June:      "Driving in Winter",
		time.August:    "Driving in Winter",
		time.September: "Driving in Spring",
		time.November:  "Driving in Spring",
	}
	for month, title := range tests {
		report := engineAt(2023, month).Advise(nil)
		assert.Equal(t, title, report.Items[len(report.Items)-1].Title, month.String())
	}
}

func TestSeasonItem_UnknownMonth(t *testing.T) {
	item := seasonItem(time.Month(13))

	assert.Equal(t, "Driving in Unknown", item.Title)
	assert.Equal(t, "/img/starTransparent.png", item.Icon)
}

func TestAdvise_WeatherMostFrequent(t *testing.T) {
	a := record(models.SeverityMinor, 2020)
	a.WeatherA = "Light rain"
	b := record(models.SeverityMinor, 2020)
	b.WeatherA = "Fine"
	b.WeatherB = "Frost"
	c := record(models.SeverityMinor, 2020)
	c.WeatherA = "Fine"

	report := engineAt(2023, time.April).Advise([]models.IncidentRecord{a, b, c})

	last := report.Items[len(report.Items)-1]
	assert.Equal(t, KindWeather, last.Kind)
	assert.Equal(t, weatherAdvice["Fine"], last.Body)
}

func TestMostFrequentWeather_TieGoesToFirstToReachMax(t *testing.T) {
	a := record(models.SeverityMinor, 2020)
	a.WeatherA = "Light rain"
	a.WeatherB = "Strong wind"
	b := record(models.SeverityMinor, 2020)
	b.WeatherA = "Snow"
	b.WeatherB = "Strong wind"
	c := record(models.SeverityMinor, 2020)
	c.WeatherA = "Light rain"

	weather, ok := mostFrequentWeather([]models.IncidentRecord{a, b, c})

	require.True(t, ok)
	assert.Equal(t, "Strong wind", weather)
}

func TestAdvise_NoneCountsAsWeather(t *testing.T) {
	fine := record(models.SeverityMinor, 2020)
	fine.WeatherA = "Fine"
	fine.WeatherB = "None"
	onlyNone := record(models.SeverityMinor, 2020)
	onlyNone.WeatherB = "None"

	weather, ok := mostFrequentWeather([]models.IncidentRecord{fine, onlyNone})
	require.True(t, ok)
	assert.Equal(t, "None", weather)

	report := engineAt(2023, time.April).Advise([]models.IncidentRecord{fine, onlyNone})
	assert.NotContains(t, kinds(report.Items), KindWeather)
}

func TestAdvise_WeatherOmitted(t *testing.T) {
	allNull := record(models.SeverityMinor, 2020)
	allNull.WeatherB = "None"
	report := engineAt(2023, time.April).Advise([]models.IncidentRecord{allNull})
	assert.NotContains(t, kinds(report.Items), KindWeather)

	hail := record(models.SeverityMinor, 2020)
	hail.WeatherA = "Hail or Sleet"
	report = engineAt(2023, time.April).Advise([]models.IncidentRecord{hail})
	assert.NotContains(t, kinds(report.Items), KindWeather)
}

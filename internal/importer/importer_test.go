package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/shenikar/road_risk_advisor/internal/models"
	"github.com/shenikar/road_risk_advisor/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImporter() *Importer {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return New(logger, observability.NewMetricsForTesting())
}

// validRow возвращает корректную строку выгрузки с возможностью переопределить колонки
func validRow(overrides map[int]string) []string {
	row := make([]string, MinFields)
	row[colAdvisorySpeed] = "0"
	row[colCarStationWagon] = "1"
	row[colLocation1] = "QUEEN STREET"
	row[colLocation2] = "VICTORIA STREET"
	row[colSeverity] = models.SeverityMinor
	row[colYear] = "2019"
	row[colFlatHill] = "Flat"
	row[colHoliday] = ""
	row[colLight] = "Bright sun"
	row[colRoadCharacter] = "Nil"
	row[colRoadLane] = "2-way"
	row[colRoadSurface] = "Sealed"
	row[colSpeedLimit] = "50"
	row[colStreetLight] = "On"
	row[colTLAName] = "Auckland"
	row[colTrafficControl] = "Traffic Signals"
	row[colUrban] = "Urban"
	row[colWeatherA] = "Fine"
	row[colWeatherB] = "Null"
	row[colLat] = "-36.5"
	row[colLng] = "174.75"
	for col, v := range overrides {
		row[col] = v
	}
	return row
}

func feed(t *testing.T, rows ...[]string) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := make([]string, MinFields)
	for i := range header {
		header[i] = "COL"
	}
	require.NoError(t, w.Write(header))
	for _, row := range rows {
		require.NoError(t, w.Write(row))
	}
	w.Flush()
	require.NoError(t, w.Error())
	return buf
}

func TestImport_RejectsOutOfDomainSeverity(t *testing.T) {
	imp := newTestImporter()
	src := feed(t,
		validRow(nil),
		validRow(map[int]string{colSeverity: models.SeverityFatal}),
		validRow(map[int]string{colSeverity: "Catastrophic Crash"}),
		validRow(map[int]string{colSeverity: models.SeveritySerious}),
		validRow(map[int]string{colSeverity: models.SeverityNonInjury}),
	)

	res, err := imp.Import(context.Background(), src)

	require.NoError(t, err)
	assert.Len(t, res.Accepted, 4)
	assert.Equal(t, 1, res.Rejected)
}

func TestImport_ParsesColumns(t *testing.T) {
	imp := newTestImporter()
	src := feed(t, validRow(map[int]string{
		colAdvisorySpeed: "35",
		colBicycle:       "1",
		colSUV:           "2",
		colPedestrian:    "1",
		colWeatherB:      "Strong wind",
		colIntersection:  "Intersection",
	}))

	res, err := imp.Import(context.Background(), src)

	require.NoError(t, err)
	require.Len(t, res.Accepted, 1)
	rec := res.Accepted[0]
	assert.Equal(t, int64(0), rec.ID)
	assert.Equal(t, 35, rec.AdvisorySpeed)
	assert.Equal(t, 1, rec.Bicycle)
	assert.Equal(t, 2, rec.SUV)
	assert.Equal(t, 1, rec.Pedestrian)
	assert.Equal(t, 2019, rec.Year)
	assert.Equal(t, "QUEEN STREET", rec.Location1)
	assert.Equal(t, "Strong wind", rec.WeatherB)
	assert.Equal(t, "Intersection", rec.Intersection)
	assert.Equal(t, float32(-36.5), rec.Lat)
	assert.Equal(t, float32(174.75), rec.Lng)
}

func TestImport_EmptyNumericsDefaultToZero(t *testing.T) {
	imp := newTestImporter()
	src := feed(t, validRow(map[int]string{colSpeedLimit: "", colCarStationWagon: "", colLat: ""}))

	res, err := imp.Import(context.Background(), src)

	require.NoError(t, err)
	require.Len(t, res.Accepted, 1)
	assert.Equal(t, 0, res.Accepted[0].SpeedLimit)
	assert.Equal(t, 0, res.Accepted[0].CarStationWagon)
	assert.Equal(t, float32(0), res.Accepted[0].Lat)
}

func TestImport_RangeChecks(t *testing.T) {
	tests := []struct {
		name     string
		override map[int]string
		accepted bool
	}{
		{"year lower bound", map[int]string{colYear: "2000"}, true},
		{"year upper bound", map[int]string{colYear: "2023"}, true},
		{"year too old", map[int]string{colYear: "1999"}, false},
		{"year in future", map[int]string{colYear: "2024"}, false},
		{"speed limit 110", map[int]string{colSpeedLimit: "110"}, true},
		{"speed limit 111", map[int]string{colSpeedLimit: "111"}, false},
		{"counter 100", map[int]string{colTree: "100"}, true},
		{"counter 101", map[int]string{colTree: "101"}, false},
		{"negative counter", map[int]string{colBus: "-1"}, false},
		{"non numeric counter", map[int]string{colBus: "two"}, false},
		{"padded number", map[int]string{colBus: " 1"}, false},
		{"bad coordinate", map[int]string{colLat: "south"}, false},
		{"unknown weather", map[int]string{colWeatherA: "Sunny"}, false},
		{"unknown holiday", map[int]string{colHoliday: "Waitangi Day"}, false},
		{"empty urban", map[int]string{colUrban: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imp := newTestImporter()

			res, err := imp.Import(context.Background(), feed(t, validRow(tt.override)))

			require.NoError(t, err)
			if tt.accepted {
				assert.Len(t, res.Accepted, 1)
				assert.Zero(t, res.Rejected)
			} else {
				assert.Empty(t, res.Accepted)
				assert.Equal(t, 1, res.Rejected)
			}
		})
	}
}

func TestImport_ShortRowRejected(t *testing.T) {
	imp := newTestImporter()
	short := validRow(nil)[:MinFields-1]

	res, err := imp.Import(context.Background(), feed(t, short, validRow(nil)))

	require.NoError(t, err)
	assert.Len(t, res.Accepted, 1)
	assert.Equal(t, 1, res.Rejected)
}

func TestImport_SkipsSingleFieldLines(t *testing.T) {
	imp := newTestImporter()
	src := feed(t, validRow(nil))
	src.WriteString("trailing\n")

	res, err := imp.Import(context.Background(), src)

	require.NoError(t, err)
	assert.Len(t, res.Accepted, 1)
	assert.Zero(t, res.Rejected)
}

func TestImport_HeaderOnly(t *testing.T) {
	imp := newTestImporter()

	res, err := imp.Import(context.Background(), feed(t))

	require.NoError(t, err)
	assert.Empty(t, res.Accepted)
	assert.Zero(t, res.Rejected)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestImport_SourceFailure(t *testing.T) {
	imp := newTestImporter()

	_, err := imp.Import(context.Background(), failingReader{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestImport_CanceledContext(t *testing.T) {
	imp := newTestImporter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := imp.Import(ctx, strings.NewReader("a,b\n"))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRowError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &RowError{Line: 3, Reason: "parse", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "line 3: parse: boom", err.Error())
}

func TestCheckDomainTags(t *testing.T) {
	require.NoError(t, checkDomainTags(reflect.TypeOf(models.IncidentRecord{})))

	type badRecord struct {
		Severity string `validate:"domain=severity"`
		Colour   string `validate:"required,domain=colour"`
	}
	err := checkDomainTags(reflect.TypeOf(badRecord{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Colour")
	assert.Contains(t, err.Error(), `"colour"`)
}

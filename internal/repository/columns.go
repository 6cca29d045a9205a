package repository

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"github.com/shenikar/road_risk_advisor/internal/models"
)

// recordColumns - колонки таблицы incidents без id и row_key, в порядке recordValues
var recordColumns = []string{
	"advisory_speed", "bicycle", "bridge", "bus", "car_station_wagon", "cliff_bank",
	"location1", "location2", "severity", "year", "ditch", "fatal_count", "fence",
	"flat_hill", "guard_rail", "holiday", "house_or_building", "intersection", "kerb",
	"light", "minor_injury_count", "moped", "motorcycle", "number_of_lanes",
	"object_thrown_or_dropped", "other_object", "other_vehicle_type", "over_bank",
	"parked_vehicle", "pedestrian", "phone_box_etc", "post_or_pole", "road_character",
	"road_lane", "road_surface", "roadworks", "school_bus", "serious_injury_count",
	"slip_or_flood", "speed_limit", "stray_animal", "street_light", "suv", "taxi",
	"temporary_speed_limit", "tla_name", "traffic_control", "traffic_island",
	"traffic_sign", "train", "tree", "truck", "unknown_vehicle_type", "urban",
	"van_or_utility", "vehicle", "water_river", "weather_a", "weather_b", "lat", "lng",
}

// selectColumns - список колонок для SELECT, id первым
var selectColumns = "id, " + strings.Join(recordColumns, ", ")

func recordValues(r *models.IncidentRecord) []any {
	return []any{
		r.AdvisorySpeed, r.Bicycle, r.Bridge, r.Bus, r.CarStationWagon, r.CliffBank,
		r.Location1, r.Location2, r.Severity, r.Year, r.Ditch, r.FatalCount, r.Fence,
		r.FlatHill, r.GuardRail, r.Holiday, r.HouseOrBuilding, r.Intersection, r.Kerb,
		r.Light, r.MinorInjuryCount, r.Moped, r.Motorcycle, r.NumberOfLanes,
		r.ObjectThrownOrDropped, r.OtherObject, r.OtherVehicleType, r.OverBank,
		r.ParkedVehicle, r.Pedestrian, r.PhoneBoxEtc, r.PostOrPole, r.RoadCharacter,
		r.RoadLane, r.RoadSurface, r.Roadworks, r.SchoolBus, r.SeriousInjuryCount,
		r.SlipOrFlood, r.SpeedLimit, r.StrayAnimal, r.StreetLight, r.SUV, r.Taxi,
		r.TemporarySpeedLimit, r.TLAName, r.TrafficControl, r.TrafficIsland,
		r.TrafficSign, r.Train, r.Tree, r.Truck, r.UnknownVehicleType, r.Urban,
		r.VanOrUtility, r.Vehicle, r.WaterRiver, r.WeatherA, r.WeatherB, r.Lat, r.Lng,
	}
}

// recordDest возвращает указатели для Scan в порядке selectColumns
func recordDest(r *models.IncidentRecord) []any {
	return []any{
		&r.ID,
		&r.AdvisorySpeed, &r.Bicycle, &r.Bridge, &r.Bus, &r.CarStationWagon, &r.CliffBank,
		&r.Location1, &r.Location2, &r.Severity, &r.Year, &r.Ditch, &r.FatalCount, &r.Fence,
		&r.FlatHill, &r.GuardRail, &r.Holiday, &r.HouseOrBuilding, &r.Intersection, &r.Kerb,
		&r.Light, &r.MinorInjuryCount, &r.Moped, &r.Motorcycle, &r.NumberOfLanes,
		&r.ObjectThrownOrDropped, &r.OtherObject, &r.OtherVehicleType, &r.OverBank,
		&r.ParkedVehicle, &r.Pedestrian, &r.PhoneBoxEtc, &r.PostOrPole, &r.RoadCharacter,
		&r.RoadLane, &r.RoadSurface, &r.Roadworks, &r.SchoolBus, &r.SeriousInjuryCount,
		&r.SlipOrFlood, &r.SpeedLimit, &r.StrayAnimal, &r.StreetLight, &r.SUV, &r.Taxi,
		&r.TemporarySpeedLimit, &r.TLAName, &r.TrafficControl, &r.TrafficIsland,
		&r.TrafficSign, &r.Train, &r.Tree, &r.Truck, &r.UnknownVehicleType, &r.Urban,
		&r.VanOrUtility, &r.Vehicle, &r.WaterRiver, &r.WeatherA, &r.WeatherB, &r.Lat, &r.Lng,
	}
}

// rowKey - ключ дедупликации: SHA-256 от всех атрибутов записи, кроме id.
// Две записи с одинаковыми атрибутами считаются дубликатами.
func rowKey(values []any) string {
	h := sha256.New()
	for _, v := range values {
		fmt.Fprintf(h, "%v\x1f", v)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// insertPlaceholders строит список плейсхолдеров для INSERT; numbered=true дает $1..$n для postgres
func insertPlaceholders(n int, numbered bool) string {
	parts := make([]string, n)
	for i := range parts {
		if numbered {
			parts[i] = fmt.Sprintf("$%d", i+1)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, ", ")
}

func insertColumns() string {
	return strings.Join(recordColumns, ", ") + ", row_key"
}

// pageOffset считает OFFSET страницы; false для отрицательных значений и при переполнении
func pageOffset(page, pageSize int) (int, bool) {
	if page < 0 || pageSize <= 0 || page > math.MaxInt/pageSize {
		return 0, false
	}
	return page * pageSize, true
}

const createSpatialIndex = "CREATE INDEX IF NOT EXISTS incidents_lat_lng_idx ON incidents (lat, lng)"

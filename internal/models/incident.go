package models

// Значения тяжести ДТП в том виде, в каком они приходят в выгрузке
const (
	SeverityFatal     = "Fatal Crash"
	SeveritySerious   = "Serious Crash"
	SeverityMinor     = "Minor Crash"
	SeverityNonInjury = "Non-Injury Crash"
)

// IncidentRecord - одна запись о ДТП из выгрузки.
// ID равен нулю, пока запись не сохранена в хранилище.
type IncidentRecord struct {
	ID int64 `json:"id"`

	AdvisorySpeed         int    `json:"advisory_speed" validate:"min=0,max=110"`
	Bicycle               int    `json:"bicycle" validate:"min=0,max=100"`
	Bridge                int    `json:"bridge" validate:"min=0,max=100"`
	Bus                   int    `json:"bus" validate:"min=0,max=100"`
	CarStationWagon       int    `json:"car_station_wagon" validate:"min=0,max=100"`
	CliffBank             int    `json:"cliff_bank" validate:"min=0,max=100"`
	Location1             string `json:"location1"`
	Location2             string `json:"location2"`
	Severity              string `json:"severity" validate:"domain=severity"`
	Year                  int    `json:"year" validate:"min=2000,max=2023"`
	Ditch                 int    `json:"ditch" validate:"min=0,max=100"`
	FatalCount            int    `json:"fatal_count" validate:"min=0,max=100"`
	Fence                 int    `json:"fence" validate:"min=0,max=100"`
	FlatHill              string `json:"flat_hill" validate:"domain=flatHill"`
	GuardRail             int    `json:"guard_rail" validate:"min=0,max=100"`
	Holiday               string `json:"holiday" validate:"domain=holiday"`
	HouseOrBuilding       int    `json:"house_or_building" validate:"min=0,max=100"`
	Intersection          string `json:"intersection"`
	Kerb                  int    `json:"kerb" validate:"min=0,max=100"`
	Light                 string `json:"light" validate:"domain=light"`
	MinorInjuryCount      int    `json:"minor_injury_count" validate:"min=0,max=100"`
	Moped                 int    `json:"moped" validate:"min=0,max=100"`
	Motorcycle            int    `json:"motorcycle" validate:"min=0,max=100"`
	NumberOfLanes         int    `json:"number_of_lanes" validate:"min=0,max=100"`
	ObjectThrownOrDropped int    `json:"object_thrown_or_dropped" validate:"min=0,max=100"`
	OtherObject           int    `json:"other_object" validate:"min=0,max=100"`
	OtherVehicleType      int    `json:"other_vehicle_type" validate:"min=0,max=100"`
	OverBank              int    `json:"over_bank" validate:"min=0,max=100"`
	ParkedVehicle         int    `json:"parked_vehicle" validate:"min=0,max=100"`
	Pedestrian            int    `json:"pedestrian" validate:"min=0,max=100"`
	PhoneBoxEtc           int    `json:"phone_box_etc" validate:"min=0,max=100"`
	PostOrPole            int    `json:"post_or_pole" validate:"min=0,max=100"`
	RoadCharacter         string `json:"road_character" validate:"domain=roadCharacter"`
	RoadLane              string `json:"road_lane" validate:"domain=roadLane"`
	RoadSurface           string `json:"road_surface" validate:"domain=roadSurface"`
	Roadworks             int    `json:"roadworks" validate:"min=0,max=100"`
	SchoolBus             int    `json:"school_bus" validate:"min=0,max=100"`
	SeriousInjuryCount    int    `json:"serious_injury_count" validate:"min=0,max=100"`
	SlipOrFlood           int    `json:"slip_or_flood" validate:"min=0,max=100"`
	SpeedLimit            int    `json:"speed_limit" validate:"min=0,max=110"`
	StrayAnimal           int    `json:"stray_animal" validate:"min=0,max=100"`
	StreetLight           string `json:"street_light" validate:"domain=streetLight"`
	SUV                   int    `json:"suv" validate:"min=0,max=100"`
	Taxi                  int    `json:"taxi" validate:"min=0,max=100"`
	TemporarySpeedLimit   int    `json:"temporary_speed_limit" validate:"min=0,max=110"`
	TLAName               string `json:"tla_name"`
	TrafficControl        string `json:"traffic_control" validate:"domain=trafficControl"`
	TrafficIsland         int    `json:"traffic_island" validate:"min=0,max=100"`
	TrafficSign           int    `json:"traffic_sign" validate:"min=0,max=100"`
	Train                 int    `json:"train" validate:"min=0,max=100"`
	Tree                  int    `json:"tree" validate:"min=0,max=100"`
	Truck                 int    `json:"truck" validate:"min=0,max=100"`
	UnknownVehicleType    int    `json:"unknown_vehicle_type" validate:"min=0,max=100"`
	Urban                 string `json:"urban" validate:"domain=urban"`
	VanOrUtility          int    `json:"van_or_utility" validate:"min=0,max=100"`
	Vehicle               int    `json:"vehicle" validate:"min=0,max=100"`
	WaterRiver            int    `json:"water_river" validate:"min=0,max=100"`
	WeatherA              string `json:"weather_a" validate:"domain=weatherA"`
	WeatherB              string `json:"weather_b" validate:"domain=weatherB"`

	Lat float32 `json:"lat"`
	Lng float32 `json:"lng"`
}

// Position возвращает координаты записи
func (r IncidentRecord) Position() Position {
	return Position{Lat: float64(r.Lat), Lng: float64(r.Lng)}
}

// VehicleCount - число участвовавших транспортных средств по основным категориям
func (r IncidentRecord) VehicleCount() int {
	return r.CarStationWagon + r.Bus + r.Moped + r.Motorcycle + r.Taxi + r.Truck + r.UnknownVehicleType + r.VanOrUtility
}

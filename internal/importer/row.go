package importer

import (
	"fmt"
	"strconv"

	"github.com/shenikar/road_risk_advisor/internal/models"
)

// Позиции колонок выгрузки (с нуля)
const (
	colAdvisorySpeed         = 1
	colBicycle               = 2
	colBridge                = 3
	colBus                   = 4
	colCarStationWagon       = 5
	colCliffBank             = 6
	colLocation1             = 9
	colLocation2             = 10
	colSeverity              = 12
	colYear                  = 14
	colDitch                 = 17
	colFatalCount            = 18
	colFence                 = 19
	colFlatHill              = 20
	colGuardRail             = 21
	colHoliday               = 22
	colHouseOrBuilding       = 23
	colIntersection          = 24
	colKerb                  = 25
	colLight                 = 26
	colMinorInjuryCount      = 27
	colMoped                 = 28
	colMotorcycle            = 29
	colNumberOfLanes         = 30
	colObjectThrownOrDropped = 31
	colOtherObject           = 32
	colOtherVehicleType      = 33
	colOverBank              = 34
	colParkedVehicle         = 35
	colPedestrian            = 36
	colPhoneBoxEtc           = 37
	colPostOrPole            = 38
	colRoadCharacter         = 40
	colRoadLane              = 41
	colRoadSurface           = 42
	colRoadworks             = 43
	colSchoolBus             = 44
	colSeriousInjuryCount    = 45
	colSlipOrFlood           = 46
	colSpeedLimit            = 47
	colStrayAnimal           = 48
	colStreetLight           = 49
	colSUV                   = 50
	colTaxi                  = 51
	colTemporarySpeedLimit   = 52
	colTLAName               = 53
	colTrafficControl        = 54
	colTrafficIsland         = 55
	colTrafficSign           = 56
	colTrain                 = 57
	colTree                  = 58
	colTruck                 = 59
	colUnknownVehicleType    = 60
	colUrban                 = 61
	colVanOrUtility          = 62
	colVehicle               = 63
	colWaterRiver            = 64
	colWeatherA              = 65
	colWeatherB              = 66
	colLat                   = 67
	colLng                   = 68

	// MinFields - минимальное число колонок в строке данных
	MinFields = colLng + 1
)

// rowParser запоминает первую ошибку разбора, чтобы не проверять каждое поле отдельно
type rowParser struct {
	fields []string
	err    error
}

func (p *rowParser) int(col int) int {
	if p.err != nil {
		return 0
	}
	raw := p.fields[col]
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.err = fmt.Errorf("column %d: %w", col, err)
		return 0
	}
	return v
}

func (p *rowParser) float(col int) float32 {
	if p.err != nil {
		return 0
	}
	raw := p.fields[col]
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		p.err = fmt.Errorf("column %d: %w", col, err)
		return 0
	}
	return float32(v)
}

func (p *rowParser) str(col int) string {
	return p.fields[col]
}

// parseRow переводит позиционные поля строки в запись. Диапазоны и домены здесь не проверяются.
func parseRow(fields []string) (models.IncidentRecord, error) {
	if len(fields) < MinFields {
		return models.IncidentRecord{}, fmt.Errorf("expected at least %d fields, got %d", MinFields, len(fields))
	}

	p := &rowParser{fields: fields}
	record := models.IncidentRecord{
		AdvisorySpeed:         p.int(colAdvisorySpeed),
		Bicycle:               p.int(colBicycle),
		Bridge:                p.int(colBridge),
		Bus:                   p.int(colBus),
		CarStationWagon:       p.int(colCarStationWagon),
		CliffBank:             p.int(colCliffBank),
		Location1:             p.str(colLocation1),
		Location2:             p.str(colLocation2),
		Severity:              p.str(colSeverity),
		Year:                  p.int(colYear),
		Ditch:                 p.int(colDitch),
		FatalCount:            p.int(colFatalCount),
		Fence:                 p.int(colFence),
		FlatHill:              p.str(colFlatHill),
		GuardRail:             p.int(colGuardRail),
		Holiday:               p.str(colHoliday),
		HouseOrBuilding:       p.int(colHouseOrBuilding),
		Intersection:          p.str(colIntersection),
		Kerb:                  p.int(colKerb),
		Light:                 p.str(colLight),
		MinorInjuryCount:      p.int(colMinorInjuryCount),
		Moped:                 p.int(colMoped),
		Motorcycle:            p.int(colMotorcycle),
		NumberOfLanes:         p.int(colNumberOfLanes),
		ObjectThrownOrDropped: p.int(colObjectThrownOrDropped),
		OtherObject:           p.int(colOtherObject),
		OtherVehicleType:      p.int(colOtherVehicleType),
		OverBank:              p.int(colOverBank),
		ParkedVehicle:         p.int(colParkedVehicle),
		Pedestrian:            p.int(colPedestrian),
		PhoneBoxEtc:           p.int(colPhoneBoxEtc),
		PostOrPole:            p.int(colPostOrPole),
		RoadCharacter:         p.str(colRoadCharacter),
		RoadLane:              p.str(colRoadLane),
		RoadSurface:           p.str(colRoadSurface),
		Roadworks:             p.int(colRoadworks),
		SchoolBus:             p.int(colSchoolBus),
		SeriousInjuryCount:    p.int(colSeriousInjuryCount),
		SlipOrFlood:           p.int(colSlipOrFlood),
		SpeedLimit:            p.int(colSpeedLimit),
		StrayAnimal:           p.int(colStrayAnimal),
		StreetLight:           p.str(colStreetLight),
		SUV:                   p.int(colSUV),
		Taxi:                  p.int(colTaxi),
		TemporarySpeedLimit:   p.int(colTemporarySpeedLimit),
		TLAName:               p.str(colTLAName),
		TrafficControl:        p.str(colTrafficControl),
		TrafficIsland:         p.int(colTrafficIsland),
		TrafficSign:           p.int(colTrafficSign),
		Train:                 p.int(colTrain),
		Tree:                  p.int(colTree),
		Truck:                 p.int(colTruck),
		UnknownVehicleType:    p.int(colUnknownVehicleType),
		Urban:                 p.str(colUrban),
		VanOrUtility:          p.int(colVanOrUtility),
		Vehicle:               p.int(colVehicle),
		WaterRiver:            p.int(colWaterRiver),
		WeatherA:              p.str(colWeatherA),
		WeatherB:              p.str(colWeatherB),
		Lat:                   p.float(colLat),
		Lng:                   p.float(colLng),
	}
	if p.err != nil {
		return models.IncidentRecord{}, p.err
	}
	return record, nil
}

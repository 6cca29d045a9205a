package models

// Допустимые значения категориальных полей, ключ - имя домена из тега validate
var domains = map[string]map[string]struct{}{
	"severity":       setOf(SeverityFatal, SeveritySerious, SeverityMinor, SeverityNonInjury),
	"flatHill":       setOf("Flat", "Hill Road", "Null"),
	"holiday":        setOf("Christmas New Year", "Easter", "Queens Birthday", "Labour Weekend", ""),
	"light":          setOf("Bright sun", "Overcast", "Twilight", "Dark", "Unknown"),
	"roadCharacter":  setOf("Bridge", "Motorway ramp", "Overpass", "Rail xing", "Speed hump", "Tunnel", "Tram lines", "Nil", "Underpass", "Null"),
	"roadLane":       setOf("1-way", "2-way", "Off road", "Null"),
	"roadSurface":    setOf("Sealed", "Unsealed", "End of seal", "Null"),
	"streetLight":    setOf("On", "Off", "None", "Null"),
	"trafficControl": setOf("Traffic Signals", "Stop", "Give way", "Pointsman", "School Patrol/warden", "Nil", "Isolated Pedestrian signal (non-intersection)", "Unknown"),
	"urban":          setOf("Urban", "Open"),
	"weatherA":       setOf("Fine", "Mist or Fog", "Light rain", "Heavy rain", "Snow", "Hail or Sleet", "Null"),
	"weatherB":       setOf("Frost", "Strong wind", "None", "Null"),
}

var severityLabels = map[string]string{
	SeverityFatal:     "Fatal",
	SeveritySerious:   "Serious",
	SeverityMinor:     "Minor",
	SeverityNonInjury: "Non-Injury",
}

func setOf(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// InDomain сообщает, входит ли значение в домен. Неизвестный домен - всегда false.
func InDomain(domain, value string) bool {
	set, ok := domains[domain]
	if !ok {
		return false
	}
	_, ok = set[value]
	return ok
}

// HasDomain сообщает, объявлен ли домен с таким именем
func HasDomain(domain string) bool {
	_, ok := domains[domain]
	return ok
}

// SeverityLabel возвращает короткое отображаемое название тяжести
func SeverityLabel(severity string) string {
	if label, ok := severityLabels[severity]; ok {
		return label
	}
	return severity
}

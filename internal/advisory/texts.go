package advisory

import "time"

const iconDir = "/img/"

type advice struct {
	body string
	icon string
}

const (
	summaryTitle = "Summary"
	summaryIcon  = iconDir + "note-2-32.png"
	summaryEmpty = "There have not been any crashes in the search that you have chosen!"
	summaryText  = "There have been %d crashes in total, with %d of these crashes in the past five years. " +
		"The average risk from this search is %d/10, with the highest risk crash being %d/10."

	roadTitle    = "Road Advice"
	speedTitle   = "Speed Advice"
	weatherTitle = "Weather Advice"
	weatherIcon  = iconDir + "weather_icon.png"
)

var trafficControlAdvice = map[string]advice{
	"Give way": {
		body: "Slow right down when approaching a give way sign and be ready to stop. Give way to all other vehicles, other than those at a stop sign.",
		icon: iconDir + "give_way_icon.png",
	},
	"Traffic Signals": {
		body: "Remember, when a traffic light is red, you must stop. When the light is green, double check the intersection is safe to drive through before you enter it.",
		icon: iconDir + "traffic_light_icon.png",
	},
	"Stop": {
		body: "Remember to completely stop at stop signs and give way to all vehicles.",
		icon: iconDir + "stop_icon.png",
	},
}

// Для остальных видов регулирования (регулировщик, школьный патруль, пешеходный светофор)
var genericTrafficControlAdvice = advice{
	body: "Watch for traffic control along your route and be ready to follow its directions.",
	icon: iconDir + "traffic_light_icon.png",
}

var unsealedRoadAdvice = advice{
	body: "It appears you may be driving along some unsealed road. Reduce your speed to maintain control of your vehicle while driving here.",
	icon: iconDir + "unsealed_road_icon.png",
}

var speedAdvice = advice{
	body: "Make sure to meet the advisory speed when moving around turns in the road along your route. Corners can be tighter than they initially appear.",
	icon: iconDir + "speed_icon.png",
}

type season string

const (
	seasonSummer  season = "Summer"
	seasonAutumn  season = "Autumn"
	seasonWinter  season = "Winter"
	seasonSpring  season = "Spring"
	seasonUnknown season = "Unknown"
)

// Времена года южного полушария
var monthSeasons = map[time.Month]season{
	time.December:  seasonSummer,
	time.January:   seasonSummer,
	time.February:  seasonSummer,
	time.March:     seasonAutumn,
	time.April:     seasonAutumn,
	time.May:       seasonAutumn,
	time.June:      seasonWinter,
	time.July:      seasonWinter,
	time.August:    seasonWinter,
	time.September: seasonSpring,
	time.October:   seasonSpring,
	time.November:  seasonSpring,
}

var seasonAdvice = map[season]advice{
	seasonAutumn: {
		body: "Be cautious of wet, fallen leaves. They can be extremely slippery, and can conceal important road markings.",
		icon: iconDir + "leaf-3-32.png",
	},
	seasonWinter: {
		body: "Plan your journey within the warmer hours of the day to avoid hazards such as black ice.",
		icon: iconDir + "snowflake-35-32.png",
	},
	seasonSpring: {
		body: "Be cautious of an increase in potholes. If you cannot avoid them, slow down and release the brake when you pass over to minimize impact.",
		icon: iconDir + "bunch-flowers-32.png",
	},
	seasonSummer: {
		body: "Due to summer holidays, there is often more traffic on the road in summer. Keep an eye on oncoming traffic and maintain safe following distances.",
		icon: iconDir + "sun-3-32.png",
	},
	seasonUnknown: {
		body: "Always try to drive during daylight hours if driving on unfamiliar roads to decrease the risk of hitting unexpected obstacles.",
		icon: iconDir + "starTransparent.png",
	},
}

// Ключи - значения weather_a/weather_b из выгрузки
var weatherAdvice = map[string]string{
	"Fine":        "Turn on the windscreen air-con/heater when first starting your car to prevent your windows from fogging up.",
	"Mist or Fog": "Slow down, and turn on your low-beam (not high-beam) headlights so that vehicles may see you from in front and behind without reducing your visibility.",
	"Light rain":  "Take care around corners, the faster you go, the easier it is to lose traction on a slippery surface.",
	"Heavy rain":  "Increase your following distance from four seconds to six seconds. Drive slower as the roads are more slippery.",
	"Snow":        "Try and avoid driving if possible.",
	"Frost":       "Try and leave at a later (warmer) hour to avoid frost. Accelerate and brake gently to prevent losing traction.",
	"Strong wind": "Reduce your speed and take note of the direction of the wind. You or oncoming traffic could be blown into the other lane.",
}

// Значения, означающие отсутствие данных о погоде. "None" из weather_b
// считается наравне с остальными, но рекомендации для него нет.
var noWeather = map[string]struct{}{
	"":     {},
	"Null": {},
}

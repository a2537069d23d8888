package weather

import "strings"

// DefaultCity se usa cuando el request no trae ciudad.
const DefaultCity = "Toronto"

type city struct {
	Name string
	Lat  float64
	Lon  float64
}

// Tabla fija de ciudades soportadas para la demo; el match es
// case-insensitive y se guarda siempre el nombre canónico.
var supportedCities = map[string]city{
	"toronto":   {Name: "Toronto", Lat: 43.65, Lon: -79.38},
	"montreal":  {Name: "Montreal", Lat: 45.50, Lon: -73.57},
	"vancouver": {Name: "Vancouver", Lat: 49.28, Lon: -123.12},
	"calgary":   {Name: "Calgary", Lat: 51.05, Lon: -114.07},
}

func lookupCity(name string) (city, bool) {
	c, ok := supportedCities[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

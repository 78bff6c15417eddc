package consts

import (
	"strings"
)

type placeCoordinates struct {
	Latitude  float64
	Longitude float64
}

// EastAfricaPlaces carries centroid coordinates for the place names that
// appear in MOH and WHO AFRO surveillance reports, keyed lowercase. It is
// the offline fallback when no geocoding client is configured.
var EastAfricaPlaces map[string]placeCoordinates

func init() {
	EastAfricaPlaces = make(map[string]placeCoordinates)

	EastAfricaPlaces["nairobi"] = placeCoordinates{-1.2921, 36.8219}
	EastAfricaPlaces["mombasa"] = placeCoordinates{-4.0435, 39.6682}
	EastAfricaPlaces["kisumu"] = placeCoordinates{-0.1022, 34.7617}
	EastAfricaPlaces["nakuru"] = placeCoordinates{-0.3031, 36.0800}
	EastAfricaPlaces["eldoret"] = placeCoordinates{0.5143, 35.2698}
	EastAfricaPlaces["thika"] = placeCoordinates{-1.0333, 37.0693}
	EastAfricaPlaces["machakos"] = placeCoordinates{-1.5177, 37.2634}
	EastAfricaPlaces["turkana"] = placeCoordinates{3.1167, 35.5833}
	EastAfricaPlaces["kampala"] = placeCoordinates{0.3476, 32.5825}
	EastAfricaPlaces["entebbe"] = placeCoordinates{0.0512, 32.4637}
	EastAfricaPlaces["jinja"] = placeCoordinates{0.4244, 33.2041}
	EastAfricaPlaces["mbale"] = placeCoordinates{1.0647, 34.1797}
	EastAfricaPlaces["gulu"] = placeCoordinates{2.7746, 32.2990}
	EastAfricaPlaces["mbarara"] = placeCoordinates{-0.6072, 30.6545}
	EastAfricaPlaces["dar es salaam"] = placeCoordinates{-6.7924, 39.2083}
	EastAfricaPlaces["dodoma"] = placeCoordinates{-6.1630, 35.7516}
	EastAfricaPlaces["arusha"] = placeCoordinates{-3.3869, 36.6830}
	EastAfricaPlaces["mwanza"] = placeCoordinates{-2.5164, 32.9175}
	EastAfricaPlaces["zanzibar"] = placeCoordinates{-6.1659, 39.2026}
	EastAfricaPlaces["kigali"] = placeCoordinates{-1.9441, 30.0619}
	EastAfricaPlaces["butare"] = placeCoordinates{-2.5967, 29.7394}
	EastAfricaPlaces["gisenyi"] = placeCoordinates{-1.7021, 29.2570}
	EastAfricaPlaces["addis ababa"] = placeCoordinates{9.0240, 38.7469}
	EastAfricaPlaces["dire dawa"] = placeCoordinates{9.5931, 41.8661}
	EastAfricaPlaces["bahir dar"] = placeCoordinates{11.5742, 37.3614}
}

// LookupPlace returns the known centroid of a place name. The match is
// case-insensitive and tolerates county/region suffixes, e.g. "Turkana
// County" resolves to the turkana centroid.
func LookupPlace(name string) (latitude, longitude float64, ok bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if p, found := EastAfricaPlaces[key]; found {
		return p.Latitude, p.Longitude, true
	}

	for place, p := range EastAfricaPlaces {
		if strings.Contains(key, place) {
			return p.Latitude, p.Longitude, true
		}
	}

	return 0, 0, false
}

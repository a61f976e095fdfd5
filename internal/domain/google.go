package domain

// Структуры ответов Google Maps Web Services (geocode/json, directions/json)

// GoogleStatus - поле status ответа сервиса
type GoogleStatus string

const (
	GoogleStatusOK             GoogleStatus = "OK"
	GoogleStatusInvalidRequest GoogleStatus = "INVALID_REQUEST"
	GoogleStatusZeroResults    GoogleStatus = "ZERO_RESULTS"
	GoogleStatusOverQueryLimit GoogleStatus = "OVER_QUERY_LIMIT"
	GoogleStatusRequestDenied  GoogleStatus = "REQUEST_DENIED"
	GoogleStatusUnknownError   GoogleStatus = "UNKNOWN_ERROR"
)

// GoogleLocationType - точность геокодирования
type GoogleLocationType string

const (
	LocationTypeRooftop           GoogleLocationType = "ROOFTOP"
	LocationTypeRangeInterpolated GoogleLocationType = "RANGE_INTERPOLATED"
	LocationTypeGeometricCenter   GoogleLocationType = "GEOMETRIC_CENTER"
	LocationTypeApproximate       GoogleLocationType = "APPROXIMATE"
)

// Типы компонентов адреса, используемые при сборке Placemark
const (
	AddressTypeStreetNumber = "street_number"
	AddressTypeCountry      = "country"
	AddressTypePostalCode   = "postal_code"
	AddressTypeSublocality  = "sublocality"
	AddressTypeRoute        = "route"
)

type GoogleLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type GeocodingGeometry struct {
	Location     GoogleLatLng       `json:"location"`
	LocationType GoogleLocationType `json:"location_type"`
}

type GeocodingResult struct {
	FormattedAddress  string             `json:"formatted_address"`
	AddressComponents []AddressComponent `json:"address_components"`
	Geometry          GeocodingGeometry  `json:"geometry"`
	PlaceID           string             `json:"place_id"`
	Types             []string           `json:"types"`
}

type GeocodingResponse struct {
	Status       GoogleStatus      `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Results      []GeocodingResult `json:"results"`
}

type EncodedPolyline struct {
	Points string `json:"points"`
}

type DirectionsStep struct {
	Polyline   EncodedPolyline `json:"polyline"`
	TravelMode string          `json:"travel_mode"`
}

type DirectionsLeg struct {
	StartAddress string           `json:"start_address"`
	EndAddress   string           `json:"end_address"`
	Steps        []DirectionsStep `json:"steps"`
}

type DirectionsRoute struct {
	Summary          string          `json:"summary"`
	Legs             []DirectionsLeg `json:"legs"`
	OverviewPolyline EncodedPolyline `json:"overview_polyline"`
	Copyrights       string          `json:"copyrights"`
}

type DirectionsResponse struct {
	Status       GoogleStatus      `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Routes       []DirectionsRoute `json:"routes"`
}

// DirectionsRequest - параметры запроса маршрута. Origin/Destination
// это либо "lat,lng", либо адрес в свободной форме
type DirectionsRequest struct {
	Origin        string
	Destination   string
	Mode          TravelMode
	AvoidHighways bool
}

// StaticMapRequest - параметры запроса изображения Static Maps
type StaticMapRequest struct {
	Center  Point
	Zoom    int
	Width   int
	Height  int
	MapType MapType
}

package domain

// GeoCoderStatusCode - статус ответа геокодера в терминах картографического клиента
type GeoCoderStatusCode int

const (
	GeoCoderUnknown GeoCoderStatusCode = iota
	GeoCoderSuccess
	GeoCoderBadRequest
	GeoCoderUnknownAddress
	GeoCoderTooManyQueries
	GeoCoderRequestDenied
	GeoCoderExceptionInCode
)

var geoCoderStatusNames = map[GeoCoderStatusCode]string{
	GeoCoderUnknown:         "UNKNOWN",
	GeoCoderSuccess:         "SUCCESS",
	GeoCoderBadRequest:      "BAD_REQUEST",
	GeoCoderUnknownAddress:  "UNKNOWN_ADDRESS",
	GeoCoderTooManyQueries:  "TOO_MANY_QUERIES",
	GeoCoderRequestDenied:   "REQUEST_DENIED",
	GeoCoderExceptionInCode: "EXCEPTION_IN_CODE",
}

func (s GeoCoderStatusCode) String() string {
	if name, ok := geoCoderStatusNames[s]; ok {
		return name
	}
	return geoCoderStatusNames[GeoCoderExceptionInCode]
}

func (s GeoCoderStatusCode) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// GeocodedPoint - координата с оценкой точности [0.0 - 1.0]
type GeocodedPoint struct {
	Point    Point   `json:"point"`
	Accuracy float32 `json:"accuracy"`
}

// Placemark - структурированный адрес из обратного геокодирования
type Placemark struct {
	Address          string `json:"address"`
	HouseNo          string `json:"house_no,omitempty"`
	CountryName      string `json:"country_name,omitempty"`
	PostalCodeNumber string `json:"postal_code,omitempty"`
	DistrictName     string `json:"district_name,omitempty"`
	ThoroughfareName string `json:"thoroughfare_name,omitempty"`
}

// MapRoute - маршрут как ломаная из координат
type MapRoute struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// TravelMode - режим передвижения для маршрутизации
type TravelMode string

const (
	TravelModeDriving TravelMode = "driving"
	TravelModeWalking TravelMode = "walking"
)

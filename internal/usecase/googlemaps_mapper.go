package usecase

import (
	"fmt"

	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/pkg/utils"
)

// ToGeoCoderStatusCode переводит status ответа Google в код геокодера
func ToGeoCoderStatusCode(status domain.GoogleStatus) domain.GeoCoderStatusCode {
	switch status {
	case domain.GoogleStatusOK:
		return domain.GeoCoderSuccess
	case domain.GoogleStatusInvalidRequest:
		return domain.GeoCoderBadRequest
	case domain.GoogleStatusZeroResults:
		return domain.GeoCoderUnknownAddress
	case domain.GoogleStatusOverQueryLimit:
		return domain.GeoCoderTooManyQueries
	case domain.GoogleStatusRequestDenied:
		return domain.GeoCoderRequestDenied
	case domain.GoogleStatusUnknownError:
		return domain.GeoCoderUnknown
	default:
		return domain.GeoCoderExceptionInCode
	}
}

// ToAccuracyValue переводит location_type в точность [0.0 - 1.0]
func ToAccuracyValue(locationType domain.GoogleLocationType) float32 {
	switch locationType {
	case domain.LocationTypeRooftop:
		return 1.0
	case domain.LocationTypeRangeInterpolated:
		return 0.8
	case domain.LocationTypeGeometricCenter:
		return 0.5
	case domain.LocationTypeApproximate:
		return 0.2
	default:
		return 0.0
	}
}

func ToGeocodedPoint(result domain.GeocodingResult) domain.GeocodedPoint {
	return domain.GeocodedPoint{
		Point: domain.Point{
			Lat: result.Geometry.Location.Lat,
			Lon: result.Geometry.Location.Lng,
		},
		Accuracy: ToAccuracyValue(result.Geometry.LocationType),
	}
}

// ToPlacemark собирает адрес из первого компонента каждого типа
func ToPlacemark(result domain.GeocodingResult) domain.Placemark {
	pm := domain.Placemark{Address: result.FormattedAddress}

	for _, component := range result.AddressComponents {
		for _, t := range component.Types {
			switch t {
			case domain.AddressTypeStreetNumber:
				setOnce(&pm.HouseNo, component.LongName)
			case domain.AddressTypeCountry:
				setOnce(&pm.CountryName, component.LongName)
			case domain.AddressTypePostalCode:
				setOnce(&pm.PostalCodeNumber, component.LongName)
			case domain.AddressTypeSublocality:
				setOnce(&pm.DistrictName, component.LongName)
			case domain.AddressTypeRoute:
				setOnce(&pm.ThoroughfareName, component.LongName)
			}
		}
	}

	return pm
}

func setOnce(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}

// ToMapRoute декодирует маршрут: склеивает polyline всех шагов,
// либо берет overview polyline
func ToMapRoute(route domain.DirectionsRoute, overview bool) (*domain.MapRoute, error) {
	mapRoute := &domain.MapRoute{Name: route.Summary}

	if overview {
		points, err := utils.DecodePolyline(route.OverviewPolyline.Points)
		if err != nil {
			return nil, fmt.Errorf("overview polyline: %w", err)
		}
		mapRoute.Points = points
		return mapRoute, nil
	}

	for i, leg := range route.Legs {
		for j, step := range leg.Steps {
			points, err := utils.DecodePolyline(step.Polyline.Points)
			if err != nil {
				return nil, fmt.Errorf("leg %d step %d polyline: %w", i, j, err)
			}
			mapRoute.Points = append(mapRoute.Points, points...)
		}
	}

	return mapRoute, nil
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMapType возвращается для неизвестного типа карты
var ErrUnknownMapType = errors.New("unknown map type")

// MapType - тип карты Google Static Maps
type MapType string

const (
	MapTypeRoadmap   MapType = "roadmap"
	MapTypeSatellite MapType = "satellite"
	MapTypeHybrid    MapType = "hybrid"
	MapTypeTerrain   MapType = "terrain"
)

// AllMapTypes в порядке регистрации провайдеров
var AllMapTypes = []MapType{MapTypeRoadmap, MapTypeSatellite, MapTypeHybrid, MapTypeTerrain}

// ParseMapType разбирает тип карты без учета регистра
func ParseMapType(s string) (MapType, error) {
	mt := MapType(strings.ToLower(strings.TrimSpace(s)))
	if !mt.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMapType, s)
	}
	return mt, nil
}

func (t MapType) Valid() bool {
	switch t {
	case MapTypeRoadmap, MapTypeSatellite, MapTypeHybrid, MapTypeTerrain:
		return true
	}
	return false
}

func (t MapType) String() string {
	return string(t)
}

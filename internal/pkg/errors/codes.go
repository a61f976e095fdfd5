package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidTileCoordinates = New(
		"INVALID_TILE_COORDINATES",
		"Invalid tile coordinates",
		http.StatusBadRequest,
	)

	ErrUnknownMapType = New(
		"UNKNOWN_MAP_TYPE",
		"Unknown map type, expected roadmap, satellite, hybrid or terrain",
		http.StatusNotFound,
	)

	ErrTileNotAvailable = New(
		"TILE_NOT_AVAILABLE",
		"Tile image could not be fetched from the upstream service",
		http.StatusNotFound,
	)

	ErrUpstreamUnavailable = New(
		"UPSTREAM_UNAVAILABLE",
		"Google Maps service request failed",
		http.StatusBadGateway,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

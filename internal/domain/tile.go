package domain

// TileImage - готовый тайл в формате PNG
type TileImage struct {
	Data      []byte
	Width     int
	Height    int
	FromCache bool
}

// TileRequest - координаты тайла в сетке Web Mercator
type TileRequest struct {
	MapType MapType
	X       int
	Y       int
	Zoom    int

	// ForceRefresh - не читать URL кеш (ответ все равно будет сохранен)
	ForceRefresh bool
}

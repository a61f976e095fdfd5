package http_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gmaps-business-provider/internal/config"
	httpDelivery "github.com/gmaps-business-provider/internal/delivery/http"
	"github.com/gmaps-business-provider/internal/delivery/http/handler"
	"github.com/gmaps-business-provider/internal/infrastructure/googlemaps"
	"github.com/gmaps-business-provider/internal/infrastructure/httpcache"
	"github.com/gmaps-business-provider/internal/provider"
	"github.com/gmaps-business-provider/internal/repository/cache"
	"github.com/gmaps-business-provider/internal/usecase"
)

type fakeGoogle struct {
	server      *httptest.Server
	staticHits  int32
	staticCode  int32
	geocodeCode int32
}

func newFakeGoogle(t *testing.T) *fakeGoogle {
	t.Helper()
	f := &fakeGoogle{staticCode: http.StatusOK, geocodeCode: http.StatusOK}

	var staticPNG bytes.Buffer
	require.NoError(t, png.Encode(&staticPNG, image.NewNRGBA(image.Rect(0, 0, 256, 306))))

	mux := http.NewServeMux()
	mux.HandleFunc("/maps/api/staticmap", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.staticHits, 1)
		if code := int(atomic.LoadInt32(&f.staticCode)); code != http.StatusOK {
			w.WriteHeader(code)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(staticPNG.Bytes())
	})
	mux.HandleFunc("/maps/api/geocode/json", func(w http.ResponseWriter, r *http.Request) {
		if code := int(atomic.LoadInt32(&f.geocodeCode)); code != http.StatusOK {
			w.WriteHeader(code)
			return
		}
		if r.URL.Query().Get("latlng") != "" {
			w.Write([]byte(`{"status":"OK","results":[{"formatted_address":"Unter den Linden 1, 10117 Berlin, Germany",
				"address_components":[{"long_name":"1","types":["street_number"]},{"long_name":"Germany","types":["country","political"]}]}]}`))
			return
		}
		w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":52.52,"lng":13.405},"location_type":"ROOFTOP"}}]}`))
	})
	mux.HandleFunc("/maps/api/directions/json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK","routes":[{"summary":"B1","legs":[{"steps":[{"polyline":{"points":"_p~iF~ps|U_ulLnnqC_mqNvxq` + "`" + `@"}}]}]}]}`))
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func newTestServer(t *testing.T, google *fakeGoogle) *httpDelivery.Server {
	t.Helper()
	logger := zap.NewNop()
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0},
		Google: config.GoogleConfig{BaseURL: google.server.URL, RequestTimeout: 5},
		Cache:  config.CacheConfig{Backend: "memory"},
		Tile:   config.TileConfig{Size: 256, BrandingMargin: 25, RemoveBranding: true},
	}

	creds := googlemaps.NewCredentials()
	direct := httpcache.NewDirectFetcher(google.server.Client(), creds, logger)
	fetcher := httpcache.NewFetcher(cache.NewMemoryStore(64), direct, 0, logger)
	client := googlemaps.NewGoogleMapsClient(cfg.Google.BaseURL, creds, direct, logger)

	tileUC := usecase.NewTileUseCase(client, fetcher, cfg.Tile, logger)
	geocodingUC := usecase.NewGeocodingUseCase(client, logger)
	routingUC := usecase.NewRoutingUseCase(client, logger)

	registry, err := provider.NewRegistry(creds, tileUC, geocodingUC, routingUC, logger)
	require.NoError(t, err)

	return httpDelivery.NewServer(
		cfg,
		logger,
		handler.NewProviderHandler(registry, logger),
		handler.NewTileHandler(registry, logger),
		handler.NewGeocodingHandler(geocodingUC, routingUC, logger),
		creds.Active,
		nil,
	)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  *struct {
		Total  int    `json:"total"`
		Status string `json:"status"`
	} `json:"meta"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func doRequest(t *testing.T, s *httpDelivery.Server, method, target, body string) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp, env
}

func TestServer_HealthAndProviders(t *testing.T) {
	s := newTestServer(t, newFakeGoogle(t))

	resp, env := doRequest(t, s, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"credentials":false`)

	resp, env = doRequest(t, s, http.MethodGet, "/api/v1/providers", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 4, env.Meta.Total)
	assert.Contains(t, string(env.Data), "GoogleMap Terrain (Business)")

	resp, env = doRequest(t, s, http.MethodGet, "/api/v1/providers/0FD8CA5C-D00A-4140-A706-BE63B012CE7A", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"map_type":"satellite"`)

	resp, env = doRequest(t, s, http.MethodGet, "/api/v1/providers/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
}

func TestServer_Tiles(t *testing.T) {
	google := newFakeGoogle(t)
	s := newTestServer(t, google)

	resp, _ := doRequest(t, s, http.MethodGet, "/api/v1/providers/roadmap/tiles/0/0/0.png", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 256, 256), img.Bounds())

	resp, _ = doRequest(t, s, http.MethodGet, "/api/v1/providers/roadmap/tiles/0/0/0.png", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "HIT", resp.Header.Get("X-Cache"))
	assert.Equal(t, int32(1), atomic.LoadInt32(&google.staticHits))

	resp, _ = doRequest(t, s, http.MethodGet, "/api/v1/providers/roadmap/tiles/0/0/0.png?refresh=true", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))
	assert.Equal(t, int32(2), atomic.LoadInt32(&google.staticHits))

	resp, env := doRequest(t, s, http.MethodGet, "/api/v1/providers/streetview/tiles/0/0/0.png", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "UNKNOWN_MAP_TYPE", env.Error.Code)

	resp, env = doRequest(t, s, http.MethodGet, "/api/v1/providers/hybrid/tiles/1/5/0.png", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_TILE_COORDINATES", env.Error.Code)

	atomic.StoreInt32(&google.staticCode, http.StatusForbidden)
	resp, env = doRequest(t, s, http.MethodGet, "/api/v1/providers/satellite/tiles/2/1/1.png", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "TILE_NOT_AVAILABLE", env.Error.Code)
}

func TestServer_Geocoding(t *testing.T) {
	google := newFakeGoogle(t)
	s := newTestServer(t, google)

	resp, env := doRequest(t, s, http.MethodGet, "/api/v1/geocode?q=Berlin", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "SUCCESS", env.Meta.Status)
	assert.Contains(t, string(env.Data), `"accuracy":1`)

	resp, env = doRequest(t, s, http.MethodGet, "/api/v1/geocode", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_REQUEST", env.Error.Code)

	resp, env = doRequest(t, s, http.MethodGet, "/api/v1/reverse-geocode?lat=52.5163&lon=13.3777", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"house_no":"1"`)
	assert.Contains(t, string(env.Data), `"country_name":"Germany"`)

	resp, _ = doRequest(t, s, http.MethodGet, "/api/v1/reverse-geocode?lat=95&lon=0", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	atomic.StoreInt32(&google.geocodeCode, http.StatusInternalServerError)
	resp, env = doRequest(t, s, http.MethodGet, "/api/v1/geocode?q=Berlin", "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", env.Error.Code)
}

func TestServer_Routing(t *testing.T) {
	s := newTestServer(t, newFakeGoogle(t))

	resp, env := doRequest(t, s, http.MethodPost, "/api/v1/route",
		`{"start":{"lat":38.5,"lon":-120.2},"end":{"lat":43.252,"lon":-126.453}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "SUCCESS", env.Meta.Status)
	assert.Equal(t, 3, env.Meta.Total)
	assert.Contains(t, string(env.Data), `"name":"B1"`)

	resp, env = doRequest(t, s, http.MethodPost, "/api/v1/route",
		`{"start":{"lat":138.5,"lon":-120.2},"end":{"lat":43.252,"lon":-126.453}}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_REQUEST", env.Error.Code)

	resp, env = doRequest(t, s, http.MethodPost, "/api/v1/route/address", `{"start":"Berlin","end":"Potsdam","walking":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, env.Meta.Total)

	resp, _ = doRequest(t, s, http.MethodPost, "/api/v1/route/address", `{"start":"Berlin"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, s, http.MethodPost, "/api/v1/route", `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

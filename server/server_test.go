package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"storefront.GO/config"
)

func testConfig() *config.Config {
	return &config.Config{
		AppName:           "storefront.GO",
		Port:              config.DefaultPort,
		ProductDataURL:    config.DefaultProductDataURL,
		TailwindScriptURL: config.DefaultTailwindScriptURL,
	}
}

// startServer listens first so the config's BaseURL can point at the server itself.
func startServer(t *testing.T, cfg *config.Config, logger *zap.Logger) *httptest.Server {
	t.Helper()
	srv := httptest.NewUnstartedServer(nil)
	cfg.BaseURL = "http://" + srv.Listener.Addr().String() + "/"
	e, err := New(cfg, logger)
	require.NoError(t, err)
	srv.Config.Handler = e
	srv.Start()
	t.Cleanup(srv.Close)
	return srv
}

func TestHealth(t *testing.T) {
	e, err := New(testConfig(), zap.NewNop())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp["status"])
	assert.NotEmpty(t, rec.Header().Get(DurationHeader))
}

func TestSampleFixtureServed(t *testing.T) {
	e, err := New(testConfig(), zap.NewNop())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/sample/data/products.json", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var products []map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "Basic Tee 6-Pack", products[0]["name"])
}

func TestProductPage_EndToEnd(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	cfg := testConfig()
	cfg.TailwindScriptURL = "https://cdn.test/tw.js"
	srv := startServer(t, cfg, zap.New(core))

	resp, err := srv.Client().Get(srv.URL + "/product?color=Gray&size=L")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Basic Tee 6-Pack", strings.TrimSpace(doc.Find("h1").Text()))
	assert.Equal(t, "$192", strings.TrimSpace(doc.Find(`[data-role="price"]`).Text()))
	color, _ := doc.Find(`input[name="color"][checked]`).Attr("value")
	size, _ := doc.Find(`input[name="size"][checked]`).Attr("value")
	assert.Equal(t, "Gray", color)
	assert.Equal(t, "L", size)
	script, _ := doc.Find("head script").Attr("src")
	assert.Equal(t, "https://cdn.test/tw.js", script)

	// One page request and the one fetch it triggered.
	uris := map[string]bool{}
	for _, entry := range logs.FilterMessage("request").All() {
		uris[entry.ContextMap()["uri"].(string)] = true
	}
	assert.True(t, uris["/product?color=Gray&size=L"])
	assert.True(t, uris["/sample/data/products.json"])
}

func TestProductPage_MissingDataShowsNoItem(t *testing.T) {
	cfg := testConfig()
	cfg.ProductDataURL = "sample/data/missing.json"
	srv := startServer(t, cfg, zap.NewNop())

	resp, err := srv.Client().Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no item", string(body))
}

func TestProductPage_SpoofedHostDoesNotRedirectFetch(t *testing.T) {
	var spoofedHits int
	var mu sync.Mutex
	attacker := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		spoofedHits++
		mu.Unlock()
		w.Write([]byte(`[{"name":"Injected","price":"$0"}]`))
	}))
	defer attacker.Close()

	srv := startServer(t, testConfig(), zap.NewNop())

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/product", nil)
	require.NoError(t, err)
	req.Host = strings.TrimPrefix(attacker.URL, "http://")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "Basic Tee 6-Pack")
	assert.NotContains(t, string(body), "Injected")
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, spoofedHits)
}

func TestRecoverMiddleware(t *testing.T) {
	e, err := New(testConfig(), zap.NewNop())
	require.NoError(t, err)
	e.GET("/panic", func(c echo.Context) error { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

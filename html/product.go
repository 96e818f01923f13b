package html

import (
	"bytes"
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront.GO/html/productview"
	productEntity "storefront.GO/model/entity/product"
	productService "storefront.GO/service/product"
)

// SourceFactory picks the product source for one page request.
type SourceFactory func(c echo.Context) productService.Source

// HTTPSourceFactory fetches dataURL over HTTP. A relative dataURL is resolved
// against the configured baseURL, never against the request's Host header.
func HTTPSourceFactory(baseURL, dataURL string, client *http.Client) SourceFactory {
	resolved, err := productService.ResolveURL(baseURL, dataURL)
	return func(_ echo.Context) productService.Source {
		if err != nil {
			return productService.SourceFunc(func(_ context.Context) ([]productEntity.Product, error) {
				return nil, err
			})
		}
		return productService.NewHTTPSource(resolved, client)
	}
}

// RegisterProductHTMLRoutes registers the product detail page on / and /product.
// The page answers 200 in every terminal state; a failed fetch renders the
// empty placeholder, not an error page.
func RegisterProductHTMLRoutes(e *echo.Echo, sources SourceFactory, tailwindScriptURL string, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	handler := func(c echo.Context) error {
		ctx := c.Request().Context()
		view := productview.New(sources(c),
			productview.WithLogger(logger),
			productview.WithTailwindScript(tailwindScriptURL),
		)
		view.Mount(ctx)
		select {
		case <-view.Done():
		case <-ctx.Done():
		}

		if color := c.QueryParam("color"); color != "" && !view.SelectColor(color) {
			logger.Debug("ignoring unknown color", zap.String("color", color))
		}
		if size := c.QueryParam("size"); size != "" && !view.SelectSize(size) {
			logger.Debug("ignoring unavailable size", zap.String("size", size))
		}

		tmpl, ok := c.Echo().Renderer.(*Template)
		if !ok {
			logger.Error("product page renderer is not configured")
			return c.String(http.StatusInternalServerError, "Error rendering product")
		}
		var buf bytes.Buffer
		if err := view.Render(&buf, tmpl); err != nil {
			logger.Error("render product page", zap.Error(err))
			return c.String(http.StatusInternalServerError, "Error rendering product")
		}
		return c.HTMLBlob(http.StatusOK, buf.Bytes())
	}
	e.GET("/", handler)
	e.GET("/product", handler)
}

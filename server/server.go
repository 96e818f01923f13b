// Package server assembles the echo instance that serves the storefront.
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"storefront.GO/config"
	"storefront.GO/html"
	"storefront.GO/sample"
)

const DurationHeader = "X-Request-Duration-ms"

// New builds the HTTP server. The product page fetches its data from this
// same server under /sample (reached through cfg.BaseURL) unless
// PRODUCT_DATA_URL points elsewhere.
func New(cfg *config.Config, logger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Debug

	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(requestDuration(logger))

	t, err := html.NewTemplate()
	if err != nil {
		return nil, err
	}
	e.Renderer = t
	for _, tmpl := range t.Templates.Templates() {
		logger.Debug("loaded template", zap.String("name", tmpl.Name()))
	}

	e.StaticFS("/sample", sample.FS)
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	sources := html.HTTPSourceFactory(cfg.BaseURL, cfg.ProductDataURL, &http.Client{})
	html.RegisterProductHTMLRoutes(e, sources, cfg.TailwindScriptURL, logger)
	return e, nil
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				logger.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}

// requestDuration stamps the handler time on the response before it is written.
func requestDuration(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			c.Response().Before(func() {
				c.Response().Header().Set(DurationHeader, strconv.FormatInt(time.Since(start).Milliseconds(), 10))
			})
			err := next(c)
			logger.Debug("request duration", zap.String("path", c.Path()), zap.Duration("took", time.Since(start)))
			return err
		}
	}
}

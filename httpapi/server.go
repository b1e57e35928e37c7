package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/veznalabs/glot"
)

// Server serves the JSON API the translation UI consumes.
type Server struct {
	orch   *glot.Orchestrator
	cfg    Config
	logger zerolog.Logger
}

// NewServer creates a Server around an orchestrator.
func NewServer(orch *glot.Orchestrator, cfg Config, logger zerolog.Logger) *Server {
	return &Server{
		orch:   orch,
		cfg:    cfg,
		logger: logger,
	}
}

// Start runs the HTTP server until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if s == nil || s.orch == nil {
		return fmt.Errorf("server is not initialized")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				s.logger.Error().
					Err(v.Error).
					Str("method", v.Method).
					Str("uri", v.URI).
					Int("status", v.Status).
					Dur("latency", v.Latency).
					Str("request_id", v.RequestID).
					Msg("http request failed")
				return nil
			}

			s.logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("http request")
			return nil
		},
	}))

	s.registerRoutes(e)

	httpServer := &http.Server{
		Addr:         s.cfg.Listen,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
			s.logger.Error().Err(shutdownErr).Msg("server shutdown failed")
		}
	}()

	s.logger.Info().Str("addr", s.cfg.Listen).Msg("glot api server started")

	if err := e.StartServer(httpServer); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("start server: %w", err)
	}
	s.logger.Info().Msg("glot api server stopped")
	return nil
}

func (s *Server) registerRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/version", s.handleVersion)
	api.GET("/languages", s.handleLanguages)
	api.GET("/locale/:code", s.handleLocale)
	api.POST("/translate", s.handleTranslate)
}

type languageItem struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type languagesResponse struct {
	Languages     []languageItem `json:"languages"`
	DefaultSource string         `json:"default_source"`
	DefaultTarget string         `json:"default_target"`
	MaxChars      int            `json:"max_chars"`
}

type localeResponse struct {
	Code   string `json:"code"`
	Locale string `json:"locale"`
}

type translateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	Text           string `json:"text"`
	DetectedSource string `json:"detected_source"`
}

func (s *Server) handleVersion(c echo.Context) error {
	return success(c, map[string]string{
		"name":    glot.Name,
		"version": glot.FullVersion(),
	})
}

// handleLanguages returns the registry in definition order plus the UI defaults.
func (s *Server) handleLanguages(c echo.Context) error {
	langs := glot.Languages()
	items := make([]languageItem, len(langs))
	for i, l := range langs {
		items[i] = languageItem{Name: l.Name, Code: l.Code}
	}

	return success(c, languagesResponse{
		Languages:     items,
		DefaultSource: s.cfg.DefaultSource,
		DefaultTarget: s.cfg.DefaultTarget,
		MaxChars:      s.cfg.MaxChars,
	})
}

// handleLocale maps an ISO code to its text-to-speech locale.
func (s *Server) handleLocale(c echo.Context) error {
	code := c.Param("code")
	return success(c, localeResponse{
		Code:   code,
		Locale: glot.LocaleFor(code),
	})
}

// handleTranslate runs one translation. Failures surface as jsend "fail"
// responses carrying the fixed user message and the fallback detected source,
// so the UI can keep its language selection coherent.
func (s *Server) handleTranslate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if req.Source == "" {
		req.Source = s.cfg.DefaultSource
	}
	if req.Target == "" {
		req.Target = s.cfg.DefaultTarget
	}

	if utf8.RuneCountInString(req.Text) > s.cfg.MaxChars {
		return fail(c, http.StatusBadRequest,
			fmt.Sprintf("Text exceeds the %d character limit.", s.cfg.MaxChars), nil)
	}

	res, err := s.orch.Translate(c.Request().Context(), req.Text, req.Source, req.Target)
	if err != nil {
		status := http.StatusBadGateway
		var unavailable *glot.UnavailableError
		if errors.As(err, &unavailable) {
			status = http.StatusServiceUnavailable
		}
		return fail(c, status, glot.UserMessage(err), map[string]string{
			"detected_source": res.DetectedSource,
		})
	}

	return success(c, translateResponse{
		Text:           res.Text,
		DetectedSource: res.DetectedSource,
	})
}

package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/blackwell-systems/textsentiment/internal/output"
)

type submitRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// POST /api/entries
func (s *Server) handleSubmit(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, `expected JSON {"text": "..."}`)
	}

	res, err := s.analyzer.Submit(c.Request().Context(), req.Text)
	if err != nil {
		return fmt.Errorf("submit failed: %w", err)
	}
	if res == nil {
		return c.NoContent(http.StatusNoContent)
	}

	s.logger.Debug("entry submitted", zap.Float64("sentiment_score", res.SentimentScore))
	return c.JSON(http.StatusCreated, res)
}

// GET /api/entries
func (s *Server) handleEntries(c echo.Context) error {
	entries, err := s.analyzer.Entries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"entries": entries})
}

// GET /api/scores
func (s *Server) handleScores(c echo.Context) error {
	scores, err := s.analyzer.Series(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"scores": scores})
}

// GET /api/about
func (s *Server) handleAbout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"about": output.AboutText})
}

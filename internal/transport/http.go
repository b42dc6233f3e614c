// Package transport implements the bit-exact on-wire JSON shape and error
// codes for the core endpoint, plus the ambient /cgol/stats monitoring
// route. This package is the TransportShim described in the specification
// and is treated as an external interface by the rest of the module.
package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cgol/internal/handler"
	"cgol/internal/monitor"
)

// gameRequest is the request body for POST /cgol/game.
type gameRequest struct {
	Word interface{} `json:"word"`
}

// gameResponse is the response body for POST /cgol/game. Field names and
// enum spellings are part of the wire contract.
type gameResponse struct {
	NumGenerations int    `json:"num_generations"`
	Score          int    `json:"score"`
	StopReason     string `json:"stop_reason"`
}

// Server wires the gin router to a Handler and an optional Monitor.
type Server struct {
	handler *handler.Handler
	mon     *monitor.Monitor
	engine  *gin.Engine
}

// NewServer builds a gin engine with the core /cgol/game route and the
// /cgol/stats monitoring route registered.
func NewServer(h *handler.Handler, mon *monitor.Monitor) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{handler: h, mon: mon, engine: router}

	group := router.Group("/cgol")
	{
		group.POST("/game", s.handleGame)
		group.GET("/stats", s.handleStats)
	}

	return s
}

// Handler returns the underlying http.Handler for use with an http.Server
// or httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleGame(c *gin.Context) {
	var req gameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "request body must be a JSON object with a \"word\" field"})
		return
	}

	word, isString := req.Word.(string)
	if !isString {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "provided word must be a string"})
		return
	}

	result, err := s.handler.HandleWord(word)
	if err != nil {
		writeHandlerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gameResponse{
		NumGenerations: result.NumGenerations,
		Score:          result.Score,
		StopReason:     string(result.StopReason),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	if s.mon == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "monitor not configured"})
		return
	}
	c.JSON(http.StatusOK, s.mon.Sample())
}

func writeHandlerError(c *gin.Context, err error) {
	herr, ok := err.(*handler.Error)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	if herr.IsClientError() {
		c.JSON(http.StatusBadRequest, gin.H{"detail": herr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": herr.Message})
}

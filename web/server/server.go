package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-tracer/pkg/loaders"
	"github.com/df07/go-tracer/pkg/renderer"
)

// maxSceneBytes bounds the size of a posted scene document
const maxSceneBytes = 1 << 20

// Server renders posted scene documents to PNG
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents the query parameters of a render request
type RenderRequest struct {
	Width   int // Image width
	Height  int // Image height
	Workers int // Goroutines rendering rows
}

// errorResponse is the JSON body returned for failed requests
type errorResponse struct {
	Error string `json:"error"`
	Line  int    `json:"line,omitempty"` // Scene line for parse errors
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/render", s.handleRender)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	return mux
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender parses the scene in the request body and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		sendError(w, http.StatusBadRequest, err)
		return
	}

	sceneObj, err := loaders.ParseScene(http.MaxBytesReader(w, r.Body, maxSceneBytes))
	if err != nil {
		sendError(w, http.StatusBadRequest, err)
		return
	}

	raytracer := renderer.NewRaytracer(sceneObj, req.Width, req.Height)
	raytracer.SetConfig(renderer.Config{Workers: req.Workers})

	startTime := time.Now()
	buffer, stats, err := raytracer.Render(r.Context())
	if err != nil {
		var configErr *renderer.ConfigurationError
		if errors.As(err, &configErr) {
			sendError(w, http.StatusUnprocessableEntity, err)
			return
		}
		sendError(w, http.StatusInternalServerError, err)
		return
	}

	var body bytes.Buffer
	if err := png.Encode(&body, buffer); err != nil {
		log.Printf("Error encoding render: %v", err)
		sendError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Render-Coverage", strconv.FormatFloat(stats.Coverage(), 'f', 4, 64))
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(time.Since(startTime).Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(body.Bytes())
}

// parseRenderRequest parses request parameters
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{}

	var err error
	if req.Width, err = parseIntParam(values, "width", 400, 1, 4000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 400, 1, 4000); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(values, "workers", 0, -1, 256); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// sendError writes a JSON error body, including the line for parse errors
func sendError(w http.ResponseWriter, status int, err error) {
	response := errorResponse{Error: err.Error()}
	var parseErr *loaders.ParseError
	if errors.As(err, &parseErr) {
		response.Line = parseErr.Line
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/imageio"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port     int
	renderID atomic.Int64
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene           string          `json:"scene"`   // Built-in scene name
	Width           int             `json:"width"`   // Image width
	Height          int             `json:"height"`  // Image height
	SamplesPerPixel int             `json:"samples"` // Jittered rays per pixel
	MaxDepth        int             `json:"depth"`   // Recursion limit
	Mode            integrator.Mode `json:"mode"`    // Shading mode
	Seed            int64           `json:"seed"`    // Jitter seed
	Format          imageio.Format  `json:"format"`  // Response encoding
	White           float64         `json:"white"`   // Channel value quantized to 255
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int64   `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	Workers        int     `json:"workers"`
	ElapsedMs      int64   `json:"elapsedMs"`
}

// ErrorResponse is the JSON body of a failed request
type ErrorResponse struct {
	Error   string           `json:"error"`
	Console []ConsoleMessage `json:"console,omitempty"`
}

var contentTypes = map[imageio.Format]string{
	imageio.FormatPNG:  "image/png",
	imageio.FormatPPM:  "image/x-portable-pixmap",
	imageio.FormatBMP:  "image/bmp",
	imageio.FormatTIFF: "image/tiff",
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(scene.List())
}

// handleRender renders a built-in scene and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "whitted" // Default scene
	}
	sceneObj, err := scene.Lookup(sceneName)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error(), nil)
		return
	}

	req, err := s.parseRenderRequest(r.URL.Query(), sceneName, sceneObj.Defaults)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err), nil)
		return
	}

	renderID := fmt.Sprintf("render-%d", s.renderID.Add(1))
	consoleChan := make(chan ConsoleMessage, 16)
	logger := NewWebLogger(renderID, consoleChan)

	config := renderer.DefaultRenderConfig()
	config.Width = req.Width
	config.Height = req.Height
	config.SamplesPerPixel = req.SamplesPerPixel
	config.MaxDepth = req.MaxDepth
	config.Mode = req.Mode
	config.Seed = req.Seed
	config.NumWorkers = 0 // Auto-detect

	raytracer, err := renderer.NewRaytracer(sceneObj, config, logger)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error(), drainConsole(consoleChan))
		return
	}

	// Use request context to detect client disconnection
	startTime := time.Now()
	frame, renderStats, err := raytracer.Render(r.Context())
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, fmt.Sprintf("Render error: %v", err), drainConsole(consoleChan))
		return
	}

	var buf bytes.Buffer
	pixels := imageio.Quantize(frame.Pixels, 0, req.White)
	if err := imageio.Encode(&buf, req.Format, frame.Width, frame.Height, pixels); err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err), drainConsole(consoleChan))
		return
	}

	stats := Stats{
		TotalPixels:    renderStats.TotalPixels,
		TotalSamples:   int64(renderStats.TotalSamples),
		AverageSamples: renderStats.AverageSamples,
		Workers:        renderStats.Workers,
		ElapsedMs:      time.Since(startTime).Milliseconds(),
	}
	statsJSON, err := json.Marshal(stats)
	if err == nil {
		w.Header().Set("X-Render-Stats", string(statsJSON))
	}
	w.Header().Set("X-Render-Id", renderID)
	for _, msg := range drainConsole(consoleChan) {
		w.Header().Add("X-Render-Log", strings.TrimSpace(msg.Message))
	}

	w.Header().Set("Content-Type", contentTypes[req.Format])
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters, defaulting to the scene's recommended settings
func (s *Server) parseRenderRequest(values url.Values, sceneName string, defaults scene.RenderDefaults) (*RenderRequest, error) {
	fallback := renderer.DefaultRenderConfig()
	if defaults.Width == 0 || defaults.Height == 0 {
		defaults.Width, defaults.Height = fallback.Width, fallback.Height
	}
	if defaults.SamplesPerPixel == 0 {
		defaults.SamplesPerPixel = fallback.SamplesPerPixel
	}
	depth := fallback.MaxDepth
	if defaults.MaxDepth != nil {
		depth = *defaults.MaxDepth
	}
	if defaults.Mode == "" {
		defaults.Mode = string(fallback.Mode)
	}

	req := &RenderRequest{Scene: sceneName}

	// Parse and validate all parameters using helper functions
	var err error
	if req.Width, err = parseIntParam(values, "width", defaults.Width, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", defaults.Height, 1, 2000); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(values, "samples", defaults.SamplesPerPixel, 1, 1024); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "depth", depth, 0, 50); err != nil {
		return nil, err
	}
	if req.White, err = parseFloatParam(values, "white", 1.0, 0.01, 100); err != nil {
		return nil, err
	}
	if req.Seed, err = parseInt64Param(values, "seed", fallback.Seed); err != nil {
		return nil, err
	}

	mode := values.Get("mode")
	if mode == "" {
		mode = defaults.Mode
	}
	if req.Mode, err = integrator.ParseMode(mode); err != nil {
		return nil, err
	}

	format := values.Get("format")
	if format == "" {
		format = string(imageio.FormatPNG)
	}
	if req.Format, err = imageio.ParseFormat(format); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.SamplesPerPixel > 64 {
		log.Printf("Render warning: Large image with high samples may render slowly")
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

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if !(parsed >= min && parsed <= max) {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseInt64Param parses an unbounded 64-bit integer parameter from URL query
func parseInt64Param(values url.Values, key string, defaultValue int64) (int64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// writeError sends a JSON error body
func (s *Server) writeError(w http.ResponseWriter, status int, message string, console []ConsoleMessage) {
	if status >= http.StatusInternalServerError {
		log.Printf("Render request failed: %s", message)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Console: console})
}

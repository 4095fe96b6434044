package web

import (
	"encoding/json"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/LennyDevX/nuvo-f-sub002/internal/analyzer"
	"github.com/LennyDevX/nuvo-f-sub002/internal/logger"
	"github.com/LennyDevX/nuvo-f-sub002/internal/portfolio"
	"github.com/LennyDevX/nuvo-f-sub002/internal/state"
	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

var webLogger = logger.GetForComponent("web_server")

// WebServer exposes the analytics engine over HTTP.
type WebServer struct {
	router   *mux.Router
	port     string
	analyzer *portfolio.Analyzer
}

// NewWebServer creates a new web server instance around an analyzer.
func NewWebServer(port string, analyzer *portfolio.Analyzer) *WebServer {
	if port == "" {
		port = "8080"
	}

	server := &WebServer{
		router:   mux.NewRouter(),
		port:     port,
		analyzer: analyzer,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP routes
func (ws *WebServer) setupRoutes() {
	// Health endpoint (direct route)
	ws.router.HandleFunc("/health", ws.handleHealth).Methods("GET")

	// API endpoints
	api := ws.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", ws.handleHealth).Methods("GET")
	api.HandleFunc("/analyze", ws.handleAnalyze).Methods("POST")
	api.HandleFunc("/constants", ws.handleGetConstants).Methods("GET")
	api.HandleFunc("/users/{address}/analysis", ws.handleGetUserAnalysis).Methods("GET")
	api.HandleFunc("/users/{address}/analyses", ws.handleGetUserAnalyses).Methods("GET")

	// Add CORS middleware
	ws.router.Use(ws.corsMiddleware)
	ws.router.Use(ws.loggingMiddleware)
}

// Start starts the web server
func (ws *WebServer) Start() error {
	webLogger.Info().Str("port", ws.port).Msg("Starting web server")

	server := &http.Server{
		Addr:         ":" + ws.port,
		Handler:      ws.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

// handleHealth returns server health status including database connectivity.
func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	dbHealthy := true
	if err := state.TestDBConnection(); err != nil {
		dbHealthy = false
	}

	overallStatus := "OK"
	statusCode := http.StatusOK
	if !dbHealthy {
		overallStatus = "DEGRADED"
		statusCode = http.StatusServiceUnavailable
	}

	response := map[string]interface{}{
		"status":    overallStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"system": map[string]interface{}{
			"version":          runtime.Version(),
			"goroutines_count": runtime.NumGoroutine(),
			"alloc_bytes":      memStats.Alloc,
			"gc_cycles":        memStats.NumGC,
		},
		"component": map[string]interface{}{
			"name":    "staking-portfolio-analytics",
			"version": "1.0.0",
		},
		"database_healthy": dbHealthy,
	}

	ws.writeJSONResponse(w, statusCode, response)
}

// analyzeRequest is the POST /api/analyze payload: a full profile supplied
// inline, analyzed without touching the event ledger.
type analyzeRequest struct {
	Profile types.UserStakingProfile `json:"profile"`
	Persist bool                     `json:"persist"`
}

// handleAnalyze analyzes a profile supplied in the request body.
func (ws *WebServer) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ws.writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Profile.NowTimestamp == 0 {
		req.Profile.NowTimestamp = time.Now().Unix()
	}

	result, err := ws.analyzer.Analyze(req.Profile)
	if err != nil {
		webLogger.Error().Err(err).Str("address", req.Profile.Address).Msg("Analysis failed")
		ws.writeErrorResponse(w, http.StatusUnprocessableEntity, "Analysis failed: "+err.Error())
		return
	}

	if req.Persist && req.Profile.Address != "" {
		if _, err := state.SaveAnalysisSnapshot(req.Profile.Address, result); err != nil {
			webLogger.Error().Err(err).Str("address", req.Profile.Address).Msg("Failed to persist analysis snapshot")
		}
	}

	ws.writeJSONResponse(w, http.StatusOK, result)
}

// handleGetUserAnalysis rebuilds the user's profile from the event ledger,
// runs a fresh analysis, and persists the snapshot.
func (ws *WebServer) handleGetUserAnalysis(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]

	profile, err := state.LoadUserProfile(address, time.Now().Unix())
	if err != nil {
		webLogger.Error().Err(err).Str("address", address).Msg("Failed to load user profile")
		ws.writeErrorResponse(w, http.StatusInternalServerError, "Failed to load user profile")
		return
	}

	profile.PendingRewards = analyzer.EstimatePendingRewards(profile, ws.analyzer.Constants())

	result, err := ws.analyzer.Analyze(profile)
	if err != nil {
		webLogger.Error().Err(err).Str("address", address).Msg("Analysis failed")
		ws.writeErrorResponse(w, http.StatusUnprocessableEntity, "Analysis failed: "+err.Error())
		return
	}

	if _, err := state.SaveAnalysisSnapshot(address, result); err != nil {
		webLogger.Error().Err(err).Str("address", address).Msg("Failed to persist analysis snapshot")
	}

	ws.writeJSONResponse(w, http.StatusOK, result)
}

// handleGetUserAnalyses returns the persisted analysis history for a user.
func (ws *WebServer) handleGetUserAnalyses(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 && parsedLimit <= 100 {
			limit = parsedLimit
		}
	}

	snapshots, err := state.ListAnalyses(address, limit)
	if err != nil {
		webLogger.Error().Err(err).Str("address", address).Msg("Failed to list analyses")
		ws.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve analyses")
		return
	}

	response := map[string]interface{}{
		"address":  address,
		"analyses": snapshots,
		"count":    len(snapshots),
		"limit":    limit,
	}

	ws.writeJSONResponse(w, http.StatusOK, response)
}

// handleGetConstants returns the protocol constants the analyzer runs with.
func (ws *WebServer) handleGetConstants(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"constants": ws.analyzer.Constants(),
		"timestamp": time.Now().UTC(),
	}

	ws.writeJSONResponse(w, http.StatusOK, response)
}

// writeJSONResponse writes a JSON response
func (ws *WebServer) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		webLogger.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeErrorResponse writes an error response
func (ws *WebServer) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	response := map[string]interface{}{
		"error":     true,
		"message":   message,
		"timestamp": time.Now().UTC(),
	}

	ws.writeJSONResponse(w, statusCode, response)
}

// corsMiddleware adds CORS headers
func (ws *WebServer) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests
func (ws *WebServer) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create a response writer wrapper to capture status code
		wrapper := &responseWriterWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		duration := time.Since(start)

		webLogger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Int("status", wrapper.statusCode).
			Dur("duration", duration).
			Msg("HTTP request")
	})
}

// responseWriterWrapper wraps http.ResponseWriter to capture status code
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

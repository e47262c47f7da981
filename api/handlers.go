/*
handlers.go - HTTP API handlers for the payroll and playlist apps

PURPOSE:
  Exposes the employee registry and the playlist manager via REST. Handles
  HTTP request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Employees:
    GET    /api/employees               List all records (field sets)
    POST   /api/employees               Create record (role-dispatched)
    GET    /api/employees/{id}          Get one record
    DELETE /api/employees/{id}          Remove (idempotent)
    POST   /api/employees/{id}/salary   Run the variant's salary rule

  Registry persistence:
    POST   /api/registry/save           Persist to the CSV file
    POST   /api/registry/reload         Reload from the CSV file

  Playlists:
    GET    /api/playlists               List playlists
    POST   /api/playlists               Create playlist
    GET    /api/playlists/{name}        Get playlist with songs
    POST   /api/playlists/{name}/songs  Add a song
    POST   /api/playlists/{name}/play   Play a song by index
    POST   /api/playlists/{name}/shuffle
    GET    /api/playlists/{name}/recent Recently played, newest first

  Scenarios:
    GET    /api/scenarios               List demo scenarios
    POST   /api/scenarios/load          Seed demo data

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Record or playlist not found
  - 422: Salary calculation on a variant without a rule
  - 500: Persistence failures on save

CONCURRENCY:
  The domain core is single-threaded; the handler serializes all access
  behind one RWMutex, which is the external locking the core requires when
  exposed as a service.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo data seeding
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/internal/logger"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/playlist"
	"github.com/warp/payroll-engine/store/csvfile"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	mu sync.RWMutex

	registry *payroll.Registry
	store    *csvfile.Store

	playlists     map[string]*playlist.Playlist
	playlistOrder []string
	recentLimit   int
}

// NewHandler wraps a registry and its backing store. recentLimit bounds
// each playlist's history; non-positive uses the package default.
func NewHandler(registry *payroll.Registry, store *csvfile.Store, recentLimit int) *Handler {
	if registry == nil {
		registry = payroll.NewRegistry()
	}
	return &Handler{
		registry:    registry,
		store:       store,
		playlists:   make(map[string]*playlist.Playlist),
		recentLimit: recentLimit,
	}
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns all records in insertion order.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	employees := h.registry.Employees()
	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateEmployee creates a record, dispatching the variant on role.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "id is required", nil)
		return
	}

	var joinDate payroll.Date
	if req.JoinDate != "" {
		d, err := payroll.ParseDate(req.JoinDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "join_date must be YYYY-MM-DD", err)
			return
		}
		joinDate = d
	}

	var emp payroll.Employee
	switch payroll.Role(req.Role) {
	case payroll.RoleFullTime:
		emp = payroll.NewFullTime(req.ID, req.Name, joinDate, decimal.NewFromFloat(req.MonthlySalary))
	case payroll.RolePartTime:
		emp = payroll.NewPartTime(req.ID, req.Name, joinDate, decimal.NewFromFloat(req.HourlyRate))
	case payroll.RoleIntern:
		in := payroll.NewIntern(req.ID, req.Name, joinDate, decimal.NewFromFloat(req.Stipend))
		in.Completed = req.Completed
		emp = in
	default:
		emp = payroll.NewGeneric(req.ID, req.Name, joinDate, payroll.Role(req.Role))
	}

	h.mu.Lock()
	h.registry.Add(emp)
	h.mu.Unlock()

	writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

// GetEmployee returns a single record.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.mu.RLock()
	emp, ok := h.registry.Get(id)
	h.mu.RUnlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(emp))
}

// DeleteEmployee removes a record. Removing an absent ID succeeds.
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.mu.Lock()
	h.registry.Remove(id)
	h.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// CalculateSalary runs the record's variant-specific salary rule.
func (h *Handler) CalculateSalary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req SalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock() // part-time calculation mutates the record

	emp, ok := h.registry.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}

	amount, err := emp.CalculateSalary(payroll.PayInput{
		Months:                   req.Months,
		HoursWorked:              decimal.NewFromFloat(req.HoursWorked),
		ApplyBonus:               req.ApplyBonus,
		ApplyCompletionAllowance: req.ApplyCompletionAllowance,
	})
	if err != nil {
		if payroll.IsUnsupported(err) {
			writeError(w, http.StatusUnprocessableEntity, "Salary calculation not supported for this role", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Salary calculation failed", err)
		return
	}

	writeJSON(w, http.StatusOK, SalaryDTO{
		ID:     emp.ID(),
		Role:   string(emp.Role()),
		Amount: amount.StringFixed(2),
	})
}

// =============================================================================
// PERSISTENCE HANDLERS
// =============================================================================

// SaveRegistry writes the registry to the CSV file. An empty registry
// leaves the file untouched.
func (h *Handler) SaveRegistry(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	employees := h.registry.Employees()
	h.mu.RUnlock()

	if err := h.store.Save(employees); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save registry", err)
		return
	}
	writeJSON(w, http.StatusOK, SaveResponse{Saved: len(employees), Path: h.store.Path()})
}

// ReloadRegistry replaces the in-memory registry from the CSV file. A load
// failure resets to empty per the fail-safe-empty policy and is reported
// in the response, not as an HTTP error.
func (h *Handler) ReloadRegistry(w http.ResponseWriter, r *http.Request) {
	reg, err := h.store.LoadRegistry()
	reset := false
	if err != nil {
		logger.WarnLog(r.Context(), "registry reload failed, starting empty: %v", err)
		reg = payroll.NewRegistry()
		reset = true
	}

	h.mu.Lock()
	h.registry = reg
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, ReloadResponse{Loaded: reg.Len(), Reset: reset})
}

// =============================================================================
// PLAYLIST HANDLERS
// =============================================================================

func (h *Handler) ListPlaylists(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	dtos := make([]PlaylistDTO, 0, len(h.playlistOrder))
	for _, name := range h.playlistOrder {
		p := h.playlists[name]
		dtos = append(dtos, PlaylistDTO{Name: p.Name, SongCount: p.Len()})
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req CreatePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", nil)
		return
	}

	limit := req.RecentLimit
	if limit <= 0 {
		limit = h.recentLimit
	}

	h.mu.Lock()
	if _, exists := h.playlists[req.Name]; !exists {
		h.playlists[req.Name] = playlist.New(req.Name, limit)
		h.playlistOrder = append(h.playlistOrder, req.Name)
	}
	p := h.playlists[req.Name]
	h.mu.Unlock()

	writeJSON(w, http.StatusCreated, PlaylistDTO{Name: p.Name, SongCount: p.Len()})
}

func (h *Handler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	h.mu.RLock()
	p, ok := h.playlists[name]
	var dto PlaylistDTO
	if ok {
		dto = toPlaylistDTO(p)
	}
	h.mu.RUnlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Playlist not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) AddSong(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req AddSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var song playlist.Song
	switch req.Kind {
	case "local":
		song = playlist.NewLocalSong(req.Name, req.Artist, req.LengthSeconds, req.Source)
	case "online", "":
		song = playlist.NewOnlineSong(req.Name, req.Artist, req.LengthSeconds, req.Source)
	default:
		writeError(w, http.StatusBadRequest, "kind must be local or online", nil)
		return
	}

	h.mu.Lock()
	p, ok := h.playlists[name]
	if ok {
		p.Add(song)
	}
	h.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Playlist not found", nil)
		return
	}
	writeJSON(w, http.StatusCreated, toSongDTO(song))
}

func (h *Handler) PlaySong(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	p, ok := h.playlists[name]
	if !ok {
		writeError(w, http.StatusNotFound, "Playlist not found", nil)
		return
	}
	if err := p.Play(r.Context(), req.Index); err != nil {
		writeError(w, http.StatusBadRequest, "Cannot play song", err)
		return
	}

	song := p.Songs()[req.Index]
	writeJSON(w, http.StatusOK, toSongDTO(song))
}

func (h *Handler) ShufflePlaylist(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	h.mu.Lock()
	p, ok := h.playlists[name]
	var dto PlaylistDTO
	if ok {
		p.Shuffle()
		dto = toPlaylistDTO(p)
	}
	h.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Playlist not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) RecentlyPlayed(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	h.mu.RLock()
	p, ok := h.playlists[name]
	var dtos []SongDTO
	if ok {
		recent := p.RecentlyPlayed()
		dtos = make([]SongDTO, len(recent))
		for i, s := range recent {
			dtos[i] = toSongDTO(s)
		}
	}
	h.mu.RUnlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Playlist not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// DTO CONVERSION
// =============================================================================

func toEmployeeDTO(e payroll.Employee) EmployeeDTO {
	joinDate := ""
	if !e.JoinDate().IsZero() {
		joinDate = e.JoinDate().String()
	}
	return EmployeeDTO{
		ID:       e.ID(),
		Name:     e.Name(),
		Role:     string(e.Role()),
		JoinDate: joinDate,
		Fields:   e.Fields(),
	}
}

func toSongDTO(s playlist.Song) SongDTO {
	kind := "online"
	if _, ok := s.(*playlist.LocalSong); ok {
		kind = "local"
	}
	return SongDTO{
		ID:     s.ID(),
		Name:   s.Name(),
		Artist: s.Artist(),
		Length: playlist.FormatLength(s.LengthSeconds()),
		Kind:   kind,
		Source: s.Source(),
	}
}

func toPlaylistDTO(p *playlist.Playlist) PlaylistDTO {
	songs := p.Songs()
	dtos := make([]SongDTO, len(songs))
	for i, s := range songs {
		dtos[i] = toSongDTO(s)
	}
	return PlaylistDTO{Name: p.Name, SongCount: len(songs), Songs: dtos}
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

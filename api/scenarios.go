/*
scenarios.go - Demo data seeding

PURPOSE:
  Loads named demo datasets so the API is explorable without hand-crafting
  records. Each scenario replaces the current in-memory state; nothing is
  persisted until an explicit save.

SCENARIOS:
  payroll-demo:  Three employees, one per salaried variant
  roadtrip-mix:  A playlist with local and online songs
  full-demo:     Both of the above
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/playlist"
)

var scenarioList = []ScenarioDTO{
	{Name: "payroll-demo", Description: "Three employees: full-time, part-time, and a completed intern"},
	{Name: "roadtrip-mix", Description: "A five-song playlist mixing local files and streams"},
	{Name: "full-demo", Description: "Payroll demo staff plus the roadtrip playlist"},
}

// ListScenarios returns the available demo scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarioList)
}

// LoadScenario seeds the named scenario, replacing current in-memory state.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	switch req.Name {
	case "payroll-demo":
		h.registry = demoRegistry()
	case "roadtrip-mix":
		h.seedRoadtripLocked()
	case "full-demo":
		h.registry = demoRegistry()
		h.seedRoadtripLocked()
	default:
		writeError(w, http.StatusNotFound, "Unknown scenario", nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"loaded": req.Name})
}

func demoRegistry() *payroll.Registry {
	reg := payroll.NewRegistry()
	reg.Add(payroll.NewFullTime("FT001", "Alice Kumar",
		payroll.NewDate(2018, 6, 15), decimal.NewFromInt(80000)))
	reg.Add(payroll.NewPartTime("PT101", "Bikash Singh",
		payroll.NewDate(2022, 1, 10), decimal.NewFromInt(500)))

	intern := payroll.NewIntern("IN900", "Charu Rai",
		payroll.NewDate(2024, 7, 1), decimal.NewFromInt(15000))
	intern.Completed = true
	reg.Add(intern)
	return reg
}

func (h *Handler) seedRoadtripLocked() {
	const name = "Roadtrip Mix"
	p := playlist.New(name, 5)
	p.Add(playlist.NewLocalSong("Drive", "The Cars", 185, "/music/TheCars/Drive.mp3"))
	p.Add(playlist.NewOnlineSong("Adventure", "Nomad Band", 210, "https://music.example/nomad/adventure"))
	p.Add(playlist.NewLocalSong("Sunset", "DJ Calm", 240, ""))
	p.Add(playlist.NewOnlineSong("City Lights", "Synth Pop", 198, ""))
	p.Add(playlist.NewLocalSong("Homecoming", "Acoustic Duo", 160, ""))

	if _, exists := h.playlists[name]; !exists {
		h.playlistOrder = append(h.playlistOrder, name)
	}
	h.playlists[name] = p
}

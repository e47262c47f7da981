/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for API communication, decoupling the domain model from
  the wire contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Done in handlers; DTOs are pure data carriers.
*/
package api

// EmployeeDTO represents one record in API responses. Fields carries the
// full serializable field set (common + variant + extras), the same cells
// a save would write.
type EmployeeDTO struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Role     string            `json:"role"`
	JoinDate string            `json:"join_date"`
	Fields   map[string]string `json:"fields"`
}

// CreateEmployeeRequest creates a record. Role selects the variant; the
// variant-specific amount fields are read accordingly and the rest ignored.
type CreateEmployeeRequest struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	JoinDate      string  `json:"join_date"`
	Role          string  `json:"role"`
	MonthlySalary float64 `json:"monthly_salary,omitempty"`
	HourlyRate    float64 `json:"hourly_rate,omitempty"`
	Stipend       float64 `json:"stipend,omitempty"`
	Completed     bool    `json:"completed,omitempty"`
}

// SalaryRequest runs a variant's salary calculation. Unused fields are
// ignored by the variant's rule.
type SalaryRequest struct {
	Months                   int     `json:"months,omitempty"`
	HoursWorked              float64 `json:"hours_worked,omitempty"`
	ApplyBonus               bool    `json:"apply_bonus,omitempty"`
	ApplyCompletionAllowance bool    `json:"apply_completion_allowance,omitempty"`
}

// SalaryDTO is the result of a salary calculation.
type SalaryDTO struct {
	ID     string `json:"id"`
	Role   string `json:"role"`
	Amount string `json:"amount"`
}

// SaveResponse reports a persistence operation.
type SaveResponse struct {
	Saved int    `json:"saved"`
	Path  string `json:"path"`
}

// ReloadResponse reports a reload. Reset is true when the load failed and
// the registry was reset to empty (fail-safe-empty policy).
type ReloadResponse struct {
	Loaded int  `json:"loaded"`
	Reset  bool `json:"reset"`
}

// =============================================================================
// PLAYLIST TYPES
// =============================================================================

type PlaylistDTO struct {
	Name      string    `json:"name"`
	SongCount int       `json:"song_count"`
	Songs     []SongDTO `json:"songs,omitempty"`
}

type SongDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Length string `json:"length"`
	Kind   string `json:"kind"`
	Source string `json:"source"`
}

type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	RecentLimit int    `json:"recent_limit,omitempty"`
}

// AddSongRequest adds a song to a playlist. Kind is "local" or "online";
// Source is the file path or stream URL, defaulted from the name when
// empty.
type AddSongRequest struct {
	Name          string `json:"name"`
	Artist        string `json:"artist"`
	LengthSeconds int    `json:"length_seconds"`
	Kind          string `json:"kind"`
	Source        string `json:"source,omitempty"`
}

type PlayRequest struct {
	Index int `json:"index"`
}

// LoadScenarioRequest selects a demo scenario by name.
type LoadScenarioRequest struct {
	Name string `json:"name"`
}

type ScenarioDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorResponse is the JSON shape of every error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

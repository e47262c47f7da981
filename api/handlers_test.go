package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store/csvfile"
)

func newTestRouter(t *testing.T) (http.Handler, *csvfile.Store) {
	t.Helper()
	store := csvfile.New(filepath.Join(t.TempDir(), "employees.csv"))
	h := NewHandler(payroll.NewRegistry(), store, 0)
	return NewRouter(h), store
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

// =============================================================================
// EMPLOYEE ENDPOINTS
// =============================================================================

func TestCreateAndGetEmployee(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/employees", CreateEmployeeRequest{
		ID: "FT001", Name: "Alice Kumar", JoinDate: "2018-06-15",
		Role: "Full-Time", MonthlySalary: 80000,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/employees/FT001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	dto := decode[EmployeeDTO](t, rec)
	assert.Equal(t, "FT001", dto.ID)
	assert.Equal(t, "Full-Time", dto.Role)
	assert.Equal(t, "2018-06-15", dto.JoinDate)
	assert.Equal(t, "80000", dto.Fields["monthly_salary"])
}

func TestCreateEmployee_UnknownRoleIsGeneric(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/employees", CreateEmployeeRequest{
		ID: "X1", Name: "Someone", Role: "Contractor",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	dto := decode[EmployeeDTO](t, rec)
	assert.Equal(t, "Contractor", dto.Role, "unrecognized role tag is preserved")
}

func TestCreateEmployee_Validation(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/employees", CreateEmployeeRequest{
		Name: "No ID",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/employees", CreateEmployeeRequest{
		ID: "X1", JoinDate: "15/06/2018", Role: "Full-Time",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEmployee_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/employees/NOPE", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteEmployee_IsIdempotent(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodDelete, "/api/employees/NOPE", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCalculateSalary_FullTime(t *testing.T) {
	router, _ := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/api/employees", CreateEmployeeRequest{
		ID: "FT001", Name: "Alice", JoinDate: "2018-06-15",
		Role: "Full-Time", MonthlySalary: 80000,
	})

	rec := doJSON(t, router, http.MethodPost, "/api/employees/FT001/salary", SalaryRequest{
		Months: 3,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	dto := decode[SalaryDTO](t, rec)
	assert.Equal(t, "FT001", dto.ID)
	assert.Equal(t, "240000.00", dto.Amount)
}

func TestCalculateSalary_PartTimeRecordsHours(t *testing.T) {
	router, _ := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/api/employees", CreateEmployeeRequest{
		ID: "PT101", Name: "Bikash", JoinDate: "2022-01-10",
		Role: "Part-Time", HourlyRate: 500,
	})

	rec := doJSON(t, router, http.MethodPost, "/api/employees/PT101/salary", SalaryRequest{
		HoursWorked: 90, ApplyBonus: true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "45900.00", decode[SalaryDTO](t, rec).Amount)

	// the hours worked stick to the record
	rec = doJSON(t, router, http.MethodGet, "/api/employees/PT101", nil)
	assert.Equal(t, "90", decode[EmployeeDTO](t, rec).Fields["monthly_hours"])
}

func TestCalculateSalary_GenericIsUnprocessable(t *testing.T) {
	router, _ := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/api/employees", CreateEmployeeRequest{
		ID: "X1", Name: "Someone", Role: "Contractor",
	})

	rec := doJSON(t, router, http.MethodPost, "/api/employees/X1/salary", SalaryRequest{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCalculateSalary_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/employees/NOPE/salary", SalaryRequest{})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// =============================================================================
// PERSISTENCE ENDPOINTS
// =============================================================================

func TestSaveAndReload_RoundTrip(t *testing.T) {
	router, store := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/api/employees", CreateEmployeeRequest{
		ID: "IN900", Name: "Charu Rai", JoinDate: "2024-07-01",
		Role: "Intern", Stipend: 15000, Completed: true,
	})

	rec := doJSON(t, router, http.MethodPost, "/api/registry/save", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	saved := decode[SaveResponse](t, rec)
	assert.Equal(t, 1, saved.Saved)
	assert.Equal(t, store.Path(), saved.Path)

	// wipe in-memory state, then reload from the file
	doJSON(t, router, http.MethodDelete, "/api/employees/IN900", nil)

	rec = doJSON(t, router, http.MethodPost, "/api/registry/reload", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	reloaded := decode[ReloadResponse](t, rec)
	assert.Equal(t, 1, reloaded.Loaded)
	assert.False(t, reloaded.Reset)

	rec = doJSON(t, router, http.MethodGet, "/api/employees/IN900", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "True", decode[EmployeeDTO](t, rec).Fields["completed"])
}

func TestReload_CorruptFileResetsEmpty(t *testing.T) {
	router, store := newTestRouter(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("a,b\n\"broken\n"), 0644))

	rec := doJSON(t, router, http.MethodPost, "/api/registry/reload", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	reloaded := decode[ReloadResponse](t, rec)
	assert.Equal(t, 0, reloaded.Loaded)
	assert.True(t, reloaded.Reset, "fail-safe-empty should be reported")
}

// =============================================================================
// PLAYLIST ENDPOINTS
// =============================================================================

func TestPlaylistFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/playlists", CreatePlaylistRequest{Name: "mix"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/playlists/mix/songs", AddSongRequest{
		Name: "Alpha", Artist: "Band A", LengthSeconds: 125, Kind: "local",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	song := decode[SongDTO](t, rec)
	assert.Equal(t, "local", song.Kind)
	assert.Equal(t, "02:05", song.Length)
	assert.Equal(t, "/music/Alpha.mp3", song.Source)

	rec = doJSON(t, router, http.MethodPost, "/api/playlists/mix/play", PlayRequest{Index: 0})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/playlists/mix/recent", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	recent := decode[[]SongDTO](t, rec)
	require.Len(t, recent, 1)
	assert.Equal(t, "Alpha", recent[0].Name)

	rec = doJSON(t, router, http.MethodGet, "/api/playlists/mix", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	pl := decode[PlaylistDTO](t, rec)
	assert.Equal(t, 1, pl.SongCount)
}

func TestPlaylist_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, call := range []struct {
		method, path string
		body         any
	}{
		{http.MethodGet, "/api/playlists/nope", nil},
		{http.MethodPost, "/api/playlists/nope/songs", AddSongRequest{Name: "x"}},
		{http.MethodPost, "/api/playlists/nope/play", PlayRequest{}},
		{http.MethodPost, "/api/playlists/nope/shuffle", nil},
		{http.MethodGet, "/api/playlists/nope/recent", nil},
	} {
		rec := doJSON(t, router, call.method, call.path, call.body)
		assert.Equalf(t, http.StatusNotFound, rec.Code, "%s %s", call.method, call.path)
	}
}

func TestPlaySong_BadIndex(t *testing.T) {
	router, _ := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/api/playlists", CreatePlaylistRequest{Name: "mix"})

	rec := doJSON(t, router, http.MethodPost, "/api/playlists/mix/play", PlayRequest{Index: 3})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// =============================================================================
// SCENARIOS
// =============================================================================

func TestScenarios_FullDemo(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/scenarios", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]ScenarioDTO](t, rec)
	require.NotEmpty(t, list)

	rec = doJSON(t, router, http.MethodPost, "/api/scenarios/load", LoadScenarioRequest{Name: "full-demo"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/employees", nil)
	employees := decode[[]EmployeeDTO](t, rec)
	assert.Len(t, employees, 3)

	rec = doJSON(t, router, http.MethodGet, "/api/playlists", nil)
	playlists := decode[[]PlaylistDTO](t, rec)
	require.Len(t, playlists, 1)
	assert.Equal(t, 5, playlists[0].SongCount)
}

func TestLoadScenario_UnknownName(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/scenarios/load", LoadScenarioRequest{Name: "no-such"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

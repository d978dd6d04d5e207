package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/repositories"
	"github.com/Dosada05/league-simulator/services"
	"github.com/google/uuid"
)

type SimulationService interface {
	PlaySeries(ctx context.Context, input services.SeriesInput) (*models.SimulationRun, error)
	RunYear(ctx context.Context, input services.YearInput) (*models.SimulationRun, *models.YearResult, error)
	List(ctx context.Context, filter repositories.ListSimulationRunsFilter) ([]*models.SimulationRun, error)
	Get(ctx context.Context, id uuid.UUID) (*models.SimulationRun, error)
	Standings(ctx context.Context, id uuid.UUID) ([]repositories.SeasonStanding, error)
}

type SimulationHandler struct {
	simulations SimulationService
}

func NewSimulationHandler(simulations SimulationService) *SimulationHandler {
	return &SimulationHandler{simulations: simulations}
}

// PlaySeries godoc
// @Summary Play an exhibition series between two league teams
// @Tags simulations
// @Accept json
// @Produce json
// @Param input body services.SeriesInput true "Series"
// @Success 201 {object} models.SimulationRun
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /simulations/series [post]
func (h *SimulationHandler) PlaySeries(w http.ResponseWriter, r *http.Request) {
	var input services.SeriesInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.HomeTeamID <= 0 || input.AwayTeamID <= 0 {
		badRequestResponse(w, r, fmt.Errorf("home_team_id and away_team_id are required"))
		return
	}

	run, err := h.simulations.PlaySeries(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, run, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RunYear godoc
// @Summary Simulate the next competitive year
// @Tags simulations
// @Accept json
// @Produce json
// @Param input body services.YearInput false "Seed"
// @Success 201 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string "Another year is running"
// @Security BearerAuth
// @Router /simulations/years [post]
func (h *SimulationHandler) RunYear(w http.ResponseWriter, r *http.Request) {
	var input services.YearInput
	if r.ContentLength != 0 {
		if err := readJSON(w, r, &input); err != nil {
			badRequestResponse(w, r, err)
			return
		}
	}

	run, year, err := h.simulations.RunYear(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	qualifiers := make(map[models.Region][]models.TeamRef, len(year.Regions))
	for _, region := range year.Regions {
		qualifiers[region.Region] = region.WorldsQualifiers
	}
	var standings []models.Placement
	if year.Worlds != nil {
		standings = year.Worlds.Standings
	}
	response := jsonResponse{
		"run":               services.Summarize(run),
		"worlds_qualifiers": qualifiers,
		"worlds_standings":  standings,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListRuns godoc
// @Summary List stored simulation runs, newest first
// @Tags simulations
// @Produce json
// @Param kind query string false "series or year"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /simulations [get]
func (h *SimulationHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	var filter repositories.ListSimulationRunsFilter
	switch kind := models.SimulationKind(r.URL.Query().Get("kind")); kind {
	case "":
	case models.SimulationSeries, models.SimulationYear:
		filter.Kind = &kind
	default:
		badRequestResponse(w, r, fmt.Errorf("unknown kind %q", kind))
		return
	}
	var err error
	if filter.Limit, err = queryInt(r, "limit", 20); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if filter.Offset, err = queryInt(r, "offset", 0); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	runs, err := h.simulations.List(r.Context(), filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"runs": runs}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetRun godoc
// @Summary Get a simulation run with its result document
// @Tags simulations
// @Produce json
// @Param runID path string true "Run ID"
// @Success 200 {object} models.SimulationRun
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /simulations/{runID} [get]
func (h *SimulationHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	id, err := getUUIDFromURL(r, "runID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	run, err := h.simulations.Get(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, run, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetRunStandings godoc
// @Summary Get the regular-season tables stored for a yearly run
// @Tags simulations
// @Produce json
// @Param runID path string true "Run ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /simulations/{runID}/standings [get]
func (h *SimulationHandler) GetRunStandings(w http.ResponseWriter, r *http.Request) {
	id, err := getUUIDFromURL(r, "runID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	rows, err := h.simulations.Standings(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": rows}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

package handlers

import (
	"fmt"
	"net/http"

	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/services"
	"github.com/go-chi/chi/v5"
)

// LeagueReader is the read side of the league service.
type LeagueReader interface {
	Leagues() []services.LeagueSummary
	Team(region models.Region, teamID int) (*models.Team, error)
	Year() int
}

type LeagueHandler struct {
	leagues LeagueReader
}

func NewLeagueHandler(leagues LeagueReader) *LeagueHandler {
	return &LeagueHandler{leagues: leagues}
}

// ListLeagues godoc
// @Summary List regional leagues with their teams and ratings
// @Tags leagues
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /leagues [get]
func (h *LeagueHandler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	response := jsonResponse{
		"year":    h.leagues.Year(),
		"leagues": h.leagues.Leagues(),
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetTeam godoc
// @Summary Get a team with its current roster
// @Tags leagues
// @Produce json
// @Param region path string true "Region"
// @Param teamID path int true "Team ID"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /leagues/{region}/teams/{teamID} [get]
func (h *LeagueHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	region, ok := models.ParseRegion(chi.URLParam(r, "region"))
	if !ok {
		badRequestResponse(w, r, fmt.Errorf("unknown region %q", chi.URLParam(r, "region")))
		return
	}
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.leagues.Team(region, teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, team, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

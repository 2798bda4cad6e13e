package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/depth-chart/internal/platform/logging"
	"github.com/riskibarqy/depth-chart/internal/usecase"
)

const maxRequestBodyBytes = 1 << 16

type Handler struct {
	depthChartService *usecase.DepthChartService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(depthChartService *usecase.DepthChartService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		depthChartService: depthChartService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSports")
	defer span.End()

	sports := h.depthChartService.ListSports(ctx)
	items := make([]sportDTO, 0, len(sports))
	for _, s := range sports {
		items = append(items, sportToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateSport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSport")
	defer span.End()

	var req createSportRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.depthChartService.CreateSport(ctx, req.Name, req.Positions)
	if err != nil {
		h.logger.WarnContext(ctx, "create sport failed", "sport", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, sportToDTO(created))
}

func (h *Handler) GetSport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSport")
	defer span.End()

	sportName := r.PathValue("sport")
	item, err := h.depthChartService.GetSport(ctx, sportName)
	if err != nil {
		h.logger.WarnContext(ctx, "get sport failed", "sport", sportName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sportToDTO(item))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	sportName := r.PathValue("sport")
	teams, err := h.depthChartService.ListTeams(ctx, sportName)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "sport", sportName, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	sportName := r.PathValue("sport")
	var req createTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.depthChartService.CreateTeam(ctx, sportName, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "sport", sportName, "team", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) RenderSport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RenderSport")
	defer span.End()

	sportName := r.PathValue("sport")
	charts, err := h.depthChartService.RenderSport(ctx, sportName)
	if err != nil {
		h.logger.WarnContext(ctx, "render sport failed", "sport", sportName, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamChartDTO, 0, len(charts))
	for _, c := range charts {
		items = append(items, chartToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChart")
	defer span.End()

	sportName, teamName := r.PathValue("sport"), r.PathValue("team")
	chart, err := h.depthChartService.GetChart(ctx, sportName, teamName)
	if err != nil {
		h.logger.WarnContext(ctx, "get chart failed", "sport", sportName, "team", teamName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, chartToDTO(chart))
}

func (h *Handler) GetDepth(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDepth")
	defer span.End()

	sportName, teamName, position := r.PathValue("sport"), r.PathValue("team"), r.PathValue("position")
	players, err := h.depthChartService.GetDepth(ctx, sportName, teamName, position)
	if err != nil {
		h.logger.WarnContext(ctx, "get depth failed", "sport", sportName, "team", teamName, "position", position, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, positionPlayersDTO{
		Position: position,
		Players:  playersToDTO(players),
	})
}

func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayer")
	defer span.End()

	var req addPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.AddPlayerInput{
		Sport:    r.PathValue("sport"),
		Team:     r.PathValue("team"),
		Position: r.PathValue("position"),
		Name:     req.Name,
		Number:   *req.Number,
		Rank:     req.Rank,
	}
	if err := h.depthChartService.AddPlayer(ctx, input); err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.depthChartService.GetDepth(ctx, input.Sport, input.Team, input.Position)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, positionPlayersDTO{
		Position: input.Position,
		Players:  playersToDTO(players),
	})
}

func (h *Handler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemovePlayer")
	defer span.End()

	ref, err := playerRefFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	removed, ok, err := h.depthChartService.RemovePlayer(ctx, ref)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := removePlayerDTO{Removed: ok}
	if ok {
		dto := playerToDTO(removed)
		out.Player = &dto
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetBackups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBackups")
	defer span.End()

	ref, err := playerRefFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	backups, err := h.depthChartService.GetBackups(ctx, ref)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, positionPlayersDTO{
		Position: ref.Position,
		Players:  playersToDTO(backups),
	})
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func playerRefFromRequest(r *http.Request) (usecase.PlayerRef, error) {
	rawNumber := strings.TrimSpace(r.PathValue("number"))
	number, err := strconv.Atoi(rawNumber)
	if err != nil {
		return usecase.PlayerRef{}, fmt.Errorf("%w: invalid player number %q", usecase.ErrInvalidInput, rawNumber)
	}

	return usecase.PlayerRef{
		Sport:    r.PathValue("sport"),
		Team:     r.PathValue("team"),
		Position: r.PathValue("position"),
		Name:     r.URL.Query().Get("name"),
		Number:   number,
	}, nil
}

// Package httpapi exposes a game session over JSON HTTP.
package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/samdwyer/cardhall/internal/combat"
	"github.com/samdwyer/cardhall/internal/game"
)

const maxInputLength = 200

// Handler serves a single session. Requests are serialized so every action
// runs to completion before the next one starts.
type Handler struct {
	mu      sync.Mutex
	game    *game.Game
	session string
	logger  *slog.Logger
}

func NewHandler(g *game.Game, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{game: g, session: uuid.NewString(), logger: logger}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/state", h.State)
	e.POST("/v1/command", h.Command)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) State(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return c.JSON(http.StatusOK, StateResponse{Session: h.session, State: h.game.Snapshot()})
}

// Command runs one line of input. When the player's attack leaves the
// opponent to move, the reply is played at once and appended to Results.
func (h *Handler) Command(c echo.Context) error {
	var req CommandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	input := strings.TrimSpace(req.Input)
	if input == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "input is required"})
	}
	if len(input) > maxInputLength {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "input must be at most 200 characters"})
	}

	ctx := c.Request().Context()

	h.mu.Lock()
	defer h.mu.Unlock()

	res := h.game.Execute(ctx, input)
	if res.Err != nil {
		return h.mapError(c, res, h.game.Snapshot())
	}

	results := []ResultResponse{toResult(res)}
	if enemyDue(res) {
		results = append(results, toResult(h.game.PlayTurn(ctx)))
	}

	return c.JSON(http.StatusOK, CommandResponse{
		Session: h.session,
		Results: results,
		State:   h.game.Snapshot(),
	})
}

func enemyDue(res game.Result) bool {
	if res.Event == nil || res.Event.Type != game.EventBattleTurn {
		return false
	}
	p, ok := res.Event.Payload.(game.BattleTurnPayload)
	return ok && p.Next == combat.SideEnemy.String()
}

// mapError reports a refused action. The session is unchanged, so the
// current state is returned alongside the reason.
func (h *Handler) mapError(c echo.Context, res game.Result, state game.Snapshot) error {
	requestID, _ := c.Get("request_id").(string)

	var status int
	switch err := res.Err; {
	case errors.Is(err, game.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrUnknownCommand):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrProgressionGated):
		status = http.StatusForbidden
	case errors.Is(err, game.ErrAlreadyDefeated),
		errors.Is(err, game.ErrMissingBattleCard),
		errors.Is(err, game.ErrBattleAlreadyActive),
		errors.Is(err, game.ErrNoActiveBattle),
		errors.Is(err, game.ErrNotYourTurn),
		errors.Is(err, game.ErrAlreadyCarried):
		status = http.StatusConflict
	default:
		h.logger.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", RequestID: requestID})
	}

	return c.JSON(status, struct {
		ErrorResponse
		State game.Snapshot `json:"state"`
	}{
		ErrorResponse: ErrorResponse{Error: res.Err.Error(), Message: res.Message, RequestID: requestID},
		State:         state,
	})
}

package handler

import (
	"context"
	"net/http"
	"strconv"

	"gamecatalog/backend/internal/catalog"
	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/metrics"
	"gamecatalog/backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GameHandler serves the catalog endpoints.
type GameHandler struct {
	store   catalog.Store
	hub     *hub.Hub
	metrics *metrics.Recorder
	log     *zap.Logger
}

// NewGameHandler wires a handler to its store. hub, recorder and log may be nil.
func NewGameHandler(store catalog.Store, h *hub.Hub, recorder *metrics.Recorder, log *zap.Logger) *GameHandler {
	if h == nil {
		h = hub.NewHub()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &GameHandler{store: store, hub: h, metrics: recorder, log: log}
}

// region --- Handlers ---

// GetGames godoc
// @Summary      List games
// @Description  Returns every game in catalog order.
// @Tags         games
// @Produce      json
// @Success      200  {array}   models.Game
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func (h *GameHandler) GetGames(c *gin.Context) {
	games, err := h.store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Returns the first game whose id matches.
// @Tags         games
// @Produce      json
// @Param        id   path      int  true  "Game ID"
// @Success      200  {object}  models.Game
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Failure      422  {object}  ValidationErrorResponse
// @Router       /games/{id} [get]
func (h *GameHandler) GetGameByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	game, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Appends a game to the catalog. Ids are not checked for uniqueness.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body      models.GameInput true "Game"
// @Success      201   {object}  models.Game
// @Failure      422   {object}  ValidationErrorResponse
// @Router       /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var input models.GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, bindingIssues(err)...)
		return
	}

	game, err := h.store.Create(c.Request.Context(), input.Game())
	if err != nil {
		respondStoreError(c, h.log, err)
		return
	}

	h.publish(hub.GameCreated, game)
	h.refreshCatalogSize(c.Request.Context())
	c.JSON(http.StatusCreated, game)
}

// UpdateGame godoc
// @Summary      Replace a game
// @Description  Replaces the first game with the given id, keeping its position. The body id may differ from the path id.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Game ID"
// @Param        input body      models.GameInput true  "Game"
// @Success      200   {object}  models.Game
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Failure      422   {object}  ValidationErrorResponse
// @Router       /games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input models.GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, bindingIssues(err)...)
		return
	}

	game, err := h.store.Update(c.Request.Context(), id, input.Game())
	if err != nil {
		respondStoreError(c, h.log, err)
		return
	}

	h.publish(hub.GameUpdated, game)
	c.JSON(http.StatusOK, game)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Removes the first game with the given id.
// @Tags         games
// @Param        id   path  int  true  "Game ID"
// @Success      204  "No Content"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Failure      422  {object}  ValidationErrorResponse
// @Router       /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, h.log, err)
		return
	}

	h.publish(hub.GameDeleted, gin.H{"id": id})
	h.refreshCatalogSize(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// endregion

// pathID parses the :id segment, answering 422 when it is not an integer.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortValidation(c, ValidationIssue{
			Loc:  []string{"path", "id"},
			Msg:  "Input should be a valid integer, unable to parse string as an integer",
			Type: "int_parsing",
		})
		return 0, false
	}
	return id, true
}

func (h *GameHandler) publish(eventType string, payload interface{}) {
	n, err := h.hub.Broadcast(hub.Event{Type: eventType, Payload: payload})
	if err != nil {
		h.log.Warn("event broadcast failed", zap.String("type", eventType), zap.Error(err))
		return
	}
	h.metrics.RecordEvent(eventType)
	h.log.Debug("event published", zap.String("type", eventType), zap.Int("subscribers", n))
}

// refreshCatalogSize keeps the catalog gauge in step after create and delete.
func (h *GameHandler) refreshCatalogSize(ctx context.Context) {
	if h.metrics == nil {
		return
	}
	games, err := h.store.List(ctx)
	if err != nil {
		h.log.Warn("catalog size refresh failed", zap.Error(err))
		return
	}
	h.metrics.SetCatalogSize(len(games))
}

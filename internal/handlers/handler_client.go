package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/client_service/internal/apperrors"
	"github.com/SscSPs/client_service/internal/core/domain"
	portssvc "github.com/SscSPs/client_service/internal/core/ports/services"
	"github.com/SscSPs/client_service/internal/dto"
	"github.com/SscSPs/client_service/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PageLimits bounds the page size accepted by list endpoints.
type PageLimits struct {
	DefaultSize int
	MaxSize     int
}

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
	limits        PageLimits
}

func newClientHandler(cs portssvc.ClientSvcFacade, limits PageLimits) *clientHandler {
	return &clientHandler{
		clientService: cs,
		limits:        limits,
	}
}

// RegisterClientRoutes registers routes related to clients.
func RegisterClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade, limits PageLimits) {
	h := newClientHandler(clientService, limits)

	clients := rg.Group("/clients")
	{
		clients.GET("", h.listClients)
		clients.GET("/income", h.findClientsByIncome)
		clients.GET("/:id", h.getClientByID)
		clients.POST("", h.createClient)
		clients.PUT("/:id", h.updateClient)
		clients.DELETE("/:id", h.deleteClient)
	}
}

// listClients godoc
// @Summary List all clients
// @Description Retrieves every client ordered by ID
// @Tags clients
// @Produce  json
// @Success 200 {array} dto.ClientDTO
// @Failure 500 {object} map[string]string "Failed to list clients"
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	clients, err := h.clientService.FindAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list clients from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list clients"})
		return
	}

	logger.Info("Clients listed successfully", slog.Int("count", len(clients)))
	c.JSON(http.StatusOK, clients)
}

// findClientsByIncome godoc
// @Summary Find clients by minimum income
// @Description Retrieves a page of clients whose income is greater than or equal to the given value
// @Tags clients
// @Produce  json
// @Param   income query string false "Minimum income (decimal), defaults to 0"
// @Param   page   query int    false "Zero-based page index" default(0)
// @Param   size   query int    false "Page size"
// @Success 200 {object} dto.ClientPageResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to find clients"
// @Router /clients/income [get]
func (h *clientHandler) findClientsByIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.FindByIncomeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for FindClientsByIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	minIncome := decimal.Zero
	if params.Income != "" {
		parsed, err := decimal.NewFromString(params.Income)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid income '%s'", params.Income)})
			return
		}
		minIncome = parsed
	}

	page := domain.PageRequest{Page: 0, Size: h.limits.DefaultSize}
	if params.Page != nil {
		page.Page = *params.Page
	}
	if params.Size != nil {
		page.Size = *params.Size
	}
	if h.limits.MaxSize > 0 && page.Size > h.limits.MaxSize {
		page.Size = h.limits.MaxSize
	}

	logger = logger.With(
		slog.String("min_income", minIncome.String()),
		slog.Int("page", page.Page),
		slog.Int("size", page.Size),
	)

	resp, err := h.clientService.FindByIncome(c.Request.Context(), minIncome, page)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid page request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to find clients by income", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find clients"})
		}
		return
	}

	logger.Info("Clients by income retrieved successfully", slog.Int64("total", resp.TotalElements))
	c.JSON(http.StatusOK, resp)
}

// getClientByID godoc
// @Summary Get a client by ID
// @Tags clients
// @Produce  json
// @Param   id path int true "Client ID"
// @Success 200 {object} dto.ClientDTO
// @Failure 400 {object} map[string]string "Invalid client ID"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to retrieve client"
// @Router /clients/{id} [get]
func (h *clientHandler) getClientByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID, ok := parseClientID(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("client_id", clientID))

	client, err := h.clientService.FindByID(c.Request.Context(), clientID)
	if err != nil {
		respondClientError(c, logger, err, "Failed to retrieve client")
		return
	}

	c.JSON(http.StatusOK, client)
}

// createClient godoc
// @Summary Create a new client
// @Description Adds a new client. Any ID in the body is ignored.
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   client body dto.ClientDTO true "Client details"
// @Success 201 {object} dto.ClientDTO
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create client"
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ClientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.clientService.Insert(c.Request.Context(), req)
	if err != nil {
		respondClientError(c, logger, err, "Failed to create client")
		return
	}

	logger.Info("Client created successfully", slog.Int64("client_id", created.ID))
	c.Header("Location", c.FullPath()+"/"+strconv.FormatInt(created.ID, 10))
	c.JSON(http.StatusCreated, created)
}

// updateClient godoc
// @Summary Update a client
// @Description Replaces every field of an existing client. The path ID wins over any ID in the body.
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   id     path int           true "Client ID"
// @Param   client body dto.ClientDTO true "Client details"
// @Success 200 {object} dto.ClientDTO
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to update client"
// @Router /clients/{id} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID, ok := parseClientID(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("client_id", clientID))

	var req dto.ClientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateClient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.clientService.Update(c.Request.Context(), clientID, req)
	if err != nil {
		respondClientError(c, logger, err, "Failed to update client")
		return
	}

	logger.Info("Client updated successfully")
	c.JSON(http.StatusOK, updated)
}

// deleteClient godoc
// @Summary Delete a client
// @Tags clients
// @Param   id path int true "Client ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid client ID"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to delete client"
// @Router /clients/{id} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID, ok := parseClientID(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("client_id", clientID))

	if err := h.clientService.Delete(c.Request.Context(), clientID); err != nil {
		respondClientError(c, logger, err, "Failed to delete client")
		return
	}

	logger.Info("Client deleted successfully")
	c.Status(http.StatusNoContent)
}

func parseClientID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid client ID '%s'", raw)})
		return 0, false
	}
	return id, true
}

func respondClientError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Client not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate client", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

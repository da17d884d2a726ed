package handler

import (
	"lnpos-gateway/internal/adapter/http/dto"
	"lnpos-gateway/internal/adapter/http/middleware"
	"lnpos-gateway/internal/codec"
	"lnpos-gateway/internal/core/domain"
	"lnpos-gateway/internal/core/ports"
	"lnpos-gateway/pkg/apperror"
	"lnpos-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// TerminalHandler handles terminal administration.
type TerminalHandler struct {
	terminalSvc ports.TerminalService
	publicURL   string
}

// NewTerminalHandler creates a new terminal handler.
func NewTerminalHandler(terminalSvc ports.TerminalService, publicURL string) *TerminalHandler {
	return &TerminalHandler{terminalSvc: terminalSvc, publicURL: publicURL}
}

// Create registers a terminal and returns its key once.
func (h *TerminalHandler) Create(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateTerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	device := domain.Device(req.Device)
	if device == "" {
		device = domain.DevicePOS
	}

	created, err := h.terminalSvc.Create(c.Request.Context(), caller, ports.CreateTerminalInput{
		Title:    req.Title,
		Wallet:   req.Wallet,
		Currency: req.Currency,
		Markup:   req.Markup,
		Scheme:   codec.Scheme(req.Scheme),
		Device:   device,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, created.Terminal.ID)
	base := h.publicURL
	if base == "" {
		base = requestBaseURL(c)
	}
	response.Created(c, dto.CreatedTerminalResponse{
		TerminalResponse: dto.NewTerminalResponse(created.Terminal),
		Key:              created.Key,
		LnurlBase:        base + "/lnpos/api/v1/lnurl/" + created.Terminal.ID,
	})
}

// List returns the terminals of the caller's wallets.
func (h *TerminalHandler) List(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	terminals, err := h.terminalSvc.List(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TerminalResponse, 0, len(terminals))
	for i := range terminals {
		items = append(items, dto.NewTerminalResponse(&terminals[i]))
	}
	response.OK(c, items)
}

// Get returns one terminal.
func (h *TerminalHandler) Get(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	term, err := h.terminalSvc.Get(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewTerminalResponse(term))
}

// Update changes title, wallet, currency or markup.
func (h *TerminalHandler) Update(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.UpdateTerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	term, err := h.terminalSvc.Update(c.Request.Context(), caller, c.Param("id"), domain.TerminalUpdate{
		Title:    req.Title,
		Wallet:   req.Wallet,
		Currency: req.Currency,
		Markup:   req.Markup,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewTerminalResponse(term))
}

// Delete removes a terminal. Its payments stay for reporting.
func (h *TerminalHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	if err := h.terminalSvc.Delete(c.Request.Context(), caller, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

package handler

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"lnpos-gateway/internal/core/ports"
	"lnpos-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/pin.html
var templateFS embed.FS

var pinTemplate = template.Must(template.ParseFS(templateFS, "templates/pin.html"))

type pinView struct {
	Title string
	Sats  int64
	Paid  bool
	PIN   int64
	Error string
}

// PinHandler renders the page a wallet's successAction links to.
type PinHandler struct {
	pinSvc ports.PinService
}

// NewPinHandler creates a new PIN handler.
func NewPinHandler(pinSvc ports.PinService) *PinHandler {
	return &PinHandler{pinSvc: pinSvc}
}

// Show reveals the PIN when the payment settled, and a waiting page otherwise.
func (h *PinHandler) Show(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	res, err := h.pinSvc.Reveal(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		status, msg := http.StatusInternalServerError, "Something went wrong"
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status, msg = appErr.HTTPStatus, appErr.Message
		}
		h.render(c, status, pinView{Error: msg})
		return
	}

	view := pinView{Title: res.Title, Sats: int64(res.Sats), Paid: res.Paid}
	if res.Paid {
		view.PIN = res.PIN
	}
	h.render(c, http.StatusOK, view)
}

func (h *PinHandler) render(c *gin.Context, status int, view pinView) {
	c.Render(status, render.HTML{Template: pinTemplate, Name: "pin.html", Data: view})
}

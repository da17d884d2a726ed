package handler

import (
	"lnpos-gateway/internal/adapter/http/dto"
	"lnpos-gateway/internal/adapter/http/middleware"
	"lnpos-gateway/internal/core/ports"
	"lnpos-gateway/pkg/apperror"
	"lnpos-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultPaymentLimit = 100

// PaymentHandler serves the payments report.
type PaymentHandler struct {
	reportingSvc ports.ReportingService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(reportingSvc ports.ReportingService) *PaymentHandler {
	return &PaymentHandler{reportingSvc: reportingSvc}
}

// List returns payments of the caller's terminals, newest first.
func (h *PaymentHandler) List(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var q dto.PaymentListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if q.Limit == 0 {
		q.Limit = defaultPaymentLimit
	}

	payments, err := h.reportingSvc.ListPayments(c.Request.Context(), caller, ports.PaymentListParams{
		TerminalID: q.TerminalID,
		Limit:      q.Limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		items = append(items, dto.NewPaymentResponse(&payments[i]))
	}
	response.OK(c, dto.PaymentListResponse{Payments: items, Count: len(items)})
}

package handler

import (
	"fmt"
	"net/url"
	"strings"

	"lnpos-gateway/internal/adapter/http/dto"
	"lnpos-gateway/internal/core/domain"
	"lnpos-gateway/internal/core/ports"
	"lnpos-gateway/pkg/apperror"
	"lnpos-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

const pinDescription = "Check the attached link for the pin."

// LnurlHandler serves the wallet-facing LNURL routes.
type LnurlHandler struct {
	lnurlSvc  ports.LnurlService
	publicURL string
}

// NewLnurlHandler creates a new LNURL handler. An empty publicURL derives
// links from the incoming request.
func NewLnurlHandler(lnurlSvc ports.LnurlService, publicURL string) *LnurlHandler {
	return &LnurlHandler{lnurlSvc: lnurlSvc, publicURL: strings.TrimRight(publicURL, "/")}
}

// Quote turns a terminal token into a payRequest or withdrawRequest.
func (h *LnurlHandler) Quote(c *gin.Context) {
	res, err := h.lnurlSvc.Quote(c.Request.Context(), ports.QuoteRequest{
		TerminalID: c.Param("terminal_id"),
		P:          c.Query("p"),
		IV:         c.Query("iv"),
	})
	if err != nil {
		if ports.IsLegacy(err) {
			response.Error(c, err)
			return
		}
		response.LnurlError(c, err)
		return
	}

	base := h.baseURL(c)
	p := res.Payment
	msat := p.Sats.Msat()

	if p.Kind == domain.PaymentKindWithdraw {
		response.LnurlRaw(c, dto.WithdrawRequest{
			Tag:                "withdrawRequest",
			Callback:           base + "/lnpos/api/v1/lnurl/withdraw/cb/" + url.PathEscape(p.ID),
			K1:                 p.ID,
			MinWithdrawable:    msat,
			MaxWithdrawable:    msat,
			DefaultDescription: res.Terminal.Title,
		})
		return
	}

	response.LnurlRaw(c, dto.PayRequest{
		Tag:         "payRequest",
		Callback:    base + "/lnpos/api/v1/lnurl/cb/" + url.PathEscape(p.ID),
		MinSendable: msat,
		MaxSendable: msat,
		Metadata:    res.Terminal.LnurlPayMetadata(),
	})
}

// Callback issues (or repeats) the invoice for a quoted payment.
func (h *LnurlHandler) Callback(c *gin.Context) {
	res, err := h.lnurlSvc.Callback(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		response.LnurlError(c, err)
		return
	}

	response.LnurlRaw(c, dto.InvoiceResponse{
		PR: res.Invoice,
		SuccessAction: dto.SuccessAction{
			Tag:         "url",
			Description: pinDescription,
			URL:         h.baseURL(c) + "/lnpos/pin/" + url.PathEscape(res.Payment.ID),
		},
		Routes: []string{},
	})
}

// WithdrawCallback pays out an ATM withdraw to an invoice or address.
func (h *LnurlHandler) WithdrawCallback(c *gin.Context) {
	var q dto.WithdrawCallbackQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.LnurlError(c, apperror.Validation(err.Error()))
		return
	}

	err := h.lnurlSvc.Withdraw(c.Request.Context(), ports.WithdrawRequest{
		PaymentID: c.Param("payment_id"),
		K1:        q.K1,
		Invoice:   strings.TrimSpace(q.PR),
		Address:   strings.TrimSpace(q.Address),
	})
	if err != nil {
		response.LnurlError(c, err)
		return
	}
	response.LnurlOK(c)
}

// baseURL is the configured public URL, or scheme://host of the request.
func (h *LnurlHandler) baseURL(c *gin.Context) string {
	if h.publicURL != "" {
		return h.publicURL
	}
	return requestBaseURL(c)
}

func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if fwd := c.GetHeader("X-Forwarded-Proto"); fwd == "https" || fwd == "http" {
		scheme = fwd
	}
	return fmt.Sprintf("%s://%s", scheme, c.Request.Host)
}

package v1

import (
	"mime"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/anmolenterprise/invoicer/internal/api/dto"
	ierr "github.com/anmolenterprise/invoicer/internal/errors"
	"github.com/anmolenterprise/invoicer/internal/logger"
	"github.com/anmolenterprise/invoicer/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	HeaderDocumentID = "X-Document-ID"
	HeaderPageCount  = "X-Page-Count"
	ContentTypePDF   = "application/pdf"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
	logger         *logger.Logger
}

func NewInvoiceHandler(invoiceService service.InvoiceService, logger *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// GenerateInvoicePDF godoc
// @Summary Render an invoice
// @Description Render the invoice with the chosen template and return it as a PDF attachment
// @Tags Invoices
// @Accept json
// @Produce application/pdf
// @Param invoice body dto.GenerateInvoiceRequest true "Invoice details"
// @Success 200 {file} file
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /invoices/pdf [post]
func (h *InvoiceHandler) GenerateInvoicePDF(c *gin.Context) {
	var req dto.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debugw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	doc, err := h.invoiceService.GenerateInvoice(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", ContentDisposition(doc.Filename))
	c.Header(HeaderDocumentID, doc.ID)
	c.Header(HeaderPageCount, strconv.Itoa(doc.Pages))
	c.Data(http.StatusOK, ContentTypePDF, doc.Content)
}

// SummarizeInvoice godoc
// @Summary Compute invoice amounts
// @Description Compute the per item amounts, totals, tax and round off without rendering
// @Tags Invoices
// @Accept json
// @Produce json
// @Param invoice body dto.GenerateInvoiceRequest true "Invoice details"
// @Success 200 {object} dto.InvoiceSummaryResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /invoices/summary [post]
func (h *InvoiceHandler) SummarizeInvoice(c *gin.Context) {
	var req dto.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debugw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.invoiceService.SummarizeInvoice(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ContentDisposition builds an attachment header. Names outside ASCII get an
// ASCII filename fallback plus the RFC 6266 filename* parameter.
func ContentDisposition(filename string) string {
	fallback := strings.Map(func(r rune) rune {
		if r < ' ' || r >= utf8.RuneSelf || r == 0x7f {
			return '_'
		}
		return r
	}, filename)

	value := mime.FormatMediaType("attachment", map[string]string{"filename": fallback})
	if fallback == filename {
		return value
	}

	// non-ASCII values are written as filename*=utf-8''<percent-encoded>
	extended := mime.FormatMediaType("attachment", map[string]string{"filename": filename})
	return value + strings.TrimPrefix(extended, "attachment")
}

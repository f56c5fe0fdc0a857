package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/invoice-manager-api/internal/usecases/invoicing"
	"github.com/vfg2006/invoice-manager-api/pkg/apiErrors"
	"github.com/vfg2006/invoice-manager-api/pkg/log"
)

// ListInvoices retorna as faturas com status de exibição e ações válidas,
// opcionalmente filtradas pelo parâmetro year
func ListInvoices(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var year *int
		if yearStr := r.URL.Query().Get("year"); yearStr != "" {
			y, err := strconv.Atoi(yearStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
				return
			}
			year = &y
		}

		views, err := service.ListInvoiceViews(year)
		if err != nil {
			logger.WithError(err).Error("invoices: erro ao listar faturas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar faturas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(views); err != nil {
			logger.WithError(err).Error("invoices: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// MarkInvoicePaid marca uma fatura como paga
func MarkInvoicePaid(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		invoiceID, ok := invoiceIDFromRequest(w, r)
		if !ok {
			return
		}

		view, err := service.MarkPaid(invoiceID)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"invoice_id": invoiceID,
			}).Error("invoices: erro ao marcar fatura como paga")
			writeInvoiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"invoice_id": invoiceID,
		}).Info("invoices: fatura marcada como paga")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(view); err != nil {
			logger.WithError(err).Error("invoices: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// RectifyInvoice emite a fatura de retificação e marca a original como
// retificada
func RectifyInvoice(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		invoiceID, ok := invoiceIDFromRequest(w, r)
		if !ok {
			return
		}

		view, err := service.Rectify(r.Context(), invoiceID)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"invoice_id": invoiceID,
			}).Error("invoices: erro ao retificar fatura")
			writeInvoiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"invoice_id":       invoiceID,
			"rectification_id": view.Invoice.ID,
		}).Info("invoices: fatura retificada")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(view); err != nil {
			logger.WithError(err).Error("invoices: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// DeleteInvoice exclui uma fatura sem retificação dependente
func DeleteInvoice(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		invoiceID, ok := invoiceIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.Delete(invoiceID); err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"invoice_id": invoiceID,
			}).Error("invoices: erro ao excluir fatura")
			writeInvoiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"invoice_id": invoiceID,
		}).Info("invoices: fatura excluída")

		w.WriteHeader(http.StatusNoContent)
	}
}

func invoiceIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da fatura não fornecido", nil)
		return 0, false
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da fatura inválido", nil)
		return 0, false
	}

	return id, true
}

// writeInvoiceError traduz os erros do ciclo de vida das faturas nos códigos
// da API
func writeInvoiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, invoicing.ErrInvoiceNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvoiceNotFound, "Fatura não encontrada", nil)
	case errors.Is(err, invoicing.ErrInvoiceNotPayable):
		apiErrors.WriteError(w, apiErrors.ErrInvoiceNotPayable, "Fatura não pode ser marcada como paga", nil)
	case errors.Is(err, invoicing.ErrInvoiceNotRectifiable):
		apiErrors.WriteError(w, apiErrors.ErrInvoiceNotRectifiable, "Fatura não pode ser retificada", nil)
	case errors.Is(err, invoicing.ErrInvoiceNotDeletable):
		apiErrors.WriteError(w, apiErrors.ErrInvoiceNotDeletable, "Fatura não pode ser excluída", nil)
	case errors.Is(err, invoicing.ErrHasRectification):
		apiErrors.WriteError(w, apiErrors.ErrInvoiceHasDependent, "Fatura possui retificação dependente", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar fatura", nil)
	}
}

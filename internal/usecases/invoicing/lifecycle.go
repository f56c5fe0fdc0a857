package invoicing

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
)

// isRectified indica se a fatura já foi corrigida por outra. O status
// RECTIFIED e a flag is_rectified deveriam andar juntos; quando divergem o
// registro é tratado como retificado e a divergência fica registrada como
// erro de integridade
func isRectified(invoice *domain.Invoice) bool {
	byStatus := invoice.Status == domain.InvoiceStatusRectified
	byFlag := invoice.IsRectified

	if byStatus != byFlag {
		logrus.WithFields(logrus.Fields{
			"invoice_id":   invoice.ID,
			"status":       invoice.Status,
			"is_rectified": invoice.IsRectified,
		}).Error("Divergência de integridade entre status e is_rectified")
	}

	return byStatus || byFlag
}

// ProjectInvoice calcula a projeção de exibição de uma fatura: o status
// apresentado e as ações válidas no estado atual. Função pura, nunca altera
// a fatura
func ProjectInvoice(invoice *domain.Invoice) *domain.InvoiceView {
	rectified := isRectified(invoice)
	terminal := rectified || invoice.IsRectification()

	actions := domain.InvoiceActions{
		CanMarkPaid: !terminal && !invoice.IsPaid,
		CanDownload: true,
		CanRectify:  !terminal,
		CanDelete:   invoice.RectifiedBy == nil && !rectified,
	}

	displayStatus := string(invoice.Status)
	if invoice.RectifiedBy != nil {
		displayStatus = fmt.Sprintf("Rectified (by #%d)", *invoice.RectifiedBy)
	}

	return &domain.InvoiceView{
		Invoice:       invoice,
		DisplayStatus: displayStatus,
		Actions:       actions,
	}
}

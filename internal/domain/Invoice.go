package domain

import (
	"time"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusRectified InvoiceStatus = "RECTIFIED"
)

// Invoice representa uma fatura persistida. RectifiedBy aponta para a fatura
// de retificação que corrige esta; Rectifies aponta para a fatura original que
// esta retifica (quando esta própria fatura é uma retificação)
type Invoice struct {
	ID            int64         `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	CustomerID    string        `json:"customer_id"`
	CustomerName  string        `json:"customer_name,omitempty"`
	IssueDate     time.Time     `json:"issue_date"`
	Total         float64       `json:"total"`
	Status        InvoiceStatus `json:"status"`
	IsPaid        bool          `json:"is_paid"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
	IsRectified   bool          `json:"is_rectified"`
	RectifiedBy   *int64        `json:"rectified_by,omitempty"`
	Rectifies     *int64        `json:"rectifies,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// IsRectification indica se a fatura é uma retificação de outra fatura
func (i *Invoice) IsRectification() bool {
	return i.Rectifies != nil
}

// InvoiceActions é o conjunto de ações permitidas para uma fatura no seu
// estado atual
type InvoiceActions struct {
	CanMarkPaid bool `json:"can_mark_paid"`
	CanDownload bool `json:"can_download"`
	CanRectify  bool `json:"can_rectify"`
	CanDelete   bool `json:"can_delete"`
}

// InvoiceView é a projeção derivada de uma fatura para exibição: status
// calculado e ações válidas. Nunca é persistida
type InvoiceView struct {
	Invoice       *Invoice       `json:"invoice"`
	DisplayStatus string         `json:"display_status"`
	Actions       InvoiceActions `json:"valid_actions"`
}

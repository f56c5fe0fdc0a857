package invoicing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de faturas
var (
	// Erros de estado do ciclo de vida
	ErrInvoiceNotFound       = errors.New("fatura não encontrada")
	ErrInvoiceNotPayable     = errors.New("fatura não pode ser marcada como paga")
	ErrInvoiceNotRectifiable = errors.New("fatura não pode ser retificada")
	ErrInvoiceNotDeletable   = errors.New("fatura não pode ser excluída")
	ErrHasRectification      = errors.New("fatura possui retificação dependente")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// InvoiceError é um erro com contexto adicional para faturas
type InvoiceError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	InvoiceID int64  // ID da fatura envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *InvoiceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *InvoiceError) Unwrap() error {
	return e.Err
}

// NewInvoiceError cria um novo InvoiceError
func NewInvoiceError(err error, code string, invoiceID int64, details string) *InvoiceError {
	return &InvoiceError{
		Err:       err,
		Code:      code,
		InvoiceID: invoiceID,
		Details:   details,
	}
}

package model

import "github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"

const TableNameExpense = "expenses"

// Expense mapped from table <expenses>
type Expense struct {
	Info
	Amount        float64   `gorm:"column:amount;type:decimal(12,2);not null" json:"amount" form:"amount"`
	PaymentMethod string    `gorm:"column:payment_method;size:50" json:"paymentMethod" form:"paymentMethod"`
	Merchant      string    `gorm:"column:merchant;size:100" json:"merchant" form:"merchant"`
	ExpenseType   string    `gorm:"column:expense_type;size:50" json:"expenseType" form:"expenseType"`
	CategoryID    *int64    `gorm:"column:category_id;index" json:"categoryId" form:"categoryId"`
	Category      *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
	Tags          []Tag     `gorm:"many2many:expense_tag;constraint:OnDelete:CASCADE" json:"tags"`
}

func (*Expense) TableName() string {
	return TableNameExpense
}

func (e *Expense) Validate() error {
	if err := e.validateTitle(); err != nil {
		return err
	}
	if e.Amount < 0 {
		return domain.NewFieldError("amount", "must not be negative")
	}
	return nil
}

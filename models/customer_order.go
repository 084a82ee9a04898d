package models

// CustomerOrder lands in T_CUSTOMER_ORDER; it is served by the generic
// entity handler and needs no repository of its own.
type CustomerOrder struct {
	BaseEntity
	OrderNo      string `gorm:"size:40;uniqueIndex;not null" json:"order_no" binding:"required"`
	CustomerName string `gorm:"size:120;not null" json:"customer_name" binding:"required"`
	Amount       int64  `gorm:"not null" json:"amount"` // minor units (cents)
	Status       string `gorm:"size:20;not null" json:"status"`
}

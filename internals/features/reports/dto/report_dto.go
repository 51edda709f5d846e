// file: internals/features/reports/dto/report_dto.go
package dto

type MonthlyRevenueRow struct {
	Month   string `json:"month" gorm:"column:month"`
	Revenue int64  `json:"revenue" gorm:"column:revenue"`
	Count   int64  `json:"count" gorm:"column:count"`
}

type OutstandingPaymentRow struct {
	PaymentID           string `json:"payment_id" gorm:"column:payment_id"`
	PaymentEnrollmentID string `json:"payment_enrollment_id" gorm:"column:payment_enrollment_id"`
	StudentName         string `json:"student_name" gorm:"column:student_name"`
	ClassName           string `json:"class_name" gorm:"column:class_name"`
	PaymentAmount       int64  `json:"payment_amount" gorm:"column:payment_amount"`
	PaymentStatus       string `json:"payment_status" gorm:"column:payment_status"`
	PaymentCreatedAt    string `json:"payment_created_at" gorm:"column:payment_created_at"`
}

type ClassFillRateRow struct {
	ClassID     string  `json:"class_id" gorm:"column:class_id"`
	ClassName   string  `json:"class_name" gorm:"column:class_name"`
	MaxCapacity int     `json:"max_capacity" gorm:"column:max_capacity"`
	Enrolled    int64   `json:"enrolled" gorm:"column:enrolled"`
	FillRate    float64 `json:"fill_rate" gorm:"column:fill_rate"`
}

type CostRevenueRow struct {
	Month   string `json:"month" gorm:"column:month"`
	Revenue int64  `json:"revenue" gorm:"column:revenue"`
	Cost    int64  `json:"cost" gorm:"column:cost"`
	Net     int64  `json:"net" gorm:"column:net"`
}

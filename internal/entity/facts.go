package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Decision is the risk decision recorded on a purchase.
type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionDecline Decision = "DECLINE"
	DecisionReview  Decision = "REVIEW"
)

// ReviewStatus is the review state of a return request.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusDeclined ReviewStatus = "declined"
)

type Purchase struct {
	MerchantID        int64           `yaml:"merchant_id"`
	CustomerID        string          `yaml:"customer_id"`
	OrderID           string          `yaml:"order_id"`
	Amount            decimal.Decimal `yaml:"amount"`
	Timestamp         time.Time       `yaml:"timestamp"`
	Decision          Decision        `yaml:"decision"`
	TriggeredWorkflow string          `yaml:"triggered_workflow"`
}

type ReturnRequest struct {
	ReturnID     string       `yaml:"return_id"`
	MerchantID   int64        `yaml:"merchant_id"`
	InitiatedAt  time.Time    `yaml:"initiated_at"`
	UpdatedAt    time.Time    `yaml:"updated_at"`
	ReviewStatus ReviewStatus `yaml:"review_status"`
}

type ReturnDetail struct {
	ReturnID string          `yaml:"return_id"`
	Amount   decimal.Decimal `yaml:"amount"`
	Quantity int64           `yaml:"quantity"`
}

type CartItem struct {
	ID            string `yaml:"id"`
	PurchaseOrder string `yaml:"purchase_order"`
	MerchantID    int64  `yaml:"merchant_id"`
}

// Facts is a complete read-only input set for one run.
type Facts struct {
	Merchants      []Merchant      `yaml:"merchants"`
	Purchases      []Purchase      `yaml:"purchases"`
	ReturnRequests []ReturnRequest `yaml:"return_requests"`
	ReturnDetails  []ReturnDetail  `yaml:"return_details"`
	CartItems      []CartItem      `yaml:"cart_items"`
}

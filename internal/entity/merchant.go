package entity

// UnknownMerchant is the label used when a merchant is not in the directory.
const UnknownMerchant = "Unknown"

type Merchant struct {
	ID   int64  `db:"merchant_id" yaml:"merchant_id"`
	Name string `db:"name" yaml:"name"`
}

package inventory

type Status string

const (
	StatusAvailable  Status = "available"
	StatusOutOfStock Status = "out_of_stock"
)

func (s Status) String() string { return string(s) }

func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusOutOfStock
}

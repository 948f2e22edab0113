package request

// StockReportRequest is the payload for reporting a manually counted
// stock level. A pointer keeps zero distinguishable from a missing
// field: zero stock is a legitimate count.

type StockReportRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

// TargetQuantityRequest is the payload for setting a reviewed order
// quantity. Zero means "skip this product", so the field is a pointer
// for the same reason as StockReportRequest.
type TargetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

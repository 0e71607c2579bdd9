package sheetsale

import "errors"

var (
	ErrSheetSaleNotFound = errors.New("Sheet sale not found")
	ErrInvalidSheetCount = errors.New("Sheet count must be positive")
)

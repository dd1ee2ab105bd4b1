package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig    = fmt.Errorf("configuration not found")
	ErrInvalidConfig    = fmt.Errorf("invalid configuration")
	ErrMissingAssetRoot = fmt.Errorf("asset root not found")

	// Server errors
	ErrServerClosed = fmt.Errorf("server closed")
	ErrAssetRead    = fmt.Errorf("asset read failed")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)

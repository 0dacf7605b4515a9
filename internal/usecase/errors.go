package usecase

import "errors"

var (
	// ErrInvalidSymbol means the symbol does not match the market's code format.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrUnsupportedMarket means no provider is configured for the market.
	ErrUnsupportedMarket = errors.New("unsupported market")

	// ErrInvalidDate means a date parameter is not a parseable trade date.
	ErrInvalidDate = errors.New("invalid date")
)

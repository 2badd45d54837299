package domain

import "errors"

var (
	// ErrConfigMissing is fatal: there is no network table for the chain id.
	ErrConfigMissing = errors.New("network config missing")
	// ErrSourceGated means a source was skipped on purpose (denylist, not yet
	// deployed at the block, or not configured on the network).
	ErrSourceGated = errors.New("price source gated")
	// ErrSourceUnavailable means the source's chain read failed or returned
	// nothing usable.
	ErrSourceUnavailable = errors.New("price source unavailable")
	// ErrNoPriceFound is returned with the unknown price once every source
	// has been exhausted.
	ErrNoPriceFound = errors.New("no price found")
	// ErrRecursionLimit cuts cyclic or too deep composite token resolution.
	ErrRecursionLimit = errors.New("price resolution recursion limit")

	ErrInvalidChainId = errors.New("invalid chain id")
	ErrInvalidAddress = errors.New("Invalid address")
)

// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/api.go -destination=api_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/session.go -destination=session_mock.go -package=mocks

//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose (go.mod tool directive; cmd/migrate
//   covers up/down/status for deployments without the CLI)
// - github.com/matryer/moq (repository and service mocks in *_mock_test.go)

//go:build tools

package tools

// Tool dependencies are tracked via the tool directives in go.mod:
// - github.com/matryer/moq (service mocks)
// - github.com/pressly/goose/v3/cmd/goose (migrations)

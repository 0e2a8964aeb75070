package service

import (
	"context"

	"github.com/kingrain94/notes-api/pkg/token"
)

//go:generate mockery --name TokenManager --output ../mocks
type TokenManager interface {
	Sign(id token.Identity) (string, error)
	Parse(raw string) (*token.Claims, error)
}

//go:generate mockery --name PasswordHasher --output ../mocks
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

//go:generate mockery --name ExportQueue --output ../mocks
type ExportQueue interface {
	SendExportMessage(ctx context.Context, tenantSlug, requestedBy string) error
}

package service

import (
	"context"

	"notifyconsole/internal/domain/entity"
)

// PackageCache keeps the package catalog close to the console
type PackageCache interface {
	// GetCatalog returns the cached catalog; found is false on a miss
	GetCatalog(ctx context.Context) (packages []*entity.Package, found bool, err error)

	SetCatalog(ctx context.Context, packages []*entity.Package) error

	// Invalidate drops the cached catalog after any write that changes it
	Invalidate(ctx context.Context) error
}

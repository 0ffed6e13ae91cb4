package contract

import (
	"context"

	"github.com/peiwenliu/sharecircle/internal/domain/entity"
)

// ILandmarkCache caches the unpaginated public landmark listing. Misses are
// reported by ok=false; cache failures are treated as misses.
type ILandmarkCache interface {
	Get(ctx context.Context, key string) ([]entity.Landmark, int64, bool)
	Set(ctx context.Context, key string, landmarks []entity.Landmark, total int64)
	Invalidate(ctx context.Context)
}

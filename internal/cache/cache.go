// Package cache keeps serialized list responses so repeated reads skip the database.
package cache

import "context"

// Keys used by the HTTP layer. Every write to bakeries or baked goods drops all of them.
const (
	KeyBakeries        = "bakeries:all"
	KeyBakedGoodsPrice = "baked_goods:by_price"
)

var AllKeys = []string{KeyBakeries, KeyBakedGoodsPrice}

type Cache interface {
	// Get reports ok=false on a miss.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

// Nop never stores anything. Used when no Redis address is configured.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte) error         { return nil }
func (Nop) Delete(context.Context, ...string) error           { return nil }

// Package redis hands out order numbers through a shared Redis counter.
//
// The number is still the creation time in milliseconds, but a Lua script
// bumps it past the last number issued, so concurrent instances never hand
// out the same value.
package redis

import (
	"context"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const DefaultNumberKey = "restaurant:orders:last_number"

var nextNumberScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])

local last = tonumber(redis.call('GET', key) or '0')
local next = now
if next <= last then
	next = last + 1
end

redis.call('SET', key, next)
return next
`)

// NumberSource issues strictly increasing order numbers seeded by the clock.
type NumberSource struct {
	client *redis.Client
	key    string
	now    func() time.Time
}

func NewNumberSource(client *redis.Client, key string) *NumberSource {
	if key == "" {
		key = DefaultNumberKey
	}
	return &NumberSource{
		client: client,
		key:    key,
		now:    time.Now,
	}
}

func (s *NumberSource) Next(ctx context.Context) (kernel.OrderNumber, error) {
	value, err := nextNumberScript.Run(ctx, s.client, []string{s.key}, s.now().UnixMilli()).Int64()
	if err != nil {
		return kernel.OrderNumber{}, fmt.Errorf("next order number: %w", err)
	}
	return kernel.NewOrderNumber(value)
}

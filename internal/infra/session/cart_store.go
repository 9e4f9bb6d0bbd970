package session

import (
	"context"
	"encoding/json"

	"shop/config"
	"shop/internal/domain/entity"
	"shop/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const cartKeyPrefix = "cart:"

// addItemScript increments the quantity for a product field inside the
// session's cart hash. The price snapshot taken on first add is kept on
// subsequent adds. Returns the total item count across the cart.
var addItemScript = redis.NewScript(`
local key = KEYS[1]
local field = ARGV[1]
local price = ARGV[2]
local ttl = tonumber(ARGV[3])

local raw = redis.call('HGET', key, field)
local qty = 1
if raw then
  local entry = cjson.decode(raw)
  qty = entry.quantity + 1
  price = entry.price
end
redis.call('HSET', key, field, cjson.encode({quantity = qty, price = price}))
redis.call('EXPIRE', key, ttl)

local total = 0
for _, v in ipairs(redis.call('HVALS', key)) do
  total = total + cjson.decode(v).quantity
end

return total
`)

// cartEntryPayload is the JSON shape stored per hash field.
type cartEntryPayload struct {
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// cartStore implements the repository.CartStore interface on a Redis hash,
// one hash per session, one field per product.
type cartStore struct {
	client *redis.Client
	cfg    *config.Config
}

// NewCartStore is the constructor for cartStore.
func NewCartStore(client *redis.Client, cfg *config.Config) repository.CartStore {
	return &cartStore{
		client: client,
		cfg:    cfg,
	}
}

func (s *cartStore) key(sessionID string) string {
	return cartKeyPrefix + sessionID
}

// AddItem increments the quantity of a product in the session cart and
// returns the cart's total item count. The price is recorded on first
// add only.
func (s *cartStore) AddItem(ctx context.Context, sessionID, productID string, price decimal.Decimal) (int, error) {
	ttlSeconds := int(s.cfg.Cart.TTL.Seconds())

	total, err := addItemScript.Run(ctx, s.client,
		[]string{s.key(sessionID)},
		productID, price.String(), ttlSeconds,
	).Int()
	if err != nil {
		return 0, errors.Wrap(err, "failed to add cart item")
	}

	return total, nil
}

// RemoveItem drops a product from the session cart. Removing a product
// that is not in the cart is a no-op.
func (s *cartStore) RemoveItem(ctx context.Context, sessionID, productID string) error {
	if err := s.client.HDel(ctx, s.key(sessionID), productID).Err(); err != nil {
		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// Entries returns every entry in the session cart. A missing cart yields
// an empty slice.
func (s *cartStore) Entries(ctx context.Context, sessionID string) ([]entity.CartEntry, error) {
	raw, err := s.client.HGetAll(ctx, s.key(sessionID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart entries")
	}

	entries := make([]entity.CartEntry, 0, len(raw))
	for productID, payload := range raw {
		var entryP cartEntryPayload
		if err := json.Unmarshal([]byte(payload), &entryP); err != nil {
			return nil, errors.Wrap(err, "failed to decode cart entry")
		}

		price, err := decimal.NewFromString(entryP.Price)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse cart entry price")
		}

		entries = append(entries, entity.CartEntry{
			ProductID: productID,
			Quantity:  entryP.Quantity,
			Price:     price,
		})
	}

	return entries, nil
}

// Clear removes the whole session cart.
func (s *cartStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

package storage

import (
	"context"
	"database/sql"
	"strconv"

	"campus-canteen/internal/service"

	"github.com/redis/go-redis/v9"
)

const keyCounterLoad = "counter:load"

var _ service.CounterLoadStore = (*CounterStore)(nil)

// CounterStore keeps the open-order count per pickup counter in Postgres and
// mirrors it into a Redis hash for quick board reads.
type CounterStore struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewCounterStore(db *sql.DB, rdb *redis.Client) *CounterStore {
	return &CounterStore{db: db, rdb: rdb, ctx: context.Background()}
}

func (s *CounterStore) AddOpenOrder(counterNo int) error {
	_, err := s.db.Exec(`
		INSERT INTO counter_load (counter_no, open_orders) VALUES ($1, 1)
		ON CONFLICT (counter_no) DO UPDATE SET open_orders = counter_load.open_orders + 1
	`, counterNo)
	if err != nil {
		return err
	}
	return s.mirror(counterNo)
}

func (s *CounterStore) CloseOpenOrder(counterNo int) error {
	_, err := s.db.Exec(`
		UPDATE counter_load SET open_orders = GREATEST(open_orders - 1, 0)
		WHERE counter_no = $1
	`, counterNo)
	if err != nil {
		return err
	}
	return s.mirror(counterNo)
}

func (s *CounterStore) mirror(counterNo int) error {
	var open int
	err := s.db.QueryRow(`
		SELECT COALESCE(open_orders, 0) FROM counter_load WHERE counter_no = $1
	`, counterNo).Scan(&open)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	return s.rdb.HSet(s.ctx, keyCounterLoad, strconv.Itoa(counterNo), open).Err()
}

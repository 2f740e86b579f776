package inspection

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/eleven-am/uxlens/internal/shared"
	"github.com/redis/go-redis/v9"
)

const DefaultResultTTL = time.Hour

// Store issues per-session request sequence numbers and keeps the latest
// accepted report of each session.
type Store interface {
	Next(ctx context.Context, sessionID string) (int64, error)
	Latest(ctx context.Context, sessionID string) (int64, error)
	// Save stores r only if r.Sequence is still the session's latest sequence.
	Save(ctx context.Context, r *Report) error
	Get(ctx context.Context, sessionID string) (*Report, error)
}

type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisStore(redisClient *redis.Client, ttl time.Duration) *RedisStore {
	if ttl == 0 {
		ttl = DefaultResultTTL
	}
	return &RedisStore{
		redis: redisClient,
		ttl:   ttl,
	}
}

func (s *RedisStore) Next(ctx context.Context, sessionID string) (int64, error) {
	key := sequenceKey(sessionID)

	pipe := s.redis.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (s *RedisStore) Latest(ctx context.Context, sessionID string) (int64, error) {
	seq, err := s.redis.Get(ctx, sequenceKey(sessionID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return seq, err
}

// saveIfCurrent writes the result only while the sequence key still holds
// the caller's sequence number.
var saveIfCurrent = redis.NewScript(`
local current = tonumber(redis.call("GET", KEYS[1]) or "0")
if current ~= tonumber(ARGV[1]) then
	return 0
end
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
return 1
`)

func (s *RedisStore) Save(ctx context.Context, r *Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}

	keys := []string{sequenceKey(r.SessionID), resultKey(r.SessionID)}
	ok, err := saveIfCurrent.Run(ctx, s.redis, keys, r.Sequence, data, s.ttl.Milliseconds()).Int()
	if err != nil {
		return err
	}
	if ok == 0 {
		return ErrSuperseded
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Report, error) {
	data, err := s.redis.Get(ctx, resultKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// MemoryStore keeps session state in process. Entries do not expire.
type MemoryStore struct {
	mu      sync.Mutex
	seq     map[string]int64
	reports map[string]*Report
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		seq:     make(map[string]int64),
		reports: make(map[string]*Report),
	}
}

func (s *MemoryStore) Next(_ context.Context, sessionID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[sessionID]++
	return s.seq[sessionID], nil
}

func (s *MemoryStore) Latest(_ context.Context, sessionID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq[sessionID], nil
}

func (s *MemoryStore) Save(_ context.Context, r *Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq[r.SessionID] != r.Sequence {
		return ErrSuperseded
	}
	s.reports[r.SessionID] = r
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[sessionID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return r, nil
}

var (
	_ Store = (*RedisStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

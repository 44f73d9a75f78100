// Package journal records board events to an external trace sink.
//
// The journal is write-only from the board's point of view: nothing in the
// app reads it back to restore a board. It exists so a session can be
// inspected afterwards (redis-cli LRANGE tally:journal 0 -1).
package journal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/palemoky/doudizhu-tally/internal/config"
	"github.com/palemoky/doudizhu-tally/internal/logger"
	"github.com/palemoky/doudizhu-tally/internal/tally"
)

const (
	queueSize    = 256
	writeTimeout = 2 * time.Second
	dialTimeout  = 2 * time.Second
)

// Recorder receives board events.
type Recorder interface {
	Record(ev tally.Event)
	Close() error
}

// Nop discards everything.
type Nop struct{}

func (Nop) Record(tally.Event) {}
func (Nop) Close() error       { return nil }

// Entry is one journaled event.
type Entry struct {
	Session   string
	Kind      tally.EventKind
	Row       int
	Col       int
	Delta     int
	Remaining int
	At        time.Time
}

// Encode 使用 Protobuf 编码记录
func Encode(e Entry) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"session":   e.Session,
		"kind":      e.Kind.String(),
		"row":       e.Row,
		"col":       e.Col,
		"delta":     e.Delta,
		"remaining": e.Remaining,
		"at":        e.At.UnixMilli(),
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

// Decode 从 Protobuf 字节解码记录
func Decode(data []byte) (Entry, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return Entry{}, err
	}

	fields := s.GetFields()
	kindName := fields["kind"].GetStringValue()
	kind, ok := tally.ParseEventKind(kindName)
	if !ok {
		return Entry{}, fmt.Errorf("unknown event kind %q", kindName)
	}

	num := func(name string) int { return int(fields[name].GetNumberValue()) }
	return Entry{
		Session:   fields["session"].GetStringValue(),
		Kind:      kind,
		Row:       num("row"),
		Col:       num("col"),
		Delta:     num("delta"),
		Remaining: num("remaining"),
		At:        time.UnixMilli(int64(fields["at"].GetNumberValue())),
	}, nil
}

// Open returns a Redis recorder when the journal is enabled, Nop otherwise.
func Open(cfg config.JournalConfig) (Recorder, error) {
	if !cfg.Enabled {
		return Nop{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("连接 Redis 失败: %w", err)
	}

	return NewRedisRecorder(client, cfg.Key, cfg.MaxLen), nil
}

// RedisRecorder 将操作记录写入 Redis 列表，最新的在前
type RedisRecorder struct {
	client  *redis.Client
	key     string
	maxLen  int64
	session string
	now     func() time.Time

	mu     sync.RWMutex
	closed bool
	queue  chan Entry
	done   chan struct{}
}

// NewRedisRecorder starts a recorder that owns client. A maxLen of 0 keeps
// every entry.
func NewRedisRecorder(client *redis.Client, key string, maxLen int64) *RedisRecorder {
	r := &RedisRecorder{
		client:  client,
		key:     key,
		maxLen:  maxLen,
		session: uuid.NewString(),
		now:     time.Now,
		queue:   make(chan Entry, queueSize),
		done:    make(chan struct{}),
	}
	go r.run()
	return r
}

// Session returns the id stamped on every entry of this recorder.
func (r *RedisRecorder) Session() string { return r.session }

// Record queues ev without blocking. Events are dropped when the queue is
// full or the recorder is closed.
func (r *RedisRecorder) Record(ev tally.Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return
	}

	entry := Entry{
		Session:   r.session,
		Kind:      ev.Kind,
		Row:       ev.Row,
		Col:       ev.Col,
		Delta:     ev.Delta,
		Remaining: ev.Remaining,
		At:        r.now(),
	}
	select {
	case r.queue <- entry:
	default:
		logger.LogError("journal queue full, dropping %s event", ev.Kind)
	}
}

func (r *RedisRecorder) run() {
	defer close(r.done)
	for entry := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := r.Write(ctx, entry); err != nil {
			logger.LogError("journal write failed: %v", err)
		}
		cancel()
	}
}

// Write stores one entry synchronously.
func (r *RedisRecorder) Write(ctx context.Context, e Entry) error {
	data, err := Encode(e)
	if err != nil {
		return fmt.Errorf("编码记录失败: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, r.key, data)
	if r.maxLen > 0 {
		pipe.LTrim(ctx, r.key, 0, r.maxLen-1)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// Recent returns up to n entries, newest first.
func (r *RedisRecorder) Recent(ctx context.Context, n int64) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	raw, err := r.client.LRange(ctx, r.key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		e, err := Decode([]byte(item))
		if err != nil {
			return nil, fmt.Errorf("解码记录失败: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Close flushes queued entries and closes the Redis client.
func (r *RedisRecorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	<-r.done
	return r.client.Close()
}

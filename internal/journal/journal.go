// Package journal persists published webhook payloads into a capped Redis
// list so harness UIs and tests can replay recent traffic. It is an
// optional emitter subscriber; the in-memory stores stay the source of
// truth either way.
package journal

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"omni/wa-simulator/internal/constant"
	"omni/wa-simulator/internal/domain"
)

type Journal struct {
	rdb    *redis.Client
	key    string
	max    int64
	logger *log.Logger
}

func New(rdb *redis.Client, maxItems int, logger *log.Logger) *Journal {
	if maxItems <= 0 {
		maxItems = 1000
	}
	return &Journal{
		rdb:    rdb,
		key:    constant.JournalKey,
		max:    int64(maxItems),
		logger: logger,
	}
}

// Handle is the emitter subscriber: newest payload first, trimmed to the
// configured cap.
func (j *Journal) Handle(payload domain.WebhookPayload) error {
	ctx, cancel := context.WithTimeout(context.Background(), constant.RedisWriteTimeout)
	defer cancel()

	b, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "journal: failed to marshal payload")
	}

	pipe := j.rdb.TxPipeline()
	pipe.LPush(ctx, j.key, b)
	pipe.LTrim(ctx, j.key, 0, j.max-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "journal: failed to append payload")
	}
	return nil
}

// Recent returns journaled payloads newest-first plus the journal length.
func (j *Journal) Recent(ctx context.Context, limit, offset int) ([]domain.WebhookPayload, int64, error) {
	total, err := j.rdb.LLen(ctx, j.key).Result()
	if err != nil {
		return nil, 0, errors.Wrap(err, "journal: failed to read length")
	}

	if limit <= 0 {
		limit = 10
	}
	raw, err := j.rdb.LRange(ctx, j.key, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, 0, errors.Wrap(err, "journal: failed to read range")
	}

	out := make([]domain.WebhookPayload, 0, len(raw))
	for _, item := range raw {
		var p domain.WebhookPayload
		if err := json.Unmarshal([]byte(item), &p); err != nil {
			j.logger.Warnf("journal: skipping undecodable entry: %v", err)
			continue
		}
		out = append(out, p)
	}
	return out, total, nil
}

// Clear drops the journal. Idempotent.
func (j *Journal) Clear(ctx context.Context) error {
	return j.rdb.Del(ctx, j.key).Err()
}

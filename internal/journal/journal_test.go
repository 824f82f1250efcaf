package journal

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omni/wa-simulator/internal/constant"
	"omni/wa-simulator/internal/domain"
)

func newTestJournal(t *testing.T, maxItems int) (*Journal, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return New(rdb, maxItems, logger), mr
}

func statusPayload(entryID, messageID string) domain.WebhookPayload {
	return domain.WebhookPayload{
		Entry: []domain.Entry{{
			ID: entryID,
			Changes: []domain.Change{{
				Value: domain.ChangeValue{
					MessagingProduct: constant.MessagingProduct,
					Statuses: []domain.StatusUpdate{{
						ID:     messageID,
						Status: domain.StatusSent,
					}},
				},
				Field: constant.ChangeField,
			}},
		}},
	}
}

func TestHandle_AppendsNewestFirst(t *testing.T) {
	j, _ := newTestJournal(t, 100)

	require.NoError(t, j.Handle(statusPayload("entry.1", "wamid.1")))
	require.NoError(t, j.Handle(statusPayload("entry.2", "wamid.2")))

	got, total, err := j.Recent(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, got, 2)
	assert.Equal(t, "entry.2", got[0].Entry[0].ID)
	assert.Equal(t, "entry.1", got[1].Entry[0].ID)
}

func TestHandle_TrimsToCap(t *testing.T) {
	j, _ := newTestJournal(t, 3)

	for i := 0; i < 10; i++ {
		require.NoError(t, j.Handle(statusPayload("entry.1", "wamid.1")))
	}

	_, total, err := j.Recent(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestRecent_Pagination(t *testing.T) {
	j, _ := newTestJournal(t, 100)

	for i := 0; i < 5; i++ {
		require.NoError(t, j.Handle(statusPayload("entry.1", "wamid.1")))
	}

	page, total, err := j.Recent(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, page, 2)

	tail, _, err := j.Recent(context.Background(), 10, 4)
	require.NoError(t, err)
	assert.Len(t, tail, 1)
}

func TestRecent_SkipsUndecodableEntries(t *testing.T) {
	j, mr := newTestJournal(t, 100)

	require.NoError(t, j.Handle(statusPayload("entry.1", "wamid.1")))
	_, err := mr.Lpush(constant.JournalKey, "not-json")
	require.NoError(t, err)

	got, total, err := j.Recent(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, got, 1)
	assert.Equal(t, "entry.1", got[0].Entry[0].ID)
}

func TestClear(t *testing.T) {
	j, _ := newTestJournal(t, 100)

	require.NoError(t, j.Handle(statusPayload("entry.1", "wamid.1")))
	require.NoError(t, j.Clear(context.Background()))
	require.NoError(t, j.Clear(context.Background()))

	_, total, err := j.Recent(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestHandle_ReportsRedisFailure(t *testing.T) {
	j, mr := newTestJournal(t, 100)

	mr.Close()
	err := j.Handle(statusPayload("entry.1", "wamid.1"))
	assert.Error(t, err)
}

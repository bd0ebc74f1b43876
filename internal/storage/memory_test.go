package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/shorturl/internal/models"
)

func TestMemoryStorage_Save(t *testing.T) {
	storage := NewMemoryStorage(zap.NewNop())
	ctx := context.Background()

	record, err := storage.Save(ctx, "https://www.example.com")
	require.NoError(t, err)
	assert.Equal(t, models.URLRecord{OriginalURL: "https://www.example.com", ShortURL: 1}, record)

	record, err = storage.Save(ctx, "https://www.freecodecamp.org")
	require.NoError(t, err)
	assert.Equal(t, 2, record.ShortURL)

	count, err := storage.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemoryStorage_SaveConflict(t *testing.T) {
	storage := NewMemoryStorage(zap.NewNop())
	ctx := context.Background()

	first, err := storage.Save(ctx, "https://example.com")
	require.NoError(t, err)

	// Повторное сохранение возвращает существующую запись
	second, err := storage.Save(ctx, "https://example.com")
	assert.ErrorIs(t, err, ErrOriginalURLConflict)
	assert.Equal(t, first, second)

	// Сравнение строк точное, без нормализации
	third, err := storage.Save(ctx, "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, 2, third.ShortURL)

	count, err := storage.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemoryStorage_Get(t *testing.T) {
	storage := NewMemoryStorage(zap.NewNop())
	ctx := context.Background()

	_, err := storage.Save(ctx, "https://example.com")
	require.NoError(t, err)

	tests := []struct {
		name    string
		shortID int
		want    string
		wantErr error
	}{
		{name: "Existing record", shortID: 1, want: "https://example.com"},
		{name: "Zero", shortID: 0, wantErr: ErrURLNotFound},
		{name: "Negative", shortID: -1, wantErr: ErrURLNotFound},
		{name: "Out of range", shortID: 999999, wantErr: ErrURLNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := storage.Get(ctx, tt.shortID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, record.OriginalURL)
		})
	}
}

func TestMemoryStorage_CheckConnection(t *testing.T) {
	assert.NoError(t, NewMemoryStorage(zap.NewNop()).CheckConnection(context.Background()))
	assert.Error(t, (&MemoryStorage{}).CheckConnection(context.Background()))
}

func TestMemoryStorage_ConcurrentSameURL(t *testing.T) {
	storage := NewMemoryStorage(zap.NewNop())
	ctx := context.Background()

	const workers = 100
	ids := make([]int, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			record, err := storage.Save(ctx, "https://example.com")
			if err != nil {
				assert.ErrorIs(t, err, ErrOriginalURLConflict)
			}
			ids[i] = record.ShortURL
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, 1, id)
	}
	count, err := storage.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryStorage_ConcurrentDistinctURLs(t *testing.T) {
	storage := NewMemoryStorage(zap.NewNop())
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := storage.Save(ctx, fmt.Sprintf("https://example.com/%d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool)
	for id := 1; id <= workers; id++ {
		record, err := storage.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, record.ShortURL)
		assert.False(t, seen[record.ShortURL])
		seen[record.ShortURL] = true
	}
}

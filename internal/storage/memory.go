package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/InQaaaaGit/shorturl/internal/models"
	"go.uber.org/zap"
)

var (
	_ URLStorage        = (*MemoryStorage)(nil)
	_ ConnectionChecker = (*MemoryStorage)(nil)
)

// MemoryStorage реализует URLStorage в памяти процесса.
// records[i] хранит запись с идентификатором i+1, byOriginal индексирует записи по исходному URL.
// Оба индекса изменяются только под mu.
type MemoryStorage struct {
	mu         sync.RWMutex
	records    []models.URLRecord
	byOriginal map[string]int
	logger     *zap.Logger
}

// NewMemoryStorage создает новый экземпляр MemoryStorage
func NewMemoryStorage(logger *zap.Logger) *MemoryStorage {
	return &MemoryStorage{
		records:    make([]models.URLRecord, 0),
		byOriginal: make(map[string]int),
		logger:     logger,
	}
}

// Save сохраняет URL, если он еще не сохранен
func (ms *MemoryStorage) Save(ctx context.Context, originalURL string) (models.URLRecord, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if id, exists := ms.byOriginal[originalURL]; exists {
		return ms.records[id-1], ErrOriginalURLConflict
	}

	record := models.URLRecord{
		OriginalURL: originalURL,
		ShortURL:    len(ms.records) + 1,
	}
	ms.records = append(ms.records, record)
	ms.byOriginal[originalURL] = record.ShortURL

	ms.logger.Debug("URL saved",
		zap.String("original_url", record.OriginalURL),
		zap.Int("short_url", record.ShortURL))

	return record, nil
}

// Get получает запись по короткому идентификатору
func (ms *MemoryStorage) Get(ctx context.Context, shortID int) (models.URLRecord, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	if shortID < 1 || shortID > len(ms.records) {
		return models.URLRecord{}, ErrURLNotFound
	}

	return ms.records[shortID-1], nil
}

// Count возвращает количество сохраненных записей
func (ms *MemoryStorage) Count(ctx context.Context) (int, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	return len(ms.records), nil
}

// CheckConnection проверяет доступность хранилища
func (ms *MemoryStorage) CheckConnection(ctx context.Context) error {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	if ms.byOriginal == nil {
		return fmt.Errorf("storage is not initialized")
	}

	return nil
}

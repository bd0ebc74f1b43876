package storage

import (
	"context"

	"github.com/InQaaaaGit/shorturl/internal/models"
)

// URLStorage определяет интерфейс для хранения соответствий URL.
// Проверка наличия и добавление записи выполняются в Save атомарно.
type URLStorage interface {
	// Save добавляет запись для originalURL и назначает ей следующий идентификатор.
	// Если такой URL уже сохранен, возвращает существующую запись и ErrOriginalURLConflict.
	Save(ctx context.Context, originalURL string) (models.URLRecord, error)
	// Get получает запись по короткому идентификатору
	Get(ctx context.Context, shortID int) (models.URLRecord, error)
	// Count возвращает количество записей
	Count(ctx context.Context) (int, error)
}

// ConnectionChecker определяет интерфейс для проверки доступности хранилища
type ConnectionChecker interface {
	// CheckConnection проверяет доступность хранилища
	CheckConnection(ctx context.Context) error
}

package storage

import "errors"

// ErrURLNotFound возвращается, когда запись не найдена в хранилище
var ErrURLNotFound = errors.New("URL not found")

// ErrOriginalURLConflict возвращается, когда original_url уже сохранен.
// Вместе с ошибкой хранилище отдает существующую запись.
var ErrOriginalURLConflict = errors.New("original URL conflict")

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL объединяет все ошибки проверки URL
	ErrInvalidURL = errors.New("invalid url")
	// ErrMalformedURL возвращается, если строка не является абсолютным URL
	ErrMalformedURL = errors.New("malformed url")
	// ErrUnresolvableHost возвращается, если хост URL не разрешается в адрес
	ErrUnresolvableHost = errors.New("unresolvable host")
)

// ValidationError описывает отклоненный URL. Причина доступна через errors.Is
// (ErrMalformedURL или ErrUnresolvableHost), сама ошибка всегда соответствует ErrInvalidURL.
type ValidationError struct {
	URL string
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid url %q: %v", e.URL, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is позволяет сравнивать ошибку с ErrInvalidURL
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidURL
}

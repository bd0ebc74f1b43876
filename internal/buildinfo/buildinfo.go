// Package buildinfo хранит версию, дату сборки и commit, переданные через -ldflags.
package buildinfo

import (
	"fmt"

	"go.uber.org/zap"
)

const notAvailable = "N/A"

// Info содержит информацию о сборке приложения
type Info struct {
	Version string
	Date    string
	Commit  string
}

// DefaultInfo возвращает информацию о сборке по умолчанию
func DefaultInfo() *Info {
	return NewInfo("", "", "")
}

// NewInfo создает информацию о сборке, незаданные значения заменяются на "N/A"
func NewInfo(version, date, commit string) *Info {
	return &Info{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}

// Fields возвращает поля для структурированного лога
func (info *Info) Fields() []zap.Field {
	return []zap.Field{
		zap.String("version", info.Version),
		zap.String("date", info.Date),
		zap.String("commit", info.Commit),
	}
}

// Log записывает информацию о сборке в лог при старте сервиса
func (info *Info) Log(logger *zap.Logger) {
	logger.Info("Build info", info.Fields()...)
}

// String возвращает строковое представление информации о сборке
func (info *Info) String() string {
	return fmt.Sprintf("Version: %s, Date: %s, Commit: %s", info.Version, info.Date, info.Commit)
}

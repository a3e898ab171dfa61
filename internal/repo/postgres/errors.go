package postgres

import (
	"errors"
	"fmt"
)

// ErrRepository — общий признак ошибки слоя хранения (errors.Is).
var ErrRepository = errors.New("repository error")

// RepositoryError — ошибка операции с БД. Op — шаг, на котором всё сломалось.
// Деления на временные/постоянные здесь нет: решает вызывающий.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

func (e *RepositoryError) Is(target error) bool { return target == ErrRepository }

func wrap(op string, err error) error {
	return &RepositoryError{Op: op, Err: err}
}

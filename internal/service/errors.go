package service

import (
	"errors"
	"fmt"
)

var (
	ErrNoSearch         = errors.New("no search performed yet")
	ErrInvalidYearRange = errors.New("invalid year range")
	ErrNoResults        = errors.New("filters returned no results")
)

// UserInputError - некорректный ввод пользователя, текущее состояние не меняется
type UserInputError struct {
	Field   string
	Message string
}

func (e *UserInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsUserInput сообщает, вызвана ли ошибка вводом пользователя
func IsUserInput(err error) bool {
	var uerr *UserInputError
	return errors.As(err, &uerr)
}

package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/greeting_processor/internal/domain"
	"github.com/Gunvolt24/greeting_processor/internal/ports"
	"github.com/google/uuid"
)

// Проверка, что GreetingValidator удовлетворяет интерфейсу GreetingValidator.
var _ ports.GreetingValidator = (*GreetingValidator)(nil)

// ErrInvalidGreeting — базовая (sentinel error) ошибка разбора/валидации приветствия.
var ErrInvalidGreeting = errors.New("greeting validation failed")

// GreetingValidator — проверяет только то, без чего запись в БД невозможна:
// id (UUID) и created. Текстовые поля не проверяются.
type GreetingValidator struct{}

func NewGreetingValidator() *GreetingValidator { return &GreetingValidator{} }

func (v *GreetingValidator) Validate(_ context.Context, greeting *domain.Greeting) error {
	if greeting == nil {
		return fmt.Errorf("%w: приветствие не может быть nil", ErrInvalidGreeting)
	}
	// uuid.Nil получаем и при отсутствии поля id в JSON
	if greeting.MessageID == uuid.Nil {
		return fmt.Errorf("%w: id обязателен", ErrInvalidGreeting)
	}
	if greeting.Created.IsZero() {
		return fmt.Errorf("%w: created обязателен", ErrInvalidGreeting)
	}
	return nil
}

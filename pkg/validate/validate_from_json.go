package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/Gunvolt24/greeting_processor/internal/domain"
	"github.com/Gunvolt24/greeting_processor/internal/ports"
	"github.com/google/uuid"
)

// greetingFields — ровно эти ключи, регистр важен.
var greetingFields = []string{"id", "to", "from", "heading", "message", "created"}

// greetingWire — промежуточная форма: nil означает отсутствие поля или null.
type greetingWire struct {
	ID      *uuid.UUID        `json:"id"`
	To      *string           `json:"to"`
	From    *string           `json:"from"`
	Heading *string           `json:"heading"`
	Message *string           `json:"message"`
	Created *domain.NaiveTime `json:"created"`
}

// GreetingFromJSON — строгий разбор приветствия из JSON + валидация.
// Любая проблема (синтаксис, неизвестное или отсутствующее поле, null, некорректный UUID)
// оборачивает ErrInvalidGreeting.
func GreetingFromJSON(ctx context.Context, validator ports.GreetingValidator, raw []byte) (*domain.Greeting, error) {
	var object map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&object); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %w", ErrInvalidGreeting, err)
	}
	// после объекта ничего быть не должно
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidGreeting)
	}
	if object == nil {
		return nil, fmt.Errorf("%w: invalid json: expected object", ErrInvalidGreeting)
	}

	// encoding/json сопоставляет ключи без учёта регистра, поэтому набор проверяем сами
	for _, key := range slices.Sorted(maps.Keys(object)) {
		if !slices.Contains(greetingFields, key) {
			return nil, fmt.Errorf("%w: invalid json: unknown field %q", ErrInvalidGreeting, key)
		}
	}
	for _, key := range greetingFields {
		if _, ok := object[key]; !ok {
			return nil, fmt.Errorf("%w: %s обязателен", ErrInvalidGreeting, key)
		}
	}

	var wire greetingWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %w", ErrInvalidGreeting, err)
	}
	greeting, err := wire.toDomain()
	if err != nil {
		return nil, err
	}

	if err := validator.Validate(ctx, greeting); err != nil {
		return nil, err
	}
	return greeting, nil
}

func (w *greetingWire) toDomain() (*domain.Greeting, error) {
	nullField := func(name string) error {
		return fmt.Errorf("%w: %s обязателен (null)", ErrInvalidGreeting, name)
	}
	switch {
	case w.ID == nil:
		return nil, nullField("id")
	case w.To == nil:
		return nil, nullField("to")
	case w.From == nil:
		return nil, nullField("from")
	case w.Heading == nil:
		return nil, nullField("heading")
	case w.Message == nil:
		return nil, nullField("message")
	case w.Created == nil:
		return nil, nullField("created")
	}
	return &domain.Greeting{
		MessageID: *w.ID,
		To:        *w.To,
		From:      *w.From,
		Heading:   *w.Heading,
		Message:   *w.Message,
		Created:   *w.Created,
	}, nil
}

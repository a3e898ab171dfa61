package ports

import (
	"context"

	"github.com/Gunvolt24/greeting_processor/internal/domain"
)

type GreetingValidator interface {
	Validate(ctx context.Context, greeting *domain.Greeting) error
}

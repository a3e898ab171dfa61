//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/greeting_processor/internal/domain"
	"github.com/google/uuid"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного приветствия
func MakeGreeting(opts ...func(*domain.Greeting)) domain.Greeting {
	g := domain.Greeting{
		MessageID: uuid.New(),
		To:        "Bob-" + UniqSuffix(),
		From:      "Alice",
		Heading:   "Hi",
		Message:   "Hello " + UniqSuffix(),
		Created:   domain.NewNaiveTime(time.Now().UTC().Truncate(time.Microsecond)),
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

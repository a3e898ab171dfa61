//go:build integration

package testutil

import (
	"context"
	"fmt"

	pgrepo "github.com/Gunvolt24/greeting_processor/internal/repo/postgres"
)

// ApplyMigrationsGoose применяет те же вшитые миграции, что и сервис при старте.
func ApplyMigrationsGoose(ctx context.Context, dsn string) error {
	version, err := pgrepo.Migrate(ctx, dsn)
	if err != nil {
		return err
	}
	if version < 1 {
		return fmt.Errorf("unexpected schema version %d", version)
	}
	tcLogger.Printf("migrations applied, version=%d", version)
	return nil
}

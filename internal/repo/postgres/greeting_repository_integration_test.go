//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/greeting_processor/internal/domain"
	pgrepo "github.com/Gunvolt24/greeting_processor/internal/repo/postgres"
	"github.com/Gunvolt24/greeting_processor/internal/testutil"
	"github.com/google/uuid"
)

// startDB — контейнер Postgres с применёнными миграциями.
func startDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	require.NoError(t, testutil.ApplyMigrationsGoose(ctxStart, pg.DSN))
	return pg.Pool
}

func countRows(ctx context.Context, t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&n))
	return n
}

// 1) Store пишет greeting и маркер ikke_paa_logg, ссылающийся на него
func TestRepo_Store_WritesPair_TC(t *testing.T) {
	t.Parallel()
	pool := startDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := pgrepo.NewGreetingRepository(pool)

	g := testutil.MakeGreeting(func(g *domain.Greeting) {
		g.MessageID = uuid.MustParse("3fa85f64-5717-4562-b3fc-2c963f66afa6")
		g.Created = domain.NewNaiveTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	})
	require.NoError(t, repo.Store(ctx, &g))

	var (
		id      int64
		msgID   uuid.UUID
		from    string
		created time.Time
	)
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT id, message_id, "from", created FROM greeting`).Scan(&id, &msgID, &from, &created))
	require.Equal(t, g.MessageID, msgID)
	require.Equal(t, g.From, from)
	require.True(t, g.Created.Time.Equal(created))

	var markerID int64
	require.NoError(t, pool.QueryRow(ctx, `SELECT greeting_id FROM ikke_paa_logg`).Scan(&markerID))
	require.Equal(t, id, markerID)
}

// 2) Повторная доставка того же сообщения — вторая пара строк
func TestRepo_Store_RedeliveryCreatesSecondPair_TC(t *testing.T) {
	t.Parallel()
	pool := startDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := pgrepo.NewGreetingRepository(pool)

	g := testutil.MakeGreeting()
	require.NoError(t, repo.Store(ctx, &g))
	require.NoError(t, repo.Store(ctx, &g))

	require.Equal(t, 2, countRows(ctx, t, pool, "greeting"))
	require.Equal(t, 2, countRows(ctx, t, pool, "ikke_paa_logg"))
}

// 3) Ошибка вставки маркера откатывает и greeting
func TestRepo_Store_Atomicity_TC(t *testing.T) {
	t.Parallel()
	pool := startDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// любой маркер теперь нарушает ограничение
	_, err := pool.Exec(ctx, `ALTER TABLE ikke_paa_logg ADD CONSTRAINT reject_all CHECK (greeting_id < 0)`)
	require.NoError(t, err)

	repo := pgrepo.NewGreetingRepository(pool)

	g := testutil.MakeGreeting()
	err = repo.Store(ctx, &g)
	require.Error(t, err)
	require.True(t, errors.Is(err, pgrepo.ErrRepository))

	var repoErr *pgrepo.RepositoryError
	require.True(t, errors.As(err, &repoErr))
	require.Equal(t, "insert ikke_paa_logg", repoErr.Op)

	require.Equal(t, 0, countRows(ctx, t, pool, "greeting"))
	require.Equal(t, 0, countRows(ctx, t, pool, "ikke_paa_logg"))
}

// 4) generate_logg на пустой таблице маркеров — без ошибок и без записей
func TestRepo_GenerateLogg_EmptyMarkers_TC(t *testing.T) {
	t.Parallel()
	pool := startDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logg := pgrepo.NewLoggRepository(pool)
	require.NoError(t, logg.GenerateLogg(ctx))

	entries, err := logg.ListLogEntries(ctx, 10, 0)
	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Empty(t, entries)
}

// 5) generate_logg переносит маркеры в logg; ListLogEntries — новые первыми, пагинация
func TestRepo_GenerateLogg_MovesMarkers_TC(t *testing.T) {
	t.Parallel()
	pool := startDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := pgrepo.NewGreetingRepository(pool)
	logg := pgrepo.NewLoggRepository(pool)

	for i := 0; i < 3; i++ {
		g := testutil.MakeGreeting()
		require.NoError(t, repo.Store(ctx, &g))
	}

	require.NoError(t, logg.GenerateLogg(ctx))
	require.Equal(t, 0, countRows(ctx, t, pool, "ikke_paa_logg"))
	require.Equal(t, 3, countRows(ctx, t, pool, "logg"))

	// повторный запуск ничего не добавляет
	require.NoError(t, logg.GenerateLogg(ctx))
	require.Equal(t, 3, countRows(ctx, t, pool, "logg"))

	all, err := logg.ListLogEntries(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Greater(t, all[0].ID, all[1].ID)
	require.Greater(t, all[1].ID, all[2].ID)
	require.False(t, all[0].Created.IsZero())

	page, err := logg.ListLogEntries(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, all[1].ID, page[0].ID)
}

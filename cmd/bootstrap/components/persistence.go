package components

import (
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/infra/readstore"
	"hotel-booking/internal/infra/storage/memory"
	"hotel-booking/internal/infra/uow"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

var PostgresPersistenceModule = fx.Module("persistence/postgres",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		NewTxBeginner,
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Booking views
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		memory.NewStore,
		func(s *memory.Store) shared.UnitOfWork { return s },
		func(s *memory.Store) queries.BookingReadStore { return s },
	),
)

func NewSQLQueries() *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) uow.TxBeginner {
	return pool
}

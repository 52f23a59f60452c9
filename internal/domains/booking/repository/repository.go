package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/booking/model"
	roomModel "hms/internal/domains/room/model"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	gRepo "hms/shared/repository"
	"hms/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CreateAndMarkRoom(ctx context.Context, booking model.Booking) error
	DeleteAndReleaseRoom(ctx context.Context, booking model.Booking) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	roomRepo gRepo.Repository[roomModel.Room]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		roomRepo:   gRepo.NewRepository[roomModel.Room](roomModel.EntityName, roomModel.TableName, roomModel.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreateAndMarkRoom inserts the booking and flips the referenced room to
// booked in a single transaction, so a failed status write never leaves an
// orphaned booking behind.
func (repo *repositoryImpl) CreateAndMarkRoom(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateAndMarkRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	sqltx, err := repo.db.Write.Beginx()
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := sqltx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = repo.InsertTx(ctx, sqltx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = repo.setRoomStatusTx(ctx, sqltx, booking, constant.RoomStatusBooked); err != nil {
		return err
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteAndReleaseRoom removes the booking and releases its room back to
// available in a single transaction.
func (repo *repositoryImpl) DeleteAndReleaseRoom(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.DeleteAndReleaseRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	sqltx, err := repo.db.Write.Beginx()
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := sqltx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = repo.DeleteTx(ctx, sqltx, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if err = repo.setRoomStatusTx(ctx, sqltx, booking, constant.RoomStatusAvailable); err != nil {
		return err
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) setRoomStatusTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking, status string) error {
	updatedFields := map[string]any{
		roomModel.FieldStatus:    status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: booking.UserID,
	}

	if err := repo.roomRepo.UpdateTx(ctx, sqltx, updatedFields, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
		return fmt.Errorf("failed to update room status: %w", err)
	}

	return nil
}

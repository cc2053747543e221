package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBooking/pkg/psqlbuilder"
)

// exclusion_violation: сработал EXCLUDE constraint bookings_no_overlap
const pqExclusionViolation = "23P01"

var bookingColumns = []string{
	"b.id",
	"b.user_id",
	"b.room_id",
	"b.check_in",
	"b.check_out",
	"b.total_price",
	"b.status",
	"b.payment_id",
	"b.created_at",
	"b.updated_at",
}

var roomColumns = []string{
	"r.id",
	"r.name",
	"r.price_per_night",
	"r.capacity",
	"r.is_available",
}

var userColumns = []string{
	"u.id",
	"u.name",
	"u.email",
	"u.role",
}

// Repository репозиторий бронирований в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование
// Пересечение с активным бронированием той же комнаты отсекается EXCLUDE constraint и возвращается как ErrOverlap
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"room_id",
			"check_in",
			"check_out",
			"total_price",
			"status",
			"payment_id",
		).
		Values(
			booking.UserID,
			booking.RoomID,
			booking.CheckIn,
			booking.CheckOut,
			booking.TotalPrice,
			string(booking.Status),
			booking.PaymentID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		if isExclusionViolation(err) {
			return nil, ErrOverlap
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
// ownerID ограничивает поиск бронированиями пользователя, nil - без ограничения
func (r *Repository) GetByID(ctx context.Context, id int64, ownerID *int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.id": id})

	if ownerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.user_id": *ownerID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(bookingDest(&booking)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return &booking, nil
}

// CountOverlapping считает активные бронирования комнаты, пересекающие [checkIn, checkOut)
// Внутри транзакции найденные строки блокируются FOR UPDATE
func (r *Repository) CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut domain.Date, excludeID *int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("b.id").
		From("bookings b").
		Where(squirrel.Eq{"b.room_id": roomID}).
		Where(squirrel.Eq{"b.status": statusStrings(domain.ActiveStatuses)}).
		Where(squirrel.Lt{"b.check_in": checkOut}).
		Where(squirrel.Gt{"b.check_out": checkIn})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.id": *excludeID})
	}

	// FOR UPDATE нельзя совместить с COUNT, поэтому считаем строки на стороне приложения
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - rows error: %w", ErrScanRow, err)
	}

	return count, nil
}

// ListActiveByRoom получает активные бронирования комнаты, пересекающие [from, to), по дате заезда
func (r *Repository) ListActiveByRoom(ctx context.Context, roomID int64, from, to domain.Date) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.room_id": roomID}).
		Where(squirrel.Eq{"b.status": statusStrings(domain.ActiveStatuses)}).
		Where(squirrel.Lt{"b.check_in": to}).
		Where(squirrel.Gt{"b.check_out": from}).
		OrderBy("b.check_in", "b.id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByRoom - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Booking, 0)
	for rows.Next() {
		var booking domain.Booking
		if err := rows.Scan(bookingDest(&booking)...); err != nil {
			return nil, fmt.Errorf("%w: ListActiveByRoom - scan booking: %w", ErrScanRow, err)
		}
		result = append(result, &booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByRoom - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// UpdateStatus меняет статус бронирования, если текущий статус равен from
// paymentID == nil оставляет существующее значение
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus, paymentID *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", string(to)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": string(from)})

	if paymentID != nil {
		updateBuilder = updateBuilder.Set("payment_id", *paymentID)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isExclusionViolation(err) {
			return ErrOverlap
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	return r.checkAffected(ctx, result, id, "UpdateStatus")
}

// Cancel переводит бронирование в cancelled, только если оно ещё не в терминальном статусе
// ownerID ограничивает отмену бронированиями пользователя, nil - без ограничения
func (r *Repository) Cancel(ctx context.Context, id int64, ownerID *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", string(domain.StatusCancelled)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)})

	if ownerID != nil {
		updateBuilder = updateBuilder.Where(squirrel.Eq{"user_id": *ownerID})
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	return r.checkAffected(ctx, result, id, "Cancel")
}

// Delete физически удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// GetDetails получает бронирование вместе с комнатой
// withUser добавляет данные пользователя (для администратора)
func (r *Repository) GetDetails(ctx context.Context, id int64, withUser bool) (*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsSelect(withUser).
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	details, err := scanDetails(rows, withUser)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrBookingNotFound
	}

	return details[0], nil
}

// ListDetailsByUser получает бронирования пользователя, новые сначала
func (r *Repository) ListDetailsByUser(ctx context.Context, userID int64) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsSelect(false).
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.created_at DESC", "b.id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDetailsByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetailsByUser - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDetails(rows, false)
}

// ListDetails получает все бронирования с комнатой и пользователем, новые сначала
func (r *Repository) ListDetails(ctx context.Context) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsSelect(true).
		OrderBy("b.created_at DESC", "b.id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDetails(rows, true)
}

// Stats считает бронирования по статусам и выручку одним запросом
// Выручка - сумма total_price по confirmed и completed
func (r *Repository) Stats(ctx context.Context) (*domain.BookingStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'pending')",
		"COUNT(*) FILTER (WHERE status = 'confirmed')",
		"COUNT(*) FILTER (WHERE status = 'cancelled')",
		"COUNT(*) FILTER (WHERE status = 'completed')",
		"COALESCE(SUM(total_price) FILTER (WHERE status IN ('confirmed', 'completed')), 0)",
	).
		From("bookings").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Stats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.BookingStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.Total,
		&stats.Pending,
		&stats.Confirmed,
		&stats.Cancelled,
		&stats.Completed,
		&stats.Revenue,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Stats - scan stats: %w", ErrScanRow, err)
	}

	return &stats, nil
}

// checkAffected различает "нет такого бронирования" и "статус уже изменился"
func (r *Repository) checkAffected(ctx context.Context, result sql.Result, id int64, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}
	if rowsAffected > 0 {
		return nil
	}

	if _, err := r.GetByID(ctx, id, nil); err != nil {
		return err
	}
	return ErrStatusChanged
}

func detailsSelect(withUser bool) squirrel.SelectBuilder {
	columns := append(append([]string{}, bookingColumns...), roomColumns...)
	if withUser {
		columns = append(columns, userColumns...)
	}

	selectBuilder := psqlbuilder.Select(columns...).
		From("bookings b").
		Join("rooms r ON r.id = b.room_id")

	if withUser {
		selectBuilder = selectBuilder.LeftJoin("users u ON u.id = b.user_id")
	}
	return selectBuilder
}

func scanDetails(rows *sql.Rows, withUser bool) ([]*domain.BookingDetails, error) {
	result := make([]*domain.BookingDetails, 0)

	for rows.Next() {
		var details domain.BookingDetails
		dest := append(bookingDest(&details.Booking),
			&details.Room.ID,
			&details.Room.Name,
			&details.Room.PricePerNight,
			&details.Room.Capacity,
			&details.Room.IsAvailable,
		)

		var (
			userID    sql.NullInt64
			userName  sql.NullString
			userEmail sql.NullString
			userRole  sql.NullString
		)
		if withUser {
			dest = append(dest, &userID, &userName, &userEmail, &userRole)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: scanDetails - scan row: %w", ErrScanRow, err)
		}

		if userID.Valid {
			details.User = &domain.UserSummary{
				ID:    userID.Int64,
				Name:  userName.String,
				Email: userEmail.String,
				Role:  domain.Role(userRole.String),
			}
		}
		details.Guests = details.Room.Capacity

		result = append(result, &details)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDetails - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

func bookingDest(b *domain.Booking) []interface{} {
	return []interface{}{
		&b.ID,
		&b.UserID,
		&b.RoomID,
		&b.CheckIn,
		&b.CheckOut,
		&b.TotalPrice,
		&b.Status,
		&b.PaymentID,
		&b.CreatedAt,
		&b.UpdatedAt,
	}
}

func statusStrings(statuses []domain.BookingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqExclusionViolation
}

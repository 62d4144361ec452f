package character

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-arena/internal/storage/sqldb"
)

const selectColumns = `id, player_id, name, strength, hp, max_hp, mp, max_mp, level, created_at, updated_at`

type sqlRepository struct {
	db      *sql.DB
	dialect sqldb.Dialect
	clock   clock.Clock
}

var _ Repository = (*sqlRepository)(nil)

// SQLConfig contains configuration for the SQL character repository.
type SQLConfig struct {
	DB      *sql.DB
	Dialect sqldb.Dialect
	Clock   clock.Clock
}

// Validate validates the SQLConfig.
func (cfg *SQLConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.DB == nil {
		vb.RequiredField("db")
	}
	errors.ValidateEnum("dialect", string(cfg.Dialect),
		[]string{string(sqldb.DialectSQLite), string(sqldb.DialectPostgres)}, vb)
	return vb.Build()
}

// NewSQL creates a character repository on a migrated sqlite or postgres
// database.
func NewSQL(cfg *SQLConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqlRepository{
		db:      cfg.DB,
		dialect: cfg.Dialect,
		clock:   c,
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var (
		record    Record
		char      entities.Character
		createdAt int64
		updatedAt int64
	)
	err := row.Scan(&record.ID, &record.PlayerID, &char.Name, &char.Strength,
		&char.HP, &char.MaxHP, &char.MP, &char.MaxMP, &char.Level, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.Character = &char
	record.CreatedAt = time.UnixMilli(createdAt).UTC()
	record.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return &record, nil
}

func (r *sqlRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	now := stamp(r.clock.Now())
	record := &Record{
		ID:        input.Record.ID,
		PlayerID:  input.Record.PlayerID,
		Character: input.Record.Character.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx, r.dialect.Rebind(`SELECT 1 FROM characters WHERE id = ?`), record.ID).Scan(&exists)
	switch {
	case err == nil:
		return nil, errors.AlreadyExistsf("character with ID %s already exists", record.ID)
	case !stderrors.Is(err, sql.ErrNoRows):
		return nil, errors.Wrapf(err, "failed to check existence")
	}

	c := record.Character
	_, err = tx.ExecContext(ctx, r.dialect.Rebind(
		`INSERT INTO characters (`+selectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		record.ID, record.PlayerID, c.Name, c.Strength, c.HP, c.MaxHP, c.MP, c.MaxMP, c.Level,
		record.CreatedAt.UnixMilli(), record.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit character")
	}

	return &CreateOutput{Record: record}, nil
}

func (r *sqlRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	record, err := r.get(ctx, r.db, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Record: record}, nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *sqlRepository) get(ctx context.Context, q queryer, id string) (*Record, error) {
	row := q.QueryRowContext(ctx, r.dialect.Rebind(`SELECT `+selectColumns+` FROM characters WHERE id = ?`), id)
	record, err := scanRecord(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("character with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}
	return record, nil
}

func (r *sqlRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	out, err := r.UpdateMany(ctx, UpdateManyInput{Records: []*Record{input.Record}})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Record: out.Records[0]}, nil
}

func (r *sqlRepository) UpdateMany(ctx context.Context, input UpdateManyInput) (*UpdateManyOutput, error) {
	if err := validateRecords(input.Records); err != nil {
		return nil, err
	}
	if len(input.Records) == 0 {
		return &UpdateManyOutput{}, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	now := stamp(r.clock.Now())
	updated := make([]*Record, len(input.Records))
	for i, record := range input.Records {
		existing, err := r.get(ctx, tx, record.ID)
		if err != nil {
			return nil, err
		}

		updated[i] = merged(existing, record, now)
		c := updated[i].Character
		_, err = tx.ExecContext(ctx, r.dialect.Rebind(
			`UPDATE characters
			 SET name = ?, strength = ?, hp = ?, max_hp = ?, mp = ?, max_mp = ?, level = ?, updated_at = ?
			 WHERE id = ?`),
			c.Name, c.Strength, c.HP, c.MaxHP, c.MP, c.MaxMP, c.Level, now.UnixMilli(), record.ID,
		)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to update character %s", record.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit character updates")
	}

	return &UpdateManyOutput{Records: updated}, nil
}

func (r *sqlRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM characters WHERE id = ?`), input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read delete result")
	}
	if affected == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *sqlRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	offset, err := parsePageToken(input.PageToken)
	if err != nil {
		return nil, err
	}
	size := pageSize(input.PageSize)

	query := `SELECT ` + selectColumns + ` FROM characters`
	args := make([]any, 0, 3)
	if input.PlayerID != "" {
		query += ` WHERE player_id = ?`
		args = append(args, input.PlayerID)
	}
	query += ` ORDER BY created_at, id LIMIT ? OFFSET ?`
	// One extra row tells us whether another page exists.
	args = append(args, size+1, offset)

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}
	defer func() { _ = rows.Close() }()

	records := make([]*Record, 0, size)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan character")
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to iterate characters")
	}

	output := &ListOutput{Records: records}
	if len(records) > size {
		output.Records = records[:size]
		output.NextPageToken = encodePageToken(offset + size)
	}

	return output, nil
}

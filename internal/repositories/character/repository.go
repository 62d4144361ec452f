// Package character persists characters together with their identity and
// ownership.
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-arena/internal/repositories/character Repository

import (
	"context"
	"strconv"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// EntityType identifies character records to rpg-toolkit.
const EntityType = "character"

// Page size bounds for List.
const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

const (
	errRecordNil        = "record cannot be nil"
	errCharacterNil     = "record character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errPageToken        = "page token is invalid"
)

// Record is a stored character with its bookkeeping. Timestamps are kept
// at millisecond precision so every store round-trips them exactly.
type Record struct {
	ID        string              `json:"id"`
	PlayerID  string              `json:"player_id,omitempty"`
	Character *entities.Character `json:"character"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// GetID implements core.Entity.
func (r *Record) GetID() string { return r.ID }

// GetType implements core.Entity.
func (r *Record) GetType() string { return EntityType }

var _ core.Entity = (*Record)(nil)

// Repository defines character persistence.
type Repository interface {
	// Create stores a new record. CreatedAt and UpdatedAt are stamped.
	// Returns errors.InvalidArgument for a nil record, character or empty ID
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get loads a record by ID
	// Returns errors.NotFound if it doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces the character state of an existing record. ID,
	// PlayerID and CreatedAt are kept from the stored record.
	// Returns errors.NotFound if it doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// UpdateMany applies Update to every record or to none of them.
	// Returns errors.InvalidArgument for duplicate IDs
	// Returns errors.NotFound if any record doesn't exist
	UpdateMany(ctx context.Context, input UpdateManyInput) (*UpdateManyOutput, error)

	// Delete removes a record
	// Returns errors.NotFound if it doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List pages through records ordered by creation time then ID,
	// optionally filtered by player.
	// Returns errors.InvalidArgument for a malformed page token
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a record
type CreateInput struct {
	Record *Record
}

// CreateOutput defines the output for creating a record
type CreateOutput struct {
	Record *Record
}

// GetInput defines the input for getting a record
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a record
type GetOutput struct {
	Record *Record
}

// UpdateInput defines the input for updating a record
type UpdateInput struct {
	Record *Record
}

// UpdateOutput defines the output for updating a record
type UpdateOutput struct {
	Record *Record
}

// UpdateManyInput defines the input for updating several records at once
type UpdateManyInput struct {
	Records []*Record
}

// UpdateManyOutput holds the stored records in input order
type UpdateManyOutput struct {
	Records []*Record
}

// DeleteInput defines the input for deleting a record
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a record
type DeleteOutput struct{}

// ListInput defines the input for listing records
type ListInput struct {
	// PlayerID filters by owner when set
	PlayerID  string
	PageSize  int
	PageToken string
}

// ListOutput defines the output for listing records
type ListOutput struct {
	Records []*Record
	// NextPageToken is empty on the last page
	NextPageToken string
}

func validateRecord(record *Record) error {
	if record == nil {
		return errors.InvalidArgument(errRecordNil)
	}
	if record.ID == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	if record.Character == nil {
		return errors.InvalidArgument(errCharacterNil)
	}
	return nil
}

func validateRecords(records []*Record) error {
	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		if err := validateRecord(record); err != nil {
			return err
		}
		if _, dup := seen[record.ID]; dup {
			return errors.InvalidArgumentf("record %s appears more than once", record.ID)
		}
		seen[record.ID] = struct{}{}
	}
	return nil
}

// merged returns the record to store when update replaces existing.
func merged(existing, update *Record, now time.Time) *Record {
	return &Record{
		ID:        existing.ID,
		PlayerID:  existing.PlayerID,
		Character: update.Character.Clone(),
		CreatedAt: existing.CreatedAt,
		UpdatedAt: now,
	}
}

func stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func pageSize(requested int) int {
	switch {
	case requested <= 0:
		return DefaultPageSize
	case requested > MaxPageSize:
		return MaxPageSize
	default:
		return requested
	}
}

func parsePageToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, errors.InvalidArgument(errPageToken).WithMeta("page_token", token)
	}
	return offset, nil
}

func encodePageToken(offset int) string {
	return strconv.Itoa(offset)
}

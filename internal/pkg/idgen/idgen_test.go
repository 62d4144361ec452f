package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("char")

	id := gen.Generate()
	require.True(t, strings.HasPrefix(id, "char_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "char_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen.Generate())
}

func TestUUIDGeneratorWithoutPrefix(t *testing.T) {
	_, err := uuid.Parse(idgen.NewUUID("").Generate())
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("log")

	assert.Equal(t, "log_1", gen.Generate())
	assert.Equal(t, "log_2", gen.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}

package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-arena/internal/codec"
)

type spell struct {
	Cost   int32 `json:"cost"`
	Damage int32 `json:"damage"`
}

func TestRegistered(t *testing.T) {
	registered := encoding.GetCodec(codec.Name)
	require.NotNil(t, registered)
	assert.Equal(t, codec.Name, registered.Name())
}

func TestPlainStruct(t *testing.T) {
	c := codec.JSON{}

	data, err := c.Marshal(&spell{Cost: 5, Damage: 9})
	require.NoError(t, err)
	assert.JSONEq(t, `{"cost":5,"damage":9}`, string(data))

	var out spell
	require.NoError(t, c.Unmarshal(data, &out))
	assert.Equal(t, spell{Cost: 5, Damage: 9}, out)
}

func TestProtoMessage(t *testing.T) {
	c := codec.JSON{}
	msg, err := structpb.NewStruct(map[string]any{"name": "Fay"})
	require.NoError(t, err)

	data, err := c.Marshal(msg)
	require.NoError(t, err)

	out := &structpb.Struct{}
	require.NoError(t, c.Unmarshal(data, out))
	assert.Equal(t, "Fay", out.GetFields()["name"].GetStringValue())
}

func TestUnmarshalError(t *testing.T) {
	var out spell
	assert.Error(t, codec.JSON{}.Unmarshal([]byte("{"), &out))
}

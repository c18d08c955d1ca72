package tokenx

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func signed(c *Codec, body []byte) string {
	return base58.Encode(append(append([]byte(nil), body...), c.digest(body)...))
}

func TestUnmarshal_AnyOrderAndUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, fieldTTL, protowire.VarintType)
	b = protowire.AppendVarint(b, 30)
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "future field")
	b = protowire.AppendTag(b, fieldUserID, protowire.BytesType)
	b = protowire.AppendString(b, "u1")
	b = protowire.AppendTag(b, fieldType, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(TypeRefresh))
	b = protowire.AppendTag(b, 100, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, 7)

	r, err := unmarshalRecord(b)
	require.NoError(t, err)
	require.Equal(t, TypeRefresh, r.Type)
	require.Equal(t, "u1", *r.UserID)
	require.Equal(t, int64(30), *r.TTL)
	require.Nil(t, r.Issued)
}

func TestDecode_SignedButIncomplete(t *testing.T) {
	c := NewCodec([]byte("k"))

	tests := []struct {
		name string
		body func() []byte
	}{
		{"no user id", func() []byte {
			b := protowire.AppendTag(nil, fieldType, protowire.VarintType)
			return protowire.AppendVarint(b, 0)
		}},
		{"no type", func() []byte {
			b := protowire.AppendTag(nil, fieldUserID, protowire.BytesType)
			return protowire.AppendString(b, "u1")
		}},
		{"wrong wire type", func() []byte {
			b := protowire.AppendTag(nil, fieldType, protowire.VarintType)
			b = protowire.AppendVarint(b, 0)
			b = protowire.AppendTag(b, fieldUserID, protowire.VarintType)
			return protowire.AppendVarint(b, 5)
		}},
		{"truncated", func() []byte {
			b := protowire.AppendTag(nil, fieldType, protowire.VarintType)
			b = protowire.AppendVarint(b, 0)
			b = protowire.AppendTag(b, fieldUserID, protowire.BytesType)
			return append(b, 10, 'a')
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decode(signed(c, tt.body()))
			require.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}

func TestMarshal_DeclarationOrder(t *testing.T) {
	r := Record{Claims: Claims{
		UserID:    String("u"),
		AppSecret: String("s"),
		TTL:       Int64(0),
	}}

	var want []byte
	want = protowire.AppendTag(want, fieldType, protowire.VarintType)
	want = protowire.AppendVarint(want, 0)
	want = protowire.AppendTag(want, fieldAppSecret, protowire.BytesType)
	want = protowire.AppendString(want, "s")
	want = protowire.AppendTag(want, fieldUserID, protowire.BytesType)
	want = protowire.AppendString(want, "u")
	want = protowire.AppendTag(want, fieldTTL, protowire.VarintType)
	want = protowire.AppendVarint(want, 0)

	require.Equal(t, want, marshalRecord(r))
}

package tokenx

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the token record. They are part of the wire format and
// must never be renumbered.
const (
	fieldType       protowire.Number = 1
	fieldAppID      protowire.Number = 2
	fieldUserID     protowire.Number = 3
	fieldUserSecret protowire.Number = 4
	fieldIssued     protowire.Number = 5
	fieldTTL        protowire.Number = 6
	fieldAppSecret  protowire.Number = 7
	fieldSession    protowire.Number = 8
)

// marshalRecord writes the record in declaration order, which is not field
// number order: app_secret and session were appended to the schema later but
// declared next to their siblings.
func marshalRecord(r Record) []byte {
	b := make([]byte, 0, 64)

	b = protowire.AppendTag(b, fieldType, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(int64(r.Type)))

	b = appendString(b, fieldAppID, r.AppID)
	b = appendString(b, fieldAppSecret, r.AppSecret)
	b = appendString(b, fieldUserID, r.UserID)
	b = appendString(b, fieldUserSecret, r.UserSecret)
	b = appendString(b, fieldSession, r.Session)
	b = appendVarint(b, fieldIssued, r.Issued)
	b = appendVarint(b, fieldTTL, r.TTL)

	return b
}

func appendString(b []byte, num protowire.Number, v *string) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, *v)
}

func appendVarint(b []byte, num protowire.Number, v *int64) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(*v))
}

// unmarshalRecord parses a record body. Fields may appear in any order and
// unknown fields are skipped; the last occurrence of a field wins.
func unmarshalRecord(b []byte) (Record, error) {
	var (
		r       Record
		hasType bool
	)

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Record{}, protowire.ParseError(n)
		}
		b = b[n:]

		switch num {
		case fieldType:
			v, err := consumeVarint(&b, typ, num)
			if err != nil {
				return Record{}, err
			}
			r.Type = TokenType(int32(v))
			hasType = true
		case fieldIssued, fieldTTL:
			v, err := consumeVarint(&b, typ, num)
			if err != nil {
				return Record{}, err
			}
			x := int64(v)
			if num == fieldIssued {
				r.Issued = &x
			} else {
				r.TTL = &x
			}
		case fieldAppID, fieldAppSecret, fieldUserID, fieldUserSecret, fieldSession:
			s, err := consumeString(&b, typ, num)
			if err != nil {
				return Record{}, err
			}
			switch num {
			case fieldAppID:
				r.AppID = &s
			case fieldAppSecret:
				r.AppSecret = &s
			case fieldUserID:
				r.UserID = &s
			case fieldUserSecret:
				r.UserSecret = &s
			case fieldSession:
				r.Session = &s
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return Record{}, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}

	if !hasType {
		return Record{}, fmt.Errorf("missing required field type")
	}
	if r.UserID == nil {
		return Record{}, fmt.Errorf("missing required field %s", FieldUserID)
	}

	return r, nil
}

func consumeVarint(b *[]byte, typ protowire.Type, num protowire.Number) (uint64, error) {
	if typ != protowire.VarintType {
		return 0, fmt.Errorf("field %d: unexpected wire type %d", num, typ)
	}
	v, n := protowire.ConsumeVarint(*b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*b = (*b)[n:]
	return v, nil
}

func consumeString(b *[]byte, typ protowire.Type, num protowire.Number) (string, error) {
	if typ != protowire.BytesType {
		return "", fmt.Errorf("field %d: unexpected wire type %d", num, typ)
	}
	v, n := protowire.ConsumeBytes(*b)
	if n < 0 {
		return "", protowire.ParseError(n)
	}
	*b = (*b)[n:]
	return string(v), nil
}

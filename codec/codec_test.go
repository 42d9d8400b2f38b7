package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/unkn0wn-root/utf8codec"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const sample = "A€😀"

func mustParse(t *testing.T, s string) utf8codec.Groups {
	t.Helper()
	g, err := utf8codec.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return g
}

func equalGroups(a, b utf8codec.Groups) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestGroupsCodecsRoundTrip(t *testing.T) {
	codecs := map[string]Codec[utf8codec.Groups]{
		"json":     JSON{},
		"cbor":     MustCBOR(false, 0),
		"cbor-det": MustCBOR(true, 0),
		"msgpack":  Msgpack{},
		"protobuf": Protobuf{},
	}
	want := mustParse(t, sample)
	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			b, err := c.Encode(want)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := c.Decode(b)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !equalGroups(got, want) {
				t.Fatalf("round trip mismatch: got %x want %x", got, want)
			}
			s, err := utf8codec.Stringify(got)
			if err != nil || s != sample {
				t.Fatalf("Stringify = %q, %v", s, err)
			}
		})
	}
}

func TestJSONWireShape(t *testing.T) {
	b, err := JSON{}.Encode(mustParse(t, "A€"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[[65],[226,130,172]]" {
		t.Fatalf("unexpected JSON %s", b)
	}
}

func TestJSONRejectsNonByteElements(t *testing.T) {
	for _, in := range []string{`[["x"]]`, `[[1.5]]`, `[[256]]`, `[[-1]]`, `[5]`, `{"a":1}`} {
		_, err := JSON{}.Decode([]byte(in))
		if !errors.Is(err, utf8codec.ErrType) {
			t.Fatalf("Decode(%s): expected ErrType, got %v", in, err)
		}
	}
}

func TestDecodeRejectsMalformedGroups(t *testing.T) {
	bad := utf8codec.Groups{{0x41}, {0xC2, 0x00}}

	jb, _ := JSON{}.Encode(bad)
	mb, _ := Msgpack{}.Encode(bad)
	pb, _ := Protobuf{}.Encode(bad)
	cb, _ := MustCBOR(false, 0).Encode(bad)

	for name, dec := range map[string]func() (utf8codec.Groups, error){
		"json":     func() (utf8codec.Groups, error) { return JSON{}.Decode(jb) },
		"msgpack":  func() (utf8codec.Groups, error) { return Msgpack{}.Decode(mb) },
		"protobuf": func() (utf8codec.Groups, error) { return Protobuf{}.Decode(pb) },
		"cbor":     func() (utf8codec.Groups, error) { return MustCBOR(false, 0).Decode(cb) },
	} {
		_, err := dec()
		if !errors.Is(err, utf8codec.ErrDecode) {
			t.Fatalf("%s: expected ErrDecode, got %v", name, err)
		}
		var e *utf8codec.Error
		if !errors.As(err, &e) || e.Index != 1 {
			t.Fatalf("%s: expected error at index 1, got %v", name, err)
		}
	}

	// a group that is not a byte array at all
	shape := []any{[]any{65.0}, []any{"x"}, []any{66.0}}
	lv, err := structpb.NewList(shape)
	if err != nil {
		t.Fatal(err)
	}
	pb, err = proto.Marshal(lv)
	if err != nil {
		t.Fatal(err)
	}
	for name, dec := range map[string]func() (utf8codec.Groups, error){
		"json":     func() (utf8codec.Groups, error) { return JSON{}.Decode([]byte(`[[65],["x"],[66]]`)) },
		"protobuf": func() (utf8codec.Groups, error) { return Protobuf{}.Decode(pb) },
	} {
		_, err := dec()
		var e *utf8codec.Error
		if !errors.Is(err, utf8codec.ErrType) || !errors.As(err, &e) || e.Index != 1 {
			t.Fatalf("%s: expected ErrType at group 1, got %v", name, err)
		}
	}
}

func TestCBORMaxGroups(t *testing.T) {
	c := MustCBOR(false, 16)
	g := mustParse(t, "abcdefghijklmnopqrstuvwxyz")
	b, err := c.Encode(g)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Decode(b); err == nil {
		t.Fatalf("expected error decoding 26 groups with limit 16")
	}
}

func TestCBORGenericValuesDecodeToCodePoint(t *testing.T) {
	// a peer that sends integer arrays instead of byte strings
	b, err := cbor.Marshal([]int{0xE2, 0x82, 0xAC})
	if err != nil {
		t.Fatal(err)
	}
	var v any
	if err := cbor.Unmarshal(b, &v); err != nil {
		t.Fatal(err)
	}
	cp, err := utf8codec.DecodeValue(v)
	if err != nil || cp != 0x20AC {
		t.Fatalf("DecodeValue = %#x, %v", cp, err)
	}
}

func TestMsgpackGenericValuesEncode(t *testing.T) {
	b, err := msgpack.Marshal(0x1F600)
	if err != nil {
		t.Fatal(err)
	}
	var v any
	if err := msgpack.Unmarshal(b, &v); err != nil {
		t.Fatal(err)
	}
	got, err := utf8codec.EncodeValue(v)
	if err != nil || !bytes.Equal(got, []byte{0xF0, 0x9F, 0x98, 0x80}) {
		t.Fatalf("EncodeValue = %x, %v", got, err)
	}
}

func TestProtobufRejectsNonNumbers(t *testing.T) {
	lv, err := structpb.NewList([]any{[]any{"x"}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := proto.Marshal(lv)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := (Protobuf{}).Decode(b); !errors.Is(err, utf8codec.ErrType) {
		t.Fatalf("expected ErrType, got %v", err)
	}
}

func TestTextCodec(t *testing.T) {
	b, err := Text{}.Encode(sample)
	if err != nil || string(b) != sample {
		t.Fatalf("Encode = %q, %v", b, err)
	}
	s, err := Text{}.Decode(b)
	if err != nil || s != sample {
		t.Fatalf("Decode = %q, %v", s, err)
	}
	if _, err := (Text{}).Encode("a\xffb"); !errors.Is(err, utf8codec.ErrDecode) {
		t.Fatalf("Encode invalid: expected ErrDecode, got %v", err)
	}
	if _, err := (Text{}).Decode([]byte{0x41, 0xC2}); !errors.Is(err, utf8codec.ErrDecode) {
		t.Fatalf("Decode invalid: expected ErrDecode, got %v", err)
	}
}

func TestRunesCodec(t *testing.T) {
	rs := []rune(sample)
	b, err := Runes{}.Encode(rs)
	if err != nil || string(b) != sample {
		t.Fatalf("Encode = %q, %v", b, err)
	}
	got, err := Runes{}.Decode(b)
	if err != nil || string(got) != sample {
		t.Fatalf("Decode = %q, %v", string(got), err)
	}

	// surrogates are encoded permissively
	b, err = Runes{}.Encode([]rune{0xD800})
	if err != nil || !bytes.Equal(b, []byte{0xED, 0xA0, 0x80}) {
		t.Fatalf("Encode surrogate = %x, %v", b, err)
	}
	if _, err := (Runes{}).Encode([]rune{-1}); !errors.Is(err, utf8codec.ErrRange) {
		t.Fatalf("expected ErrRange, got %v", err)
	}
}

func TestLimitCodec(t *testing.T) {
	c := LimitCodec[utf8codec.Groups]{Inner: JSON{}, MaxDecode: 8, MaxEncode: 32}
	g := mustParse(t, "A€")

	b, err := c.Encode(g)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := c.Decode(b); !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge on decode, got %v", err)
	}
	if _, err := c.Encode(mustParse(t, "😀😀😀😀")); !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge on encode, got %v", err)
	}

	open := LimitCodec[utf8codec.Groups]{Inner: JSON{}}
	got, err := open.Decode(b)
	if err != nil || !equalGroups(got, g) {
		t.Fatalf("unlimited Decode = %x, %v", got, err)
	}
}

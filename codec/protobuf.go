package codec

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/utf8codec"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Protobuf encodes Groups as a google.protobuf.ListValue of number lists,
// the protobuf mirror of the JSON form. Decoded numbers go through
// utf8codec.ToBytes, so anything that is not a byte value fails with
// utf8codec.ErrType.
type Protobuf struct{}

func (Protobuf) Encode(g utf8codec.Groups) ([]byte, error) {
	return proto.Marshal(GroupsToList(g))
}

func (Protobuf) Decode(b []byte) (utf8codec.Groups, error) {
	lv := &structpb.ListValue{}
	if err := proto.Unmarshal(b, lv); err != nil {
		return nil, err
	}
	return checked(GroupsFromList(lv))
}

// GroupsToList converts g to a ListValue for embedding in other messages.
func GroupsToList(g utf8codec.Groups) *structpb.ListValue {
	lv := &structpb.ListValue{Values: make([]*structpb.Value, len(g))}
	for i, grp := range g {
		inner := make([]*structpb.Value, len(grp))
		for j, c := range grp {
			inner[j] = structpb.NewNumberValue(float64(c))
		}
		lv.Values[i] = structpb.NewListValue(&structpb.ListValue{Values: inner})
	}
	return lv
}

// GroupsFromList is the inverse of GroupsToList. Errors carry the index of
// the offending group, as Groups.UnmarshalJSON does.
func GroupsFromList(lv *structpb.ListValue) (utf8codec.Groups, error) {
	items := lv.AsSlice()
	out := make(utf8codec.Groups, len(items))
	for i, it := range items {
		b, err := utf8codec.ToBytes(it)
		if err != nil {
			return nil, groupErr("GroupsFromList", i, err)
		}
		out[i] = b
	}
	return out, nil
}

func groupErr(op string, i int, err error) error {
	var e *utf8codec.Error
	if !errors.As(err, &e) {
		return fmt.Errorf("codec: %s group %d: %w", op, i, err)
	}
	return &utf8codec.Error{Op: op, Kind: e.Kind, Msg: e.Msg, Index: i, Cause: e.Cause}
}

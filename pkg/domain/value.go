package domain

import (
	"encoding/json"
	"fmt"
)

// Value describes a destination state configuration relative to the machine
// root. It is a tagged variant: a Leaf names a root-level leaf state by bare
// key, a Nested value encodes the descent chain through compound states down
// to the final leaf (entering "red" without a substate yields red -> walk).
//
// Modeling the two shapes as distinct types lets consumers switch
// exhaustively instead of probing an untyped map at runtime.
type Value interface {
	fmt.Stringer
	json.Marshaler
	isValue()
}

// Leaf is a flat destination: a leaf state addressable by a bare key.
type Leaf string

func (Leaf) isValue() {}

// String returns the bare key.
func (l Leaf) String() string { return string(l) }

// MarshalJSON renders the leaf as a plain JSON string.
func (l Leaf) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(l))
}

// Nested is one level of descent through a compound state.
type Nested struct {
	Key   string
	Child Value
}

func (Nested) isValue() {}

// String returns the dotted form of the full descent chain.
func (v Nested) String() string {
	return v.Key + "." + v.Child.String()
}

// MarshalJSON renders the level as a single-key object, mirroring the
// nested state-value shape ({"red": "walk"}).
func (v Nested) MarshalJSON() ([]byte, error) {
	child, err := v.Child.MarshalJSON()
	if err != nil {
		return nil, err
	}
	key, err := json.Marshal(v.Key)
	if err != nil {
		return nil, err
	}
	return []byte("{" + string(key) + ":" + string(child) + "}"), nil
}

// ValueOf builds a Value from a key path relative to the machine root.
// ValueOf("green") is a Leaf; ValueOf("red", "walk") nests red -> walk.
func ValueOf(keys ...string) Value {
	if len(keys) == 0 {
		return Leaf("")
	}
	if len(keys) == 1 {
		return Leaf(keys[0])
	}
	return Nested{Key: keys[0], Child: ValueOf(keys[1:]...)}
}

// Destination is the adjacency-map entry for one event: the state value the
// machine ends up in after taking the transition and any default descent.
type Destination struct {
	State Value `json:"state"`
}

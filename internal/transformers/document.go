package transformers

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocID is a client-supplied identifier resolved once at the parsing
// boundary: either a native ObjectID or a literal string. Downstream code
// only ever asks for the filter value, never re-inspects the raw input.
type DocID struct {
	oid     primitive.ObjectID
	literal string
	native  bool
}

// ParseID parses raw as a native store identifier when possible, falling
// back to treating it as a literal string id. A malformed hex id therefore
// becomes a lookup that simply matches nothing, not a client error.
func ParseID(raw string) DocID {
	if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
		return DocID{oid: oid, native: true}
	}
	return DocID{literal: raw}
}

// Native reports whether the id parsed as a store-native ObjectID.
func (id DocID) Native() bool {
	return id.native
}

// Filter returns the value to match against the store's _id field.
func (id DocID) Filter() interface{} {
	if id.native {
		return id.oid
	}
	return id.literal
}

// String returns the public string form of the identifier.
func (id DocID) String() string {
	if id.native {
		return id.oid.Hex()
	}
	return id.literal
}

// NormalizeDocument renames the store-native _id field to a public string
// id and stringifies any other ObjectID values in place. It is idempotent,
// never panics, and passes documents without an _id through unchanged.
func NormalizeDocument(doc bson.M) bson.M {
	if doc == nil {
		return doc
	}
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	if raw, ok := out["_id"]; ok {
		delete(out, "_id")
		out["id"] = stringifyID(raw)
	}
	for k, v := range out {
		if oid, ok := v.(primitive.ObjectID); ok {
			out[k] = oid.Hex()
		}
	}
	return out
}

func stringifyID(v interface{}) interface{} {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return v
}

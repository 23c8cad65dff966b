package transformers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseIDNative(t *testing.T) {
	oid := primitive.NewObjectID()

	id := ParseID(oid.Hex())

	assert.True(t, id.Native())
	assert.Equal(t, oid, id.Filter())
	assert.Equal(t, oid.Hex(), id.String())
}

func TestParseIDLiteralFallback(t *testing.T) {
	id := ParseID("not-a-hex-id")

	assert.False(t, id.Native())
	assert.Equal(t, "not-a-hex-id", id.Filter())
	assert.Equal(t, "not-a-hex-id", id.String())
}

func TestNormalizeDocumentRenamesAndStringifies(t *testing.T) {
	oid := primitive.NewObjectID()
	ref := primitive.NewObjectID()

	out := NormalizeDocument(bson.M{
		"_id":           oid,
		"name":          "Spice Garden",
		"restaurant_id": ref,
	})

	require.NotContains(t, out, "_id")
	assert.Equal(t, oid.Hex(), out["id"])
	assert.Equal(t, "Spice Garden", out["name"])
	assert.Equal(t, ref.Hex(), out["restaurant_id"])
}

func TestNormalizeDocumentIdempotent(t *testing.T) {
	oid := primitive.NewObjectID()

	once := NormalizeDocument(bson.M{"_id": oid, "name": "Pasta Piazza"})
	twice := NormalizeDocument(once)

	assert.Equal(t, once, twice)
}

func TestNormalizeDocumentWithoutID(t *testing.T) {
	doc := bson.M{"name": "Spice Garden"}

	out := NormalizeDocument(doc)

	assert.Equal(t, bson.M{"name": "Spice Garden"}, out)
}

func TestNormalizeDocumentNil(t *testing.T) {
	assert.Nil(t, NormalizeDocument(nil))
}

func TestNormalizeDocumentLiteralStringID(t *testing.T) {
	out := NormalizeDocument(bson.M{"_id": "plain-string-id"})

	assert.Equal(t, "plain-string-id", out["id"])
}

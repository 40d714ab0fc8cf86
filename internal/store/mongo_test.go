package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToBSON(t *testing.T) {
	oid := primitive.NewObjectID()

	m := toBSON(Filter{
		"is_active": true,
		"id":        "abc",
		"_id":       DocID(oid.Hex()),
	})

	assert.Equal(t, true, m["is_active"])
	assert.Equal(t, "abc", m["id"])
	assert.Equal(t, oid, m["_id"], "DocID values become ObjectID matches")
}

func TestToBSONInvalidDocID(t *testing.T) {
	m := toBSON(Filter{"_id": DocID("not-hex")})

	// An unparsable identity is kept verbatim so the filter matches nothing.
	assert.Equal(t, "not-hex", m["_id"])
}

func TestSortSpec(t *testing.T) {
	tests := []struct {
		in      string
		field   string
		wantDir int
	}{
		{"created_at", "created_at", 1},
		{"-created_at", "created_at", -1},
		{"-", "", -1},
	}

	for _, tt := range tests {
		field, dir := sortSpec(tt.in)
		assert.Equal(t, tt.field, field, tt.in)
		assert.Equal(t, tt.wantDir, dir, tt.in)
	}
}

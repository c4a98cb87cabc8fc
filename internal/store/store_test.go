package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/firelovers/storefront/internal/store"
)

func TestParseID(t *testing.T) {
	valid := primitive.NewObjectID()

	oid, err := store.ParseID(valid.Hex())
	require.NoError(t, err)
	require.Equal(t, valid, oid)

	for _, bad := range []string{"", "junk", "65b2f0a1", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := store.ParseID(bad)
		require.ErrorIs(t, err, store.ErrInvalidID, "id %q", bad)
	}
}

func TestParseIDs(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	oids, err := store.ParseIDs([]string{a.Hex(), b.Hex()})
	require.NoError(t, err)
	require.Equal(t, []primitive.ObjectID{a, b}, oids)

	_, err = store.ParseIDs([]string{a.Hex(), "junk"})
	require.ErrorIs(t, err, store.ErrInvalidID)

	oids, err = store.ParseIDs(nil)
	require.NoError(t, err)
	require.Empty(t, oids)
}

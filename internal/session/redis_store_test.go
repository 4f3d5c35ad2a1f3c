package session_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-inspecta/internal/session"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisStore_Identity(t *testing.T) {
	ctx := context.Background()
	rdb, rmock := redismock.NewClientMock()
	store := session.NewRedisStore(rdb)

	id := activeIdentity()
	data, _ := json.Marshal(&id)

	rmock.ExpectSet(session.IdentityKey("sid-1"), data, time.Hour).SetVal("OK")
	assert.NoError(t, store.SaveIdentity(ctx, "sid-1", &id, time.Hour))

	rmock.ExpectGet(session.IdentityKey("sid-1")).SetVal(string(data))
	loaded, err := store.LoadIdentity(ctx, "sid-1")
	assert.NoError(t, err)
	assert.Equal(t, &id, loaded)

	rmock.ExpectGet(session.IdentityKey("sid-2")).RedisNil()
	loaded, err = store.LoadIdentity(ctx, "sid-2")
	assert.NoError(t, err)
	assert.Nil(t, loaded)

	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestRedisStore_SelectionAndClear(t *testing.T) {
	ctx := context.Background()
	rdb, rmock := redismock.NewClientMock()
	store := session.NewRedisStore(rdb)

	sel := session.Selection{Plant: "Plant-1", Line: 2}
	data, _ := json.Marshal(sel)

	rmock.ExpectSet(session.SelectionKey("sid-1"), data, time.Hour).SetVal("OK")
	assert.NoError(t, store.SaveSelection(ctx, "sid-1", sel, time.Hour))

	rmock.ExpectGet(session.SelectionKey("sid-1")).SetVal(string(data))
	loaded, err := store.LoadSelection(ctx, "sid-1")
	assert.NoError(t, err)
	assert.Equal(t, &sel, loaded)

	rmock.ExpectDel(session.IdentityKey("sid-1"), session.SelectionKey("sid-1")).SetVal(2)
	assert.NoError(t, store.Clear(ctx, "sid-1"))

	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "session:abc:identity", session.IdentityKey("abc"))
	assert.Equal(t, "session:abc:selection", session.SelectionKey("abc"))
}

package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-inspecta/internal/access"
	accesserrors "go-inspecta/internal/access/errors"
	"go-inspecta/internal/session"
	sessionerrors "go-inspecta/internal/session/errors"
	sessionMock "go-inspecta/internal/session/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func activeIdentity() access.Identity {
	return access.Identity{
		Username:      "12345",
		FullName:      "John Doe",
		Role:          access.RoleSupervisor,
		IsActive:      true,
		Permissions:   []string{access.PermViewRecords},
		AllowedMenus:  []string{"kliping"},
		AllowedPlants: []string{"Plant-1", "Plant-2"},
	}
}

func TestManager_Lifecycle(t *testing.T) {
	ctx := context.Background()
	mgr := session.NewManager(session.NewMemoryStore(time.Hour), time.Hour)

	sid, err := mgr.Begin(ctx, activeIdentity())
	assert.NoError(t, err)
	assert.NotEmpty(t, sid)

	current, err := mgr.Current(ctx, sid)
	assert.NoError(t, err)
	assert.Equal(t, "12345", current.Username)
	assert.Equal(t, []string{"Plant-1", "Plant-2"}, current.AllowedPlants)

	sel, err := mgr.Select(ctx, sid, session.Selection{Plant: " Plant-2 ", Line: 3})
	assert.NoError(t, err)
	assert.Equal(t, "Plant-2", sel.Plant)

	stored, err := mgr.Selection(ctx, sid)
	assert.NoError(t, err)
	assert.Equal(t, &session.Selection{Plant: "Plant-2", Line: 3}, stored)

	assert.NoError(t, mgr.End(ctx, sid))

	current, err = mgr.Current(ctx, sid)
	assert.NoError(t, err)
	assert.Nil(t, current)
	assert.Empty(t, access.NewChecker(current).AllowedPlants())

	stored, err = mgr.Selection(ctx, sid)
	assert.NoError(t, err)
	assert.Nil(t, stored)
}

func TestManager_Begin(t *testing.T) {
	ctx := context.Background()

	t.Run("inactive identity rejected", func(t *testing.T) {
		mgr := session.NewManager(session.NewMemoryStore(time.Hour), time.Hour)
		id := activeIdentity()
		id.IsActive = false

		_, err := mgr.Begin(ctx, id)
		assert.ErrorIs(t, err, sessionerrors.ErrInactiveIdentity)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sessionMock.NewMockStore(ctrl)
		store.EXPECT().SaveIdentity(ctx, gomock.Any(), gomock.Any(), time.Hour).Return(errors.New("redis down"))

		_, err := session.NewManager(store, time.Hour).Begin(ctx, activeIdentity())
		assert.Error(t, err)
	})

	t.Run("snapshot is isolated from caller", func(t *testing.T) {
		mgr := session.NewManager(session.NewMemoryStore(time.Hour), time.Hour)
		id := activeIdentity()
		sid, _ := mgr.Begin(ctx, id)
		id.AllowedPlants[0] = "Plant-9"

		current, _ := mgr.Current(ctx, sid)
		assert.Equal(t, "Plant-1", current.AllowedPlants[0])
	})
}

func TestManager_Current(t *testing.T) {
	t.Run("context identity wins without touching the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sessionMock.NewMockStore(ctrl)
		id := activeIdentity()
		ctx := access.WithIdentity(context.Background(), &id)

		current, err := session.NewManager(store, time.Hour).Current(ctx, "sid")
		assert.NoError(t, err)
		assert.Equal(t, &id, current)
	})

	t.Run("no session id", func(t *testing.T) {
		mgr := session.NewManager(session.NewMemoryStore(time.Hour), time.Hour)
		current, err := mgr.Current(context.Background(), "")
		assert.NoError(t, err)
		assert.Nil(t, current)
	})
}

func TestManager_Select(t *testing.T) {
	ctx := context.Background()
	mgr := session.NewManager(session.NewMemoryStore(time.Hour), time.Hour)
	sid, _ := mgr.Begin(ctx, activeIdentity())

	t.Run("plant outside allowed set", func(t *testing.T) {
		_, err := mgr.Select(ctx, sid, session.Selection{Plant: "Plant-3"})
		assert.ErrorIs(t, err, accesserrors.ErrPlantDenied)
	})

	t.Run("plant required", func(t *testing.T) {
		_, err := mgr.Select(ctx, sid, session.Selection{Plant: "  "})
		assert.ErrorIs(t, err, sessionerrors.ErrPlantRequired)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := mgr.Select(ctx, "missing", session.Selection{Plant: "Plant-1"})
		assert.ErrorIs(t, err, sessionerrors.ErrSessionNotFound)
	})
}

func TestManager_End(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := sessionMock.NewMockStore(ctrl)
	mgr := session.NewManager(store, time.Hour)

	assert.NoError(t, mgr.End(ctx, ""))

	store.EXPECT().Clear(ctx, "sid-1").Return(nil)
	assert.NoError(t, mgr.End(ctx, "sid-1"))
}

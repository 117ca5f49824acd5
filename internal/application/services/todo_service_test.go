package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"todolist-service/internal/application/services"
	"todolist-service/internal/domain/entities"
	"todolist-service/internal/infrastructure/db"
)

func newTodoFixture(t *testing.T) (*services.TodoService, uint, uint) {
	t.Helper()

	gdb := newTestDB(t)
	todos := services.NewTodoService(db.NewTodoRepository(gdb))

	alice := seedUser(t, gdb, "a@x.com")
	bob := seedUser(t, gdb, "b@x.com")
	return todos, alice, bob
}

func seedUser(t *testing.T, gdb *gorm.DB, email string) uint {
	t.Helper()

	user, err := entities.NewUser(email, "pw1", "Someone")
	require.NoError(t, err)
	require.NoError(t, user.HashPassword())

	created, err := db.NewUserRepository(gdb).Create(context.Background(), user)
	require.NoError(t, err)
	return created.ID
}

func TestCreateSetsOwnerAndDefaultStatus(t *testing.T) {
	todos, alice, bob := newTodoFixture(t)
	ctx := context.Background()

	created, err := todos.Create(ctx, alice, "buy milk")
	require.NoError(t, err)
	assert.Equal(t, alice, created.UserID)
	assert.Equal(t, entities.StatusTodo, created.Status)

	aliceList, err := todos.ListFor(ctx, alice)
	require.NoError(t, err)
	require.Len(t, aliceList, 1)
	assert.Equal(t, "buy milk", aliceList[0].Content)

	bobList, err := todos.ListFor(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobList)
}

func TestCreateRejectsEmptyContent(t *testing.T) {
	todos, alice, _ := newTodoFixture(t)

	_, err := todos.Create(context.Background(), alice, "")
	assert.ErrorIs(t, err, entities.ErrMissingField)
}

func TestMutationsRequireOwnership(t *testing.T) {
	todos, alice, bob := newTodoFixture(t)
	ctx := context.Background()

	created, err := todos.Create(ctx, alice, "buy milk")
	require.NoError(t, err)

	_, err = todos.Get(ctx, created.ID, bob)
	assert.ErrorIs(t, err, entities.ErrTodoNotFound)

	err = todos.UpdateContent(ctx, created.ID, bob, "hijacked")
	assert.ErrorIs(t, err, entities.ErrTodoNotFound)

	err = todos.Delete(ctx, created.ID, bob)
	assert.ErrorIs(t, err, entities.ErrTodoNotFound)

	// Owner still sees the original row.
	got, err := todos.Get(ctx, created.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", got.Content)
}

func TestUpdateStatusesTouchesOnlyOwnRows(t *testing.T) {
	todos, alice, bob := newTodoFixture(t)
	ctx := context.Background()

	milk, err := todos.Create(ctx, alice, "buy milk")
	require.NoError(t, err)
	dog, err := todos.Create(ctx, alice, "walk dog")
	require.NoError(t, err)
	bobs, err := todos.Create(ctx, bob, "write tests")
	require.NoError(t, err)

	err = todos.UpdateStatuses(ctx, alice, map[uint]string{
		milk.ID: "done",
		bobs.ID: "done", // foreign id must be ignored
	})
	require.NoError(t, err)

	got, err := todos.Get(ctx, milk.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, "done", got.Status)

	unchanged, err := todos.Get(ctx, dog.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusTodo, unchanged.Status)

	foreign, err := todos.Get(ctx, bobs.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusTodo, foreign.Status)
}

func TestDeleteRemovesFromOwnerList(t *testing.T) {
	todos, alice, _ := newTodoFixture(t)
	ctx := context.Background()

	created, err := todos.Create(ctx, alice, "buy milk")
	require.NoError(t, err)

	require.NoError(t, todos.Delete(ctx, created.ID, alice))

	list, err := todos.ListFor(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = todos.Delete(ctx, created.ID, alice)
	assert.ErrorIs(t, err, entities.ErrTodoNotFound)
}

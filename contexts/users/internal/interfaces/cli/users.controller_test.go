package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/users/cmd"
	"github.com/go-arrower/users/contexts/users/internal/application"
	"github.com/go-arrower/users/contexts/users/internal/domain"
	"github.com/go-arrower/users/contexts/users/internal/interfaces/cli"
	"github.com/go-arrower/users/contexts/users/internal/interfaces/repository"
)

func TestUsersController_List(t *testing.T) {
	t.Parallel()

	t.Run("seeded users", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, newSeededController().List())
		assert.NoError(t, err)
		assert.JSONEq(t, "["+luismiJSON+","+angelJSON+"]", output)
	})

	t.Run("no users", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, newController(repository.NewUserMemoryRepository()).List())
		assert.NoError(t, err)
		assert.JSONEq(t, "[]", output)
	})
}

func TestUsersController_Show(t *testing.T) {
	t.Parallel()

	t.Run("show user", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, newSeededController().Show(), "2")
		assert.NoError(t, err)
		assert.JSONEq(t, angelJSON, output)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, newSeededController().Show(), "3")
		assert.ErrorIs(t, err, application.ErrUserNotFound)
		assert.Contains(t, output, "user not found")
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		_, err := cmd.TestExecute(t, newSeededController().Show(), "one")
		assert.ErrorIs(t, err, cli.ErrInvalidID)
	})

	t.Run("missing id", func(t *testing.T) {
		t.Parallel()

		_, err := cmd.TestExecute(t, newSeededController().Show())
		assert.Error(t, err)
	})
}

func TestUsersController_Create(t *testing.T) {
	t.Parallel()

	t.Run("create user", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewSeededUserMemoryRepository()

		output, err := cmd.TestExecute(t, newController(repo).Create(), "--username", "C", "--email", "c@x.com")
		assert.NoError(t, err)
		assert.JSONEq(t, `{"id":3,"username":"C","email":"c@x.com"}`, output)
		repository.TestAssert(t, repo).Total(3)
	})

	t.Run("email in use", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewSeededUserMemoryRepository()

		_, err := cmd.TestExecute(t, newController(repo).Create(), "--username", "C", "--email", "angel@email.com")
		assert.ErrorIs(t, err, application.ErrEmailInUse)
		repository.TestAssert(t, repo).Total(2)
	})

	t.Run("allow duplicate email", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewSeededUserMemoryRepository()

		_, err := cmd.TestExecute(t, newController(repo).Create(),
			"--username", "C", "--email", "angel@email.com", "--allow-duplicate-email")
		assert.NoError(t, err)
		repository.TestAssert(t, repo).Total(3)
	})

	t.Run("missing flags", func(t *testing.T) {
		t.Parallel()

		_, err := cmd.TestExecute(t, newSeededController().Create(), "--username", "C")
		assert.Error(t, err)
	})
}

func TestUsersController_Update(t *testing.T) {
	t.Parallel()

	t.Run("update user", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, newSeededController().Update(), "2", "--username", "Angel N.")
		assert.NoError(t, err)
		assert.JSONEq(t, `{"id":2,"username":"Angel N.","email":"angel@email.com"}`, output)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		_, err := cmd.TestExecute(t, newSeededController().Update(), "3", "--username", "nobody")
		assert.ErrorIs(t, err, application.ErrUserNotFound)
	})
}

func TestUsersController_Delete(t *testing.T) {
	t.Parallel()

	t.Run("delete user", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, newSeededController().Delete(), "1")
		assert.NoError(t, err)
		assert.JSONEq(t, "["+angelJSON+"]", output, "remaining users are printed")
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, newSeededController().Delete(), "7")
		assert.NoError(t, err)
		assert.JSONEq(t, "["+luismiJSON+","+angelJSON+"]", output)
	})
}

func TestUsersController_EmailExists(t *testing.T) {
	t.Parallel()

	output, err := cmd.TestExecute(t, newSeededController().EmailExists(), "luismi@email.com")
	assert.NoError(t, err)
	assert.Equal(t, "true\n", output)

	output, err = cmd.TestExecute(t, newSeededController().EmailExists(), "nope@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "false\n", output)
}

func TestUsersController_Demo(t *testing.T) {
	t.Parallel()

	t.Run("run the scenario", func(t *testing.T) {
		t.Parallel()

		demoRepo := repository.NewSeededUserMemoryRepository()
		controller := cli.NewUsersController(newApp(repository.NewUserMemoryRepository()), func() *application.App {
			return newApp(demoRepo)
		})

		output, err := cmd.TestExecute(t, controller.Demo())
		require.NoError(t, err)

		assert.Contains(t, output, "users (2)")
		assert.Contains(t, output, "created user 3")
		assert.Contains(t, output, "users after deleting user 1 (2)")
		assert.Contains(t, output, "user not found")
		assert.Contains(t, output, `"username": "Angel N."`)

		assert.Equal(t, []domain.User{
			{ID: 2, Username: "Angel N.", Email: "angel@email.com"},
			{ID: 3, Username: "C", Email: "c@x.com"},
		}, demoRepo.FindAll(ctx))
	})

	t.Run("independent of the controller's store", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewUserMemoryRepository()
		controller := newController(repo)

		_, err := cmd.TestExecute(t, controller.Demo())
		require.NoError(t, err, "demo does not need seed users in the store")

		_, err = cmd.TestExecute(t, controller.Demo())
		require.NoError(t, err, "demo can run again")

		repository.TestAssert(t, repo).Empty()
	})
}

func TestUsersController_Commands(t *testing.T) {
	t.Parallel()

	names := []string{}
	for _, c := range newSeededController().Commands() {
		names = append(names, c.Name())
	}

	assert.Equal(t, []string{"list", "show", "create", "update", "delete", "email-exists", "demo"}, names)
}

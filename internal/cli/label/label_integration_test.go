package label

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/veyr/internal/cli"
	"github.com/thenoetrevino/veyr/internal/models"
	"github.com/thenoetrevino/veyr/internal/testutil"
	"github.com/thenoetrevino/veyr/internal/testutil/cli"
)

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *clipkg.ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
	return exitErr.Code
}

func TestLabelLifecycle(t *testing.T) {
	repo, app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "bug", "--json"})
	require.NoError(t, err)
	data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
	assert.Equal(t, models.DefaultLabelColor, data["color"])
	labelID := fmt.Sprintf("%.0f", data["id"].(float64))

	t.Run("List", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{})

		require.NoError(t, err)
		assert.Contains(t, output, "bug")
	})

	t.Run("Update color", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{labelID, "--color", "#00FF00"})

		require.NoError(t, err)
		assert.Contains(t, output, "#00FF00")
	})

	t.Run("Invalid color", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{labelID, "--color", "green"})
		assert.Equal(t, clipkg.ExitValidation, exitCode(t, err))
	})

	t.Run("Delete", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{labelID})
		require.NoError(t, err)

		labels, err := repo.ListLabels(context.Background())
		require.NoError(t, err)
		assert.Empty(t, labels)

		_, err = cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{labelID})
		assert.Equal(t, clipkg.ExitNotFound, exitCode(t, err))
	})
}

func TestAttachDetach(t *testing.T) {
	repo, app := cli.SetupCLITest(t)
	ctx := context.Background()
	first := cli.FirstColumn(t, repo)

	taskID := cli.CreateTestTask(t, repo, first.ID, "Labelled")
	bug := cli.CreateTestLabel(t, repo, "bug", "#FF0000")
	ui := cli.CreateTestLabel(t, repo, "ui", "#0000FF")
	task, bugArg, uiArg := fmt.Sprintf("%d", taskID), fmt.Sprintf("%d", bug), fmt.Sprintf("%d", ui)

	_, err := cli.ExecuteCLICommand(t, app, AttachCmd(), []string{task, bugArg})
	require.NoError(t, err)
	_, err = cli.ExecuteCLICommand(t, app, AttachCmd(), []string{task, uiArg})
	require.NoError(t, err)

	t.Run("Attach twice", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, AttachCmd(), []string{task, bugArg})
		assert.Equal(t, clipkg.ExitValidation, exitCode(t, err))
	})

	t.Run("Attach to missing task", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, AttachCmd(), []string{"9999", bugArg})
		assert.Equal(t, clipkg.ExitNotFound, exitCode(t, err))
	})

	t.Run("Detach removes only that label", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, DetachCmd(), []string{task, bugArg})
		require.NoError(t, err)
		assert.Contains(t, output, "detached")

		labels, err := repo.LabelsForTask(ctx, taskID)
		require.NoError(t, err)
		require.Len(t, labels, 1)
		assert.Equal(t, ui, labels[0].ID)
	})

	t.Run("Detach when not attached", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, DetachCmd(), []string{task, bugArg})
		assert.Equal(t, clipkg.ExitValidation, exitCode(t, err))
	})

	t.Run("Bad arguments", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, DetachCmd(), []string{"x", bugArg})
		assert.Equal(t, clipkg.ExitUsage, exitCode(t, err))
	})
}

package task

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/veyr/internal/cli"
	"github.com/thenoetrevino/veyr/internal/testutil"
	"github.com/thenoetrevino/veyr/internal/testutil/cli"
)

func TestCreateTask_Positive(t *testing.T) {
	repo, app := cli.SetupCLITest(t)
	first := cli.FirstColumn(t, repo)

	t.Run("Create in first column by default", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Write release notes",
		})

		require.NoError(t, err)
		assert.Contains(t, output, "created successfully")
		assert.Contains(t, output, "Write release notes")
		assert.Contains(t, output, first.Name)
	})

	t.Run("Create in column by name with JSON output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Review PR",
			"--column", "in progress",
			"--json",
		})

		require.NoError(t, err)
		result := testutil.ParseJSON(t, output)
		assert.True(t, result["success"].(bool))

		data := result["data"].(map[string]interface{})
		assert.Equal(t, "Review PR", data["title"])
		assert.Equal(t, float64(0), data["position"])
	})

	t.Run("Quiet mode prints only the ID", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Quiet task",
			"--quiet",
		})

		require.NoError(t, err)
		assert.Regexp(t, `^\d+\n$`, output)
	})
}

func TestCreateTask_Negative(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	t.Run("Blank title is a validation error", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "   ",
			"--json",
		})

		var exitErr *clipkg.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, clipkg.ExitValidation, exitErr.Code)
		assert.Contains(t, output, "VALIDATION_ERROR")
	})

	t.Run("Unknown column", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Lost",
			"--column", "Nowhere",
		})

		var exitErr *clipkg.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, clipkg.ExitNotFound, exitErr.Code)
	})

	t.Run("Missing title flag", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{})
		assert.Error(t, err)
	})
}

package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/app"
	clipkg "github.com/thenoetrevino/veyr/internal/cli"
	"github.com/thenoetrevino/veyr/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected through the context so the command never opens the
// user's data directory.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctxWithApp := clipkg.WithApp(ctx, testApp)

	testutil.SetupCobraCommand(cmd, args)
	cmd.SetContext(ctxWithApp)

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	return output, executeErr
}

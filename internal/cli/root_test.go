package cli

import (
	"context"
	"io"
	"testing"

	apperrors "github.com/phasemap/phasemap/pkg/errors"
)

func TestRootRejectsUnknownFormat(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"render", "--format", "bmp"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		t.Fatal("render with an unknown format should fail")
	}
	if got := apperrors.GetCode(err); got != apperrors.ErrCodeInvalidFormat {
		t.Errorf("error code = %q, want %q", got, apperrors.ErrCodeInvalidFormat)
	}
	if msg := apperrors.UserMessage(err); msg == "" {
		t.Error("UserMessage() is empty; root error reporting has nothing to print")
	}
}

func TestRootHasSubcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"render", "plan"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

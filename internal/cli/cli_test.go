package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootUsageListsQuiztermCommands(t *testing.T) {
	for _, args := range [][]string{{"--help"}, {"-h"}, {"help"}} {
		var out, errOut bytes.Buffer
		require.Equal(t, ExitOK, Run(args, &out, &errOut), args)
		assert.Empty(t, errOut.String())
		assert.Contains(t, out.String(), "quizterm <command> [options]")
		for _, name := range []string{"play", "serve", "validate", "init"} {
			assert.Contains(t, out.String(), name)
		}
		assert.Contains(t, out.String(), `Use "quizterm <command> --help"`)
	}
}

func TestNoArgsShowsUsage(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, ExitUsage, Run(nil, &out, &errOut))
	assert.Empty(t, errOut.String())
	assert.Contains(t, out.String(), "Usage:")
}

func TestUnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, ExitUsage, Run([]string{"quiz"}, &out, &errOut))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Unknown command: quiz")
	assert.Contains(t, errOut.String(), "Usage:")
}

func TestEveryCommandHasARunner(t *testing.T) {
	seen := map[string]bool{}
	for _, cmd := range commands {
		require.NotNil(t, cmd.Run, cmd.Name)
		assert.False(t, seen[cmd.Name], "duplicate command %q", cmd.Name)
		seen[cmd.Name] = true
		assert.Same(t, cmd, findCommand(cmd.Name))
	}
	assert.Nil(t, findCommand("Play"))
}

func TestCommandHelp(t *testing.T) {
	for _, cmd := range commands {
		t.Run(cmd.Name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			require.Equal(t, ExitOK, Run([]string{cmd.Name, "--help"}, &out, &errOut))
			assert.Empty(t, errOut.String())
			assert.Contains(t, out.String(), "Usage:")
			assert.Contains(t, out.String(), cmd.Summary)
			for _, line := range cmd.Usage {
				assert.Contains(t, out.String(), line)
			}
		})
	}
}

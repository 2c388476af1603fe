package backup

import (
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/kballard/go-shellquote"
)

// HookEnv names the environment variable that carries the backup location to
// the post-backup hook.
const HookEnv = "DOZE_BACKUP"

func parseHook(hook string) ([]string, error) {
	if hook == "" {
		return nil, nil
	}

	cmdSlice, err := shellquote.Split(hook)
	if err != nil {
		return nil, errInvalidHook.Wrap(err)
	}

	return cmdSlice, nil
}

// runHook executes the post-backup command, if one is set. The command is
// killed once timeout elapses.
func runHook(
	ctx context.Context,
	cmdSlice []string,
	timeout time.Duration,
	location string,
) error {
	if len(cmdSlice) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), HookEnv+"="+location)
	cmd.WaitDelay = time.Second

	return cmd.Run()
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyPromptOptions(t *testing.T) {
	const def = "/home/doze/Documents/sleep.txt"

	testCases := []struct {
		Name string
		Opts PromptOptions
		Want Config
	}{
		{
			Name: "accept defaults",
			Opts: PromptOptions{BackupPath: def},
			Want: Config{},
		},
		{
			Name: "custom backup path and clock",
			Opts: PromptOptions{
				BackupPath:     "/mnt/sync/sleep.txt",
				TwentyFourHour: true,
			},
			Want: Config{
				Backup:  BackupConfig{Path: "/mnt/sync/sleep.txt"},
				Display: DisplayConfig{TwentyFourHour: true},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var c Config

			applyPromptOptions(&c, tc.Opts, def)

			assert.Equal(t, tc.Want, c)
		})
	}
}

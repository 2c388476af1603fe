// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// EnvVar selects an alternate set of files so that a test environment does
// not touch real data.
const EnvVar = "DOZE_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	backupFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	backupFilePath string
	logFilePath    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize must be called once at program startup.
func Initialize() error {
	once.Do(func() {
		paths = &Paths{
			configDir:      "doze",
			configFileName: "config.yml",
			dbFileName:     "doze.db",
			backupFileName: "sleep.txt",
			logFileName:    "doze.log",
		}

		paths.applyEnvironmentOverrides(os.Getenv(EnvVar))
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().configDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

// BackupFilePath is the default location of the backup file. It sits in the
// user's documents folder so that it is easy to find and copy.
func BackupFilePath() string {
	return Must().backupFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides(env string) {
	env = strings.TrimSpace(env)
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.dbFileName = fmt.Sprintf("doze_%s.db", env)
	p.backupFileName = fmt.Sprintf("sleep_%s.txt", env)
	p.logFileName = fmt.Sprintf("doze_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config file path: %w", err)
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	p.backupFilePath = filepath.Join(xdg.UserDirs.Documents, p.backupFileName)

	return nil
}

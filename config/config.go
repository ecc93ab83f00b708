// Package config loads the daemon configuration from defaults, an
// optional INI config file, and command line flags, in that order of
// precedence (lowest first).
package config

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "darkpool.conf"
	defaultDataDirname    = "data"
	defaultLogDirname     = "logs"
	defaultKeyFilename    = "cluster.key"
	defaultLogLevel       = "info"

	defaultHost = "127.0.0.1"
	defaultPort = "50051"

	defaultKafkaTopic         = "darkpool.events"
	defaultSegmentSize        = 64 << 20
	defaultBroadcastInterval  = 250 * time.Millisecond
	defaultRetryAfter         = 30 * time.Second
	defaultCheckpointInterval = time.Minute
)

// Config is the fully resolved daemon configuration. All paths are
// absolute and all defaults are filled in by Load.
type Config struct {
	AppDataDir  string `short:"A" long:"appdata" description:"Path to application home directory"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir     string `short:"b" long:"datadir" description:"Directory to store the journal and ledger"`
	LogDir      string `long:"logdir" description:"Directory to log output"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical} or a comma-separated list of SUBSYS=level pairs"`
	LocalLogs   bool   `long:"locallogs" description:"Mirror the log output to stdout"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`

	Listen  string `long:"listen" description:"host:port the gRPC server listens on"`
	KeyFile string `long:"keyfile" description:"Path to the cluster keyring file"`

	KafkaBrokers []string `long:"kafkabroker" description:"Kafka broker address, repeatable"`
	KafkaTopic   string   `long:"kafkatopic" description:"Topic callback events are broadcast on"`

	SegmentSize        int64         `long:"walsegsize" description:"Journal segment size in bytes before rotation"`
	BroadcastInterval  time.Duration `long:"bcastinterval" description:"How often the broadcaster sweeps the outbox"`
	RetryAfter         time.Duration `long:"bcastretry" description:"Age before an unacked event is published again"`
	CheckpointInterval time.Duration `long:"checkpointinterval" description:"How often reclaimed journal segments and acked events are pruned"`
}

// DefaultAppDataDir is where the daemon keeps its config, data, and
// logs unless told otherwise.
func DefaultAppDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, ".darkpool")
}

// Load resolves the configuration from args (normally os.Args[1:]),
// consulting the config file named there or the default one under the
// app data directory. Flags given on the command line win over the
// file, which wins over built-in defaults.
func Load(args []string) (*Config, error) {
	cfg := Config{
		AppDataDir:         DefaultAppDataDir(),
		DebugLevel:         defaultLogLevel,
		KafkaTopic:         defaultKafkaTopic,
		SegmentSize:        defaultSegmentSize,
		BroadcastInterval:  defaultBroadcastInterval,
		RetryAfter:         defaultRetryAfter,
		CheckpointInterval: defaultCheckpointInterval,
	}

	// Pre-parse to pick up an alternative appdata or config file
	// location before the real parse. Errors surface on the second
	// parse, which sees the same arguments.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.PassDoubleDash)
	preParser.ParseArgs(args)

	appData := cleanAndExpandPath(preCfg.AppDataDir)
	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	isDefaultConfigFile := configFile == ""
	if isDefaultConfigFile {
		configFile = filepath.Join(appData, defaultConfigFilename)
	} else if !filepath.IsAbs(configFile) {
		configFile = filepath.Join(appData, configFile)
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := os.Stat(configFile); err == nil {
		if err := flags.NewIniParser(parser).ParseFile(configFile); err != nil {
			return nil, fmt.Errorf("parse %s: %w", configFile, err)
		}
	} else if !isDefaultConfigFile {
		// A config file named on the command line must exist.
		return nil, err
	}

	// Command line flags take precedence over the file.
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	cfg.AppDataDir = cleanAndExpandPath(cfg.AppDataDir)
	cfg.ConfigFile = configFile

	if cfg.DataDir = cleanAndExpandPath(cfg.DataDir); cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(cfg.AppDataDir, defaultDataDirname)
	} else if !filepath.IsAbs(cfg.DataDir) {
		cfg.DataDir = filepath.Join(cfg.AppDataDir, cfg.DataDir)
	}
	if cfg.LogDir = cleanAndExpandPath(cfg.LogDir); cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(cfg.AppDataDir, defaultLogDirname)
	} else if !filepath.IsAbs(cfg.LogDir) {
		cfg.LogDir = filepath.Join(cfg.AppDataDir, cfg.LogDir)
	}
	if cfg.KeyFile = cleanAndExpandPath(cfg.KeyFile); cfg.KeyFile == "" {
		cfg.KeyFile = filepath.Join(cfg.AppDataDir, defaultKeyFilename)
	} else if !filepath.IsAbs(cfg.KeyFile) {
		cfg.KeyFile = filepath.Join(cfg.AppDataDir, cfg.KeyFile)
	}

	var err error
	cfg.Listen, err = normalizeNetworkAddress(cfg.Listen, defaultHost, defaultPort)
	if err != nil {
		return nil, err
	}

	if cfg.SegmentSize <= 0 {
		return nil, fmt.Errorf("walsegsize must be positive, got %d", cfg.SegmentSize)
	}
	if cfg.BroadcastInterval <= 0 || cfg.CheckpointInterval <= 0 {
		return nil, fmt.Errorf("broadcast and checkpoint intervals must be positive")
	}
	if len(cfg.KafkaBrokers) == 0 {
		cfg.KafkaBrokers = []string{"localhost:9092"}
	}

	return &cfg, nil
}

// normalizeNetworkAddress checks for a valid local network address format and
// adds default host and port if not present. Invalidates addresses that include
// a protocol identifier.
func normalizeNetworkAddress(a, defaultHost, defaultPort string) (string, error) {
	if strings.Contains(a, "://") {
		return a, fmt.Errorf("address %s contains a protocol identifier, which is not allowed", a)
	}
	if a == "" {
		return defaultHost + ":" + defaultPort, nil
	}
	host, port, err := net.SplitHostPort(a)
	if err != nil {
		if strings.Contains(err.Error(), "missing port in address") {
			normalized := a + ":" + defaultPort
			host, port, err = net.SplitHostPort(normalized)
			if err != nil {
				return a, fmt.Errorf("unable to normalize address %s: %v", normalized, err)
			}
		} else {
			return a, fmt.Errorf("unable to normalize address %s: %v", a, err)
		}
	}
	if host == "" {
		host = defaultHost
	}
	if port == "" {
		port = defaultPort
	}
	return host + ":" + port, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the passed
// path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if path == "" {
		return ""
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows cmd.exe-style
	// %VARIABLE%, but the variables can still be expanded via POSIX-style
	// $VARIABLE.
	path = os.ExpandEnv(path)
	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

	// Expand initial ~ to the current user's home directory, or ~otheruser
	// to otheruser's home directory.
	path = path[1:]
	var pathSeparators string
	if runtime.GOOS == "windows" {
		pathSeparators = string(os.PathSeparator) + "/"
	} else {
		pathSeparators = string(os.PathSeparator)
	}
	userName := ""
	if i := strings.IndexAny(path, pathSeparators); i != -1 {
		userName = path[:i]
		path = path[i:]
	}

	homeDir := ""
	var u *user.User
	var err error
	if userName == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(userName)
	}
	if err == nil {
		homeDir = u.HomeDir
	}
	// Fallback to CWD if user lookup fails or user has no home directory.
	if homeDir == "" {
		homeDir = "."
	}

	return filepath.Join(homeDir, path)
}

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags from args.
//
// Flags:
//
//	-a http address in format [host]:[port]
//	-d data directory holding owner documents
//	-b backup directory
//	-no-backups disable backup rotation
//	-c/-config json file path with configs
//	-token-sign-key admin token signing key
//	-token-issuer admin token issuer
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-default-size default vault size (multiple of 9)
//	-save-throttle minimum interval between two saves of one vault
//	-workers number of persist workers
//	-log-level log level
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("vaultd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var dataDir, backupDir string
	var noBackups bool
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var requestTimeout, saveThrottle time.Duration
	var defaultSize, persistWorkers int
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&dataDir, "d", "", "Data directory")
	fs.StringVar(&backupDir, "b", "", "Backup directory")
	fs.BoolVar(&noBackups, "no-backups", false, "Disable backups")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&defaultSize, "default-size", 0, "Default vault size")
	fs.DurationVar(&saveThrottle, "save-throttle", 0, "Minimum interval between saves of one vault")
	fs.IntVar(&persistWorkers, "workers", 0, "Persist workers")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			LogLevel:     logLevel,
		},
		Storage: Storage{
			Files: Files{
				DataDir:        dataDir,
				BackupDir:      backupDir,
				DisableBackups: noBackups,
			},
		},
		Vaults: Vaults{
			DefaultSize:  defaultSize,
			SaveThrottle: saveThrottle,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PersistWorkers: persistWorkers,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

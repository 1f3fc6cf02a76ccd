package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the command line.
//
// Flags:
//
//	-a              sync server listen address [host]:[port]
//	-d              sync server database DSN
//	-l              client SQLite file
//	-quota          client store quota in bytes
//	-c / -config    JSON config file
//	-token-sign-key token signing key
//	-token-issuer   token issuer name
//	-token-duration token lifetime (e.g. 720h)
//	-issue-token    print a token for this account and exit (server)
//	-request-timeout server request timeout
//	-sync-server    sync base URL (client)
//	-sync-token     bearer token (client)
//	-sync-timeout   client request timeout
//	-sync-interval  pause between scheduled syncs
//	-poll-interval  clipboard polling interval
//	-tier           free or premium
//	-headless       run the client without the terminal UI
//	-s3-bucket, -s3-region, -s3-endpoint  object storage for payloads
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var cfg StructuredConfig

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	flag.StringVar(&cfg.Storage.Local.DSN, "l", "", "Local SQLite file")
	flag.Int64Var(&cfg.Storage.Local.QuotaBytes, "quota", 0, "Local store quota in bytes")
	flag.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	flag.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 720h)")
	flag.StringVar(&cfg.App.IssueTokenFor, "issue-token", "", "Print a bearer token for the account and exit")
	flag.StringVar(&cfg.App.Tier, "tier", "", "Subscription tier: free or premium")
	flag.BoolVar(&cfg.App.Headless, "headless", false, "Run without the terminal UI")
	flag.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&cfg.Adapter.HTTPAddress, "sync-server", "", "Sync server base URL")
	flag.StringVar(&cfg.Adapter.Token, "sync-token", "", "Sync bearer token")
	flag.DurationVar(&cfg.Adapter.RequestTimeout, "sync-timeout", 0, "Sync request timeout")
	flag.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Pause between scheduled syncs")
	flag.DurationVar(&cfg.Workers.ClipboardPollInterval, "poll-interval", 0, "Clipboard polling interval")
	flag.StringVar(&cfg.Storage.S3.Bucket, "s3-bucket", "", "S3 bucket for snapshot payloads")
	flag.StringVar(&cfg.Storage.S3.Region, "s3-region", "", "S3 region")
	flag.StringVar(&cfg.Storage.S3.Endpoint, "s3-endpoint", "", "S3 endpoint for self-hosted stores")

	flag.Parse()

	cfg.Server.HTTPAddress = serverAddress.String()
	return &cfg
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the default server address.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

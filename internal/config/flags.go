package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend address in format [host]:[port]
//	-d local metric buffer DSN (SQLite path)
//	-device-id stable per-installation device identifier
//	-locale food recognition locale hint (e.g. "zh-CN")
//	-email account email for login
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval background health sync interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var backendAddress NetAddress
	var databaseDSN string
	var deviceID string
	var locale string
	var email string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var jsonConfigPath string

	flag.Var(&backendAddress, "a", "Backend net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local metric buffer DSN")
	flag.StringVar(&deviceID, "device-id", "", "Device identifier")
	flag.StringVar(&locale, "locale", "", "Recognition locale hint")
	flag.StringVar(&email, "email", "", "Account email")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DeviceID: deviceID,
			Locale:   locale,
		},
		Auth: Auth{
			Email: email,
		},
		Adapter: Adapter{
			HTTPAddress:    backendAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}
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

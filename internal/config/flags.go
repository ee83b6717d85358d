// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses the portal command-line flags from args.
//
// Flags:
//
//	-a portal address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-page masthead page id of the landing page
//	-identity-url identity service user-info endpoint
//	-filemover-url FileMover service base URL
//	-initial-delay delay before the first status poll
//	-max-delay cap of the doubling poll interval
func ParseFlags(args []string) (*StructuredConfig, error) {
	var portalAddress NetAddress
	var jsonConfigPath string
	var requestTimeout time.Duration
	var pageID string
	var identityURL string
	var fileMoverURL string
	var initialDelay, maxDelay time.Duration

	fs := flag.NewFlagSet("portal", flag.ContinueOnError)
	fs.Var(&portalAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&pageID, "page", "", "Masthead page id of the landing page")
	fs.StringVar(&identityURL, "identity-url", "", "Identity service user-info URL")
	fs.StringVar(&fileMoverURL, "filemover-url", "", "FileMover service base URL")
	fs.DurationVar(&initialDelay, "initial-delay", 0, "Delay before the first status poll")
	fs.DurationVar(&maxDelay, "max-delay", 0, "Cap of the poll interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Portal: Portal{
			HTTPAddress:    portalAddress.String(),
			RequestTimeout: requestTimeout,
			PageID:         pageID,
		},
		Identity: Identity{
			URL: identityURL,
		},
		FileMover: FileMover{
			BaseURL:      fileMoverURL,
			InitialDelay: initialDelay,
			MaxDelay:     maxDelay,
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

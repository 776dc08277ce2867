package config

import (
	"flag"
	"os"
	"time"

	"github.com/mlajnef/rpc-messenger/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   relay gRPC bind address (e.g., ":9000")
//	-d string   primary PostgreSQL DSN
//	-k string   message cipher key, URL-safe base64
//	-f string   secondary store dial target for replication
//	-t int      replication timeout, seconds
//	-s string   secondary store gRPC bind address (e.g., ":9001")
//	-e string   secondary PostgreSQL DSN
//
// The function first filters os.Args to the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k", "-f", "-t", "-s", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run the relay server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "primary database DSN")
	fs.StringVar(&config.CipherKey, "k", config.CipherKey, "message cipher key (base64)")
	fs.StringVar(&config.SecondaryAddr, "f", config.SecondaryAddr, "secondary store address for replication")

	replicationTimeout := fs.Int("t", int(config.ReplicationTimeout.Seconds()), "replication timeout (in seconds)")

	fs.StringVar(&config.SecondaryEndpointGRPC, "s", config.SecondaryEndpointGRPC, "address and port to run the secondary store server")
	fs.StringVar(&config.SecondaryDSN, "e", config.SecondaryDSN, "secondary database DSN")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ReplicationTimeout = time.Duration(*replicationTimeout) * time.Second
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/pokerpackets/internal/catalog"
	"github.com/danmuck/pokerpackets/internal/config"
	"github.com/danmuck/pokerpackets/internal/logging"
	"github.com/danmuck/pokerpackets/internal/protocol"
	"github.com/rs/zerolog/log"
)

const usage = `usage: packetctl [-config path] <command> [args]

commands:
  catalog        list registered message types
  sample <NAME>  print the hex encoding of a default-valued message
  decode <hex>   decode back-to-back framed messages
  init           write an example config to the -config path
`

var errUsage = errors.New("invalid usage")

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		fmt.Fprintf(os.Stderr, "packetctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("packetctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("config", "", "path to packetctl.toml")
	force := fs.Bool("force", false, "overwrite an existing config on init")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}

	if rest[0] == "init" {
		if *configPath == "" {
			return fmt.Errorf("%w: init needs -config", errUsage)
		}
		if err := config.WriteTemplate(*configPath, *force); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", *configPath)
		return nil
	}

	codec, err := setup(*configPath)
	if err != nil {
		return err
	}

	switch rest[0] {
	case "catalog":
		return printCatalog(out, codec.Registry())
	case "sample":
		if len(rest) != 2 {
			return fmt.Errorf("%w: sample takes one message name", errUsage)
		}
		return printSample(out, codec, rest[1])
	case "decode":
		if len(rest) != 2 {
			return fmt.Errorf("%w: decode takes one hex string", errUsage)
		}
		return printDecode(out, codec, rest[1])
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, rest[0])
	}
}

// setup builds the codec: built-in catalog, then config extensions, then
// seal.
func setup(path string) (*protocol.Codec, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		logging.SetLevel(cfg.LogLevel)
		log.Info().Str("path", path).Int("extensions", len(cfg.Messages)).Msg("loaded packetctl config")
	}

	if len(cfg.Messages) == 0 {
		return protocol.NewCodec(catalog.Default(), cfg.Limits()), nil
	}
	reg, err := catalog.New()
	if err != nil {
		return nil, err
	}
	if err := config.RegisterExtensions(reg, cfg.Messages); err != nil {
		return nil, err
	}
	reg.Seal()
	return protocol.NewCodec(reg, cfg.Limits()), nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp(os.Stdout)
	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newApp(w io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "fraction"
	app.Usage = "Exact rational arithmetic on 64-bit fractions."
	app.Version = config.BuildVersion
	app.Writer = w
	app.ErrWriter = w
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration file",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Usage:   "the log level, overrides the configuration",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log",
		},
	}
	app.Before = setupCmd
	app.Commands = []*cli.Command{
		{
			Name:            "reduce",
			Aliases:         []string{"r"},
			Usage:           "Print each fraction in lowest terms",
			ArgsUsage:       "FRACTION...",
			SkipFlagParsing: true,
			Action:          reduceCmd,
		},
		{
			Name:            "calc",
			Usage:           "Apply a binary operator, one of + - * / % << >> >>> & | ^ min max cmp divrem",
			ArgsUsage:       "FRACTION OPERATOR FRACTION",
			SkipFlagParsing: true,
			Action:          calcCmd,
		},
		{
			Name:            "inspect",
			Usage:           "Print the components and predicates of a fraction",
			ArgsUsage:       "FRACTION",
			SkipFlagParsing: true,
			Action:          inspectCmd,
		},
		{
			Name:            "convert",
			Usage:           "Convert a fraction to a Go numeric type or decimal",
			ArgsUsage:       "TYPE FRACTION",
			SkipFlagParsing: true,
			Action:          convertCmd,
		},
		{
			Name:            "encode",
			Usage:           "Encode a fraction as msgpack HEX",
			ArgsUsage:       "FRACTION",
			SkipFlagParsing: true,
			Action:          encodeCmd,
		},
		{
			Name:   "decode",
			Usage:  "Decode a msgpack HEX fraction",
			Action: decodeCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "raw",
					Usage: "the msgpack encoded fraction `HEX`",
				},
			},
		},
	}
	return app
}

func setupCmd(c *cli.Context) error {
	custom := config.Default()
	if file := c.String("config"); file != "" {
		cfg, err := config.Initialize(file)
		if err != nil {
			return err
		}
		custom = cfg
	}
	if l := c.Int("log"); l > 0 {
		custom.Logger.Level = l
	}
	if f := c.String("filter"); f != "" {
		custom.Logger.Filter = f
	}

	logger.SetLevel(custom.Logger.Level)
	logger.SetLimiter(custom.Logger.Limiter)
	err := logger.SetFilter(custom.Logger.Filter)
	if err != nil {
		return err
	}
	c.App.Metadata = map[string]interface{}{"config": custom}
	logger.Debugf("setup %s level %d places %d", c.App.Version, custom.Logger.Level, custom.Format.DecimalPlaces)
	return nil
}

func customFromContext(c *cli.Context) *config.Custom {
	if custom, ok := c.App.Metadata["config"].(*config.Custom); ok {
		return custom
	}
	return config.Default()
}

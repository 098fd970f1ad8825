package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"playdeck/internal/actions"
	"playdeck/internal/catalog"
	"playdeck/internal/config"
	"playdeck/internal/converter"
	"playdeck/internal/logger"
	"playdeck/internal/porter"
	"playdeck/internal/utils"
)

// app holds what the Before hook builds for the commands
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	catalog *catalog.Catalog
	porter  *porter.Porter
}

func (a *app) setup(c *cli.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.IsSet("library") {
		cfg.LibraryFile = c.String("library")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	a.cfg = cfg

	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	a.logger = log
	for _, w := range cfg.Warnings {
		log.Warn("config", zap.String("warning", w))
	}

	p, err := porter.NewPorterWithSource(cfg.LibrarySource(), cfg.LibraryFile, cfg.ExportDir, log)
	if err != nil {
		return err
	}
	a.porter = p

	library, err := p.LoadLibrary(a.searchFolder())
	if err != nil {
		return err
	}

	a.catalog = catalog.New(library, utils.NewRand(), log)
	a.catalog.SetVolume(cfg.Volume)
	if err := a.catalog.SeedPlaylists(catalog.DemoPlaylists); err != nil {
		return fmt.Errorf("failed to seed playlists: %w", err)
	}
	return nil
}

func (a *app) searchFolder() converter.TextFolder {
	if !a.cfg.SearchT2S {
		return converter.NewCaseFolder()
	}
	folder, err := converter.NewOpenCCFolder(a.logger)
	if err != nil {
		a.logger.Warn("OpenCC unavailable, falling back to case folding", zap.Error(err))
		return converter.NewCaseFolder()
	}
	return folder
}

func (a *app) session() *actions.Session {
	return actions.NewSession(a.catalog, a.porter, actions.NewHuhPrompter(15), os.Stdout, a.logger)
}

func (a *app) play(c *cli.Context) error {
	return a.session().Run()
}

func main() {
	a := &app{}

	cliApp := &cli.App{
		Name:  "playdeck",
		Usage: "Playdeck is a terminal music catalog with playlists, search and recommendations.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "library",
				Aliases: []string{"l"},
				Usage:   "load the library from a CSV `FILE` instead of the demo tracks",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL` (debug, info, warn, error)",
			},
		},
		Before: a.setup,
		After: func(c *cli.Context) error {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
			return nil
		},
		Action: a.play,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "Start the interactive menu",
				Action: a.play,
			},
			{
				Name:  "library",
				Usage: "List every track in the library",
				Action: func(c *cli.Context) error {
					actions.PrintLibrary(os.Stdout, a.catalog)
					return nil
				},
			},
			{
				Name:      "search",
				Usage:     "Search tracks by title, artist or genre",
				ArgsUsage: "QUERY",
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return cli.Exit("search requires a QUERY", 2)
					}
					actions.PrintSearch(os.Stdout, a.catalog, strings.Join(c.Args().Slice(), " "))
					return nil
				},
			},
			{
				Name:  "playlists",
				Usage: "List playlists with their track counts and durations",
				Action: func(c *cli.Context) error {
					actions.PrintPlaylists(os.Stdout, a.catalog)
					return nil
				},
			},
			{
				Name:  "export",
				Usage: "Export a playlist to a CSV file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "playlist",
						Aliases: []string{"p"},
						Usage:   "playlist `NAME` to export",
					},
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "destination CSV `FILE`",
					},
				},
				Action: func(c *cli.Context) error {
					return actions.ExportPlaylist(c, a.session())
				},
			},
		},
	}

	err := cliApp.Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

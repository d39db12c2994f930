package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jeff-nasseri/mailharvest/config"
	"github.com/jeff-nasseri/mailharvest/interfaces"
	"github.com/jeff-nasseri/mailharvest/internal/logger"
	"github.com/jeff-nasseri/mailharvest/internal/models"
	"github.com/jeff-nasseri/mailharvest/services/export"
	"github.com/jeff-nasseri/mailharvest/services/imap"
	"github.com/jeff-nasseri/mailharvest/services/tracker"
)

func main() {
	app := &cli.App{
		Name:  "mailharvest",
		Usage: "Harvest emails over IMAP into flat JSON records",
		Commands: []*cli.Command{
			exportCommand(),
			trackCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("mailharvest failed: %v", err)
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Fetch mailbox contents and write them as a JSON array",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "path of the JSON file to write",
				Required: true,
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "only keep the most recent N messages",
			},
			&cli.StringFlag{
				Name:    "provider",
				Aliases: []string{"p"},
				Value:   "gmail",
				Usage:   "email provider (gmail, outlook, yahoo, aol, zoho)",
			},
			&cli.BoolFlag{
				Name:  "plain-text",
				Usage: "skip HTML bodies during extraction",
			},
			&cli.StringSliceFlag{
				Name:  "exclude-sender",
				Usage: "skip senders containing this substring (repeatable)",
			},
			&cli.StringFlag{
				Name:  "exclude-file",
				Usage: "file with one excluded sender substring per line",
			},
		},
		Action: runExport,
	}
}

func runExport(c *cli.Context) error {
	cfg, appLogger, err := initApp()
	if err != nil {
		return err
	}

	profile, err := imap.ResolveProvider(c.String("provider"))
	if err != nil {
		return err
	}

	credentials, err := config.LoadCredentials(profile.Name)
	if err != nil {
		return err
	}

	exclusions := models.NewExclusionList(c.StringSlice("exclude-sender")...)
	if path := c.String("exclude-file"); path != "" {
		patterns, err := models.LoadExclusionFile(path)
		if err != nil {
			return err
		}
		exclusions.Add(patterns...)
	}
	if exclusions.Len() > 0 {
		appLogger.Infof("excluding %d sender patterns", exclusions.Len())
	}

	connector := imap.NewIMAPConnector(profile, credentials, cfg.AppConfig.Mailbox, appLogger)
	exporter := export.NewJSONExporter(appLogger)
	service := export.NewService(connector, exporter, appLogger)

	return service.Run(export.Options{
		OutputPath: c.String("output"),
		Fetch: interfaces.FetchOptions{
			Limit:         c.Int("limit"),
			PlainTextOnly: c.Bool("plain-text"),
			Exclusions:    exclusions,
		},
	})
}

func trackCommand() *cli.Command {
	return &cli.Command{
		Name:  "track",
		Usage: "Analyze an exported JSON file for job application status",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Value:   "output.json",
				Usage:   "path of the exported JSON file",
			},
			&cli.StringFlag{
				Name:    "export",
				Aliases: []string{"e"},
				Usage:   "also write the aggregated rows to this CSV file",
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"n"},
				Usage:   "disable colors in the table",
			},
		},
		Action: runTrack,
	}
}

func runTrack(c *cli.Context) error {
	_, appLogger, err := initApp()
	if err != nil {
		return err
	}

	service := tracker.NewTrackerService(appLogger)

	records, err := service.LoadRecords(c.String("input"))
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no records found in %s", c.String("input"))
	}

	applications := service.Analyze(records)
	groups := service.Aggregate(applications)
	service.Render(groups, os.Stdout, c.Bool("no-color"))

	if path := c.String("export"); path != "" && len(groups) > 0 {
		return service.ExportCSV(groups, path)
	}
	return nil
}

func initApp() (*config.Config, logger.Logger, error) {
	cfg, err := config.InitConfig()
	if err != nil {
		return nil, nil, err
	}

	appLogger := logger.NewAppLogger(cfg.Logger)
	appLogger.InitLogger()

	return cfg, appLogger, nil
}

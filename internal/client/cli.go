package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/clip-keeper/internal/export"
	"github.com/MKhiriev/clip-keeper/models"
)

// NewCLI builds the command tree around app. Without a subcommand the
// interactive client runs. Configuration flags are parsed before the
// command tree sees the arguments, so args holds only the program name and
// the subcommand part.
func NewCLI(app *App, build models.AppBuildInfo, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "clipkeeper",
		Usage:   "Clipboard history with encrypted cross-device sync",
		Version: build.BuildVersion(),
		Writer:  out,
		Before: func(ctx context.Context, _ *cli.Command) (context.Context, error) {
			return ctx, app.Load(ctx)
		},
		After: func(context.Context, *cli.Command) error {
			app.Close()
			return nil
		},
		Action: func(ctx context.Context, _ *cli.Command) error {
			return app.Run(ctx)
		},
		Commands: []*cli.Command{
			syncCommand(app),
			keyCommand(app),
			historyCommand(app),
			addCommand(app),
			exportCommand(app),
			versionCommand(build),
		},
	}
}

func syncCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Control cloud sync",
		Commands: []*cli.Command{
			{
				Name:  "enable",
				Usage: "Turn sync on and run the first cycle",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					report, err := app.services.Sync.Enable(ctx)
					if err != nil {
						return err
					}
					printReport(cmd.Root().Writer, report)
					return nil
				},
			},
			{
				Name:  "disable",
				Usage: "Turn sync off",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "clear",
						Usage: "Also delete the snapshots stored on the server",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if err := app.services.Sync.Disable(ctx, cmd.Bool("clear")); err != nil {
						return err
					}
					fmt.Fprintln(cmd.Root().Writer, "Cloud sync disabled")
					return nil
				},
			},
			{
				Name:  "now",
				Usage: "Run one sync cycle",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					resp := app.dispatcher.Handle(ctx, models.Message{Action: models.ActionSyncNow})
					if resp.Error != "" {
						return errors.New(resp.Error)
					}
					printReport(cmd.Root().Writer, *resp.Report)
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "Show the sync state",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					resp := app.dispatcher.Handle(ctx, models.Message{Action: models.ActionGetSyncStatus})
					if resp.Error != "" {
						return errors.New(resp.Error)
					}
					printStatus(cmd.Root().Writer, *resp.Status)
					return nil
				},
			},
		},
	}
}

func passphraseFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "passphrase",
		Aliases: []string{"p"},
		Usage:   "Passphrase wrapping the exported key",
		Sources: cli.EnvVars("CLIPKEEPER_PASSPHRASE"),
	}
}

func keyCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "key",
		Usage: "Move the encryption key between devices",
		Commands: []*cli.Command{
			{
				Name:  "export",
				Usage: "Print the encryption key wrapped with a passphrase",
				Flags: []cli.Flag{passphraseFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					pass := cmd.String("passphrase")
					if pass == "" {
						return ErrPassphraseRequired
					}
					if err := app.services.Keys.EnsureKey(ctx); err != nil {
						return err
					}
					blob, err := app.services.Keys.ExportKey(ctx, pass)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.Root().Writer, blob)
					return nil
				},
			},
			{
				Name:      "import",
				Usage:     "Replace the local key with one exported on another device",
				ArgsUsage: "<exported key>",
				Flags:     []cli.Flag{passphraseFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					blob := strings.TrimSpace(cmd.Args().First())
					if blob == "" {
						return ErrKeyBlobRequired
					}
					pass := cmd.String("passphrase")
					if pass == "" {
						return ErrPassphraseRequired
					}
					if err := app.services.Keys.ImportKey(ctx, blob, pass); err != nil {
						return err
					}
					fmt.Fprintln(cmd.Root().Writer, "Encryption key imported")
					return nil
				},
			},
		},
	}
}

func historyCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Print the clipboard history, newest first",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Print raw JSON"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			resp := app.dispatcher.Handle(ctx, models.Message{Action: models.ActionGetClipboardHistory})
			if resp.Error != "" {
				return errors.New(resp.Error)
			}

			w := cmd.Root().Writer
			if cmd.Bool("json") {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(resp.History)
			}
			for _, item := range resp.History {
				fav := " "
				if item.Favorite {
					fav = "*"
				}
				fmt.Fprintf(w, "%s %d  %-5s  %s\n", fav, item.ID, item.Type, item.Preview)
			}
			return nil
		},
	}
}

func addCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add text to the history as if it had been copied",
		ArgsUsage: "<text>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			text := strings.Join(cmd.Args().Slice(), " ")
			if strings.TrimSpace(text) == "" {
				return ErrNothingToAdd
			}
			resp := app.dispatcher.Handle(ctx, models.Message{
				Action:  models.ActionAddClipboardItem,
				Content: text,
				Source:  json.RawMessage(`"manual"`),
			})
			if resp.Error != "" {
				return errors.New(resp.Error)
			}
			return nil
		},
	}
}

func exportCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the history to a file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   string(export.FormatJSON),
				Usage:   "json, csv, txt or yaml",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file; - for stdout (default: clipkeeper-export-<date>.<format>)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := export.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			resp := app.dispatcher.Handle(ctx, models.Message{Action: models.ActionExportHistory, Format: string(format)})
			if resp.Error != "" {
				return errors.New(resp.Error)
			}

			out := cmd.String("output")
			if out == "-" {
				_, err = io.WriteString(cmd.Root().Writer, resp.Data)
				return err
			}
			if out == "" {
				out = export.Filename(format, time.Now())
			}
			if err = os.WriteFile(out, []byte(resp.Data), 0o600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.Root().Writer, "Exported to %s\n", out)
			return nil
		},
	}
}

func versionCommand(build models.AppBuildInfo) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Action: func(_ context.Context, cmd *cli.Command) error {
			fmt.Fprintln(cmd.Root().Writer, build.String())
			return nil
		},
	}
}

func printReport(w io.Writer, r models.SyncReport) {
	if r.Merged {
		fmt.Fprintf(w, "Synced: merged remote changes, %d items, %d templates\n", r.Items, r.Templates)
		return
	}
	fmt.Fprintf(w, "Synced: uploaded %d items, %d templates\n", r.Items, r.Templates)
}

func printStatus(w io.Writer, s models.SyncStatus) {
	if !s.Enabled {
		fmt.Fprintln(w, "Cloud sync: off")
		return
	}
	fmt.Fprintf(w, "Cloud sync: %s\n", s.State)
	fmt.Fprintf(w, "Device: %s (%d on account)\n", s.DeviceID, s.DeviceCount)
	if s.LastSync != nil {
		fmt.Fprintf(w, "Last sync: %s\n", s.LastSync.Local().Format(time.DateTime))
	} else {
		fmt.Fprintln(w, "Last sync: never")
	}
	if s.LastError != "" {
		fmt.Fprintf(w, "Last error: %s\n", s.LastError)
	}
}

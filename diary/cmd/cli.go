package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"mooddiary/diary/calendar"
	"mooddiary/diary/controllers"
	"mooddiary/diary/mood"
	"mooddiary/diary/utils/apperr"
	"mooddiary/diary/utils/color"
	"mooddiary/diary/utils/dates"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// newCLIApp builds the diary command set. ctrl may be nil when only help is
// requested.
func newCLIApp(ctrl *controllers.MoodController, out io.Writer) *cli.App {
	app := &cli.App{
		Name:      "diary",
		Usage:     "Inspect and maintain the mood diary",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-color", Usage: "Disable coloured output"},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("no-color") {
				color.Disable()
			}
			return nil
		},
		Commands: []*cli.Command{
			getCmd(ctrl, out),
			todayCmd(ctrl, out),
			monthCmd(ctrl, out),
			calendarCmd(ctrl, out),
			deleteCmd(ctrl, out),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func getCmd(ctrl *controllers.MoodController, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print the record for a date",
		ArgsUsage: "<YYYY-MM-DD>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("get takes exactly one date", 2)
			}
			rec, err := ctrl.GetMood(c.Context, c.Args().First())
			if err != nil {
				return exitError(err)
			}
			return writeJSON(out, rec)
		},
	}
}

func todayCmd(ctrl *controllers.MoodController, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "today",
		Usage: "Print today's record in the configured timezone",
		Action: func(c *cli.Context) error {
			rec, err := ctrl.GetMood(c.Context, ctrl.Today())
			if err != nil {
				return exitError(err)
			}
			return writeJSON(out, rec)
		},
	}
}

func monthCmd(ctrl *controllers.MoodController, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "month",
		Usage:     "Print every record of a month keyed by day",
		ArgsUsage: "<year> <month>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "json", Usage: "Output format: json|yaml"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("month takes <year> <month>", 2)
			}
			year, month, err := dates.ParseYearMonth(c.Args().Get(0), c.Args().Get(1))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			agg, err := ctrl.GetMonth(c.Context, year, month)
			if err != nil {
				return exitError(err)
			}
			switch strings.ToLower(c.String("format")) {
			case "json":
				return writeJSON(out, agg)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(agg); err != nil {
					return err
				}
				return enc.Close()
			}
			return cli.Exit(fmt.Sprintf("unknown format %q", c.String("format")), 2)
		},
	}
}

func calendarCmd(ctrl *controllers.MoodController, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "calendar",
		Usage:     "Print a month as a text calendar",
		ArgsUsage: "<year> <month>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("calendar takes <year> <month>", 2)
			}
			year, month, err := dates.ParseYearMonth(c.Args().Get(0), c.Args().Get(1))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			grid, err := controllers.NewCalendarController(ctrl).Month(c.Context, year, month)
			if err != nil {
				return exitError(err)
			}
			if err := calendar.RenderText(out, grid); err != nil {
				return err
			}
			if err := writeLegend(out); err != nil {
				return err
			}
			for _, cell := range grid.Cells {
				if cell.HasEntry && !cell.Clickable {
					fmt.Fprintln(out, color.ColorWarning("unrecognized mood on "+cell.Date))
				}
			}
			return nil
		},
	}
}

func deleteCmd(ctrl *controllers.MoodController, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete the record for a date",
		ArgsUsage: "<YYYY-MM-DD>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("delete takes exactly one date", 2)
			}
			date := c.Args().First()
			if err := ctrl.DeleteMood(c.Context, date); err != nil {
				return exitError(err)
			}
			fmt.Fprintln(out, color.ColorInfo("deleted "+date))
			return nil
		},
	}
}

func writeLegend(out io.Writer) error {
	parts := make([]string, 0, len(mood.Levels()))
	for _, d := range mood.Levels() {
		parts = append(parts, color.ColorMood(d.Level, d.Glyph+" "+d.Label))
	}
	_, err := fmt.Fprintln(out, strings.Join(parts, "   "))
	return err
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitError maps diary errors to exit codes: 2 bad input, 3 missing record.
func exitError(err error) error {
	switch {
	case apperr.Is(err, apperr.CodeValidation):
		return cli.Exit(err.Error(), 2)
	case apperr.Is(err, apperr.CodeNotFound):
		return cli.Exit(err.Error(), 3)
	}
	return cli.Exit(err.Error(), 1)
}

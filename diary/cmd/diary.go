// Command-line interface for the mood diary database
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"mooddiary/diary/config"
	"mooddiary/diary/controllers"
	"mooddiary/diary/sources/psql"
	"mooddiary/diary/sources/psql/dao"
	"mooddiary/diary/utils/color"
	"mooddiary/diary/utils/dates"

	"github.com/urfave/cli/v2"
)

func isHelp(args []string) bool {
	if len(args) < 2 {
		return true
	}
	switch args[1] {
	case "help", "h", "--help", "-h":
		return true
	}
	return false
}

func main() {
	if isHelp(os.Args) {
		if err := newCLIApp(nil, os.Stdout).Run(os.Args); err != nil {
			fmt.Fprintln(os.Stderr, color.ColorError(fmt.Sprintf("error: %v", err)))
			os.Exit(1)
		}
		return
	}

	cfg := config.LoadConfig()
	loc, err := dates.LoadLocation(cfg.Timezone)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.ColorError(fmt.Sprintf("error: %v", err)))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.ColorError(fmt.Sprintf("error: failed to open database: %v", err)))
		os.Exit(1)
	}
	defer db.Close()

	ctrl := controllers.NewMoodController(dao.NewMoodDAO(db.DB), loc)
	if err := newCLIApp(ctrl, os.Stdout).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.ColorError(fmt.Sprintf("error: %v", err)))
		code := 1
		if coder, ok := err.(cli.ExitCoder); ok {
			code = coder.ExitCode()
		}
		db.Close()
		os.Exit(code)
	}
}

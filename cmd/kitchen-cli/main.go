package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

var version = "dev"

func main() {
	app := cli.App{
		Name:      "kitchen-cli",
		HelpName:  "kitchen-cli",
		Usage:     "Count down a cooking session in the terminal.",
		UsageText: "kitchen-cli <command> [arguments...]",
		Version:   version,
		Description: `Kitchen CLI schedules cook items against one countdown clock.
Each item starts when the clock reaches its cook time, so everything
finishes together when the clock hits zero.`,
		OnUsageError: usageErrorCallback,
		Commands: []cli.Command{
			{
				Name:    "run",
				Aliases: []string{"r"},
				Usage:   "start the countdown and ring when items must go on",
				Action:  runCountdown,
				Flags:   append(planFlags, runFlags...),
			},
			{
				Name:    "plan",
				Aliases: []string{"p"},
				Usage:   "print which items are waiting and which are cooking",
				Action:  printPlan,
				Flags:   planFlags,
			},
			{
				Name:    "export",
				Aliases: []string{"e"},
				Usage:   "write the cook plan as an iCalendar file",
				Action:  exportPlan,
				Flags:   append(planFlags, exportFlags...),
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "kitchen-cli:", err)
		os.Exit(1)
	}
}

func usageErrorCallback(ctx *cli.Context, err error, isSubcommand bool) error {
	fmt.Fprintf(ctx.App.Writer, "Usage error: %v\n\n", err)
	return cli.ShowAppHelp(ctx)
}

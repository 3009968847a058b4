package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/flowrun-io/flowrun/pkg/log"
	"github.com/flowrun-io/flowrun/pkg/models"
	"github.com/flowrun-io/flowrun/pkg/otelhelper"
	"github.com/flowrun-io/flowrun/pkg/workflow"
)

func main() {
	cmd := &cli.Command{
		Name:                  "flowrun",
		EnableShellCompletion: true,
		Usage:                 "Execute a workflow definition against live endpoints",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "workflow",
				Aliases:  []string{"w"},
				Usage:    "Path to the workflow definition JSON file",
				Required: true,
				Sources:  cli.EnvVars("WORKFLOW_FILE"),
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "JSON object of input variables, merged over the definition's variables",
				Value:   "{}",
				Sources: cli.EnvVars("WORKFLOW_INPUT"),
			},
			&cli.BoolFlag{
				Name:  "validate-only",
				Usage: "Validate the definition and exit without executing",
			},
			&cli.BoolFlag{
				Name:    "tracing",
				Usage:   "Export OTLP traces for the run",
				Sources: cli.EnvVars("FLOWRUN_TRACING"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command *cli.Command) error {
	log.Setup(command.String("log-level"))
	logger := log.WithModule("flowrun")

	raw, err := os.ReadFile(command.String("workflow"))
	if err != nil {
		return fmt.Errorf("failed to read workflow file: %w", err)
	}

	var wf models.Workflow
	if err := json.Unmarshal(raw, &wf); err != nil {
		return fmt.Errorf("failed to parse workflow file: %w", err)
	}

	var input map[string]any
	if err := json.Unmarshal([]byte(command.String("input")), &input); err != nil {
		return fmt.Errorf("failed to parse input variables: %w", err)
	}

	if err := workflow.Validate(&wf); err != nil {
		return err
	}

	if command.Bool("validate-only") {
		logger.InfoContext(ctx, "Workflow definition is valid", "workflow", wf.Name)

		return nil
	}

	opts := []workflow.Option{workflow.WithLogger(logger)}

	if command.Bool("tracing") {
		tracer, err := otelhelper.NewTracer(ctx, "flowrun")
		if err != nil {
			return fmt.Errorf("failed to initialize tracing: %w", err)
		}

		opts = append(opts, workflow.WithTracer(tracer))
	}

	result := workflow.NewExecutor(&wf, opts...).Execute(ctx, input)

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	fmt.Println(string(encoded))

	if !result.Success {
		return cli.Exit("", 1)
	}

	return nil
}

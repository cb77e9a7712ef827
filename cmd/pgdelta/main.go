package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/pgdelta/pgdelta/internal/config"
	"github.com/pgdelta/pgdelta/internal/store"
	"github.com/pgdelta/pgdelta/pkg/interval"
	"github.com/pgdelta/pgdelta/pkg/log"
	"github.com/pgdelta/pgdelta/pkg/version"
)

const (
	textFormat     = "text"
	postgresFormat = "postgres"
	microsFormat   = "micros"
)

var legalOutputTypes = []string{textFormat, postgresFormat, microsFormat}

func main() {
	command := NewPgdeltaCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewPgdeltaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pgdelta",
		Short: "pgdelta converts, compares and validates calendar-aware intervals",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(NewCmdConvert())
	cmd.AddCommand(NewCmdCompare())
	cmd.AddCommand(NewCmdValidate())
	cmd.AddCommand(NewCmdMigrate())
	cmd.AddCommand(NewCmdVersion())
	return cmd
}

type ConvertOptions struct {
	Output string
}

func NewCmdConvert() *cobra.Command {
	o := &ConvertOptions{Output: textFormat}

	cmd := &cobra.Command{
		Use:   "convert INTERVAL",
		Short: "parse an interval and print it in another encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !lo.Contains(legalOutputTypes, o.Output) {
				return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
			}
			return RunConvert(args[0], o.Output)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&o.Output, "output", "o", o.Output, "output format (text, postgres, micros)")
	return cmd
}

func RunConvert(input, output string) error {
	var i interval.Interval
	if err := i.Scan(input); err != nil {
		return err
	}
	d := i.DeltaOrZero()

	switch output {
	case textFormat:
		fmt.Println(d.String())
	case postgresFormat:
		fmt.Println(d.PostgresString())
	case microsFormat:
		micros, err := d.Micros()
		if err != nil {
			return err
		}
		fmt.Println(micros)
	}
	return nil
}

func NewCmdCompare() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare INTERVAL INTERVAL",
		Short: "compare two intervals by their calendar components",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunCompare(args[0], args[1])
		},
		SilenceUsage: true,
	}
	return cmd
}

func RunCompare(lhs, rhs string) error {
	var l, r interval.Interval
	if err := l.Scan(lhs); err != nil {
		return fmt.Errorf("parsing %q: %w", lhs, err)
	}
	if err := r.Scan(rhs); err != nil {
		return fmt.Errorf("parsing %q: %w", rhs, err)
	}
	fmt.Println(interval.Compare(l.DeltaOrZero(), r.DeltaOrZero()))
	return nil
}

type ValidateOptions struct {
	Min      string
	Max      string
	Required bool
}

func NewCmdValidate() *cobra.Command {
	o := &ValidateOptions{}

	cmd := &cobra.Command{
		Use:   "validate INTERVAL",
		Short: "validate an interval against optional bounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunValidate(args[0], o)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&o.Min, "min", "", "lower bound in [[D]D days,]HH:MM:SS[.ms] form")
	cmd.Flags().StringVar(&o.Max, "max", "", "upper bound in [[D]D days,]HH:MM:SS[.ms] form")
	cmd.Flags().BoolVar(&o.Required, "required", false, "reject blank input")
	return cmd
}

func RunValidate(input string, o *ValidateOptions) error {
	var min, max *interval.Delta
	if o.Min != "" {
		d, err := interval.Parse(o.Min)
		if err != nil {
			return fmt.Errorf("parsing --min: %w", err)
		}
		min = &d
	}
	if o.Max != "" {
		d, err := interval.Parse(o.Max)
		if err != nil {
			return fmt.Errorf("parsing --max: %w", err)
		}
		max = &d
	}

	field, err := interval.NewFormField(min, max, "")
	if err != nil {
		return err
	}
	field.Required = o.Required

	d, err := field.Clean(input)
	if err != nil {
		return err
	}
	if d == nil {
		fmt.Println("blank")
		return nil
	}
	fmt.Println(d.String())
	return nil
}

func NewCmdMigrate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "create or update the schema of the configured database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunMigrate()
		},
		SilenceUsage: true,
	}
	return cmd
}

func RunMigrate() error {
	logger := log.InitLogs()

	cfg, err := config.LoadOrGenerate(config.ConfigFile())
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	logger.Printf("Using config: %s", cfg)

	db, err := store.InitDB(cfg, logger)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}

	s := store.NewStore(db, log.WithCommand("migrate", logger))
	defer s.Close()

	if err := s.InitialMigration(); err != nil {
		return fmt.Errorf("running migration: %w", err)
	}
	logger.Println("Migration complete")
	return nil
}

func NewCmdVersion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(version.Get())
			if err != nil {
				return err
			}
			fmt.Printf("%s", string(out))
			return nil
		},
		SilenceUsage: true,
	}
	return cmd
}

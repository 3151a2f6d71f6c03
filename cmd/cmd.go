package cmd

import (
	"fmt"
	"github.com/carlmjohnson/versioninfo"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robinovitch61/hcols/internal"
	"github.com/robinovitch61/hcols/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"os"
	"strings"
)

var (
	// Version is public so users can optionally specify or override the version
	// at build time by passing in ldflags, e.g.
	//   go build -ldflags "-X github.com/robinovitch61/hcols/cmd.Version=vX.Y.Z"
	Version = ""
)

type arg struct {
	cliShort, cfgFileEnvVar, description, defaultString string
	isBool, isInt, defaultIfBool                        bool
	defaultIfInt                                        int
}

var (
	rootNameToArg = map[string]arg{
		"columns": {
			cliShort:      "c",
			cfgFileEnvVar: "columns",
			description:   fmt.Sprintf(`Number of columns in each strip. Default %d`, constants.DefaultColumnCount),
			isInt:         true,
			defaultIfInt:  constants.DefaultColumnCount,
		},
		"config": {
			cliShort:    "",
			description: `Config file path (toml, yaml or json). Keys match flag names`,
		},
		"help": {
			description: `Print usage`,
		},
		"paging": {
			cliShort:      "p",
			cfgFileEnvVar: "paging",
			description:   `If present, the label strip snaps to whole pages when a drag is released. Default false`,
			isBool:        true,
		},
		"refresh-columns": {
			cliShort:      "",
			cfgFileEnvVar: "refresh-columns",
			description:   fmt.Sprintf(`Number of columns after refreshing the data. Default %d`, constants.DefaultRefreshColumnCount),
			isInt:         true,
			defaultIfInt:  constants.DefaultRefreshColumnCount,
		},
		"strip-height": {
			cliShort:      "",
			cfgFileEnvVar: "strip-height",
			description:   fmt.Sprintf(`Rows per strip. Default %d`, constants.DefaultStripHeight),
			isInt:         true,
			defaultIfInt:  constants.DefaultStripHeight,
		},
		"unit-width": {
			cliShort:      "u",
			cfgFileEnvVar: "unit-width",
			description:   fmt.Sprintf(`Width in cells of the narrowest label column. Default %d`, constants.DefaultUnitWidth),
			isInt:         true,
			defaultIfInt:  constants.DefaultUnitWidth,
		},
	}

	description = fmt.Sprintf(`hcols %s

hcols is a demo of horizontally scrolling column strips that only keep the
columns near the viewport alive and recycle the rest

Config values can also come from HCOLS_* env vars, e.g. HCOLS_UNIT_WIDTH=12`,
		getVersion(),
	)

	rootCmd = &cobra.Command{
		Use:   "hcols",
		Short: "hcols: recycling column strips",
		Long:  description,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, rootNameToArg)
		},
		RunE:    mainEntrypoint,
		Version: getVersion(),
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addFlags(rootCmd.PersistentFlags())
	for _, c := range rootNameToArg {
		if c.cfgFileEnvVar != "" {
			_ = viper.BindPFlag(c.cfgFileEnvVar, rootCmd.PersistentFlags().Lookup(c.cfgFileEnvVar))
		}
	}
	rootCmd.SetVersionTemplate(`{{printf "hcols %s\n" .Version}}`)
	rootCmd.Flags().BoolP("version", "v", false, "Show hcols version")
}

func addFlags(flags *pflag.FlagSet) {
	cliLong := "help"
	flags.BoolP(cliLong, rootNameToArg[cliLong].cliShort, rootNameToArg[cliLong].defaultIfBool, rootNameToArg[cliLong].description)

	for _, cliLong = range []string{
		"columns",
		"config",
		"paging",
		"refresh-columns",
		"strip-height",
		"unit-width",
	} {
		c := rootNameToArg[cliLong]
		if c.isBool {
			flags.BoolP(cliLong, c.cliShort, c.defaultIfBool, c.description)
		} else if c.isInt {
			flags.IntP(cliLong, c.cliShort, c.defaultIfInt, c.description)
		} else {
			flags.StringP(cliLong, c.cliShort, c.defaultString, c.description)
		}
	}
}

func initConfig(cmd *cobra.Command, nameToArg map[string]arg) error {
	return loadConfig(cmd, viper.GetViper(), nameToArg)
}

// loadConfig reads the optional config file and env vars into v, then fills unset flags from them
func loadConfig(cmd *cobra.Command, v *viper.Viper, nameToArg map[string]arg) error {
	// bind viper to env vars, e.g. HCOLS_STRIP_HEIGHT
	v.SetEnvPrefix("hcols")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := cmd.Flags().Lookup("config").Value.String(); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	return bindFlags(cmd, v, nameToArg)
}

// bindFlags applies config file and env values to flags the user did not set on the command line
func bindFlags(cmd *cobra.Command, v *viper.Viper, nameToArg map[string]arg) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		viperName := nameToArg[f.Name].cfgFileEnvVar
		if err != nil || viperName == "" {
			return
		}
		if !f.Changed && v.IsSet(viperName) {
			val := v.Get(viperName)
			if setErr := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); setErr != nil {
				err = fmt.Errorf("setting flag %s from config: %w", f.Name, setErr)
			}
		}
	})
	return err
}

func mainEntrypoint(cmd *cobra.Command, _ []string) error {
	initialModel, options, err := setup(cmd)
	if err != nil {
		return err
	}
	program := tea.NewProgram(initialModel, options...)

	if _, err := program.Run(); err != nil {
		fmt.Printf("error on hcols startup: %v", err)
		os.Exit(1)
	}
	return nil
}

func getVersion() string {
	if Version != "" {
		return Version
	}
	return versioninfo.Short()
}

func getPositiveInt(cmd *cobra.Command, name string) (int, error) {
	value, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", name, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, value)
	}
	return value, nil
}

func getNonNegativeInt(cmd *cobra.Command, name string) (int, error) {
	value, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", name, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("%s must be non-negative, got %d", name, value)
	}
	return value, nil
}

func getConfig(cmd *cobra.Command) (internal.Config, error) {
	columns, err := getNonNegativeInt(cmd, "columns")
	if err != nil {
		return internal.Config{}, err
	}
	refreshColumns, err := getNonNegativeInt(cmd, "refresh-columns")
	if err != nil {
		return internal.Config{}, err
	}
	unitWidth, err := getPositiveInt(cmd, "unit-width")
	if err != nil {
		return internal.Config{}, err
	}
	stripHeight, err := getPositiveInt(cmd, "strip-height")
	if err != nil {
		return internal.Config{}, err
	}
	paging, err := cmd.Flags().GetBool("paging")
	if err != nil {
		return internal.Config{}, fmt.Errorf("parsing paging: %w", err)
	}
	return internal.Config{
		Columns:        columns,
		RefreshColumns: refreshColumns,
		UnitWidth:      unitWidth,
		StripHeight:    stripHeight,
		Paging:         paging,
		Version:        getVersion(),
	}, nil
}

func setup(cmd *cobra.Command) (internal.Model, []tea.ProgramOption, error) {
	config, err := getConfig(cmd)
	if err != nil {
		return internal.Model{}, nil, err
	}
	initialModel := internal.InitialModel(config)
	return initialModel, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, nil
}

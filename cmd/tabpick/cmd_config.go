package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/tabpick/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tabpick configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file interactively",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	flavorOpts := make([]huh.Option[string], 0, len(config.Flavors))
	for _, f := range config.Flavors {
		flavorOpts = append(flavorOpts, huh.NewOption(f, f))
	}

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How should the picker print rows?").
				Options(
					huh.NewOption("Styled lines", config.OutputLines),
					huh.NewOption("Aligned table", config.OutputTable),
				).
				Value(&cfg.Output),
			huh.NewSelect[string]().
				Title("Color flavor").
				Options(flavorOpts...).
				Value(&cfg.Flavor),
		),
	).Run()
	if err != nil {
		return err
	}

	path := resolveConfigPath()
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

package main

import (
	"fmt"

	"github.com/kcarlton55/flashcardz/internal/config"
	"github.com/spf13/cobra"
)

func newSettingsCommand() *cobra.Command {
	settingsCommand := &cobra.Command{
		Use:   "settings",
		Short: "Show or change program settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			fmt.Println("Current settings are:")
			for _, key := range config.Keys() {
				value, err := settings.Get(key)
				if err != nil {
					return err
				}
				fmt.Printf("    %s: %s\n", key, value)
			}
			return nil
		},
	}

	setCommand := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting and persist it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			if err := settings.Set(key, value); err != nil {
				fmt.Printf("\n%v\n", err)
				fmt.Println("For example: flashcardz settings set maxtally 10")
				return nil
			}
			if err := config.Save(configFile, settings); err != nil {
				return fmt.Errorf("config.Save() > %w", err)
			}

			newValue, err := settings.Get(key)
			if err != nil {
				return err
			}
			fmt.Printf("\nProgram setting changed to:\n    %s = %s\n", key, newValue)
			return nil
		},
	}

	settingsCommand.AddCommand(setCommand)
	return settingsCommand
}

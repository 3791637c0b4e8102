package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contentkit/richhtml/pkg/config"
)

var genconfigCmd = &cobra.Command{
	Use:   "genconfig",
	Short: "Print a default configuration file",
	Long:  `Print a commented default configuration in TOML. Redirect to richhtml.toml to customize.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := config.Generate()
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

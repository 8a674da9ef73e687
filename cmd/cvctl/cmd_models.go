package main

import (
	"github.com/spf13/cobra"
)

func newModelsCommand(opts *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the analysis models offered by the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(output); err != nil {
				return err
			}

			list, err := opts.backend().ListModels(cmd.Context())
			if err != nil {
				return &BackendError{Op: "list models", Err: err}
			}

			if output != formatTable {
				return writeStructured(cmd.OutOrStdout(), output, list)
			}

			t := newTable("ID", "NAME", "PROVIDER", "DESCRIPTION")
			for _, m := range list {
				name := m.Name
				if m.Icon != "" {
					name = m.Icon + " " + m.Name
				}
				t.add(m.ID, name, m.Provider, m.Description)
			}
			t.write(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", formatTable, "Output format: table, json or yaml")
	return cmd
}

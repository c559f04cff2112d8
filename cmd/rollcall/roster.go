package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rollcall/pkg/rollcall/output"
	"rollcall/pkg/rollcall/roster"
)

func newRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage the roster of known identities",
	}
	cmd.AddCommand(newRosterImportCmd())
	cmd.AddCommand(newRosterAddCmd())
	cmd.AddCommand(newRosterListCmd())
	return cmd
}

func newRosterImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [roster.xlsx]",
		Short: "Import identities from an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := roster.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			count, err := store.ImportWorkbook(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			logger.Info("imported roster", "path", args[0], "identities", count)
			fmt.Printf("Imported %d identities\n", count)
			return nil
		},
	}
}

func newRosterAddCmd() *cobra.Command {
	var attrs []string

	cmd := &cobra.Command{
		Use:   "add [id] [name]",
		Short: "Add or update one identity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := roster.Identity{ID: args[0], Name: args[1]}
			for _, attr := range attrs {
				key, value, ok := strings.Cut(attr, "=")
				if !ok {
					return fmt.Errorf("invalid attribute %q (want key=value)", attr)
				}
				if identity.Attrs == nil {
					identity.Attrs = make(map[string]string)
				}
				identity.Attrs[key] = value
			}

			store, err := roster.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			return store.Put(cmd.Context(), identity)
		},
	}

	cmd.Flags().StringSliceVar(&attrs, "attr", nil, "Extra attribute as key=value (repeatable)")
	return cmd
}

func newRosterListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List identities in the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := roster.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			identities, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(output.RenderRoster(identities))
			return nil
		},
	}
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rushteam/fairrec/catalog"
	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/filter"
)

var errNoStore = errors.New("--redis-addr is required")

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and publish the product catalog",
	}
	cmd.AddCommand(newCatalogExportCmd(a), newCatalogPushCmd(a), newCatalogBlacklistCmd(a))
	return cmd
}

func newCatalogExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}
			c, err := loadCatalog(s)
			if err != nil {
				return err
			}
			data, err := catalog.MarshalYAML(c)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(out, data, 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newCatalogPushCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Store the current catalog as a snapshot under --catalog-key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}
			c, err := loadCatalog(s)
			if err != nil {
				return err
			}
			st, err := requireStore(s)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := catalog.SaveToStore(cmd.Context(), st, s.CatalogKey, c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pushed %d products to %s\n", c.Len(), s.CatalogKey)
			return nil
		},
	}
}

func newCatalogBlacklistCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "blacklist <id,id,...>",
		Short: "Replace the product blacklist stored under --blacklist-key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}
			if s.BlacklistKey == "" {
				return errors.New("--blacklist-key is required")
			}
			st, err := requireStore(s)
			if err != nil {
				return err
			}
			defer st.Close()

			ids := make([]string, 0)
			for _, id := range strings.Split(args[0], ",") {
				if id = strings.TrimSpace(id); id != "" {
					ids = append(ids, id)
				}
			}
			if err := filter.NewStoreAdapter(st).PutBlacklist(cmd.Context(), s.BlacklistKey, ids); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Blacklisted %d products under %s\n", len(ids), s.BlacklistKey)
			return nil
		},
	}
}

func requireStore(s *Settings) (core.Store, error) {
	st, err := openStore(s)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, errNoStore
	}
	return st, nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rushteam/fairrec/pkg/logging"
)

// app 持有一次命令执行的配置来源。
type app struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "fairrec",
		Short: "Explainable, category-diverse product recommendations",
		Long: `fairrec recommends products from a small catalog by blending category interest
(70%) with popularity (30%), caps each category to keep results diverse, and explains
every pick.

Configuration is read from flags, FAIRREC_* environment variables and an optional
.fairrec.yaml in the working or home directory.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			s, err := a.settings()
			if err != nil {
				return err
			}
			logging.Init(logging.Config{Level: s.LogLevel, Format: s.LogFormat, Output: cmd.ErrOrStderr()})
			if used := a.v.ConfigFileUsed(); used != "" {
				logging.Debug().Str("config", used).Msg("using config file")
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./.fairrec.yaml or $HOME/.fairrec.yaml)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("catalog", "", "catalog file (.yaml/.yml/.json); built-in catalog when empty")
	flags.String("pipeline", "", "pipeline definition file (.yaml/.json); built-in pipeline when empty")
	flags.Int("max-per-category", 2, "maximum recommendations per category before backfill")
	flags.Int("default-count", 6, "number of recommendations when none is given")
	flags.StringArray("filter", nil, "CEL expression; matching products are removed (repeatable)")
	flags.String("redis-addr", "", "redis address for catalog snapshots and blacklist")
	flags.Int("redis-db", 0, "redis database")
	flags.String("catalog-key", "fairrec:catalog", "store key of the catalog snapshot")
	flags.String("blacklist-key", "", "store key of the product blacklist (JSON array of ids)")

	for _, name := range []string{
		"log-level", "log-format", "catalog", "pipeline", "max-per-category", "default-count",
		"filter", "redis-addr", "redis-db", "catalog-key", "blacklist-key",
	} {
		if err := a.v.BindPFlag(name, flags.Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "bind flag %s: %v\n", name, err)
		}
	}

	root.AddCommand(
		newRecommendCmd(a),
		newServeCmd(a),
		newSentimentCmd(),
		newIntakeCmd(),
		newCatalogCmd(a),
		newBatchCmd(a),
	)
	return root
}

// initConfig 读取配置文件与环境变量，环境变量形如 FAIRREC_REDIS_ADDR。
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".fairrec")
	}

	a.v.SetEnvPrefix("FAIRREC")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wireframe/pkg/cache"
	"github.com/matzehuels/wireframe/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered artifact cache",
	}

	cmd.AddCommand(c.cacheInfoCommand())
	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheInfoCommand creates the "cache info" subcommand.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the cache backend and its usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := c.Config.Cache.Backend
			printKeyValue("backend", backend)

			switch backend {
			case config.CacheNone:
				printDetail("caching is disabled")
			case config.CacheRedis:
				printKeyValue("url", c.Config.Cache.RedisURL)
				store, err := c.newCache(cmd.Context(), false)
				if err != nil {
					return err
				}
				defer store.Close()
				if _, ok := store.(*cache.RedisCache); ok {
					printKeyValue("status", StyleSuccess.Render("reachable"))
				} else {
					printKeyValue("status", StyleWarning.Render("unreachable"))
				}
			default:
				fc, err := c.fileCache()
				if err != nil {
					return err
				}
				u, err := fc.Usage()
				if err != nil {
					return fmt.Errorf("read cache: %w", err)
				}
				printKeyValue("directory", fc.Dir())
				printKeyValue("entries", fmt.Sprint(u.Entries))
				if u.Expired > 0 {
					printKeyValue("expired", StyleWarning.Render(fmt.Sprint(u.Expired)))
				}
				printKeyValue("size", formatBytes(u.Bytes))
			}
			return nil
		},
	}
}

// cacheClearCommand creates the "cache clear" subcommand. Only the file
// backend can be cleared; Redis entries expire on their own.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var expired bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete cached artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Config.Cache.Backend != config.CacheFile {
				printInfo("Nothing to clear for the %s backend", c.Config.Cache.Backend)
				return nil
			}
			fc, err := c.fileCache()
			if err != nil {
				return err
			}
			remove, what := fc.Clear, "cached"
			if expired {
				remove, what = fc.Prune, "expired"
			}
			count, err := remove()
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			if count == 0 {
				printInfo("No %s entries", what)
				return nil
			}
			printSuccess("Cleared %d %s entries", count, what)
			printDetail("Directory: %s", fc.Dir())
			return nil
		},
	}
	cmd.Flags().BoolVar(&expired, "expired", false, "only delete expired entries")
	return cmd
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := c.Config.Cache.Dir
			if dir == "" {
				var err error
				if dir, err = cache.DefaultDir(); err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"honnef.co/go/mobius"
)

// applyCommand creates the "apply" command.
func (c *CLI) applyCommand() *cobra.Command {
	var spec string
	cmd := &cobra.Command{
		Use:   "apply --lft a,b,c,d z...",
		Short: "Evaluate a transformation at points",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseLFT(spec)
			if err != nil {
				return err
			}
			points, err := parsePoints(args)
			if err != nil {
				return err
			}
			c.Logger.Debug("applying", "lft", f, "points", len(points))
			for _, z := range points {
				fmt.Fprintln(cmd.OutOrStdout(), formatPoint(f.Apply(z)))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&spec, "lft", "", "transformation as a,b,c,d")
	cmd.MarkFlagRequired("lft")
	return cmd
}

// inverseCommand creates the "inverse" command.
func (c *CLI) inverseCommand() *cobra.Command {
	var spec string
	cmd := &cobra.Command{
		Use:   "inverse --lft a,b,c,d",
		Short: "Print the inverse of a transformation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseLFT(spec)
			if err != nil {
				return err
			}
			inv := f.Inverse()
			c.Logger.Debug("inverted", "lft", f, "inverse", inv)
			fmt.Fprintln(cmd.OutOrStdout(), formatLFT(inv))
			return nil
		},
	}
	cmd.Flags().StringVar(&spec, "lft", "", "transformation as a,b,c,d")
	cmd.MarkFlagRequired("lft")
	return cmd
}

// composeCommand creates the "compose" command.
func (c *CLI) composeCommand() *cobra.Command {
	var specs []string
	cmd := &cobra.Command{
		Use:   "compose --lft a,b,c,d --lft a,b,c,d...",
		Short: "Compose transformations; the last one is applied first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := make([]mobius.LFT, len(specs))
			for i, spec := range specs {
				f, err := parseLFT(spec)
				if err != nil {
					return err
				}
				fs[i] = f
			}
			f, err := mobius.Compose(fs...)
			if err != nil {
				return fmt.Errorf("compose: %w", err)
			}
			c.Logger.Debug("composed", "count", len(fs), "result", f)
			fmt.Fprintln(cmd.OutOrStdout(), formatLFT(f))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&specs, "lft", nil, "transformation as a,b,c,d (repeatable)")
	cmd.MarkFlagRequired("lft")
	return cmd
}

// equalCommand creates the "equal" command.
func (c *CLI) equalCommand() *cobra.Command {
	var specs []string
	cmd := &cobra.Command{
		Use:   "equal --lft a,b,c,d --lft a,b,c,d",
		Short: "Report whether two transformations are equal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(specs) != 2 {
				return fmt.Errorf("equal: want 2 transformations, got %d", len(specs))
			}
			f, err := parseLFT(specs[0])
			if err != nil {
				return err
			}
			g, err := parseLFT(specs[1])
			if err != nil {
				return err
			}
			c.Logger.Debug("comparing", "f", f, "g", g, "hash_f", f.Hash(), "hash_g", g.Hash())
			fmt.Fprintln(cmd.OutOrStdout(), f.Equal(g))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&specs, "lft", nil, "transformation as a,b,c,d (twice)")
	cmd.MarkFlagRequired("lft")
	return cmd
}

// mapCommand creates the "map" command.
func (c *CLI) mapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "map a b c | map a aa b bb c cc",
		Short: "Build the transformation mapping three points to 0, 1, ∞ or to three other points",
		Args:  checkMapArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoints(args)
			if err != nil {
				return err
			}
			var f mobius.LFT
			if len(p) == 3 {
				f, err = mobius.ThreePoint(p[0], p[1], p[2])
			} else {
				f, err = mobius.MapPoints(p[0], p[1], p[2], p[3], p[4], p[5])
			}
			if err != nil {
				return fmt.Errorf("map: %w", err)
			}
			c.Logger.Debug("mapped points", "lft", f, "kind", f.Kind())
			fmt.Fprintln(cmd.OutOrStdout(), formatLFT(f))
			return nil
		},
	}
}

func checkMapArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 3 && len(args) != 6 {
		return fmt.Errorf("accepts 3 or 6 arg(s), received %d", len(args))
	}
	return nil
}

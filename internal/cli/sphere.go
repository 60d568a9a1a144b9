package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"honnef.co/go/mobius"
)

// stereoCommand creates the "stereo" command.
func (c *CLI) stereoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stereo z | stereo x y z",
		Short: "Project a point between the plane and the unit sphere",
		Args:  checkStereoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				z, err := parsePoint(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatVec3(mobius.Stereo(z)))
				return nil
			}
			v, err := parseVec3(fmt.Sprintf("%s,%s,%s", args[0], args[1], args[2]))
			if err != nil {
				return err
			}
			if l := v.Len(); l < 1-1e-9 || l > 1+1e-9 {
				c.Logger.Warn("point is not on the unit sphere", "length", l)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatPoint(mobius.StereoInverse(v)))
			return nil
		},
	}
}

func checkStereoArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 && len(args) != 3 {
		return fmt.Errorf("accepts 1 or 3 arg(s), received %d", len(args))
	}
	return nil
}

// rotateCommand creates the "rotate" command.
func (c *CLI) rotateCommand() *cobra.Command {
	var (
		axis  string
		angle float64
	)
	cmd := &cobra.Command{
		Use:   "rotate --axis x,y,z --angle rad",
		Short: "Print the transformation induced by a rotation of the Riemann sphere",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVec3(axis)
			if err != nil {
				return err
			}
			f, err := mobius.RotationAbout(v, angle)
			if err != nil {
				return fmt.Errorf("rotate: %w", err)
			}
			c.Logger.Debug("lifted rotation", "axis", v, "angle", angle, "lft", f)
			fmt.Fprintln(cmd.OutOrStdout(), formatLFT(f))
			return nil
		},
	}
	cmd.Flags().StringVar(&axis, "axis", "0,0,1", "rotation axis as x,y,z")
	cmd.Flags().Float64Var(&angle, "angle", 0, "rotation angle in radians")
	return cmd
}

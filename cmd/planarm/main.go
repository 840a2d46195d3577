// Package main is the planarm command, a console front-end to the 2-link
// planar inverse-kinematics planner. It collects the link lengths and the two
// end-effector positions, checks feasibility, and prints the sampled
// trajectory as a table.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/armkin/planar2link/kinematics"
	"github.com/armkin/planar2link/motionplan"
	"github.com/armkin/planar2link/utils"
)

const (
	// Flags.
	flagLink1   = "l1"
	flagLink2   = "l2"
	flagStart   = "start"
	flagGoal    = "goal"
	flagSteps   = "steps"
	flagBranch  = "branch"
	flagDegrees = "degrees"
	flagThreads = "threads"
)

var logger = golog.NewDevelopmentLogger("planarm")

func main() {
	app := &cli.App{
		Name:  "planarm",
		Usage: "plan a straight-line trajectory for a 2-link planar arm",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:     flagLink1,
				Usage:    "length of the first link",
				Required: true,
			},
			&cli.Float64Flag{
				Name:     flagLink2,
				Usage:    "length of the second link",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagStart,
				Usage:    "initial end-effector position as x,y",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagGoal,
				Usage:    "desired end-effector position as x,y",
				Required: true,
			},
			&cli.IntFlag{
				Name:  flagSteps,
				Usage: "number of straight-line segments",
				Value: 50,
			},
			&cli.StringFlag{
				Name:  flagBranch,
				Usage: "elbow solution branch (positive or negative)",
				Value: "positive",
			},
			&cli.BoolFlag{
				Name:  flagDegrees,
				Usage: "print joint angles in degrees instead of radians",
			},
			&cli.IntFlag{
				Name:  flagThreads,
				Usage: "number of solver threads",
				Value: 1,
			},
		},
		Action: planAction,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}

func planAction(c *cli.Context) error {
	start, err := parsePoint(c.String(flagStart))
	if err != nil {
		return err
	}
	goal, err := parsePoint(c.String(flagGoal))
	if err != nil {
		return err
	}
	branch, err := parseBranch(c.String(flagBranch))
	if err != nil {
		return err
	}

	links := kinematics.Links{L1: c.Float64(flagLink1), L2: c.Float64(flagLink2)}
	planner, err := motionplan.NewPlanner(links, logger)
	if err != nil {
		return err
	}

	opts := motionplan.DefaultPlanOptions()
	opts.Steps = c.Int(flagSteps)
	opts.Branch = branch
	opts.NumThreads = c.Int(flagThreads)

	traj, err := planner.Plan(c.Context, start, goal, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, renderTrajectory(traj, c.Bool(flagDegrees)))
	return nil
}

func parsePoint(s string) (r2.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return r2.Point{}, errors.Errorf("expected a position as x,y but got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return r2.Point{}, errors.Wrapf(err, "bad x coordinate in %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return r2.Point{}, errors.Wrapf(err, "bad y coordinate in %q", s)
	}
	return r2.Point{X: x, Y: y}, nil
}

func parseBranch(s string) (kinematics.Branch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", kinematics.BranchPositive.String():
		return kinematics.BranchPositive, nil
	case kinematics.BranchNegative.String():
		return kinematics.BranchNegative, nil
	}
	return 0, errors.Errorf("unknown branch %q, want positive or negative", s)
}

// renderTrajectory prints one row per waypoint with columns for the two joint
// angles and the end-effector position, tagging the initial and final rows.
func renderTrajectory(traj motionplan.Trajectory, degrees bool) string {
	unit := "rad"
	conv := func(a float64) float64 { return a }
	if degrees {
		unit = "deg"
		conv = utils.RadToDeg
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{
		"#",
		fmt.Sprintf("Angle 1 [%s]", unit),
		fmt.Sprintf("Angle 2 [%s]", unit),
		"x, end-effector",
		"y, end-effector",
		"",
	})
	for i, wp := range traj {
		tag := ""
		if wp.Tag != motionplan.Intermediate {
			tag = wp.Tag.String()
		}
		t.AppendRow(table.Row{
			i,
			fmt.Sprintf("%13.3f", conv(wp.Angles.Theta1)),
			fmt.Sprintf("%13.3f", conv(wp.Angles.Theta2)),
			fmt.Sprintf("%15.3f", wp.Position.X),
			fmt.Sprintf("%15.3f", wp.Position.Y),
			tag,
		})
	}
	return t.Render()
}

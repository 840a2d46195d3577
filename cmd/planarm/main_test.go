package main

import (
	"context"
	"strings"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"github.com/armkin/planar2link/kinematics"
	"github.com/armkin/planar2link/motionplan"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("1.5, -2")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p, test.ShouldResemble, r2.Point{X: 1.5, Y: -2})

	for _, bad := range []string{"", "1", "1,2,3", "a,2", "1,b"} {
		_, err := parsePoint(bad)
		test.That(t, err, test.ShouldNotBeNil)
	}
}

func TestParseBranch(t *testing.T) {
	b, err := parseBranch("positive")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, b, test.ShouldEqual, kinematics.BranchPositive)

	b, err = parseBranch(" Negative ")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, b, test.ShouldEqual, kinematics.BranchNegative)

	_, err = parseBranch("sideways")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestRenderTrajectory(t *testing.T) {
	planner, err := motionplan.NewPlanner(kinematics.Links{L1: 1, L2: 1}, golog.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)

	opts := motionplan.DefaultPlanOptions()
	opts.Steps = 4
	traj, err := planner.Plan(context.Background(), r2.Point{X: 1, Y: 1}, r2.Point{X: -1, Y: 1}, opts)
	test.That(t, err, test.ShouldBeNil)

	out := renderTrajectory(traj, false)
	test.That(t, out, test.ShouldContainSubstring, "Angle 1 [rad]")
	test.That(t, out, test.ShouldContainSubstring, "initial")
	test.That(t, out, test.ShouldContainSubstring, "final")
	test.That(t, strings.Count(out, "\n"), test.ShouldBeGreaterThanOrEqualTo, len(traj))

	out = renderTrajectory(traj, true)
	test.That(t, out, test.ShouldContainSubstring, "Angle 1 [deg]")
}

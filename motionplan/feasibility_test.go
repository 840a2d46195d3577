package motionplan

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/armkin/planar2link/kinematics"
)

func TestCheckVerdicts(t *testing.T) {
	for _, tc := range []struct {
		name    string
		links   kinematics.Links
		start   r2.Point
		goal    r2.Point
		verdict Verdict
		wantErr error
	}{
		{
			"feasible above the origin",
			kinematics.Links{L1: 1, L2: 1},
			r2.Point{X: 1, Y: 1}, r2.Point{X: -1, Y: 1},
			Feasible, nil,
		},
		{
			"feasible on the outer boundary",
			kinematics.Links{L1: 1, L2: 1},
			r2.Point{X: 2, Y: 0}, r2.Point{X: 0, Y: 2},
			Feasible, nil,
		},
		{
			"origin with unequal links",
			kinematics.Links{L1: 3, L2: 1},
			r2.Point{}, r2.Point{X: 2.5, Y: 0},
			OutOfWorkspace, ErrOutOfWorkspace,
		},
		{
			"both endpoints outside",
			kinematics.Links{L1: 1, L2: 1},
			r2.Point{X: 5, Y: 0}, r2.Point{X: 0, Y: 5},
			OutOfWorkspace, ErrOutOfWorkspace,
		},
		{
			"segment crosses the inner disk",
			kinematics.Links{L1: 3, L2: 1},
			r2.Point{X: 0, Y: 2.5}, r2.Point{X: 2.5, Y: 0},
			TrajectoryBlocked, ErrTrajectoryBlocked,
		},
		{
			"segment through the origin with equal links",
			kinematics.Links{L1: 1, L2: 1},
			r2.Point{X: -1, Y: -1}, r2.Point{X: 1, Y: 1},
			TrajectorySingular, ErrTrajectorySingular,
		},
		{
			"coincident endpoints with equal links",
			kinematics.Links{L1: 1, L2: 1},
			r2.Point{X: 2, Y: 0}, r2.Point{X: 2, Y: 0},
			TrajectorySingular, ErrTrajectorySingular,
		},
		{
			"coincident endpoints with unequal links",
			kinematics.Links{L1: 3, L2: 1},
			r2.Point{X: 2.5, Y: 0}, r2.Point{X: 2.5, Y: 0},
			TrajectoryBlocked, ErrTrajectoryBlocked,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			verdict, err := Check(tc.start, tc.goal, tc.links)
			test.That(t, verdict, test.ShouldEqual, tc.verdict)
			if tc.wantErr == nil {
				test.That(t, err, test.ShouldBeNil)
			} else {
				test.That(t, errors.Is(err, tc.wantErr), test.ShouldBeTrue)
			}
		})
	}
}

func TestCheckSymmetric(t *testing.T) {
	links := kinematics.Links{L1: 3, L2: 1}
	start := r2.Point{X: 0, Y: 2.5}
	goal := r2.Point{X: 2.5, Y: 0}

	v1, err1 := Check(start, goal, links)
	v2, err2 := Check(goal, start, links)
	test.That(t, v1, test.ShouldEqual, v2)
	test.That(t, errors.Is(err1, ErrTrajectoryBlocked), test.ShouldBeTrue)
	test.That(t, errors.Is(err2, ErrTrajectoryBlocked), test.ShouldBeTrue)
}

func TestCheckInvalidLinks(t *testing.T) {
	verdict, err := Check(r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: 1}, kinematics.Links{L1: 0, L2: 1})
	test.That(t, verdict, test.ShouldEqual, VerdictUnknown)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestVerdictString(t *testing.T) {
	test.That(t, Feasible.String(), test.ShouldEqual, "feasible")
	test.That(t, OutOfWorkspace.String(), test.ShouldEqual, "out of workspace")
	test.That(t, TrajectoryBlocked.String(), test.ShouldEqual, "trajectory blocked")
	test.That(t, TrajectorySingular.String(), test.ShouldEqual, "trajectory singular")
	test.That(t, VerdictUnknown.String(), test.ShouldEqual, "unknown")
}

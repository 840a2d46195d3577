// Package motionplan validates and plans straight-line Cartesian trajectories
// for a 2-link planar arm.
package motionplan

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/armkin/planar2link/kinematics"
	"github.com/armkin/planar2link/spatialmath"
)

// Verdict classifies whether a straight-line trajectory between two
// end-effector positions is achievable.
type Verdict int

const (
	// VerdictUnknown is the zero value, returned alongside input errors that
	// prevent any feasibility judgement.
	VerdictUnknown Verdict = iota
	// Feasible means the whole segment lies in the workspace and avoids the
	// singular configuration.
	Feasible
	// OutOfWorkspace means at least one endpoint is outside the workspace
	// annulus.
	OutOfWorkspace
	// TrajectoryBlocked means the segment crosses the unreachable disk inside
	// the inner workspace radius.
	TrajectoryBlocked
	// TrajectorySingular means the segment passes through the origin while
	// both links have equal length, a singular configuration.
	TrajectorySingular
)

func (v Verdict) String() string {
	switch v {
	case Feasible:
		return "feasible"
	case OutOfWorkspace:
		return "out of workspace"
	case TrajectoryBlocked:
		return "trajectory blocked"
	case TrajectorySingular:
		return "trajectory singular"
	}
	return "unknown"
}

// Check validates the straight segment from start to goal against the arm's
// workspace. Checks run in order and the first failure wins: endpoint
// membership in the annulus, clearance of the inner disk, then the singular
// line through the origin when both links have equal length. The returned
// error is nil exactly when the verdict is Feasible.
//
// The line through coincident endpoints is degenerate and its origin distance
// is taken to be zero, so a zero-length request degrades to TrajectorySingular
// for equal links and TrajectoryBlocked otherwise.
func Check(start, goal r2.Point, links kinematics.Links) (Verdict, error) {
	if err := links.Validate(); err != nil {
		return VerdictUnknown, err
	}

	ws := links.Workspace()
	var outside error
	if !ws.Contains(start) {
		outside = multierr.Append(outside, errors.Wrapf(ErrOutOfWorkspace,
			"initial position (%.4f, %.4f) at distance %.4f, reachable range [%.4f, %.4f]",
			start.X, start.Y, start.Norm(), ws.Inner, ws.Outer))
	}
	if !ws.Contains(goal) {
		outside = multierr.Append(outside, errors.Wrapf(ErrOutOfWorkspace,
			"desired position (%.4f, %.4f) at distance %.4f, reachable range [%.4f, %.4f]",
			goal.X, goal.Y, goal.Norm(), ws.Inner, ws.Outer))
	}
	if outside != nil {
		return OutOfWorkspace, outside
	}

	dist := spatialmath.NewLine(start, goal).DistanceToOrigin()
	if dist < ws.Inner-spatialmath.Epsilon {
		return TrajectoryBlocked, errors.Wrapf(ErrTrajectoryBlocked,
			"segment passes %.4f from the origin, inside the inner radius %.4f", dist, ws.Inner)
	}

	if scalar.EqualWithinAbs(links.L1, links.L2, spatialmath.Epsilon) &&
		scalar.EqualWithinAbs(dist, 0, spatialmath.Epsilon) {
		return TrajectorySingular, errors.Wrapf(ErrTrajectorySingular,
			"equal links L1=L2=%.4f and segment through the origin", links.L1)
	}

	return Feasible, nil
}

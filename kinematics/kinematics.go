// Package kinematics provides the closed-form inverse and forward kinematics
// of a 2-link planar manipulator anchored at the origin.
package kinematics

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/armkin/planar2link/spatialmath"
)

// Links holds the two link lengths of the arm, in the same length unit as the
// end-effector positions.
type Links struct {
	L1 float64
	L2 float64
}

// Validate returns an error unless both lengths are finite and strictly
// positive.
func (l Links) Validate() error {
	for _, v := range []float64{l.L1, l.L2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Errorf("link lengths must be finite, got L1=%v L2=%v", l.L1, l.L2)
		}
		if v <= 0 {
			return errors.Errorf("link lengths must be strictly positive, got L1=%v L2=%v", l.L1, l.L2)
		}
	}
	return nil
}

// Workspace returns the annulus the end-effector can reach.
func (l Links) Workspace() spatialmath.Annulus {
	return spatialmath.AnnulusFromLinks(l.L1, l.L2)
}

// JointAngles is one configuration of the arm. Theta1 is the absolute shoulder
// angle and Theta2 the elbow angle relative to the first link, both in
// radians.
type JointAngles struct {
	Theta1 float64
	Theta2 float64
}

// Branch selects which of the two inverse-kinematics solutions Solve returns.
type Branch int

const (
	// BranchPositive fixes the elbow to the non-negative arccosine solution,
	// so Theta2 is always in [0, pi].
	BranchPositive Branch = iota
	// BranchNegative mirrors the elbow, so Theta2 is always in [-pi, 0].
	BranchNegative
)

func (b Branch) String() string {
	switch b {
	case BranchPositive:
		return "positive"
	case BranchNegative:
		return "negative"
	}
	return "unknown"
}

// Solve computes the joint angles placing the end-effector at pos, using the
// elbow configuration named by branch. The target must lie within the
// workspace annulus; arguments that fall outside by more than the boundary
// tolerance return an error rather than NaN angles.
func Solve(pos r2.Point, links Links, branch Branch) (JointAngles, error) {
	cosElbow := (pos.X*pos.X + pos.Y*pos.Y - links.L1*links.L1 - links.L2*links.L2) /
		(2 * links.L1 * links.L2)
	// Targets on the boundary circles can push the argument a hair outside
	// [-1, 1] from rounding alone.
	switch {
	case cosElbow > 1+spatialmath.Epsilon || cosElbow < -1-spatialmath.Epsilon:
		return JointAngles{}, NewUnreachableError(pos, links)
	case cosElbow > 1:
		cosElbow = 1
	case cosElbow < -1:
		cosElbow = -1
	}
	theta2 := math.Acos(cosElbow)
	if branch == BranchNegative {
		theta2 = -theta2
	}
	theta1 := math.Atan2(pos.Y, pos.X) -
		math.Atan2(links.L2*math.Sin(theta2), links.L1+links.L2*math.Cos(theta2))
	return JointAngles{Theta1: theta1, Theta2: theta2}, nil
}

// ComputePosition is the forward map from joint angles back to the
// end-effector position.
func ComputePosition(ja JointAngles, links Links) r2.Point {
	return r2.Point{
		X: links.L1*math.Cos(ja.Theta1) + links.L2*math.Cos(ja.Theta1+ja.Theta2),
		Y: links.L1*math.Sin(ja.Theta1) + links.L2*math.Sin(ja.Theta1+ja.Theta2),
	}
}

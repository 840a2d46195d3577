package kinematics

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// ErrUnreachable means a target position lies outside the workspace annulus.
var ErrUnreachable = errors.New("position is outside the reachable workspace")

// NewUnreachableError wraps ErrUnreachable with the offending target and arm
// geometry.
func NewUnreachableError(pos r2.Point, links Links) error {
	ws := links.Workspace()
	return errors.Wrapf(ErrUnreachable,
		"position (%.4f, %.4f) at distance %.4f, reachable range [%.4f, %.4f]",
		pos.X, pos.Y, pos.Norm(), ws.Inner, ws.Outer)
}

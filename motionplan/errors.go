package motionplan

import "github.com/pkg/errors"

var (
	// ErrOutOfWorkspace means an endpoint lies outside the workspace annulus.
	ErrOutOfWorkspace = errors.New("endpoint outside the reachable workspace")
	// ErrTrajectoryBlocked means the straight segment crosses the unreachable
	// inner disk.
	ErrTrajectoryBlocked = errors.New("straight-line trajectory is not possible")
	// ErrTrajectorySingular means the straight segment includes a singular
	// point.
	ErrTrajectorySingular = errors.New("straight-line trajectory includes a singular point")
)

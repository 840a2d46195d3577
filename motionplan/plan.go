package motionplan

import (
	"context"
	"sync"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/floats"

	"github.com/armkin/planar2link/kinematics"
	"github.com/armkin/planar2link/utils"
)

// defaultSteps is the number of straight-line segments sampled when the
// caller does not choose a count.
const defaultSteps = 50

// WaypointTag marks a waypoint's place in the trajectory; it exists for
// presentation only.
type WaypointTag int

const (
	// Intermediate is every waypoint other than the first and last.
	Intermediate WaypointTag = iota
	// Initial is the first waypoint.
	Initial
	// Final is the last waypoint.
	Final
)

func (t WaypointTag) String() string {
	switch t {
	case Initial:
		return "initial"
	case Final:
		return "final"
	}
	return "intermediate"
}

// Waypoint pairs one sampled end-effector position with the joint angles that
// reach it.
type Waypoint struct {
	Angles   kinematics.JointAngles
	Position r2.Point
	Tag      WaypointTag
}

// Trajectory is the ordered sequence of waypoints from the initial to the
// desired position.
type Trajectory []Waypoint

// PlanOptions configures trajectory sampling.
type PlanOptions struct {
	// Steps is the number of straight-line segments; the trajectory has
	// Steps+1 waypoints. Zero or negative selects the default of 50.
	Steps int
	// Branch selects the elbow configuration used for every waypoint.
	Branch kinematics.Branch
	// NumThreads greater than one solves waypoints in parallel. Waypoint
	// solutions are independent, so this changes wall time only.
	NumThreads int
}

// DefaultPlanOptions returns 50 segments, the positive elbow branch, and
// sequential solving.
func DefaultPlanOptions() PlanOptions {
	return PlanOptions{Steps: defaultSteps, Branch: kinematics.BranchPositive, NumThreads: 1}
}

// Planner plans straight-line trajectories for one arm geometry.
type Planner struct {
	links  kinematics.Links
	logger golog.Logger
}

// NewPlanner validates the arm geometry and returns a planner for it.
func NewPlanner(links kinematics.Links, logger golog.Logger) (*Planner, error) {
	if err := links.Validate(); err != nil {
		return nil, err
	}
	return &Planner{links: links, logger: logger}, nil
}

// Links returns the arm geometry the planner was built with.
func (p *Planner) Links() kinematics.Links {
	return p.links
}

// Check reports whether the straight segment between the two positions is
// achievable. See the package-level Check.
func (p *Planner) Check(start, goal r2.Point) (Verdict, error) {
	return Check(start, goal, p.links)
}

// Plan validates the request and samples the straight segment from start to
// goal, solving the inverse kinematics independently at every waypoint. The
// first waypoint is tagged Initial and the last Final. An infeasible request
// returns the feasibility error and no trajectory; a partial trajectory is
// never returned.
func (p *Planner) Plan(ctx context.Context, start, goal r2.Point, opts PlanOptions) (Trajectory, error) {
	if opts.Steps <= 0 {
		opts.Steps = defaultSteps
	}
	if opts.NumThreads <= 0 {
		opts.NumThreads = 1
	}

	if _, err := p.Check(start, goal); err != nil {
		return nil, err
	}
	p.logger.Debugf("planning %d waypoints from (%.4f, %.4f) to (%.4f, %.4f) on the %s branch",
		opts.Steps+1, start.X, start.Y, goal.X, goal.Y, opts.Branch)

	knots := floats.Span(make([]float64, opts.Steps+1), 0, 1)
	traj := make(Trajectory, len(knots))
	solveAt := func(i int) error {
		pos := start.Add(goal.Sub(start).Mul(knots[i]))
		angles, err := kinematics.Solve(pos, p.links, opts.Branch)
		if err != nil {
			return err
		}
		tag := Intermediate
		switch i {
		case 0:
			tag = Initial
		case len(knots) - 1:
			tag = Final
		}
		traj[i] = Waypoint{Angles: angles, Position: pos, Tag: tag}
		return nil
	}

	var solveErr error
	if opts.NumThreads > 1 {
		var mu sync.Mutex
		err := utils.GroupWorkParallel(ctx, len(knots), opts.NumThreads,
			func(groupSize int) {},
			func(groupNum, groupSize, from, to int) (utils.MemberWorkFunc, utils.GroupWorkDoneFunc) {
				return func(memberNum, workNum int) {
					if err := solveAt(workNum); err != nil {
						mu.Lock()
						solveErr = multierr.Append(solveErr, err)
						mu.Unlock()
					}
				}, nil
			})
		solveErr = multierr.Combine(err, solveErr)
	} else {
		for i := range knots {
			if solveErr = ctx.Err(); solveErr != nil {
				break
			}
			if solveErr = solveAt(i); solveErr != nil {
				break
			}
		}
	}
	if solveErr != nil {
		return nil, solveErr
	}
	return traj, nil
}

package stages

import (
	"context"
	"errors"
	"fmt"

	"github.com/systemstart/wempak/pkg/api"
)

var (
	ErrNoAsset            = errors.New("no asset found")
	ErrNotFound           = errors.New("not found")
	ErrExecutableNotFound = errors.New("executable not found")
	ErrUnexpectedState    = errors.New("unexpected state")
)

// Policy decides what a stage failure does to the run.
type Policy int

const (
	// Fatal aborts the run and skips every later stage, cleanup included.
	Fatal Policy = iota
	// Warn logs the failure and carries on with the next stage.
	Warn
)

func (p Policy) String() string {
	switch p {
	case Fatal:
		return "fatal"
	case Warn:
		return "warn"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Context is the state the stages of one run share.
type Context struct {
	RunID      string
	WorkDir    string
	OutputName string
	Layout     *api.Layout // resolved, every path absolute

	// Input is the asset found by the locate stage, then its canonical path
	// once renamed.
	Input string
}

// Stage is one step of the conversion pipeline.
type Stage interface {
	Name() string
	Policy() Policy
	// Check verifies the filesystem state the stage depends on. It has no
	// side effects.
	Check(pc *Context) error
	Run(ctx context.Context, pc *Context) error
}

// Announcer is implemented by stages that open a new section of console
// output.
type Announcer interface {
	Announce() string
}

// base carries the name and policy every stage has.
type base struct {
	name   string
	policy Policy
}

func (b base) Name() string   { return b.name }
func (b base) Policy() Policy { return b.policy }

package settings

import (
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/cablecam-io/controller/cablecam"
)

// CustomError is a lightweight error type, mirroring tmc2209.CustomError.
type CustomError string

func (e CustomError) Error() string { return string(e) }

// Commands tokenizes and dispatches operator settings command lines
// (`"set pid 1.0 0.5 0.1"`, `"get pos"`, ...) against a Config/Controller
// pair. It is the concrete form of the "conceptual" settings getters and
// setters spec.md §6 describes (SPEC_FULL §C.1).
type Commands struct {
	cfg *cablecam.Config
	ctl *cablecam.Controller
}

// NewCommands creates a command dispatcher over cfg/ctl.
func NewCommands(cfg *cablecam.Config, ctl *cablecam.Controller) *Commands {
	return &Commands{cfg: cfg, ctl: ctl}
}

// Run tokenizes line with shlex (so quoted/escaped tokens behave like a
// shell would) and dispatches it. It returns the reply text for a "get"
// command, or "" for a "set".
func (c *Commands) Run(line string) (string, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return "", CustomError("malformed command: " + err.Error())
	}
	if len(tokens) == 0 {
		return "", nil
	}

	switch strings.ToLower(tokens[0]) {
	case "get":
		return c.runGet(tokens[1:])
	case "set":
		return "", c.runSet(tokens[1:])
	default:
		return "", CustomError("unknown command: " + tokens[0])
	}
}

func (c *Commands) runGet(args []string) (string, error) {
	if len(args) != 1 {
		return "", CustomError("usage: get <targetpos|speed|pos|safemode>")
	}
	switch args[0] {
	case "targetpos":
		return strconv.FormatFloat(c.ctl.TargetPos(), 'f', 3, 64), nil
	case "speed":
		return strconv.FormatFloat(c.ctl.Speed(), 'f', 3, 64), nil
	case "pos":
		return strconv.FormatInt(int64(c.ctl.Pos()), 10), nil
	case "safemode":
		return c.ctl.SafeMode().String(), nil
	default:
		return "", CustomError("unknown get target: " + args[0])
	}
}

func (c *Commands) runSet(args []string) error {
	if len(args) == 0 {
		return CustomError("usage: set <pid|p|i|d> <value...>")
	}
	switch args[0] {
	case "pid":
		p, i, d, err := parseThreeFloats(args[1:])
		if err != nil {
			return err
		}
		c.cfg.SetPID(p, i, d)
		return nil
	case "p":
		v, err := parseOneFloat(args[1:])
		if err != nil {
			return err
		}
		c.cfg.SetP(v)
		return nil
	case "i":
		v, err := parseOneFloat(args[1:])
		if err != nil {
			return err
		}
		c.cfg.SetI(v)
		return nil
	case "d":
		v, err := parseOneFloat(args[1:])
		if err != nil {
			return err
		}
		c.cfg.SetD(v)
		return nil
	default:
		return CustomError("unknown set target: " + args[0])
	}
}

func parseOneFloat(args []string) (float64, error) {
	if len(args) != 1 {
		return 0, CustomError("expected exactly one numeric argument")
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, CustomError("not a number: " + args[0])
	}
	return v, nil
}

func parseThreeFloats(args []string) (a, b, c float64, err error) {
	if len(args) != 3 {
		return 0, 0, 0, CustomError("expected exactly three numeric arguments")
	}
	vals := [3]float64{}
	for i, s := range args {
		vals[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, 0, 0, CustomError("not a number: " + s)
		}
	}
	return vals[0], vals[1], vals[2], nil
}

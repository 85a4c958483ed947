package host

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/glyph3d/internal/config"
	"github.com/taigrr/glyph3d/pkg/math3d"
	"github.com/taigrr/glyph3d/pkg/render"
)

// springFrequency and springDamping shape how fast a turn or kick dies out.
// Damping 1 is critically damped, so velocity decays without overshoot.
const (
	springFrequency = 4.0
	springDamping   = 1.0
)

// maxPitch keeps the camera from flipping over the poles.
const maxPitch = math.Pi/2 - 0.01

// RotationAxis tracks an angle and an angular velocity (radians per frame)
// whose velocity decays to zero through a harmonica spring.
type RotationAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

// NewRotationAxis creates an axis stepped fps times per second.
func NewRotationAxis(fps int) RotationAxis {
	return RotationAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), springFrequency, springDamping),
	}
}

// Update applies velocity to position and decays velocity toward 0.
func (a *RotationAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// impulseFor returns the velocity kick that makes an axis travel roughly
// angle radians before the spring stops it. A critically damped decay from
// v0 sums to about 2*fps*v0/frequency over its frames.
func impulseFor(angle float64, fps int) float64 {
	return angle * springFrequency / (2 * float64(max(fps, 1)))
}

// Command is one user action, independent of the key that triggered it.
type Command int

const (
	CmdNone Command = iota
	CmdForward
	CmdBack
	CmdLeft
	CmdRight
	CmdUp
	CmdDown
	CmdTurnLeft
	CmdTurnRight
	CmdLookUp
	CmdLookDown
	CmdSpin
	CmdReset
	CmdToggleWireframe
	CmdToggleDepthSort
	CmdToggleHUD
	CmdQuit
)

var commandNames = [...]string{
	"none", "forward", "back", "left", "right", "up", "down",
	"turn-left", "turn-right", "look-up", "look-down",
	"spin", "reset", "toggle-wireframe", "toggle-depth-sort", "toggle-hud", "quit",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// Controller turns commands into camera motion. Moves are applied at once;
// turns feed spring-damped yaw and pitch axes that are stepped by Update.
type Controller struct {
	Camera *render.Camera
	Yaw    RotationAxis
	Pitch  RotationAxis

	fps       int
	moveSpeed float64 // units per command
	turnSpeed float64 // radians per command

	homePos math3d.Vec3
	homeRot math3d.Vec3
}

// NewController creates a controller for cam using the camera settings in
// cfg. The camera's current pose becomes the reset pose.
func NewController(cam *render.Camera, cfg config.CameraConfig, fps int) *Controller {
	c := &Controller{
		Camera:    cam,
		fps:       max(fps, 1),
		moveSpeed: cfg.MoveSpeed,
		turnSpeed: cfg.TurnSpeed * math.Pi / 180,
		homePos:   cam.Position(),
		homeRot:   cam.Rotation(),
	}
	c.resetAxes()
	return c
}

func (c *Controller) resetAxes() {
	c.Yaw = NewRotationAxis(c.fps)
	c.Pitch = NewRotationAxis(c.fps)
	c.Yaw.Position = c.homeRot.Y
	c.Pitch.Position = c.homeRot.X
}

// Apply performs a camera command and reports whether it was one.
func (c *Controller) Apply(cmd Command) bool {
	switch cmd {
	case CmdForward:
		c.Camera.MoveForward(c.moveSpeed)
	case CmdBack:
		c.Camera.MoveForward(-c.moveSpeed)
	case CmdLeft:
		c.Camera.MoveRight(-c.moveSpeed)
	case CmdRight:
		c.Camera.MoveRight(c.moveSpeed)
	case CmdUp:
		c.Camera.MoveUp(c.moveSpeed)
	case CmdDown:
		c.Camera.MoveUp(-c.moveSpeed)
	case CmdTurnLeft:
		c.Yaw.Velocity -= impulseFor(c.turnSpeed, c.fps)
	case CmdTurnRight:
		c.Yaw.Velocity += impulseFor(c.turnSpeed, c.fps)
	case CmdLookUp:
		c.Pitch.Velocity -= impulseFor(c.turnSpeed, c.fps)
	case CmdLookDown:
		c.Pitch.Velocity += impulseFor(c.turnSpeed, c.fps)
	case CmdReset:
		c.Camera.SetPosition(c.homePos)
		c.Camera.SetRotation(c.homeRot)
		c.resetAxes()
	default:
		return false
	}
	return true
}

// Update steps the turn springs one frame and writes the result to the
// camera. Roll is left as configured.
func (c *Controller) Update() {
	c.Yaw.Update()
	c.Pitch.Update()

	if c.Pitch.Position > maxPitch {
		c.Pitch.Position, c.Pitch.Velocity = maxPitch, 0
	} else if c.Pitch.Position < -maxPitch {
		c.Pitch.Position, c.Pitch.Velocity = -maxPitch, 0
	}

	rot := c.Camera.Rotation()
	if rot.X != c.Pitch.Position || rot.Y != c.Yaw.Position {
		c.Camera.SetRotation(math3d.V3(c.Pitch.Position, c.Yaw.Position, rot.Z))
	}
}

// Turning reports whether either axis is still moving noticeably.
func (c *Controller) Turning() bool {
	const still = 1e-5
	return math.Abs(c.Yaw.Velocity) > still || math.Abs(c.Pitch.Velocity) > still
}

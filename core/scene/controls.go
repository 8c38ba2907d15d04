package scene

// Camera movement tuning.
const (
	CameraAccel    float32 = 0.5
	CameraFriction float32 = 0.9
	ZoomStep       float32 = 0.03
)

// Input is the set of held camera controls for one frame.
type Input struct {
	Left, Right     bool // -X / +X
	Forward, Back   bool // -Z / +Z
	ZoomIn, ZoomOut bool
}

// Motion is the camera velocity carried from frame to frame.
type Motion struct {
	VelX, VelZ float32
}

// StepCamera advances the camera one frame: held keys accelerate, friction
// damps, the velocity moves the camera, and the zoom steps and clamps.
//
// It is pure; callers keep the returned Camera and Motion for the next frame.
func StepCamera(cam Camera, m Motion, in Input) (Camera, Motion) {
	if in.Left {
		m.VelX -= CameraAccel
	}
	if in.Right {
		m.VelX += CameraAccel
	}
	m.VelX *= CameraFriction
	cam.Position.X += m.VelX

	if in.Forward {
		m.VelZ -= CameraAccel
	}
	if in.Back {
		m.VelZ += CameraAccel
	}
	m.VelZ *= CameraFriction
	cam.Position.Z += m.VelZ

	if in.ZoomIn {
		cam.Zoom += ZoomStep
	}
	if in.ZoomOut {
		cam.Zoom -= ZoomStep
	}
	cam.Zoom = ClampZoom(cam.Zoom)
	return cam, m
}

// Focus moves the camera onto p and stops it.
func Focus(cam Camera, p Vec2) (Camera, Motion) {
	cam.Position = p
	return cam, Motion{}
}

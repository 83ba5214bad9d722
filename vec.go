package twisty

import "math"

// Axis identifies one of the three world axes.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Unit returns the unit vector along the axis.
func (a Axis) Unit() Vec3 {
	switch a {
	case AxisX:
		return Vec3{X: 1}
	case AxisY:
		return Vec3{Y: 1}
	default:
		return Vec3{Z: 1}
	}
}

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Component returns the coordinate along the given axis.
// Axis selection is explicit rather than a dynamic field lookup.
func (a Vec3) Component(axis Axis) float64 {
	switch axis {
	case AxisX:
		return a.X
	case AxisY:
		return a.Y
	default:
		return a.Z
	}
}

// Mat3 is a 3x3 matrix in row-major order, used for rotations.
type Mat3 [3][3]float64

// Identity returns the identity matrix.
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// RotationAbout returns the rotation matrix for the given angle (radians)
// about a world axis, following the right-hand rule.
func RotationAbout(axis Axis, angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	switch axis {
	case AxisX:
		return Mat3{{1, 0, 0}, {0, c, -s}, {0, s, c}}
	case AxisY:
		return Mat3{{c, 0, s}, {0, 1, 0}, {-s, 0, c}}
	default:
		return Mat3{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
	}
}

// quarterTurn returns the exact 90-degree rotation about an axis with
// entries drawn from {-1, 0, 1}, bypassing trigonometric rounding.
func quarterTurn(axis Axis, dir Direction) Mat3 {
	s := float64(dir)
	switch axis {
	case AxisX:
		return Mat3{{1, 0, 0}, {0, 0, -s}, {0, s, 0}}
	case AxisY:
		return Mat3{{0, 0, s}, {0, 1, 0}, {-s, 0, 0}}
	default:
		return Mat3{{0, -s, 0}, {s, 0, 0}, {0, 0, 1}}
	}
}

// Mul returns the matrix product a * b.
func (a Mat3) Mul(b Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return out
}

// MulVec returns the matrix-vector product a * v.
func (a Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		a[0][0]*v.X + a[0][1]*v.Y + a[0][2]*v.Z,
		a[1][0]*v.X + a[1][1]*v.Y + a[1][2]*v.Z,
		a[2][0]*v.X + a[2][1]*v.Y + a[2][2]*v.Z,
	}
}

// Transpose returns the transposed matrix. For rotations this is the inverse.
func (a Mat3) Transpose() Mat3 {
	return Mat3{
		{a[0][0], a[1][0], a[2][0]},
		{a[0][1], a[1][1], a[2][1]},
		{a[0][2], a[1][2], a[2][2]},
	}
}

// Snapped rounds every entry to the nearest integer. A rotation composed of
// quarter turns has entries near {-1, 0, 1}; rounding removes accumulated
// float drift and is the matrix form of per-axis 90-degree snapping.
func (a Mat3) Snapped() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = math.Round(a[i][j])
		}
	}
	return out
}

// Euler returns the rotation as XYZ Euler angles in radians, following the
// R = Rz * Ry * Rx convention. At rest every angle is a multiple of pi/2.
func (a Mat3) Euler() Vec3 {
	if a[2][0] <= -1+1e-9 {
		return Vec3{X: math.Atan2(a[0][1], a[1][1]), Y: math.Pi / 2}
	}
	if a[2][0] >= 1-1e-9 {
		return Vec3{X: math.Atan2(-a[0][1], a[1][1]), Y: -math.Pi / 2}
	}
	return Vec3{
		X: math.Atan2(a[2][1], a[2][2]),
		Y: math.Asin(-a[2][0]),
		Z: math.Atan2(a[1][0], a[0][0]),
	}
}

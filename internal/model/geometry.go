package model

// Vector3 is a point or direction in the vehicle frame, in meters.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vector3Zero is the origin. Schemas refer to it as "Vector3.Zero".
var Vector3Zero = Vector3{}

// TrajectoryPoints is an ordered polyline.
type TrajectoryPoints struct {
	Points []Vector3
}

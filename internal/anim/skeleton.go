package anim

import m "github.com/Faultbox/libsm64-go/pkg/math"

// Joint indices of the character skeleton.
const (
	JointRoot = iota
	JointTorso
	JointHead
	JointCap
	JointLeftUpperArm
	JointLeftForearm
	JointLeftHand
	JointRightUpperArm
	JointRightForearm
	JointRightHand
	JointLeftThigh
	JointLeftShin
	JointLeftFoot
	JointRightThigh
	JointRightShin
	JointRightFoot
	JointCapWings

	NumJoints
)

// NumChannels is the channel count of a full clip.
const NumChannels = 3 + NumJoints*3

// ColorGroup indexes ColorGroups.
type ColorGroup uint8

const (
	GroupBlue ColorGroup = iota
	GroupRed
	GroupWhite
	GroupBrown1
	GroupBeige
	GroupBrown2

	NumColorGroups
)

// Texture tiles in the atlas, each TileSize pixels square.
const (
	TileButton = iota
	TileLogo
	TileSideburn
	TileMustache
	TileEyesOpen
	TileEyesHalf
	TileEyesClosed
	TileEyesDead
	TileWingLeft
	TileWingRight
	TileMetal

	NumTiles
)

// Atlas dimensions.
const (
	TileSize      = 64
	TextureWidth  = TileSize * NumTiles
	TextureHeight = TileSize
)

// Face selects which side of a box part carries a texture tile.
type Face uint8

const (
	FaceNone Face = iota
	FaceFront
	FaceBack
	FaceTop
)

// Part is a box attached to a joint.
type Part struct {
	Center  m.Vec3
	Half    m.Vec3
	Group   ColorGroup
	Tile    int
	Face    Face
	Wing    bool
	CapOnly bool
	Hand    bool
}

// Node is one joint of the skeleton.
type Node struct {
	Name   string
	Parent int
	Offset m.Vec3
	Parts  []Part
}

// Skeleton is the fixed joint hierarchy. Parents always precede children.
type Skeleton struct {
	Nodes [NumJoints]Node
}

// DefaultSkeleton returns the built-in character rig, about 160 units tall
// with the feet at the origin when the root sits at RestHeight.
func DefaultSkeleton() *Skeleton {
	s := &Skeleton{}
	set := func(j int, name string, parent int, off m.Vec3, parts ...Part) {
		s.Nodes[j] = Node{Name: name, Parent: parent, Offset: off, Parts: parts}
	}
	box := func(cx, cy, cz, hx, hy, hz float32, g ColorGroup) Part {
		return Part{Center: m.Vec3{X: cx, Y: cy, Z: cz}, Half: m.Vec3{X: hx, Y: hy, Z: hz}, Group: g, Tile: -1}
	}
	tex := func(p Part, tile int, face Face) Part {
		p.Tile = tile
		p.Face = face
		return p
	}

	set(JointRoot, "root", -1, m.Vec3{},
		box(0, 0, 0, 16, 10, 12, GroupBlue))
	set(JointTorso, "torso", JointRoot, m.Vec3{Y: 10},
		box(0, 18, 0, 17, 20, 13, GroupRed),
		tex(box(0, 4, 1, 17.5, 6, 13, GroupBlue), TileButton, FaceFront))
	set(JointHead, "head", JointTorso, m.Vec3{Y: 40},
		tex(box(0, 14, 0, 14, 14, 14, GroupBeige), TileEyesOpen, FaceFront),
		tex(box(0, 8, 15, 10, 3, 2, GroupBrown2), TileMustache, FaceFront),
		tex(box(0, 14, -12, 13, 10, 3, GroupBrown2), TileSideburn, FaceBack))
	set(JointCap, "cap", JointHead, m.Vec3{Y: 26},
		Part{Center: m.Vec3{Y: 4, Z: 2}, Half: m.Vec3{X: 16, Y: 6, Z: 16}, Group: GroupRed, Tile: TileLogo, Face: FaceFront, CapOnly: true})
	set(JointLeftUpperArm, "left_upper_arm", JointTorso, m.Vec3{X: 22, Y: 34},
		box(0, -9, 0, 5, 10, 5, GroupRed))
	set(JointLeftForearm, "left_forearm", JointLeftUpperArm, m.Vec3{Y: -20},
		box(0, -9, 0, 4.5, 10, 4.5, GroupRed))
	set(JointLeftHand, "left_hand", JointLeftForearm, m.Vec3{Y: -20},
		Part{Center: m.Vec3{Y: -5}, Half: m.Vec3{X: 6, Y: 6, Z: 6}, Group: GroupWhite, Tile: -1, Hand: true})
	set(JointRightUpperArm, "right_upper_arm", JointTorso, m.Vec3{X: -22, Y: 34},
		box(0, -9, 0, 5, 10, 5, GroupRed))
	set(JointRightForearm, "right_forearm", JointRightUpperArm, m.Vec3{Y: -20},
		box(0, -9, 0, 4.5, 10, 4.5, GroupRed))
	set(JointRightHand, "right_hand", JointRightForearm, m.Vec3{Y: -20},
		Part{Center: m.Vec3{Y: -5}, Half: m.Vec3{X: 6, Y: 6, Z: 6}, Group: GroupWhite, Tile: -1, Hand: true})
	set(JointLeftThigh, "left_thigh", JointRoot, m.Vec3{X: 9, Y: -6},
		box(0, -14, 0, 7, 14, 7, GroupBlue))
	set(JointLeftShin, "left_shin", JointLeftThigh, m.Vec3{Y: -28},
		box(0, -13, 0, 6, 13, 6, GroupBlue))
	set(JointLeftFoot, "left_foot", JointLeftShin, m.Vec3{Y: -27},
		box(0, -2, 4, 6, 4, 10, GroupBrown1))
	set(JointRightThigh, "right_thigh", JointRoot, m.Vec3{X: -9, Y: -6},
		box(0, -14, 0, 7, 14, 7, GroupBlue))
	set(JointRightShin, "right_shin", JointRightThigh, m.Vec3{Y: -28},
		box(0, -13, 0, 6, 13, 6, GroupBlue))
	set(JointRightFoot, "right_foot", JointRightShin, m.Vec3{Y: -27},
		box(0, -2, 4, 6, 4, 10, GroupBrown1))
	set(JointCapWings, "cap_wings", JointCap, m.Vec3{Y: 6},
		Part{Center: m.Vec3{X: 20, Y: 4, Z: -4}, Half: m.Vec3{X: 12, Y: 8, Z: 1}, Group: GroupWhite, Tile: TileWingLeft, Face: FaceFront, Wing: true},
		Part{Center: m.Vec3{X: -20, Y: 4, Z: -4}, Half: m.Vec3{X: 12, Y: 8, Z: 1}, Group: GroupWhite, Tile: TileWingRight, Face: FaceFront, Wing: true})
	return s
}

// RestHeight is the root height above the feet in the bind pose.
const RestHeight = 67

package render

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand/v2"

	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/timeline"
)

// 星空与网格参数
const (
	starCount   = 1500
	starRadius  = 200.0
	starDepth   = 100.0
	starSeed    = 0x5eed
	starDrift   = 0.02 // 星空绕 Y 轴自转（弧度/秒）
	gridY       = -2.0
	gridCenterZ = -50.0
	gridWidth   = 100.0
	gridLength  = 400.0
	gridCell    = 5.0
	gridSection = 25.0
	gridFade    = 100.0
)

// Prop 场景中的一个线框装饰物
type Prop struct {
	Mesh     *Mesh
	Position Vec3
	Rotation Vec3
	Spin     Vec3
	Color    color.RGBA
}

// WireScene 线框 3D 背景
//
// 实现镜头位姿接收端：ApplyPose 每帧调用一次，Draw 使用最近一次的位姿。
type WireScene struct {
	projector *Projector
	props     []*Prop
	stars     []Vec3
	starSpin  float64

	fogNear, fogFar float64
	background      color.RGBA

	poses int
}

// NewWireScene 根据站点配置中的装饰物创建场景
func NewWireScene(props []config.PropConfig, width, height int) (*WireScene, error) {
	s := &WireScene{
		projector:  NewProjector(float64(width), float64(height), config.FieldOfViewDegrees),
		fogNear:    config.FogNear,
		fogFar:     config.FogFar,
		background: config.VoidBlack,
	}

	for i, pc := range props {
		mesh, err := NewMesh(pc.Shape, pc.Size)
		if err != nil {
			return nil, fmt.Errorf("props[%d]: %w", i, err)
		}
		s.props = append(s.props, &Prop{
			Mesh:     mesh,
			Position: Vec3(pc.Position),
			Rotation: Vec3(pc.Rotation),
			Spin:     Vec3(pc.Spin),
			Color:    config.MustHexColor(pc.Color),
		})
	}

	// 固定种子，每次启动星空一致
	rng := rand.New(rand.NewPCG(starSeed, starSeed))
	for i := 0; i < starCount; i++ {
		// 半径在 [starRadius, starRadius+starDepth] 的球壳上均匀分布
		r := starRadius + rng.Float64()*starDepth
		theta := math.Acos(1 - 2*rng.Float64())
		phi := rng.Float64() * 2 * math.Pi
		s.stars = append(s.stars, Vec3{
			r * math.Sin(theta) * math.Cos(phi),
			r * math.Sin(theta) * math.Sin(phi),
			r * math.Cos(theta),
		})
	}

	log.Printf("[WireScene] %d props, %d stars", len(s.props), len(s.stars))
	return s, nil
}

// ApplyPose 接收本帧镜头位姿
func (s *WireScene) ApplyPose(pose timeline.CameraPose) {
	s.projector.Pose = pose
	s.poses++
}

// Pose 返回最近一次接收的位姿
func (s *WireScene) Pose() timeline.CameraPose {
	return s.projector.Pose
}

// PoseCount 返回接收位姿的次数
func (s *WireScene) PoseCount() int {
	return s.poses
}

// Props 返回装饰物
func (s *WireScene) Props() []*Prop {
	return s.props
}

// Resize 修改投影尺寸
func (s *WireScene) Resize(width, height int) {
	pose := s.projector.Pose
	s.projector = NewProjector(float64(width), float64(height), config.FieldOfViewDegrees)
	s.projector.Pose = pose
}

// Update 推进自转动画
func (s *WireScene) Update(dt float64) {
	for _, p := range s.props {
		p.Rotation = p.Rotation.Add(p.Spin.Scale(dt))
	}
	s.starSpin = math.Mod(s.starSpin+starDrift*dt, 2*math.Pi)
}

// Draw 绘制完整背景
func (s *WireScene) Draw(c Canvas) {
	c.Fill(s.background)
	s.drawStars(c)
	s.drawGrid(c)
	for _, p := range s.props {
		s.drawProp(c, p)
	}
}

func (s *WireScene) drawStars(c Canvas) {
	// 星空跟随镜头，只受滚转影响
	origin := Vec3{s.projector.Pose.X, s.projector.Pose.Y, s.projector.Pose.Z}
	spin := Vec3{0, s.starSpin, 0}
	for _, star := range s.stars {
		sx, sy, depth, ok := s.projector.Project(origin.Add(star.RotateXYZ(spin)))
		if !ok {
			continue
		}
		// 越远越暗，与雾无关
		alpha := 1 - (depth-starRadius)/(starDepth*1.5)
		c.FillCircle(float32(sx), float32(sy), 0.8, Fade(color.White, alpha))
	}
}

func (s *WireScene) drawGrid(c Canvas) {
	cellColor := config.NeonCyan
	sectionColor := config.NeonPink
	camZ := s.projector.Pose.Z

	zMin, zMax := gridCenterZ-gridLength/2, gridCenterZ+gridLength/2
	xMin, xMax := -gridWidth/2, gridWidth/2

	// 平行于 Z 轴的线：只画镜头前方 gridFade 范围内的部分
	near := math.Min(zMax, camZ)
	far := math.Max(zMin, camZ-gridFade)
	for x := xMin; x <= xMax; x += gridCell {
		clr := cellColor
		if math.Mod(math.Abs(x), gridSection) == 0 {
			clr = sectionColor
		}
		s.drawFadedSegment(c, Vec3{x, gridY, near}, Vec3{x, gridY, far}, clr, 1, gridFade)
	}

	// 平行于 X 轴的线
	start := math.Ceil(far/gridCell) * gridCell
	for z := start; z <= near; z += gridCell {
		clr := cellColor
		if math.Mod(math.Abs(z), gridSection) == 0 {
			clr = sectionColor
		}
		s.drawFadedSegment(c, Vec3{xMin, gridY, z}, Vec3{xMax, gridY, z}, clr, 1, gridFade)
	}
}

func (s *WireScene) drawProp(c Canvas, p *Prop) {
	world := make([]Vec3, len(p.Mesh.Vertices))
	for i, v := range p.Mesh.Vertices {
		world[i] = v.RotateXYZ(p.Rotation).Add(p.Position)
	}
	for _, e := range p.Mesh.Edges {
		s.drawFadedSegment(c, world[e[0]], world[e[1]], p.Color, 1.2, s.fogFar)
	}
}

// drawFadedSegment 绘制带雾效的线段
func (s *WireScene) drawFadedSegment(c Canvas, a, b Vec3, clr color.RGBA, width float32, fadeFar float64) {
	x0, y0, x1, y1, depth, ok := s.projector.ProjectSegment(a, b)
	if !ok {
		return
	}
	alpha := FogFactor(depth, s.fogNear, math.Min(fadeFar, s.fogFar))
	if alpha <= 0.01 {
		return
	}
	c.StrokeLine(float32(x0), float32(y0), float32(x1), float32(y1), width, Fade(clr, alpha))
}

// VisibleProps 返回当前位姿下未被雾完全遮挡的装饰物数量
func (s *WireScene) VisibleProps() int {
	n := 0
	for _, p := range s.props {
		_, _, depth, ok := s.projector.Project(p.Position)
		if ok && FogFactor(depth, s.fogNear, s.fogFar) > 0 {
			n++
		}
	}
	return n
}

package render

import (
	"fmt"
	"math"
)

// Mesh 线框网格
type Mesh struct {
	Vertices []Vec3
	Edges    [][2]int
}

// NewMesh 按形状名称创建以原点为中心的线框网格
//
// 支持：box, icosahedron, octahedron, sphere, cylinder, torus, ring。
// size 的含义随形状而定（边长、半径或高度）。
func NewMesh(shape string, size float64) (*Mesh, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mesh %q: size must be > 0", shape)
	}
	switch shape {
	case "box":
		return boxMesh(size), nil
	case "icosahedron":
		return icosahedronMesh(size), nil
	case "octahedron":
		return octahedronMesh(size), nil
	case "sphere":
		return sphereMesh(size, 16, 12), nil
	case "cylinder":
		return cylinderMesh(size/8, size, 6), nil
	case "torus":
		return torusMesh(size, size/10, 24, 8), nil
	case "ring":
		return ringMesh(size*10/11, size, 4), nil
	}
	return nil, fmt.Errorf("unknown mesh shape %q", shape)
}

func boxMesh(size float64) *Mesh {
	h := size / 2
	m := &Mesh{}
	for i := 0; i < 8; i++ {
		x, y, z := -h, -h, -h
		if i&1 != 0 {
			x = h
		}
		if i&2 != 0 {
			y = h
		}
		if i&4 != 0 {
			z = h
		}
		m.Vertices = append(m.Vertices, Vec3{x, y, z})
	}
	// 相差一个坐标位的顶点相连
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if j := i | bit; j != i {
				m.Edges = append(m.Edges, [2]int{i, j})
			}
		}
	}
	return m
}

func icosahedronMesh(radius float64) *Mesh {
	phi := (1 + math.Sqrt(5)) / 2
	raw := []Vec3{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	m := &Mesh{}
	for _, v := range raw {
		m.Vertices = append(m.Vertices, v.Scale(radius/v.Len()))
	}
	m.Edges = shortestEdges(m.Vertices)
	return m
}

func octahedronMesh(radius float64) *Mesh {
	m := &Mesh{Vertices: []Vec3{
		{radius, 0, 0}, {-radius, 0, 0},
		{0, radius, 0}, {0, -radius, 0},
		{0, 0, radius}, {0, 0, -radius},
	}}
	m.Edges = shortestEdges(m.Vertices)
	return m
}

// shortestEdges 连接距离等于最短顶点间距的所有顶点对（正多面体）
func shortestEdges(vs []Vec3) [][2]int {
	minDist := math.Inf(1)
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			minDist = math.Min(minDist, vs[i].Sub(vs[j]).Len())
		}
	}
	var edges [][2]int
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			if vs[i].Sub(vs[j]).Len() <= minDist*1.001 {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return edges
}

// sphereMesh 经纬线球体
func sphereMesh(radius float64, widthSegs, heightSegs int) *Mesh {
	m := &Mesh{}
	index := func(row, col int) int { return row*widthSegs + col }

	for row := 0; row <= heightSegs; row++ {
		theta := float64(row) / float64(heightSegs) * math.Pi
		for col := 0; col < widthSegs; col++ {
			phi := float64(col) / float64(widthSegs) * 2 * math.Pi
			m.Vertices = append(m.Vertices, Vec3{
				radius * math.Sin(theta) * math.Cos(phi),
				radius * math.Cos(theta),
				radius * math.Sin(theta) * math.Sin(phi),
			})
		}
	}
	for row := 0; row <= heightSegs; row++ {
		for col := 0; col < widthSegs; col++ {
			// 纬线（两极退化为点，跳过）
			if row > 0 && row < heightSegs {
				m.Edges = append(m.Edges, [2]int{index(row, col), index(row, (col+1)%widthSegs)})
			}
			// 经线
			if row < heightSegs {
				m.Edges = append(m.Edges, [2]int{index(row, col), index(row+1, col)})
			}
		}
	}
	return m
}

func cylinderMesh(radius, height float64, radial int) *Mesh {
	m := &Mesh{}
	for _, y := range []float64{height / 2, -height / 2} {
		for i := 0; i < radial; i++ {
			a := float64(i) / float64(radial) * 2 * math.Pi
			m.Vertices = append(m.Vertices, Vec3{radius * math.Cos(a), y, radius * math.Sin(a)})
		}
	}
	for i := 0; i < radial; i++ {
		next := (i + 1) % radial
		m.Edges = append(m.Edges,
			[2]int{i, next},
			[2]int{radial + i, radial + next},
			[2]int{i, radial + i},
		)
	}
	return m
}

// torusMesh 圆环，位于 XY 平面
func torusMesh(radius, tube float64, radialSegs, tubularSegs int) *Mesh {
	m := &Mesh{}
	index := func(i, j int) int { return i*tubularSegs + j }

	for i := 0; i < radialSegs; i++ {
		u := float64(i) / float64(radialSegs) * 2 * math.Pi
		for j := 0; j < tubularSegs; j++ {
			v := float64(j) / float64(tubularSegs) * 2 * math.Pi
			r := radius + tube*math.Cos(v)
			m.Vertices = append(m.Vertices, Vec3{r * math.Cos(u), r * math.Sin(u), tube * math.Sin(v)})
		}
	}
	for i := 0; i < radialSegs; i++ {
		for j := 0; j < tubularSegs; j++ {
			m.Edges = append(m.Edges,
				[2]int{index(i, j), index((i+1)%radialSegs, j)},
				[2]int{index(i, j), index(i, (j+1)%tubularSegs)},
			)
		}
	}
	return m
}

// ringMesh 平面圆环，位于 XY 平面
func ringMesh(inner, outer float64, segments int) *Mesh {
	m := &Mesh{}
	for _, r := range []float64{inner, outer} {
		for i := 0; i < segments; i++ {
			a := float64(i) / float64(segments) * 2 * math.Pi
			m.Vertices = append(m.Vertices, Vec3{r * math.Cos(a), r * math.Sin(a), 0})
		}
	}
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		m.Edges = append(m.Edges,
			[2]int{i, next},
			[2]int{segments + i, segments + next},
			[2]int{i, segments + i},
		)
	}
	return m
}

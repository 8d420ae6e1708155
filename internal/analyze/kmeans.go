package analyze

import (
	"image"
	"math"
	"math/rand"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/sableline/gradix/internal/hue"
)

// labPoint is a pixel in CIE-LAB space, where Euclidean distance lines
// up with perceived color difference.
type labPoint struct {
	l, a, b float64
}

func labPixels(img *image.RGBA) []labPoint {
	bounds := img.Bounds()
	out := make([]labPoint, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			off := (y-bounds.Min.Y)*img.Stride + (x-bounds.Min.X)*4
			c := colorful.Color{
				R: float64(img.Pix[off+0]) / 255,
				G: float64(img.Pix[off+1]) / 255,
				B: float64(img.Pix[off+2]) / 255,
			}
			l, a, b := c.Lab()
			out = append(out, labPoint{l, a, b})
		}
	}
	return out
}

type cluster struct {
	center labPoint
	count  int
}

// color converts the cluster center back to 8-bit RGB.
func (c cluster) color() hue.RGB {
	cf := colorful.Lab(c.center.l, c.center.a, c.center.b).Clamped()
	return hue.New(
		int(math.Round(cf.R*255)),
		int(math.Round(cf.G*255)),
		int(math.Round(cf.B*255)),
	)
}

func sqDist(a, b labPoint) float64 {
	dl := a.l - b.l
	da := a.a - b.a
	db := a.b - b.b
	return dl*dl + da*da + db*db
}

// kmeans runs Lloyd's algorithm over the pixel population with a
// seeded k-means++ style start, so results are reproducible. Empty
// clusters are reseeded from a random pixel. k is capped at the number
// of distinct points.
func kmeans(points []labPoint, k int, seed int64) []cluster {
	distinct := distinctPoints(points)
	if k > len(distinct) {
		k = len(distinct)
	}
	if k < 1 {
		k = 1
	}

	rng := rand.New(rand.NewSource(seed))
	centers := seedCenters(distinct, k, rng)

	const maxIterations = 30
	assignments := make([]int, len(points))
	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, p := range points {
			best, bestDist := 0, math.MaxFloat64
			for j, c := range centers {
				if d := sqDist(p, c); d < bestDist {
					best, bestDist = j, d
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		sums := make([]labPoint, k)
		counts := make([]int, k)
		for i, p := range points {
			a := assignments[i]
			sums[a].l += p.l
			sums[a].a += p.a
			sums[a].b += p.b
			counts[a]++
		}
		for j := range centers {
			if counts[j] == 0 {
				centers[j] = points[rng.Intn(len(points))]
				continue
			}
			n := float64(counts[j])
			centers[j] = labPoint{sums[j].l / n, sums[j].a / n, sums[j].b / n}
		}
	}

	counts := make([]int, k)
	for _, a := range assignments {
		counts[a]++
	}
	out := make([]cluster, k)
	for j := range out {
		out[j] = cluster{center: centers[j], count: counts[j]}
	}
	return out
}

// seedCenters picks k starting centers, spreading them out by always
// taking the point farthest from the centers chosen so far.
func seedCenters(points []labPoint, k int, rng *rand.Rand) []labPoint {
	centers := make([]labPoint, 0, k)
	centers = append(centers, points[rng.Intn(len(points))])
	for len(centers) < k {
		var far labPoint
		farDist := -1.0
		for _, p := range points {
			nearest := math.MaxFloat64
			for _, c := range centers {
				if d := sqDist(p, c); d < nearest {
					nearest = d
				}
			}
			if nearest > farDist {
				farDist = nearest
				far = p
			}
		}
		centers = append(centers, far)
	}
	return centers
}

func distinctPoints(points []labPoint) []labPoint {
	seen := map[labPoint]struct{}{}
	out := make([]labPoint, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func sortClusters(clusters []cluster, order SortOrder) {
	switch order {
	case ByBrightness:
		sort.SliceStable(clusters, func(i, j int) bool {
			return clusters[i].color().Brightness() < clusters[j].color().Brightness()
		})
	case ByHue:
		sort.SliceStable(clusters, func(i, j int) bool {
			hi, _, _ := clusters[i].color().ToHSV()
			hj, _, _ := clusters[j].color().ToHSV()
			return hi < hj
		})
	default: // ByFrequency
		sort.SliceStable(clusters, func(i, j int) bool {
			return clusters[i].count > clusters[j].count
		})
	}
}

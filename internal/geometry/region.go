package geometry

import "github.com/osse101/GreenMap_Go/internal/domain"

// regionOutline is the national border traced in a 912x1024 vector viewBox.
var regionOutline = [][2]float64{
	{345, 80}, {407, 48}, {457, 31}, {492, 28}, {526, 19}, {572, 13},
	{603, 20}, {634, 13}, {671, 10}, {696, 6}, {731, 11}, {750, 8},
	{740, 70}, {741, 125}, {721, 160}, {710, 207}, {738, 240}, {777, 282},
	{795, 374}, {792, 385}, {809, 448}, {818, 523}, {817, 592}, {813, 598},
	{822, 644}, {832, 672}, {841, 693}, {892, 710}, {901, 763}, {893, 783},
	{748, 899}, {711, 933}, {648, 991}, {540, 1023}, {529, 1020}, {498, 963},
	{476, 948}, {458, 935}, {438, 919}, {430, 908}, {416, 885}, {227, 733},
	{7, 557}, {2, 466}, {8, 454}, {40, 428}, {88, 409}, {104, 397},
	{135, 394}, {155, 382}, {169, 363}, {215, 340}, {215, 316}, {214, 312},
	{247, 290}, {254, 283}, {268, 271}, {323, 270}, {328, 265}, {330, 251},
	{310, 212}, {310, 210}, {307, 188}, {307, 176}, {307, 160}, {306, 146},
	{300, 132}, {292, 123}, {302, 111},
}

// DefaultRegion returns the campaign border scaled into world space.
func DefaultRegion() Boundary {
	return MustBoundary(ScaleOutline(regionOutline, regionSourceWidth, regionSourceHeight, domain.WorldWidth, domain.WorldHeight))
}

// ScaleOutline maps outline points from a source box of srcW x srcH into dstW x dstH.
func ScaleOutline(outline [][2]float64, srcW, srcH, dstW, dstH float64) []domain.Point {
	pts := make([]domain.Point, len(outline))
	for i, p := range outline {
		pts[i] = domain.Point{X: p[0] / srcW * dstW, Y: p[1] / srcH * dstH}
	}
	return pts
}

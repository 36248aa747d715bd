package render

import "strings"

// DrawSection draws an uppercased section title at (x, y) followed by each
// content item, and returns the y offset just below the last item so callers
// can chain sections.
//
// The layout is fixed: an item advances by its line count times LineHeight
// plus ItemGap. There is no wrapping and no page-break handling; content that
// runs past the bottom edge is drawn off-page.
func DrawSection(s Surface, x, y float64, title string, items []string, heading HeadingStyle) float64 {
	s.SetTextColor(heading.Color)
	s.SetFont(heading.Family, "B", heading.Size)
	s.Text(x, y, strings.ToUpper(title))

	s.SetTextColor(TextColor)
	itemY := y + HeadingGap
	for _, item := range items {
		lines := SplitItem(item)
		lineY := itemY
		for _, line := range lines {
			if line.Emphasis {
				s.SetFont(BodyFamily, "B", BodySize)
			} else {
				s.SetFont(BodyFamily, "", BodySize)
			}
			s.Text(x+ItemIndent, lineY, line.Text)
			lineY += LineHeight
		}
		itemY += float64(len(lines))*LineHeight + ItemGap
	}
	return itemY
}

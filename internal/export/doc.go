// Package export renders an item's cost breakdown for non-interactive use.
//
// [RenderSVG] draws the strip as a row of colored rectangles masked by the
// item's stencil image, with a "No Mask Image" placeholder when the item has
// none. [RenderJSON] writes the computed geometry, resolved colors and
// formatted amounts so other tools can draw the same picture.
//
// Both renderers take the geometry from [geometry.ComputeWidths] and the colors
// from [palette.Resolve], so they agree with the terminal view.
package export

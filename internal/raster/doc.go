// Package raster is the software pixel substrate of the glow pipeline:
// premultiplied RGBA pixmaps, colors, gradient paints, anti-aliased
// coverage masks and the fill operation that ties them together.
//
// Pixel centres are sampled at (x+0.5, y+0.5), matching HTML canvas, so
// gradients line up with browser output for the same geometry.
package raster

// Package core provides shared types for the renderer subsystem: colors,
// text attributes, styles, terminal cells, screen rectangles and styled
// text spans. It has no dependencies on other renderer packages, which lets
// backend, gutter, theme and renderer all share it without import cycles.
package core

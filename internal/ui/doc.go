// Package ui holds the color themes used by the CLI. Presenters read the
// active theme through the Color* helpers and render framed blocks with
// Panel, so disabling colors in one place affects all output.
package ui

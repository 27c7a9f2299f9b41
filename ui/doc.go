// Package ui is the component catalog built on the slotkit engine:
// Button, ButtonGroup, Dialog, and the two-region Layout.
//
// Every component follows the same shape: a typed config struct, a
// constructor that resolves enumerated options and composes the class
// string, typed slot methods, and Render inherited from slotkit.Base.
// Definitions exposes the catalog to the preview registry.
package ui

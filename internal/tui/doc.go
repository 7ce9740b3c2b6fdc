// Package tui implements the interactive list browser on Bubble Tea.
//
// Each screen is a TableModel over one catalog table, driven by a
// listview.Controller. The App model arranges the screens as tabs and
// opens the systems of a content template as a detail screen.
package tui

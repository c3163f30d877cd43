// Package preview renders content documents as styled terminal text.
//
// Inline styles come from the editor's custom style map: CSS properties that
// have a terminal equivalent are translated to lipgloss attributes and the
// rest are ignored.
package preview

// Package fix turns diagnostics that carry a fix descriptor into structured
// rewrites of the declaration tree and applies them.
//
// Rewrites are keyed to syntax.NodeRef values, never to text positions, so
// they stay valid across repeated application. Apply works on a deep clone
// and either applies every edit of a rewrite or none. TextEdits renders a
// rewrite for hosts that splice text instead of trees.
package fix

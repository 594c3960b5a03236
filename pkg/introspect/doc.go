// Package introspect converts node map features into property descriptors.
//
// Factory.Build handles one (node, optional selector binding) pair and
// dispatches on the node's principal kind. Enumeration features are turned
// into named EnumTypes that are registered once in an EnumRegistry and
// reused by every later discovery pass, across devices, for the lifetime of
// the registry.
package introspect

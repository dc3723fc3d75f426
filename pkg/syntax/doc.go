// Package syntax is the query surface a host exports for one source file:
// type declarations, their members and annotations, and the enclosing-type
// chain. Declarations travel as YAML or JSON snapshots.
//
// Rewrites address nodes through NodeRef values that are resolved against a
// root declaration, so a fix never holds pointers into the host's tree.
package syntax

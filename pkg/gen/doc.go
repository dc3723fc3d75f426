// Package gen builds the companion members of an extracted model as
// structured fragments.
//
// Generation is a pure function of the model. Each fragment checks the
// model facts it depends on; when one is unresolved the fragment is listed
// in Output.Skipped and the remaining fragments still generate. Fragments
// come out in KindOrder, and within a kind in declaration order, so equal
// models always produce equal output.
package gen

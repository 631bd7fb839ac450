// Package treeset implements a sorted set backed by an unbalanced binary
// search tree.
//
// # Ordering
//
// The tree is ordered by a strict "greater-than" comparator: Insert descends
// right when the new value is greater than the node's, left otherwise, and an
// equal value (per the separate equality predicate) replaces the node's
// payload in place rather than adding a node. In-order traversal therefore
// yields strictly ascending values and no two nodes compare equal.
//
// No balancing is performed. Tree shape — and with it the cost of every
// operation — is purely insertion-order-dependent: sorted input degrades the
// tree to a list. Callers who feed adversarial orderings get the O(n) they
// asked for.
//
// # Set algebra
//
// Union, Intersect, Difference and Subset are recursive walks. Union and
// Difference walk the argument tree; Intersect walks the receiver's own tree
// post-order while erasing from it, which is safe because each erased node's
// subtrees are fully processed before the erase and the predecessor-promotion
// splice only relinks nodes inside the already-visited left subtree.
//
// # Thread safety
//
// Sets are not safe for concurrent use.
package treeset

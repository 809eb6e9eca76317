// SPDX-License-Identifier: MIT

package index

import "github.com/katalvlaran/tabview/errs"

// Sentinel errors re-exported for callers that only import index.
var (
	ErrOutOfRange = errs.ErrOutOfRange // position outside -len..len-1, or coordinate outside extent
	ErrType       = errs.ErrType       // non-integer element in a specifier
	ErrValue      = errs.ErrValue      // zero slice step, malformed textual specifier
)
